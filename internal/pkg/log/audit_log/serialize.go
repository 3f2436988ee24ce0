package audit_log

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"
)

const (
	maxPayloadLen  = 8 << 10
	truncateSuffix = "...(truncado)"
)

// SerializeData converte o payload para o texto gravado em input_data/output_data.
// Textos e json.RawMessage são gravados como estão; o resto vira JSON, ou %+v
// quando não serializa. O resultado é cortado em maxPayloadLen bytes.
func SerializeData(data any) string {
	var out string
	switch v := data.(type) {
	case nil:
		return ""
	case string:
		out = v
	case json.RawMessage:
		out = string(v)
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			out = fmt.Sprintf("%+v", v)
		} else {
			out = string(raw)
		}
	}
	return truncate(out)
}

func truncate(s string) string {
	if len(s) <= maxPayloadLen {
		return s
	}
	cut := maxPayloadLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + truncateSuffix
}
