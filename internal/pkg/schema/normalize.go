package schema

import (
	"bytes"
	"encoding/json"
	"unicode/utf8"
)

// Input carrega um fragmento de JSON Schema no campo nomeado "schema".
type Input struct {
	Schema json.RawMessage `json:"schema"`
}

// Fragment é a variante fechada de um fragmento de schema.
// Implementações: Absent, ObjectSchema e OtherSchema.
type Fragment interface {
	isFragment()
}

// Absent representa a ausência de schema (nil, null ou valor falso).
type Absent struct{}

// ObjectSchema é um schema com "type": "object".
type ObjectSchema struct {
	Properties map[string]json.RawMessage
	// propertyCount considera também "properties" que não são objetos JSON.
	propertyCount int
}

// OtherSchema cobre qualquer outro fragmento, inclusive JSON malformado.
type OtherSchema struct {
	Type string
}

func (Absent) isFragment()       {}
func (ObjectSchema) isFragment() {}
func (OtherSchema) isFragment()  {}

// Empty indica que o schema de objeto não define nenhuma propriedade.
func (o ObjectSchema) Empty() bool {
	return o.propertyCount == 0
}

// Classify inspeciona apenas os campos rasos "type" e "properties".
func Classify(raw json.RawMessage) Fragment {
	if isFalsy(raw) {
		return Absent{}
	}

	var shallow map[string]json.RawMessage
	if err := json.Unmarshal(raw, &shallow); err != nil {
		return OtherSchema{}
	}

	var typ string
	if t, ok := shallow["type"]; ok {
		// "type" que não é string (ex.: ["object","null"]) nunca é "object".
		if err := json.Unmarshal(t, &typ); err != nil {
			return OtherSchema{}
		}
	}
	if typ != "object" {
		return OtherSchema{Type: typ}
	}

	obj := ObjectSchema{}
	props, ok := shallow["properties"]
	if !ok || isFalsy(props) {
		return obj
	}
	if err := json.Unmarshal(props, &obj.Properties); err == nil {
		obj.propertyCount = len(obj.Properties)
		return obj
	}
	obj.propertyCount = entryCount(props)
	return obj
}

// Normalize devolve nil quando o schema não carrega informação
// (ausente, ou objeto sem propriedades); caso contrário devolve a entrada
// exatamente como recebida.
func Normalize(in Input) json.RawMessage {
	switch f := Classify(in.Schema).(type) {
	case Absent:
		return nil
	case ObjectSchema:
		if f.Empty() {
			return nil
		}
	}
	return in.Schema
}

func isFalsy(raw json.RawMessage) bool {
	v := bytes.TrimSpace(raw)
	if len(v) == 0 {
		return true
	}
	switch string(v) {
	case "null", "false", `""`:
		return true
	}
	if c := v[0]; c != '-' && (c < '0' || c > '9') {
		return false
	}
	var n json.Number
	if err := json.Unmarshal(v, &n); err == nil {
		f, err := n.Float64()
		return err == nil && f == 0
	}
	return false
}

// entryCount conta as entradas de um valor "properties" que não é objeto:
// arrays pelo número de elementos, strings pelo número de caracteres e
// escalares como vazios.
func entryCount(raw json.RawMessage) int {
	var arr []json.RawMessage
	if err := json.Unmarshal(raw, &arr); err == nil {
		return len(arr)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return utf8.RuneCountInString(s)
	}
	return 0
}
