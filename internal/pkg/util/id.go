package util

import (
	"strings"

	"github.com/google/uuid"
)

// Prefixos dos identificadores de cada entidade.
const (
	PrefixTenant   = "ten"
	PrefixBrand    = "brd"
	PrefixSolution = "sol"
)

// NewID gera um identificador "<prefixo>_<uuid sem hífens>".
func NewID(prefix string) string {
	return prefix + "_" + strings.ReplaceAll(uuid.NewString(), "-", "")
}

// HasPrefix informa se id foi gerado com o prefixo informado.
func HasPrefix(id, prefix string) bool {
	return strings.HasPrefix(id, prefix+"_") && len(id) == len(prefix)+33
}
