package rest_err

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

type Causes struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func NewCause(field, message string) Causes {
	return Causes{
		Field:   field,
		Message: message,
	}
}

// CausesFromBinding converte os erros de validação do gin (binding) em causas.
// Erros que não vêm do validator resultam em nil.
func CausesFromBinding(err error) []Causes {
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return nil
	}
	causes := make([]Causes, 0, len(vErrs))
	for _, fe := range vErrs {
		causes = append(causes, NewCause(fe.Field(), fe.Tag()))
	}
	return causes
}
