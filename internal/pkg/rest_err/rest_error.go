package rest_err

import "net/http"

// Valores do campo "error" do envelope.
const (
	ErrBadRequest          = "bad_request"
	ErrInternalServerError = "internal_server_error"
	ErrNotFound            = "not_found"
	ErrConflict            = "conflict"
)

// RestErr é o corpo de toda resposta de erro da API.
type RestErr struct {
	Message string   `json:"message"`
	Err     string   `json:"error"`
	Code    int      `json:"code"`
	Trace   *string  `json:"trace,omitempty"`
	Causes  []Causes `json:"causes,omitempty"`
}

func (r *RestErr) Error() string {
	return r.Message
}

func NewRestErr(trace *string, message, err string, code int, causes []Causes) *RestErr {
	return &RestErr{
		Message: message,
		Err:     err,
		Code:    code,
		Trace:   trace,
		Causes:  causes,
	}
}

func NewBadRequestError(trace *string, message string) *RestErr {
	return NewRestErr(trace, message, ErrBadRequest, http.StatusBadRequest, nil)
}

func NewBadRequestValidationError(trace *string, message string, causes []Causes) *RestErr {
	return NewRestErr(trace, message, ErrBadRequest, http.StatusBadRequest, causes)
}

func NewInternalServerError(trace *string, message string, causes []Causes) *RestErr {
	return NewRestErr(trace, message, ErrInternalServerError, http.StatusInternalServerError, causes)
}

func NewNotFoundError(trace *string, message string) *RestErr {
	return NewRestErr(trace, message, ErrNotFound, http.StatusNotFound, nil)
}

func NewConflictValidationError(trace *string, message string, causes []Causes) *RestErr {
	return NewRestErr(trace, message, ErrConflict, http.StatusConflict, causes)
}
