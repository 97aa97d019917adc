package dispatch

import (
	"net/http"

	"backoffice/internal/errors"
)

// Envelope is the normalized result of every operation.
type Envelope struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Wrap turns an operation result into an envelope. On success the code is 200;
// on failure it is the status carried by err, or 500.
func Wrap(data any, err error) Envelope {
	return wrap(data, err, http.StatusOK)
}

// WrapCreated is Wrap for operations that create a record; success is 201.
func WrapCreated(data any, err error) Envelope {
	return wrap(data, err, http.StatusCreated)
}

func wrap(data any, err error, okCode int) Envelope {
	if err != nil {
		return Failure(err)
	}
	return Envelope{Success: true, Code: okCode, Data: data}
}

// Failure builds the envelope of a failed operation.
func Failure(err error) Envelope {
	return Envelope{
		Success: false,
		Code:    errors.StatusOf(err),
		Error:   err.Error(),
	}
}

// Changes is the data of delete and unlink operations.
type Changes struct {
	Changes int64 `json:"changes"`
}
