// Package web defines common components for a web application.
package web

import "github.com/go-playground/validator/v10"

// Response holds the common response envelope for all APIs.
type Response struct {
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

// Error wraps a given err into the response envelope.
func Error(err error) Response {
	return Response{Error: err.Error()}
}

// GetErrorMsg returns a readable message for a failed field validation.
func GetErrorMsg(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return " field is required"
	case "min":
		return " must be at least " + fe.Param() + " characters long"
	case "max":
		return " must be less than " + fe.Param()
	case "address":
		return " must be a valid hex address"
	}

	return " is invalid"
}
