package apimodels

import (
	"fmt"
	"sort"
	"strings"
)

type Response struct {
	Status  string            `json:"status"`            // fail/success
	Title   string            `json:"title,omitempty"`   // short error kind
	Message string            `json:"message,omitempty"` // error message
	Fields  map[string]string `json:"fields,omitempty"`  // per-field validation messages
	Data    interface{}       `json:"data,omitempty"`
}

func NewError(message string) Response {
	return Response{
		Status:  "fail",
		Message: message,
	}
}

func NewTitledError(title, message string) Response {
	return Response{
		Status:  "fail",
		Title:   title,
		Message: message,
	}
}

func NewValidationError(title string, err *ValidationError) Response {
	return Response{
		Status:  "fail",
		Title:   title,
		Message: err.Error(),
		Fields:  err.Fields,
	}
}

func NewResponse(data interface{}) Response {
	return Response{
		Status: "success",
		Data:   data,
	}
}

// ValidationError collects field-level messages keyed by wire field name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = map[string]string{}
	}
	e.Fields[field] = message
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for key := range e.Fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", key, e.Fields[key]))
	}
	return strings.Join(parts, "; ")
}

// Err returns nil when no field failed.
func (e *ValidationError) Err() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}
