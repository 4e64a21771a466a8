package models

import "net/http"

// Result is the uniform envelope every service call returns. Content holds the
// success payload, an error message, or a list of validation issues; routers
// forward StatusCode and Content verbatim without inspecting Content.
type Result struct {
	StatusCode int
	Content    any
}

// FieldError is a single validation issue for one input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func Ok(content any) *Result {
	return &Result{StatusCode: http.StatusOK, Content: content}
}

func Created(content any) *Result {
	return &Result{StatusCode: http.StatusCreated, Content: content}
}

func NoContent() *Result {
	return &Result{StatusCode: http.StatusNoContent, Content: nil}
}

// Fail builds an error result with a plain message body.
func Fail(statusCode int, message string) *Result {
	return &Result{StatusCode: statusCode, Content: message}
}

// Invalid builds a 400 result carrying the full list of field issues.
func Invalid(issues []FieldError) *Result {
	return &Result{StatusCode: http.StatusBadRequest, Content: issues}
}
