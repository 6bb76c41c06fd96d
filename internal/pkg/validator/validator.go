// Package validator wraps struct validation behind a single-method interface.
package validator

// Validator validates a struct tagged with validation rules.
//
// Implementations return an error whose message (or field map) is suitable
// for returning to API clients.
type Validator interface {
	Validate(data any) error
}
