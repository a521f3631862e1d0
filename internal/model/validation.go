package model

import (
	"fmt"
	"strings"
)

// ValidationError lists the payload fields that failed schema, type, or
// enum constraints. It is produced before any store access.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid fields: %s", strings.Join(e.Fields, ", "))
}

// fieldErrors accumulates offending field names during payload validation.
type fieldErrors []string

func (f *fieldErrors) add(name string) {
	*f = append(*f, name)
}

func (f *fieldErrors) requireString(name, value string) {
	if strings.TrimSpace(value) == "" {
		f.add(name)
	}
}

// err returns a *ValidationError when any field was recorded, nil otherwise.
func (f fieldErrors) err() error {
	if len(f) == 0 {
		return nil
	}
	return &ValidationError{Fields: f}
}
