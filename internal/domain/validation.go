package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// ErrValidation is matched by every *ValidationError
var ErrValidation = errors.New("validation failed")

// ValidationError holds per-field messages keyed by JSON field name
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

type fieldChecker struct {
	fields map[string]string
}

func newFieldChecker() *fieldChecker {
	return &fieldChecker{fields: make(map[string]string)}
}

// text records the first failure for a required string field
func (c *fieldChecker) text(field, value string, maxLen int) {
	if _, exists := c.fields[field]; exists {
		return
	}
	if strings.TrimSpace(value) == "" {
		c.fields[field] = "must not be blank"
		return
	}
	if utf8.RuneCountInString(value) > maxLen {
		c.fields[field] = fmt.Sprintf("size must be between 1 and %d", maxLen)
	}
}

func (c *fieldChecker) err() error {
	if len(c.fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: c.fields}
}
