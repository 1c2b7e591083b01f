package service

import "strings"

// ValidationError carries user-facing messages for rejected input
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, ", ")
}

// invalid builds a ValidationError from one or more messages
func invalid(messages ...string) error {
	return &ValidationError{Messages: messages}
}

// collector accumulates validation messages
type collector []string

func (c *collector) add(msg string) {
	*c = append(*c, msg)
}

func (c *collector) check(ok bool, msg string) {
	if !ok {
		c.add(msg)
	}
}

func (c collector) err() error {
	if len(c) == 0 {
		return nil
	}
	return &ValidationError{Messages: c}
}

// trimmedPtr trims s and returns nil when nothing is left
func trimmedPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func optional(s string) *string {
	return trimmedPtr(&s)
}
