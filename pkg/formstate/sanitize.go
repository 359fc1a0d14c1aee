package formstate

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer cleans free text before it is stored in a record.
type Sanitizer interface {
	Sanitize(string) string
}

// SanitizerFunc adapts a plain function to Sanitizer.
type SanitizerFunc func(string) string

// Sanitize calls f(s).
func (f SanitizerFunc) Sanitize(s string) string {
	return f(s)
}

var (
	strictPolicyOnce sync.Once
	strictPolicy     *bluemonday.Policy
)

// NewStrictSanitizer returns a Sanitizer that drops every HTML element and
// returns HTML-escaped text, so the result never contains markup and can be
// embedded in a page as is. Sanitizing an already sanitized value returns it
// unchanged.
//
// The transformation is lossy: anything that parses as a tag is removed, so
// "a<b" is stored as "a" and "Ada <ada@example.com>" as "Ada ". Characters
// such as & and < are stored escaped ("R&D" becomes "R&amp;D").
func NewStrictSanitizer() Sanitizer {
	policy := strictSanitizer()
	return SanitizerFunc(func(s string) string {
		if s == "" {
			return ""
		}
		return policy.Sanitize(s)
	})
}

func strictSanitizer() *bluemonday.Policy {
	strictPolicyOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
	return strictPolicy
}
