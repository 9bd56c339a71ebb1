package domain

import "strings"

// CleanText trims surrounding whitespace from user-supplied text.
// Inner whitespace and case are preserved: card faces are shown verbatim.
func CleanText(text string) string {
	return strings.TrimSpace(text)
}

// CleanOptional trims an optional text value and collapses blank values to nil.
func CleanOptional(text *string) *string {
	if text == nil {
		return nil
	}
	v := strings.TrimSpace(*text)
	if v == "" {
		return nil
	}
	return &v
}
