// Package diag builds labelled span-based diagnostics and renders them as
// headers, source snippets with underlines, and hints against the virtual
// file store.
package diag

import (
	"github.com/wave-lang/wavec/internal/text"
)

// Diagnostic is one error or warning anchored to a byte range of a file.
// Message, label, and hint are owned by the diagnostic.
type Diagnostic struct {
	Location text.Span
	IsError  bool
	Message  string
	Label    string
	Hint     string // empty means no hint
}

// Error constructs an error diagnostic. Pass hint "" to omit the hint line.
func Error(location text.Span, message, label, hint string) Diagnostic {
	return Diagnostic{
		Location: location,
		IsError:  true,
		Message:  message,
		Label:    label,
		Hint:     hint,
	}
}

// Warn constructs a warning diagnostic.
func Warn(location text.Span, message, label, hint string) Diagnostic {
	return Diagnostic{
		Location: location,
		Message:  message,
		Label:    label,
		Hint:     hint,
	}
}

// HasErrors reports whether any diagnostic in diags is an error.
func HasErrors(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.IsError {
			return true
		}
	}
	return false
}
