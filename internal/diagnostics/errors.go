// Package diagnostics formats interpreter errors with source context,
// mirroring the caret-pointing error display used throughout the teacher
// toolchain's compiler front end.
package diagnostics

import (
	"fmt"
	"strings"

	"github.com/cwbudde/goscm/internal/token"
)

// SourceError is an error anchored to a position in a source string.
// TokenError and ParseError embed it so the top-level driver can render
// either of them uniformly; evaluation errors carry no source position.
type SourceError struct {
	Pos     token.Position
	Message string
	Source  string
	File    string
}

// NewSourceError builds a SourceError at the given position.
func NewSourceError(pos token.Position, message, source, file string) *SourceError {
	return &SourceError{Pos: pos, Message: message, Source: source, File: file}
}

// Error implements the error interface, returning the plain message.
func (e *SourceError) Error() string {
	return e.Message
}

// Format renders the error with the offending source line and a caret
// pointing at the column. With color set, the caret and message are
// wrapped in ANSI escapes.
func (e *SourceError) Format(color bool) string {
	var sb strings.Builder

	if e.File != "" {
		fmt.Fprintf(&sb, "Error in %s:%s\n", e.File, e.Pos)
	} else {
		fmt.Fprintf(&sb, "Error at %s\n", e.Pos)
	}

	if line := e.sourceLine(e.Pos.Line); line != "" {
		prefix := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(prefix)
		sb.WriteString(line)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(prefix)+e.Pos.Column-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m")
	}
	return sb.String()
}

func (e *SourceError) sourceLine(n int) string {
	if e.Source == "" || n < 1 {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if n > len(lines) {
		return ""
	}
	return lines[n-1]
}
