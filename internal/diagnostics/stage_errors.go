package diagnostics

import (
	"fmt"

	"github.com/cwbudde/goscm/internal/token"
)

// TokenError is produced by the lexer (spec.md §4.2, §7.1).
type TokenError struct {
	*SourceError
}

// NewTokenError builds a TokenError with a formatted message.
func NewTokenError(pos token.Position, format string, args ...any) *TokenError {
	return &TokenError{NewSourceError(pos, fmt.Sprintf(format, args...), "", "")}
}

// ParseError is produced by the parser (spec.md §4.3, §7.2).
type ParseError struct {
	*SourceError
}

// NewParseError builds a ParseError with a formatted message.
func NewParseError(pos token.Position, format string, args ...any) *ParseError {
	return &ParseError{NewSourceError(pos, fmt.Sprintf(format, args...), "", "")}
}

// UnknownIdentifierError is EvalError's UnknownIdentifier variant
// (spec.md §7.3): a symbol failed to resolve in the environment chain.
type UnknownIdentifierError struct {
	Name string
}

func (e *UnknownIdentifierError) Error() string {
	return fmt.Sprintf(MsgUnknownIdentifier, e.Name)
}

// NewUnknownIdentifierError reports a symbol that did not resolve.
func NewUnknownIdentifierError(name string) *UnknownIdentifierError {
	return &UnknownIdentifierError{Name: name}
}

// ApplyError is EvalError's ApplyError variant (spec.md §7.4): invalid
// procedure, wrong argument count/type, or a zero divisor.
type ApplyError struct {
	Message string
}

func (e *ApplyError) Error() string {
	return e.Message
}

// NewApplyError wraps a formatted message as an ApplyError.
func NewApplyError(format string, args ...any) *ApplyError {
	return &ApplyError{Message: fmt.Sprintf(format, args...)}
}

// NotAProcedureError reports applying a non-procedure value.
func NotAProcedureError(printed string) *ApplyError {
	return NewApplyError(MsgNotAProcedure, printed)
}

// NotATypeError reports an argument of the wrong runtime type.
func NotATypeError(printed, expected string) *ApplyError {
	return NewApplyError("%s", Invalid(fmt.Sprintf(MsgNotAType, printed, expected)))
}

// ArityError reports an argument-count mismatch for a named operator.
// least == most means an exact count is required; most == -1 means "at
// least least" (a variadic lower bound), matching
// original_source/src/error.rs's validate_number_of_arguments.
func ArityError(name string, least, most, actual int) *ApplyError {
	switch {
	case least == most:
		if actual != least {
			return NewApplyError(MsgWrongArgCount, name, least, actual)
		}
	case most < 0:
		if actual < least {
			return NewApplyError(MsgTooFewArguments, name, least, actual)
		}
	case actual < least:
		return NewApplyError(MsgTooFewArguments, name, least, actual)
	case actual > most:
		return NewApplyError(MsgTooManyArguments, name, most, actual)
	}
	return nil
}

// ZeroDivisorError reports division by zero (spec.md §4.1).
func ZeroDivisorError() *ApplyError {
	return NewApplyError("%s", Invalid(MsgDivisionByZero))
}

// NotImplementedError reports a reserved-but-unimplemented special form
// (syntax-rules, let-syntax, letrec-syntax per spec.md §9 Open Questions).
func NotImplementedError(form string) *ApplyError {
	return NewApplyError(MsgNotImplemented, form)
}
