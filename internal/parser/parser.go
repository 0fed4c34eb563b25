// Package parser builds value.Value trees (the same data model the
// evaluator runs on, per spec.md §3's homoiconicity requirement) from a
// token.Token stream, per the grammar table in spec.md §4.3. Grounded on
// the teacher's recursive-descent internal/parser shape and on
// original_source/src/parser.rs for the exact quote-family desugaring and
// dotted-list handling.
package parser

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/cwbudde/goscm/internal/diagnostics"
	"github.com/cwbudde/goscm/internal/lexer"
	"github.com/cwbudde/goscm/internal/token"
	"github.com/cwbudde/goscm/internal/value"
)

var foldCase = cases.Lower(language.Und)

// Parser consumes a fixed token slice produced by the lexer and builds
// one value.Value per top-level form.
type Parser struct {
	tokens []token.Token
	pos    int
	source string
	file   string
}

// New creates a Parser over a pre-scanned token slice. source and file
// are carried through only for error formatting (diagnostics.SourceError).
func New(tokens []token.Token, source, file string) *Parser {
	return &Parser{tokens: tokens, source: source, file: file}
}

// Parse lexes and parses source in one step, the common entry point for
// callers that don't need the raw token stream.
func Parse(source, file string) ([]value.Value, error) {
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		return nil, attach(err, source, file)
	}
	p := New(tokens, source, file)
	return p.ParseProgram()
}

// ParseProgram consumes every remaining token, returning one Value per
// top-level form.
func (p *Parser) ParseProgram() ([]value.Value, error) {
	var forms []value.Value
	for !p.atEnd() {
		v, err := p.parseForm()
		if err != nil {
			return nil, attach(err, p.source, p.file)
		}
		forms = append(forms, v)
	}
	return forms, nil
}

func (p *Parser) atEnd() bool { return p.pos >= len(p.tokens) }

func (p *Parser) peek() token.Token {
	if p.atEnd() {
		return token.Token{Type: token.EOF}
	}
	return p.tokens[p.pos]
}

func (p *Parser) advance() token.Token {
	t := p.peek()
	if !p.atEnd() {
		p.pos++
	}
	return t
}

// parseForm parses a single datum per spec.md §4.3's grammar table.
func (p *Parser) parseForm() (value.Value, error) {
	if p.atEnd() {
		return nil, diagnostics.NewParseError(token.Position{}, diagnostics.MsgEOF)
	}
	tok := p.advance()
	switch tok.Type {
	case token.IDENT:
		return value.Sym(foldCase.String(tok.Literal)), nil
	case token.BOOL:
		return value.Bool(tok.Literal == "#t"), nil
	case token.NUMBER:
		n, err := value.ParseNumber(tok.Literal)
		if err != nil {
			return nil, diagnostics.NewParseError(tok.Pos, diagnostics.MsgInvalidNumber, tok.Literal)
		}
		return value.MakeNumber(n), nil
	case token.STRING:
		s, err := decodeString(tok.Literal)
		if err != nil {
			return nil, diagnostics.NewParseError(tok.Pos, diagnostics.MsgInvalidStringEscape, tok.Literal)
		}
		return value.StringValue{Text: s}, nil
	case token.LPAREN:
		return p.parseList(tok.Pos)
	case token.VECTOR_OPEN:
		return p.parseVector(tok.Pos)
	case token.BYTEVECTOR_OPEN:
		return p.parseVector(tok.Pos)
	case token.QUOTE:
		return p.wrapQuote("quote", tok.Pos)
	case token.BACKQUOTE:
		return p.wrapQuote("quasiquote", tok.Pos)
	case token.COMMA:
		return p.wrapQuote("unquote", tok.Pos)
	case token.COMMA_AT:
		return p.wrapQuote("unquote-splicing", tok.Pos)
	case token.RPAREN:
		return nil, diagnostics.NewParseError(tok.Pos, diagnostics.MsgMissingOpenParenthesis)
	case token.DOT:
		return nil, diagnostics.NewParseError(tok.Pos, diagnostics.MsgInvalidDot)
	case token.EOF:
		return nil, diagnostics.NewParseError(tok.Pos, diagnostics.MsgEOF)
	default:
		return nil, diagnostics.NewParseError(tok.Pos, diagnostics.MsgEOF)
	}
}

func (p *Parser) wrapQuote(symbol string, pos token.Position) (value.Value, error) {
	inner, err := p.parseForm()
	if err != nil {
		return nil, err
	}
	return value.List(value.Sym(symbol), inner), nil
}

// parseList parses the contents of a "(" already consumed at openPos,
// including the improper "( a b . c )" dotted-tail form (spec.md §4.3).
func (p *Parser) parseList(openPos token.Position) (value.Value, error) {
	var items []value.Value
	for {
		if p.atEnd() {
			return nil, diagnostics.NewParseError(openPos, diagnostics.MsgMissingCloseParenthesis)
		}
		if p.peek().Type == token.RPAREN {
			p.advance()
			return value.List(items...), nil
		}
		if p.peek().Type == token.DOT {
			dotPos := p.advance().Pos
			tail, err := p.parseForm()
			if err != nil {
				return nil, err
			}
			if p.atEnd() || p.peek().Type != token.RPAREN {
				if p.atEnd() {
					return nil, diagnostics.NewParseError(openPos, diagnostics.MsgMissingCloseParenthesis)
				}
				return nil, diagnostics.NewParseError(dotPos, diagnostics.MsgTooManyObjects)
			}
			p.advance()
			return value.ListWithTail(items, tail), nil
		}
		v, err := p.parseForm()
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
}

// parseVector parses "#(" or "#u8(" contents (already consumed) up to the
// matching ")". Both literal and bytevector open tokens share this
// reader; spec.md §3 treats bytevectors as ordinary vectors of exact
// integers rather than a distinct packed representation.
func (p *Parser) parseVector(openPos token.Position) (value.Value, error) {
	var items []value.Value
	for {
		if p.atEnd() {
			return nil, diagnostics.NewParseError(openPos, diagnostics.MsgMissingCloseParenthesis)
		}
		if p.peek().Type == token.RPAREN {
			p.advance()
			return value.VectorValue{Items: items}, nil
		}
		v, err := p.parseForm()
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
}

// decodeString strips the surrounding quotes from a raw STRING token
// literal and resolves backslash escapes, including the \x<hex>; Unicode
// escape (spec.md §4.2).
func decodeString(raw string) (string, error) {
	body := raw[1 : len(raw)-1]
	var b strings.Builder
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		if i >= len(body) {
			return "", strconv.ErrSyntax
		}
		switch body[i] {
		case '"':
			b.WriteByte('"')
		case '\\':
			b.WriteByte('\\')
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case 'b':
			b.WriteByte('\b')
		case 'a':
			b.WriteByte('\a')
		case 'x':
			end := strings.IndexByte(body[i+1:], ';')
			if end < 0 {
				return "", strconv.ErrSyntax
			}
			hex := body[i+1 : i+1+end]
			code, err := strconv.ParseInt(hex, 16, 32)
			if err != nil {
				return "", err
			}
			b.WriteRune(rune(code))
			i += end + 1
		default:
			return "", strconv.ErrSyntax
		}
	}
	return b.String(), nil
}

// attach fills in the Source/File fields of a diagnostics error produced
// without them, so the top-level driver can render full context.
func attach(err error, source, file string) error {
	switch e := err.(type) {
	case *diagnostics.TokenError:
		e.Source, e.File = source, file
		return e
	case *diagnostics.ParseError:
		e.Source, e.File = source, file
		return e
	default:
		return err
	}
}
