package selector

import (
	"fmt"
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// PartValue is one decomposed selector part.
type PartValue struct {
	Part  Part
	Value string
}

// Compound is one compound selector within a complex selector. Joint is the
// combinator between this compound and the next one, empty on the last.
type Compound struct {
	Parts []PartValue
	Joint Combinator
}

// Parser decomposes CSS selector strings into ordered parts.
type Parser struct {
	log *zap.Logger

	// Strict makes unsupported token sequences fail the parse instead of
	// being skipped with a debug message.
	Strict bool
}

// NewParser creates a new selector parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("selector-parser")}
}

// Decompose tokenizes a selector string into compounds and their joining
// combinators. Payload text (attribute expressions, pseudo-class arguments)
// is carried verbatim; whitespace joints are reported as Descendant
// regardless of how many spaces the source used.
func (p *Parser) Decompose(s string) ([]Compound, error) {
	l := css.NewLexer(parse.NewInputString(s))

	var (
		comps   []Compound
		cur     Compound
		pending Combinator // explicit combinator waiting for the next compound
		sawWS   bool
		colons  int
	)

	addPart := func(part Part, value string) {
		if len(cur.Parts) > 0 && (pending != "" || sawWS) {
			joint := pending
			if joint == "" {
				joint = Descendant
			}
			cur.Joint = joint
			comps = append(comps, cur)
			cur = Compound{}
		}
		pending, sawWS = "", false
		cur.Parts = append(cur.Parts, PartValue{Part: part, Value: value})
	}

	skip := func(what, data string) error {
		if p.Strict {
			return fmt.Errorf("unsupported %s %q in selector %q", what, data, s)
		}
		p.log.Debug("Skipping unsupported selector token",
			zap.String("kind", what), zap.String("token", data), zap.String("selector", s))
		return nil
	}

	for {
		tt, data := l.Next()

		// Colons accumulate silently; anything else resolves them first.
		if tt != css.ColonToken && colons > 0 {
			part := PartPseudoClass
			if colons > 1 {
				part = PartPseudoElement
			}
			colons = 0
			switch tt {
			case css.IdentToken:
				addPart(part, string(data))
				continue
			case css.FunctionToken:
				value, err := p.functionText(l, data)
				if err != nil {
					return nil, err
				}
				addPart(part, value)
				continue
			default:
				if err := skip("pseudo selector", string(data)); err != nil {
					return nil, err
				}
			}
		}

		switch tt {
		case css.ErrorToken:
			if err := l.Err(); err != nil && err != io.EOF {
				return nil, fmt.Errorf("malformed selector %q: %w", s, err)
			}
			if len(cur.Parts) > 0 {
				comps = append(comps, cur)
			}
			return comps, nil

		case css.WhitespaceToken:
			sawWS = true

		case css.ColonToken:
			colons++

		case css.IdentToken:
			addPart(PartElement, string(data))

		case css.HashToken:
			addPart(PartID, strings.TrimPrefix(string(data), "#"))

		case css.LeftBracketToken:
			value, err := p.bracketText(l, s)
			if err != nil {
				return nil, err
			}
			addPart(PartAttr, value)

		case css.DelimToken:
			switch string(data) {
			case ".":
				ct, cd := l.Next()
				if ct != css.IdentToken {
					if err := skip("class selector", string(cd)); err != nil {
						return nil, err
					}
					continue
				}
				addPart(PartClass, string(cd))
			case ">", "~", "+":
				pending = Combinator(data)
			case "*":
				addPart(PartElement, "*")
			default:
				if err := skip("delimiter", string(data)); err != nil {
					return nil, err
				}
			}

		default:
			if err := skip("token", string(data)); err != nil {
				return nil, err
			}
		}
	}
}

// functionText collects a functional pseudo selector like "nth-of-type(even)"
// back into its literal text. fn is the FunctionToken data and already
// carries the opening parenthesis.
func (p *Parser) functionText(l *css.Lexer, fn []byte) (string, error) {
	var sb strings.Builder
	sb.Write(fn)
	depth := 1
	for depth > 0 {
		tt, data := l.Next()
		switch tt {
		case css.ErrorToken:
			return "", fmt.Errorf("unterminated functional selector %q: %w", sb.String(), l.Err())
		case css.FunctionToken, css.LeftParenthesisToken:
			depth++
		case css.RightParenthesisToken:
			depth--
		}
		sb.Write(data)
	}
	return sb.String(), nil
}

// bracketText collects an attribute expression verbatim up to the closing
// bracket, e.g. `href$=".png"`.
func (p *Parser) bracketText(l *css.Lexer, sel string) (string, error) {
	var sb strings.Builder
	for {
		tt, data := l.Next()
		switch tt {
		case css.ErrorToken:
			return "", fmt.Errorf("unterminated attribute selector in %q: %w", sel, l.Err())
		case css.RightBracketToken:
			return sb.String(), nil
		default:
			sb.Write(data)
		}
	}
}

// Parse decomposes a selector string and replays it through a Builder, so
// the result is subject to the same part ordering rules as hand-built
// selectors. Whitespace joints are normalized to the builder's descendant
// rendering.
func (p *Parser) Parse(s string) (Builder, error) {
	comps, err := p.Decompose(s)
	if err != nil {
		return Builder{}, err
	}
	if len(comps) == 0 {
		return Builder{}, nil
	}

	build := func(c Compound) Builder {
		b := New()
		for _, pv := range c.Parts {
			b = b.Add(pv.Part, pv.Value)
		}
		return b
	}

	out := build(comps[0])
	for i := 1; i < len(comps); i++ {
		out = Combine(out, comps[i-1].Joint, build(comps[i]))
	}
	return out, out.Err()
}
