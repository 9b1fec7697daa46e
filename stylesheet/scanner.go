// Package stylesheet extracts selector preludes from CSS text.
package stylesheet

import (
	"bytes"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Scanner walks CSS text and collects the selectors its rulesets apply to.
// Declarations and @-rule contents are not interpreted, only the preludes
// matter here.
type Scanner struct {
	log *zap.Logger
}

// NewScanner creates a new stylesheet scanner.
func NewScanner(log *zap.Logger) *Scanner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Scanner{log: log.Named("stylesheet-scanner")}
}

// Selectors returns every selector of every ruleset in order of appearance.
// Grouped preludes ("h2, h3, h4") are split into individual selectors.
// Rulesets nested in @media blocks are included, other @-rules are skipped.
func (s *Scanner) Selectors(data []byte) []string {
	var out []string

	input := parse.NewInput(bytes.NewReader(data))
	parser := css.NewParser(input, false)

	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			if err := parser.Err(); err != nil && err.Error() != "EOF" {
				s.log.Debug("CSS parse error", zap.Error(err))
			}
			return out

		case css.BeginAtRuleGrammar:
			atRule := string(data)
			if atRule == "@media" {
				// rulesets inside the block surface through the same
				// grammar states, nothing to do here
				s.log.Debug("Descending into @media block")
				continue
			}
			s.skipAtRuleBlock(parser)
			s.log.Debug("Skipping @-rule", zap.String("rule", atRule))

		case css.AtRuleGrammar:
			// simple @-rule without a block (e.g. @import)
			s.log.Debug("Skipping @-rule", zap.String("rule", string(data)))

		case css.BeginRulesetGrammar, css.QualifiedRuleGrammar:
			out = append(out, s.prelude(data, parser.Values())...)
		}
	}
}

// prelude assembles selector strings from ruleset tokens and splits grouped
// selectors.
func (s *Scanner) prelude(data []byte, values []css.Token) []string {
	var sb strings.Builder
	sb.Write(data)
	for _, v := range values {
		sb.Write(v.Data)
	}

	var selectors []string
	for sel := range strings.SplitSeq(sb.String(), ",") {
		sel = strings.TrimSpace(sel)
		if sel != "" {
			selectors = append(selectors, sel)
		}
	}
	return selectors
}

// skipAtRuleBlock skips tokens until the matching end of an @-rule block.
func (s *Scanner) skipAtRuleBlock(parser *css.Parser) {
	depth := 1
	for depth > 0 {
		gt, _, _ := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			return
		case css.BeginAtRuleGrammar, css.BeginRulesetGrammar:
			depth++
		case css.EndAtRuleGrammar, css.EndRulesetGrammar:
			depth--
		}
	}
}
