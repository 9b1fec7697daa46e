package compose

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	"cssb/config"
	"cssb/selector"
	"cssb/state"
)

// Inspect implements the parse subcommand: it decomposes selector strings
// into ordered part listings.
func Inspect(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("parse")

	if cmd.Args().Len() == 0 {
		return errors.New("no selectors have been specified")
	}

	p := selector.NewParser(env.Log)
	p.Strict = env.StrictParse

	var docs []selectorDoc
	for _, s := range cmd.Args().Slice() {
		comps, err := p.Decompose(s)
		if err != nil {
			return fmt.Errorf("unable to parse selector %q: %w", s, err)
		}
		// replaying through a builder verifies part order
		if _, err := p.Parse(s); err != nil {
			return fmt.Errorf("selector %q violates part rules: %w", s, err)
		}
		log.Debug("Selector decomposed", zap.String("selector", s), zap.Int("compounds", len(comps)))
		docs = append(docs, newSelectorDoc(s, comps))
	}

	out, err := renderDocs(env.Format, docs)
	if err != nil {
		return err
	}
	env.Rpt.StoreData("output/parse."+env.Format.String(), []byte(out))

	_, err = os.Stdout.WriteString(out)
	return err
}

type (
	partDoc struct {
		Part  string `yaml:"part"`
		Value string `yaml:"value"`
	}

	compoundDoc struct {
		Parts []partDoc `yaml:"parts"`
		// Combinator joins this compound to the next one, absent on the last.
		Combinator string `yaml:"combinator,omitempty"`
	}

	selectorDoc struct {
		Selector  string        `yaml:"selector"`
		Compounds []compoundDoc `yaml:"compounds"`
	}
)

func newSelectorDoc(s string, comps []selector.Compound) selectorDoc {
	doc := selectorDoc{Selector: s}
	for _, c := range comps {
		cd := compoundDoc{}
		for _, pv := range c.Parts {
			cd.Parts = append(cd.Parts, partDoc{Part: pv.Part.String(), Value: pv.Value})
		}
		if c.Joint != "" {
			cd.Combinator = c.Joint.Name()
		}
		doc.Compounds = append(doc.Compounds, cd)
	}
	return doc
}

func renderDocs(format config.OutputFmt, docs []selectorDoc) (string, error) {
	if format == config.OutputFmtYAML {
		data, err := yaml.Marshal(docs)
		if err != nil {
			return "", fmt.Errorf("unable to marshal part listing: %w", err)
		}
		return string(data), nil
	}

	var sb strings.Builder
	for _, doc := range docs {
		sb.WriteString(doc.Selector)
		sb.WriteByte('\n')
		for _, c := range doc.Compounds {
			for _, pv := range c.Parts {
				fmt.Fprintf(&sb, "  %-14s %s\n", pv.Part, pv.Value)
			}
			if len(c.Combinator) > 0 {
				fmt.Fprintf(&sb, "  %-14s\n", "("+c.Combinator+")")
			}
		}
	}
	return sb.String(), nil
}
