package compose

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"cssb/selector"
	"cssb/state"
	"cssb/stylesheet"
)

// Extract implements the extract subcommand: it pulls every ruleset
// selector out of a CSS file and decomposes them.
func Extract(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("extract")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no stylesheet has been specified")
	}
	src, err := filepath.Abs(src)
	if err != nil {
		return err
	}
	if cmd.Args().Len() > 1 {
		log.Warn("Malformed command line, too many sources", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("unable to read stylesheet %q: %w", src, err)
	}
	env.Rpt.StoreData(filepath.Join("stylesheet", filepath.Base(src)), data)

	sels := stylesheet.NewScanner(env.Log).Selectors(data)
	log.Info("Stylesheet scanned", zap.String("source", src), zap.Int("selectors", len(sels)))

	p := selector.NewParser(env.Log)
	p.Strict = env.StrictParse

	var docs []selectorDoc
	for _, s := range sels {
		comps, err := p.Decompose(s)
		if err != nil {
			return fmt.Errorf("unable to parse selector %q: %w", s, err)
		}
		docs = append(docs, newSelectorDoc(s, comps))
	}

	out, err := renderDocs(env.Format, docs)
	if err != nil {
		return err
	}
	env.Rpt.StoreData("output/extract."+env.Format.String(), []byte(out))

	_, err = os.Stdout.WriteString(out)
	return err
}
