package compose

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"cssb/state"
)

// Run implements the build subcommand: it reads a YAML recipe and writes
// one selector string per line.
func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("build")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no recipe file has been specified")
	}
	if src, err = filepath.Abs(src); err != nil {
		return err
	}

	dst := cmd.Args().Get(1)
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	log.Info("Building selectors", zap.String("recipe", src))
	defer func(start time.Time) {
		log.Info("Building completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("unable to read recipe %q: %w", src, err)
	}
	env.Rpt.StoreData(filepath.Join("recipe", filepath.Base(src)), data)

	recipe, err := DecodeRecipe(data)
	if err != nil {
		return fmt.Errorf("unable to process recipe %q: %w", src, err)
	}

	var sb strings.Builder
	for i, spec := range recipe.Selectors {
		b, err := spec.Build()
		if err != nil {
			return fmt.Errorf("recipe selector %d: %w", i+1, err)
		}
		s, err := b.Finalize()
		if err != nil {
			return fmt.Errorf("recipe selector %d: %w", i+1, err)
		}
		log.Debug("Selector built", zap.Int("index", i+1), zap.String("selector", s))
		sb.WriteString(s)
		sb.WriteByte('\n')
	}
	env.Rpt.StoreData("output/selectors.txt", []byte(sb.String()))

	return writeOutput(env, log, dst, sb.String())
}

func writeOutput(env *state.LocalEnv, log *zap.Logger, dst, text string) error {
	if len(dst) == 0 {
		_, err := os.Stdout.WriteString(text)
		return err
	}

	dst, err := filepath.Abs(dst)
	if err != nil {
		return err
	}
	if _, err := os.Stat(dst); err == nil && !env.Overwrite {
		return fmt.Errorf("destination %q already exists (use --overwrite)", dst)
	}
	if err := os.WriteFile(dst, []byte(text), 0644); err != nil {
		return fmt.Errorf("unable to write destination %q: %w", dst, err)
	}
	log.Info("Output written", zap.String("destination", dst))
	return nil
}
