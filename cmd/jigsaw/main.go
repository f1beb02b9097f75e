// Command jigsaw reassembles a puzzle from its piece list.
//
//	jigsaw [--config jigsaw.toml] [--in problem.csv] [--out solution.csv]
//	       [--render] [--allow-partial] [--strict]
//	jigsaw gen 4x6 [--seed 1] [--out problem.csv]
//
// Input rows are id,top,right,bottom,left,orientation,row,col with the
// orientation/row/col columns set on one seed piece. The output repeats every
// row with those columns filled in for all pieces.
package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/jigsaw/grid"
	"github.com/katalvlaran/jigsaw/internal/config"
	"github.com/katalvlaran/jigsaw/internal/logging"
	"github.com/katalvlaran/jigsaw/puzzle"
	"github.com/katalvlaran/jigsaw/puzzlecsv"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "jigsaw:", err)
		os.Exit(1)
	}
}

// flags holds the values bound to the command line. Only flags the user
// actually passed override the config file.
type flags struct {
	configPath   string
	in           string
	out          string
	render       bool
	allowPartial bool
	strict       bool
}

func newRootCmd() *cobra.Command {
	var f flags
	rootCmd := &cobra.Command{
		Use:   "jigsaw",
		Short: "Reassemble a jigsaw puzzle from its piece list",
		Long: `Read a piece list, place every piece reachable from the seed and write
the list back with orientation, row and col filled in.

Examples:
  jigsaw
  jigsaw --in scans/box3.csv --out box3.solved.csv --render
  jigsaw --config jigsaw.toml --allow-partial`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(cmd, &f)
			if err != nil {
				return err
			}
			return solve(cmd, cfg, log)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "TOML config file")
	pf.StringVarP(&f.out, "out", "o", "", "output CSV (default solution.csv, problem.csv for gen)")

	rootCmd.Flags().StringVarP(&f.in, "in", "i", "", "input CSV (default problem.csv)")
	rootCmd.Flags().BoolVar(&f.render, "render", false, "print the solved board")
	rootCmd.Flags().BoolVar(&f.allowPartial, "allow-partial", false, "write pieces reachable from the seed even if others are not")
	rootCmd.Flags().BoolVar(&f.strict, "strict", false, "check labels before solving and the assembled board before writing")

	rootCmd.AddCommand(newGenCmd(&f))
	return rootCmd
}

// setup loads the config file, lays changed flags over it and builds the
// run logger.
func setup(cmd *cobra.Command, f *flags) (config.Config, zerolog.Logger, error) {
	cfg := config.Default()
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return config.Config{}, zerolog.Nop(), err
		}
		cfg = loaded
	}
	changed := cmd.Flags().Changed
	if changed("in") {
		cfg.Input = f.in
	}
	if changed("out") {
		cfg.Output = f.out
		cfg.OutputSet = true
	}
	if changed("render") {
		cfg.Render = f.render
	}
	if changed("allow-partial") {
		cfg.AllowPartial = f.allowPartial
	}
	if changed("strict") {
		cfg.Strict = f.strict
	}

	log := logging.New("jigsaw", logging.Config{Level: cfg.LogLevel, NoColor: cfg.LogNoColor, Out: cmd.ErrOrStderr()}).
		With().Str("run", uuid.New().String()).Logger()
	return cfg, log, nil
}

func solve(cmd *cobra.Command, cfg config.Config, log zerolog.Logger) error {
	tab, err := puzzlecsv.ReadFile(cfg.Input)
	if err != nil {
		return err
	}
	log.Info().Str("input", cfg.Input).Int("pieces", len(tab.Records)).Msg("puzzle loaded")

	res, err := puzzle.Solve(tab.Records, puzzle.Options{
		AllowPartial: cfg.AllowPartial,
		Strict:       cfg.Strict,
		Logger:       &log,
	})
	if err != nil {
		return err
	}

	var layout *grid.Layout
	if cfg.Strict {
		if layout, err = grid.FromSolution(res.Solution); err != nil {
			return err
		}
		if err := layout.Verify(); err != nil {
			return err
		}
		log.Info().Int("width", layout.Width).Int("height", layout.Height).Int("holes", layout.Holes()).Msg("layout verified")
	}

	solved := &puzzlecsv.Table{Header: tab.Header, Records: puzzle.Apply(tab.Records, res.Solution)}
	if err := puzzlecsv.WriteFile(cfg.Output, solved); err != nil {
		return err
	}
	log.Info().Str("output", cfg.Output).Msg("solution written")

	if !cfg.Render {
		return nil
	}
	if layout == nil {
		if layout, err = grid.FromSolution(res.Solution); err != nil {
			return fmt.Errorf("render: %w", err)
		}
	}
	return layout.Render(cmd.OutOrStdout())
}
