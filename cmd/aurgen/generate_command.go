package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"aurgen/internal/config"
	"aurgen/internal/generate"
	"aurgen/internal/script"
	"aurgen/internal/selector"
)

func newGenerateCommand(ctx *commandContext) *cobra.Command {
	var (
		modeFlag       string
		dirFlag        string
		outFlag        string
		inputFlag      string
		outputFlag     string
		helperFlag     string
		noNeeded       bool
		noSudoloop     bool
		noBatchinstall bool
		noAsdeps       bool
		force          bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate install scripts from helper transcripts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			mode, err := selector.ParseMode(modeFlag)
			if err != nil {
				return err
			}

			opts, err := buildRunOptions(cfg, runFlags{
				mode:       mode,
				dir:        dirFlag,
				out:        outFlag,
				input:      inputFlag,
				output:     outputFlag,
				helper:     helperFlag,
				noNeeded:   noNeeded,
				noSudoloop: noSudoloop,
				noBatch:    noBatchinstall,
				noAsdeps:   noAsdeps,
				force:      force,
			})
			if err != nil {
				return err
			}

			logger, err := ctx.logger()
			if err != nil {
				return err
			}

			store := ctx.openHistory()
			defer store.Close()

			runner := generate.New(opts, logger, store)
			summary, err := runner.Run(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote %d script(s)", summary.Written)
			if summary.Skipped > 0 {
				fmt.Fprintf(out, ", skipped %d existing", summary.Skipped)
			}
			fmt.Fprintln(out)
			return nil
		},
	}

	cmd.Flags().StringVar(&modeFlag, "mode", string(selector.ModeLatest), "Selection mode: latest or all")
	cmd.Flags().StringVar(&dirFlag, "dir", "", "Transcript directory (default from config)")
	cmd.Flags().StringVar(&outFlag, "out", "", "Output directory (default: transcript directory)")
	cmd.Flags().StringVar(&inputFlag, "input", "", "Explicit transcript path, bypassing selection")
	cmd.Flags().StringVar(&outputFlag, "output", "", "Explicit script path (requires --input)")
	cmd.Flags().StringVar(&helperFlag, "helper", "", "Installer program for generated scripts (default from config)")
	cmd.Flags().BoolVar(&noNeeded, "no-needed", false, "Omit --needed from the install command")
	cmd.Flags().BoolVar(&noSudoloop, "no-sudoloop", false, "Omit --sudoloop from the install command")
	cmd.Flags().BoolVar(&noBatchinstall, "no-batchinstall", false, "Omit --batchinstall from the install command")
	cmd.Flags().BoolVar(&noAsdeps, "no-asdeps", false, "Omit --asdeps from the install command")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Regenerate scripts even when they already exist")

	return cmd
}

type runFlags struct {
	mode       selector.Mode
	dir        string
	out        string
	input      string
	output     string
	helper     string
	noNeeded   bool
	noSudoloop bool
	noBatch    bool
	noAsdeps   bool
	force      bool
}

// buildRunOptions merges flags over config. Flags win; an unset --out falls
// back to the configured output directory and then to the transcript
// directory itself.
func buildRunOptions(cfg *config.Config, flags runFlags) (generate.Options, error) {
	var opts generate.Options
	var err error

	opts.Mode = flags.mode
	opts.Force = flags.force

	opts.TranscriptDir = cfg.Paths.TranscriptDir
	if strings.TrimSpace(flags.dir) != "" {
		if opts.TranscriptDir, err = config.ExpandPath(flags.dir); err != nil {
			return opts, fmt.Errorf("resolve --dir: %w", err)
		}
	}

	if strings.TrimSpace(flags.input) != "" {
		if opts.InputFile, err = config.ExpandPath(flags.input); err != nil {
			return opts, fmt.Errorf("resolve --input: %w", err)
		}
	}
	if strings.TrimSpace(flags.output) != "" {
		if opts.InputFile == "" {
			return opts, fmt.Errorf("--output requires --input")
		}
		if opts.OutputFile, err = config.ExpandPath(flags.output); err != nil {
			return opts, fmt.Errorf("resolve --output: %w", err)
		}
	}

	switch {
	case strings.TrimSpace(flags.out) != "":
		if opts.OutputDir, err = config.ExpandPath(flags.out); err != nil {
			return opts, fmt.Errorf("resolve --out: %w", err)
		}
	case strings.TrimSpace(flags.dir) != "":
		opts.OutputDir = opts.TranscriptDir
	case opts.InputFile != "":
		opts.OutputDir = filepath.Dir(opts.InputFile)
	default:
		opts.OutputDir = cfg.ResolvedOutputDir()
	}

	helper := cfg.Helper.Name
	if strings.TrimSpace(flags.helper) != "" {
		helper = strings.TrimSpace(flags.helper)
	}
	opts.Script = script.Options{
		Helper:       helper,
		Needed:       cfg.Helper.Needed && !flags.noNeeded,
		Sudoloop:     cfg.Helper.Sudoloop && !flags.noSudoloop,
		Batchinstall: cfg.Helper.Batchinstall && !flags.noBatch,
		Asdeps:       cfg.Helper.Asdeps && !flags.noAsdeps,
	}
	return opts, nil
}
