package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"aurgen/internal/config"
	"aurgen/internal/selector"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var dirFlag string
	var outFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transcripts and their generation state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			dir := cfg.Paths.TranscriptDir
			if strings.TrimSpace(dirFlag) != "" {
				if dir, err = config.ExpandPath(dirFlag); err != nil {
					return fmt.Errorf("resolve --dir: %w", err)
				}
			}
			outDir := cfg.ResolvedOutputDir()
			switch {
			case strings.TrimSpace(outFlag) != "":
				if outDir, err = config.ExpandPath(outFlag); err != nil {
					return fmt.Errorf("resolve --out: %w", err)
				}
			case strings.TrimSpace(dirFlag) != "":
				outDir = dir
			}

			candidates, err := selector.Enumerate(dir, outDir)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(candidates) == 0 {
				fmt.Fprintf(out, "No transcripts found in %s\n", dir)
				return nil
			}

			rows := make([][]string, 0, len(candidates))
			for _, cand := range candidates {
				state := "pending"
				if cand.Processed() {
					state = "generated"
				}
				rows = append(rows, []string{
					filepath.Base(cand.Input),
					filepath.Base(cand.Output),
					state,
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Transcript", "Script", "State"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().StringVar(&dirFlag, "dir", "", "Transcript directory (default from config)")
	cmd.Flags().StringVar(&outFlag, "out", "", "Output directory (default: transcript directory)")
	return cmd
}
