package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/vicser16/rtvsm/internal/media"
)

var previewOpts pipelineOpts

var previewCmd = &cobra.Command{
	Use:   "preview [paths...]",
	Short: "Show planned renames and moves without touching files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runPreview,
}

func init() {
	previewOpts.register(previewCmd)
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	slog.SetDefault(newLogger(cfg))

	plan, err := buildPlan(cmd.Context(), cfg, &previewOpts, args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s, %d file(s):\n\n", planLabel(plan.identity), len(plan.ops))
	for _, op := range plan.ops {
		fmt.Fprintf(out, "  %s\n    -> %s\n", op.From, op.To)
	}
	return nil
}

func planLabel(id media.Identity) string {
	if id.Year > 0 {
		return fmt.Sprintf("%s (%d)", id.Title, id.Year)
	}
	return id.Title
}
