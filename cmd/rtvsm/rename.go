package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vicser16/rtvsm/internal/config"
	"github.com/vicser16/rtvsm/internal/history"
	"github.com/vicser16/rtvsm/internal/organize"
)

var (
	renameOpts       pipelineOpts
	renameOnConflict string
	renameYes        bool
)

var renameCmd = &cobra.Command{
	Use:   "rename [paths...]",
	Short: "Rename files with TMDB metadata and move them into place",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRename,
}

func init() {
	renameOpts.register(renameCmd)
	renameCmd.Flags().StringVar(&renameOnConflict, "on-conflict", "ask",
		"What to do when a destination exists: ask, skip, skip-all, overwrite or overwrite-all")
	renameCmd.Flags().BoolVarP(&renameYes, "yes", "y", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(renameCmd)
}

func runRename(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cfg)
	slog.SetDefault(log)

	conflict, err := conflictFunc(renameOnConflict, cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	plan, err := buildPlan(ctx, cfg, &renameOpts, args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s, %d file(s):\n\n", planLabel(plan.identity), len(plan.ops))
	for _, op := range plan.ops {
		fmt.Fprintf(out, "  %s\n    -> %s\n", op.From, op.To)
	}

	if !renameYes && !confirm(cmd.InOrStdin(), out, fmt.Sprintf("\nMove %d file(s)?", len(plan.ops))) {
		fmt.Fprintln(out, "aborted")
		return nil
	}

	mover := organize.NewMover(organize.OSFilesystem{}, log)
	result := mover.Run(plan.ops, conflict)

	if cfg.Organize.DownloadPosters && plan.posterDir != "" && result.Succeeded > 0 {
		if err := plan.client.DownloadPoster(ctx, plan.identity.PosterPath, plan.posterDir); err != nil {
			log.Warn("poster download failed", "error", err)
		}
	}

	if err := recordBatch(cfg, plan, result); err != nil {
		log.Warn("history not recorded", "error", err)
	}

	printSummary(out, plan.ops, result)
	return nil
}

// confirm asks a yes/no question; anything but y/yes declines.
func confirm(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", prompt)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// conflictFunc maps the --on-conflict flag to the mover's conflict callback.
// "ask" prompts per conflicting file; the other modes answer uniformly.
func conflictFunc(mode string, in io.Reader, out io.Writer) (organize.ConflictFunc, error) {
	switch mode {
	case "ask":
		reader := bufio.NewReader(in)
		return func(from, to string) organize.Decision {
			fmt.Fprintf(out, "%s already exists.\n[o]verwrite, [s]kip, overwrite [a]ll, s[k]ip all: ", to)
			line, err := reader.ReadString('\n')
			if err != nil {
				return organize.Skip
			}
			switch strings.ToLower(strings.TrimSpace(line)) {
			case "o":
				return organize.Overwrite
			case "a":
				return organize.OverwriteAll
			case "k":
				return organize.SkipAll
			default:
				return organize.Skip
			}
		}, nil
	case "skip":
		return fixedDecision(organize.Skip), nil
	case "skip-all":
		return fixedDecision(organize.SkipAll), nil
	case "overwrite":
		return fixedDecision(organize.Overwrite), nil
	case "overwrite-all":
		return fixedDecision(organize.OverwriteAll), nil
	default:
		return nil, fmt.Errorf("unknown conflict mode %q", mode)
	}
}

func fixedDecision(d organize.Decision) organize.ConflictFunc {
	return func(from, to string) organize.Decision { return d }
}

// recordBatch persists the run so it shows up in `rtvsm history`.
func recordBatch(cfg *config.Config, plan *pipelinePlan, result organize.Result) error {
	store, db, err := openHistory(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	batch := &history.Batch{
		MediaType: string(plan.identity.Type),
		Title:     plan.identity.Title,
		Total:     len(plan.ops),
		Succeeded: result.Succeeded,
	}
	for _, op := range plan.ops {
		batch.Moves = append(batch.Moves, history.Move{
			Src:     op.From,
			Dest:    op.To,
			Outcome: op.Outcome.String(),
			Reason:  op.Reason,
		})
	}
	return store.Record(batch)
}

func printSummary(out io.Writer, ops []organize.MoveOperation, result organize.Result) {
	fmt.Fprintf(out, "\n%d of %d file(s) moved\n", result.Succeeded, len(ops))
	if result.Complete() {
		return
	}
	for _, f := range result.Failures {
		fmt.Fprintf(out, "  not moved: %s (%s)\n", f.Path, f.Reason)
	}
}
