package main

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	_ "modernc.org/sqlite"

	"github.com/vicser16/rtvsm/internal/config"
	"github.com/vicser16/rtvsm/internal/history"
)

var (
	historyLimit int
	historyID    int64
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past rename batches",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Number of batches to list, 0 for all")
	historyCmd.Flags().Int64Var(&historyID, "id", 0, "Show every move of one batch")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, db, err := openHistory(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	out := cmd.OutOrStdout()

	if historyID != 0 {
		batch, err := store.Get(historyID)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "batch %d  %s  %s  %s  %d/%d moved\n\n",
			batch.ID, batch.CreatedAt.Format("2006-01-02 15:04"),
			batch.MediaType, batch.Title, batch.Succeeded, batch.Total)
		for _, m := range batch.Moves {
			fmt.Fprintf(out, "  [%s] %s\n    -> %s\n", m.Outcome, m.Src, m.Dest)
			if m.Reason != "" {
				fmt.Fprintf(out, "       %s\n", m.Reason)
			}
		}
		return nil
	}

	batches, err := store.List(historyLimit)
	if err != nil {
		return err
	}
	if len(batches) == 0 {
		fmt.Fprintln(out, "no batches recorded")
		return nil
	}

	fmt.Fprintf(out, "%-6s %-17s %-6s %-30s %s\n", "ID", "DATE", "TYPE", "TITLE", "MOVED")
	for _, b := range batches {
		fmt.Fprintf(out, "%-6d %-17s %-6s %-30s %d/%d\n",
			b.ID, b.CreatedAt.Format("2006-01-02 15:04"), b.MediaType, b.Title, b.Succeeded, b.Total)
	}
	return nil
}

// openHistory opens the history database, creating its directory and schema
// when needed. The caller closes the returned handle.
func openHistory(cfg *config.Config) (*history.Store, *sql.DB, error) {
	if dir := filepath.Dir(cfg.Database.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", cfg.Database.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	store, err := history.NewStore(db)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	return store, db, nil
}
