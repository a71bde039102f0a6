package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vicser16/rtvsm/internal/media"
	"github.com/vicser16/rtvsm/internal/tmdb"
	"github.com/vicser16/rtvsm/pkg/title"
)

var searchType string

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search TMDB and list candidates, best match first",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchType, "type", "tv", "Media type: tv or movie")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	query := strings.Join(args, " ")
	client := tmdb.NewClient(cfg.TMDB.APIKey, cfg.TMDB.Language)
	ctx := cmd.Context()

	var identities []media.Identity
	switch media.Type(searchType) {
	case media.TypeTV:
		results, err := client.SearchTV(ctx, query)
		if err != nil {
			return err
		}
		for _, s := range title.Rank(query, tvNames(results)) {
			identities = append(identities, results[s.Index].Identity())
		}
	case media.TypeMovie:
		results, err := client.SearchMovie(ctx, query)
		if err != nil {
			return err
		}
		for _, s := range title.Rank(query, movieNames(results)) {
			identities = append(identities, results[s.Index].Identity())
		}
	default:
		return fmt.Errorf("unknown media type %q, want tv or movie", searchType)
	}

	if len(identities) == 0 {
		return fmt.Errorf("%w: %s", errNoResults, query)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-10s %s\n", "ID", "TITLE")
	for _, id := range identities {
		label := id.Title
		if id.Year > 0 {
			label = fmt.Sprintf("%s (%d)", id.Title, id.Year)
		}
		fmt.Fprintf(out, "%-10d %s\n", id.ID, label)
	}
	return nil
}
