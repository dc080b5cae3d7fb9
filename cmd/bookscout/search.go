package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/bookscout/internal/history"
	"github.com/pdiddy/bookscout/internal/logger"
	"github.com/pdiddy/bookscout/internal/openlibrary"
	"github.com/pdiddy/bookscout/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search [title...]",
	Short: "Search Open Library for a book title",
	Long: `Search queries the Open Library search API for books matching a title.
Results are printed as a table by default; use --json for machine-readable
output or --raw for the unparsed response body. A search can be saved to a
YAML file with --save and rendered again later with --load.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOut, _ := cmd.Flags().GetBool("json")

		if load, _ := cmd.Flags().GetString("load"); load != "" {
			qf, err := openlibrary.ReadQueryFile(load)
			if err != nil {
				return err
			}
			resp := qf.Response()
			if jsonOut {
				return openlibrary.FormatJSON(resp, os.Stdout)
			}
			openlibrary.FormatTable(resp, os.Stdout)
			return nil
		}

		title := strings.TrimSpace(strings.Join(args, " "))
		if title == "" {
			return fmt.Errorf("provide a book title to search for")
		}

		cfg := loadConfig()
		client := openlibrary.New(cfg.Search)
		ctx := cmd.Context()

		if raw, _ := cmd.Flags().GetBool("raw"); raw {
			body, err := client.FetchRaw(ctx, title)
			if err != nil {
				return err
			}
			os.Stdout.Write(body)
			if len(body) > 0 && body[len(body)-1] != '\n' {
				fmt.Println()
			}
			return nil
		}

		fields, _ := cmd.Flags().GetStringSlice("fields")
		limit, _ := cmd.Flags().GetInt("limit")
		q := openlibrary.Query{Title: title, Fields: fields, Limit: limit}

		resp, err := client.Search(ctx, q)
		if err != nil {
			return err
		}

		recordHistory(ctx, cfg.History, title, client.BuildQueryURL(q), resp)

		if save, _ := cmd.Flags().GetString("save"); save != "" {
			if err := openlibrary.WriteQueryFile(save, q, resp); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "Saved results to %s\n", save)
		}

		if jsonOut {
			return openlibrary.FormatJSON(resp, os.Stdout)
		}
		openlibrary.FormatTable(resp, os.Stdout)
		return nil
	},
}

func init() {
	searchCmd.Flags().StringSlice("fields", nil, "response fields to request (default from config)")
	searchCmd.Flags().Int("limit", 0, "maximum number of results (default from config)")
	searchCmd.Flags().Bool("json", false, "output results as JSON")
	searchCmd.Flags().Bool("raw", false, "print the raw response body")
	searchCmd.Flags().String("save", "", "save query and results to a YAML file")
	searchCmd.Flags().String("load", "", "render a previously saved query file instead of searching")

	rootCmd.AddCommand(searchCmd)
}

// recordHistory stores a completed search. History is best-effort: a
// failing store logs a warning and never breaks the search itself.
func recordHistory(ctx context.Context, cfg types.HistoryConfig, title, reqURL string, resp *openlibrary.SearchResponse) {
	store, err := history.Open(cfg)
	if err != nil {
		logger.WithQuery(title).Warnf("history unavailable: %v", err)
		return
	}
	defer store.Close()

	e := history.Entry{Title: title, RequestURL: reqURL}
	if resp != nil {
		e.NumFound = resp.NumFound
		if len(resp.Docs) > 0 {
			b := resp.Docs[0].Book()
			e.ResultTitle = b.Title
			if len(b.Authors) > 0 {
				e.ResultAuthor = b.Authors[0]
			}
		}
	}
	if err := store.Record(ctx, e); err != nil {
		logger.WithQuery(title).Warnf("recording history: %v", err)
	}
}
