package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/bookscout/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent searches",
	Long: `History lists the most recent searches recorded by the search command
and the interactive shell, newest first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		store, err := history.Open(cfg.History)
		if err != nil {
			return err
		}
		defer store.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		entries, err := store.Recent(cmd.Context(), limit)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("No searches recorded.")
			return nil
		}

		fmt.Printf("%-19s  %-28s  %-40s  %s\n", "When", "Query", "Result", "Found")
		fmt.Println(strings.Repeat("-", 96))
		for _, e := range entries {
			result := e.ResultTitle
			if result == "" {
				result = "-"
			} else if e.ResultAuthor != "" {
				result = result + " / " + e.ResultAuthor
			}
			fmt.Printf("%-19s  %-28s  %-40s  %d\n",
				e.SearchedAt.Local().Format("2006-01-02 15:04:05"),
				clip(e.Title, 28), clip(result, 40), e.NumFound)
		}
		return nil
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded searches",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		store, err := history.Open(cfg.History)
		if err != nil {
			return err
		}
		defer store.Close()

		removed, err := store.Clear(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("Removed %d entries.\n", removed)
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 0, "number of entries to show (default from config)")
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}

func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
