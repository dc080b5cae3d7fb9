package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/pdiddy/bookscout/internal/openlibrary"
)

const shellHistoryFile = "shell_history"

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Interactive book search prompt",
	Long: `Shell starts an interactive prompt that reads book titles from standard
input and prints the best match for each. Type "quit" to exit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		client := openlibrary.New(cfg.Search)

		line := liner.NewLiner()
		defer line.Close()
		line.SetCtrlCAborts(true)

		histPath := filepath.Join(cfg.History.Path, shellHistoryFile)
		if f, err := os.Open(histPath); err == nil {
			line.ReadHistory(f)
			f.Close()
		}

		fmt.Println("Open Library Book Search")
		fmt.Println("------------------------")

		for {
			input, err := line.Prompt("\nEnter a book title (or 'quit' to exit): ")
			if err != nil {
				// Ctrl-C or EOF ends the session like "quit".
				break
			}
			if strings.EqualFold(input, "quit") {
				break
			}

			title := strings.TrimSpace(input)
			if title == "" {
				fmt.Println("Please enter a valid book title.")
				continue
			}
			line.AppendHistory(input)

			resp := client.SearchLenient(cmd.Context(), openlibrary.Query{Title: title})
			fmt.Println("\nSearch Result:")
			fmt.Println(openlibrary.FirstResult(resp))

			recordHistory(cmd.Context(), cfg.History, title,
				client.BuildQueryURL(openlibrary.Query{Title: title}), resp)
		}

		if err := os.MkdirAll(cfg.History.Path, 0o755); err == nil {
			if f, err := os.Create(histPath); err == nil {
				line.WriteHistory(f)
				f.Close()
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)
}
