package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search [query...]",
	Short: "Run a raw Wikipedia search and print the ranked titles",
	Long: `Sends a single query to the configured Wikipedia endpoint and prints
the returned titles in relevance order. Useful for inspecting how one
term combination ranks before it is aggregated.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")

		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to get app from context: %w", err)
		}

		titles, err := appInstance.WikiClient.Search(cmd.Context(), query)
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}

		if len(titles) == 0 {
			fmt.Println("No results found.")
			return nil
		}
		for i, title := range titles {
			fmt.Printf("%2d. %s\n", i+1, title)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
