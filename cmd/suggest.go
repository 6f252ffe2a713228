package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"wikilabels/internal/labeler"
)

var (
	suggestAnchors   string
	suggestTopN      int
	suggestAll       bool
	suggestBootstrap int
	suggestBoost     bool
	suggestScores    bool
	suggestJSON      bool
)

var suggestCmd = &cobra.Command{
	Use:   "suggest [term...]",
	Short: "Suggest labels for a list of topic terms",
	Long: `Queries Wikipedia with every combination of --bootstrap-size terms
(plus any --anchors, which are always included) and aggregates the ranked
results into scored label suggestions.

Example:
  wikilabels suggest beetle live yellow strong --anchors car --topn 5`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to get app from context: %w", err)
		}

		params := labeler.SuggestParams{
			Terms:               args,
			Anchors:             splitList(suggestAnchors),
			TopN:                suggestTopN,
			BootstrapSize:       suggestBootstrap,
			BoostWithCategories: suggestBoost,
		}
		if suggestAll {
			params.TopN = 0
		}
		if !cmd.Flags().Changed("topn") && !suggestAll {
			params.TopN = appInstance.Config.Suggest.TopN
		}
		if !cmd.Flags().Changed("bootstrap-size") {
			params.BootstrapSize = appInstance.Config.Suggest.BootstrapSize
		}

		suggestions, err := appInstance.LabelService.Suggest(cmd.Context(), params)
		if err != nil {
			return fmt.Errorf("suggestion failed: %w", err)
		}

		if suggestJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(suggestions)
		}

		if len(suggestions) == 0 {
			fmt.Println("No labels found.")
			return nil
		}

		if !suggestScores {
			for _, s := range suggestions {
				fmt.Println(s.Label)
			}
			return nil
		}

		color.New(color.Bold).Printf("Suggested labels for: %s\n", strings.Join(args, " "))
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Label", "Score"})
		for _, s := range suggestions {
			table.Append([]string{s.Label, fmt.Sprintf("%.4f", s.Score)})
		}
		table.Render()
		return nil
	},
}

// splitList turns a comma-separated flag value into trimmed, non-empty
// items.
func splitList(value string) []string {
	var items []string
	for _, raw := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(raw); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

func init() {
	rootCmd.AddCommand(suggestCmd)

	suggestCmd.Flags().StringVarP(&suggestAnchors, "anchors", "a", "", "Comma-separated contextual anchor terms added to every query")
	suggestCmd.Flags().IntVarP(&suggestTopN, "topn", "n", 3, "Number of labels to return")
	suggestCmd.Flags().BoolVar(&suggestAll, "all", false, "Return every label instead of the top N")
	suggestCmd.Flags().IntVarP(&suggestBootstrap, "bootstrap-size", "b", 3, "Number of topic terms combined per query")
	suggestCmd.Flags().BoolVar(&suggestBoost, "boost", false, "Boost scores using category overlap (slow: one extra lookup per label)")
	suggestCmd.Flags().BoolVar(&suggestScores, "scores", false, "Show aggregate scores in a table")
	suggestCmd.Flags().BoolVar(&suggestJSON, "json", false, "Emit suggestions as JSON")
}
