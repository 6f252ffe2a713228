package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories [title...]",
	Short: "Print the Wikipedia categories of a page title",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := strings.Join(args, " ")

		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to get app from context: %w", err)
		}

		categories, err := appInstance.WikiClient.Categories(cmd.Context(), title)
		if err != nil {
			return fmt.Errorf("category lookup failed: %w", err)
		}

		if len(categories) == 0 {
			fmt.Printf("No categories found for %q.\n", title)
			return nil
		}
		for _, category := range categories {
			fmt.Println(category)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}
