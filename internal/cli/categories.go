package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewCategoriesCommand creates the categories command
func NewCategoriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "Show file categories and their extensions",
		Long: `Display the category table used to classify files, including any
overrides from the configuration file. Files whose extension matches
none of the listed categories go to the fallback category.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			table := cfg.CategoryTable()
			if err := table.Validate(); err != nil {
				return fmt.Errorf("invalid category table: %w", err)
			}

			fmt.Println("\nFile Categories and Extensions:")
			fmt.Println(strings.Repeat("-", 40))
			for _, c := range table {
				if len(c.Extensions) == 0 {
					fmt.Printf("%-12s All other file types\n", c.Name+":")
					continue
				}
				fmt.Printf("%-12s %s\n", c.Name+":", strings.Join(c.Extensions, ", "))
			}
			fmt.Println(strings.Repeat("-", 40))

			return nil
		},
	}
}
