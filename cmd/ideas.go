package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/AtharulKhan/wins-analyzer/internal/config"
)

var ideasCmd = &cobra.Command{
	Use:   "ideas",
	Short: "List project ideas from the spreadsheet",
	Long:  "Fetch the Project Ideas sheet and print the ideas grouped by category.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		ideas, err := newSheetClient(cfg).FetchIdeas(ctx)
		if err != nil {
			return err
		}
		if len(ideas) == 0 {
			fmt.Println("No project ideas found.")
			return nil
		}

		catStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7571F9"))
		titleStyle := lipgloss.NewStyle().Bold(true)
		dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))

		// First-seen category order, matching the sheet.
		byCat := make(map[string][]int)
		var cats []string
		for i, idea := range ideas {
			if _, ok := byCat[idea.Category]; !ok {
				cats = append(cats, idea.Category)
			}
			byCat[idea.Category] = append(byCat[idea.Category], i)
		}

		for _, cat := range cats {
			fmt.Println(catStyle.Render(cat))
			for _, i := range byCat[cat] {
				fmt.Println("  " + titleStyle.Render(ideas[i].Title))
				if ideas[i].Summary != "" {
					fmt.Println("    " + dimStyle.Render(ideas[i].Summary))
				}
			}
			fmt.Println()
		}
		return nil
	},
}
