package cmd

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/AtharulKhan/wins-analyzer/internal/store"
	"github.com/AtharulKhan/wins-analyzer/internal/view"
)

var flagExportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export active wins as CSV",
	Long:  "Write the cached, non-archived wins to a CSV file (or stdout with -o -), newest first.",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, db, err := openStore()
		if err != nil {
			return err
		}
		defer db.Close()

		wins, err := db.GetWins(time.Time{})
		if err != nil {
			return fmt.Errorf("loading wins: %w", err)
		}
		active := view.Sort(view.Active(wins), view.SortSpec{Key: view.SortByDate, Order: view.Descending})

		out := os.Stdout
		if flagExportOut != "" && flagExportOut != "-" {
			f, err := os.Create(flagExportOut)
			if err != nil {
				return fmt.Errorf("creating %s: %w", flagExportOut, err)
			}
			defer f.Close()
			out = f
		}

		if err := writeCSV(out, active); err != nil {
			return err
		}
		if out != os.Stdout {
			fmt.Printf("Exported %d win(s) to %s.\n", len(active), flagExportOut)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportOut, "out", "o", "-", "output file (- for stdout)")
}

func writeCSV(out io.Writer, wins []store.Win) error {
	w := csv.NewWriter(out)
	if err := w.Write([]string{"id", "title", "category", "sub_categories", "summary", "platform", "date", "link", "favorite"}); err != nil {
		return err
	}
	for _, win := range wins {
		record := []string{
			win.ID,
			win.Title,
			win.Category,
			win.SubCategories,
			win.Summary,
			win.Platform,
			win.Date.Format("2006-01-02"),
			win.Link,
			strconv.FormatBool(win.IsFavorite),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
