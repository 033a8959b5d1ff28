package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/runner-dash/internal/storage"
	"github.com/vovakirdan/runner-dash/internal/world"
)

var flagLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently finished rounds",
	Long: `Display the most recently finished rounds and overall totals
from the journal.

Examples:
  runner history
  runner history --limit 50`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of rounds to show")
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	wonStyle    = cellStyle.Foreground(lipgloss.Color("10"))
	lostStyle   = cellStyle.Foreground(lipgloss.Color("9"))
)

func runHistory(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	journal, err := storage.Open(cfg.Journal.Path)
	if err != nil {
		fail("opening journal: %v", err)
	}
	defer journal.Close()

	rounds, err := journal.RecentRounds(flagLimit)
	if err != nil {
		fail("reading rounds: %v", err)
	}
	totals, err := journal.Totals()
	if err != nil {
		fail("reading totals: %v", err)
	}

	fmt.Println("Runner Dash - Recent Rounds")
	fmt.Println()

	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Println("Play 'runner play' to record the first one!")
		return
	}

	fmt.Fprintln(os.Stdout, roundsTable(rounds))
	fmt.Println()
	fmt.Printf("Rounds: %d  Wins: %d  Losses: %d  Win rate: %.0f%%\n",
		totals.Rounds, totals.Wins, totals.Losses, totals.WinRate()*100)
}

// roundsTable renders rounds newest first.
func roundsTable(rounds []storage.Round) string {
	rows := make([][]string, 0, len(rounds))
	for _, r := range rounds {
		rows = append(rows, []string{
			r.CreatedAt.Format("2006-01-02 15:04"),
			string(r.Outcome),
			fmt.Sprintf("%d/%d", r.Passes, world.WinScore),
			strconv.Itoa(r.Ticks),
			r.Player,
		})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("Date", "Outcome", "Passes", "Ticks", "Player").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 1 && rows[row][1] == string(storage.OutcomeWon):
				return wonStyle
			case col == 1:
				return lostStyle
			}
			return cellStyle
		}).
		String()
}
