package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"bth/internal/config"
	"bth/internal/history"
)

// HistoryCommand handles the history command
type HistoryCommand struct {
	config *config.Config
	store  *history.Store
}

// NewHistoryCommand creates a new HistoryCommand
func NewHistoryCommand(cfg *config.Config, store *history.Store) *HistoryCommand {
	return &HistoryCommand{
		config: cfg,
		store:  store,
	}
}

// Execute runs the command
func (hc *HistoryCommand) Execute(cmd *cobra.Command, args []string) error {
	runs, err := hc.store.ListRuns(20)
	if err != nil {
		return fmt.Errorf("load run history: %w", err)
	}
	if len(runs) == 0 {
		color.Yellow("No recorded runs")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tWHEN\tSUITES\tTESTS\tPASSED\tFAILED\tDURATION\tWORKERS")
	for _, r := range runs {
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%d\t%d\t%.2fs\t%d\n",
			r.ID, r.CreatedAt.Format("2006-01-02 15:04:05"),
			r.TotalSuites, r.TotalTests, r.Passed, r.Failed, r.Duration, r.Workers)
	}
	return w.Flush()
}
