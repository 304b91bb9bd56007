package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/PolarWolf314/unveil/internal/audit"
	kerrors "github.com/PolarWolf314/unveil/internal/errors"
	"github.com/PolarWolf314/unveil/internal/ui"
	"github.com/PolarWolf314/unveil/internal/workflows"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	historyLimit     int
	historyReverse   bool
	historyOperation string
	historyPreset    string
	historySince     string
	historyUntil     string
	historyJSON      bool
)

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "limit number of entries shown")
	historyCmd.Flags().BoolVar(&historyReverse, "reverse", false, "show most recent entries first")
	historyCmd.Flags().StringVar(&historyOperation, "operation", "", "filter by operation type (comma-separated)")
	historyCmd.Flags().StringVar(&historyPreset, "preset", "", "filter by preset name")
	historyCmd.Flags().StringVar(&historySince, "since", "", "show entries after date (YYYY-MM-DD)")
	historyCmd.Flags().StringVar(&historyUntil, "until", "", "show entries before date (YYYY-MM-DD)")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "output as JSON array")
}

// resetHistoryCommandState resets the history command's global state for testing.
func resetHistoryCommandState() {
	historyLimit = 0
	historyReverse = false
	historyOperation = ""
	historyPreset = ""
	historySince = ""
	historyUntil = ""
	historyJSON = false
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show previously played reveals",
	Long: `Displays the playback history: every played reveal and preset change,
with the preset used and how long the reveal took.

Examples:
  unveil history                         # View full history
  unveil history -n 10                   # Last 10 entries
  unveil history --reverse               # Most recent first
  unveil history --operation play        # Filter by operation
  unveil history --preset matrix         # Filter by preset
  unveil history --since 2024-01-01      # Filter by date
  unveil history --json                  # JSON output`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting history command")

	opts := workflows.HistoryOptions{
		Limit:      historyLimit,
		Reverse:    historyReverse,
		Operations: historyOperation,
		Preset:     historyPreset,
		Since:      historySince,
		Until:      historyUntil,
	}

	result, err := workflows.History(context.Background(), opts)
	if err != nil {
		fmt.Println(formatHistoryError(err))
		if isHistoryUnexpectedError(err) {
			return err
		}
		return nil
	}

	Logger.Debugf("Parsed %d entries from history log", result.TotalEntriesBeforeFilter)
	Logger.Debugf("After filtering: %d entries", len(result.Entries))

	if len(result.Entries) == 0 {
		if result.TotalEntriesBeforeFilter == 0 {
			fmt.Println("No history entries found.")
		} else {
			fmt.Println("No history entries found matching the filters.")
		}
		return nil
	}

	if historyJSON {
		return printJSON(result.Entries)
	}

	outputHistoryDefault(result.Entries)
	return nil
}

// formatHistoryError formats a history error for display to the user.
func formatHistoryError(err error) string {
	switch {
	case errors.Is(err, kerrors.ErrNoHistory):
		return ui.Info.Sprint("ℹ") + " No history found. Reveals are recorded after running " + ui.Code.Sprint("unveil play") + "."

	case errors.Is(err, kerrors.ErrInvalidDateFormat):
		return ui.Error.Sprint("✗") + " " + err.Error()

	default:
		return ui.Error.Sprint("✗") + " Failed to read history: " + err.Error()
	}
}

// isHistoryUnexpectedError returns true if the error is unexpected and should cause a non-zero exit.
func isHistoryUnexpectedError(err error) bool {
	switch {
	case errors.Is(err, kerrors.ErrNoHistory),
		errors.Is(err, kerrors.ErrInvalidDateFormat):
		return false
	default:
		return true
	}
}

// outputHistoryDefault prints one aligned line per entry.
func outputHistoryDefault(entries []audit.Entry) {
	for _, e := range entries {
		fmt.Printf("%-19s  %s  %-12s  %s\n",
			workflows.FormatDateTime(e.Timestamp),
			color.CyanString("%-13s", e.Operation),
			e.Preset,
			workflows.FormatDetails(e),
		)
	}
}
