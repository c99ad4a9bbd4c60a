package cli

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show or clear calculation history",
	Long: `Show recent calculations, newest first.

History is kept in ~/.shellit/data/history.db and capped by the
calculator.history_limit setting.`,
	RunE: runHistoryList,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent calculations",
	RunE:  runHistoryList,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded calculations",
	RunE:  runHistoryClear,
}

func init() {
	historyCmd.PersistentFlags().IntVarP(&historyLimit, "limit", "l", 20, "Maximum entries to show (0 = all)")
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	evals, err := historyService.Recent(cmd.Context(), historyLimit)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(evals) == 0 {
		fmt.Fprintln(out, "No calculations recorded.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tEXPRESSION\tRESULT")
	for _, eval := range evals {
		result := eval.Result
		if eval.Failed() {
			result = "error: " + eval.Err
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", eval.EvaluatedAt.Local().Format("2006-01-02 15:04:05"), eval.Expression, result)
	}
	return w.Flush()
}

func runHistoryClear(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	if err := historyService.Clear(cmd.Context()); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
	return nil
}
