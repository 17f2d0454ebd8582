package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show dashboard counters",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.close()

	st := a.queries.Stats()
	fmt.Printf("total       %d\n", st.Total)
	fmt.Printf("pending     %d\n", st.Pending)
	fmt.Printf("in progress %d\n", st.InProgress)
	fmt.Printf("completed   %d\n", st.Completed)
	fmt.Printf("overdue     %d\n", st.Overdue)
	fmt.Printf("due today   %d\n", st.DueToday)
	fmt.Printf("completion  %.0f%%\n", st.CompletionRate)
	return nil
}
