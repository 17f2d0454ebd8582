package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runRm,
}

func init() {
	rootCmd.AddCommand(rmCmd)
}

func runRm(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.close()

	t, ok := a.queries.ByPrefix(args[0])
	if !ok {
		return fmt.Errorf("no unique task matches %q", args[0])
	}
	a.tasks.Delete(t.ID)
	fmt.Printf("deleted %s  %s\n", shortID(t.ID), t.Title)
	return nil
}
