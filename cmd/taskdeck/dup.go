package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var dupCmd = &cobra.Command{
	Use:   "dup <id>",
	Short: "Duplicate a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runDup,
}

func init() {
	rootCmd.AddCommand(dupCmd)
}

func runDup(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.close()

	t, ok := a.queries.ByPrefix(args[0])
	if !ok {
		return fmt.Errorf("no unique task matches %q", args[0])
	}
	dup, err := a.tasks.Duplicate(t.ID)
	if err != nil {
		return err
	}
	fmt.Printf("duplicated %s  %s\n", shortID(dup.ID), dup.Title)
	return nil
}
