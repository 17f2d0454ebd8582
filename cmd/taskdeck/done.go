package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"taskdeck/internal/task"
)

var doneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Mark a task completed",
	Args:  cobra.ExactArgs(1),
	RunE:  runDone,
}

func init() {
	rootCmd.AddCommand(doneCmd)
}

func runDone(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.close()

	t, ok := a.queries.ByPrefix(args[0])
	if !ok {
		return fmt.Errorf("no unique task matches %q", args[0])
	}
	st := task.StatusCompleted
	if _, _, err := a.tasks.Update(t.ID, task.UpdateInput{Status: &st}); err != nil {
		return err
	}
	fmt.Printf("completed %s  %s\n", shortID(t.ID), t.Title)
	return nil
}
