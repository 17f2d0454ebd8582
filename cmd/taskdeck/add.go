package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"taskdeck/internal/task"
)

var (
	addDescription string
	addStatus      string
	addPriority    string
	addDue         string
	addTags        []string
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a task",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&addDescription, "desc", "m", "", "description")
	addCmd.Flags().StringVarP(&addStatus, "status", "s", string(task.StatusPending), "pending|in_progress|completed")
	addCmd.Flags().StringVarP(&addPriority, "priority", "p", string(task.PriorityMedium), "low|medium|high")
	addCmd.Flags().StringVarP(&addDue, "due", "d", "", "due date (YYYY-MM-DD)")
	addCmd.Flags().StringSliceVarP(&addTags, "tag", "t", nil, "tag (repeatable)")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.close()

	in := task.CreateInput{
		Title:       strings.Join(args, " "),
		Description: addDescription,
		Status:      task.Status(addStatus),
		Priority:    task.Priority(addPriority),
		Tags:        addTags,
	}
	if addDue != "" {
		due, err := time.ParseInLocation("2006-01-02", addDue, time.Local)
		if err != nil {
			return fmt.Errorf("invalid due date %q: %w", addDue, err)
		}
		in.DueDate = &due
	}

	created, err := a.tasks.Create(in)
	if err != nil {
		return err
	}
	fmt.Printf("added %s  %s\n", shortID(created.ID), created.Title)
	return nil
}

// shortID abbreviates a uuid for display; full ids still work everywhere.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
