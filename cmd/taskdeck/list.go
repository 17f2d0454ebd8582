package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"taskdeck/internal/task"
	"taskdeck/internal/view"
)

var (
	listStatus   string
	listPriority string
	listSearch   string
	listTags     []string
	listSort     string
	listOrder    string
	listOverdue  bool
	listToday    bool
	listDueFrom  string
	listDueTo    string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVarP(&listStatus, "status", "s", "", "filter by status")
	listCmd.Flags().StringVarP(&listPriority, "priority", "p", "", "filter by priority")
	listCmd.Flags().StringVarP(&listSearch, "search", "q", "", "search title and description")
	listCmd.Flags().StringSliceVarP(&listTags, "tag", "t", nil, "filter by tag (any match)")
	listCmd.Flags().StringVar(&listSort, "sort", "createdAt", "sort field")
	listCmd.Flags().StringVar(&listOrder, "order", "desc", "asc|desc")
	listCmd.Flags().BoolVar(&listOverdue, "overdue", false, "only overdue tasks")
	listCmd.Flags().BoolVar(&listToday, "today", false, "only tasks due today")
	listCmd.Flags().StringVar(&listDueFrom, "due-from", "", "earliest due date (YYYY-MM-DD)")
	listCmd.Flags().StringVar(&listDueTo, "due-to", "", "latest due date (YYYY-MM-DD)")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.close()

	var tasks []task.Task
	switch {
	case listOverdue:
		tasks = a.queries.Overdue()
	case listToday:
		tasks = a.queries.DueToday()
	default:
		f := task.Filters{Search: listSearch, Tags: listTags}
		if listStatus != "" {
			st := task.Status(listStatus)
			if !st.Valid() {
				return fmt.Errorf("unknown status %q", listStatus)
			}
			f.Status = &st
		}
		if listPriority != "" {
			p := task.Priority(listPriority)
			if !p.Valid() {
				return fmt.Errorf("unknown priority %q", listPriority)
			}
			f.Priority = &p
		}
		if listDueFrom != "" || listDueTo != "" {
			r := &task.DateRange{}
			if listDueFrom != "" {
				from, err := parseDay(listDueFrom)
				if err != nil {
					return err
				}
				r.Start = &from
			}
			if listDueTo != "" {
				to, err := parseDay(listDueTo)
				if err != nil {
					return err
				}
				r.End = &to
			}
			f.DueDateRange = r
		}
		s := task.Sort{Field: task.SortField(listSort), Order: task.SortOrder(listOrder)}
		tasks = view.Apply(a.tasks.Tasks(), f, s)
	}

	if len(tasks) == 0 {
		fmt.Println("no tasks")
		return nil
	}
	for _, t := range tasks {
		printTask(t)
	}
	return nil
}

func printTask(t task.Task) {
	due := "-"
	if t.DueDate != nil {
		due = t.DueDate.Format("2006-01-02")
	}
	line := fmt.Sprintf("%s  %-11s %-6s %-10s  %s", shortID(t.ID), t.Status, t.Priority, due, t.Title)
	if len(t.Tags) > 0 {
		line += "  #" + strings.Join(t.Tags, " #")
	}
	fmt.Println(line)
}

func parseDay(v string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", v, time.Local)
}
