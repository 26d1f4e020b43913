package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rogersnm/tick/internal/model"
)

var addCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Add a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !st.Add(args[0]) {
			return fmt.Errorf("task text must be 1-%d characters after trimming", model.MaxTextLen)
		}
		items := st.Items()
		added := items[len(items)-1]
		fmt.Printf("Added task %d: %s\n", added.ID, added.Text)
		return nil
	},
}

var toggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Flip a task between active and completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if !st.Toggle(id) {
			return fmt.Errorf("no task with id %d", id)
		}
		it, _ := st.Get(id)
		state := "active"
		if it.Completed {
			state = "completed"
		}
		fmt.Printf("Task %d is now %s\n", id, state)
		return nil
	},
}

var editCmd = &cobra.Command{
	Use:   "edit <id> <text>",
	Short: "Replace a task's text",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if _, ok := st.Get(id); !ok {
			return fmt.Errorf("no task with id %d", id)
		}
		if !st.Edit(id, args[1]) {
			return fmt.Errorf("task text must be 1-%d characters after trimming", model.MaxTextLen)
		}
		fmt.Printf("Updated task %d\n", id)
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		it, ok := st.Get(id)
		if !ok {
			return fmt.Errorf("no task with id %d", id)
		}
		if err := confirm(cmd, fmt.Sprintf("Delete task %d (%s)?", it.ID, it.Text)); err != nil {
			return err
		}
		st.Delete(id)
		fmt.Printf("Deleted task %d\n", id)
		return nil
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove completed tasks, or everything with --all",
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")
		if all {
			if err := confirm(cmd, fmt.Sprintf("Remove all %d task(s)?", st.Len())); err != nil {
				return err
			}
			st.ClearAll()
			fmt.Println("Cleared all tasks")
			return nil
		}

		if err := confirm(cmd, fmt.Sprintf("Remove %d completed task(s)?", st.CompletedCount())); err != nil {
			return err
		}
		removed := st.ClearCompleted()
		fmt.Printf("Cleared %d completed task(s)\n", removed)
		return nil
	},
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid task id %q", arg)
	}
	return id, nil
}

func init() {
	deleteCmd.Flags().BoolP("force", "f", false, "skip confirmation")

	clearCmd.Flags().Bool("all", false, "remove every task, not just completed ones")
	clearCmd.Flags().BoolP("force", "f", false, "skip confirmation")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(toggleCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(clearCmd)
}
