package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rogersnm/tick/internal/markdown"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the list as a markdown checklist backup",
	RunE: func(cmd *cobra.Command, args []string) error {
		pretty, _ := cmd.Flags().GetBool("pretty")
		if pretty {
			out, err := markdown.Render(markdown.Checklist(st.Items()))
			if err != nil {
				return err
			}
			fmt.Print(out)
			return nil
		}

		data, err := markdown.Marshal(st.Items())
		if err != nil {
			return err
		}
		fmt.Print(string(data))
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Add tasks from an exported backup",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening backup: %w", err)
		}
		defer f.Close()

		_, entries, err := markdown.Parse(f)
		if err != nil {
			return err
		}

		added := 0
		for _, e := range entries {
			if !st.Add(e.Text) {
				continue
			}
			if e.Completed {
				items := st.Items()
				st.Toggle(items[len(items)-1].ID)
			}
			added++
		}
		fmt.Printf("Imported %d task(s)\n", added)
		return nil
	},
}

func init() {
	exportCmd.Flags().Bool("pretty", false, "render with ANSI styling")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
