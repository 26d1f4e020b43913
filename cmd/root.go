package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"
	mtp "github.com/modeltoolsprotocol/go-sdk"
	"github.com/spf13/cobra"

	"github.com/rogersnm/tick/internal/config"
	"github.com/rogersnm/tick/internal/list"
	"github.com/rogersnm/tick/internal/model"
	"github.com/rogersnm/tick/internal/storage"
	"github.com/rogersnm/tick/internal/ui"
)

// namespace prefixes every key the gateway writes, so unrelated files can
// share the data directory.
const namespace = "tick"

var (
	version = "dev"
	dataDir string
	cfg     *config.Config
	st      *list.Store
	theme   ui.Theme
)

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".tick")
	}
	return filepath.Join(home, ".tick")
}

var rootCmd = &cobra.Command{
	Use:     "tick",
	Short:   "Single-user to-do list with local persistence",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return fmt.Errorf("creating data directory: %w", err)
		}

		var err error
		cfg, err = config.Load(dataDir)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		theme = ui.Resolve(cfg.Theme)

		logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})
		gw := storage.NewFile(dataDir, namespace, logger)
		st = list.New(gw)
		if cfg.DefaultFilter != "" {
			st.SetFilter(model.Filter(cfg.DefaultFilter))
		}
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", defaultDataDir(), "data directory path")

	mtpOpts := &mtp.DescribeOptions{
		Commands: map[string]*mtp.CommandAnnotation{
			"add": {
				Examples: []mtp.Example{
					{Description: "Add a task", Command: "tick add \"Buy milk\""},
				},
			},
			"list": {
				Stdout: &mtp.IODescriptor{
					ContentType: "text/plain",
					Description: "Table of tasks with ID, completion mark, text, and creation date, plus a counts footer",
				},
				Examples: []mtp.Example{
					{Description: "List tasks under the default filter", Command: "tick list"},
					{Description: "List only unfinished tasks", Command: "tick list --filter active"},
				},
			},
			"toggle": {
				Examples: []mtp.Example{
					{Description: "Flip a task between active and completed", Command: "tick toggle 3"},
				},
			},
			"edit": {
				Examples: []mtp.Example{
					{Description: "Rewrite a task's text", Command: "tick edit 3 \"Buy oat milk\""},
				},
			},
			"delete": {
				Examples: []mtp.Example{
					{Description: "Delete a task (interactive confirm)", Command: "tick delete 3"},
					{Description: "Delete a task (skip confirm)", Command: "tick delete 3 --force"},
				},
			},
			"clear": {
				Examples: []mtp.Example{
					{Description: "Remove all completed tasks", Command: "tick clear --force"},
					{Description: "Remove every task", Command: "tick clear --all --force"},
				},
			},
			"filter": {
				Examples: []mtp.Example{
					{Description: "Show the current default filter", Command: "tick filter"},
					{Description: "Only show unfinished tasks by default", Command: "tick filter active"},
				},
			},
			"export": {
				Stdout: &mtp.IODescriptor{
					ContentType: "text/markdown",
					Description: "Checklist backup with YAML frontmatter",
				},
				Examples: []mtp.Example{
					{Description: "Back up the list", Command: "tick export > backup.md"},
				},
			},
			"import": {
				Examples: []mtp.Example{
					{Description: "Restore tasks from a backup", Command: "tick import backup.md"},
				},
			},
		},
	}

	mtp.WithDescribe(rootCmd, mtpOpts)
}

func Execute() error {
	return rootCmd.Execute()
}

// confirm prompts before a destructive operation unless --force was passed.
func confirm(cmd *cobra.Command, title string) error {
	force, _ := cmd.Flags().GetBool("force")
	if force {
		return nil
	}
	var ok bool
	if err := huh.NewConfirm().Title(title).Value(&ok).Run(); err != nil || !ok {
		return fmt.Errorf("cancelled")
	}
	return nil
}
