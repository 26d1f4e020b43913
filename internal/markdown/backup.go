// Package markdown reads and writes checklist backups of the list.
package markdown

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"

	"github.com/rogersnm/tick/internal/model"
)

// BackupMeta is the YAML frontmatter on an exported checklist.
type BackupMeta struct {
	ExportedAt time.Time `yaml:"exported_at"`
	Tasks      int       `yaml:"tasks"`
}

// Entry is one checklist line from a backup.
type Entry struct {
	Text      string
	Completed bool
}

// Marshal serializes items as a frontmatter header followed by a markdown
// checklist.
func Marshal(items []model.Item) ([]byte, error) {
	meta := BackupMeta{
		ExportedAt: time.Now().UTC().Truncate(time.Second),
		Tasks:      len(items),
	}
	yamlBytes, err := yaml.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("marshaling frontmatter: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(yamlBytes)
	buf.WriteString("---\n\n")
	buf.WriteString(Checklist(items))
	return buf.Bytes(), nil
}

// Checklist renders items as markdown checkbox lines, without frontmatter.
func Checklist(items []model.Item) string {
	var sb strings.Builder
	for _, it := range items {
		mark := " "
		if it.Completed {
			mark = "x"
		}
		fmt.Fprintf(&sb, "- [%s] %s\n", mark, it.Text)
	}
	return sb.String()
}

// Parse reads a backup's frontmatter and checklist entries from r. Lines that
// are not checkbox entries are skipped.
func Parse(r io.Reader) (BackupMeta, []Entry, error) {
	var meta BackupMeta
	body, err := frontmatter.Parse(r, &meta)
	if err != nil {
		return meta, nil, fmt.Errorf("parsing frontmatter: %w", err)
	}

	var entries []Entry
	for _, line := range strings.Split(string(body), "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "- [ ] "):
			entries = append(entries, Entry{Text: strings.TrimPrefix(line, "- [ ] ")})
		case strings.HasPrefix(line, "- [x] "), strings.HasPrefix(line, "- [X] "):
			entries = append(entries, Entry{Text: line[len("- [x] "):], Completed: true})
		}
	}
	return meta, entries, nil
}
