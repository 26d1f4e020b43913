package storage

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// FileGateway implements Gateway with one JSON file per key, named
// <namespace>.<key>.json under the data directory. The namespace keeps keys
// from colliding with unrelated files sharing the directory.
type FileGateway struct {
	dir       string
	namespace string
	logger    *log.Logger
}

// compile-time check
var _ Gateway = (*FileGateway)(nil)

func NewFile(dir, namespace string, logger *log.Logger) *FileGateway {
	if logger == nil {
		logger = log.Default()
	}
	return &FileGateway{dir: dir, namespace: namespace, logger: logger}
}

func (g *FileGateway) path(key string) string {
	return filepath.Join(g.dir, g.namespace+"."+key+".json")
}

func (g *FileGateway) Save(key string, value any) {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		g.logger.Warn("dropping save", "key", key, "err", err)
		return
	}
	data = append(data, '\n')
	if err := os.MkdirAll(g.dir, 0755); err != nil {
		g.logger.Warn("dropping save", "key", key, "err", err)
		return
	}
	if err := os.WriteFile(g.path(key), data, 0644); err != nil {
		g.logger.Warn("dropping save", "key", key, "err", err)
	}
}

// Load fills into from the stored value and reports whether it did. A missing
// key is not logged; unreadable or corrupt data is.
func (g *FileGateway) Load(key string, into any) bool {
	data, err := os.ReadFile(g.path(key))
	if err != nil {
		if !os.IsNotExist(err) {
			g.logger.Warn("using default", "key", key, "err", err)
		}
		return false
	}
	if err := json.Unmarshal(data, into); err != nil {
		g.logger.Warn("using default for corrupt value", "key", key, "err", err)
		return false
	}
	return true
}

func (g *FileGateway) Remove(key string) {
	if err := os.Remove(g.path(key)); err != nil && !os.IsNotExist(err) {
		g.logger.Warn("remove failed", "key", key, "err", err)
	}
}

// Clear deletes every key in this gateway's namespace, leaving other files in
// the directory alone.
func (g *FileGateway) Clear() {
	matches, err := filepath.Glob(filepath.Join(g.dir, g.namespace+".*.json"))
	if err != nil {
		g.logger.Warn("clear failed", "err", err)
		return
	}
	for _, m := range matches {
		if err := os.Remove(m); err != nil {
			g.logger.Warn("clear: remove failed", "file", m, "err", err)
		}
	}
}
