package model

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// MaxTextLen is the maximum task text length in characters, after trimming.
const MaxTextLen = 500

// Item is a single to-do entry. The JSON tags are a stable contract: data
// persisted by an earlier build must keep loading unchanged.
type Item struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}

// NormalizeText trims surrounding whitespace and validates the result.
func NormalizeText(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", fmt.Errorf("task text is empty")
	}
	if n := utf8.RuneCountInString(trimmed); n > MaxTextLen {
		return "", fmt.Errorf("task text is %d characters, max %d", n, MaxTextLen)
	}
	return trimmed, nil
}

func (i *Item) Validate() error {
	if i.ID < 1 {
		return fmt.Errorf("task id must be positive")
	}
	trimmed, err := NormalizeText(i.Text)
	if err != nil {
		return err
	}
	if trimmed != i.Text {
		return fmt.Errorf("task text has surrounding whitespace")
	}
	return nil
}
