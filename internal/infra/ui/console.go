// Where: internal/infra/ui/console.go
// What: Console output helpers for consistent CLI UX.
// Why: Keep inspect reports and error lines in one format.
package ui

import (
	"fmt"
	"io"
	"strings"
)

// Console provides helper methods for formatted output.
type Console struct {
	Out          io.Writer
	EmojiEnabled bool
}

// New creates a Console without emoji prefixes; build logs stay greppable.
func New(out io.Writer) *Console {
	return &Console{Out: out}
}

// NewWithEmoji creates a new Console with explicit emoji settings.
func NewWithEmoji(out io.Writer, enabled bool) *Console {
	return &Console{Out: out, EmojiEnabled: enabled}
}

// Header prints a section header with an optional emoji.
func (c *Console) Header(emoji, title string) {
	fmt.Fprintf(c.Out, "%s%s\n", c.emojiPrefix(emoji), title)
}

// Item prints a key-value item with indentation.
// Example:    Key: Value.
// An empty key continues the previous item.
func (c *Console) Item(key string, value any) {
	label := ""
	if key != "" {
		label = key + ":"
	}
	fmt.Fprintf(c.Out, "   %-16s %v\n", label, value)
}

func (c *Console) Info(msg string) {
	fmt.Fprintln(c.Out, msg)
}

// Warn prints a warning message with an emoji or a [warn] tag.
func (c *Console) Warn(msg string) {
	prefix := c.emojiPrefix("⚠️")
	if prefix == "" {
		prefix = "[warn] "
	}
	fmt.Fprintf(c.Out, "%s%s\n", prefix, msg)
}

// Error prints a failure line.
func (c *Console) Error(msg string) {
	prefix := c.emojiPrefix("✗")
	if prefix == "" {
		prefix = "error: "
	}
	fmt.Fprintf(c.Out, "%s%s\n", prefix, msg)
}

func (c *Console) emojiPrefix(emoji string) string {
	if !c.EmojiEnabled || strings.TrimSpace(emoji) == "" {
		return ""
	}
	return emoji + " "
}
