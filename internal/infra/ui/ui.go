// Where: internal/infra/ui/ui.go
// What: UserInterface adapter used by command handlers.
// Why: Give commands a small output surface that tests can capture.
package ui

import "io"

// KeyValue is a key/value pair rendered inside a block.
type KeyValue struct {
	Key   string
	Value any
}

// UserInterface exposes the output helpers used by commands.
type UserInterface interface {
	Info(msg string)
	Warn(msg string)
	Error(msg string)
	Block(title string, rows []KeyValue)
}

// NewUI returns a UserInterface writing to out.
func NewUI(out io.Writer, emojiEnabled bool) UserInterface {
	return consoleUI{console: NewWithEmoji(out, emojiEnabled)}
}

type consoleUI struct {
	console *Console
}

func (u consoleUI) Info(msg string) {
	u.console.Info(msg)
}

func (u consoleUI) Warn(msg string) {
	u.console.Warn(msg)
}

func (u consoleUI) Error(msg string) {
	u.console.Error(msg)
}

// Block prints a titled list of rows. A slice value is printed one element
// per line under its key.
func (u consoleUI) Block(title string, rows []KeyValue) {
	u.console.Header("", title)
	for _, kv := range rows {
		values, ok := kv.Value.([]string)
		if !ok {
			u.console.Item(kv.Key, kv.Value)
			continue
		}
		if len(values) == 0 {
			u.console.Item(kv.Key, "(none)")
			continue
		}
		u.console.Item(kv.Key, values[0])
		for _, value := range values[1:] {
			u.console.Item("", value)
		}
	}
}
