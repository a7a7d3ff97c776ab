// internal/dashboard/terminal.go
package dashboard

import (
	"encoding/base64"
	"fmt"
	"io"
)

// OSC52Clipboard copies through the terminal's OSC 52 escape, which also works
// over SSH.
type OSC52Clipboard struct {
	Out io.Writer
}

func (c OSC52Clipboard) WriteText(text string) error {
	_, err := fmt.Fprintf(c.Out, "\x1b]52;c;%s\x07", base64.StdEncoding.EncodeToString([]byte(text)))
	return err
}

type ConsoleNotifier struct {
	Out io.Writer
}

func (n ConsoleNotifier) Success(message string) {
	fmt.Fprintln(n.Out, "✔ "+message)
}

func (n ConsoleNotifier) Error(message string) {
	fmt.Fprintln(n.Out, "✖ "+message)
}

// ConsoleNavigator prints dashboard locations instead of opening them.
type ConsoleNavigator struct {
	Out       io.Writer
	BaseURL   string
	OnRefresh func()
}

func (n ConsoleNavigator) Refresh() {
	if n.OnRefresh != nil {
		n.OnRefresh()
	}
}

func (n ConsoleNavigator) Push(path string) {
	fmt.Fprintln(n.Out, n.BaseURL+path)
}
