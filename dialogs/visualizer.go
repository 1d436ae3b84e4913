// Package dialogs defines the message-visualizer service view models use to
// surface text to the user, plus the default console implementation
// registered at boot. Host toolkits substitute a platform dialog
// implementation by registering it before Init.
package dialogs

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"go.uber.org/zap"
)

// MessageVisualizer is the dialog contract view models program against.
type MessageVisualizer interface {
	// ShowMessage surfaces an informational message.
	ShowMessage(title, body string) error

	// ShowError surfaces a failure.
	ShowError(title string, err error) error
}

// Console is the default MessageVisualizer: colored text on a writer.
// It is meant for development builds and headless tests; production apps
// register a platform-backed visualizer instead.
type Console struct {
	out io.Writer
	log *zap.Logger
}

var _ MessageVisualizer = (*Console)(nil)

// ConsoleOption configures a Console under construction.
type ConsoleOption func(*Console)

// WithWriter redirects output away from os.Stdout.
func WithWriter(w io.Writer) ConsoleOption {
	return func(c *Console) {
		if w != nil {
			c.out = w
		}
	}
}

// WithLogger mirrors every shown message into a logger.
// The default is zap.NewNop().
func WithLogger(log *zap.Logger) ConsoleOption {
	return func(c *Console) {
		if log != nil {
			c.log = log
		}
	}
}

// NewConsole creates a Console visualizer writing to os.Stdout.
func NewConsole(opts ...ConsoleOption) *Console {
	c := &Console{out: os.Stdout, log: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ShowMessage implements MessageVisualizer.
func (c *Console) ShowMessage(title, body string) error {
	if _, err := color.New(color.FgCyan, color.Bold).Fprintln(c.out, title); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(c.out, body); err != nil {
		return err
	}
	c.log.Info("message shown", zap.String("title", title))
	return nil
}

// ShowError implements MessageVisualizer.
func (c *Console) ShowError(title string, err error) error {
	if _, werr := color.New(color.FgRed, color.Bold).Fprintln(c.out, title); werr != nil {
		return werr
	}
	if _, werr := fmt.Fprintln(c.out, err); werr != nil {
		return werr
	}
	c.log.Warn("error shown", zap.String("title", title), zap.Error(err))
	return nil
}
