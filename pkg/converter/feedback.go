package converter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"
)

// Paster sends a paste keystroke to the active window.
type Paster interface {
	Paste(ctx context.Context) error
}

// Notifier gives audible feedback after a conversion.
type Notifier interface {
	Notify(ctx context.Context) error
}

// PasterFunc adapts a function to Paster.
type PasterFunc func(ctx context.Context) error

func (f PasterFunc) Paste(ctx context.Context) error { return f(ctx) }

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context) error

func (f NotifierFunc) Notify(ctx context.Context) error { return f(ctx) }

// DefaultPasteCommand simulates Ctrl+V on X11.
var DefaultPasteCommand = []string{"xdotool", "key", "--clearmodifiers", "ctrl+v"}

// CommandPaster runs an external program to simulate the paste keystroke.
type CommandPaster struct {
	args []string
}

// NewCommandPaster returns a paster running args. Empty args use
// DefaultPasteCommand.
func NewCommandPaster(args []string) *CommandPaster {
	if len(args) == 0 {
		args = DefaultPasteCommand
	}
	return &CommandPaster{args: args}
}

// ParseCommand splits a command line on whitespace.
func ParseCommand(s string) []string {
	return strings.Fields(s)
}

func (p *CommandPaster) Paste(ctx context.Context) error {
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, p.args[0], p.args[1:]...)
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s: %w: %s", p.args[0], err, msg)
		}
		return fmt.Errorf("%s: %w", p.args[0], err)
	}
	return nil
}

// BellNotifier writes the terminal bell character to a writer.
type BellNotifier struct {
	mu sync.Mutex
	w  io.Writer
}

func NewBellNotifier(w io.Writer) *BellNotifier {
	return &BellNotifier{w: w}
}

func (n *BellNotifier) Notify(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if n.w == nil {
		return errors.New("bell notifier has no writer")
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	_, err := n.w.Write([]byte{'\a'})
	return err
}
