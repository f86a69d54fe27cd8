package clipboard

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Command runs configured external programs to access the clipboard. ReadArgs must print
// the clipboard to stdout; WriteArgs must read the new content from stdin.
type Command struct {
	ReadArgs  []string
	WriteArgs []string
}

// NewCommand builds a Command from two whitespace-separated command lines.
func NewCommand(read, write string) (*Command, error) {
	c := &Command{ReadArgs: strings.Fields(read), WriteArgs: strings.Fields(write)}
	if len(c.ReadArgs) == 0 || len(c.WriteArgs) == 0 {
		return nil, fmt.Errorf("%w: both read and write commands are required", ErrNoClipboard)
	}
	return c, nil
}

// Name returns the helper program name.
func (c *Command) Name() string {
	if len(c.ReadArgs) == 0 {
		return ""
	}
	return c.ReadArgs[0]
}

func (c *Command) ReadText(ctx context.Context) (string, error) {
	if len(c.ReadArgs) == 0 {
		return "", errors.Join(ErrRead, ErrNoClipboard)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, c.ReadArgs[0], c.ReadArgs[1:]...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if isEmptySelection(err, stderr.String()) {
			return "", nil
		}
		return "", errors.Join(ErrRead, commandError(err, &stderr))
	}
	return stdout.String(), nil
}

func (c *Command) WriteText(ctx context.Context, text string) error {
	if len(c.WriteArgs) == 0 {
		return errors.Join(ErrWrite, ErrNoClipboard)
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, c.WriteArgs[0], c.WriteArgs[1:]...)
	cmd.Stdin = strings.NewReader(text)
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return errors.Join(ErrWrite, commandError(err, &stderr))
	}
	return nil
}

// Messages printed by wl-paste and xclip when nothing has been copied.
var emptySelectionMessages = []string{
	"nothing is copied",
	"no selection",
	"target string not available",
	"target utf8_string not available",
}

// isEmptySelection reports whether a failed read only means the clipboard
// holds no text.
func isEmptySelection(err error, stderr string) bool {
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return false
	}
	if stderr == "" {
		stderr = string(exitErr.Stderr)
	}
	msg := strings.ToLower(stderr)
	for _, m := range emptySelectionMessages {
		if strings.Contains(msg, m) {
			return true
		}
	}
	return false
}

func commandError(err error, stderr *bytes.Buffer) error {
	if msg := strings.TrimSpace(stderr.String()); msg != "" {
		return fmt.Errorf("%w: %s", err, msg)
	}
	return err
}
