// Package clipboard reads and writes the system clipboard as UTF-8 text.
//
// System is the platform clipboard and is what Detect returns. Command runs
// configured helper programs instead, for setups the platform backend does
// not cover. Memory is an in-process clipboard for tests and headless use.
// An empty clipboard reads as "" with no error.
package clipboard

import (
	"context"
	"errors"
	"sync"
)

var (
	ErrNoClipboard = errors.New("no clipboard helper found")
	ErrRead        = errors.New("failed to read clipboard")
	ErrWrite       = errors.New("failed to write clipboard")
)

// Clipboard is a text clipboard.
type Clipboard interface {
	ReadText(ctx context.Context) (string, error)
	WriteText(ctx context.Context, text string) error
}

// Memory is a concurrency-safe in-memory clipboard.
type Memory struct {
	mu     sync.RWMutex
	text   string
	writes int
}

// NewMemory returns a clipboard holding text.
func NewMemory(text string) *Memory {
	return &Memory{text: text}
}

func (m *Memory) ReadText(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.text, nil
}

func (m *Memory) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	m.writes++
	return nil
}

// Writes returns how many times WriteText succeeded.
func (m *Memory) Writes() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.writes
}
