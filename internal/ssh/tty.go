// Package ssh adapts gliderlabs SSH sessions into tcell terminals so the
// dungeon viewer can be served remotely.
package ssh

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// Tty implements tcell.Tty over an SSH session. The embedded session carries
// the byte streams; the adapter adds the window-size plumbing tcell needs.
type Tty struct {
	gossh.Session

	mu     sync.Mutex
	size   gossh.Window
	resize func()

	changes <-chan gossh.Window
	done    chan struct{}
}

// Wrap turns an SSH session into a Tty. It reports false when the client
// never requested a PTY, in which case no terminal can be driven.
func Wrap(s gossh.Session) (*Tty, bool) {
	pty, changes, ok := s.Pty()
	if !ok {
		return nil, false
	}
	return &Tty{Session: s, size: pty.Window, changes: changes}, true
}

// Start begins forwarding window-change requests to the registered resize
// callback. tcell calls it when the screen initializes or resumes.
func (t *Tty) Start() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.done == nil {
		t.done = make(chan struct{})
		go t.watch(t.done)
	}
	return nil
}

// Stop halts resize forwarding until the next Start.
func (t *Tty) Stop() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.done != nil {
		close(t.done)
		t.done = nil
	}
	return nil
}

// Drain is a no-op; session writes are not buffered.
func (t *Tty) Drain() error { return nil }

// NotifyResize registers the callback invoked after each window change.
func (t *Tty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.resize = cb
	t.mu.Unlock()
}

// WindowSize returns the client terminal's current dimensions.
func (t *Tty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.size.Width, Height: t.size.Height}, nil
}

func (t *Tty) watch(done chan struct{}) {
	for {
		select {
		case w, ok := <-t.changes:
			if !ok {
				return
			}
			t.mu.Lock()
			t.size = w
			cb := t.resize
			t.mu.Unlock()
			if cb != nil {
				cb()
			}
		case <-done:
			return
		}
	}
}
