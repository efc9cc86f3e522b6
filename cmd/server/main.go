// stonedelve-server serves the interactive dungeon viewer over SSH, one
// independent viewer per connection. Build:
//
//	go build -o stonedelve-server ./cmd/server
//
// Usage:
//
//	./stonedelve-server [--port 2222] [--key server_host_key]
//
// Connect:
//
//	ssh -p 2222 localhost
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	xssh "golang.org/x/crypto/ssh"

	internalssh "stonedelve/internal/ssh"
	"stonedelve/internal/viewer"
)

func main() {
	port := flag.Int("port", 2222, "SSH server port")
	keyFile := flag.String("key", "server_host_key", "Path to the PEM-encoded host key (auto-generated if absent)")
	flag.Parse()

	signer := loadOrCreateHostKey(*keyFile)

	srv := &gossh.Server{
		Addr:    fmt.Sprintf(":%d", *port),
		Handler: handleSession,
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// Accept any authentication — the viewer is read-only.
		// Add gossh.PublicKeyAuth or gossh.PasswordAuth options for real auth.
		HostSigners: []gossh.Signer{signer},
	}

	log.Printf("stonedelve SSH server listening on :%d", *port)
	log.Printf("Connect with:  ssh -p %d -o StrictHostKeyChecking=no localhost", *port)
	log.Fatal(srv.ListenAndServe())
}

// termMu protects os.Setenv("TERM") around screen creation.
var termMu sync.Mutex

// allowedTerms whitelists terminal names clients may request. Anything else
// falls back to xterm-256color.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"vt220":                 true,
	"rxvt-unicode":          true,
	"rxvt-unicode-256color": true,
}

// handleSession runs one viewer for one connection. It blocks for the
// duration of the connection so the SSH session stays open.
func handleSession(s gossh.Session) {
	tty, ok := internalssh.Wrap(s)
	if !ok {
		fmt.Fprintln(s, "The viewer requires a PTY. Connect with: ssh -t -p 2222 <host>")
		return
	}

	// Determine the terminal type from the session environment. Unknown
	// terminal names fall back to xterm-256color rather than reaching the
	// terminfo lookup.
	term := "xterm-256color"
	for _, env := range s.Environ() {
		if strings.HasPrefix(env, "TERM=") {
			if t := env[5:]; allowedTerms[t] {
				term = t
			}
			break
		}
	}

	// Create a tcell screen backed by this SSH session. TERM must be set in
	// the process environment before NewTerminfoScreenFromTty.
	termMu.Lock()
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(s, "Screen init failed: %v\n", err)
		return
	}

	viewer.New(screen, time.Now().UnixNano()).Run()
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string) gossh.Signer {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			log.Printf("Loaded host key from %s", path)
			return signer
		}
	}

	log.Printf("Generating new ed25519 host key → %s", path)
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		log.Fatalf("generate host key: %v", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		log.Fatalf("create signer: %v", err)
	}
	// Persist for next run (non-fatal if it fails).
	if pemBlock, err := xssh.MarshalPrivateKey(key, "stonedelve server"); err == nil {
		_ = os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0600)
	}
	return signer
}
