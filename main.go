// stonedelve opens an interactive dungeon viewer in the local terminal.
//
//	stonedelve [--seed N]
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"stonedelve/internal/viewer"
)

func main() {
	seed := flag.Int64("seed", time.Now().UnixNano(), "generation seed")
	flag.Parse()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "error: init screen: %v\n", err)
		os.Exit(1)
	}

	viewer.New(screen, *seed).Run()
}
