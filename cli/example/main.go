// Example: Rendering the console inside the current terminal.
//
// The console believes it is driving an 80x25 text display; the cli
// viewer periodically paints that display into this terminal.
//
// Run with: go run main.go
package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/monkeswag33/vgacon"
	"github.com/monkeswag33/vgacon/cli"
)

func main() {
	console, err := vgacon.New(80, 25, vgacon.NewAttr(vgacon.LightGray, vgacon.Blue), nil, nil)
	if err != nil {
		log.Fatal("create console:", err)
	}

	viewer, err := cli.New(cli.Options{Console: console})
	if err != nil {
		log.Fatal("create viewer:", err)
	}

	console.Clear()
	console.WriteString("vgacon cli demo (Ctrl-C to quit)\n\n")
	console.WriteString("unsupported bytes render as a placeholder: \x01\x02\x7f\n")
	console.WriteString("backspace erases: typo\x08\x08\x08\x08text\n\n")

	viewer.Start()
	defer viewer.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()
	for i := 0; ; i++ {
		select {
		case <-sig:
			return
		case <-ticker.C:
			fmt.Fprintf(console, "tick %d\n", i)
		}
	}
}
