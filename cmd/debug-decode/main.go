// Debug tool to run the response decoder against a saved JSON body
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/thesavant42/rickdex/internal/api"
	"github.com/thesavant42/rickdex/internal/ui"
)

var kinds = map[string]api.Kind{
	"characters": api.KindCharacters,
	"episodes":   api.KindEpisodes,
	"locations":  api.KindLocations,
}

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "usage: debug-decode <characters|episodes|locations> <file.json>")
		os.Exit(2)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           log.DebugLevel,
		ReportTimestamp: true,
	})

	kind, ok := kinds[os.Args[1]]
	if !ok {
		logger.Fatal("unknown kind", "kind", os.Args[1])
	}

	body, err := os.ReadFile(os.Args[2])
	if err != nil {
		logger.Fatal("failed to read body", "err", err)
	}
	logger.Debug("read body", "file", os.Args[2], "bytes", len(body))

	// Strict first, then lenient, so an enum mismatch shows both outcomes
	fmt.Println("--- strict ---")
	page, err := api.Decode(kind, body, api.DecodeOptions{})
	if err != nil {
		fmt.Printf("ERROR: %v\n", err)
	} else {
		ui.Present(os.Stdout, page)
	}

	fmt.Println("\n--- lenient ---")
	page, err = api.Decode(kind, body, api.DecodeOptions{Lenient: true})
	if err != nil {
		fmt.Printf("ERROR: %v\n", err)
		os.Exit(1)
	}
	ui.Present(os.Stdout, page)
}
