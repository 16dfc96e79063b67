package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/wippyai/reflist"
)

func main() {
	var (
		pushList    = flag.String("push", "", "Values to push (comma-separated)")
		deleteList  = flag.String("delete", "", "Indices to delete in one batch (comma-separated)")
		verbose     = flag.Bool("v", false, "Verbose logging")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		reflist.SetLogger(logger)
	}

	if *interactive {
		if err := runInteractive(*pushList); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *pushList == "" {
		fmt.Fprintln(os.Stderr, "Usage: reflist -push a,b,c [-delete 1,3] [-v]")
		fmt.Fprintln(os.Stderr, "       reflist -i [-push a,b,c]  (interactive mode)")
		os.Exit(1)
	}

	if err := run(*pushList, *deleteList); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(pushStr, deleteStr string) error {
	list := reflist.New[string]()

	var handles []reflist.Handle[string]
	for _, v := range splitValues(pushStr) {
		handles = append(handles, list.Push(v))
	}

	fmt.Printf("Pushed %d values\n", list.Len())

	if deleteStr != "" {
		indices, err := parseIndices(deleteStr)
		if err != nil {
			return err
		}
		for _, idx := range indices {
			if idx < 0 || idx >= list.Len() {
				return fmt.Errorf("delete index %d out of range (len %d)", idx, list.Len())
			}
		}

		tx := list.BeginDelete()
		for _, idx := range indices {
			tx = tx.Push(idx)
		}
		tx.Done()

		fmt.Printf("Deleted %v, %d survivors\n", indices, list.Len())
	}

	fmt.Println("\nHandles (in push order):")
	for i, h := range handles {
		r := h.Read()
		if idx, ok := h.Order(); ok {
			fmt.Printf("  #%d %-12q order %d  links %d\n", i, r.Value(), idx, h.LinkCount())
		} else {
			fmt.Printf("  #%d %-12q detached\n", i, r.Value())
		}
		r.Release()
	}
	return nil
}

func splitValues(s string) []string {
	var out []string
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func parseIndices(s string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		idx, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid index %q: %w", part, err)
		}
		out = append(out, idx)
	}
	return out, nil
}
