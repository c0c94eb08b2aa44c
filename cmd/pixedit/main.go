// Command pixedit is an interactive image editor: load an image, apply
// named filters one at a time, undo back to any prior state, and save
// the result.
package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/gopix/pixedit"
	"github.com/gopix/pixedit/internal/imgio"
)

var (
	heading = color.New(color.Bold, color.FgCyan).SprintFunc()
	entry   = color.New(color.FgGreen).SprintFunc()
	errText = color.New(color.FgRed).SprintFunc()
)

func main() {
	var verbose bool

	root := &cobra.Command{
		Use:   "pixedit IMAGE",
		Short: "Interactive image editor with undo history",
		Long: `pixedit loads an image and starts an interactive loop. Type a filter
name to apply it, "undo" to step back, "save PATH" to write the current
state to disk. Supported formats: PNG, JPEG, BMP.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				pixedit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
			return run(args[0])
		},
	}
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(path string) error {
	buf, err := imgio.Load(path)
	if err != nil {
		return err
	}

	session, err := pixedit.NewSession(buf, pixedit.DefaultRegistry())
	if err != nil {
		return err
	}
	catalog := pixedit.DefaultCatalog()

	printMenu(catalog)
	printState(session)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch cmd := strings.ToLower(fields[0]); cmd {
		case "quit", "exit":
			return nil

		case "list":
			printMenu(catalog)

		case "undo":
			if _, err := session.Undo(); err != nil {
				fmt.Println(errText(err.Error()))
				continue
			}
			printState(session)

		case "reset":
			session.Revert()
			printState(session)

		case "save":
			if len(fields) != 2 {
				fmt.Println(errText("usage: save PATH"))
				continue
			}
			if err := imgio.Save(fields[1], session.Current()); err != nil {
				fmt.Println(errText(err.Error()))
				continue
			}
			fmt.Println(entry("saved " + fields[1]))

		default:
			if _, err := session.Apply(cmd); err != nil {
				fmt.Println(errText(err.Error()))
				continue
			}
			printState(session)
		}
	}
}

func printMenu(c *pixedit.Catalog) {
	fmt.Println(heading("Available filters:"))
	c.Walk(func(name string, depth int) {
		indent := strings.Repeat("  ", depth-1)
		if depth == 1 {
			fmt.Println(indent + heading(name))
		} else {
			fmt.Println(indent + entry(name))
		}
	})
	fmt.Println("Commands: FILTER, undo, reset, list, save PATH, quit")
}

func printState(s *pixedit.Session) {
	b := s.Current()
	fmt.Printf("current: %dx%d px, %d channel(s), %d step(s) to undo\n",
		b.Width(), b.Height(), b.Channels(), s.Steps())
}
