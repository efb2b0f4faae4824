package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/dkarpov/savevault/internal/cli"
	"github.com/dkarpov/savevault/internal/config"
)

func main() {

	cfg := config.LoadConfig()
	app := cli.NewApp(cfg)

	if err := app.Run(commandArgs(os.Args[1:])); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// commandArgs strips flag arguments (handled by the config loader) so only
// the command and its positional arguments remain.
func commandArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		if strings.HasPrefix(args[i], "-") {
			if !strings.Contains(args[i], "=") && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				i++
			}
			continue
		}
		out = append(out, args[i])
	}
	return out
}
