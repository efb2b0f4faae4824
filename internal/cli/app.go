// Package cli implements the savevault command-line inspector. It works
// entirely through the public store surface; the verify command exercises
// the full read path with a passthrough codec, so no game binary is needed.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dkarpov/savevault/internal/common"
	"github.com/dkarpov/savevault/internal/config"
	"github.com/dkarpov/savevault/internal/logging"
	"github.com/dkarpov/savevault/internal/save"
	"github.com/dkarpov/savevault/internal/slot"
)

type App struct {
	store *save.Store
	out   io.Writer
}

func NewApp(cfg *config.Config) *App {
	level := parseLevel(cfg.LogLevel)
	logger := logging.NewSlogLogger(slog.New(
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	store := save.New(cfg.SaveDir, save.RawCodec{},
		save.WithLogger(logger),
		save.WithMaxStateSize(cfg.MaxStateSize))

	return &App{store: store, out: os.Stdout}
}

func parseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// Run dispatches one command. args is everything after the program name,
// with config flags already consumed by the config loader.
func (a *App) Run(args []string) error {
	cmd, rest := "list", []string(nil)
	if len(args) > 0 {
		cmd, rest = args[0], args[1:]
	}

	switch cmd {
	case "list":
		return a.list()
	case "meta":
		return a.meta(rest)
	case "rename":
		return a.rename(rest)
	case "delete":
		return a.delete(rest)
	case "verify":
		return a.verify(rest)
	case "help":
		a.usage()
		return nil
	}
	a.usage()
	return fmt.Errorf("unknown command %q", cmd)
}

func (a *App) usage() {
	fmt.Fprintln(a.out, "Usage: savevault [flags] <command>")
	fmt.Fprintln(a.out, "Commands:")
	fmt.Fprintln(a.out, "  list                  show all slots")
	fmt.Fprintln(a.out, "  meta <slot>           print one slot's meta entry")
	fmt.Fprintln(a.out, "  rename <slot> <name>  change a slot's display name")
	fmt.Fprintln(a.out, "  delete <slot>         remove a slot's archive")
	fmt.Fprintln(a.out, "  verify <slot>         check payload integrity")
}

func (a *App) list() error {
	all := a.store.ListAll()
	for _, id := range slot.IDs {
		m := all[id]
		if m == nil {
			fmt.Fprintf(a.out, "%-5s (empty)\n", id)
			continue
		}
		fmt.Fprintf(a.out, "%-5s %-24s day %-4d %5d mi  party %d  %s\n",
			id, m.DisplayName, m.Day, m.MilesTraveled, m.PartySize,
			m.SavedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func (a *App) meta(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: meta <slot>")
	}
	m, err := a.store.ReadMeta(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "save_id:        %s\n", m.SaveID)
	fmt.Fprintf(a.out, "display_name:   %s\n", m.DisplayName)
	fmt.Fprintf(a.out, "day:            %d\n", m.Day)
	fmt.Fprintf(a.out, "miles_traveled: %d\n", m.MilesTraveled)
	fmt.Fprintf(a.out, "party_size:     %d\n", m.PartySize)
	fmt.Fprintf(a.out, "saved_at:       %s\n", m.SavedAt.Format("2006-01-02 15:04:05"))
	return nil
}

func (a *App) rename(args []string) error {
	if len(args) != 2 {
		return errors.New("usage: rename <slot> <name>")
	}
	if err := a.store.Rename(args[0], args[1]); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "slot %s renamed to %q\n", args[0], args[1])
	return nil
}

func (a *App) delete(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: delete <slot>")
	}
	if err := a.store.Delete(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "slot %s deleted\n", args[0])
	return nil
}

func (a *App) verify(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: verify <slot>")
	}
	_, res, err := a.store.Load(args[0])
	switch res.Status {
	case save.LoadOK:
		fmt.Fprintf(a.out, "slot %s: current payload verified\n", args[0])
		return nil
	case save.LoadRecovered:
		fmt.Fprintf(a.out, "slot %s: current payload damaged, backup verified (current: %v)\n",
			args[0], res.CurrentErr)
		return nil
	}
	if errors.Is(err, common.ErrSlotEmpty) {
		fmt.Fprintf(a.out, "slot %s: empty\n", args[0])
		return nil
	}
	return err
}
