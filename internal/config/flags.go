package config

import (
	"flag"
	"os"

	"github.com/dkarpov/savevault/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   save directory (default from Config)
//	-m int      decompression cap in bytes (default from Config)
//	-l string   log level (default from Config)
//
// The function filters os.Args to only include the flags it knows about, so
// it does not interfere with command arguments handled elsewhere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-m", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.SaveDir, "d", cfg.SaveDir, "save directory")
	fs.Int64Var(&cfg.MaxStateSize, "m", cfg.MaxStateSize, "decompression cap in bytes")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
