package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
)

type Config struct {
	Root        string
	Report      string
	Chat        string
	Owner       string
	Granularity int
	Axis        int
	Method      int
	Pretty      bool
	Verbose     bool
}

// reports lists every report the CLI can run, mapped to whether it needs a
// -chat argument.
var reports = map[string]bool{
	"logins":      false,
	"lengths":     true,
	"words":       true,
	"activity":    false,
	"active":      false,
	"cycle":       false,
	"rank":        false,
	"followers":   false,
	"following":   false,
	"advertisers": false,
	"owner":       false,
}

func (c Config) Validate() error {
	if c.Root == "" {
		return fmt.Errorf("missing -root (or INSTALENS_EXPORT_ROOT in the environment/.env)")
	}
	needsChat, ok := reports[c.Report]
	if !ok {
		return fmt.Errorf("unknown -report %q: one of logins, lengths, words, activity, active, cycle, rank, followers, following, advertisers, owner", c.Report)
	}
	if needsChat && c.Chat == "" {
		return fmt.Errorf("-report %s requires -chat", c.Report)
	}
	return nil
}

func defaultConfig() Config {
	return Config{
		Report:      "activity",
		Granularity: 2, // daily
		Axis:        2, // weekday
		Method:      0, // received message count
	}
}

func parseFlags(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := defaultConfig()

	fs.SetOutput(os.Stderr)

	fs.StringVar(&cfg.Root, "root", cfg.Root, "Path to the root of a decompressed Instagram export")
	fs.StringVar(&cfg.Report, "report", cfg.Report, "Report to run (logins, lengths, words, activity, active, cycle, rank, followers, following, advertisers, owner)")
	fs.StringVar(&cfg.Chat, "chat", cfg.Chat, "Conversation name or prefix, for per-chat reports")
	fs.StringVar(&cfg.Owner, "owner", cfg.Owner, "Owner display name; defaults to the export's personal information")
	fs.IntVar(&cfg.Granularity, "granularity", cfg.Granularity, "Time bucket: 0=year 1=month 2=day 3=hour 4=minute")
	fs.IntVar(&cfg.Axis, "axis", cfg.Axis, "Cycle axis for -report cycle: 0=year 1=month 2=weekday 3=hour")
	fs.IntVar(&cfg.Method, "method", cfg.Method, "Ranking method for -report rank: 0=received messages 1=received characters")
	fs.BoolVar(&cfg.Pretty, "pretty", false, "Pretty-print the JSON output")
	fs.BoolVar(&cfg.Verbose, "v", false, "Verbose logging")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage:\n  %s [flags]\n\nFlags:\n", filepath.Base(os.Args[0]))
		fs.PrintDefaults()
		fmt.Fprintln(fs.Output(), "\nExamples:")
		fmt.Fprintln(fs.Output(), "  instalens -root ~/Downloads/export -report activity -granularity 2")
		fmt.Fprintln(fs.Output(), "  instalens -root ~/Downloads/export -report words -chat thesimpsons")
		fmt.Fprintln(fs.Output(), "  instalens -report rank -method 1  # root from INSTALENS_EXPORT_ROOT")
	}

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Root == "" {
		cfg.Root = os.Getenv("INSTALENS_EXPORT_ROOT")
	}
	if cfg.Root != "" {
		cfg.Root = filepath.Clean(cfg.Root)
	}
	return cfg, nil
}
