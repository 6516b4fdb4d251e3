// Command instalens runs one aggregation over a local Instagram export and
// prints the result as JSON. It is a thin consumer of the archive and
// analysis packages; chart rendering lives elsewhere.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/calegan/instalens/analysis"
	"github.com/calegan/instalens/archive"
)

func main() {
	_ = godotenv.Load()

	cfg, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()
	if !cfg.Verbose {
		logger = logger.Level(zerolog.WarnLevel)
	}

	export, err := archive.Open(cfg.Root)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
	analyzer := analysis.New(export, analysis.WithLogger(logger))

	out, err := runReport(analyzer, export, cfg, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		var invalid *analysis.InvalidArgumentError
		if errors.As(err, &invalid) {
			os.Exit(2)
		}
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	if cfg.Pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(out); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

// sentReceived is the JSON shape for the activity report.
type sentReceived struct {
	Sent     map[analysis.PeriodKey]int `json:"sent"`
	Received map[analysis.PeriodKey]int `json:"received"`
}

// ranking is the JSON shape for the rank report. DisplayNames maps each inbox
// folder to its human-readable form, with the export's random suffix stripped.
type ranking struct {
	Ranked       []string          `json:"ranked"`
	Scores       map[string]int    `json:"scores"`
	DisplayNames map[string]string `json:"display_names"`
}

func runReport(analyzer *analysis.Analyzer, export *archive.Export, cfg Config, logger zerolog.Logger) (any, error) {
	switch cfg.Report {
	case "logins":
		return analyzer.CountLoginsByMonth()
	case "lengths":
		return analyzer.MessageLengthSeries(cfg.Chat)
	case "words":
		return analyzer.WordFrequency(cfg.Chat)
	case "activity":
		g, err := analysis.ParseGranularity(cfg.Granularity)
		if err != nil {
			return nil, err
		}
		sent, received, err := analyzer.MessagesPerPeriod(resolveOwner(export, cfg, logger), g)
		if err != nil {
			return nil, err
		}
		return sentReceived{Sent: sent, Received: received}, nil
	case "active":
		g, err := analysis.ParseGranularity(cfg.Granularity)
		if err != nil {
			return nil, err
		}
		active, err := analyzer.ActiveConversationsPerPeriod(g)
		if err != nil {
			return nil, err
		}
		// Sets render as sorted arrays so the output is deterministic.
		out := make(map[analysis.PeriodKey][]string, len(active))
		for key, set := range active {
			names := make([]string, 0, len(set))
			for name := range set {
				names = append(names, name)
			}
			sort.Strings(names)
			out[key] = names
		}
		return out, nil
	case "cycle":
		axis, err := analysis.ParseCycleAxis(cfg.Axis)
		if err != nil {
			return nil, err
		}
		return analyzer.MessageCycle(resolveOwner(export, cfg, logger), axis)
	case "rank":
		method, err := analysis.ParseRankMethod(cfg.Method)
		if err != nil {
			return nil, err
		}
		ranked, scores, err := analyzer.RankConversationsByIncomingActivity(resolveOwner(export, cfg, logger), method)
		if err != nil {
			return nil, err
		}
		display := make(map[string]string, len(ranked))
		for _, folder := range ranked {
			display[folder] = archive.NormalizeUsername(folder)
		}
		return ranking{Ranked: ranked, Scores: scores, DisplayNames: display}, nil
	case "followers":
		return export.Followers()
	case "following":
		return export.Following()
	case "advertisers":
		return export.Advertisers()
	case "owner":
		return export.PersonalInfo()
	default:
		return nil, fmt.Errorf("unknown report %q", cfg.Report)
	}
}

// resolveOwner falls back to the export's personal information when no owner
// name was given. A missing personal-information file is not fatal; the
// aggregations warn about an owner that matches nothing.
func resolveOwner(export *archive.Export, cfg Config, logger zerolog.Logger) string {
	if cfg.Owner != "" {
		return cfg.Owner
	}
	name, err := export.OwnerName()
	if err != nil {
		logger.Warn().Err(err).Msg("could not read owner name from personal information; pass -owner explicitly")
		return ""
	}
	return name
}
