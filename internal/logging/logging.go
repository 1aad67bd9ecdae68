// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

// Package logging configures the process-wide structured logger from command line flags.
package logging

import (
	"github.com/iand/pontium/hlog"
	"github.com/kortschak/utter"
	"github.com/urfave/cli/v2"
	"golang.org/x/exp/slog"
)

var Flags = []cli.Flag{
	&cli.BoolFlag{
		Name:        "verbose",
		Aliases:     []string{"v"},
		Usage:       "Set logging level more verbose to include info level logs",
		Value:       false,
		Destination: &Opts.Verbose,
	},

	&cli.BoolFlag{
		Name:        "veryverbose",
		Aliases:     []string{"vv"},
		Usage:       "Set logging level more verbose to include debug level logs",
		Destination: &Opts.VeryVerbose,
	},

	&cli.StringSliceFlag{
		Name:        "log-ids",
		Usage:       "Always emit logging for these object ids (path3, text7), comma separated",
		Destination: &Opts.LogIDs,
	},
}

var Opts struct {
	Verbose     bool
	VeryVerbose bool
	LogIDs      cli.StringSlice
}

// Setup installs the default logger. Records for the ids named by --log-ids are emitted at any
// level.
func Setup() {
	logLevel := new(slog.LevelVar)
	logLevel.Set(slog.LevelWarn)
	if Opts.Verbose {
		logLevel.Set(slog.LevelInfo)
	}
	if Opts.VeryVerbose {
		logLevel.Set(slog.LevelDebug)
	}

	h := new(hlog.Handler)
	h = h.WithLevel(logLevel.Level())
	for _, id := range Opts.LogIDs.Value() {
		h = h.WithAttrLevel(slog.String("id", id), slog.LevelDebug)
	}

	slog.SetDefault(slog.New(h))
}

var (
	Default = slog.Default
	Debug   = slog.Debug
	Info    = slog.Info
	Warn    = slog.Warn
	Error   = slog.Error
	With    = slog.With
)

func Dump(v any) {
	switch vt := v.(type) {
	case string:
		slog.Info(vt)
	default:
		slog.Info(utter.Sdump(v))
	}
}
