// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package logging

import (
	"context"
	"testing"

	"github.com/maruel/ut"
	"github.com/urfave/cli/v2"
	"golang.org/x/exp/slog"
)

// Setup replaces the process-wide logger so these tests are not parallel.
func TestSetupLevels(t *testing.T) {
	ctx := context.Background()
	data := []struct {
		verbose, veryVerbose bool
		enabled              []slog.Level
		disabled             []slog.Level
	}{
		// 0 Default is warnings only
		{false, false, []slog.Level{slog.LevelWarn, slog.LevelError}, []slog.Level{slog.LevelInfo, slog.LevelDebug}},
		// 1 Verbose adds info
		{true, false, []slog.Level{slog.LevelWarn, slog.LevelInfo}, []slog.Level{slog.LevelDebug}},
		// 2 Very verbose adds debug
		{false, true, []slog.Level{slog.LevelWarn, slog.LevelInfo, slog.LevelDebug}, nil},
	}
	for i, line := range data {
		Opts.Verbose = line.verbose
		Opts.VeryVerbose = line.veryVerbose
		Opts.LogIDs = cli.StringSlice{}
		Setup()

		h := Default().Handler()
		for _, l := range line.enabled {
			ut.AssertEqualIndex(t, i, true, h.Enabled(ctx, l))
		}
		for _, l := range line.disabled {
			ut.AssertEqualIndex(t, i, false, h.Enabled(ctx, l))
		}
	}
	Opts.Verbose, Opts.VeryVerbose = false, false
}

func TestSetupLogIDs(t *testing.T) {
	ctx := context.Background()
	Opts.LogIDs = *cli.NewStringSlice("path1")
	Setup()
	ut.AssertEqual(t, true, Default().Handler().Enabled(ctx, slog.LevelWarn))
	ut.AssertEqual(t, true, With("id", "path1").Handler().Enabled(ctx, slog.LevelDebug))
	Opts.LogIDs = cli.StringSlice{}
	Setup()
}
