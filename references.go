// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package a2s

import (
	"encoding/json"
	"regexp"
	"sort"
	"strconv"

	"github.com/asciitosvg/a2s/internal/logging"
)

// References map a name, or a "row,col" grid position, to the options applied to the matching
// object. They are written at the bottom of a diagram:
//
//	[name]: {"fill": "#000", "a2s:label": "Hello"}
//
// The JSON blob may not contain objects as values.
type References map[string]Options

var (
	refBlock = regexp.MustCompile(`(?ms)^\[([^\]]+)\]:?\s+(\{[^}]+?\})`)
	refStart = regexp.MustCompile(`(?m)^\[[^\]]+\]:?\s`)
	refCell  = regexp.MustCompile(`^\s*(\d+)\s*,\s*(\d+)\s*$`)
)

// parseReferences extracts reference blocks from data. It returns the references and the diagram
// with the reference section removed. Blocks whose JSON does not decode are ignored.
func parseReferences(data []byte) (References, []byte) {
	refs := References{}
	for _, m := range refBlock.FindAllSubmatch(data, -1) {
		name := string(m[1])
		opts, err := decodeOptions(m[2])
		if err != nil {
			logging.Warn("ignoring malformed reference", "ref", name, "err", err)
			continue
		}
		refs[name] = opts
	}
	// References must be at the bottom of the diagram; everything from the first one on goes.
	if loc := refStart.FindIndex(data); loc != nil {
		data = data[:loc[0]]
	}
	return refs, data
}

// decodeOptions converts a flat JSON object into Options.
func decodeOptions(blob []byte) (Options, error) {
	var raw map[string]any
	if err := json.Unmarshal(blob, &raw); err != nil {
		return nil, err
	}
	opts := make(Options, len(raw))
	for k, v := range raw {
		switch t := v.(type) {
		case string:
			opts[k] = t
		case float64:
			opts[k] = strconv.FormatFloat(t, 'f', -1, 64)
		case bool:
			opts[k] = strconv.FormatBool(t)
		case nil:
			opts[k] = ""
		default:
			b, err := json.Marshal(t)
			if err != nil {
				return nil, err
			}
			opts[k] = string(b)
		}
	}
	return opts, nil
}

// cellRefs returns the references keyed by grid position.
func (r References) cellRefs() map[cell]Options {
	out := map[cell]Options{}
	for name, opts := range r {
		m := refCell.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		row, _ := strconv.Atoi(m[1])
		col, _ := strconv.Atoi(m[2])
		out[cell{row, col}] = opts
	}
	return out
}

// Names returns the reference names in sorted order.
func (r References) Names() []string {
	names := make([]string, 0, len(r))
	for k := range r {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
