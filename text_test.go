// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package a2s

import (
	"testing"

	"github.com/maruel/ut"
)

func TestTextContrast(t *testing.T) {
	t.Parallel()
	data := []struct {
		fill     string
		expected string
	}{
		// 0 Dark hex
		{"#000000", "#fff"},
		// 1 Light hex
		{"#ffffff", ""},
		// 2 Dark name
		{"navy", "#fff"},
		// 3 Light name
		{"lightyellow", ""},
		// 4 Unknown colors leave text alone
		{"bogus", ""},
		// 5 Not a color at all
		{"url(#gradient)", ""},
	}
	for i, line := range data {
		d := mustParse(t, []string{
			"+-----+",
			"|[a]  |",
			"|Hi   |",
			"+-----+",
			"",
			`[a]: {"fill":"` + line.fill + `"}`,
		})
		texts := d.Text()
		ut.AssertEqualIndex(t, i, 2, len(texts))
		for _, tx := range texts {
			ut.AssertEqualIndex(t, i, line.expected, tx.Option("fill"))
		}
	}
}

func TestTextContrastNested(t *testing.T) {
	t.Parallel()
	// The inner box is found after the outer one and decides for the text it contains.
	d := mustParse(t, []string{
		"+--------+",
		"|[o]     |",
		"| +----+ |",
		"| |[i] | |",
		"| |x   | |",
		"| +----+ |",
		"+--------+",
		"",
		`[o]: {"fill":"#000"}`,
		`[i]: {"fill":"#fff"}`,
	})
	got := map[string]string{}
	for _, o := range d.Text() {
		got[o.Text()] = o.Option("fill")
	}
	ut.AssertEqual(t, map[string]string{"o": "#fff", "i": "", "x": ""}, got)
}

func TestTextRuns(t *testing.T) {
	t.Parallel()
	data := []struct {
		input    string
		expected []string
	}{
		// 0 A single space joins words
		{"foo bar", []string{"foo bar"}},
		// 1 Two spaces split runs
		{"foo  bar", []string{"foo", "bar"}},
		// 2 Trailing space is dropped
		{"foo ", []string{"foo"}},
	}
	for i, line := range data {
		d := mustParse(t, []string{line.input})
		var got []string
		for _, o := range d.Text() {
			got = append(got, o.Text())
		}
		ut.AssertEqualIndex(t, i, line.expected, got)
	}
}
