// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package a2s

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

func isHexDigit(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

// parseHexColor accepts the #rgb and #rrggbb forms.
func parseHexColor(c string) (r, g, b int, err error) {
	if len(c) != 4 && len(c) != 7 {
		return 0, 0, 0, fmt.Errorf("color '%s' not of valid length", c)
	}
	for i := 1; i < len(c); i++ {
		if !isHexDigit(c[i]) {
			return 0, 0, 0, fmt.Errorf("color '%s' has invalid digit %q", c, c[i])
		}
	}
	col, err := colorful.Hex(c)
	if err != nil {
		return 0, 0, 0, err
	}
	r8, g8, b8 := col.RGB255()
	return int(r8), int(g8), int(b8), nil
}

// colorToRGB matches a color string, either hex or an SVG color name, and returns its RGB
// components.
func colorToRGB(c string) (r, g, b int, err error) {
	if c == "" {
		return 0, 0, 0, fmt.Errorf("empty color")
	}
	if c[0] == '#' {
		return parseHexColor(c)
	}
	if named, ok := colornames.Map[strings.ToLower(c)]; ok {
		return int(named.R), int(named.G), int(named.B), nil
	}
	return 0, 0, 0, fmt.Errorf("color '%s' can't be parsed", c)
}

// needsLightText reports whether black text on the fill c fails the contrast recommendation. The
// formula comes from a W3 working group paper on accessibility at http://www.w3.org/TR/AERT. The
// recommended contrast is a brightness difference of at least 125 and a color difference of at
// least 500. Our default text color is black, so the color difference is just the sum of the
// components. ok is false when c does not resolve to a color.
func needsLightText(c string) (light, ok bool) {
	r, g, b, err := colorToRGB(c)
	if err != nil {
		return false, false
	}
	brightness := (r*299 + g*587 + b*114) / 1000
	difference := r + g + b
	return brightness < 125 || difference < 500, true
}
