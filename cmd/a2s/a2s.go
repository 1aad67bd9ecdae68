// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/asciitosvg/a2s"
	"github.com/asciitosvg/a2s/internal/config"
	"github.com/asciitosvg/a2s/internal/logging"
)

const logo = `.-------------------------.
|                         |
| .---.-. .-----. .-----. |
| | .-. | +-->  | |  <--| |
| | '-' | |  <--| +-->  | |
| '---'-' '-----' '-----' |
|  ascii     2      svg   |
|                         |
'-------------------------'
`

var opts struct {
	in       string
	out      string
	noBlur   bool
	font     string
	scale    string
	tabWidth int
	objects  string
	format   string
	config   string
}

var flags = append([]cli.Flag{
	&cli.StringFlag{
		Name:        "input",
		Aliases:     []string{"i"},
		Value:       "-",
		Usage:       "Path to input text file. If set to \"-\" (hyphen), stdin is used.",
		Destination: &opts.in,
	},
	&cli.StringFlag{
		Name:        "output",
		Aliases:     []string{"o"},
		Value:       "-",
		Usage:       "Path to output file. If set to \"-\" (hyphen), stdout is used.",
		Destination: &opts.out,
	},
	&cli.BoolFlag{
		Name:        "no-blur",
		Aliases:     []string{"b"},
		Usage:       "Disable drop-shadow blur.",
		Destination: &opts.noBlur,
	},
	&cli.StringFlag{
		Name:        "font",
		Aliases:     []string{"f"},
		Value:       a2s.DefaultFont,
		Usage:       "Font family to use.",
		Destination: &opts.font,
	},
	&cli.StringFlag{
		Name:        "scale",
		Aliases:     []string{"s"},
		Value:       "9,16",
		Usage:       "Size of one grid cell in pixels, as X,Y.",
		Destination: &opts.scale,
	},
	&cli.IntFlag{
		Name:        "tab-width",
		Aliases:     []string{"t"},
		Value:       a2s.DefaultTabWidth,
		Usage:       "Number of columns a tab expands to.",
		Destination: &opts.tabWidth,
	},
	&cli.StringFlag{
		Name:        "objects",
		Usage:       "Directory of *.path custom object definitions.",
		Destination: &opts.objects,
	},
	&cli.StringFlag{
		Name:        "format",
		Value:       config.FormatSVG,
		Usage:       "Output format, svg or png.",
		Destination: &opts.format,
	},
	&cli.StringFlag{
		Name:        "config",
		Aliases:     []string{"c"},
		Value:       config.DefaultPath(),
		Usage:       "Path to a YAML configuration file.",
		Destination: &opts.config,
	},
}, logging.Flags...)

func newApp() *cli.App {
	cli.AppHelpTemplate = logo + "\n" + cli.AppHelpTemplate
	return &cli.App{
		Name:      "a2s",
		HelpName:  "a2s",
		Usage:     "Convert ASCII art diagrams to SVG or PNG",
		Flags:     flags,
		Action:    convert,
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
	}
}

// parseScale parses "X,Y" into two positive numbers.
func parseScale(s string) (float64, float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("scale %q: want X,Y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("scale %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("scale %q: %w", s, err)
	}
	if x <= 0 || y <= 0 {
		return 0, 0, fmt.Errorf("scale %q: must be positive", s)
	}
	return x, y, nil
}

// settings merges the configuration file with the command line; flags that were set win.
func settings(cc *cli.Context) (*config.Config, error) {
	c, err := config.Load(opts.config, !cc.IsSet("config"))
	if err != nil {
		return nil, err
	}
	if cc.IsSet("scale") || len(c.Scale) == 0 {
		x, y, err := parseScale(opts.scale)
		if err != nil {
			return nil, err
		}
		c.Scale = []float64{x, y}
	}
	if cc.IsSet("tab-width") || c.TabWidth == 0 {
		c.TabWidth = opts.tabWidth
	}
	if cc.IsSet("no-blur") || c.Blur == nil {
		blur := !opts.noBlur
		c.Blur = &blur
	}
	if cc.IsSet("font") || c.Font == "" {
		c.Font = opts.font
	}
	if cc.IsSet("objects") {
		c.Objects = opts.objects
	}
	if cc.IsSet("format") || c.Format == "" {
		c.Format = opts.format
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func readInput(path string) ([]byte, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	// Strip a byte order mark; UTF-16 input is converted to UTF-8.
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	return io.ReadAll(transform.NewReader(bufio.NewReader(r), dec))
}

func convert(cc *cli.Context) error {
	logging.Setup()

	c, err := settings(cc)
	if err != nil {
		return err
	}
	input, err := readInput(opts.in)
	if err != nil {
		return err
	}

	options := []a2s.Option{
		a2s.WithScale(c.Scale[0], c.Scale[1]),
		a2s.WithTabWidth(c.TabWidth),
		a2s.WithBlur(*c.Blur),
		a2s.WithFont(c.Font),
	}
	if dir := c.ObjectsDir(); dir != "" {
		p := a2s.NewDirProvider(os.DirFS(dir))
		if err := p.Load(); err != nil {
			return err
		}
		logging.Info("loaded custom objects", "dir", dir, "names", p.Names())
		options = append(options, a2s.WithObjects(p))
	}

	d, err := a2s.Parse(input, options...)
	if err != nil {
		return err
	}
	if logging.Opts.VeryVerbose {
		logging.Dump(d.Groups())
	}

	var w io.Writer = os.Stdout
	if opts.out != "-" {
		f, err := os.Create(opts.out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	bw := bufio.NewWriter(w)
	switch c.Format {
	case config.FormatPNG:
		err = d.WritePNG(bw, a2s.DefaultPNGOptions())
	default:
		err = d.WriteSVG(bw)
	}
	if err != nil {
		return err
	}
	return bw.Flush()
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "a2s: %s\n", err)
		os.Exit(1)
	}
}
