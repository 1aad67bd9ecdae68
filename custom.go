// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package a2s

import (
	"bufio"
	"bytes"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/asciitosvg/a2s/internal/logging"
)

// ObjectProvider supplies custom object templates for boxes tagged with "a2s:type".
type ObjectProvider interface {
	// Object returns the templates for name. Each template is drawn as its own sub-path.
	Object(name string) ([]Template, bool)
}

// Template is one path of a custom object, defined in a Width x Height coordinate space.
type Template struct {
	Width    float64
	Height   float64
	Commands []PathCommand
}

// PathCommand is a single SVG path command with its arguments.
type PathCommand struct {
	Op   byte
	Args []float64
}

func (c PathCommand) String() string {
	var b strings.Builder
	b.WriteByte(c.Op)
	for _, a := range c.Args {
		b.WriteByte(' ')
		b.WriteString(formatFloat(a))
	}
	return b.String()
}

// argCount is the number of arguments taken by each supported command.
var argCount = map[byte]int{
	'M': 2, 'L': 2, 'T': 2,
	'H': 1, 'V': 1,
	'C': 6, 'S': 4, 'Q': 4,
	'A': 7,
	'Z': 0,
}

func isPathOp(c byte) bool {
	_, ok := argCount[upper(c)]
	return ok
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

func isRelative(c byte) bool {
	return c >= 'a' && c <= 'z'
}

// ParsePathData parses the d attribute of an SVG path. Argument lists may repeat a command
// implicitly; extra pairs after a moveto are linetos.
func ParsePathData(d string) ([]PathCommand, error) {
	l := &pathLexer{s: d}
	var out []PathCommand
	var op byte
	for {
		l.skipSeparators()
		if l.done() {
			break
		}
		if c := l.peek(); isPathOp(c) {
			op = c
			l.pos++
		} else if op == 0 {
			return nil, fmt.Errorf("path data %q: expected command at offset %d", d, l.pos)
		} else if upper(op) == 'Z' {
			return nil, fmt.Errorf("path data %q: unexpected %q at offset %d", d, c, l.pos)
		}

		n := argCount[upper(op)]
		cmd := PathCommand{Op: op, Args: make([]float64, 0, n)}
		for i := 0; i < n; i++ {
			l.skipSeparators()
			v, err := l.number()
			if err != nil {
				return nil, fmt.Errorf("path data %q: %s argument %d: %w", d, string(op), i+1, err)
			}
			cmd.Args = append(cmd.Args, v)
		}
		out = append(out, cmd)

		switch op {
		case 'M':
			op = 'L'
		case 'm':
			op = 'l'
		}
	}
	return out, nil
}

type pathLexer struct {
	s   string
	pos int
}

func (l *pathLexer) done() bool {
	return l.pos >= len(l.s)
}

func (l *pathLexer) peek() byte {
	return l.s[l.pos]
}

func (l *pathLexer) skipSeparators() {
	for !l.done() {
		switch l.peek() {
		case ' ', '\t', '\n', '\r', ',':
			l.pos++
		default:
			return
		}
	}
}

// number scans a float: optional sign, digits with at most one point, optional exponent.
func (l *pathLexer) number() (float64, error) {
	start := l.pos
	if !l.done() && (l.peek() == '-' || l.peek() == '+') {
		l.pos++
	}
	digits, dot := 0, false
	for !l.done() {
		c := l.peek()
		if c >= '0' && c <= '9' {
			digits++
		} else if c == '.' && !dot {
			dot = true
		} else {
			break
		}
		l.pos++
	}
	if digits == 0 {
		l.pos = start
		if l.done() {
			return 0, fmt.Errorf("unexpected end of data")
		}
		return 0, fmt.Errorf("expected number at offset %d", start)
	}
	if !l.done() && (l.peek() == 'e' || l.peek() == 'E') {
		mark := l.pos
		l.pos++
		if !l.done() && (l.peek() == '-' || l.peek() == '+') {
			l.pos++
		}
		exp := 0
		for !l.done() && l.peek() >= '0' && l.peek() <= '9' {
			exp++
			l.pos++
		}
		if exp == 0 {
			l.pos = mark
		}
	}
	return strconv.ParseFloat(l.s[start:l.pos], 64)
}

// remap transforms a template command from its own coordinate space into the box at (x, y) of
// size w x h. Absolute coordinates are scaled and translated, relative ones only scaled.
func (t Template) remap(c PathCommand, x, y, w, h float64) PathCommand {
	pX := w / t.Width
	pY := h / t.Height
	out := PathCommand{Op: c.Op, Args: make([]float64, len(c.Args))}
	copy(out.Args, c.Args)
	rel := isRelative(c.Op)

	// pair scales the coordinate pair at i.
	pair := func(i int) {
		if rel {
			out.Args[i] = c.Args[i] * pX
			out.Args[i+1] = c.Args[i+1] * pY
			return
		}
		out.Args[i] = x + c.Args[i]*pX
		out.Args[i+1] = y + c.Args[i+1]*pY
	}

	switch upper(c.Op) {
	case 'Z':
		out.Op = 'Z'
	case 'M', 'L', 'T', 'C', 'S', 'Q':
		for i := 0; i+1 < len(c.Args); i += 2 {
			pair(i)
		}
	case 'H':
		out.Args[0] = c.Args[0] * pX
		if !rel {
			out.Args[0] += x
		}
	case 'V':
		out.Args[0] = c.Args[0] * pY
		if !rel {
			out.Args[0] += y
		}
	case 'A':
		// Radii are proportional to the new size; rotation and flags are unchanged.
		out.Args[0] = c.Args[0] * pX
		out.Args[1] = c.Args[1] * pY
		pair(5)
	}
	return out
}

// MapProvider is an in-memory ObjectProvider.
type MapProvider map[string][]Template

// Object implements ObjectProvider.
func (m MapProvider) Object(name string) ([]Template, bool) {
	t, ok := m[name]
	return t, ok && len(t) > 0
}

var (
	pathWidth  = regexp.MustCompile(`(?:^|\s)width="(\d+(?:\.\d+)?)"`)
	pathHeight = regexp.MustCompile(`(?:^|\s)height="(\d+(?:\.\d+)?)"`)
	pathData   = regexp.MustCompile(`(?:^|\s)d="([^"]+)"`)
)

// DirProvider loads custom objects from the *.path files of a directory. Each non-blank line of a
// file holds one path element with width, height and d attributes; the object is named after the
// file. Objects are loaded on first use and kept in memory. It is safe for concurrent use.
type DirProvider struct {
	fsys fs.FS

	mu      sync.Mutex
	objects map[string][]Template
}

// NewDirProvider returns a provider reading *.path files from the root of fsys.
func NewDirProvider(fsys fs.FS) *DirProvider {
	return &DirProvider{fsys: fsys}
}

// Load reads every object. It is called implicitly by Object.
func (p *DirProvider) Load() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.load()
}

// Reload drops the cached objects and reads them again.
func (p *DirProvider) Reload() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.objects = nil
	return p.load()
}

func (p *DirProvider) load() error {
	if p.objects != nil {
		return nil
	}
	matches, err := fs.Glob(p.fsys, "*.path")
	if err != nil {
		return fmt.Errorf("list objects: %w", err)
	}
	objects := map[string][]Template{}
	for _, m := range matches {
		data, err := fs.ReadFile(p.fsys, m)
		if err != nil {
			return fmt.Errorf("read object: %w", err)
		}
		t, err := parseObjectFile(data)
		if err != nil {
			return fmt.Errorf("object %s: %w", m, err)
		}
		name := strings.TrimSuffix(path.Base(m), ".path")
		objects[name] = t
		logging.Debug("loaded custom object", "name", name, "paths", len(t))
	}
	p.objects = objects
	return nil
}

// Object implements ObjectProvider. Load failures are logged and reported as not found.
func (p *DirProvider) Object(name string) ([]Template, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.load(); err != nil {
		logging.Warn("loading custom objects failed", "err", err)
		return nil, false
	}
	t, ok := p.objects[name]
	return t, ok && len(t) > 0
}

// Names returns the object names in sorted order, loading the directory if needed.
func (p *DirProvider) Names() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.load(); err != nil {
		logging.Warn("loading custom objects failed", "err", err)
		return nil
	}
	names := make([]string, 0, len(p.objects))
	for k := range p.objects {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func parseObjectFile(data []byte) ([]Template, error) {
	var out []Template
	s := bufio.NewScanner(bytes.NewReader(data))
	for n := 1; s.Scan(); n++ {
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}
		w := pathWidth.FindStringSubmatch(line)
		h := pathHeight.FindStringSubmatch(line)
		d := pathData.FindStringSubmatch(line)
		if w == nil || h == nil || d == nil {
			return nil, fmt.Errorf("line %d: need width, height and d attributes", n)
		}
		t := Template{}
		t.Width, _ = strconv.ParseFloat(w[1], 64)
		t.Height, _ = strconv.ParseFloat(h[1], 64)
		if t.Width == 0 || t.Height == 0 {
			return nil, fmt.Errorf("line %d: empty size %gx%g", n, t.Width, t.Height)
		}
		cmds, err := ParsePathData(d[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		t.Commands = cmds
		out = append(out, t)
	}
	return out, s.Err()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
