package board

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Mercerenies/wuas-render/logging"
)

// A ParseError is any failure to parse a table file. Parsing is
// all-or-nothing; the first error aborts the whole load.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("table line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// The table grammar is line-oriented and order-significant: a version line,
// the grid (spaces line, tokens line, separator line per row, terminated by a
// blank line), the ref table (terminated by a blank line), then directives
// (terminated by a blank line or EOF). The parser walks those sections as an
// explicit state machine over a line cursor.
type parseState int

const (
	stateHeader parseState = iota
	stateGrid
	stateRefs
	stateDirectives
	stateDone
)

type lineCursor struct {
	scanner *bufio.Scanner
	lineno  int
	line    string
	eof     bool
}

func newLineCursor(r io.Reader) *lineCursor {
	return &lineCursor{scanner: bufio.NewScanner(r)}
}

// Advances the cursor one line. Returns false at end of input, after which
// the cursor stays at EOF.
func (c *lineCursor) next() bool {
	if c.eof {
		return false
	}
	if !c.scanner.Scan() {
		c.eof = true
		c.line = ""
		return false
	}
	c.lineno++
	c.line = c.scanner.Text()
	return true
}

func (c *lineCursor) blank() bool {
	return strings.TrimSpace(c.line) == ""
}

func (c *lineCursor) errf(format string, args ...interface{}) error {
	return &ParseError{Line: c.lineno, Err: fmt.Errorf(format, args...)}
}

type parser struct {
	cur   *lineCursor
	state parseState
	width int
	table *Table
}

// Parses a table file from r. Returns the board grid, the ref table and the
// post-render directives, or the first error encountered.
func Parse(r io.Reader) (*Table, error) {
	p := &parser{
		cur:   newLineCursor(r),
		state: stateHeader,
		table: &Table{Refs: make(map[string]*Ref)},
	}
	for p.state != stateDone {
		var err error
		switch p.state {
		case stateHeader:
			err = p.parseHeader()
		case stateGrid:
			err = p.parseGridRow()
		case stateRefs:
			err = p.parseRef()
		case stateDirectives:
			err = p.parseDirective()
		}
		if err != nil {
			return nil, err
		}
	}
	if err := p.cur.scanner.Err(); err != nil {
		return nil, err
	}
	logging.Debug("parsed table",
		"rows", p.table.NumRows(),
		"cols", p.table.NumCols(),
		"refs", len(p.table.Refs),
		"directives", len(p.table.Directives))
	return p.table, nil
}

// Opens and parses the table file at path.
func LoadTable(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	table, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("couldn't parse %q: %w", path, err)
	}
	return table, nil
}

// Leading comments, the version line and the grid's header line. The header
// line's '+' count fixes the column count for the whole grid.
func (p *parser) parseHeader() error {
	if !p.cur.next() {
		return p.cur.errf("missing version line")
	}
	for strings.HasPrefix(p.cur.line, "#") {
		if !p.cur.next() {
			return p.cur.errf("missing version line")
		}
	}

	version, err := strconv.Atoi(strings.TrimSpace(p.cur.line))
	if err != nil {
		return p.cur.errf("malformed version line %q", p.cur.line)
	}
	if version != 1 {
		return p.cur.errf("unsupported table version %d", version)
	}

	if !p.cur.next() {
		return p.cur.errf("missing grid header line")
	}
	width := strings.Count(p.cur.line, "+") - 1
	if width < 1 {
		return p.cur.errf("grid header %q has no columns", p.cur.line)
	}
	p.width = width
	p.state = stateGrid
	return nil
}

// One grid row: a spaces line and a tokens line, zipped cell by cell, then a
// separator line that is discarded. A blank line ends the grid section.
func (p *parser) parseGridRow() error {
	if !p.cur.next() || p.cur.blank() {
		p.state = stateRefs
		return nil
	}

	spaceCells, err := splitCells(p.cur.line)
	if err != nil {
		return p.cur.errf("bad spaces line: %v", err)
	}
	if !p.cur.next() {
		return p.cur.errf("grid row %d has no tokens line", p.table.NumRows()+1)
	}
	tokenCells, err := splitCells(p.cur.line)
	if err != nil {
		return p.cur.errf("bad tokens line: %v", err)
	}

	// Zip the two cell lists; excess cells on either line, and cells beyond
	// the header's column count, are dropped.
	n := len(spaceCells)
	if len(tokenCells) < n {
		n = len(tokenCells)
	}
	if p.width < n {
		n = p.width
	}
	row := make([]Cell, 0, n)
	for i := 0; i < n; i++ {
		rawSpace := strings.ReplaceAll(spaceCells[i], "*", "")
		cell := Cell{Space: MakeSpace(rawSpace)}
		for _, code := range tokenCells[i] {
			cell.Refs = append(cell.Refs, string(code))
		}
		row = append(row, cell)
	}
	if len(row) != p.width {
		return p.cur.errf("grid row %d has %d columns, want %d", p.table.NumRows()+1, len(row), p.width)
	}
	p.table.Cells = append(p.table.Cells, row)

	// The row's trailing separator line. EOF here just ends the grid on the
	// next pass.
	p.cur.next()
	return nil
}

// Splits a '|'-delimited line into trimmed cells, dropping the empty leading
// and trailing fields produced by the framing delimiters.
func splitCells(line string) ([]string, error) {
	parts := strings.Split(line, "|")
	if len(parts) < 2 {
		return nil, fmt.Errorf("expected '|'-delimited cells, got %q", line)
	}
	cells := parts[1 : len(parts)-1]
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = strings.TrimSpace(c)
	}
	return out, nil
}

// One ref-table line: <code> <name> <item> <x> <y>.
func (p *parser) parseRef() error {
	if !p.cur.next() || p.cur.blank() {
		p.state = stateDirectives
		return nil
	}

	fields := strings.Fields(p.cur.line)
	if len(fields) != 5 {
		return p.cur.errf("malformed ref line %q: want 'code name item x y'", p.cur.line)
	}
	x, err := strconv.Atoi(fields[3])
	if err != nil {
		return p.cur.errf("malformed ref x offset %q", fields[3])
	}
	y, err := strconv.Atoi(fields[4])
	if err != nil {
		return p.cur.errf("malformed ref y offset %q", fields[4])
	}

	code := fields[0]
	if _, ok := p.table.Refs[code]; ok {
		logging.Warn("ref code redefined", "code", code, "line", p.cur.lineno)
	}
	p.table.Refs[code] = &Ref{
		Name: fields[1],
		Item: fields[2],
		Pos:  image.Pt(x, y),
	}
	return nil
}

// One directive line: a keyword looked up in the directive registry, plus its
// arguments. An unknown keyword fails the parse.
func (p *parser) parseDirective() error {
	if !p.cur.next() || p.cur.blank() {
		p.state = stateDone
		return nil
	}

	fields := strings.Fields(p.cur.line)
	directive, err := MakeDirective(fields[0], fields[1:])
	if err != nil {
		return p.cur.errf("%v", err)
	}
	p.table.Directives = append(p.table.Directives, directive)
	return nil
}
