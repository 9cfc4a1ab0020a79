package board

import "fmt"

// A Cell is one grid position: its terrain Space plus the codes of every ref
// placed there, in the order they appeared in the table file.
type Cell struct {
	Space Space
	Refs  []string
}

// A Table is one fully parsed board: a rectangular grid of cells, the ref
// table shared by every cell, and the file's post-render directives in file
// order.
type Table struct {
	Cells      [][]Cell
	Refs       map[string]*Ref
	Directives []Directive
}

func (t *Table) NumRows() int {
	return len(t.Cells)
}

func (t *Table) NumCols() int {
	if len(t.Cells) == 0 {
		return 0
	}
	return len(t.Cells[0])
}

// Resolves a ref code against the board's ref table. A code that appears in
// the grid but not in the ref table is a hard error; the table file is
// internally inconsistent.
func (t *Table) Ref(code string) (*Ref, error) {
	ref, ok := t.Refs[code]
	if !ok {
		return nil, fmt.Errorf("ref code %q is not in the ref table", code)
	}
	return ref, nil
}
