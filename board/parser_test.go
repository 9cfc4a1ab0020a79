package board_test

import (
	"errors"
	"image"
	"strings"
	"testing"

	"github.com/Mercerenies/wuas-render/board"
	. "github.com/smartystreets/goconvey/convey"
)

const sampleTable = `# A three-by-two demo board.
# Comments like these are for the GM's eyes only.
1
+------+------+------+
|      | X?   | wolf |
| ab   |      |      |
+------+------+------+
| nil  | f*   | gap  |
|      | c    |      |
+------+------+------+

a player nil 0 0
b item sword 8 8
c monster nil 16 0
f flag nil 0 16

HIGHLIGHT ROW 1
`

func parseString(s string) (*board.Table, error) {
	return board.Parse(strings.NewReader(s))
}

func ParserSpec() {
	Convey("parsing a well-formed table", func() {
		table, err := parseString(sampleTable)
		So(err, ShouldBeNil)

		Convey("should produce a rectangular grid sized by the header", func() {
			So(table.NumRows(), ShouldEqual, 2)
			So(table.NumCols(), ShouldEqual, 3)
			for _, row := range table.Cells {
				So(len(row), ShouldEqual, table.NumCols())
			}
		})

		Convey("should normalize space identifiers", func() {
			So(table.Cells[0][0].Space, ShouldResemble, board.Space{ID: "gap", Visible: true})
			So(table.Cells[0][1].Space, ShouldResemble, board.Space{ID: "X", Visible: false})
			So(table.Cells[0][2].Space, ShouldResemble, board.Space{ID: "wolf", Visible: true})
			So(table.Cells[1][0].Space, ShouldResemble, board.Space{ID: "", Visible: true})
		})

		Convey("should strip GM asterisks from space identifiers", func() {
			So(table.Cells[1][1].Space.ID, ShouldEqual, "f")
		})

		Convey("should attach one ref code per token character", func() {
			So(table.Cells[0][0].Refs, ShouldResemble, []string{"a", "b"})
			So(table.Cells[1][1].Refs, ShouldResemble, []string{"c"})
			So(table.Cells[0][1].Refs, ShouldBeEmpty)
		})

		Convey("should parse the ref table", func() {
			So(table.Refs, ShouldHaveLength, 4)
			So(table.Refs["b"], ShouldResemble, &board.Ref{
				Name: "item",
				Item: "sword",
				Pos:  image.Pt(8, 8),
			})
		})

		Convey("should parse the directive section", func() {
			So(table.Directives, ShouldHaveLength, 1)
			So(table.Directives[0], ShouldResemble, board.Highlight{Axis: board.AxisRow, Index: 1})
		})
	})

	Convey("a table needs no ref or directive sections", func() {
		table, err := parseString("1\n+--+\n| x |\n|   |\n+--+\n")
		So(err, ShouldBeNil)
		So(table.NumRows(), ShouldEqual, 1)
		So(table.Refs, ShouldBeEmpty)
		So(table.Directives, ShouldBeEmpty)
	})

	Convey("excess cells on either grid line are dropped by the zip", func() {
		table, err := parseString("1\n+--+--+\n| a | b | c |\n| p | q | r | s |\n+--+--+\n")
		So(err, ShouldBeNil)
		So(table.NumCols(), ShouldEqual, 2)
		So(table.Cells[0][0].Space.ID, ShouldEqual, "a")
		So(table.Cells[0][1].Refs, ShouldResemble, []string{"q"})
	})

	Convey("an unsupported version is a parse error", func() {
		_, err := parseString("2\n+--+\n")
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, "unsupported table version 2")
	})

	Convey("a non-numeric version is a parse error", func() {
		_, err := parseString("one\n+--+\n")
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, "malformed version")
	})

	Convey("an unknown directive keyword is a parse error", func() {
		_, err := parseString("1\n+--+\n| x |\n|   |\n+--+\n\n\nSPARKLE ROW 0\n")
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, `unknown directive "SPARKLE"`)
	})

	Convey("a malformed ref line is a parse error", func() {
		_, err := parseString("1\n+--+\n| x |\n| a |\n+--+\n\na player nil 0\n")
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, "malformed ref line")
	})

	Convey("a non-numeric ref offset is a parse error", func() {
		_, err := parseString("1\n+--+\n| x |\n| a |\n+--+\n\na player nil 0 north\n")
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, "malformed ref y offset")
	})

	Convey("a grid row that comes up short is a parse error", func() {
		_, err := parseString("1\n+--+--+--+\n| a | b |\n|   |   |\n+--+--+--+\n")
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, "want 3")
	})

	Convey("parse errors carry the offending line number", func() {
		_, err := parseString("# comment\n2\n")
		var parseErr *board.ParseError
		So(errors.As(err, &parseErr), ShouldBeTrue)
		So(parseErr.Line, ShouldEqual, 2)
	})
}

func TestParser(t *testing.T) {
	Convey("board.Parse specification", t, ParserSpec)
}

func TestLoadTable(t *testing.T) {
	table, err := board.LoadTable("testdata/crossing.table")
	if err != nil {
		t.Fatalf("LoadTable failed: %v", err)
	}
	if got, want := table.NumRows(), 3; got != want {
		t.Errorf("NumRows() = %d, want %d", got, want)
	}
	if got, want := table.NumCols(), 4; got != want {
		t.Errorf("NumCols() = %d, want %d", got, want)
	}
	if _, err := table.Ref("p"); err != nil {
		t.Errorf("expected ref code 'p' to resolve: %v", err)
	}

	if _, err := board.LoadTable("testdata/no-such.table"); err == nil {
		t.Error("expected a missing table file to fail")
	}
}
