package board

import "strings"

// Board geometry. Every cell occupies one TileWidth x TileHeight region of
// the rendered canvas.
const (
	TileWidth  = 32
	TileHeight = 32
)

// The identifier reserved for background (layer 0) tiles.
const GapSpace = "gap"

// A Space is one cell's terrain layer: a normalized identifier plus a
// visibility flag. An empty ID means the cell has no tile at all, which is
// distinct from a gap tile.
type Space struct {
	ID      string
	Visible bool
}

// Normalizes a raw space identifier from a table file. A trailing '?' marks
// the space hidden and is stripped from the identifier. The literal "nil"
// means no tile. An empty identifier defaults to a gap.
func MakeSpace(raw string) Space {
	visible := true
	if strings.HasSuffix(raw, "?") {
		raw = strings.TrimSuffix(raw, "?")
		visible = false
	}
	switch raw {
	case "nil":
		return Space{ID: "", Visible: visible}
	case "":
		return Space{ID: GapSpace, Visible: visible}
	default:
		return Space{ID: raw, Visible: visible}
	}
}

// Returns the space's render layer. Gaps are layer 0, every other tile is
// layer 1. A space with no tile has no layer, signalled by ok == false.
func (s Space) Layer() (layer int, ok bool) {
	switch s.ID {
	case "":
		return 0, false
	case GapSpace:
		return 0, true
	default:
		return 1, true
	}
}
