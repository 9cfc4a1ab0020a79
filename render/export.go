package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Mercerenies/wuas-render/board"
)

// A Placement is one token's entry in the viewer export: a display name and
// an absolute pixel position on the board canvas.
type Placement struct {
	Object   string `json:"object"`
	Position [2]int `json:"position"`
}

// A Board is the viewer-oriented description of one parsed table: the space
// identifier of every cell and a flat list of token placements.
type Board struct {
	Spaces [][]string  `json:"spaces"`
	Tokens []Placement `json:"tokens"`
}

// The viewer format wraps everything in an object keyed by board index, and
// this tool only ever produces board "0".
const boardIndex = "0"

// Flattens a parsed table into the viewer's JSON structure. Cells with no
// tile export as "gap"; the viewer doesn't distinguish them. Tokens spanning
// more than one cell are exported at their anchor position only.
func Export(table *board.Table) (map[string]*Board, error) {
	out := &Board{
		Spaces: make([][]string, 0, table.NumRows()),
		Tokens: []Placement{},
	}
	for y, row := range table.Cells {
		ids := make([]string, 0, len(row))
		for x, cell := range row {
			id := cell.Space.ID
			if id == "" {
				id = board.GapSpace
			}
			ids = append(ids, id)

			for _, code := range cell.Refs {
				ref, err := table.Ref(code)
				if err != nil {
					return nil, err
				}
				out.Tokens = append(out.Tokens, Placement{
					Object: ref.DisplayName(),
					Position: [2]int{
						x*board.TileWidth + ref.Pos.X,
						y*board.TileHeight + ref.Pos.Y,
					},
				})
			}
		}
		out.Spaces = append(out.Spaces, ids)
	}
	return map[string]*Board{boardIndex: out}, nil
}

// Writes the viewer export to w, newline-terminated.
func WriteJSON(w io.Writer, table *board.Table) error {
	data, err := Export(table)
	if err != nil {
		return err
	}
	encoded, err := json.Marshal(data)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s\n", encoded); err != nil {
		return err
	}
	return nil
}
