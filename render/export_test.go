package render_test

import (
	"bytes"
	"image"
	"testing"

	"github.com/Mercerenies/wuas-render/board"
	"github.com/Mercerenies/wuas-render/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExport(t *testing.T) {
	table := &board.Table{
		Cells: [][]board.Cell{
			{
				{Space: board.Space{ID: "start", Visible: true}},
				{Space: board.Space{ID: "", Visible: true}},
				{Space: board.Space{ID: "gap", Visible: true}},
			},
			{
				{Space: board.Space{ID: "water", Visible: false}},
				{Space: board.Space{ID: "grass", Visible: true}},
				{Space: board.Space{ID: "altar", Visible: true}, Refs: []string{"p", "s"}},
			},
		},
		Refs: map[string]*board.Ref{
			"p": {Name: "player", Item: board.NoItem, Pos: image.Pt(5, 7)},
			"s": {Name: "item", Item: "shield", Pos: image.Pt(0, 16)},
		},
	}

	data, err := render.Export(table)
	require.NoError(t, err)
	require.Contains(t, data, "0")
	exported := data["0"]

	t.Run("every cell exports a space identifier", func(t *testing.T) {
		assert.Equal(t, [][]string{
			{"start", "gap", "gap"},
			{"water", "grass", "altar"},
		}, exported.Spaces)
	})

	t.Run("token positions are absolute pixels", func(t *testing.T) {
		require.Len(t, exported.Tokens, 2)
		// Cell (col=2, row=1) with pos (5,7): 2*32+5, 1*32+7.
		assert.Equal(t, render.Placement{Object: "player", Position: [2]int{69, 39}}, exported.Tokens[0])
	})

	t.Run("item refs export their item identifier", func(t *testing.T) {
		assert.Equal(t, render.Placement{Object: "shield", Position: [2]int{64, 48}}, exported.Tokens[1])
	})

	t.Run("an unknown ref code fails the export", func(t *testing.T) {
		bad := &board.Table{
			Cells: [][]board.Cell{{{Space: board.Space{ID: "gap"}, Refs: []string{"z"}}}},
			Refs:  map[string]*board.Ref{},
		}
		_, err := render.Export(bad)
		assert.ErrorContains(t, err, "not in the ref table")
	})
}

func TestWriteJSON(t *testing.T) {
	table := &board.Table{
		Cells: [][]board.Cell{{{Space: board.Space{ID: "", Visible: true}}}},
		Refs:  map[string]*board.Ref{},
	}

	buf := &bytes.Buffer{}
	require.NoError(t, render.WriteJSON(buf, table))
	assert.Equal(t, `{"0":{"spaces":[["gap"]],"tokens":[]}}`+"\n", buf.String())
}
