package board

import "image"

// The Ref.Item value meaning "this ref carries no item".
const NoItem = "nil"

// The Ref.Name value meaning "this ref's identity is its item".
const ItemName = "item"

// A Ref is a named token or item placement. Cells reference Refs by a
// one-character code into the board's shared ref table; Pos is the pixel
// offset of the sprite within the referencing cell's tile.
type Ref struct {
	Name string
	Item string
	Pos  image.Point
}

// The name shown for this ref in viewer exports. Refs named "item" stand for
// their item identifier.
func (r *Ref) DisplayName() string {
	if r.Name == ItemName {
		return r.Item
	}
	return r.Name
}
