package sprite

import (
	"fmt"
	"image"
	"strconv"
	"strings"

	"github.com/Mercerenies/wuas-render/base"
	"github.com/Mercerenies/wuas-render/board"
	"github.com/Mercerenies/wuas-render/logging"
)

// Token and item thumbnails are laid out on a 16px unit grid, half the size
// of a board tile.
const ThumbUnit = 16

// A Dictionary maps identifiers from table files onto regions of the two
// sprite sheets. It is loaded once per invocation and read-only thereafter.
type Dictionary struct {
	Spaces map[string]SpaceEntry `json:"spaces"`
	Items  map[string]ThumbEntry `json:"items"`
	Tokens map[string]ThumbEntry `json:"tokens"`
}

type SpaceEntry struct {
	// Four comma-separated integers. Despite reading like "x,y,w,h", the
	// numbers are an absolute crop box: left, top, right, bottom. The
	// dictionary data is authored that way.
	Coords string `json:"coords"`
}

type ThumbEntry struct {
	// Top-left corner of the thumbnail in the tokens sheet.
	Thumbnail []int `json:"thumbnail"`
	// Size in thumbnail units; 1x1 when omitted.
	Span []int `json:"span,omitempty"`
}

func LoadDictionary(path string) (*Dictionary, error) {
	var dict Dictionary
	if err := base.LoadJson(path, &dict); err != nil {
		return nil, fmt.Errorf("couldn't load dictionary %q: %w", path, err)
	}
	logging.Debug("loaded dictionary",
		"path", path,
		"spaces", len(dict.Spaces),
		"items", len(dict.Items),
		"tokens", len(dict.Tokens))
	return &dict, nil
}

// Resolves a space identifier to its crop box in the spaces sheet. An
// identifier with no dictionary entry has no image (ok == false); that is not
// an error. An entry whose coords can't be parsed is an error.
func (d *Dictionary) SpaceRect(id string) (rect image.Rectangle, ok bool, err error) {
	entry, found := d.Spaces[id]
	if !found || entry.Coords == "" {
		return image.Rectangle{}, false, nil
	}
	fields := strings.Split(entry.Coords, ",")
	if len(fields) != 4 {
		return image.Rectangle{}, false, fmt.Errorf("space %q has malformed coords %q", id, entry.Coords)
	}
	var box [4]int
	for i, field := range fields {
		box[i], err = strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return image.Rectangle{}, false, fmt.Errorf("space %q has malformed coords %q", id, entry.Coords)
		}
	}
	return image.Rect(box[0], box[1], box[2], box[3]), true, nil
}

// Resolves a ref to its crop box in the tokens sheet. The ref's item image
// takes precedence; when the item doesn't resolve, the token image named by
// the ref is used instead. A ref that resolves to neither has no image.
func (d *Dictionary) RefRect(ref *board.Ref) (image.Rectangle, bool) {
	if rect, ok := thumbRect(d.Items, ref.Item); ok {
		return rect, true
	}
	return thumbRect(d.Tokens, ref.Name)
}

func thumbRect(entries map[string]ThumbEntry, id string) (image.Rectangle, bool) {
	entry, found := entries[id]
	if !found || len(entry.Thumbnail) != 2 {
		return image.Rectangle{}, false
	}
	x, y := entry.Thumbnail[0], entry.Thumbnail[1]
	spanX, spanY := 1, 1
	if len(entry.Span) == 2 {
		spanX, spanY = entry.Span[0], entry.Span[1]
	}
	return image.Rect(x, y, x+ThumbUnit*spanX, y+ThumbUnit*spanY), true
}
