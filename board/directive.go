package board

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strconv"
)

// A Directive is a deferred annotation applied to the fully composited board
// image, after every tile and token has been pasted.
type Directive interface {
	Apply(img draw.Image)
}

type directiveMaker func(args []string) (Directive, error)

// The set of directives is fixed; each keyword maps to a constructor that
// validates its arguments at parse time.
var directiveRegistry = map[string]directiveMaker{
	"HIGHLIGHT": makeHighlight,
}

func MakeDirective(keyword string, args []string) (Directive, error) {
	maker, ok := directiveRegistry[keyword]
	if !ok {
		return nil, fmt.Errorf("unknown directive %q", keyword)
	}
	return maker(args)
}

type Axis int

const (
	AxisRow Axis = iota
	AxisColumn
)

// Highlight draws a 4px-wide red rectangle outline around one full row or
// column, to call out a region for commentary.
type Highlight struct {
	Axis  Axis
	Index int
}

func makeHighlight(args []string) (Directive, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("HIGHLIGHT wants 'ROW|COLUMN <n>', got %d arguments", len(args))
	}
	var axis Axis
	switch args[0] {
	case "ROW":
		axis = AxisRow
	case "COLUMN":
		axis = AxisColumn
	default:
		return nil, fmt.Errorf("HIGHLIGHT axis must be ROW or COLUMN, got %q", args[0])
	}
	index, err := strconv.Atoi(args[1])
	if err != nil {
		return nil, fmt.Errorf("malformed HIGHLIGHT index %q", args[1])
	}
	return Highlight{Axis: axis, Index: index}, nil
}

const highlightWidth = 4

func (h Highlight) Apply(img draw.Image) {
	bounds := img.Bounds()
	var x0, y0, x1, y1 int
	switch h.Axis {
	case AxisRow:
		x0, y0 = bounds.Min.X, TileHeight*h.Index
		x1, y1 = bounds.Max.X, TileHeight*(h.Index+1)
	case AxisColumn:
		x0, y0 = TileWidth*h.Index, bounds.Min.Y
		x1, y1 = TileWidth*(h.Index+1), bounds.Max.Y
	}

	// Outline strokes are centered on the rectangle's edges.
	red := color.RGBA{R: 0xff, A: 0xff}
	half := highlightWidth / 2
	fillRect(img, image.Rect(x0-half, y0-half, x1+half, y0+half), red) // top
	fillRect(img, image.Rect(x0-half, y1-half, x1+half, y1+half), red) // bottom
	fillRect(img, image.Rect(x0-half, y0-half, x0+half, y1+half), red) // left
	fillRect(img, image.Rect(x1-half, y0-half, x1+half, y1+half), red) // right
}

func fillRect(img draw.Image, r image.Rectangle, c color.Color) {
	draw.Draw(img, r.Intersect(img.Bounds()), image.NewUniform(c), image.Point{}, draw.Src)
}
