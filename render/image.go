package render

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"

	"github.com/Mercerenies/wuas-render/board"
	"github.com/Mercerenies/wuas-render/logging"
	"github.com/Mercerenies/wuas-render/sprite"
)

// Composites a parsed board into a single RGBA image. Rendering runs in
// strict passes: gap tiles first, then ordinary tiles, then token overlays,
// then directives. Each pass completes before the next starts, so a tile's
// layer alone decides what it occludes, regardless of grid order.
func Image(table *board.Table, dict *sprite.Dictionary, sheets *sprite.Sheets) (*image.RGBA, error) {
	canvas := image.NewRGBA(image.Rect(0, 0,
		table.NumCols()*board.TileWidth,
		table.NumRows()*board.TileHeight))

	if err := drawSpaceLayer(canvas, table, dict, sheets, 0); err != nil {
		return nil, err
	}
	if err := drawSpaceLayer(canvas, table, dict, sheets, 1); err != nil {
		return nil, err
	}
	if err := drawRefLayer(canvas, table, dict, sheets); err != nil {
		return nil, err
	}
	for _, directive := range table.Directives {
		directive.Apply(canvas)
	}
	return canvas, nil
}

// Pastes every visible tile on the given layer at its cell's position, using
// the tile's own alpha. Hidden spaces and spaces with no tile contribute
// nothing, as do identifiers the dictionary doesn't know.
func drawSpaceLayer(canvas *image.RGBA, table *board.Table, dict *sprite.Dictionary, sheets *sprite.Sheets, layer int) error {
	for y, row := range table.Cells {
		for x, cell := range row {
			cellLayer, hasTile := cell.Space.Layer()
			if !hasTile || cellLayer != layer || !cell.Space.Visible {
				continue
			}
			src, ok, err := dict.SpaceRect(cell.Space.ID)
			if err != nil {
				return err
			}
			if !ok {
				logging.Warn("space has no image", "id", cell.Space.ID, "col", x, "row", y)
				continue
			}
			paste(canvas, sheets.Spaces, src, image.Pt(x*board.TileWidth, y*board.TileHeight))
		}
	}
	return nil
}

// Pastes every cell's token refs in the order the table file listed them. A
// ref code missing from the ref table fails the render; a ref whose images
// are all missing from the dictionary is skipped.
func drawRefLayer(canvas *image.RGBA, table *board.Table, dict *sprite.Dictionary, sheets *sprite.Sheets) error {
	for y, row := range table.Cells {
		for x, cell := range row {
			for _, code := range cell.Refs {
				ref, err := table.Ref(code)
				if err != nil {
					return err
				}
				src, ok := dict.RefRect(ref)
				if !ok {
					logging.Warn("ref has no image", "name", ref.Name, "item", ref.Item)
					continue
				}
				at := image.Pt(x*board.TileWidth+ref.Pos.X, y*board.TileHeight+ref.Pos.Y)
				paste(canvas, sheets.Tokens, src, at)
			}
		}
	}
	return nil
}

// Crops src out of the sheet and alpha-composites it onto the canvas at 'at'.
func paste(canvas *image.RGBA, sheet image.Image, src image.Rectangle, at image.Point) {
	dst := image.Rectangle{Min: at, Max: at.Add(src.Size())}
	draw.Draw(canvas, dst, sheet, src.Min, draw.Over)
}

// Renders the board and writes it to path as a PNG.
func SaveImage(path string, table *board.Table, dict *sprite.Dictionary, sheets *sprite.Sheets) error {
	img, err := Image(table, dict, sheets)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("couldn't encode %q: %w", path, err)
	}
	return nil
}
