package main

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// ExportPNG renders the player grid with its clue margins to a PNG file.
func (b *Board) ExportPNG(filename string) error {
	size := b.Size()
	if size == 0 {
		return fmt.Errorf("nothing to export")
	}

	cell := 24.0
	charWidth := 8.0
	charHeight := 16.0

	clues := b.Clues()
	maxRowClueChars := 1
	for _, runs := range clues.Rows {
		if n := len(clueText(runs)); n > maxRowClueChars {
			maxRowClueChars = n
		}
	}
	maxColClueCount := 1
	for _, runs := range clues.Cols {
		if len(runs) > maxColClueCount {
			maxColClueCount = len(runs)
		}
	}

	left := float64(maxRowClueChars+1) * charWidth
	top := float64(maxColClueCount+1) * charHeight
	imageWidth := int(left + float64(size)*cell + charWidth)
	imageHeight := int(top + float64(size)*cell + charHeight)

	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetColor(color.White)
	dc.Clear()
	dc.SetColor(color.Black)

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %v", err)
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    12.0,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	dc.SetFontFace(face)

	// Row clues, right-aligned against the grid.
	for y, runs := range clues.Rows {
		text := clueText(runs)
		tx := left - charWidth - float64(len(text))*charWidth
		ty := top + float64(y)*cell + cell/2 + charHeight/3
		dc.DrawString(text, tx, ty)
	}

	// Column clues, stacked bottom-up above each column.
	for x, runs := range clues.Cols {
		labels := []string{"0"}
		if len(runs) > 0 {
			labels = labels[:0]
			for _, r := range runs {
				labels = append(labels, strconv.Itoa(r))
			}
		}
		for i, label := range labels {
			tx := left + float64(x)*cell + cell/2 - float64(len(label))*charWidth/2
			ty := top - charHeight*float64(len(labels)-i) + charHeight/2
			dc.DrawString(label, tx, ty)
		}
	}

	// Cells.
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			px := left + float64(x)*cell
			py := top + float64(y)*cell
			switch b.Tile(x, y).State {
			case TileFilled:
				dc.DrawRectangle(px+1, py+1, cell-2, cell-2)
				dc.Fill()
			case TileCross:
				dc.SetLineWidth(1.5)
				dc.DrawLine(px+5, py+5, px+cell-5, py+cell-5)
				dc.Stroke()
				dc.DrawLine(px+cell-5, py+5, px+5, py+cell-5)
				dc.Stroke()
			}
		}
	}

	// Grid lines.
	dc.SetLineWidth(1.0)
	for i := 0; i <= size; i++ {
		offset := float64(i) * cell
		dc.DrawLine(left, top+offset, left+float64(size)*cell, top+offset)
		dc.Stroke()
		dc.DrawLine(left+offset, top, left+offset, top+float64(size)*cell)
		dc.Stroke()
	}

	return dc.SavePNG(filename)
}
