package ocrhttp

import (
	"sort"
	"strings"
)

// TextBlock is one block of recognized text with its position on the page.
type TextBlock struct {
	Text        string      `json:"text"`
	Lines       []Line      `json:"lines"`
	BoundingBox BoundingBox `json:"boundingBox"`
}

// Line is a single recognized line inside a block.
type Line struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
}

// BoundingBox is the pixel rectangle of a block.
type BoundingBox struct {
	Top    int `json:"top"`
	Bottom int `json:"bottom"`
	Left   int `json:"left"`
	Right  int `json:"right"`
}

// Result is the OCR service response body.
type Result struct {
	TextBlocks []TextBlock `json:"textBlocks"`
}

// Text joins the blocks in reading order, top to bottom then left to right.
func (r *Result) Text() string {
	blocks := make([]TextBlock, len(r.TextBlocks))
	copy(blocks, r.TextBlocks)
	sort.SliceStable(blocks, func(i, j int) bool {
		a, b := blocks[i].BoundingBox, blocks[j].BoundingBox
		if a.Top != b.Top {
			return a.Top < b.Top
		}
		return a.Left < b.Left
	})

	var sb strings.Builder
	for _, b := range blocks {
		sb.WriteString(b.Text)
		sb.WriteString("\n")
	}
	return sb.String()
}

// MeanConfidence averages the confidence of every line. Zero when there are no lines.
func (r *Result) MeanConfidence() float64 {
	var sum float64
	var n int
	for _, b := range r.TextBlocks {
		for _, l := range b.Lines {
			sum += l.Confidence
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
