package types

import (
	"math"
	"strings"
)

const maxImageBytes = 20 << 20

// OCRRequest submits an image for text recognition. Image is base64 in JSON.
type OCRRequest struct {
	Image    []byte      `json:"image"`
	Language string      `json:"language"`
	Options  *OCROptions `json:"options,omitempty"`
}

func (r OCRRequest) Validate() error {
	var errs fieldErrors
	if len(r.Image) == 0 {
		errs.add("image", "required")
	} else if len(r.Image) > maxImageBytes {
		errs.add("image", "too large")
	}
	if r.Language == "" {
		errs.add("language", "required")
	}
	if r.Options != nil && !r.Options.OutputFormat.IsValid() {
		errs.add("options.outputFormat", "invalid value")
	}
	return errs.err()
}

type OCROptions struct {
	DetectOrientation bool            `json:"detectOrientation"`
	PreserveLayout    bool            `json:"preserveLayout"`
	OutputFormat      OCROutputFormat `json:"outputFormat"`
}

// OCRResponse holds recognized text; confidences are in [0, 1].
type OCRResponse struct {
	Text       string     `json:"text"`
	Confidence float64    `json:"confidence"`
	Words      []OCRWord  `json:"words"`
	Layout     LayoutInfo `json:"layout"`
	Language   string     `json:"language"`
}

func (r OCRResponse) Validate() error {
	var errs fieldErrors
	if !isRatio(r.Confidence) {
		errs.add("confidence", "must be within [0, 1]")
	}
	for i, w := range r.Words {
		errs.nest(indexPath("words", i), w.Validate())
	}
	for i, l := range r.Layout.Lines {
		for j, w := range l.Words {
			errs.nest(indexPath(indexPath("layout.lines", i)+".words", j), w.Validate())
		}
	}
	return errs.err()
}

type OCRWord struct {
	Text       string      `json:"text"`
	Confidence float64     `json:"confidence"`
	BBox       BoundingBox `json:"bbox"`
}

func (w OCRWord) Validate() error {
	var errs fieldErrors
	if !isRatio(w.Confidence) {
		errs.add("confidence", "must be within [0, 1]")
	}
	if w.BBox.Width < 0 || w.BBox.Height < 0 {
		errs.add("bbox", "negative size")
	}
	return errs.err()
}

// BoundingBox is an axis-aligned rectangle in image pixels with its origin
// at the top-left corner.
type BoundingBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (b BoundingBox) IsEmpty() bool { return b.Width <= 0 || b.Height <= 0 }

// Union returns the smallest box containing both b and o. Empty boxes are ignored.
func (b BoundingBox) Union(o BoundingBox) BoundingBox {
	switch {
	case b.IsEmpty():
		return o
	case o.IsEmpty():
		return b
	}
	x0 := math.Min(b.X, o.X)
	y0 := math.Min(b.Y, o.Y)
	x1 := math.Max(b.X+b.Width, o.X+o.Width)
	y1 := math.Max(b.Y+b.Height, o.Y+o.Height)
	return BoundingBox{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// LayoutInfo describes page geometry. Orientation and TextAngle are in degrees.
type LayoutInfo struct {
	Orientation float64    `json:"orientation"`
	TextAngle   float64    `json:"textAngle"`
	Lines       []LineInfo `json:"lines"`
}

type LineInfo struct {
	Text  string      `json:"text"`
	BBox  BoundingBox `json:"bbox"`
	Words []OCRWord   `json:"words"`
}

// NewLineInfo assembles a line from its words: the text is the words joined
// by single spaces and the box is the union of the word boxes.
func NewLineInfo(words []OCRWord) LineInfo {
	texts := make([]string, 0, len(words))
	var box BoundingBox
	for _, w := range words {
		texts = append(texts, w.Text)
		box = box.Union(w.BBox)
	}
	if words == nil {
		words = []OCRWord{}
	}
	return LineInfo{Text: strings.Join(texts, " "), BBox: box, Words: words}
}
