package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundingBox_Union(t *testing.T) {
	t.Parallel()

	a := BoundingBox{X: 10, Y: 20, Width: 30, Height: 10}
	b := BoundingBox{X: 50, Y: 15, Width: 20, Height: 20}

	assert.Equal(t, BoundingBox{X: 10, Y: 15, Width: 60, Height: 20}, a.Union(b))
	assert.Equal(t, a, a.Union(BoundingBox{}))
	assert.Equal(t, b, BoundingBox{}.Union(b))
}

func TestNewLineInfo(t *testing.T) {
	t.Parallel()

	words := []OCRWord{
		{Text: "Hello", Confidence: 0.99, BBox: BoundingBox{X: 0, Y: 0, Width: 50, Height: 12}},
		{Text: "world", Confidence: 0.95, BBox: BoundingBox{X: 58, Y: 1, Width: 48, Height: 12}},
	}

	line := NewLineInfo(words)

	assert.Equal(t, "Hello world", line.Text)
	assert.Equal(t, BoundingBox{X: 0, Y: 0, Width: 106, Height: 13}, line.BBox)
	assert.Len(t, line.Words, 2)

	empty := NewLineInfo(nil)
	assert.Equal(t, "", empty.Text)
	assert.NotNil(t, empty.Words)
}

func TestOCRRequest_Validate(t *testing.T) {
	t.Parallel()

	req := OCRRequest{Image: []byte{0x89, 0x50, 0x4e, 0x47}, Language: "eng"}
	require.NoError(t, req.Validate())

	req.Options = &OCROptions{DetectOrientation: true, PreserveLayout: true, OutputFormat: OCROutputJSON}
	require.NoError(t, req.Validate())

	req.Options.OutputFormat = "pdf"
	var ve *ValidationError
	require.ErrorAs(t, req.Validate(), &ve)
	assert.Equal(t, "options.outputFormat", ve.Errors[0].Field)

	require.ErrorIs(t, OCRRequest{Language: "eng"}.Validate(), ErrValidation)
}

func TestOCRResponse_ValidateAndRoundTrip(t *testing.T) {
	t.Parallel()

	words := []OCRWord{
		{Text: "Bonjour", Confidence: 0.93, BBox: BoundingBox{X: 4, Y: 8, Width: 70, Height: 14}},
	}
	resp := OCRResponse{
		Text:       "Bonjour",
		Confidence: 0.93,
		Words:      words,
		Layout:     LayoutInfo{Orientation: 0, TextAngle: -1.5, Lines: []LineInfo{NewLineInfo(words)}},
		Language:   "fra",
	}
	require.NoError(t, resp.Validate())

	b, err := json.Marshal(resp)
	require.NoError(t, err)

	var out OCRResponse
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, resp, out)

	resp.Layout.Lines[0].Words = []OCRWord{{Text: "x", Confidence: 2}}
	var ve *ValidationError
	require.ErrorAs(t, resp.Validate(), &ve)
	assert.Equal(t, "layout.lines[0].words[0].confidence", ve.Errors[0].Field)
}
