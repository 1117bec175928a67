package types

import "strings"

const maxAssistTextLen = 20000

// TranslationRequest asks the translation engine to translate Text.
// Languages are BCP 47 tags such as "en" or "zh-CN".
type TranslationRequest struct {
	Text           string            `json:"text"`
	SourceLanguage string            `json:"sourceLanguage"`
	TargetLanguage string            `json:"targetLanguage"`
	Style          *TranslationStyle `json:"style,omitempty"`
	Domain         *string           `json:"domain,omitempty"`
}

func (r TranslationRequest) Validate() error {
	var errs fieldErrors
	if strings.TrimSpace(r.Text) == "" {
		errs.add("text", "required")
	} else if len(r.Text) > maxAssistTextLen {
		errs.add("text", "too long")
	}
	if r.SourceLanguage == "" {
		errs.add("sourceLanguage", "required")
	}
	if r.TargetLanguage == "" {
		errs.add("targetLanguage", "required")
	} else if strings.EqualFold(r.SourceLanguage, r.TargetLanguage) {
		errs.add("targetLanguage", "must differ from sourceLanguage")
	}
	if r.Style != nil && !r.Style.IsValid() {
		errs.add("style", "invalid value")
	}
	return errs.err()
}

// TranslationResponse carries the translation and its confidence in [0, 1].
type TranslationResponse struct {
	OriginalText   string   `json:"originalText"`
	TranslatedText string   `json:"translatedText"`
	SourceLanguage string   `json:"sourceLanguage"`
	TargetLanguage string   `json:"targetLanguage"`
	Confidence     float64  `json:"confidence"`
	Alternatives   []string `json:"alternatives,omitempty"`
	Engine         string   `json:"engine"`
}

func (r TranslationResponse) Validate() error {
	var errs fieldErrors
	if !isRatio(r.Confidence) {
		errs.add("confidence", "must be within [0, 1]")
	}
	if r.Engine == "" {
		errs.add("engine", "required")
	}
	return errs.err()
}

// WritingAssistRequest asks for grammar, style or content help on Text.
type WritingAssistRequest struct {
	Text    string                `json:"text"`
	Type    WritingAssistType     `json:"type"`
	Options *WritingAssistOptions `json:"options,omitempty"`
}

func (r WritingAssistRequest) Validate() error {
	var errs fieldErrors
	if strings.TrimSpace(r.Text) == "" {
		errs.add("text", "required")
	} else if len(r.Text) > maxAssistTextLen {
		errs.add("text", "too long")
	}
	if !r.Type.IsValid() {
		errs.add("type", "invalid value")
	}
	if r.Options != nil {
		errs.nest("options", r.Options.Validate())
	}
	return errs.err()
}

type WritingAssistOptions struct {
	Language  string       `json:"language"`
	Style     WritingStyle `json:"style"`
	Audience  string       `json:"audience"`
	Formality Formality    `json:"formality"`
}

func (o WritingAssistOptions) Validate() error {
	var errs fieldErrors
	if o.Language == "" {
		errs.add("language", "required")
	}
	if !o.Style.IsValid() {
		errs.add("style", "invalid value")
	}
	if !o.Formality.IsValid() {
		errs.add("formality", "invalid value")
	}
	return errs.err()
}

type WritingAssistResponse struct {
	OriginalText string              `json:"originalText"`
	Suggestions  []WritingSuggestion `json:"suggestions"`
	ImprovedText *string             `json:"improvedText,omitempty"`
	Score        GrammarScore        `json:"score"`
}

// Validate checks scores and that every suggestion's span lies within
// OriginalText. Positions are byte offsets.
func (r WritingAssistResponse) Validate() error {
	var errs fieldErrors
	for i, s := range r.Suggestions {
		p := indexPath("suggestions", i)
		errs.nest(p, s.Validate())
		if s.Position.End > len(r.OriginalText) {
			errs.add(p+".position.end", "beyond end of originalText")
		}
	}
	errs.nest("score", r.Score.Validate())
	return errs.err()
}

// WritingSuggestion proposes replacing Original with Suggestion at Position.
type WritingSuggestion struct {
	Type        SuggestionType `json:"type"`
	Position    TextPosition   `json:"position"`
	Original    string         `json:"original"`
	Suggestion  string         `json:"suggestion"`
	Explanation string         `json:"explanation"`
	Confidence  float64        `json:"confidence"`
}

func (s WritingSuggestion) Validate() error {
	var errs fieldErrors
	if !s.Type.IsValid() {
		errs.add("type", "invalid value")
	}
	errs.nest("position", s.Position.Validate())
	if !isRatio(s.Confidence) {
		errs.add("confidence", "must be within [0, 1]")
	}
	return errs.err()
}

// TextPosition is a half-open span [Start, End) in the original text.
// Line and Column are 1-based when present.
type TextPosition struct {
	Start  int  `json:"start"`
	End    int  `json:"end"`
	Line   *int `json:"line,omitempty"`
	Column *int `json:"column,omitempty"`
}

func (p TextPosition) Validate() error {
	var errs fieldErrors
	if p.Start < 0 {
		errs.add("start", "must not be negative")
	}
	if p.End < p.Start {
		errs.add("end", "before start")
	}
	if p.Line != nil && *p.Line < 1 {
		errs.add("line", "must be at least 1")
	}
	if p.Column != nil && *p.Column < 1 {
		errs.add("column", "must be at least 1")
	}
	return errs.err()
}

// Len returns the length of the span.
func (p TextPosition) Len() int { return p.End - p.Start }

// GrammarScore rates a text; every dimension is in [0, 100].
type GrammarScore struct {
	Overall  float64 `json:"overall"`
	Grammar  float64 `json:"grammar"`
	Spelling float64 `json:"spelling"`
	Style    float64 `json:"style"`
	Clarity  float64 `json:"clarity"`
}

func (s GrammarScore) Validate() error {
	var errs fieldErrors
	for _, d := range []struct {
		name  string
		value float64
	}{
		{"overall", s.Overall},
		{"grammar", s.Grammar},
		{"spelling", s.Spelling},
		{"style", s.Style},
		{"clarity", s.Clarity},
	} {
		if !isScore(d.value) {
			errs.add(d.name, "must be within [0, 100]")
		}
	}
	return errs.err()
}
