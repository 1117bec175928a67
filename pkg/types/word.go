package types

import (
	"strings"
	"time"
)

// Word is a dictionary entry. Slices keep the order chosen by the producer.
type Word struct {
	ID            string          `json:"id"`
	Word          string          `json:"word"`
	Pronunciation []Pronunciation `json:"pronunciation"`
	Definitions   []Definition    `json:"definitions"`
	Examples      []Example       `json:"examples"`
	Synonyms      []string        `json:"synonyms"`
	Antonyms      []string        `json:"antonyms"`
	Etymology     *string         `json:"etymology,omitempty"`
	Frequency     int             `json:"frequency"`
	Tags          []string        `json:"tags"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// Pronunciation is the phonetic transcription of a word in one dialect.
type Pronunciation struct {
	Type     Accent  `json:"type"`
	Phonetic string  `json:"phonetic"`
	AudioURL *string `json:"audioUrl,omitempty"`
}

// Definition is one sense of a word.
type Definition struct {
	PartOfSpeech PartOfSpeech  `json:"partOfSpeech"`
	Meaning      string        `json:"meaning"`
	Translation  *string       `json:"translation,omitempty"`
	Level        LanguageLevel `json:"level"`
	Domain       *string       `json:"domain,omitempty"`
}

// Example is a usage sentence for a word.
type Example struct {
	Sentence    string  `json:"sentence"`
	Translation *string `json:"translation,omitempty"`
	AudioURL    *string `json:"audioUrl,omitempty"`
	Source      *string `json:"source,omitempty"`
}

func (w Word) Validate() error {
	var errs fieldErrors

	if w.ID == "" {
		errs.add("id", "required")
	}
	if strings.TrimSpace(w.Word) == "" {
		errs.add("word", "required")
	}
	if w.Frequency < 0 {
		errs.add("frequency", "must not be negative")
	}
	for i, p := range w.Pronunciation {
		errs.nest(indexPath("pronunciation", i), p.Validate())
	}
	if len(w.Definitions) == 0 {
		errs.add("definitions", "at least one required")
	}
	for i, d := range w.Definitions {
		errs.nest(indexPath("definitions", i), d.Validate())
	}
	for i, e := range w.Examples {
		if strings.TrimSpace(e.Sentence) == "" {
			errs.add(indexPath("examples", i)+".sentence", "required")
		}
	}

	return errs.err()
}

func (p Pronunciation) Validate() error {
	var errs fieldErrors
	if !p.Type.IsValid() {
		errs.add("type", "invalid value")
	}
	if p.Phonetic == "" {
		errs.add("phonetic", "required")
	}
	return errs.err()
}

func (d Definition) Validate() error {
	var errs fieldErrors
	if !d.PartOfSpeech.IsValid() {
		errs.add("partOfSpeech", "invalid value")
	}
	if strings.TrimSpace(d.Meaning) == "" {
		errs.add("meaning", "required")
	}
	if !d.Level.IsValid() {
		errs.add("level", "invalid value")
	}
	return errs.err()
}

// PartsOfSpeech returns the distinct parts of speech of w's definitions
// in first-seen order.
func (w Word) PartsOfSpeech() []PartOfSpeech {
	return distinct(w.Definitions, func(d Definition) PartOfSpeech { return d.PartOfSpeech })
}

// Levels returns the distinct levels of w's definitions in first-seen order.
func (w Word) Levels() []LanguageLevel {
	return distinct(w.Definitions, func(d Definition) LanguageLevel { return d.Level })
}

// Domains returns the distinct non-empty domains of w's definitions.
func (w Word) Domains() []string {
	var domains []string
	seen := make(map[string]bool)
	for _, d := range w.Definitions {
		if d.Domain == nil || *d.Domain == "" || seen[*d.Domain] {
			continue
		}
		seen[*d.Domain] = true
		domains = append(domains, *d.Domain)
	}
	return domains
}

// PronunciationFor returns the pronunciation in the given dialect, if any.
func (w Word) PronunciationFor(accent Accent) (Pronunciation, bool) {
	for _, p := range w.Pronunciation {
		if p.Type == accent {
			return p, true
		}
	}
	return Pronunciation{}, false
}

func distinct[E any, K comparable](items []E, key func(E) K) []K {
	var out []K
	seen := make(map[K]bool, len(items))
	for _, it := range items {
		k := key(it)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}

// NormalizeText prepares text for comparison:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses runs of whitespace into one space
//
// Diacritics, hyphens, and apostrophes are preserved.
func NormalizeText(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}
