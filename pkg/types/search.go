package types

import (
	"cmp"
	"slices"
)

const maxQueryLen = 200

// SearchRequest is a dictionary lookup.
type SearchRequest struct {
	Query      string            `json:"query"`
	Type       SearchType        `json:"type"`
	Filters    *SearchFilters    `json:"filters,omitempty"`
	Pagination PaginationRequest `json:"pagination"`
}

func (r SearchRequest) Validate() error {
	var errs fieldErrors

	if q := r.NormalizedQuery(); q == "" {
		errs.add("query", "required")
	} else if len(q) > maxQueryLen {
		errs.add("query", "too long")
	}
	if !r.Type.IsValid() {
		errs.add("type", "invalid value")
	}
	if r.Filters != nil {
		errs.nest("filters", r.Filters.Validate())
	}
	errs.nest("pagination", r.Pagination.Validate())

	return errs.err()
}

// NormalizedQuery is Query as search backends should compare it: trimmed,
// lower-cased, with inner whitespace collapsed.
func (r SearchRequest) NormalizedQuery() string {
	return NormalizeText(r.Query)
}

// SearchFilters narrows search results. An empty or nil list means no
// restriction on that attribute; values within one list are alternatives.
type SearchFilters struct {
	PartOfSpeech []PartOfSpeech  `json:"partOfSpeech,omitempty"`
	Level        []LanguageLevel `json:"level,omitempty"`
	Tags         []string        `json:"tags,omitempty"`
	Domains      []string        `json:"domains,omitempty"`
}

func (f SearchFilters) Validate() error {
	var errs fieldErrors
	for i, p := range f.PartOfSpeech {
		if !p.IsValid() {
			errs.add(indexPath("partOfSpeech", i), "invalid value")
		}
	}
	for i, l := range f.Level {
		if !l.IsValid() {
			errs.add(indexPath("level", i), "invalid value")
		}
	}
	return errs.err()
}

// Matches reports whether w passes every non-empty filter.
// Part of speech, level and domain match against any of w's definitions.
// Tags and domains are compared after NormalizeText.
func (f SearchFilters) Matches(w Word) bool {
	if len(f.PartOfSpeech) > 0 && !containsAny(f.PartOfSpeech, w.PartsOfSpeech()) {
		return false
	}
	if len(f.Level) > 0 && !containsAny(f.Level, w.Levels()) {
		return false
	}
	if len(f.Tags) > 0 && !containsAnyText(f.Tags, w.Tags) {
		return false
	}
	if len(f.Domains) > 0 && !containsAnyText(f.Domains, w.Domains()) {
		return false
	}
	return true
}

func containsAny[T comparable](want, have []T) bool {
	for _, h := range have {
		if slices.Contains(want, h) {
			return true
		}
	}
	return false
}

func containsAnyText(want, have []string) bool {
	return containsAny(normalizeAll(want), normalizeAll(have))
}

func normalizeAll(texts []string) []string {
	out := make([]string, len(texts))
	for i, t := range texts {
		out[i] = NormalizeText(t)
	}
	return out
}

// SearchResponse is the result of a SearchRequest.
type SearchResponse struct {
	Results     []Word                   `json:"results"`
	Suggestions []string                 `json:"suggestions"`
	Pagination  PaginationResponse[Word] `json:"pagination"`
	Facets      SearchFacets             `json:"facets"`
}

// SearchFacets holds result counts per categorical attribute.
type SearchFacets struct {
	PartOfSpeech []FacetItem `json:"partOfSpeech"`
	Level        []FacetItem `json:"level"`
	Tags         []FacetItem `json:"tags"`
	Domains      []FacetItem `json:"domains"`
}

// FacetItem is the number of results having one attribute value.
type FacetItem struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// BuildFacets counts words per part of speech, level, tag and domain.
// A word counts once per distinct value even if several of its definitions
// share it. Items are ordered by count descending, then value ascending.
func BuildFacets(words []Word) SearchFacets {
	pos := newFacetCounter()
	levels := newFacetCounter()
	tags := newFacetCounter()
	domains := newFacetCounter()

	for _, w := range words {
		for _, p := range w.PartsOfSpeech() {
			pos.add(string(p))
		}
		for _, l := range w.Levels() {
			levels.add(string(l))
		}
		for _, t := range distinct(w.Tags, func(s string) string { return s }) {
			tags.add(t)
		}
		for _, d := range w.Domains() {
			domains.add(d)
		}
	}

	return SearchFacets{
		PartOfSpeech: pos.items(),
		Level:        levels.items(),
		Tags:         tags.items(),
		Domains:      domains.items(),
	}
}

type facetCounter map[string]int

func newFacetCounter() facetCounter { return make(facetCounter) }

func (c facetCounter) add(v string) {
	if v == "" {
		return
	}
	c[v]++
}

func (c facetCounter) items() []FacetItem {
	out := make([]FacetItem, 0, len(c))
	for v, n := range c {
		out = append(out, FacetItem{Value: v, Count: n})
	}
	slices.SortFunc(out, func(a, b FacetItem) int {
		if a.Count != b.Count {
			return cmp.Compare(b.Count, a.Count)
		}
		return cmp.Compare(a.Value, b.Value)
	})
	return out
}

// NewSearchResponse pages the matched words and derives facets from the
// full match set, so facet counts are independent of the requested page.
func NewSearchResponse(matched []Word, suggestions []string, page PaginationRequest) SearchResponse {
	size := page.Limit()
	pageNum := max(page.Page, 1)
	start := min((pageNum-1)*size, len(matched))
	end := min(start+size, len(matched))

	pageItems := slices.Clone(matched[start:end])
	if pageItems == nil {
		pageItems = []Word{}
	}
	if suggestions == nil {
		suggestions = []string{}
	}

	return SearchResponse{
		Results:     pageItems,
		Suggestions: suggestions,
		Pagination:  NewPaginationResponse(pageItems, len(matched), pageNum, size),
		Facets:      BuildFacets(matched),
	}
}
