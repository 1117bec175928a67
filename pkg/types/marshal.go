package types

import "encoding/json"

// Required list fields encode as [] when nil. Each record below marshals
// through a method-free copy of itself so the default encoder does the rest.

func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

type (
	paginationWire[T any] PaginationResponse[T]
	wordWire              Word
	searchResponseWire    SearchResponse
	searchFacetsWire      SearchFacets
	vocabularyWordWire    VocabularyWord
	reviewPlanWire        ReviewPlan
	learningProgressWire  LearningProgress
	writingAssistWire     WritingAssistResponse
	speechEvaluationWire  SpeechEvaluationResponse
	ocrResponseWire       OCRResponse
	layoutInfoWire        LayoutInfo
	lineInfoWire          LineInfo
	systemInfoWire        SystemInfo
	healthCheckWire       HealthCheck
)

func (p PaginationResponse[T]) MarshalJSON() ([]byte, error) {
	p.Items = emptyIfNil(p.Items)
	return json.Marshal(paginationWire[T](p))
}

func (w Word) MarshalJSON() ([]byte, error) {
	w.Pronunciation = emptyIfNil(w.Pronunciation)
	w.Definitions = emptyIfNil(w.Definitions)
	w.Examples = emptyIfNil(w.Examples)
	w.Synonyms = emptyIfNil(w.Synonyms)
	w.Antonyms = emptyIfNil(w.Antonyms)
	w.Tags = emptyIfNil(w.Tags)
	return json.Marshal(wordWire(w))
}

func (r SearchResponse) MarshalJSON() ([]byte, error) {
	r.Results = emptyIfNil(r.Results)
	r.Suggestions = emptyIfNil(r.Suggestions)
	return json.Marshal(searchResponseWire(r))
}

func (f SearchFacets) MarshalJSON() ([]byte, error) {
	f.PartOfSpeech = emptyIfNil(f.PartOfSpeech)
	f.Level = emptyIfNil(f.Level)
	f.Tags = emptyIfNil(f.Tags)
	f.Domains = emptyIfNil(f.Domains)
	return json.Marshal(searchFacetsWire(f))
}

func (vw VocabularyWord) MarshalJSON() ([]byte, error) {
	vw.Tags = emptyIfNil(vw.Tags)
	return json.Marshal(vocabularyWordWire(vw))
}

func (p ReviewPlan) MarshalJSON() ([]byte, error) {
	p.ReviewWords = emptyIfNil(p.ReviewWords)
	p.NewWords = emptyIfNil(p.NewWords)
	return json.Marshal(reviewPlanWire(p))
}

func (p LearningProgress) MarshalJSON() ([]byte, error) {
	p.Achievements = emptyIfNil(p.Achievements)
	return json.Marshal(learningProgressWire(p))
}

func (r WritingAssistResponse) MarshalJSON() ([]byte, error) {
	r.Suggestions = emptyIfNil(r.Suggestions)
	return json.Marshal(writingAssistWire(r))
}

func (r SpeechEvaluationResponse) MarshalJSON() ([]byte, error) {
	r.Feedback = emptyIfNil(r.Feedback)
	return json.Marshal(speechEvaluationWire(r))
}

func (r OCRResponse) MarshalJSON() ([]byte, error) {
	r.Words = emptyIfNil(r.Words)
	return json.Marshal(ocrResponseWire(r))
}

func (l LayoutInfo) MarshalJSON() ([]byte, error) {
	l.Lines = emptyIfNil(l.Lines)
	return json.Marshal(layoutInfoWire(l))
}

func (l LineInfo) MarshalJSON() ([]byte, error) {
	l.Words = emptyIfNil(l.Words)
	return json.Marshal(lineInfoWire(l))
}

func (s SystemInfo) MarshalJSON() ([]byte, error) {
	s.Features = emptyIfNil(s.Features)
	return json.Marshal(systemInfoWire(s))
}

func (h HealthCheck) MarshalJSON() ([]byte, error) {
	h.Services = emptyIfNil(h.Services)
	return json.Marshal(healthCheckWire(h))
}
