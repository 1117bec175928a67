package types

import "time"

// maxAudioBytes bounds speech evaluation uploads.
const maxAudioBytes = 10 << 20

// AudioResource describes a stored audio file. Duration is in seconds,
// Size in bytes.
type AudioResource struct {
	ID        string       `json:"id"`
	URL       string       `json:"url"`
	Format    AudioFormat  `json:"format"`
	Duration  float64      `json:"duration"`
	Size      int64        `json:"size"`
	Quality   AudioQuality `json:"quality"`
	CreatedAt time.Time    `json:"createdAt"`
}

func (a AudioResource) Validate() error {
	var errs fieldErrors
	if a.URL == "" {
		errs.add("url", "required")
	}
	if !a.Format.IsValid() {
		errs.add("format", "invalid value")
	}
	if a.Duration < 0 {
		errs.add("duration", "must not be negative")
	}
	if a.Size < 0 {
		errs.add("size", "must not be negative")
	}
	if !a.Quality.IsValid() {
		errs.add("quality", "invalid value")
	}
	return errs.err()
}

// SpeechEvaluationRequest submits a recording to be scored against
// ReferenceText. AudioData is base64 in JSON.
type SpeechEvaluationRequest struct {
	AudioData      []byte               `json:"audioData"`
	ReferenceText  string               `json:"referenceText"`
	Language       string               `json:"language"`
	EvaluationType SpeechEvaluationType `json:"evaluationType"`
}

func (r SpeechEvaluationRequest) Validate() error {
	var errs fieldErrors
	if len(r.AudioData) == 0 {
		errs.add("audioData", "required")
	} else if len(r.AudioData) > maxAudioBytes {
		errs.add("audioData", "too large")
	}
	if r.ReferenceText == "" {
		errs.add("referenceText", "required")
	}
	if r.Language == "" {
		errs.add("language", "required")
	}
	if !r.EvaluationType.IsValid() {
		errs.add("evaluationType", "invalid value")
	}
	return errs.err()
}

// SpeechEvaluationResponse scores a recording; all scores are in [0, 100].
type SpeechEvaluationResponse struct {
	OverallScore       float64          `json:"overallScore"`
	PronunciationScore float64          `json:"pronunciationScore"`
	FluencyScore       float64          `json:"fluencyScore"`
	AccuracyScore      float64          `json:"accuracyScore"`
	Feedback           []SpeechFeedback `json:"feedback"`
	AudioAnalysis      AudioAnalysis    `json:"audioAnalysis"`
}

func (r SpeechEvaluationResponse) Validate() error {
	var errs fieldErrors
	for _, d := range []struct {
		name  string
		value float64
	}{
		{"overallScore", r.OverallScore},
		{"pronunciationScore", r.PronunciationScore},
		{"fluencyScore", r.FluencyScore},
		{"accuracyScore", r.AccuracyScore},
	} {
		if !isScore(d.value) {
			errs.add(d.name, "must be within [0, 100]")
		}
	}
	for i, f := range r.Feedback {
		p := indexPath("feedback", i)
		errs.nest(p, f.Validate())
		if f.Position.EndTime > r.AudioAnalysis.Duration && r.AudioAnalysis.Duration > 0 {
			errs.add(p+".position.endTime", "beyond end of audio")
		}
	}
	return errs.err()
}

// FeedbackBySeverity returns the feedback items with the given severity in
// their original order.
func (r SpeechEvaluationResponse) FeedbackBySeverity(s Severity) []SpeechFeedback {
	var out []SpeechFeedback
	for _, f := range r.Feedback {
		if f.Severity == s {
			out = append(out, f)
		}
	}
	return out
}

// SpeechFeedback flags one word of the recording.
type SpeechFeedback struct {
	Type       FeedbackType  `json:"type"`
	Position   AudioPosition `json:"position"`
	Word       string        `json:"word"`
	Score      float64       `json:"score"`
	Suggestion string        `json:"suggestion"`
	Severity   Severity      `json:"severity"`
}

func (f SpeechFeedback) Validate() error {
	var errs fieldErrors
	if !f.Type.IsValid() {
		errs.add("type", "invalid value")
	}
	errs.nest("position", f.Position.Validate())
	if !isScore(f.Score) {
		errs.add("score", "must be within [0, 100]")
	}
	if !f.Severity.IsValid() {
		errs.add("severity", "invalid value")
	}
	return errs.err()
}

// AudioPosition is a time span in seconds from the start of the recording.
type AudioPosition struct {
	StartTime float64 `json:"startTime"`
	EndTime   float64 `json:"endTime"`
}

func (p AudioPosition) Validate() error {
	var errs fieldErrors
	if p.StartTime < 0 {
		errs.add("startTime", "must not be negative")
	}
	if p.EndTime < p.StartTime {
		errs.add("endTime", "before startTime")
	}
	return errs.err()
}

// AudioAnalysis summarizes acoustic features; Duration is in seconds.
type AudioAnalysis struct {
	Duration float64        `json:"duration"`
	Pitch    PitchAnalysis  `json:"pitch"`
	Rhythm   RhythmAnalysis `json:"rhythm"`
	Volume   VolumeAnalysis `json:"volume"`
}

// PitchAnalysis values are in Hz.
type PitchAnalysis struct {
	Average  float64 `json:"average"`
	Range    float64 `json:"range"`
	Variance float64 `json:"variance"`
}

// RhythmAnalysis: SpeechRate is words per minute, Regularity a ratio in [0, 1].
type RhythmAnalysis struct {
	PauseCount int     `json:"pauseCount"`
	SpeechRate float64 `json:"speechRate"`
	Regularity float64 `json:"regularity"`
}

// VolumeAnalysis: Average and Peak in dBFS, Consistency a ratio in [0, 1].
type VolumeAnalysis struct {
	Average     float64 `json:"average"`
	Peak        float64 `json:"peak"`
	Consistency float64 `json:"consistency"`
}
