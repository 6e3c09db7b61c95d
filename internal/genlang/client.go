// Package genlang proxies translation, transliteration, and speech
// transcription to the external generative-language API. The model is a
// consumed capability: this package builds prompts, constrains the response
// shape, and maps the model's JSON back onto domain types. It implements no
// language logic of its own.
package genlang

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/flipcymru/flipcymru-backend/internal/domain"
)

// DialectStandard and FormalityStandard are the defaults applied when a
// request leaves the Welsh style knobs empty.
const (
	DialectStandard   = "Standard"
	FormalityStandard = "Standard"
)

// TranslationRequest describes one translation call.
type TranslationRequest struct {
	Text           string
	SourceLanguage string
	TargetLanguage string
	// WelshDialect is "Standard", "North-Welsh", or "South-Welsh".
	WelshDialect string
	// WelshFormality is "Standard", "Formal", or "Informal".
	WelshFormality string
}

// withDefaults fills empty style knobs with their standard values.
func (r TranslationRequest) withDefaults() TranslationRequest {
	if r.WelshDialect == "" {
		r.WelshDialect = DialectStandard
	}
	if r.WelshFormality == "" {
		r.WelshFormality = FormalityStandard
	}
	return r
}

// TranslationResult is the shaped model output: the single best translation,
// a phonetic guide, and up to three usage examples.
type TranslationResult struct {
	TranslatedText    string
	PronunciationText string
	ExampleSentences  []domain.ExampleSentence
}

// Translator is the contract services and handlers consume. Implementations
// must be safe for concurrent use and honor the context for cancellation.
type Translator interface {
	// Translate returns the translation of req.Text with pronunciation and
	// example sentences.
	Translate(ctx context.Context, req TranslationRequest) (TranslationResult, error)
	// Transcribe converts raw audio into text, identifying the language.
	Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error)
}

// ErrEmptyResult is returned when the model responds without a translation.
var ErrEmptyResult = errors.New("model returned no translated text")

// translationPayload is the JSON document the model is asked to produce.
type translationPayload struct {
	TranslatedText    string `json:"translatedText"`
	PronunciationText string `json:"pronunciationText"`
	ExampleSentences  []struct {
		OriginalSentence  string `json:"originalSentence"`
		SourceTranslation string `json:"sourceTranslation"`
	} `json:"exampleSentences"`
}

// parseTranslation decodes the model's JSON and filters malformed example
// sentences. Generative output is only partially trusted: an example missing
// either half is dropped, never fatal, while a missing translatedText fails
// the whole call.
func parseTranslation(raw string) (TranslationResult, error) {
	var p translationPayload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return TranslationResult{}, err
	}
	if p.TranslatedText == "" {
		return TranslationResult{}, ErrEmptyResult
	}
	out := TranslationResult{
		TranslatedText:    p.TranslatedText,
		PronunciationText: p.PronunciationText,
	}
	for _, e := range p.ExampleSentences {
		ex := domain.ExampleSentence{
			OriginalSentence:  e.OriginalSentence,
			SourceTranslation: e.SourceTranslation,
		}
		if ex.Valid() {
			out.ExampleSentences = append(out.ExampleSentences, ex)
		}
	}
	return out, nil
}
