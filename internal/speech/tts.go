// Package speech proxies text-to-speech synthesis to the external
// speech-synthesis API. Like translation, speech is a consumed capability:
// this package fixes the Welsh voice parameters and decodes the API's
// base64 audio payload, nothing more.
package speech

import (
	"context"
	"encoding/base64"
	"fmt"

	"golang.org/x/text/language"
	"google.golang.org/api/option"
	texttospeech "google.golang.org/api/texttospeech/v1"

	"github.com/flipcymru/flipcymru-backend/internal/config"
)

// ContentTypeWAV is the media type of the synthesized audio returned to
// clients (LINEAR16 PCM in a WAV container).
const ContentTypeWAV = "audio/wav"

// Synthesizer converts text into spoken audio. Implementations must be safe
// for concurrent use.
type Synthesizer interface {
	// Synthesize returns WAV audio for the given text.
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// GoogleTTS implements Synthesizer on the Google Cloud Text-to-Speech API.
type GoogleTTS struct {
	svc          *texttospeech.Service
	languageCode string
	sampleRateHz int64
}

// NewGoogleTTS validates the configured voice tag and builds an API-key
// authenticated client.
func NewGoogleTTS(ctx context.Context, cfg config.TTSConfig) (*GoogleTTS, error) {
	code, err := normalizeVoiceTag(cfg.LanguageCode)
	if err != nil {
		return nil, err
	}
	svc, err := texttospeech.NewService(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, err
	}
	return &GoogleTTS{
		svc:          svc,
		languageCode: code,
		sampleRateHz: int64(cfg.SampleRateHz),
	}, nil
}

// Synthesize requests LINEAR16 audio at the configured sample rate with the
// female Welsh voice and decodes the base64 payload.
func (g *GoogleTTS) Synthesize(ctx context.Context, text string) ([]byte, error) {
	resp, err := g.svc.Text.Synthesize(&texttospeech.SynthesizeSpeechRequest{
		Input: &texttospeech.SynthesisInput{Text: text},
		Voice: &texttospeech.VoiceSelectionParams{
			LanguageCode: g.languageCode,
			SsmlGender:   "FEMALE",
		},
		AudioConfig: &texttospeech.AudioConfig{
			AudioEncoding:   "LINEAR16",
			SampleRateHertz: g.sampleRateHz,
		},
	}).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return base64.StdEncoding.DecodeString(resp.AudioContent)
}

// normalizeVoiceTag parses the configured BCP-47 tag and returns its
// canonical form, failing fast on malformed configuration instead of at the
// first synthesis call.
func normalizeVoiceTag(code string) (string, error) {
	tag, err := language.Parse(code)
	if err != nil {
		return "", fmt.Errorf("TTS_LANGUAGE_CODE %q is not a valid BCP-47 tag: %w", code, err)
	}
	return tag.String(), nil
}
