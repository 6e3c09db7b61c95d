package genlang

import (
	"context"
	"errors"

	"google.golang.org/genai"

	"github.com/flipcymru/flipcymru-backend/internal/config"
)

// GeminiClient implements Translator against the Gemini generative-language
// API.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGemini builds a Gemini-backed Translator from configuration.
func NewGemini(ctx context.Context, cfg config.GeminiConfig) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &GeminiClient{client: client, model: cfg.Model}, nil
}

// translationSchema constrains the model to the exact JSON document
// parseTranslation expects.
var translationSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"translatedText":    {Type: genai.TypeString},
		"pronunciationText": {Type: genai.TypeString},
		"exampleSentences": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"originalSentence":  {Type: genai.TypeString},
					"sourceTranslation": {Type: genai.TypeString},
				},
				Required: []string{"originalSentence", "sourceTranslation"},
			},
		},
	},
	Required: []string{"translatedText", "pronunciationText", "exampleSentences"},
}

// Translate prompts the model for a schema-constrained JSON translation.
func (c *GeminiClient) Translate(ctx context.Context, req TranslationRequest) (TranslationResult, error) {
	req = req.withDefaults()

	resp, err := c.client.Models.GenerateContent(ctx,
		c.model,
		genai.Text(buildTranslationPrompt(req)),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   translationSchema,
		},
	)
	if err != nil {
		return TranslationResult{}, err
	}
	return parseTranslation(resp.Text())
}

// Transcribe sends raw audio inline and returns the model's transcription.
func (c *GeminiClient) Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error) {
	if len(audio) == 0 {
		return "", errors.New("no audio data provided")
	}
	if mimeType == "" {
		mimeType = "audio/webm"
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(transcribePrompt),
			genai.NewPartFromBytes(audio, mimeType),
		}, genai.RoleUser),
	}
	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, nil)
	if err != nil {
		return "", err
	}
	text := resp.Text()
	if text == "" {
		return "", ErrEmptyResult
	}
	return text, nil
}
