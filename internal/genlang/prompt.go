package genlang

import (
	"fmt"
	"strings"
)

// buildTranslationPrompt renders the instruction block sent to the model.
// The one-shot example anchors the JSON shape; the response schema passed
// alongside the prompt enforces it.
func buildTranslationPrompt(req TranslationRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Translate the following text from %s to %s.\n", req.SourceLanguage, req.TargetLanguage)
	b.WriteString("When translating to Welsh, consider the following:\n")
	fmt.Fprintf(&b, "- Dialect: %s (e.g., \"Standard\", \"North-Welsh\", \"South-Welsh\")\n", req.WelshDialect)
	fmt.Fprintf(&b, "- Formality: %s (e.g., \"Standard\", \"Formal\", \"Informal\")\n\n", req.WelshFormality)

	b.WriteString("For the translated text in the target language:\n")
	b.WriteString("1. Provide ONLY the single most appropriate translation of the input text.\n")
	b.WriteString("2. Provide its phonetic pronunciation guide (e.g., in a simple, easy-to-understand format like 'shoo-my' for 'Shwmae'). If a phonetic guide is not applicable or easily generated, return \"N/A\".\n")
	fmt.Fprintf(&b, "3. Provide 3 example sentences using the translated phrase in context. For each example sentence, also provide its translation back into the source language (%s).\n\n", req.SourceLanguage)

	b.WriteString("Return the response as a JSON object with the following fields:\n")
	b.WriteString("- \"translatedText\" (string): The single, most appropriate translation of the input text in the target language.\n")
	b.WriteString("- \"pronunciationText\" (string): The phonetic pronunciation guide for the translated text.\n")
	b.WriteString("- \"exampleSentences\" (array of objects): An array of 3 objects, each with \"originalSentence\" (the example sentence in the target language) and \"sourceTranslation\" (its translation back to the source language).\n\n")

	b.WriteString("Example (English to Welsh for \"Hello\", South-Welsh, Informal):\n")
	b.WriteString("Input: \"Hello\"\n")
	b.WriteString(`Output: {
  "translatedText": "Shwmae",
  "pronunciationText": "shoo-my",
  "exampleSentences": [
    {"originalSentence": "Shwmae, sut wyt ti heddiw?", "sourceTranslation": "Hello, how are you today?"},
    {"originalSentence": "Shwmae, croeso i Gymru!", "sourceTranslation": "Hello, welcome to Wales!"},
    {"originalSentence": "Dw i'n dweud shwmae wrth y ci.", "sourceTranslation": "I'm saying hello to the dog."}
  ]
}
`)
	b.WriteString("\n")
	fmt.Fprintf(&b, "Input: %q (from %s to %s, Dialect: %s, Formality: %s)\nOutput:\n",
		req.Text, req.SourceLanguage, req.TargetLanguage, req.WelshDialect, req.WelshFormality)

	return b.String()
}

// transcribePrompt is the fixed instruction paired with inline audio.
const transcribePrompt = "Transcribe the audio provided. Identify the language."
