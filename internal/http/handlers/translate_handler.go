// Translation HTTP handler.
//
// POST /translate-text proxies a single translation to the generative
// language provider. The endpoint is unauthenticated by design: translation
// alone touches no user data. Recording the result in history is a separate,
// authenticated call (see history_handler.go), so a history failure can
// never block showing the translation to the user.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/flipcymru/flipcymru-backend/internal/domain"
	"github.com/flipcymru/flipcymru-backend/internal/genlang"
	"github.com/flipcymru/flipcymru-backend/internal/http/middleware"
)

// TranslateTextRequest is the JSON payload for a translation call. Dialect
// and formality default to "Standard" when omitted.
type TranslateTextRequest struct {
	Text           string `json:"text" binding:"required" example:"Hello"`
	SourceLanguage string `json:"sourceLanguage" binding:"required" example:"English"`
	TargetLanguage string `json:"targetLanguage" binding:"required" example:"Welsh"`
	WelshDialect   string `json:"welshDialect" example:"South-Welsh"`
	WelshFormality string `json:"welshFormality" example:"Informal"`
}

// TranslateTextResponse is the shaped provider output.
type TranslateTextResponse struct {
	TranslatedText    string                   `json:"translatedText" example:"Shwmae"`
	PronunciationText string                   `json:"pronunciationText" example:"shoo-my"`
	ExampleSentences  []domain.ExampleSentence `json:"exampleSentences"`
}

// TranslateText godoc
// @ID          translateText
// @Summary     Translate text
// @Description Translates text between English and Welsh, returning the
// @Description single best translation with a pronunciation guide and up to
// @Description three example sentences.
// @Tags        Language
// @Accept      json
// @Produce     json
// @Param       body  body  handlers.TranslateTextRequest  true  "Translation payload"
// @Success     200  {object}  handlers.TranslateTextResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     502  {object}  handlers.ErrorResponse  "Provider unavailable"
// @Router      /translate-text [post]
func (h *Handlers) TranslateText(c *gin.Context) {
	var req TranslateTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "text, sourceLanguage and targetLanguage required")
		return
	}

	res, err := h.translator.Translate(c.Request.Context(), genlang.TranslationRequest{
		Text:           req.Text,
		SourceLanguage: req.SourceLanguage,
		TargetLanguage: req.TargetLanguage,
		WelshDialect:   req.WelshDialect,
		WelshFormality: req.WelshFormality,
	})
	if err != nil {
		middleware.LoggerFrom(c).Error().Err(err).Msg("translation failed")
		fail(c, http.StatusBadGateway, ErrCodeProviderUnavailable, "translation provider unavailable")
		return
	}

	ok(c, http.StatusOK, TranslateTextResponse{
		TranslatedText:    res.TranslatedText,
		PronunciationText: res.PronunciationText,
		ExampleSentences:  res.ExampleSentences,
	})
}
