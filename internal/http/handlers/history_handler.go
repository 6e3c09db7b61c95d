// Translation-history HTTP handlers.
//
// This file exposes the bounded per-user history ledger:
//   - POST /save-translation-history  (append, evicting the oldest at cap)
//   - GET  /get-translation-history   (ordered read, newest-first default)
//
// The ledger caps each user's history; the append operation itself enforces
// the bound, so the handler only shapes the payload and maps errors.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/flipcymru/flipcymru-backend/internal/domain"
)

// SaveHistoryRequest is the JSON payload recording one completed
// translation.
type SaveHistoryRequest struct {
	SourceText        string                   `json:"sourceText" binding:"required" example:"Hello"`
	TranslatedText    string                   `json:"translatedText" binding:"required" example:"Shwmae"`
	SourceLang        string                   `json:"sourceLang" binding:"required" example:"English"`
	TargetLang        string                   `json:"targetLang" binding:"required" example:"Welsh"`
	PronunciationText string                   `json:"pronunciationText" example:"shoo-my"`
	ExampleSentences  []domain.ExampleSentence `json:"exampleSentences"`
}

// SaveHistoryResponse confirms the append.
type SaveHistoryResponse struct {
	Message string `json:"message" example:"Translation history saved successfully."`
}

// HistoryResponse is the ordered history listing.
type HistoryResponse struct {
	History []domain.HistoryRecord `json:"history"`
}

// SaveTranslationHistory godoc
// @ID          saveTranslationHistory
// @Summary     Record a translation in history
// @Description Appends one completed translation to the user's history. The
// @Description history keeps only the most recent entries; at the cap the
// @Description oldest entry is evicted to make room.
// @Tags        History
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body  body  handlers.SaveHistoryRequest  true  "Translation record"
// @Success     200  {object}  handlers.SaveHistoryResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Validation failed"
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     502  {object}  handlers.ErrorResponse  "Store unavailable"
// @Router      /save-translation-history [post]
func (h *Handlers) SaveTranslationHistory(c *gin.Context) {
	var req SaveHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "sourceText, translatedText, sourceLang and targetLang required")
		return
	}

	rec := domain.HistoryRecord{
		SourceText:        req.SourceText,
		TranslatedText:    req.TranslatedText,
		SourceLang:        req.SourceLang,
		TargetLang:        req.TargetLang,
		PronunciationText: req.PronunciationText,
		ExampleSentences:  req.ExampleSentences,
	}
	if err := h.historySvc.Append(c.Request.Context(), userID(c), rec); err != nil {
		failFromService(c, err)
		return
	}

	ok(c, http.StatusOK, SaveHistoryResponse{Message: "Translation history saved successfully."})
}

// GetTranslationHistory godoc
// @ID          getTranslationHistory
// @Summary     List translation history
// @Description Returns the user's translation history ordered by timestamp,
// @Description newest-first unless ?order=asc is given.
// @Tags        History
// @Produce     json
// @Security    BearerAuth
// @Param       order  query  string  false  "Sort order"  Enums(asc, desc)  default(desc)
// @Success     200  {object}  handlers.HistoryResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     502  {object}  handlers.ErrorResponse  "Store unavailable"
// @Router      /get-translation-history [get]
func (h *Handlers) GetTranslationHistory(c *gin.Context) {
	desc := true
	switch c.DefaultQuery("order", "desc") {
	case "desc":
	case "asc":
		desc = false
	default:
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "order must be asc or desc")
		return
	}

	records, err := h.historySvc.List(c.Request.Context(), userID(c), desc)
	if err != nil {
		failFromService(c, err)
		return
	}
	if records == nil {
		records = []domain.HistoryRecord{}
	}
	ok(c, http.StatusOK, HistoryResponse{History: records})
}
