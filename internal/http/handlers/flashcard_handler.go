// Flashcard HTTP handlers.
//
// This file exposes the study-card endpoints:
//   - POST /create-flashcard                          (translate + store)
//   - GET  /get-flashcards                            (filtered listing)
//   - GET  /get-flashcards-by-category/{categoryName} (per-category listing)
//   - GET  /get-flashcard/{cardId}                    (fetch + review stamp)
//   - PUT  /update-flashcard-learnt-status/{cardId}   (learnt toggle)
//
// Listings return bare JSON arrays; the frontend consumes them directly.
package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/flipcymru/flipcymru-backend/internal/domain"
	"github.com/flipcymru/flipcymru-backend/internal/services"
)

// CreateFlashcardRequest is the JSON payload for a new card. The Welsh side
// is produced by the translation provider, never supplied by the client.
type CreateFlashcardRequest struct {
	EnglishText    string `json:"englishText" binding:"required" example:"Food"`
	CategoryName   string `json:"categoryName" binding:"required" example:"Basics"`
	WelshDialect   string `json:"welshDialect" example:"Standard"`
	WelshFormality string `json:"welshFormality" example:"Standard"`
}

// CreateFlashcardResponse confirms creation and echoes the stored card.
type CreateFlashcardResponse struct {
	Message   string           `json:"message" example:"Flashcard created successfully!"`
	Flashcard domain.Flashcard `json:"flashcard"`
}

// UpdateLearntStatusRequest is the JSON payload for the learnt toggle.
type UpdateLearntStatusRequest struct {
	Learnt *bool `json:"learnt" binding:"required" example:"true"`
}

// MessageResponse is a bare confirmation envelope.
type MessageResponse struct {
	Message string `json:"message"`
}

// CreateFlashcard godoc
// @ID          createFlashcard
// @Summary     Create a flashcard
// @Description Translates the English text to Welsh, creates the category on
// @Description first use, and stores the card.
// @Tags        Flashcards
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body  body  handlers.CreateFlashcardRequest  true  "Flashcard payload"
// @Success     201  {object}  handlers.CreateFlashcardResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     502  {object}  handlers.ErrorResponse  "Upstream failure"
// @Router      /create-flashcard [post]
func (h *Handlers) CreateFlashcard(c *gin.Context) {
	var req CreateFlashcardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "englishText and categoryName required")
		return
	}

	card, err := h.cardSvc.Create(c.Request.Context(), userID(c), services.CreateInput{
		EnglishText:    req.EnglishText,
		CategoryName:   req.CategoryName,
		WelshDialect:   req.WelshDialect,
		WelshFormality: req.WelshFormality,
	})
	if err != nil {
		failFromService(c, err)
		return
	}

	ok(c, http.StatusCreated, CreateFlashcardResponse{
		Message:   "Flashcard created successfully!",
		Flashcard: card,
	})
}

// GetFlashcards godoc
// @ID          getFlashcards
// @Summary     List flashcards
// @Description Returns the user's flashcards newest-first. Category and
// @Description difficulty filter in the store ("All" disables a filter);
// @Description search_term matches English, Welsh, and pronunciation text.
// @Tags        Flashcards
// @Produce     json
// @Security    BearerAuth
// @Param       category     query  string  false  "Category filter"
// @Param       difficulty   query  string  false  "Difficulty filter"
// @Param       search_term  query  string  false  "Free-text search"
// @Success     200  {array}   domain.Flashcard
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     502  {object}  handlers.ErrorResponse  "Store unavailable"
// @Router      /get-flashcards [get]
func (h *Handlers) GetFlashcards(c *gin.Context) {
	cards, err := h.cardSvc.List(c.Request.Context(), userID(c), services.ListFilter{
		Category:   c.Query("category"),
		Difficulty: c.Query("difficulty"),
		SearchTerm: c.Query("search_term"),
	})
	if err != nil {
		failFromService(c, err)
		return
	}
	if cards == nil {
		cards = []domain.Flashcard{}
	}
	ok(c, http.StatusOK, cards)
}

// GetFlashcardsByCategory godoc
// @ID          getFlashcardsByCategory
// @Summary     List flashcards in a category
// @Tags        Flashcards
// @Produce     json
// @Security    BearerAuth
// @Param       categoryName  path  string  true  "Category display name"
// @Success     200  {array}   domain.Flashcard
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     502  {object}  handlers.ErrorResponse  "Store unavailable"
// @Router      /get-flashcards-by-category/{categoryName} [get]
func (h *Handlers) GetFlashcardsByCategory(c *gin.Context) {
	cards, err := h.cardSvc.ListByCategory(c.Request.Context(), userID(c), c.Param("categoryName"))
	if err != nil {
		failFromService(c, err)
		return
	}
	if cards == nil {
		cards = []domain.Flashcard{}
	}
	ok(c, http.StatusOK, cards)
}

// GetFlashcard godoc
// @ID          getFlashcard
// @Summary     Get one flashcard
// @Description Returns the card and stamps its lastReviewed time. The
// @Description response reflects the state before the stamp.
// @Tags        Flashcards
// @Produce     json
// @Security    BearerAuth
// @Param       cardId  path  string  true  "Flashcard ID"
// @Success     200  {object}  domain.Flashcard
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     404  {object}  handlers.ErrorResponse  "Flashcard not found"
// @Failure     502  {object}  handlers.ErrorResponse  "Store unavailable"
// @Router      /get-flashcard/{cardId} [get]
func (h *Handlers) GetFlashcard(c *gin.Context) {
	card, err := h.cardSvc.Get(c.Request.Context(), userID(c), c.Param("cardId"))
	if err != nil {
		failFromService(c, err)
		return
	}
	ok(c, http.StatusOK, card)
}

// UpdateFlashcardLearntStatus godoc
// @ID          updateFlashcardLearntStatus
// @Summary     Update a flashcard's learnt status
// @Tags        Flashcards
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       cardId  path  string  true  "Flashcard ID"
// @Param       body    body  handlers.UpdateLearntStatusRequest  true  "New status"
// @Success     200  {object}  handlers.MessageResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     404  {object}  handlers.ErrorResponse  "Flashcard not found"
// @Failure     502  {object}  handlers.ErrorResponse  "Store unavailable"
// @Router      /update-flashcard-learnt-status/{cardId} [put]
func (h *Handlers) UpdateFlashcardLearntStatus(c *gin.Context) {
	var req UpdateLearntStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Learnt == nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "learnt (boolean) required")
		return
	}

	cardID := c.Param("cardId")
	if err := h.cardSvc.SetLearnt(c.Request.Context(), userID(c), cardID, *req.Learnt); err != nil {
		failFromService(c, err)
		return
	}

	ok(c, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Flashcard %s learnt status updated to %t.", cardID, *req.Learnt),
	})
}
