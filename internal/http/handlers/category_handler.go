// Category HTTP handler.
//
// GET /get-flashcard-categories returns the user's categories oldest-first,
// each annotated with total and learnt flashcard counts derived from the
// card collection at read time.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/flipcymru/flipcymru-backend/internal/domain"
)

// GetFlashcardCategories godoc
// @ID          getFlashcardCategories
// @Summary     List flashcard categories
// @Description Returns all categories with per-category progress counts.
// @Tags        Flashcards
// @Produce     json
// @Security    BearerAuth
// @Success     200  {array}   domain.FlashcardCategory
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     502  {object}  handlers.ErrorResponse  "Store unavailable"
// @Router      /get-flashcard-categories [get]
func (h *Handlers) GetFlashcardCategories(c *gin.Context) {
	cats, err := h.categorySvc.List(c.Request.Context(), userID(c))
	if err != nil {
		failFromService(c, err)
		return
	}
	if cats == nil {
		cats = []domain.FlashcardCategory{}
	}
	ok(c, http.StatusOK, cats)
}
