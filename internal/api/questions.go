package api

import (
	"net/http"
	"strings"

	"auctionary/internal/models"
	"auctionary/internal/profanity"

	"github.com/gin-gonic/gin"
)

// AskQuestion handles POST /item/:id/question
func (h *Handler) AskQuestion(c *gin.Context) {
	itemID, ok := pathID(c, "id")
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}

	b, ok := bindBody(c)
	if !ok {
		return
	}

	if b.hasExtraFields("question_text") {
		errorMessage(c, http.StatusBadRequest, "extra field")
		return
	}
	if b.missing("question_text") {
		errorMessage(c, http.StatusBadRequest, "missing question_text")
		return
	}
	if b.blank("question_text") {
		errorMessage(c, http.StatusBadRequest, "blank question_text")
		return
	}

	text := b.str("question_text")
	if profanity.ContainsBadLanguage(text) {
		errorMessage(c, http.StatusBadRequest, "question contains inappropriate language")
		return
	}

	item, err := h.store.ItemOwner(itemID)
	if err != nil {
		serverError(c)
		return
	}
	if item == nil {
		c.Status(http.StatusNotFound)
		return
	}

	// The creator may not ask questions on their own item
	userID := currentUserID(c)
	if item.CreatorID == userID {
		c.Status(http.StatusForbidden)
		return
	}

	question := &models.Question{
		ItemID:   itemID,
		AskedBy:  userID,
		Question: strings.TrimSpace(text),
	}
	if err := h.store.CreateQuestion(question); err != nil {
		serverError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"question_id": question.QuestionID})
}

// AnswerQuestion handles POST /question/:question_id. Only the creator of
// the owning item may answer; re-answering overwrites.
func (h *Handler) AnswerQuestion(c *gin.Context) {
	questionID, ok := pathID(c, "question_id")
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}

	b, ok := bindBody(c)
	if !ok {
		return
	}

	if b.hasExtraFields("answer_text") {
		errorMessage(c, http.StatusBadRequest, "extra field")
		return
	}
	// Payload validation runs before the existence check; a malformed
	// request gets the same response whether or not the question exists
	if b.missing("answer_text") {
		errorMessage(c, http.StatusBadRequest, "missing answer_text")
		return
	}
	if b.blank("answer_text") {
		errorMessage(c, http.StatusBadRequest, "blank answer_text")
		return
	}

	question, err := h.store.QuestionWithCreator(questionID)
	if err != nil {
		serverError(c)
		return
	}
	if question == nil {
		c.Status(http.StatusNotFound)
		return
	}

	if question.CreatorID != currentUserID(c) {
		c.Status(http.StatusForbidden)
		return
	}

	if err := h.store.AnswerQuestion(questionID, strings.TrimSpace(b.str("answer_text"))); err != nil {
		serverError(c)
		return
	}

	c.Status(http.StatusOK)
}

// GetQuestions handles GET /item/:id/question
func (h *Handler) GetQuestions(c *gin.Context) {
	itemID, ok := pathID(c, "id")
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}

	item, err := h.store.ItemOwner(itemID)
	if err != nil {
		serverError(c)
		return
	}
	if item == nil {
		c.Status(http.StatusNotFound)
		return
	}

	questions, err := h.store.QuestionsForItem(itemID)
	if err != nil {
		serverError(c)
		return
	}

	c.JSON(http.StatusOK, questions)
}
