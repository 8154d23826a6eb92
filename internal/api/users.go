package api

import (
	"net/http"
	"time"

	"auctionary/internal/auth"
	"auctionary/internal/models"

	"github.com/gin-gonic/gin"
)

var userFields = []string{"first_name", "last_name", "email", "password"}

// CreateUser handles POST /users
func (h *Handler) CreateUser(c *gin.Context) {
	b, ok := bindBody(c)
	if !ok {
		return
	}

	if b.hasExtraFields(userFields...) {
		errorMessage(c, http.StatusBadRequest, "extra field")
		return
	}
	for _, field := range userFields {
		if b.missing(field) {
			errorMessage(c, http.StatusBadRequest, "missing field")
			return
		}
	}
	for _, field := range userFields {
		if b.blank(field) {
			errorMessage(c, http.StatusBadRequest, "blank field")
			return
		}
	}

	// The policy only applies to actual strings; any other JSON type fails it
	password, isString := b["password"].(string)
	if !isString || !auth.ValidPassword(password) {
		errorMessage(c, http.StatusBadRequest, "invalid password")
		return
	}

	email := b.str("email")
	existing, err := h.store.UserByEmail(email)
	if err != nil {
		serverError(c)
		return
	}
	if existing != nil {
		errorMessage(c, http.StatusBadRequest, "duplicate email")
		return
	}

	salt, err := auth.GenerateSalt()
	if err != nil {
		serverError(c)
		return
	}

	user := &models.User{
		FirstName: b.str("first_name"),
		LastName:  b.str("last_name"),
		Email:     email,
		Password:  auth.HashPassword(password, salt),
		Salt:      salt,
	}
	if err := h.store.CreateUser(user); err != nil {
		serverError(c)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user_id": user.UserID})
}

// Login handles POST /login
func (h *Handler) Login(c *gin.Context) {
	b, ok := bindBody(c)
	if !ok {
		return
	}

	if b.hasExtraFields("email", "password") {
		errorMessage(c, http.StatusBadRequest, "extra field")
		return
	}
	if b.missing("email") || b.missing("password") {
		errorMessage(c, http.StatusBadRequest, "missing field")
		return
	}
	if b.blank("email") || b.blank("password") {
		errorMessage(c, http.StatusBadRequest, "blank field")
		return
	}

	user, err := h.store.UserByEmail(b.str("email"))
	if err != nil {
		serverError(c)
		return
	}
	if user == nil {
		errorMessage(c, http.StatusBadRequest, "invalid credentials")
		return
	}

	if auth.HashPassword(b.str("password"), user.Salt) != user.Password {
		errorMessage(c, http.StatusBadRequest, "invalid credentials")
		return
	}

	// Reuse token if already logged in
	if user.SessionToken != nil {
		c.JSON(http.StatusOK, gin.H{"user_id": user.UserID, "session_token": *user.SessionToken})
		return
	}

	token, err := auth.GenerateToken()
	if err != nil {
		serverError(c)
		return
	}
	if err := h.store.SetToken(user.UserID, token); err != nil {
		serverError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user_id": user.UserID, "session_token": token})
}

// Logout handles POST /logout
func (h *Handler) Logout(c *gin.Context) {
	if err := h.store.ClearToken(currentUserID(c)); err != nil {
		serverError(c)
		return
	}
	c.Status(http.StatusOK)
}

// GetUserDetails handles GET /users/:id — public profile with the user's
// open auctions, auctions they are bidding on, and ended auctions.
func (h *Handler) GetUserDetails(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}

	user, err := h.store.UserByID(userID)
	if err != nil {
		serverError(c)
		return
	}
	if user == nil {
		c.Status(http.StatusNotFound)
		return
	}

	now := time.Now().UnixMilli()

	selling, err := h.store.Selling(userID, now)
	if err != nil {
		serverError(c)
		return
	}
	biddingOn, err := h.store.BiddingOn(userID, now)
	if err != nil {
		serverError(c)
		return
	}
	ended, err := h.store.AuctionsEnded(userID, now)
	if err != nil {
		serverError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id":        user.UserID,
		"first_name":     user.FirstName,
		"last_name":      user.LastName,
		"selling":        selling,
		"bidding_on":     biddingOn,
		"auctions_ended": ended,
	})
}
