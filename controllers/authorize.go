package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"anonbox/storage"
)

// AuthAPI is the credentials collaborator behind POST /api/authorize. The
// session login flow calls it over HTTP, same contract as any external
// authorizer.
type AuthAPI struct {
	Users storage.UserStore
}

type authorizeRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (a *AuthAPI) Authorize(c *gin.Context) {
	var creds authorizeRequest
	if err := c.ShouldBindJSON(&creds); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if creds.Username == "" || creds.Password == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	user, err := a.Users.UserByUsername(c.Request.Context(), creds.Username)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		log.Printf("authorize endpoint: user lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": user.ID, "username": user.Username})
}
