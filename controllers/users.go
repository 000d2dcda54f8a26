package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"anonbox/storage"
)

// UserAPI is the user query collaborator behind GET /api/users/:username.
// The profile loader consumes it; only the public profile fields leave.
type UserAPI struct {
	Users storage.UserStore
}

func (u *UserAPI) GetUser(c *gin.Context) {
	// Stored usernames are lowercase.
	username := strings.ToLower(c.Param("username"))

	user, err := u.Users.UserByUsername(c.Request.Context(), username)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"user": nil})
			return
		}
		log.Printf("user endpoint: lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user.Profile()})
}
