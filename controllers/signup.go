package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"anonbox/models"
	"anonbox/profiles"
	"anonbox/storage"
)

var validate = validator.New()

// SignupController creates accounts for the "Create your link" flow.
type SignupController struct {
	Users    storage.UserStore
	Profiles *profiles.Loader
}

type signupForm struct {
	Username string `validate:"required,min=3,max=32,alphanum"`
	Password string `validate:"required,min=8,max=72"`
	Message  string `validate:"max=200"`
}

func (s *SignupController) Signup(c *gin.Context) {
	form := signupForm{
		Username: strings.ToLower(strings.TrimSpace(c.PostForm("username"))),
		Password: c.PostForm("password"),
		Message:  strings.TrimSpace(c.PostForm("message")),
	}

	if err := validate.Struct(form); err != nil {
		c.Redirect(http.StatusFound, "/create?error=invalid_input")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("signup: hash failed: %v", err)
		c.Redirect(http.StatusFound, "/create?error=server_error")
		return
	}

	if form.Message == "" {
		form.Message = models.DefaultPrompt
	}

	if _, err := s.Users.CreateUser(c.Request.Context(), form.Username, string(hashedPassword), form.Message); err != nil {
		if errors.Is(err, storage.ErrUsernameExists) {
			c.Redirect(http.StatusFound, "/create?error=username_taken")
			return
		}
		log.Printf("signup: create failed: %v", err)
		c.Redirect(http.StatusFound, "/create?error=server_error")
		return
	}

	// A stale "no such user" entry would make the fresh link 404 until the
	// cache TTL runs out.
	s.Profiles.Invalidate(form.Username)

	c.Redirect(http.StatusFound, "/?created=1")
}
