package handlers

import (
	"errors"
	"net/http"

	"blog_backend/internal/service"

	"github.com/gin-gonic/gin"
)

type signUpRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type logInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// tokenResponse is the shape both identity endpoints return.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

const bearerTokenType = "bearer"

// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signUpRequest  true  "Signup payload"
// @Success      200   {object}  tokenResponse
// @Failure      400   {object}  map[string]string
// @Router       /signup [post]
func (h *Handler) signUp(c *gin.Context) {
	var input signUpRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	token, err := h.services.SignUp(c.Request.Context(), input.Name, input.Email, input.Password)
	if err != nil {
		if h.log != nil {
			h.log.Infow("signup_failed", "email", input.Email, "err", err)
		}
		if errors.Is(err, service.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sign up"})
		return
	}

	c.JSON(http.StatusOK, tokenResponse{AccessToken: token, TokenType: bearerTokenType})
}

// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      logInRequest  true  "Login payload"
// @Success      200   {object}  tokenResponse
// @Failure      401   {object}  map[string]string
// @Router       /login [post]
func (h *Handler) logIn(c *gin.Context) {
	var input logInRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	token, err := h.services.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		if h.log != nil {
			h.log.Infow("login_failed", "email", input.Email, "err", err)
		}
		if errors.Is(err, service.ErrInvalidCredentials) {
			// One message for unknown email and wrong password alike.
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log in"})
		return
	}

	c.JSON(http.StatusOK, tokenResponse{AccessToken: token, TokenType: bearerTokenType})
}
