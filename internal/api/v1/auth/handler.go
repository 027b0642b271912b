package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"payadmin-backend/internal/apperr"
	"payadmin-backend/internal/services"
	"payadmin-backend/internal/session"
	"payadmin-backend/internal/utils"
	"payadmin-backend/pkg/logger"
)

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Username  string `json:"username"`
	Token     string `json:"token"`
	ExpiresIn int    `json:"expiresIn"`
}

type StatusResponse struct {
	State         string `json:"state"`
	Authenticated bool   `json:"authenticated"`
	Username      string `json:"username,omitempty"`
}

type Handler struct {
	sessions *session.Manager
	tokens   services.TokenConfig
}

func NewHandler(sessions *session.Manager, tokens services.TokenConfig) *Handler {
	return &Handler{sessions: sessions, tokens: tokens}
}

// Login godoc
// @Summary Log in to the panel
// @Description Validates the credentials against the payment API and starts the session.
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   input     body   LoginInput  true  "Login Input"
// @Success 200 {object} utils.Response{data=LoginResponse}
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Failure 409 {object} utils.Response
// @Router /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var input LoginInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	meta := session.ClientMeta{
		UserAgent: c.Request.UserAgent(),
		IPAddress: c.ClientIP(),
	}
	token, err := services.LoginAdmin(c.Request.Context(), h.sessions, h.tokens, input.Username, input.Password, meta)
	switch {
	case err == nil:
	case errors.Is(err, session.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Login yoki parol noto'g'ri"))
		return
	case errors.Is(err, session.ErrLoginInProgress):
		c.JSON(http.StatusConflict, utils.NewErrorResponse(http.StatusConflict, "Login already in progress"))
		return
	case errors.Is(err, session.ErrLoginInterrupted):
		c.JSON(http.StatusConflict, utils.NewErrorResponse(http.StatusConflict, "Login was interrupted by logout"))
		return
	default:
		apperr.Respond(c, err, "Tizimga kirishda xatolik")
		return
	}

	maxAge := int(h.tokens.TTL.Seconds())
	utils.SetSessionCookie(c, token, maxAge)
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Logged in successfully", LoginResponse{
		Username:  input.Username,
		Token:     token,
		ExpiresIn: maxAge,
	}))
}

// Logout godoc
// @Summary Log out of the panel
// @Description Revokes the presented token and ends the session it was issued for. Without a valid token only the cookie is cleared.
// @Tags auth
// @Produce  json
// @Success 200 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /auth/logout [post]
func (h *Handler) Logout(c *gin.Context) {
	tokenString, _ := utils.ExtractToken(c)

	if err := services.LogoutAdmin(c.Request.Context(), h.sessions, h.tokens, tokenString); err != nil {
		logger.Log.Error("Logout failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to log out"))
		return
	}

	utils.SetSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Logged out successfully", nil))
}

// Status godoc
// @Summary Report the session state
// @Tags auth
// @Produce  json
// @Success 200 {object} utils.Response{data=StatusResponse}
// @Router /auth/status [get]
func (h *Handler) Status(c *gin.Context) {
	resp := StatusResponse{
		State:         h.sessions.State().String(),
		Authenticated: h.sessions.IsAuthenticated(),
	}
	if cred, ok := h.sessions.Credential(); ok {
		if username, err := session.Username(cred); err == nil {
			resp.Username = username
		}
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Session status", resp))
}
