package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/ruok-app/ruok-api/internal/config"
	"github.com/ruok-app/ruok-api/internal/services"
	"github.com/ruok-app/ruok-api/internal/utils"
	"gorm.io/gorm"
)

// AuthHandler handles signup, login, and session lifecycle routes.
type AuthHandler struct {
	DB  *gorm.DB
	Cfg *config.Config
}

// Signup handles POST /api/auth/signup
// @Summary Create a password account
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body services.SignupInput true "Signup fields"
// @Success 201 {object} utils.DataResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 411 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var in services.SignupInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "auth.validation.input")
	}

	user, err := services.Signup(h.DB, in)
	if err != nil {
		return respondError(c, err, "signup")
	}

	token, err := utils.GenerateToken(h.Cfg.JWTKey, user.ID, false, services.SessionTTL)
	if err != nil {
		return respondError(c, err, "signup")
	}
	h.setSessionCookie(c, token, services.SessionTTL)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User created successfully",
		"user":    user,
	})
}

// Login handles POST /api/auth/login
// @Summary Authenticate a password account
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body services.LoginInput true "Login fields"
// @Success 200 {object} utils.DataResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 411 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in services.LoginInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "auth.validation.input")
	}

	user, err := services.Login(h.DB, in)
	if err != nil {
		return respondError(c, err, "login")
	}

	token, err := utils.GenerateToken(h.Cfg.JWTKey, user.ID, false, services.SessionTTL)
	if err != nil {
		return respondError(c, err, "login")
	}
	h.setSessionCookie(c, token, services.SessionTTL)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "User logged in successfully",
		"user":    user,
	})
}

// GoogleAuth handles POST /api/auth/google
// @Summary Authenticate with a Google ID token
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} utils.DataResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /auth/google [post]
func (h *AuthHandler) GoogleAuth(c *fiber.Ctx) error {
	var body struct {
		Credential string `json:"credential"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "auth.validation.input")
	}

	user, err := services.GoogleLogin(c.Context(), h.DB, h.Cfg.GoogleClientID, body.Credential)
	if err != nil {
		return respondError(c, err, "google-auth")
	}

	token, err := utils.GenerateToken(h.Cfg.JWTKey, user.ID, false, services.SessionTTL)
	if err != nil {
		return respondError(c, err, "google-auth")
	}
	h.setSessionCookie(c, token, services.SessionTTL)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Google login successful",
		"user":    user,
	})
}

// GuestLogin handles POST /api/auth/guest-login
// @Summary Create a disposable guest account
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.DataResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /auth/guest-login [post]
func (h *AuthHandler) GuestLogin(c *fiber.Ctx) error {
	guest, err := services.GuestLogin(h.DB)
	if err != nil {
		return respondError(c, err, "guest-login")
	}

	token, err := utils.GenerateToken(h.Cfg.JWTKey, guest.ID, true, services.GuestSessionTTL)
	if err != nil {
		return respondError(c, err, "guest-login")
	}
	h.setSessionCookie(c, token, services.GuestSessionTTL)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Guest login successful",
		"user":    guest,
		"isGuest": true,
	})
}

// DeleteGuest handles DELETE /api/auth/delete-guest
// @Summary Delete the authenticated guest account
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.DataResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /auth/delete-guest [delete]
func (h *AuthHandler) DeleteGuest(c *fiber.Ctx) error {
	userID, err := ownerID(c)
	if err != nil {
		return respondError(c, err, "delete-guest")
	}

	if err := services.DeleteUser(h.DB, userID); err != nil {
		return respondError(c, err, "delete-guest")
	}

	h.clearSessionCookie(c)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "User deleted successfully",
	})
}

// Logout handles POST /api/auth/logout
// @Summary Clear the session cookie
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.DataResponseStruct
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.clearSessionCookie(c)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Logged out successfully",
	})
}

func (h *AuthHandler) setSessionCookie(c *fiber.Ctx, token string, ttl time.Duration) {
	c.Cookie(&fiber.Cookie{
		Name:     utils.SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteNoneMode,
	})
}

func (h *AuthHandler) clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     utils.SessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteNoneMode,
	})
}
