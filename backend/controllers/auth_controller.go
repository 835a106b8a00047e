package controllers

import (
	"errors"

	"edubridge/backend/config"
	"edubridge/backend/identity"
	"edubridge/backend/models"
	"edubridge/backend/session"
	"edubridge/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type AuthController struct {
	Sessions *session.Store
	Cfg      *config.Config
}

func NewAuthController(sessions *session.Store, cfg *config.Config) *AuthController {
	return &AuthController{Sessions: sessions, Cfg: cfg}
}

type loginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=student teacher"`
}

type signupInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=student teacher"`
}

func (ac *AuthController) sessionResponse(c *fiber.Ctx, user *models.User) error {
	token, err := utils.GenerateJWTToken(user.ID, ac.Cfg)
	if err != nil {
		return utils.Error(c, fiber.StatusInternalServerError,
			errors.New("could not generate token"))
	}
	return c.JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

// Login replaces any prior session with a fresh one for the given identity.
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var input loginInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.ValidationError(c, utils.FormatValidationErrors(err))
	}

	user, err := ac.Sessions.Login(c.Context(), input.Email, input.Password, models.Role(input.Role))
	if err != nil {
		return ac.sessionError(c, err)
	}
	return ac.sessionResponse(c, user)
}

// Signup registers a new account and starts its session with empty progress.
func (ac *AuthController) Signup(c *fiber.Ctx) error {
	var input signupInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.ValidationError(c, utils.FormatValidationErrors(err))
	}

	user, err := ac.Sessions.Signup(c.Context(), input.Name, input.Email, input.Password, models.Role(input.Role))
	if err != nil {
		return ac.sessionError(c, err)
	}
	return ac.sessionResponse(c, user)
}

// Logout clears the session; calling it without one is still a success.
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	if err := ac.Sessions.Logout(c.Context()); err != nil {
		return utils.Error(c, fiber.StatusInternalServerError, err)
	}
	return utils.NoContent(c)
}

func (ac *AuthController) sessionError(c *fiber.Ctx, err error) error {
	var authErr *identity.AuthError
	if errors.As(err, &authErr) {
		return utils.Unauthorized(c, "Invalid credentials")
	}
	return utils.Error(c, fiber.StatusInternalServerError, err)
}
