package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/greenbasket/greenbasket/internal/pkg/logger"
	"github.com/greenbasket/greenbasket/internal/pkg/middleware"
	"github.com/greenbasket/greenbasket/internal/pkg/models"
	"github.com/greenbasket/greenbasket/internal/utils"
	"github.com/greenbasket/greenbasket/services/users"
	"github.com/greenbasket/greenbasket/services/users/repository"
	"github.com/greenbasket/greenbasket/services/users/usecase"
)

// AuthHandler handles HTTP requests for signup, login and profile
type AuthHandler struct {
	userUC users.UserUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(userUC users.UserUC) *AuthHandler {
	return &AuthHandler{userUC: userUC}
}

// Signup handles user registration requests
func (h *AuthHandler) Signup(c echo.Context) error {
	var req models.SignupRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for signup",
			logger.ErrorField(err),
			logger.String("endpoint", "Signup"),
		)
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	user, err := h.userUC.Signup(c.Request().Context(), &req)
	if err != nil {
		logger.Warn("Signup rejected", logger.ErrorField(err))
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusCreated, "User registered successfully", user)
}

// Login handles login requests
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	auth, err := h.userUC.Login(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			return utils.UnauthorizedResponse(c, "Invalid email or password")
		}
		logger.Error("Failed to process login", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "Failed to process login")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", auth)
}

// Me handles profile requests for the authenticated user
func (h *AuthHandler) Me(c echo.Context) error {
	userID, err := uuid.Parse(middleware.UserIDFromContext(c))
	if err != nil {
		return utils.UnauthorizedResponse(c, "Invalid user session")
	}

	user, err := h.userUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return utils.NotFoundResponse(c, "User not found")
		}
		logger.Error("Failed to retrieve profile",
			logger.String("user_id", userID.String()),
			logger.ErrorField(err),
		)
		return utils.InternalServerErrorResponse(c, "Failed to retrieve profile")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile retrieved successfully", user)
}
