package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Madhesh0006/dbms-blood-donation-project/internal/core/domain"
	"github.com/Madhesh0006/dbms-blood-donation-project/internal/core/ports"
)

// AuthHandler handles user registration and login.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/Register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	_, err := h.authService.Register(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return c.JSON(http.StatusConflict, errorResponse{Error: "email already registered"})
		}
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Registration is successful"})
}

// Login authenticates a user by email and password.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  loginResponse
// @Router       /api/Login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			// Not-found and wrong-password intentionally share one
			// message so the response does not reveal which was wrong.
			return c.JSON(http.StatusUnauthorized, loginResponse{
				Message: "Invalid Login details",
			})
		}
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{
		Message:  "Login Successful",
		UserID:   &user.ID,
		Username: user.Username,
		Email:    user.Email,
		Token:    token,
	})
}
