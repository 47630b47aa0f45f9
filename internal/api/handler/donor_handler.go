package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Madhesh0006/dbms-blood-donation-project/internal/core/domain"
	"github.com/Madhesh0006/dbms-blood-donation-project/internal/core/ports"
)

// DonorHandler handles donor registration and listing.
type DonorHandler struct {
	donorService ports.DonorService
}

func NewDonorHandler(donorService ports.DonorService) *DonorHandler {
	return &DonorHandler{donorService: donorService}
}

// Register handles POST /api/Donors/:userId.
//
// @Summary      Register a donor for an existing user
// @Tags         donors
// @Accept       json
// @Produce      json
// @Param        userId  path      string                true  "Owning user id"
// @Param        body    body      registerDonorRequest  true  "Donor details"
// @Success      200     {object}  messageResponse
// @Failure      400     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Router       /api/Donors/{userId} [post]
func (h *DonorHandler) Register(c echo.Context) error {
	userID := c.Param("userId")

	var req registerDonorRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	input, err := req.toInput()
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid date format, expected YYYY-MM-DD"})
	}

	if _, err := h.donorService.Register(c.Request().Context(), userID, input); err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return c.JSON(http.StatusNotFound, errorResponse{Error: "user not found"})
		case errors.Is(err, domain.ErrMissingBirthDate),
			errors.Is(err, domain.ErrUnderage),
			errors.Is(err, domain.ErrOverage),
			errors.Is(err, domain.ErrInvalidBloodGroup):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Donor registered successfully"})
}

// List handles GET /api/DonorList/:bloodGroup/:location.
//
// @Summary      List donors by blood group and location
// @Tags         donors
// @Produce      json
// @Param        bloodGroup  path      string  true  "Blood group (e.g. O+)"
// @Param        location    path      string  true  "Location"
// @Success      200         {array}   donorResponse
// @Failure      400         {object}  errorResponse
// @Router       /api/DonorList/{bloodGroup}/{location} [get]
func (h *DonorHandler) List(c echo.Context) error {
	bloodGroup := c.Param("bloodGroup")
	location := c.Param("location")

	donors, err := h.donorService.Match(c.Request().Context(), bloodGroup, location)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidBloodGroup) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid blood group"})
		}
		return err
	}

	return c.JSON(http.StatusOK, toDonorResponses(donors))
}
