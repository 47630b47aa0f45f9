package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/Madhesh0006/dbms-blood-donation-project/internal/core/domain"
	"github.com/Madhesh0006/dbms-blood-donation-project/internal/core/ports"
)

// RequestHandler handles blood requests and donor notification.
type RequestHandler struct {
	requestService ports.RequestService
	logger         zerolog.Logger
}

func NewRequestHandler(requestService ports.RequestService, logger zerolog.Logger) *RequestHandler {
	return &RequestHandler{requestService: requestService, logger: logger}
}

// Create handles POST /api/Requester.
//
// @Summary      Record a blood request
// @Tags         requests
// @Accept       json
// @Produce      plain
// @Param        body  body      bloodRequestBody  true  "Blood request details"
// @Success      200   {string}  string  "Registered and notified"
// @Failure      400   {object}  errorResponse
// @Router       /api/Requester [post]
func (h *RequestHandler) Create(c echo.Context) error {
	var req bloodRequestBody
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

	if _, err := h.requestService.Record(c.Request().Context(), input); err != nil {
		if errors.Is(err, domain.ErrInvalidBloodGroup) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid blood group"})
		}
		return err
	}

	return c.String(http.StatusOK, "Registered and notified")
}

// Notify handles POST /api/NotifyDonors.
//
// @Summary      Notify matching donors about a blood request
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        body  body      notifyDonorsRequest  true  "Matching criteria and request details"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/NotifyDonors [post]
func (h *RequestHandler) Notify(c echo.Context) error {
	var req notifyDonorsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	details, err := req.RequestDetails.toInput()
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid date format, expected YYYY-MM-DD"})
	}

	result, err := h.requestService.Notify(c.Request().Context(), ports.NotifyInput{
		BloodGroup: req.BloodGroup,
		Location:   req.Location,
		Details:    details,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidBloodGroup) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid blood group"})
		}
		h.logger.Error().Err(err).Msg("donor notification failed")
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to send notifications"})
	}

	h.logger.Info().
		Int("matched", result.Matched).
		Int("attempted", result.Attempted).
		Msg("donor notifications submitted")

	return c.JSON(http.StatusOK, messageResponse{Message: "Emails sent successfully to donors"})
}

// List handles GET /api/Requests (dashboard listing, token required).
//
// @Summary      List all recorded blood requests
// @Tags         requests
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   requestResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/Requests [get]
func (h *RequestHandler) List(c echo.Context) error {
	requests, err := h.requestService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRequestResponses(requests))
}

// RecordDonation handles POST /api/Donated.
//
// @Summary      Record a completed donation
// @Tags         donations
// @Accept       json
// @Produce      plain
// @Param        body  body      donationRequest  true  "Donation record"
// @Success      200   {string}  string  "The donated record is inserted"
// @Failure      400   {object}  errorResponse
// @Router       /api/Donated [post]
func (h *RequestHandler) RecordDonation(c echo.Context) error {
	var req donationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	_, err := h.requestService.RecordDonation(c.Request().Context(), ports.DonationInput{
		DonorName:      req.DonorName,
		DonorEmail:     req.DonorEmail,
		PatientName:    req.PatientName,
		RequesterEmail: req.RequesterEmail,
	})
	if err != nil {
		return err
	}

	return c.String(http.StatusOK, "The donated record is inserted")
}
