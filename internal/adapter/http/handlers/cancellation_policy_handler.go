package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "aventura_tours/internal/adapter/http/dto/request"
	response "aventura_tours/internal/adapter/http/dto/response"
	"aventura_tours/internal/domain/entities"
	"aventura_tours/internal/domain/finance"
	"aventura_tours/internal/usecase"
	"aventura_tours/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPolicyPayload = pkg.NewDomainErrorSimple("INVALID_POLICY_INPUT", "Invalid cancellation policy payload", http.StatusBadRequest)

// CancellationPolicyHandler handles HTTP requests for cancellation policies
// and refund quotes.

type CancellationPolicyHandler struct {
	usecase usecase.ICancellationPolicyUseCase
}

func NewCancellationPolicyHandler(uc usecase.ICancellationPolicyUseCase) *CancellationPolicyHandler {
	return &CancellationPolicyHandler{usecase: uc}
}

// CreatePolicy registers a new refund rule.
func (h *CancellationPolicyHandler) CreatePolicy(c *gin.Context) {
	var payload request.CancellationPolicyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPolicyPayload.HTTPStatus, errInvalidPolicyPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), entities.CancellationPolicy{
		Name:             payload.Name,
		Description:      payload.Description,
		RefundPercentage: payload.RefundPercentage,
		DaysBeforeTour:   payload.DaysBeforeTour,
	})
	if err != nil {
		appErr := mapPolicyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCancellationPolicy(created))
}

// GetPolicy returns one policy by id.
func (h *CancellationPolicyHandler) GetPolicy(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPolicyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCancellationPolicy(p))
}

// ListPolicies returns all policies.
func (h *CancellationPolicyHandler) ListPolicies(c *gin.Context) {
	ps, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapPolicyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCancellationPolicies(ps))
}

// RecommendPolicy picks the best eligible policy for the customer's notice.
func (h *CancellationPolicyHandler) RecommendPolicy(c *gin.Context) {
	daysBeforeTrip, err := strconv.Atoi(c.Query("days_before_trip"))
	if err != nil || daysBeforeTrip < 0 {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "days_before_trip must be a non-negative integer", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	best, err := h.usecase.Recommend(c.Request.Context(), daysBeforeTrip)
	if err != nil {
		appErr := mapPolicyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCancellationPolicy(best))
}

// QuoteRefund computes the refund a cancellation would produce under one
// policy.
func (h *CancellationPolicyHandler) QuoteRefund(c *gin.Context) {
	var payload request.RefundRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPolicyPayload.HTTPStatus, errInvalidPolicyPayload.ToHTTPError())
		return
	}

	totalAmount, err := payload.ResolveTotalAmount()
	if err != nil {
		c.JSON(errInvalidPolicyPayload.HTTPStatus, errInvalidPolicyPayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.Refund(c.Request.Context(), c.Param("id"), totalAmount, payload.DaysRemaining)
	if err != nil {
		appErr := mapPolicyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRefundQuote(quote))
}

func mapPolicyError(err error) *pkg.AppError {
	var ve *usecase.ValidationError
	switch {
	case errors.As(err, &ve):
		return pkg.NewDomainErrorSimple("VALIDATION_FAILED", "Cancellation policy validation failed", http.StatusBadRequest).WithDetails(ve.Violations)
	case errors.Is(err, usecase.ErrInvalidPolicyID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPolicyAlreadyExists):
		return pkg.NewDomainErrorSimple("POLICY_ALREADY_EXISTS", "Cancellation policy name already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrPolicyNotFound):
		return pkg.NewDomainErrorSimple("POLICY_NOT_FOUND", "Cancellation policy not found", http.StatusNotFound)
	case errors.Is(err, finance.ErrNoEligiblePolicy):
		return pkg.NewDomainErrorSimple("NO_ELIGIBLE_POLICY", "No cancellation policy is eligible for this notice", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
