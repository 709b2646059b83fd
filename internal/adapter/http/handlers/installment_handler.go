package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	request "aventura_tours/internal/adapter/http/dto/request"
	response "aventura_tours/internal/adapter/http/dto/response"
	"aventura_tours/internal/domain/finance"
	"aventura_tours/internal/usecase"
	"aventura_tours/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidInstallmentPayload = pkg.NewDomainErrorSimple("INVALID_INSTALLMENT_INPUT", "Invalid installment payload", http.StatusBadRequest)

// InstallmentHandler handles HTTP requests for payment installments.

type InstallmentHandler struct {
	usecase usecase.IInstallmentUseCase
}

func NewInstallmentHandler(uc usecase.IInstallmentUseCase) *InstallmentHandler {
	return &InstallmentHandler{usecase: uc}
}

// CreateInstallment schedules a new installment for a reservation.
func (h *InstallmentHandler) CreateInstallment(c *gin.Context) {
	var payload request.InstallmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInstallmentPayload.HTTPStatus, errInvalidInstallmentPayload.ToHTTPError())
		return
	}

	amount, err := payload.ResolveAmount()
	if err != nil {
		c.JSON(errInvalidInstallmentPayload.HTTPStatus, errInvalidInstallmentPayload.ToHTTPError())
		return
	}
	dueDate, err := payload.ResolveDueDate()
	if err != nil {
		c.JSON(errInvalidInstallmentPayload.HTTPStatus, errInvalidInstallmentPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), usecase.CreateInstallmentCommand{
		ReservationID: payload.ReservationID,
		Amount:        amount,
		DueDate:       dueDate,
		Status:        payload.Status,
	})
	if err != nil {
		appErr := mapInstallmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromInstallment(created))
}

// GetInstallment returns a single installment by id.
func (h *InstallmentHandler) GetInstallment(c *gin.Context) {
	inst, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapInstallmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInstallment(inst))
}

// ListReservationInstallments returns every installment of a reservation.
func (h *InstallmentHandler) ListReservationInstallments(c *gin.Context) {
	insts, err := h.usecase.ListByReservationID(c.Request.Context(), c.Param("reservation_id"))
	if err != nil {
		appErr := mapInstallmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInstallments(insts))
}

// UpdateInstallment changes an installment's amount and due date.
func (h *InstallmentHandler) UpdateInstallment(c *gin.Context) {
	var payload request.InstallmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInstallmentPayload.HTTPStatus, errInvalidInstallmentPayload.ToHTTPError())
		return
	}

	amount, err := payload.ResolveAmount()
	if err != nil {
		c.JSON(errInvalidInstallmentPayload.HTTPStatus, errInvalidInstallmentPayload.ToHTTPError())
		return
	}
	dueDate, err := payload.ResolveDueDate()
	if err != nil {
		c.JSON(errInvalidInstallmentPayload.HTTPStatus, errInvalidInstallmentPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), usecase.UpdateInstallmentCommand{
		ID:      c.Param("id"),
		Amount:  amount,
		DueDate: dueDate,
	})
	if err != nil {
		appErr := mapInstallmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInstallment(updated))
}

// DeleteInstallment removes an installment. PAID rows are retained by rule.
func (h *InstallmentHandler) DeleteInstallment(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapInstallmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// PayInstallment charges the installment through the payment gateway and
// marks it PAID.
func (h *InstallmentHandler) PayInstallment(c *gin.Context) {
	id := c.Param("id")
	payload, err := readPaymentPayload(c)
	if err != nil {
		log.Printf("[installment][handler] invalid payment payload id=%s err=%v", id, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	paid, err := h.usecase.MarkAsPaid(c.Request.Context(), id, payload)
	if err != nil {
		log.Printf("[installment][handler] pay failed id=%s err=%v", id, err)
		appErr := mapInstallmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInstallment(paid))
}

// CancelInstallment marks the installment CANCELLED.
func (h *InstallmentHandler) CancelInstallment(c *gin.Context) {
	cancelled, err := h.usecase.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapInstallmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInstallment(cancelled))
}

// GetTotalDue returns the amount owed today, late fee included.
func (h *InstallmentHandler) GetTotalDue(c *gin.Context) {
	id := c.Param("id")
	today := time.Now().UTC()

	total, err := h.usecase.TotalDue(c.Request.Context(), id, today)
	if err != nil {
		appErr := mapInstallmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.TotalDueResponse{
		InstallmentID: id,
		AsOf:          today.Format("2006-01-02"),
		TotalDue:      total.StringFixed(2),
	})
}

// RunOverdueSweep triggers the overdue recompute job on demand.
func (h *InstallmentHandler) RunOverdueSweep(c *gin.Context) {
	flagged, err := h.usecase.SweepOverdue(c.Request.Context(), time.Now().UTC())
	if err != nil {
		appErr := mapInstallmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.JobRunResponse{Job: "overdue-sweep", Processed: flagged})
}

// RunReminders triggers the reminder job on demand.
func (h *InstallmentHandler) RunReminders(c *gin.Context) {
	sent, err := h.usecase.SendDueReminders(c.Request.Context(), time.Now().UTC())
	if err != nil {
		appErr := mapInstallmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.JobRunResponse{Job: "reminders", Processed: sent})
}

func readPaymentPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}
	return json.RawMessage(raw), nil
}

func mapInstallmentError(err error) *pkg.AppError {
	var ve *usecase.ValidationError
	switch {
	case errors.As(err, &ve):
		return pkg.NewDomainErrorSimple("VALIDATION_FAILED", "Installment validation failed", http.StatusBadRequest).WithDetails(ve.Violations)
	case errors.Is(err, usecase.ErrInvalidInstallmentID), errors.Is(err, usecase.ErrInvalidReservationID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInstallmentNotFound):
		return pkg.NewDomainErrorSimple("INSTALLMENT_NOT_FOUND", "Installment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInstallmentClosed), errors.Is(err, finance.ErrIllegalTransition):
		return pkg.NewDomainErrorSimple("INSTALLMENT_CLOSED", "Installment is in a terminal state", http.StatusConflict)
	case errors.Is(err, finance.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Unknown installment status", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
