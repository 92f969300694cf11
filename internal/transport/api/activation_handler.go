package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/azuraxkenya/megaon/internal/domain"
	"github.com/azuraxkenya/megaon/internal/transport/activation"
)

type ActivationHandler struct {
	mgr ActivationManager
}

func NewActivationHandler(mgr ActivationManager) *ActivationHandler {
	return &ActivationHandler{
		mgr: mgr,
	}
}

type ActivationResponse struct {
	Step              string `json:"step"`
	CheckoutRequestID string `json:"checkoutRequestId,omitempty"`
	Message           string `json:"message,omitempty"`
	Deadline          string `json:"deadline,omitempty"`
}

func newActivationResponse(snap activation.Snapshot) ActivationResponse {
	response := ActivationResponse{
		Step:              string(snap.Step),
		CheckoutRequestID: snap.CheckoutRequestID,
		Message:           snap.Message,
	}
	if !snap.Deadline.IsZero() {
		response.Deadline = snap.Deadline.Format(time.RFC3339)
	}
	return response
}

func abortActivationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrAlreadyActivated):
		_ = c.AbortWithError(http.StatusConflict, errors.New("account already activated")).
			SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrActivationInProgress):
		_ = c.AbortWithError(http.StatusConflict, errors.New("activation already in progress")).
			SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrNoActivationSession):
		_ = c.AbortWithError(http.StatusNotFound, errors.New("no activation session")).
			SetType(gin.ErrorTypePublic)
	default:
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
	}
}

// Start POST RouteGroup + ActivationRoute. Начинает сессию активации: шлет STK push на
// телефон юзера и открывает окно подтверждения оплаты.
func (h *ActivationHandler) Start(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	snap, err := h.mgr.Start(reqCtx, currentUserID)
	if err != nil {
		abortActivationError(c, err)
		return
	}

	c.JSON(http.StatusOK, newActivationResponse(snap))
}

// Status GET RouteGroup + ActivationRoute. Снимок текущей сессии активации.
func (h *ActivationHandler) Status(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	snap, err := h.mgr.Status(currentUserID)
	if err != nil {
		abortActivationError(c, err)
		return
	}

	c.JSON(http.StatusOK, newActivationResponse(snap))
}

// Confirm POST RouteGroup + ActivationConfirm. Юзер сообщил что ввел PIN: форсируем
// немедленный опрос статуса оплаты.
func (h *ActivationHandler) Confirm(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	snap, err := h.mgr.Confirm(currentUserID)
	if err != nil {
		abortActivationError(c, err)
		return
	}

	c.JSON(http.StatusOK, newActivationResponse(snap))
}

// ReportMissing POST RouteGroup + ActivationReport. Юзер сообщил что промпт оплаты не пришел.
func (h *ActivationHandler) ReportMissing(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	snap, err := h.mgr.ReportMissing(currentUserID)
	if err != nil {
		abortActivationError(c, err)
		return
	}

	c.JSON(http.StatusOK, newActivationResponse(snap))
}

// Retry POST RouteGroup + ActivationRetry. Новая попытка после неуспешной сессии.
func (h *ActivationHandler) Retry(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	snap, err := h.mgr.Retry(reqCtx, currentUserID)
	if err != nil {
		abortActivationError(c, err)
		return
	}

	c.JSON(http.StatusOK, newActivationResponse(snap))
}

// Cancel DELETE RouteGroup + ActivationRoute. Отменяет сессию без эффектов в леджере.
func (h *ActivationHandler) Cancel(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	h.mgr.Cancel(currentUserID)

	c.AbortWithStatus(http.StatusNoContent)
}
