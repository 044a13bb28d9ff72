package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/money_lending_ledger/internal/core/ports/services"
	"github.com/SscSPs/money_lending_ledger/internal/dto"
	"github.com/SscSPs/money_lending_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// eventHandler exposes the append-only event write paths.
type eventHandler struct {
	eventService portssvc.EventSvcFacade
}

// RegisterEventRoutes registers lending, transfer and net-flow routes.
func RegisterEventRoutes(rg *gin.RouterGroup, eventService portssvc.EventSvcFacade) {
	h := &eventHandler{eventService: eventService}

	lendings := rg.Group("/lendings")
	{
		lendings.POST("", h.recordLending)
		lendings.PATCH("/:eventID/archive", h.setLendingArchived)
		lendings.PATCH("/:eventID/returned", h.setLendingReturned)
	}

	transfers := rg.Group("/transfers")
	{
		transfers.POST("", h.recordTransfer)
		transfers.PATCH("/:eventID/archive", h.setTransferArchived)
	}

	rg.POST("/net-flows", h.recordNetFlow)
}

// recordLending godoc
// @Summary Record a lend, borrow or return
// @Description The counterparty may be a person or another account. A legacy personId is accepted.
// @Tags events
// @Accept  json
// @Produce  json
// @Param   event body dto.CreateLendingEventRequest true "Lending event"
// @Success 201 {object} domain.LendingEvent
// @Failure 400 {object} map[string]string "Invalid input, unknown or archived reference"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /lendings [post]
func (h *eventHandler) recordLending(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateLendingEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordLendingEvent", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	event, err := h.eventService.RecordLendingEvent(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to record lending event")
		return
	}
	logger.Info("Lending event recorded", slog.String("event_id", event.ID), slog.String("type", string(event.Type)))
	c.JSON(http.StatusCreated, event)
}

// setLendingArchived godoc
// @Summary Archive or restore a lending event
// @Tags events
// @Accept  json
// @Produce  json
// @Param   eventID path string true "Event ID"
// @Param   archive body dto.ArchiveRequest true "Archive flag"
// @Success 200 {object} domain.LendingEvent
// @Failure 404 {object} map[string]string "Event not found"
// @Security BearerAuth
// @Router /lendings/{eventID}/archive [patch]
func (h *eventHandler) setLendingArchived(c *gin.Context) {
	eventID := c.Param("eventID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("event_id", eventID))

	var req dto.ArchiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	event, err := h.eventService.SetLendingEventArchived(c.Request.Context(), eventID, *req.Archived, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to update lending event")
		return
	}
	c.JSON(http.StatusOK, event)
}

// setLendingReturned godoc
// @Summary Mark a lend or borrow as returned
// @Description Returned events stop counting toward outstanding balances
// @Tags events
// @Accept  json
// @Produce  json
// @Param   eventID path string true "Event ID"
// @Param   returned body dto.SetReturnedRequest true "Returned flag"
// @Success 200 {object} domain.LendingEvent
// @Failure 400 {object} map[string]string "Return events cannot be marked returned"
// @Failure 404 {object} map[string]string "Event not found"
// @Security BearerAuth
// @Router /lendings/{eventID}/returned [patch]
func (h *eventHandler) setLendingReturned(c *gin.Context) {
	eventID := c.Param("eventID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("event_id", eventID))

	var req dto.SetReturnedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	event, err := h.eventService.SetLendingEventReturned(c.Request.Context(), eventID, *req.Returned, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to update lending event")
		return
	}
	c.JSON(http.StatusOK, event)
}

// recordTransfer godoc
// @Summary Record an account transfer or adjustment
// @Tags events
// @Accept  json
// @Produce  json
// @Param   event body dto.CreateTransferEventRequest true "Transfer event"
// @Success 201 {object} domain.AccountTransferEvent
// @Failure 400 {object} map[string]string "Invalid input, unknown or archived account"
// @Security BearerAuth
// @Router /transfers [post]
func (h *eventHandler) recordTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransferEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordTransferEvent", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	event, err := h.eventService.RecordTransferEvent(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to record transfer event")
		return
	}
	logger.Info("Transfer event recorded", slog.String("event_id", event.ID), slog.String("type", string(event.Type)))
	c.JSON(http.StatusCreated, event)
}

// setTransferArchived godoc
// @Summary Archive or restore a transfer event
// @Tags events
// @Accept  json
// @Produce  json
// @Param   eventID path string true "Event ID"
// @Param   archive body dto.ArchiveRequest true "Archive flag"
// @Success 200 {object} domain.AccountTransferEvent
// @Failure 404 {object} map[string]string "Event not found"
// @Security BearerAuth
// @Router /transfers/{eventID}/archive [patch]
func (h *eventHandler) setTransferArchived(c *gin.Context) {
	eventID := c.Param("eventID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("event_id", eventID))

	var req dto.ArchiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	event, err := h.eventService.SetTransferEventArchived(c.Request.Context(), eventID, *req.Archived, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to update transfer event")
		return
	}
	c.JSON(http.StatusOK, event)
}

// recordNetFlow godoc
// @Summary Record a net deposit or withdrawal with a person
// @Tags events
// @Accept  json
// @Produce  json
// @Param   event body dto.CreateNetFlowEventRequest true "Net flow event"
// @Success 201 {object} domain.PersonNetFlowEvent
// @Failure 400 {object} map[string]string "Invalid input, unknown or archived person"
// @Security BearerAuth
// @Router /net-flows [post]
func (h *eventHandler) recordNetFlow(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateNetFlowEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	event, err := h.eventService.RecordNetFlowEvent(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to record net flow event")
		return
	}
	logger.Info("Net flow event recorded", slog.String("event_id", event.ID))
	c.JSON(http.StatusCreated, event)
}
