package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/money_lending_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/money_lending_ledger/internal/core/ports/services"
	"github.com/SscSPs/money_lending_ledger/internal/dto"
	"github.com/SscSPs/money_lending_ledger/internal/middleware"
	"github.com/SscSPs/money_lending_ledger/internal/utils/pagination"
	"github.com/gin-gonic/gin"
)

type historyHandler struct {
	historyService  portssvc.HistorySvc
	displayCurrency string
}

// RegisterHistoryRoutes registers the unified history route.
func RegisterHistoryRoutes(rg *gin.RouterGroup, historyService portssvc.HistorySvc, displayCurrency string) {
	h := &historyHandler{historyService: historyService, displayCurrency: displayCurrency}
	rg.GET("/history", h.getHistory)
}

func historyCursor(item domain.HistoryItem) (string, string) {
	return item.Date.String(), item.ID
}

// getHistory godoc
// @Summary Unified event history
// @Description Lending, transfer and net-flow events, newest first, with display labels and names
// @Tags history
// @Produce  json
// @Param   excludeArchived query bool false "Hide archived events" default(true)
// @Param   currency query string false "Display currency (ISO 4217)"
// @Param   limit query int false "Page size (1-500); all items when omitted"
// @Param   pageToken query string false "Token from a previous page"
// @Success 200 {object} dto.HistoryResponse
// @Failure 400 {object} map[string]string "Invalid query parameters or page token"
// @Security BearerAuth
// @Router /history [get]
func (h *historyHandler) getHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.HistoryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for GetHistory", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	currency := params.Currency
	if currency == "" {
		currency = h.displayCurrency
	}

	view, err := h.historyService.GetHistory(c.Request.Context(), params.ExcludeArchived)
	if err != nil {
		respondWithError(c, logger, err, "Failed to compose history")
		return
	}

	page, next, err := pagination.PageAfter(view.Items, params.Limit, params.PageToken, historyCursor)
	if err != nil {
		logger.Warn("Invalid history page token", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	view.Items = page

	resp := dto.ToHistoryResponse(*view, currency)
	resp.NextPageToken = next
	c.JSON(http.StatusOK, resp)
}
