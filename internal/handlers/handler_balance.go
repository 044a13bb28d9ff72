package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/money_lending_ledger/internal/core/ports/services"
	"github.com/SscSPs/money_lending_ledger/internal/dto"
	"github.com/SscSPs/money_lending_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

type balanceHandler struct {
	balanceService  portssvc.BalanceSvc
	displayCurrency string
}

// RegisterBalanceRoutes registers the derived balance queries.
func RegisterBalanceRoutes(rg *gin.RouterGroup, balanceService portssvc.BalanceSvc, displayCurrency string) {
	h := &balanceHandler{balanceService: balanceService, displayCurrency: displayCurrency}

	balances := rg.Group("/balances")
	{
		balances.GET("/persons/:personID", h.getPersonBalance)
		balances.GET("/accounts/:accountID", h.getAccountBalance)
		balances.GET("/totals", h.getPersonTotals)
	}
}

// currency resolves the display currency of a request.
func (h *balanceHandler) currency(c *gin.Context) (string, bool) {
	var params dto.BalanceParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return "", false
	}
	if params.Currency == "" {
		return h.displayCurrency, true
	}
	return params.Currency, true
}

// getPersonBalance godoc
// @Summary Get a person's balances
// @Description Outstanding is what the person owes now; accountBalance includes settled history and net flows
// @Tags balances
// @Produce  json
// @Param   personID path string true "Person ID"
// @Param   currency query string false "Display currency (ISO 4217)"
// @Success 200 {object} dto.PersonBalanceResponse
// @Failure 500 {object} map[string]string "Event store unavailable"
// @Security BearerAuth
// @Router /balances/persons/{personID} [get]
func (h *balanceHandler) getPersonBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	currency, ok := h.currency(c)
	if !ok {
		return
	}

	balance, err := h.balanceService.GetPersonBalance(c.Request.Context(), c.Param("personID"))
	if err != nil {
		respondWithError(c, logger, err, "Failed to compute person balance")
		return
	}
	c.JSON(http.StatusOK, dto.ToPersonBalanceResponse(*balance, currency))
}

// getAccountBalance godoc
// @Summary Get an account's balances
// @Description Outstanding is the open lending position; ledgerBalance is net of transfer events
// @Tags balances
// @Produce  json
// @Param   accountID path string true "Account ID"
// @Param   currency query string false "Display currency (ISO 4217)"
// @Success 200 {object} dto.AccountBalanceResponse
// @Failure 500 {object} map[string]string "Event store unavailable"
// @Security BearerAuth
// @Router /balances/accounts/{accountID} [get]
func (h *balanceHandler) getAccountBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	currency, ok := h.currency(c)
	if !ok {
		return
	}

	balance, err := h.balanceService.GetAccountBalance(c.Request.Context(), c.Param("accountID"))
	if err != nil {
		respondWithError(c, logger, err, "Failed to compute account balance")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountBalanceResponse(*balance, currency))
}

// getPersonTotals godoc
// @Summary Aggregate lent and borrowed totals
// @Tags balances
// @Produce  json
// @Param   currency query string false "Display currency (ISO 4217)"
// @Success 200 {object} dto.PersonTotalsResponse
// @Security BearerAuth
// @Router /balances/totals [get]
func (h *balanceHandler) getPersonTotals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	currency, ok := h.currency(c)
	if !ok {
		return
	}

	totals, err := h.balanceService.GetPersonTotals(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to compute totals")
		return
	}
	c.JSON(http.StatusOK, dto.ToPersonTotalsResponse(*totals, currency))
}
