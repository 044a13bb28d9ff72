package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/money_lending_ledger/internal/core/ports/services"
	"github.com/SscSPs/money_lending_ledger/internal/dto"
	"github.com/SscSPs/money_lending_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

type personHandler struct {
	personService portssvc.PersonSvcFacade
}

// RegisterPersonRoutes registers routes related to persons.
func RegisterPersonRoutes(rg *gin.RouterGroup, personService portssvc.PersonSvcFacade) {
	h := &personHandler{personService: personService}

	persons := rg.Group("/persons")
	{
		persons.POST("", h.createPerson)
		persons.GET("", h.listPersons)
		persons.GET("/:personID", h.getPerson)
		persons.PATCH("/:personID/archive", h.setArchived)
	}
}

// createPerson godoc
// @Summary Register a person
// @Tags persons
// @Accept  json
// @Produce  json
// @Param   person body dto.CreatePersonRequest true "Person details"
// @Success 201 {object} dto.PersonResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /persons [post]
func (h *personHandler) createPerson(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePerson", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	person, err := h.personService.CreatePerson(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create person")
		return
	}
	logger.Info("Person created successfully", slog.String("person_id", person.ID))
	c.JSON(http.StatusCreated, dto.ToPersonResponse(person))
}

// getPerson godoc
// @Summary Get a person by ID
// @Tags persons
// @Produce  json
// @Param   personID path string true "Person ID"
// @Success 200 {object} dto.PersonResponse
// @Failure 404 {object} map[string]string "Person not found"
// @Security BearerAuth
// @Router /persons/{personID} [get]
func (h *personHandler) getPerson(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("person_id", c.Param("personID")))

	person, err := h.personService.GetPersonByID(c.Request.Context(), c.Param("personID"))
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve person")
		return
	}
	c.JSON(http.StatusOK, dto.ToPersonResponse(person))
}

// listPersons godoc
// @Summary List persons
// @Tags persons
// @Produce  json
// @Param   includeArchived query bool false "Include archived persons"
// @Success 200 {object} dto.ListPersonsResponse
// @Security BearerAuth
// @Router /persons [get]
func (h *personHandler) listPersons(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	persons, err := h.personService.ListPersons(c.Request.Context(), params.IncludeArchived)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list persons")
		return
	}
	c.JSON(http.StatusOK, dto.ListPersonsResponse{Persons: dto.ToListPersonResponse(persons)})
}

// setArchived godoc
// @Summary Archive or restore a person
// @Description Archived persons drop out of aggregate totals and cannot take new events
// @Tags persons
// @Accept  json
// @Produce  json
// @Param   personID path string true "Person ID"
// @Param   archive body dto.ArchiveRequest true "Archive flag"
// @Success 200 {object} dto.PersonResponse
// @Failure 404 {object} map[string]string "Person not found"
// @Security BearerAuth
// @Router /persons/{personID}/archive [patch]
func (h *personHandler) setArchived(c *gin.Context) {
	personID := c.Param("personID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("person_id", personID))

	var req dto.ArchiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	person, err := h.personService.SetPersonArchived(c.Request.Context(), personID, *req.Archived, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to update person")
		return
	}
	c.JSON(http.StatusOK, dto.ToPersonResponse(person))
}
