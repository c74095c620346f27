package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/riskbee/riskbee-backend/internal/apierr"
	"github.com/riskbee/riskbee-backend/internal/services"
	"github.com/riskbee/riskbee-backend/internal/types"
)

type AgendaHandler struct {
	agendaService services.AgendaService
}

func NewAgendaHandler(agendaService services.AgendaService) *AgendaHandler {
	return &AgendaHandler{agendaService: agendaService}
}

func (ah *AgendaHandler) CreateVisit(c *gin.Context) {
	s, ok := requestScope(c)
	if !ok {
		return
	}
	companyID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req struct {
		Asunto      string    `json:"asunto"`
		Descripcion string    `json:"descripcion"`
		FechaHora   time.Time `json:"fecha_hora"`
		Estado      string    `json:"estado"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, apierr.Validation("invalid request body"))
		return
	}
	visit := &types.Visit{
		CompanyID:   companyID,
		Asunto:      req.Asunto,
		Descripcion: req.Descripcion,
		FechaHora:   req.FechaHora,
		Estado:      req.Estado,
	}
	created, err := ah.agendaService.CreateVisit(c.Request.Context(), s, visit)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (ah *AgendaHandler) ListVisits(c *gin.Context) {
	s, ok := requestScope(c)
	if !ok {
		return
	}
	companyID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	visits, err := ah.agendaService.ListVisits(c.Request.Context(), s, companyID)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, visits)
}

func (ah *AgendaHandler) UpdateVisitState(c *gin.Context) {
	s, ok := requestScope(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req struct {
		Estado string `json:"estado"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, apierr.Validation("invalid request body"))
		return
	}
	visit, err := ah.agendaService.UpdateVisitState(c.Request.Context(), s, id, req.Estado)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, visit)
}

func (ah *AgendaHandler) DeleteVisit(c *gin.Context) {
	s, ok := requestScope(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := ah.agendaService.DeleteVisit(c.Request.Context(), s, id); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "visit deleted"})
}

func (ah *AgendaHandler) CreateReminder(c *gin.Context) {
	s, ok := requestScope(c)
	if !ok {
		return
	}
	var req struct {
		Titulo      string    `json:"titulo"`
		Descripcion string    `json:"descripcion"`
		FechaHora   time.Time `json:"fecha_hora"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, apierr.Validation("invalid request body"))
		return
	}
	reminder := &types.Reminder{
		Titulo:      req.Titulo,
		Descripcion: req.Descripcion,
		FechaHora:   req.FechaHora,
	}
	created, err := ah.agendaService.CreateReminder(c.Request.Context(), s, reminder)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (ah *AgendaHandler) ListReminders(c *gin.Context) {
	s, ok := requestScope(c)
	if !ok {
		return
	}
	reminders, err := ah.agendaService.ListReminders(c.Request.Context(), s)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, reminders)
}

func (ah *AgendaHandler) DeleteReminder(c *gin.Context) {
	s, ok := requestScope(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := ah.agendaService.DeleteReminder(c.Request.Context(), s, id); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "reminder deleted"})
}
