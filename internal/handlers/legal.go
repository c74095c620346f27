package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/riskbee/riskbee-backend/internal/apierr"
	"github.com/riskbee/riskbee-backend/internal/services"
	"github.com/riskbee/riskbee-backend/internal/types"
)

type LegalHandler struct {
	legalService services.LegalService
}

func NewLegalHandler(legalService services.LegalService) *LegalHandler {
	return &LegalHandler{legalService: legalService}
}

func (lh *LegalHandler) Create(c *gin.Context) {
	s, ok := requestScope(c)
	if !ok {
		return
	}
	companyID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req struct {
		RegulationID      string    `json:"regulation_id"`
		NombreObligacion  string    `json:"nombre_obligacion"`
		Descripcion       string    `json:"descripcion"`
		FechaInicio       time.Time `json:"fecha_inicio"`
		Frecuencia        string    `json:"frecuencia"`
		Responsable       string    `json:"responsable"`
		NotificacionEmail string    `json:"notificacion_email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, apierr.Validation("invalid request body"))
		return
	}
	task := &types.LegalTask{
		CompanyID:         companyID,
		NombreObligacion:  req.NombreObligacion,
		Descripcion:       req.Descripcion,
		FechaInicio:       req.FechaInicio,
		Frecuencia:        req.Frecuencia,
		Responsable:       req.Responsable,
		NotificacionEmail: req.NotificacionEmail,
	}
	if req.RegulationID != "" {
		regulationID, ok := parseUUIDField(c, req.RegulationID, "regulation_id")
		if !ok {
			return
		}
		task.RegulationID = &regulationID
	}
	created, err := lh.legalService.Create(c.Request.Context(), s, task)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (lh *LegalHandler) ListByCompany(c *gin.Context) {
	s, ok := requestScope(c)
	if !ok {
		return
	}
	companyID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	tasks, err := lh.legalService.ListByCompany(c.Request.Context(), s, companyID)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, tasks)
}

func (lh *LegalHandler) Complete(c *gin.Context) {
	s, ok := requestScope(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	task, err := lh.legalService.Complete(c.Request.Context(), s, id)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, task)
}

func (lh *LegalHandler) Delete(c *gin.Context) {
	s, ok := requestScope(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := lh.legalService.Delete(c.Request.Context(), s, id); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "legal task deleted"})
}

func (lh *LegalHandler) CreateRegulation(c *gin.Context) {
	var req struct {
		Nombre      string `json:"nombre"`
		Descripcion string `json:"descripcion"`
		Enlace      string `json:"enlace"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, apierr.Validation("invalid request body"))
		return
	}
	regulation := &types.Regulation{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		Enlace:      req.Enlace,
	}
	created, err := lh.legalService.CreateRegulation(c.Request.Context(), regulation)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (lh *LegalHandler) ListRegulations(c *gin.Context) {
	regulations, err := lh.legalService.ListRegulations(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, regulations)
}
