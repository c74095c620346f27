package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/riskbee/riskbee-backend/internal/apierr"
	"github.com/riskbee/riskbee-backend/internal/services"
	"github.com/riskbee/riskbee-backend/internal/types"
)

type RiskHandler struct {
	riskService services.RiskService
}

func NewRiskHandler(riskService services.RiskService) *RiskHandler {
	return &RiskHandler{riskService: riskService}
}

func (rh *RiskHandler) Create(c *gin.Context) {
	s, ok := requestScope(c)
	if !ok {
		return
	}
	taskID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req struct {
		HazardID      string `json:"hazard_id"`
		Consecuencias string `json:"consecuencias"`
		Codigo        string `json:"codigo"`
		Esquema       string `json:"esquema"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, apierr.Validation("invalid request body"))
		return
	}
	hazardID, ok := parseUUIDField(c, req.HazardID, "hazard_id")
	if !ok {
		return
	}
	risk := &types.Risk{
		TaskID:        taskID,
		HazardID:      hazardID,
		Consecuencias: req.Consecuencias,
		Codigo:        req.Codigo,
		Esquema:       req.Esquema,
	}
	created, err := rh.riskService.Create(c.Request.Context(), s, risk)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (rh *RiskHandler) Get(c *gin.Context) {
	s, ok := requestScope(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	risk, err := rh.riskService.Get(c.Request.Context(), s, id)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, risk)
}

func (rh *RiskHandler) ListByTask(c *gin.Context) {
	s, ok := requestScope(c)
	if !ok {
		return
	}
	taskID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	risks, err := rh.riskService.ListByTask(c.Request.Context(), s, taskID)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, risks)
}

func (rh *RiskHandler) Evaluate(c *gin.Context) {
	s, ok := requestScope(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var input services.EvaluateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, apierr.Validation("invalid request body"))
		return
	}
	risk, err := rh.riskService.Evaluate(c.Request.Context(), s, id, input)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, risk)
}

func (rh *RiskHandler) Delete(c *gin.Context) {
	s, ok := requestScope(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := rh.riskService.Delete(c.Request.Context(), s, id); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "risk deleted"})
}

func (rh *RiskHandler) AddControlMeasure(c *gin.Context) {
	s, ok := requestScope(c)
	if !ok {
		return
	}
	riskID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req struct {
		Descripcion         string     `json:"descripcion"`
		TipoControl         string     `json:"tipo_control"`
		Responsable         string     `json:"responsable"`
		PlazoImplementacion *time.Time `json:"plazo_implementacion"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, apierr.Validation("invalid request body"))
		return
	}
	measure := &types.ControlMeasure{
		RiskID:              riskID,
		Descripcion:         req.Descripcion,
		TipoControl:         req.TipoControl,
		Responsable:         req.Responsable,
		PlazoImplementacion: req.PlazoImplementacion,
	}
	created, err := rh.riskService.AddControlMeasure(c.Request.Context(), s, measure)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (rh *RiskHandler) ListControlMeasures(c *gin.Context) {
	s, ok := requestScope(c)
	if !ok {
		return
	}
	riskID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	measures, err := rh.riskService.ListControlMeasures(c.Request.Context(), s, riskID)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, measures)
}

func (rh *RiskHandler) DeleteControlMeasure(c *gin.Context) {
	s, ok := requestScope(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := rh.riskService.DeleteControlMeasure(c.Request.Context(), s, id); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "control measure deleted"})
}
