package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/riskbee/riskbee-backend/internal/apierr"
	"github.com/riskbee/riskbee-backend/internal/services"
	"github.com/riskbee/riskbee-backend/internal/types"
)

// The hazard catalog is application-wide, so these endpoints never take a
// tenant scope; they still sit behind auth.
type HazardHandler struct {
	hazardService services.HazardService
}

func NewHazardHandler(hazardService services.HazardService) *HazardHandler {
	return &HazardHandler{hazardService: hazardService}
}

func (hh *HazardHandler) Create(c *gin.Context) {
	var req struct {
		FamiliaRiesgo    string `json:"familia_riesgo"`
		RiesgoEspecifico string `json:"riesgo_especifico"`
		Definicion       string `json:"definicion"`
		Codigo           string `json:"codigo"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, apierr.Validation("invalid request body"))
		return
	}
	hazard := &types.Hazard{
		FamiliaRiesgo:    req.FamiliaRiesgo,
		RiesgoEspecifico: req.RiesgoEspecifico,
		Definicion:       req.Definicion,
		Codigo:           req.Codigo,
	}
	created, err := hh.hazardService.Create(c.Request.Context(), hazard)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (hh *HazardHandler) List(c *gin.Context) {
	hazards, err := hh.hazardService.List(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, hazards)
}

func (hh *HazardHandler) Update(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req struct {
		FamiliaRiesgo    string `json:"familia_riesgo"`
		RiesgoEspecifico string `json:"riesgo_especifico"`
		Definicion       string `json:"definicion"`
		Codigo           string `json:"codigo"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, apierr.Validation("invalid request body"))
		return
	}
	hazard := &types.Hazard{
		ID:               id,
		FamiliaRiesgo:    req.FamiliaRiesgo,
		RiesgoEspecifico: req.RiesgoEspecifico,
		Definicion:       req.Definicion,
		Codigo:           req.Codigo,
	}
	updated, err := hh.hazardService.Update(c.Request.Context(), hazard)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, updated)
}

func (hh *HazardHandler) Delete(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := hh.hazardService.Delete(c.Request.Context(), id); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "hazard deleted"})
}
