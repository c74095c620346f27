package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/riskbee/riskbee-backend/internal/apierr"
	"github.com/riskbee/riskbee-backend/internal/services"
	"github.com/riskbee/riskbee-backend/internal/types"
)

type IperHandler struct {
	iperService services.IperService
}

func NewIperHandler(iperService services.IperService) *IperHandler {
	return &IperHandler{iperService: iperService}
}

func (ih *IperHandler) CreateMatrix(c *gin.Context) {
	s, ok := requestScope(c)
	if !ok {
		return
	}
	var req struct {
		CompanyID    string     `json:"company_id"`
		Codigo       string     `json:"codigo"`
		Version      string     `json:"version"`
		ElaboradoPor string     `json:"elaborado_por"`
		RevisadoPor  string     `json:"revisado_por"`
		AprobadoPor  string     `json:"aprobado_por"`
		Fecha        *time.Time `json:"fecha"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, apierr.Validation("invalid request body"))
		return
	}
	companyID, ok := parseUUIDField(c, req.CompanyID, "company_id")
	if !ok {
		return
	}
	matrix := &types.IperMatrix{
		CompanyID:    companyID,
		Codigo:       req.Codigo,
		Version:      req.Version,
		ElaboradoPor: req.ElaboradoPor,
		RevisadoPor:  req.RevisadoPor,
		AprobadoPor:  req.AprobadoPor,
		Fecha:        req.Fecha,
	}
	created, err := ih.iperService.CreateMatrix(c.Request.Context(), s, matrix)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (ih *IperHandler) GetMatrix(c *gin.Context) {
	s, ok := requestScope(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	matrix, err := ih.iperService.GetMatrix(c.Request.Context(), s, id)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, matrix)
}

func (ih *IperHandler) ListMatrices(c *gin.Context) {
	s, ok := requestScope(c)
	if !ok {
		return
	}
	companyID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	matrices, err := ih.iperService.ListMatrices(c.Request.Context(), s, companyID)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, matrices)
}

func (ih *IperHandler) DeleteMatrix(c *gin.Context) {
	s, ok := requestScope(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := ih.iperService.DeleteMatrix(c.Request.Context(), s, id); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "iper matrix deleted"})
}

func (ih *IperHandler) ListRows(c *gin.Context) {
	s, ok := requestScope(c)
	if !ok {
		return
	}
	matrixID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	rows, err := ih.iperService.ListRows(c.Request.Context(), s, matrixID)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, rows)
}

func (ih *IperHandler) DeleteRow(c *gin.Context) {
	s, ok := requestScope(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := ih.iperService.DeleteRow(c.Request.Context(), s, id); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "iper row deleted"})
}

// UpdateCell is the grid's single write endpoint: one field of one row,
// with "new" as the row id when the edit should create the row first.
// The grid keys on status and message, so errors answer in the same shape
// instead of the standard envelope.
func (ih *IperHandler) UpdateCell(c *gin.Context) {
	s, ok := requestScope(c)
	if !ok {
		return
	}
	matrixID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req struct {
		RowID string      `json:"row_id"`
		Field string      `json:"field"`
		Value interface{} `json:"value"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid request body"})
		return
	}
	result, err := ih.iperService.UpdateCell(c.Request.Context(), s, matrixID, req.RowID, req.Field, req.Value)
	if err != nil {
		ae := apierr.As(err)
		c.JSON(ae.Status, gin.H{"status": "error", "message": ae.Error()})
		return
	}
	resp := gin.H{"status": result.Status}
	if result.ID != uuid.Nil {
		resp["id"] = result.ID
	}
	c.JSON(http.StatusOK, resp)
}
