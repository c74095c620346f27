package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/riskbee/riskbee-backend/internal/apierr"
	"github.com/riskbee/riskbee-backend/internal/services"
	"github.com/riskbee/riskbee-backend/internal/types"
)

type AccidentHandler struct {
	accidentService services.AccidentService
}

func NewAccidentHandler(accidentService services.AccidentService) *AccidentHandler {
	return &AccidentHandler{accidentService: accidentService}
}

func (ah *AccidentHandler) CreateReport(c *gin.Context) {
	s, ok := requestScope(c)
	if !ok {
		return
	}
	companyID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req struct {
		AreaDepartamento    string    `json:"area_departamento"`
		SupervisorResp      string    `json:"supervisor_responsable"`
		NombreAccidentado   string    `json:"nombre_accidentado"`
		RutAccidentado      string    `json:"rut_accidentado"`
		CargoAccidentado    string    `json:"cargo_accidentado"`
		Turno               string    `json:"turno"`
		DescripcionEvento   string    `json:"descripcion_evento"`
		LugarExacto         string    `json:"lugar_exacto"`
		FechaAccidente      time.Time `json:"fecha_accidente"`
		TipoAccidente       string    `json:"tipo_accidente"`
		Severidad           string    `json:"clasificacion_severidad"`
		DanioPropiedad      bool      `json:"danio_propiedad"`
		DetalleDanio        string    `json:"detalle_danio_propiedad"`
		TipoLesion          string    `json:"tipo_lesion"`
		ParteCuerpoAfectada string    `json:"parte_cuerpo_afectada"`
		TratamientoInicial  string    `json:"tratamiento_inicial"`
		CausasInmediatas    string    `json:"causas_inmediatas"`
		MedidasInmediatas   string    `json:"medidas_inmediatas"`
		EvidenciaBucketKey  string    `json:"evidencia_bucket_key"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, apierr.Validation("invalid request body"))
		return
	}
	report := &types.AccidentReport{
		CompanyID:           companyID,
		AreaDepartamento:    req.AreaDepartamento,
		SupervisorResp:      req.SupervisorResp,
		NombreAccidentado:   req.NombreAccidentado,
		RutAccidentado:      req.RutAccidentado,
		CargoAccidentado:    req.CargoAccidentado,
		Turno:               req.Turno,
		DescripcionEvento:   req.DescripcionEvento,
		LugarExacto:         req.LugarExacto,
		FechaAccidente:      req.FechaAccidente,
		TipoAccidente:       req.TipoAccidente,
		Severidad:           req.Severidad,
		DanioPropiedad:      req.DanioPropiedad,
		DetalleDanio:        req.DetalleDanio,
		TipoLesion:          req.TipoLesion,
		ParteCuerpoAfectada: req.ParteCuerpoAfectada,
		TratamientoInicial:  req.TratamientoInicial,
		CausasInmediatas:    req.CausasInmediatas,
		MedidasInmediatas:   req.MedidasInmediatas,
		EvidenciaBucketKey:  req.EvidenciaBucketKey,
	}
	created, err := ah.accidentService.CreateReport(c.Request.Context(), s, report)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (ah *AccidentHandler) GetReport(c *gin.Context) {
	s, ok := requestScope(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	report, err := ah.accidentService.GetReport(c.Request.Context(), s, id)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, report)
}

func (ah *AccidentHandler) ListReports(c *gin.Context) {
	s, ok := requestScope(c)
	if !ok {
		return
	}
	companyID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	reports, err := ah.accidentService.ListReports(c.Request.Context(), s, companyID)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, reports)
}

func (ah *AccidentHandler) GetInvestigation(c *gin.Context) {
	s, ok := requestScope(c)
	if !ok {
		return
	}
	reportID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	investigation, err := ah.accidentService.GetInvestigation(c.Request.Context(), s, reportID)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, investigation)
}

func (ah *AccidentHandler) SaveInvestigation(c *gin.Context) {
	s, ok := requestScope(c)
	if !ok {
		return
	}
	reportID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var input services.InvestigationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, apierr.Validation("invalid request body"))
		return
	}
	report, err := ah.accidentService.SaveInvestigation(c.Request.Context(), s, reportID, input)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, report)
}
