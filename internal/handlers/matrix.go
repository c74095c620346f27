package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/riskbee/riskbee-backend/internal/apierr"
	"github.com/riskbee/riskbee-backend/internal/services"
	"github.com/riskbee/riskbee-backend/internal/types"
)

type MatrixHandler struct {
	matrixService services.MatrixService
}

func NewMatrixHandler(matrixService services.MatrixService) *MatrixHandler {
	return &MatrixHandler{matrixService: matrixService}
}

func (mh *MatrixHandler) Create(c *gin.Context) {
	s, ok := requestScope(c)
	if !ok {
		return
	}
	var req struct {
		CompanyID      string `json:"company_id"`
		NombreProyecto string `json:"nombre_proyecto"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, apierr.Validation("invalid request body"))
		return
	}
	companyID, ok := parseUUIDField(c, req.CompanyID, "company_id")
	if !ok {
		return
	}
	matrix, err := mh.matrixService.CreateMatrix(c.Request.Context(), s, companyID, req.NombreProyecto)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, matrix)
}

func (mh *MatrixHandler) Get(c *gin.Context) {
	s, ok := requestScope(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	matrix, err := mh.matrixService.GetMatrix(c.Request.Context(), s, id)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, matrix)
}

func (mh *MatrixHandler) ListByCompany(c *gin.Context) {
	s, ok := requestScope(c)
	if !ok {
		return
	}
	companyID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	matrices, err := mh.matrixService.ListMatrices(c.Request.Context(), s, companyID)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, matrices)
}

func (mh *MatrixHandler) Update(c *gin.Context) {
	s, ok := requestScope(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req struct {
		NombreProyecto string `json:"nombre_proyecto"`
		Estado         string `json:"estado"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, apierr.Validation("invalid request body"))
		return
	}
	matrix, err := mh.matrixService.UpdateMatrix(c.Request.Context(), s, id, req.NombreProyecto, req.Estado)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, matrix)
}

func (mh *MatrixHandler) Delete(c *gin.Context) {
	s, ok := requestScope(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := mh.matrixService.DeleteMatrix(c.Request.Context(), s, id); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "matrix deleted"})
}

func (mh *MatrixHandler) CreateProcess(c *gin.Context) {
	s, ok := requestScope(c)
	if !ok {
		return
	}
	matrixID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req struct {
		Nombre string `json:"nombre"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, apierr.Validation("invalid request body"))
		return
	}
	process, err := mh.matrixService.CreateProcess(c.Request.Context(), s, matrixID, req.Nombre)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, process)
}

func (mh *MatrixHandler) ListProcesses(c *gin.Context) {
	s, ok := requestScope(c)
	if !ok {
		return
	}
	matrixID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	processes, err := mh.matrixService.ListProcesses(c.Request.Context(), s, matrixID)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, processes)
}

func (mh *MatrixHandler) UpdateProcess(c *gin.Context) {
	s, ok := requestScope(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req struct {
		Nombre string `json:"nombre"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, apierr.Validation("invalid request body"))
		return
	}
	process, err := mh.matrixService.UpdateProcess(c.Request.Context(), s, id, req.Nombre)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, process)
}

func (mh *MatrixHandler) DeleteProcess(c *gin.Context) {
	s, ok := requestScope(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := mh.matrixService.DeleteProcess(c.Request.Context(), s, id); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "process deleted"})
}

func (mh *MatrixHandler) CreateTask(c *gin.Context) {
	s, ok := requestScope(c)
	if !ok {
		return
	}
	processID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req struct {
		PuestoTrabajo string `json:"puesto_trabajo"`
		Descripcion   string `json:"descripcion"`
		EsRutinaria   bool   `json:"es_rutinaria"`
		NumHombres    int    `json:"num_hombres"`
		NumMujeres    int    `json:"num_mujeres"`
		Equipos       string `json:"equipos"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, apierr.Validation("invalid request body"))
		return
	}
	task := &types.Task{
		ProcessID:     processID,
		PuestoTrabajo: req.PuestoTrabajo,
		Descripcion:   req.Descripcion,
		EsRutinaria:   req.EsRutinaria,
		NumHombres:    req.NumHombres,
		NumMujeres:    req.NumMujeres,
		Equipos:       req.Equipos,
	}
	created, err := mh.matrixService.CreateTask(c.Request.Context(), s, task)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (mh *MatrixHandler) ListTasks(c *gin.Context) {
	s, ok := requestScope(c)
	if !ok {
		return
	}
	processID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	tasks, err := mh.matrixService.ListTasks(c.Request.Context(), s, processID)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, tasks)
}

func (mh *MatrixHandler) UpdateTask(c *gin.Context) {
	s, ok := requestScope(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req struct {
		PuestoTrabajo string `json:"puesto_trabajo"`
		Descripcion   string `json:"descripcion"`
		EsRutinaria   bool   `json:"es_rutinaria"`
		NumHombres    int    `json:"num_hombres"`
		NumMujeres    int    `json:"num_mujeres"`
		Equipos       string `json:"equipos"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, apierr.Validation("invalid request body"))
		return
	}
	task := &types.Task{
		ID:            id,
		PuestoTrabajo: req.PuestoTrabajo,
		Descripcion:   req.Descripcion,
		EsRutinaria:   req.EsRutinaria,
		NumHombres:    req.NumHombres,
		NumMujeres:    req.NumMujeres,
		Equipos:       req.Equipos,
	}
	updated, err := mh.matrixService.UpdateTask(c.Request.Context(), s, task)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, updated)
}

func (mh *MatrixHandler) DeleteTask(c *gin.Context) {
	s, ok := requestScope(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := mh.matrixService.DeleteTask(c.Request.Context(), s, id); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "task deleted"})
}
