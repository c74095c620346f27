package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/riskbee/riskbee-backend/internal/apierr"
	"github.com/riskbee/riskbee-backend/internal/services"
	"github.com/riskbee/riskbee-backend/internal/types"
)

type CompanyHandler struct {
	companyService services.CompanyService
}

func NewCompanyHandler(companyService services.CompanyService) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

func (ch *CompanyHandler) Create(c *gin.Context) {
	s, ok := requestScope(c)
	if !ok {
		return
	}
	var req struct {
		RazonSocial string `json:"razon_social"`
		Rut         string `json:"rut"`
		Direccion   string `json:"direccion"`
		Telefono    string `json:"telefono"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, apierr.Validation("invalid request body"))
		return
	}
	company := &types.Company{
		RazonSocial: req.RazonSocial,
		Rut:         req.Rut,
		Direccion:   req.Direccion,
		Telefono:    req.Telefono,
	}
	created, err := ch.companyService.Create(c.Request.Context(), s, company)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (ch *CompanyHandler) Get(c *gin.Context) {
	s, ok := requestScope(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	company, err := ch.companyService.Get(c.Request.Context(), s, id)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, company)
}

func (ch *CompanyHandler) List(c *gin.Context) {
	s, ok := requestScope(c)
	if !ok {
		return
	}
	companies, err := ch.companyService.List(c.Request.Context(), s)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, companies)
}

func (ch *CompanyHandler) Update(c *gin.Context) {
	s, ok := requestScope(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req struct {
		RazonSocial string `json:"razon_social"`
		Rut         string `json:"rut"`
		Direccion   string `json:"direccion"`
		Telefono    string `json:"telefono"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, apierr.Validation("invalid request body"))
		return
	}
	company := &types.Company{
		ID:          id,
		RazonSocial: req.RazonSocial,
		Rut:         req.Rut,
		Direccion:   req.Direccion,
		Telefono:    req.Telefono,
	}
	updated, err := ch.companyService.Update(c.Request.Context(), s, company)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, updated)
}

func (ch *CompanyHandler) Delete(c *gin.Context) {
	s, ok := requestScope(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := ch.companyService.Delete(c.Request.Context(), s, id); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "company deleted"})
}

func (ch *CompanyHandler) AddContact(c *gin.Context) {
	s, ok := requestScope(c)
	if !ok {
		return
	}
	companyID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req struct {
		Nombre   string `json:"nombre"`
		Cargo    string `json:"cargo"`
		Email    string `json:"email"`
		Telefono string `json:"telefono"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, apierr.Validation("invalid request body"))
		return
	}
	contact := &types.Contact{
		CompanyID: companyID,
		Nombre:    req.Nombre,
		Cargo:     req.Cargo,
		Email:     req.Email,
		Telefono:  req.Telefono,
	}
	created, err := ch.companyService.AddContact(c.Request.Context(), s, contact)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (ch *CompanyHandler) ListContacts(c *gin.Context) {
	s, ok := requestScope(c)
	if !ok {
		return
	}
	companyID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	contacts, err := ch.companyService.ListContacts(c.Request.Context(), s, companyID)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, contacts)
}
