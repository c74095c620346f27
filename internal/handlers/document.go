package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/riskbee/riskbee-backend/internal/apierr"
	"github.com/riskbee/riskbee-backend/internal/services"
	"github.com/riskbee/riskbee-backend/internal/types"
)

type DocumentHandler struct {
	documentService services.DocumentService
}

func NewDocumentHandler(documentService services.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

func (dh *DocumentHandler) Create(c *gin.Context) {
	s, ok := requestScope(c)
	if !ok {
		return
	}
	companyID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req struct {
		Nombre    string `json:"nombre"`
		Categoria string `json:"categoria"`
		BucketKey string `json:"bucket_key"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, apierr.Validation("invalid request body"))
		return
	}
	document := &types.Document{
		CompanyID: companyID,
		Nombre:    req.Nombre,
		Categoria: req.Categoria,
		BucketKey: req.BucketKey,
	}
	created, err := dh.documentService.Create(c.Request.Context(), s, document)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (dh *DocumentHandler) Upload(c *gin.Context) {
	s, ok := requestScope(c)
	if !ok {
		return
	}
	companyID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	fileHeader, err := c.FormFile("file")
	if err != nil {
		RespondError(c, apierr.Validation("file is required"))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		RespondError(c, apierr.Validation("could not read uploaded file"))
		return
	}
	defer file.Close()

	nombre := c.PostForm("nombre")
	if nombre == "" {
		nombre = fileHeader.Filename
	}
	created, err := dh.documentService.Upload(c.Request.Context(), s, services.UploadDocumentInput{
		CompanyID: companyID,
		Nombre:    nombre,
		Categoria: c.PostForm("categoria"),
		Filename:  fileHeader.Filename,
		File:      file,
	})
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"document": created,
		"url":      dh.documentService.FileURL(created),
	})
}

func (dh *DocumentHandler) ListByCompany(c *gin.Context) {
	s, ok := requestScope(c)
	if !ok {
		return
	}
	companyID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	documents, err := dh.documentService.ListByCompany(c.Request.Context(), s, companyID)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, documents)
}

func (dh *DocumentHandler) Delete(c *gin.Context) {
	s, ok := requestScope(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := dh.documentService.Delete(c.Request.Context(), s, id); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "document deleted"})
}
