package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/riskbee/riskbee-backend/internal/apierr"
	"github.com/riskbee/riskbee-backend/internal/scope"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, err error) {
	ae := apierr.As(err)
	c.JSON(ae.Status, ErrorEnvelope{
		Error: APIError{
			Message: ae.Error(),
			Code:    ae.Code,
		},
	})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// requestScope builds the tenant scope for the current request; the auth
// middleware guarantees it exists on protected routes.
func requestScope(c *gin.Context) (scope.Scope, bool) {
	s, err := scope.FromContext(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return scope.Scope{}, false
	}
	return s, true
}

func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		RespondError(c, apierr.Validation("invalid %s", name))
		return uuid.Nil, false
	}
	return id, true
}

func parseUUIDField(c *gin.Context, raw, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(raw)
	if err != nil {
		RespondError(c, apierr.Validation("invalid %s", name))
		return uuid.Nil, false
	}
	return id, true
}

func HealthCheck(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}
