package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/riskbee/riskbee-backend/internal/apierr"
)

// mapNotFound converts a gorm record-not-found into the API error used for
// both missing rows and rows outside the caller's tenant scope.
func mapNotFound(err error, entity string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apierr.NotFound(entity)
	}
	return err
}
