package types

import (
	"time"

	"github.com/google/uuid"
)

// Hazard is a normative, application-wide catalog entry. Risks reference it;
// the database refuses to delete an entry while any risk points at it.
type Hazard struct {
	ID               uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	FamiliaRiesgo    string    `gorm:"not null;column:familia_riesgo" json:"familia_riesgo"`
	RiesgoEspecifico string    `gorm:"not null;column:riesgo_especifico" json:"riesgo_especifico"`
	Definicion       string    `gorm:"column:definicion" json:"definicion"`
	Codigo           string    `gorm:"uniqueIndex;not null;column:codigo" json:"codigo"`
	CreatedAt        time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt        time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Hazard) TableName() string {
	return "hazard"
}

// Regulation is the normative library (Normativa) the legal-compliance tasks
// may reference.
type Regulation struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Nombre      string    `gorm:"not null;column:nombre" json:"nombre"`
	Descripcion string    `gorm:"column:descripcion" json:"descripcion"`
	Enlace      string    `gorm:"column:enlace" json:"enlace"`
	CreatedAt   time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Regulation) TableName() string {
	return "regulation"
}
