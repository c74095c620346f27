package types

import (
	"time"

	"github.com/google/uuid"
)

// Company is the tenant root. Two companies may share a razon social, but rut
// (tax id) is unique across the whole application.
type Company struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index;column:owner_id" json:"owner_id"`
	RazonSocial string    `gorm:"not null;column:razon_social" json:"razon_social"`
	Rut         string    `gorm:"uniqueIndex;not null;column:rut" json:"rut"`
	Direccion   string    `gorm:"column:direccion" json:"direccion"`
	Telefono    string    `gorm:"column:telefono" json:"telefono"`
	CreatedAt   time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Company) TableName() string {
	return "company"
}

type Contact struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index;column:company_id" json:"company_id"`
	Nombre    string    `gorm:"not null;column:nombre" json:"nombre"`
	Cargo     string    `gorm:"column:cargo" json:"cargo"`
	Email     string    `gorm:"column:email" json:"email"`
	Telefono  string    `gorm:"column:telefono" json:"telefono"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Contact) TableName() string {
	return "contact"
}
