package types

import (
	"time"

	"github.com/google/uuid"
)

// Document is uploaded-evidence metadata for a company. The file bytes live
// in whatever object store the deployment points at; only the key is ours.
type Document struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index;column:company_id" json:"company_id"`
	Nombre    string    `gorm:"not null;column:nombre" json:"nombre"`
	Categoria string    `gorm:"column:categoria" json:"categoria"`
	BucketKey string    `gorm:"column:bucket_key" json:"bucket_key"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Document) TableName() string {
	return "document"
}
