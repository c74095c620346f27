package types

import (
	"time"

	"github.com/google/uuid"
)

const (
	VisitPropuesta  = "propuesta"
	VisitAgendada   = "agendada"
	VisitCompletada = "completada"
	VisitCancelada  = "cancelada"
)

type Visit struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CompanyID   uuid.UUID `gorm:"type:uuid;not null;index;column:company_id" json:"company_id"`
	Asunto      string    `gorm:"not null;column:asunto" json:"asunto"`
	Descripcion string    `gorm:"column:descripcion" json:"descripcion"`
	FechaHora   time.Time `gorm:"not null;column:fecha_hora" json:"fecha_hora"`
	Estado      string    `gorm:"not null;default:'propuesta';column:estado" json:"estado"`
	CreatedAt   time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Visit) TableName() string {
	return "visit"
}

// Reminder belongs to a prevencionista directly, not to a company.
type Reminder struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index;column:user_id" json:"user_id"`
	Titulo      string    `gorm:"not null;column:titulo" json:"titulo"`
	Descripcion string    `gorm:"column:descripcion" json:"descripcion"`
	FechaHora   time.Time `gorm:"not null;column:fecha_hora" json:"fecha_hora"`
	CreatedAt   time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Reminder) TableName() string {
	return "reminder"
}
