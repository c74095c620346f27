package types

import (
	"time"

	"github.com/google/uuid"
)

const (
	FrecuenciaPuntual    = "puntual"
	FrecuenciaMensual    = "mensual"
	FrecuenciaTrimestral = "trimestral"
	FrecuenciaSemestral  = "semestral"
	FrecuenciaAnual      = "anual"
)

// LegalTask is a recurring legal obligation for a company. On creation the
// next due date equals the start date; completing a recurring task advances
// it by the task's frequency.
type LegalTask struct {
	ID                      uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CompanyID               uuid.UUID  `gorm:"type:uuid;not null;index;column:company_id" json:"company_id"`
	RegulationID            *uuid.UUID `gorm:"type:uuid;column:regulation_id" json:"regulation_id"`
	NombreObligacion        string     `gorm:"not null;column:nombre_obligacion" json:"nombre_obligacion"`
	Descripcion             string     `gorm:"column:descripcion" json:"descripcion"`
	FechaInicio             time.Time  `gorm:"not null;column:fecha_inicio" json:"fecha_inicio"`
	Frecuencia              string     `gorm:"not null;default:'puntual';column:frecuencia" json:"frecuencia"`
	ProximaFechaVencimiento time.Time  `gorm:"not null;column:proxima_fecha_vencimiento" json:"proxima_fecha_vencimiento"`
	Responsable             string     `gorm:"column:responsable" json:"responsable"`
	Completada              bool       `gorm:"not null;default:false;column:completada" json:"completada"`
	FechaCompletada         *time.Time `gorm:"column:fecha_completada" json:"fecha_completada"`
	NotificacionEmail       string     `gorm:"column:notificacion_email" json:"notificacion_email"`
	CreatedAt               time.Time  `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt               time.Time  `gorm:"not null;default:now()" json:"updated_at"`
}

func (LegalTask) TableName() string {
	return "legal_task"
}

// NextDueDate returns the due date that follows from, for a recurring task.
// Puntual tasks have no next occurrence.
func (t *LegalTask) NextDueDate(from time.Time) *time.Time {
	var next time.Time
	switch t.Frecuencia {
	case FrecuenciaMensual:
		next = from.AddDate(0, 1, 0)
	case FrecuenciaTrimestral:
		next = from.AddDate(0, 3, 0)
	case FrecuenciaSemestral:
		next = from.AddDate(0, 6, 0)
	case FrecuenciaAnual:
		next = from.AddDate(1, 0, 0)
	default:
		return nil
	}
	return &next
}
