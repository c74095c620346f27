package types

import (
	"time"

	"github.com/google/uuid"
)

// MatrixStatusInitial is the only status the application sets on its own.
// Status is otherwise user-managed free text; there is no transition guard.
const MatrixStatusInitial = "En Elaboración"

// Matrix is one risk-assessment exercise for a company. Deleting a matrix
// cascades down to processes, tasks, risks and control measures.
type Matrix struct {
	ID             uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CompanyID      uuid.UUID `gorm:"type:uuid;not null;index;column:company_id" json:"company_id"`
	NombreProyecto string    `gorm:"not null;column:nombre_proyecto" json:"nombre_proyecto"`
	Estado         string    `gorm:"not null;default:'En Elaboración';column:estado" json:"estado"`
	Version        int       `gorm:"not null;default:1;column:version" json:"version"`
	CreatedAt      time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt      time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Matrix) TableName() string {
	return "matrix"
}

type Process struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	MatrixID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_process_matrix_nombre;column:matrix_id" json:"matrix_id"`
	Nombre    string    `gorm:"not null;uniqueIndex:idx_process_matrix_nombre;column:nombre" json:"nombre"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Process) TableName() string {
	return "process"
}

// Task is a job/activity inside a process. Headcount and equipment fields are
// context for the assessment; they are never scored.
type Task struct {
	ID            uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ProcessID     uuid.UUID `gorm:"type:uuid;not null;index;column:process_id" json:"process_id"`
	PuestoTrabajo string    `gorm:"not null;column:puesto_trabajo" json:"puesto_trabajo"`
	Descripcion   string    `gorm:"not null;column:descripcion" json:"descripcion"`
	EsRutinaria   bool      `gorm:"not null;default:true;column:es_rutinaria" json:"es_rutinaria"`
	NumHombres    int       `gorm:"not null;default:0;column:num_hombres" json:"num_hombres"`
	NumMujeres    int       `gorm:"not null;default:0;column:num_mujeres" json:"num_mujeres"`
	Equipos       string    `gorm:"column:equipos" json:"equipos"`
	CreatedAt     time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt     time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Task) TableName() string {
	return "task"
}
