package types

import (
	"time"

	"github.com/google/uuid"
)

const (
	ReportStateReported           = "reportado"
	ReportStateUnderInvestigation = "en_investigacion"
	ReportStateClosed             = "cerrado"
)

const (
	AccidentTrabajo     = "accidente_trabajo"
	AccidentTrayecto    = "accidente_trayecto"
	AccidentEnfermedad  = "enfermedad_profesional"
	AccidentSinIncap    = "accidente_sin_incapacidad"
	AccidentEnfSinIncap = "enfermedad_laboral_sin_incapacidad"
	AccidentComun       = "accidente_comun"
	AccidentEnfComun    = "enfermedad_comun"
)

const (
	SeveridadIncidente = "incidente"
	SeveridadLeve      = "leve"
	SeveridadGrave     = "grave"
	SeveridadFatal     = "fatal"
)

type AccidentReport struct {
	ID                  uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CompanyID           uuid.UUID  `gorm:"type:uuid;not null;index;column:company_id" json:"company_id"`
	ReportedByID        *uuid.UUID `gorm:"type:uuid;column:reported_by_id" json:"reported_by_id"`
	Estado              string     `gorm:"not null;default:'reportado';column:estado" json:"estado"`
	AreaDepartamento    string     `gorm:"column:area_departamento" json:"area_departamento"`
	SupervisorResp      string     `gorm:"column:supervisor_responsable" json:"supervisor_responsable"`
	NombreAccidentado   string     `gorm:"column:nombre_accidentado" json:"nombre_accidentado"`
	RutAccidentado      string     `gorm:"column:rut_accidentado" json:"rut_accidentado"`
	CargoAccidentado    string     `gorm:"column:cargo_accidentado" json:"cargo_accidentado"`
	Turno               string     `gorm:"column:turno" json:"turno"`
	DescripcionEvento   string     `gorm:"not null;column:descripcion_evento" json:"descripcion_evento"`
	LugarExacto         string     `gorm:"column:lugar_exacto" json:"lugar_exacto"`
	FechaAccidente      time.Time  `gorm:"not null;column:fecha_accidente" json:"fecha_accidente"`
	TipoAccidente       string     `gorm:"not null;column:tipo_accidente" json:"tipo_accidente"`
	Severidad           string     `gorm:"column:clasificacion_severidad" json:"clasificacion_severidad"`
	DanioPropiedad      bool       `gorm:"not null;default:false;column:danio_propiedad" json:"danio_propiedad"`
	DetalleDanio        string     `gorm:"column:detalle_danio_propiedad" json:"detalle_danio_propiedad"`
	TipoLesion          string     `gorm:"column:tipo_lesion" json:"tipo_lesion"`
	ParteCuerpoAfectada string     `gorm:"column:parte_cuerpo_afectada" json:"parte_cuerpo_afectada"`
	TratamientoInicial  string     `gorm:"column:tratamiento_inicial" json:"tratamiento_inicial"`
	CausasInmediatas    string     `gorm:"column:causas_inmediatas" json:"causas_inmediatas"`
	MedidasInmediatas   string     `gorm:"column:medidas_inmediatas" json:"medidas_inmediatas"`
	EvidenciaBucketKey  string     `gorm:"column:evidencia_bucket_key" json:"evidencia_bucket_key"`
	CreatedAt           time.Time  `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt           time.Time  `gorm:"not null;default:now()" json:"updated_at"`
}

func (AccidentReport) TableName() string {
	return "accident_report"
}

// AccidentInvestigation is one-to-one with its report; the report id is the
// primary key.
type AccidentInvestigation struct {
	ReportID            uuid.UUID  `gorm:"type:uuid;primaryKey;column:report_id" json:"report_id"`
	CausasInmediatas    string     `gorm:"not null;column:causas_inmediatas" json:"causas_inmediatas"`
	CausasBasicas       string     `gorm:"not null;column:causas_basicas" json:"causas_basicas"`
	MedidasCorrectivas  string     `gorm:"not null;column:medidas_correctivas" json:"medidas_correctivas"`
	Responsables        string     `gorm:"not null;column:responsables_implementacion" json:"responsables_implementacion"`
	FechaLimite         time.Time  `gorm:"not null;column:fecha_limite_implementacion" json:"fecha_limite_implementacion"`
	Completada          bool       `gorm:"not null;default:false;column:completada" json:"completada"`
	FechaCierre         *time.Time `gorm:"column:fecha_cierre" json:"fecha_cierre"`
	InvestigadorLiderID *uuid.UUID `gorm:"type:uuid;column:investigador_lider_id" json:"investigador_lider_id"`
	CreatedAt           time.Time  `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt           time.Time  `gorm:"not null;default:now()" json:"updated_at"`
}

func (AccidentInvestigation) TableName() string {
	return "accident_investigation"
}

// NextReportState is the report state machine, driven by the investigation
// save path: saving an open investigation moves a reported accident into
// investigation; completing it closes the report.
// Saving a not-completed investigation also reopens a closed report.
func NextReportState(current string, investigationCompleted bool) string {
	if investigationCompleted {
		return ReportStateClosed
	}
	return ReportStateUnderInvestigation
}
