package types

import (
	"time"

	"github.com/google/uuid"

	"github.com/riskbee/riskbee-backend/internal/riskeval"
)

// Risk is the central scored entity. Per-category scores and classifications
// are derived, never stored; only the overall inherent, residual and
// special-population classification strings are persisted, and they are
// overwritten by Recalculate on every save.
type Risk struct {
	ID            uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	TaskID        uuid.UUID `gorm:"type:uuid;not null;index;column:task_id" json:"task_id"`
	HazardID      uuid.UUID `gorm:"type:uuid;not null;index;column:hazard_id" json:"hazard_id"`
	Consecuencias string    `gorm:"column:consecuencias" json:"consecuencias"`
	Codigo        string    `gorm:"column:codigo" json:"codigo"`
	Esquema       string    `gorm:"not null;default:'categorias';column:esquema" json:"esquema"`

	ProbSeguridad           *int `gorm:"column:probabilidad_seguridad" json:"probabilidad_seguridad"`
	ConsSeguridad           *int `gorm:"column:consecuencia_seguridad" json:"consecuencia_seguridad"`
	ProbHigienicos          *int `gorm:"column:probabilidad_higienicos" json:"probabilidad_higienicos"`
	ConsHigienicos          *int `gorm:"column:consecuencia_higienicos" json:"consecuencia_higienicos"`
	ProbPsicosociales       *int `gorm:"column:probabilidad_psicosociales" json:"probabilidad_psicosociales"`
	ConsPsicosociales       *int `gorm:"column:consecuencia_psicosociales" json:"consecuencia_psicosociales"`
	ProbMusculoesqueleticos *int `gorm:"column:probabilidad_musculoesqueleticos" json:"probabilidad_musculoesqueleticos"`
	ConsMusculoesqueleticos *int `gorm:"column:consecuencia_musculoesqueleticos" json:"consecuencia_musculoesqueleticos"`

	ProbResidual *int `gorm:"column:probabilidad_residual" json:"probabilidad_residual"`
	ConsResidual *int `gorm:"column:consecuencia_residual" json:"consecuencia_residual"`
	ProbEspecial *int `gorm:"column:probabilidad_especial" json:"probabilidad_especial"`
	ConsEspecial *int `gorm:"column:consecuencia_especial" json:"consecuencia_especial"`

	ClasificacionInherente string `gorm:"not null;default:'No evaluado';column:clasificacion_inherente" json:"clasificacion_inherente"`
	ClasificacionResidual  string `gorm:"not null;default:'No evaluado';column:clasificacion_residual" json:"clasificacion_residual"`
	ClasificacionEspecial  string `gorm:"not null;default:'No evaluado';column:clasificacion_especial" json:"clasificacion_especial"`

	// Free-text "current control" captured inline on the evaluation form.
	// A non-empty value spawns a ControlMeasure in the same transaction.
	ControlesExistentes string `gorm:"column:controles_existentes" json:"controles_existentes"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Risk) TableName() string {
	return "risk"
}

// Evaluation assembles the scoring state for the classification engine.
func (r *Risk) Evaluation() riskeval.Evaluation {
	return riskeval.Evaluation{
		Scheme: riskeval.Scheme(r.Esquema),
		Categories: map[riskeval.Category]riskeval.Pair{
			riskeval.CategorySafety:          {Probability: r.ProbSeguridad, Consequence: r.ConsSeguridad},
			riskeval.CategoryHygiene:         {Probability: r.ProbHigienicos, Consequence: r.ConsHigienicos},
			riskeval.CategoryPsychosocial:    {Probability: r.ProbPsicosociales, Consequence: r.ConsPsicosociales},
			riskeval.CategoryMusculoskeletal: {Probability: r.ProbMusculoesqueleticos, Consequence: r.ConsMusculoesqueleticos},
		},
		Residual: riskeval.Pair{Probability: r.ProbResidual, Consequence: r.ConsResidual},
		Special:  riskeval.Pair{Probability: r.ProbEspecial, Consequence: r.ConsEspecial},
	}
}

// Recalculate overwrites the stored classification strings from the current
// probability/consequence fields. The save path calls it before every write;
// readers never see a stale classification.
func (r *Risk) Recalculate() {
	ev := r.Evaluation()
	r.ClasificacionInherente = string(ev.MaxInherentClassification())
	r.ClasificacionResidual = string(ev.ResidualClassification())
	r.ClasificacionEspecial = string(ev.SpecialClassification())
}

// Control hierarchy types, ranked: elimination beats substitution beats
// engineering beats administrative beats PPE.
const (
	ControlElimination    = "EL"
	ControlSubstitution   = "SU"
	ControlEngineering    = "CI"
	ControlAdministrative = "CA"
	ControlPPE            = "EP"
)

var ControlTypeLabels = map[string]string{
	ControlElimination:    "Eliminación",
	ControlSubstitution:   "Sustitución",
	ControlEngineering:    "Control de Ingeniería",
	ControlAdministrative: "Control Administrativo",
	ControlPPE:            "Equipo de Protección Personal",
}

type ControlMeasure struct {
	ID                  uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	RiskID              uuid.UUID  `gorm:"type:uuid;not null;index;column:risk_id" json:"risk_id"`
	Descripcion         string     `gorm:"not null;column:descripcion" json:"descripcion"`
	TipoControl         string     `gorm:"not null;column:tipo_control" json:"tipo_control"`
	Responsable         string     `gorm:"not null;column:responsable" json:"responsable"`
	PlazoImplementacion *time.Time `gorm:"column:plazo_implementacion" json:"plazo_implementacion"`
	CreatedAt           time.Time  `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt           time.Time  `gorm:"not null;default:now()" json:"updated_at"`
}

func (ControlMeasure) TableName() string {
	return "control_measure"
}
