package types

import (
	"time"

	"github.com/google/uuid"

	"github.com/riskbee/riskbee-backend/internal/riskeval"
)

// IperMatrix is the flat spreadsheet-style IPER document, an alternative to
// the hierarchical matrix. Header metadata only; the content lives in its
// detail rows.
type IperMatrix struct {
	ID           uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CompanyID    uuid.UUID  `gorm:"type:uuid;not null;index;column:company_id" json:"company_id"`
	Codigo       string     `gorm:"column:codigo" json:"codigo"`
	Version      string     `gorm:"column:version" json:"version"`
	ElaboradoPor string     `gorm:"column:elaborado_por" json:"elaborado_por"`
	RevisadoPor  string     `gorm:"column:revisado_por" json:"revisado_por"`
	AprobadoPor  string     `gorm:"column:aprobado_por" json:"aprobado_por"`
	Fecha        *time.Time `gorm:"column:fecha" json:"fecha"`
	CreatedAt    time.Time  `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"not null;default:now()" json:"updated_at"`
}

func (IperMatrix) TableName() string {
	return "iper_matrix"
}

// GEMA causal-factor tags used on IPER rows and accident reports.
const (
	GemaGente    = "gente"
	GemaEquipos  = "equipos"
	GemaMaterial = "material"
	GemaAmbiente = "ambiente"
)

// IperDetail is one denormalized grid row: hazard/task descriptions are plain
// text, not foreign keys, and each row carries its own inherent and residual
// probability/severity pair with the derived value and classification.
type IperDetail struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	IperMatrixID uuid.UUID `gorm:"type:uuid;not null;index;column:iper_matrix_id" json:"iper_matrix_id"`

	Proceso             string `gorm:"column:proceso" json:"proceso"`
	Actividad           string `gorm:"column:actividad" json:"actividad"`
	Peligro             string `gorm:"column:peligro" json:"peligro"`
	Riesgo              string `gorm:"column:riesgo" json:"riesgo"`
	Consecuencia        string `gorm:"column:consecuencia" json:"consecuencia"`
	Gema                string `gorm:"column:gema" json:"gema"`
	ControlesExistentes string `gorm:"column:controles_existentes" json:"controles_existentes"`

	EvalProbabilidad  *int   `gorm:"column:eval_probabilidad" json:"eval_probabilidad"`
	EvalSeveridad     *int   `gorm:"column:eval_severidad" json:"eval_severidad"`
	EvalValor         *int   `gorm:"column:eval_valor" json:"eval_valor"`
	EvalClasificacion string `gorm:"column:eval_clasificacion" json:"eval_clasificacion"`

	ResProbabilidad  *int   `gorm:"column:res_probabilidad" json:"res_probabilidad"`
	ResSeveridad     *int   `gorm:"column:res_severidad" json:"res_severidad"`
	ResValor         *int   `gorm:"column:res_valor" json:"res_valor"`
	ResClasificacion string `gorm:"column:res_clasificacion" json:"res_clasificacion"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (IperDetail) TableName() string {
	return "iper_detail"
}

// RecalculateInherent rederives eval_valor and eval_clasificacion from the
// probability/severity pair. The grid rows keep the legacy exact-value
// threshold table.
func (d *IperDetail) RecalculateInherent() {
	d.EvalValor = riskeval.Score(d.EvalProbabilidad, d.EvalSeveridad)
	d.EvalClasificacion = string(riskeval.Classify(riskeval.SchemeLegacyVEP, d.EvalValor))
}

func (d *IperDetail) RecalculateResidual() {
	d.ResValor = riskeval.Score(d.ResProbabilidad, d.ResSeveridad)
	d.ResClasificacion = string(riskeval.Classify(riskeval.SchemeLegacyVEP, d.ResValor))
}
