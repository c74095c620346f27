package riskeval

// Category is one of the four fixed hazard categories a risk can be scored
// under. A risk does not have to be evaluated in every category; a purely
// mechanical hazard has no psychosocial pair.
type Category string

const (
	CategorySafety          Category = "seguridad"
	CategoryHygiene         Category = "higienicos"
	CategoryPsychosocial    Category = "psicosociales"
	CategoryMusculoskeletal Category = "musculoesqueleticos"
)

var Categories = []Category{
	CategorySafety,
	CategoryHygiene,
	CategoryPsychosocial,
	CategoryMusculoskeletal,
}

// Pair is one probability/consequence input pair.
type Pair struct {
	Probability *int
	Consequence *int
}

func (p Pair) Score() *int {
	return Score(p.Probability, p.Consequence)
}

// Evaluation is the full scoring state of one risk: up to four inherent
// category pairs, one residual pair and one special-population pair, all
// classified under a declared scheme.
type Evaluation struct {
	Scheme     Scheme
	Categories map[Category]Pair
	Residual   Pair
	Special    Pair
}

func (e Evaluation) CategoryScore(c Category) *int {
	return e.Categories[c].Score()
}

func (e Evaluation) CategoryClassification(c Category) Tier {
	return Classify(e.Scheme, e.CategoryScore(c))
}

// MaxInherentScore is the maximum over all evaluated category scores, or nil
// when no category has been evaluated. Categories never weight each other;
// the maximum is the organization's overall exposure indicator.
func (e Evaluation) MaxInherentScore() *int {
	var max *int
	for _, c := range Categories {
		s := e.CategoryScore(c)
		if s == nil {
			continue
		}
		if max == nil || *s > *max {
			max = s
		}
	}
	return max
}

func (e Evaluation) MaxInherentClassification() Tier {
	return Classify(e.Scheme, e.MaxInherentScore())
}

func (e Evaluation) ResidualScore() *int {
	return e.Residual.Score()
}

func (e Evaluation) ResidualClassification() Tier {
	return Classify(e.Scheme, e.ResidualScore())
}

func (e Evaluation) SpecialScore() *int {
	return e.Special.Score()
}

func (e Evaluation) SpecialClassification() Tier {
	return Classify(e.Scheme, e.SpecialScore())
}

// Validate rejects any set probability/consequence outside the {1,2,4}
// scale. Unset values are fine.
func (e Evaluation) Validate() error {
	check := func(name string, v *int) error {
		if v == nil {
			return nil
		}
		return ValidateLevel(name, *v)
	}
	for _, c := range Categories {
		p := e.Categories[c]
		if err := check("probabilidad_"+string(c), p.Probability); err != nil {
			return err
		}
		if err := check("consecuencia_"+string(c), p.Consequence); err != nil {
			return err
		}
	}
	if err := check("probabilidad_residual", e.Residual.Probability); err != nil {
		return err
	}
	if err := check("consecuencia_residual", e.Residual.Consequence); err != nil {
		return err
	}
	if err := check("probabilidad_especial", e.Special.Probability); err != nil {
		return err
	}
	return check("consecuencia_especial", e.Special.Consequence)
}
