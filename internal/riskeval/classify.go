package riskeval

import "fmt"

// Tier is the stored classification label for a risk value. Labels are kept
// in Spanish because they are persisted verbatim and rendered on reports.
type Tier string

const (
	TierNotEvaluated Tier = "No evaluado"
	TierTrivial      Tier = "Trivial"
	TierTolerable    Tier = "Tolerable"
	TierModerate     Tier = "Moderado"
	TierImportant    Tier = "Importante"
	TierIntolerable  Tier = "Intolerable"
)

// Scheme selects which threshold table maps a probability x consequence
// product to a Tier. The two tables coexist: the per-category evaluator uses
// the banded four-tier table, while the flat IPER grid predates it and keeps
// the exact-value five-tier table. Every stored evaluation declares its
// scheme; nothing picks one implicitly.
type Scheme string

const (
	SchemeCategory  Scheme = "categorias"
	SchemeLegacyVEP Scheme = "vep"
)

// Probability and consequence levels are restricted to the three-point scale
// used across the whole application.
const (
	LevelLow    = 1
	LevelMedium = 2
	LevelHigh   = 4
)

func ValidLevel(v int) bool {
	return v == LevelLow || v == LevelMedium || v == LevelHigh
}

func ValidateLevel(field string, v int) error {
	if !ValidLevel(v) {
		return fmt.Errorf("%s must be 1, 2 or 4, got %d", field, v)
	}
	return nil
}

// Score returns the probability x consequence product, or nil when either
// input is unset. An unset pair means the category was not evaluated, which
// is a valid state, not an error.
func Score(probability, consequence *int) *int {
	if probability == nil || consequence == nil {
		return nil
	}
	v := *probability * *consequence
	return &v
}

// Classify maps a risk value to its Tier under the given scheme. It is total:
// nil means not evaluated and any value outside the expected {1,2,4,8,16}
// domain falls through to the nearest band (category scheme) or to
// NotEvaluated (legacy exact-value scheme).
func Classify(scheme Scheme, value *int) Tier {
	if value == nil {
		return TierNotEvaluated
	}
	switch scheme {
	case SchemeLegacyVEP:
		return classifyLegacyVEP(*value)
	default:
		return classifyCategory(*value)
	}
}

func classifyCategory(value int) Tier {
	switch {
	case value >= 9:
		return TierIntolerable
	case value >= 5:
		return TierImportant
	case value >= 3:
		return TierModerate
	default:
		return TierTolerable
	}
}

func classifyLegacyVEP(value int) Tier {
	switch value {
	case 1:
		return TierTrivial
	case 2:
		return TierTolerable
	case 4:
		return TierModerate
	case 8:
		return TierImportant
	case 16:
		return TierIntolerable
	default:
		return TierNotEvaluated
	}
}
