package services

import (
	"testing"

	"github.com/riskbee/riskbee-backend/internal/riskeval"
	"github.com/riskbee/riskbee-backend/internal/types"
)

// Every classification a Risk can persist must have a dashboard bucket, under
// either scheme; a stored row must never vanish from the chart.
func TestClassificationOrderCoversBothSchemes(t *testing.T) {
	buckets := make(map[riskeval.Tier]bool, len(classificationOrder))
	for _, tier := range classificationOrder {
		buckets[tier] = true
	}

	levels := []int{riskeval.LevelLow, riskeval.LevelMedium, riskeval.LevelHigh}
	for _, esquema := range []riskeval.Scheme{riskeval.SchemeCategory, riskeval.SchemeLegacyVEP} {
		risk := &types.Risk{Esquema: string(esquema)}
		risk.Recalculate()
		if !buckets[riskeval.Tier(risk.ClasificacionInherente)] {
			t.Errorf("scheme %s: unevaluated classification %q has no bucket", esquema, risk.ClasificacionInherente)
		}

		for _, p := range levels {
			for _, c := range levels {
				p, c := p, c
				risk := &types.Risk{
					Esquema:       string(esquema),
					ProbSeguridad: &p,
					ConsSeguridad: &c,
				}
				risk.Recalculate()
				if !buckets[riskeval.Tier(risk.ClasificacionInherente)] {
					t.Errorf("scheme %s p=%d c=%d: stored classification %q has no bucket",
						esquema, p, c, risk.ClasificacionInherente)
				}
			}
		}
	}
}

func TestClassificationOrderIncludesTrivial(t *testing.T) {
	one := 1
	risk := &types.Risk{
		Esquema:       string(riskeval.SchemeLegacyVEP),
		ProbSeguridad: &one,
		ConsSeguridad: &one,
	}
	risk.Recalculate()
	if risk.ClasificacionInherente != string(riskeval.TierTrivial) {
		t.Fatalf("expected Trivial, got %q", risk.ClasificacionInherente)
	}
	found := false
	for _, tier := range classificationOrder {
		if tier == riskeval.TierTrivial {
			found = true
		}
	}
	if !found {
		t.Fatalf("Trivial missing from dashboard buckets")
	}
}
