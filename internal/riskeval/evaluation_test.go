package riskeval

import "testing"

func TestMaxInherentClassificationEmpty(t *testing.T) {
	ev := Evaluation{Scheme: SchemeCategory}
	if got := ev.MaxInherentScore(); got != nil {
		t.Fatalf("MaxInherentScore()=%v, want nil", got)
	}
	if got := ev.MaxInherentClassification(); got != TierNotEvaluated {
		t.Fatalf("MaxInherentClassification()=%q, want %q", got, TierNotEvaluated)
	}
}

func TestMaxInherentClassificationSingleCategory(t *testing.T) {
	ev := Evaluation{
		Scheme: SchemeCategory,
		Categories: map[Category]Pair{
			CategoryHygiene: {Probability: intp(4), Consequence: intp(4)},
		},
	}
	if got := ev.MaxInherentScore(); got == nil || *got != 16 {
		t.Fatalf("MaxInherentScore()=%v, want 16", got)
	}
	if got := ev.MaxInherentClassification(); got != TierIntolerable {
		t.Fatalf("MaxInherentClassification()=%q, want %q", got, TierIntolerable)
	}
}

func TestMaxInherentTakesMaximumAcrossCategories(t *testing.T) {
	ev := Evaluation{
		Scheme: SchemeCategory,
		Categories: map[Category]Pair{
			CategorySafety:          {Probability: intp(1), Consequence: intp(2)},
			CategoryPsychosocial:    {Probability: intp(2), Consequence: intp(4)},
			CategoryMusculoskeletal: {Probability: intp(2), Consequence: intp(1)},
		},
	}
	if got := ev.MaxInherentScore(); got == nil || *got != 8 {
		t.Fatalf("MaxInherentScore()=%v, want 8", got)
	}
	if got := ev.MaxInherentClassification(); got != TierImportant {
		t.Fatalf("MaxInherentClassification()=%q, want %q", got, TierImportant)
	}
}

func TestResidualAndSpecialAreIndependent(t *testing.T) {
	ev := Evaluation{
		Scheme: SchemeCategory,
		Categories: map[Category]Pair{
			CategorySafety: {Probability: intp(4), Consequence: intp(4)},
		},
		Residual: Pair{Probability: intp(1), Consequence: intp(2)},
	}
	if got := ev.ResidualClassification(); got != TierTolerable {
		t.Fatalf("ResidualClassification()=%q, want %q", got, TierTolerable)
	}
	if got := ev.SpecialClassification(); got != TierNotEvaluated {
		t.Fatalf("SpecialClassification()=%q, want %q", got, TierNotEvaluated)
	}
}

func TestEvaluationReclassifiesOnEdit(t *testing.T) {
	ev := Evaluation{
		Scheme: SchemeCategory,
		Categories: map[Category]Pair{
			CategorySafety: {Probability: intp(2), Consequence: intp(2)},
		},
	}
	if got := ev.MaxInherentClassification(); got != TierModerate {
		t.Fatalf("before edit: %q, want %q", got, TierModerate)
	}
	ev.Categories[CategorySafety] = Pair{Probability: intp(4), Consequence: intp(2)}
	if got := ev.MaxInherentClassification(); got != TierImportant {
		t.Fatalf("after edit: %q, want %q", got, TierImportant)
	}
	// Recomputation without input changes is stable.
	if first, second := ev.MaxInherentClassification(), ev.MaxInherentClassification(); first != second {
		t.Fatalf("recompute not idempotent: %q then %q", first, second)
	}
}

func TestEvaluationValidate(t *testing.T) {
	ok := Evaluation{
		Scheme: SchemeCategory,
		Categories: map[Category]Pair{
			CategorySafety: {Probability: intp(1), Consequence: intp(4)},
		},
		Residual: Pair{Probability: intp(2), Consequence: intp(2)},
	}
	if err := ok.Validate(); err != nil {
		t.Fatalf("Validate() unexpected error: %v", err)
	}

	bad := Evaluation{
		Scheme: SchemeCategory,
		Categories: map[Category]Pair{
			CategoryHygiene: {Probability: intp(3), Consequence: intp(1)},
		},
	}
	if err := bad.Validate(); err == nil {
		t.Fatalf("Validate() expected error for probability 3")
	}
}
