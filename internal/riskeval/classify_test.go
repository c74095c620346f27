package riskeval

import "testing"

func intp(v int) *int { return &v }

func TestClassifyCategoryScheme(t *testing.T) {
	cases := []struct {
		name  string
		value *int
		want  Tier
	}{
		{name: "nil_not_evaluated", value: nil, want: TierNotEvaluated},
		{name: "one_tolerable", value: intp(1), want: TierTolerable},
		{name: "two_tolerable", value: intp(2), want: TierTolerable},
		{name: "four_moderate", value: intp(4), want: TierModerate},
		{name: "eight_important", value: intp(8), want: TierImportant},
		{name: "sixteen_intolerable", value: intp(16), want: TierIntolerable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Classify(SchemeCategory, tc.value)
			if got != tc.want {
				t.Fatalf("Classify(categorias, %v)=%q, want %q", tc.value, got, tc.want)
			}
		})
	}
}

func TestClassifyLegacyVEPScheme(t *testing.T) {
	cases := []struct {
		name  string
		value *int
		want  Tier
	}{
		{name: "nil_not_evaluated", value: nil, want: TierNotEvaluated},
		{name: "one_trivial", value: intp(1), want: TierTrivial},
		{name: "two_tolerable", value: intp(2), want: TierTolerable},
		{name: "four_moderate", value: intp(4), want: TierModerate},
		{name: "eight_important", value: intp(8), want: TierImportant},
		{name: "sixteen_intolerable", value: intp(16), want: TierIntolerable},
		{name: "off_domain_not_evaluated", value: intp(3), want: TierNotEvaluated},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Classify(SchemeLegacyVEP, tc.value)
			if got != tc.want {
				t.Fatalf("Classify(vep, %v)=%q, want %q", tc.value, got, tc.want)
			}
		})
	}
}

// Larger products never classify lower under the banded scheme.
func TestClassifyCategoryMonotonic(t *testing.T) {
	rank := map[Tier]int{
		TierTolerable:   1,
		TierModerate:    2,
		TierImportant:   3,
		TierIntolerable: 4,
	}
	levels := []int{1, 2, 4}
	var products []int
	for _, p := range levels {
		for _, c := range levels {
			products = append(products, p*c)
		}
	}
	for _, a := range products {
		for _, b := range products {
			if a > b {
				continue
			}
			ra := rank[Classify(SchemeCategory, &a)]
			rb := rank[Classify(SchemeCategory, &b)]
			if ra > rb {
				t.Fatalf("classification not monotonic: value %d ranks above value %d", a, b)
			}
		}
	}
}

func TestScore(t *testing.T) {
	if got := Score(intp(2), intp(4)); got == nil || *got != 8 {
		t.Fatalf("Score(2,4)=%v, want 8", got)
	}
	if got := Score(nil, intp(4)); got != nil {
		t.Fatalf("Score(nil,4)=%v, want nil", got)
	}
	if got := Score(intp(2), nil); got != nil {
		t.Fatalf("Score(2,nil)=%v, want nil", got)
	}
}

func TestValidateLevel(t *testing.T) {
	for _, v := range []int{1, 2, 4} {
		if err := ValidateLevel("probabilidad", v); err != nil {
			t.Fatalf("ValidateLevel(%d) unexpected error: %v", v, err)
		}
	}
	for _, v := range []int{0, 3, 5, -1, 16} {
		if err := ValidateLevel("probabilidad", v); err == nil {
			t.Fatalf("ValidateLevel(%d) expected error", v)
		}
	}
}
