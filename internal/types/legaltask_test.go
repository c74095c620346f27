package types

import (
	"testing"
	"time"
)

func TestLegalTaskNextDueDate(t *testing.T) {
	from := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		frecuencia string
		want       *time.Time
	}{
		{FrecuenciaMensual, timePtr(time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC))},
		{FrecuenciaTrimestral, timePtr(time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC))},
		{FrecuenciaSemestral, timePtr(time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC))},
		{FrecuenciaAnual, timePtr(time.Date(2027, 1, 15, 0, 0, 0, 0, time.UTC))},
		{FrecuenciaPuntual, nil},
		{"", nil},
	}

	for _, tc := range cases {
		task := &LegalTask{Frecuencia: tc.frecuencia}
		got := task.NextDueDate(from)
		if tc.want == nil {
			if got != nil {
				t.Errorf("NextDueDate(%q): expected nil, got %v", tc.frecuencia, got)
			}
			continue
		}
		if got == nil || !got.Equal(*tc.want) {
			t.Errorf("NextDueDate(%q): expected %v, got %v", tc.frecuencia, tc.want, got)
		}
	}
}

func timePtr(t time.Time) *time.Time { return &t }
