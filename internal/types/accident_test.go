package types

import "testing"

func TestNextReportState(t *testing.T) {
	cases := []struct {
		current   string
		completed bool
		want      string
	}{
		{ReportStateReported, false, ReportStateUnderInvestigation},
		{ReportStateReported, true, ReportStateClosed},
		{ReportStateUnderInvestigation, false, ReportStateUnderInvestigation},
		{ReportStateUnderInvestigation, true, ReportStateClosed},
		// reopening: an incomplete save on a closed report puts it back
		// under investigation
		{ReportStateClosed, false, ReportStateUnderInvestigation},
		{ReportStateClosed, true, ReportStateClosed},
	}

	for _, tc := range cases {
		got := NextReportState(tc.current, tc.completed)
		if got != tc.want {
			t.Errorf("NextReportState(%q, %v): expected %q, got %q", tc.current, tc.completed, tc.want, got)
		}
	}
}
