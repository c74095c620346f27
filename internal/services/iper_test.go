package services

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/riskbee/riskbee-backend/internal/apierr"
	"github.com/riskbee/riskbee-backend/internal/repos"
	"github.com/riskbee/riskbee-backend/internal/repos/testutil"
	"github.com/riskbee/riskbee-backend/internal/scope"
	"github.com/riskbee/riskbee-backend/internal/types"
)

func TestCellFieldsScoringRecompute(t *testing.T) {
	d := &types.IperDetail{}

	apply := func(field string, value interface{}) {
		t.Helper()
		cf, ok := cellFields[field]
		if !ok {
			t.Fatalf("field %q not editable", field)
		}
		if err := cf.set(d, value); err != nil {
			t.Fatalf("set %q: %v", field, err)
		}
		if cf.recompute != nil {
			cf.recompute(d)
		}
	}

	apply("eval_probabilidad", float64(2))
	if d.EvalValor != nil {
		t.Fatalf("expected no score with severity unset, got %d", *d.EvalValor)
	}
	if d.EvalClasificacion != "No evaluado" {
		t.Fatalf("expected No evaluado, got %q", d.EvalClasificacion)
	}

	apply("eval_severidad", float64(4))
	if d.EvalValor == nil || *d.EvalValor != 8 {
		t.Fatalf("expected eval_valor 8, got %v", d.EvalValor)
	}
	if d.EvalClasificacion != "Importante" {
		t.Fatalf("expected Importante, got %q", d.EvalClasificacion)
	}

	// residual columns recompute independently of the inherent pair
	apply("res_probabilidad", "1")
	apply("res_severidad", "2")
	if d.ResValor == nil || *d.ResValor != 2 {
		t.Fatalf("expected res_valor 2, got %v", d.ResValor)
	}
	if d.ResClasificacion != "Tolerable" {
		t.Fatalf("expected Tolerable, got %q", d.ResClasificacion)
	}
	if *d.EvalValor != 8 {
		t.Fatalf("inherent score changed by residual edit: %d", *d.EvalValor)
	}

	// clearing one input clears the derived pair
	apply("eval_probabilidad", nil)
	if d.EvalValor != nil || d.EvalClasificacion != "No evaluado" {
		t.Fatalf("expected cleared inherent score, got %v %q", d.EvalValor, d.EvalClasificacion)
	}
}

func TestCellFieldsTextColumns(t *testing.T) {
	d := &types.IperDetail{}

	if err := cellFields["peligro"].set(d, "  Trabajo en altura "); err != nil {
		t.Fatalf("set peligro: %v", err)
	}
	if d.Peligro != "Trabajo en altura" {
		t.Fatalf("expected trimmed text, got %q", d.Peligro)
	}

	if err := cellFields["peligro"].set(d, float64(3)); err == nil {
		t.Fatalf("expected error for non-string value on text column")
	}

	if _, ok := cellFields["id"]; ok {
		t.Fatalf("id must not be editable")
	}
	if _, ok := cellFields["iper_matrix_id"]; ok {
		t.Fatalf("iper_matrix_id must not be editable")
	}
}

func TestAsLevel(t *testing.T) {
	cases := []struct {
		in      interface{}
		want    *int
		wantErr bool
	}{
		{nil, nil, false},
		{"", nil, false},
		{float64(1), intPtr(1), false},
		{float64(2), intPtr(2), false},
		{float64(4), intPtr(4), false},
		{"4", intPtr(4), false},
		{float64(3), nil, true},
		{float64(1.5), nil, true},
		{"abc", nil, true},
		{true, nil, true},
	}

	for _, tc := range cases {
		got, err := asLevel(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("asLevel(%v): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("asLevel(%v): %v", tc.in, err)
			continue
		}
		if (got == nil) != (tc.want == nil) || (got != nil && *got != *tc.want) {
			t.Errorf("asLevel(%v): expected %v, got %v", tc.in, tc.want, got)
		}
	}
}

func intPtr(n int) *int { return &n }

func TestIperServiceUpdateCell(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	log := testutil.Logger(t)

	detailRepo := repos.NewIperDetailRepo(tx, log)
	svc := NewIperService(tx, log, repos.NewCompanyRepo(tx, log), repos.NewIperMatrixRepo(tx, log), detailRepo)

	owner := testutil.SeedUser(t, ctx, tx, "iper-grid@example.com")
	company := testutil.SeedCompany(t, ctx, tx, owner.ID, "83.400.500-6")
	matrix := testutil.SeedIperMatrix(t, ctx, tx, company.ID)
	s := scope.ForUser(owner.ID, false)

	// the "new" sentinel creates exactly one row with the field set
	res, err := svc.UpdateCell(ctx, s, matrix.ID, NewRowID, "proceso", "Excavación")
	if err != nil {
		t.Fatalf("UpdateCell (new): %v", err)
	}
	if res.Status != "created" || res.ID == uuid.Nil {
		t.Fatalf("UpdateCell (new): unexpected result %+v", res)
	}
	var rows int64
	if err := tx.WithContext(ctx).Model(&types.IperDetail{}).Where("iper_matrix_id = ?", matrix.ID).Count(&rows).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if rows != 1 {
		t.Fatalf("expected 1 row after create, got %d", rows)
	}

	// a field outside the allow-list neither creates nor mutates anything,
	// and the error is distinguishable from a missing row
	_, err = svc.UpdateCell(ctx, s, matrix.ID, res.ID.String(), "no_such_field", "x")
	if !apierr.IsCode(err, apierr.CodeUnknownField) {
		t.Fatalf("UpdateCell (bad field): expected unknown_field, got %v", err)
	}
	_, err = svc.UpdateCell(ctx, s, matrix.ID, uuid.NewString(), "proceso", "x")
	if !apierr.IsCode(err, apierr.CodeNotFound) {
		t.Fatalf("UpdateCell (missing row): expected not_found, got %v", err)
	}
	if err := tx.WithContext(ctx).Model(&types.IperDetail{}).Where("iper_matrix_id = ?", matrix.ID).Count(&rows).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if rows != 1 {
		t.Fatalf("rejected updates must not create rows, got %d", rows)
	}

	// scoring edits persist the recomputed value/classification pair
	if _, err := svc.UpdateCell(ctx, s, matrix.ID, res.ID.String(), "eval_probabilidad", float64(2)); err != nil {
		t.Fatalf("UpdateCell (probabilidad): %v", err)
	}
	if _, err := svc.UpdateCell(ctx, s, matrix.ID, res.ID.String(), "eval_severidad", float64(4)); err != nil {
		t.Fatalf("UpdateCell (severidad): %v", err)
	}
	detail, err := detailRepo.GetByID(ctx, tx, s, res.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if detail.EvalValor == nil || *detail.EvalValor != 8 {
		t.Fatalf("expected stored eval_valor 8, got %v", detail.EvalValor)
	}
	if detail.EvalClasificacion != "Importante" {
		t.Fatalf("expected stored Importante, got %q", detail.EvalClasificacion)
	}
}
