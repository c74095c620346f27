package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/riskbee/riskbee-backend/internal/types"
)

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, email string) *types.User {
	tb.Helper()
	u := &types.User{
		ID:        uuid.New(),
		Email:     email,
		Password:  "pw",
		FirstName: "A",
		LastName:  "B",
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedCompany(tb testing.TB, ctx context.Context, tx *gorm.DB, ownerID uuid.UUID, rut string) *types.Company {
	tb.Helper()
	c := &types.Company{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		RazonSocial: "Constructora Ejemplo",
		Rut:         rut,
	}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed company: %v", err)
	}
	return c
}

func SeedMatrix(tb testing.TB, ctx context.Context, tx *gorm.DB, companyID uuid.UUID) *types.Matrix {
	tb.Helper()
	m := &types.Matrix{
		ID:             uuid.New(),
		CompanyID:      companyID,
		NombreProyecto: "Obra",
		Estado:         types.MatrixStatusInitial,
		Version:        1,
	}
	if err := tx.WithContext(ctx).Create(m).Error; err != nil {
		tb.Fatalf("seed matrix: %v", err)
	}
	return m
}

func SeedProcess(tb testing.TB, ctx context.Context, tx *gorm.DB, matrixID uuid.UUID, nombre string) *types.Process {
	tb.Helper()
	p := &types.Process{
		ID:       uuid.New(),
		MatrixID: matrixID,
		Nombre:   nombre,
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed process: %v", err)
	}
	return p
}

func SeedTask(tb testing.TB, ctx context.Context, tx *gorm.DB, processID uuid.UUID) *types.Task {
	tb.Helper()
	t := &types.Task{
		ID:            uuid.New(),
		ProcessID:     processID,
		PuestoTrabajo: "Operario",
		Descripcion:   "tarea",
		EsRutinaria:   true,
	}
	if err := tx.WithContext(ctx).Create(t).Error; err != nil {
		tb.Fatalf("seed task: %v", err)
	}
	return t
}

func SeedHazard(tb testing.TB, ctx context.Context, tx *gorm.DB, codigo string) *types.Hazard {
	tb.Helper()
	h := &types.Hazard{
		ID:               uuid.New(),
		FamiliaRiesgo:    "Seguridad",
		RiesgoEspecifico: "Caída a distinto nivel",
		Codigo:           codigo,
	}
	if err := tx.WithContext(ctx).Create(h).Error; err != nil {
		tb.Fatalf("seed hazard: %v", err)
	}
	return h
}

func SeedRisk(tb testing.TB, ctx context.Context, tx *gorm.DB, taskID, hazardID uuid.UUID) *types.Risk {
	tb.Helper()
	r := &types.Risk{
		ID:       uuid.New(),
		TaskID:   taskID,
		HazardID: hazardID,
		Esquema:  "categorias",
	}
	r.Recalculate()
	if err := tx.WithContext(ctx).Create(r).Error; err != nil {
		tb.Fatalf("seed risk: %v", err)
	}
	return r
}

func SeedControlMeasure(tb testing.TB, ctx context.Context, tx *gorm.DB, riskID uuid.UUID) *types.ControlMeasure {
	tb.Helper()
	m := &types.ControlMeasure{
		ID:          uuid.New(),
		RiskID:      riskID,
		Descripcion: "Instalar barandas",
		TipoControl: types.ControlEngineering,
		Responsable: "Prevencionista",
	}
	if err := tx.WithContext(ctx).Create(m).Error; err != nil {
		tb.Fatalf("seed control measure: %v", err)
	}
	return m
}

func SeedIperMatrix(tb testing.TB, ctx context.Context, tx *gorm.DB, companyID uuid.UUID) *types.IperMatrix {
	tb.Helper()
	m := &types.IperMatrix{
		ID:        uuid.New(),
		CompanyID: companyID,
		Codigo:    "IPER-001",
		Version:   "1",
	}
	if err := tx.WithContext(ctx).Create(m).Error; err != nil {
		tb.Fatalf("seed iper matrix: %v", err)
	}
	return m
}

func SeedIperDetail(tb testing.TB, ctx context.Context, tx *gorm.DB, matrixID uuid.UUID) *types.IperDetail {
	tb.Helper()
	d := &types.IperDetail{
		ID:           uuid.New(),
		IperMatrixID: matrixID,
		Proceso:      "Excavación",
	}
	if err := tx.WithContext(ctx).Create(d).Error; err != nil {
		tb.Fatalf("seed iper detail: %v", err)
	}
	return d
}

func SeedLegalTask(tb testing.TB, ctx context.Context, tx *gorm.DB, companyID uuid.UUID, due time.Time) *types.LegalTask {
	tb.Helper()
	t := &types.LegalTask{
		ID:                      uuid.New(),
		CompanyID:               companyID,
		NombreObligacion:        "Informe mensual",
		FechaInicio:             due,
		Frecuencia:              types.FrecuenciaMensual,
		ProximaFechaVencimiento: due,
		NotificacionEmail:       "prevencion@example.com",
	}
	if err := tx.WithContext(ctx).Create(t).Error; err != nil {
		tb.Fatalf("seed legal task: %v", err)
	}
	return t
}
