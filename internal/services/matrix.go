package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/riskbee/riskbee-backend/internal/apierr"
	"github.com/riskbee/riskbee-backend/internal/logger"
	"github.com/riskbee/riskbee-backend/internal/repos"
	"github.com/riskbee/riskbee-backend/internal/scope"
	"github.com/riskbee/riskbee-backend/internal/types"
)

type MatrixService interface {
	CreateMatrix(ctx context.Context, s scope.Scope, companyID uuid.UUID, nombreProyecto string) (*types.Matrix, error)
	GetMatrix(ctx context.Context, s scope.Scope, id uuid.UUID) (*types.Matrix, error)
	ListMatrices(ctx context.Context, s scope.Scope, companyID uuid.UUID) ([]*types.Matrix, error)
	UpdateMatrix(ctx context.Context, s scope.Scope, id uuid.UUID, nombreProyecto, estado string) (*types.Matrix, error)
	DeleteMatrix(ctx context.Context, s scope.Scope, id uuid.UUID) error

	CreateProcess(ctx context.Context, s scope.Scope, matrixID uuid.UUID, nombre string) (*types.Process, error)
	ListProcesses(ctx context.Context, s scope.Scope, matrixID uuid.UUID) ([]*types.Process, error)
	UpdateProcess(ctx context.Context, s scope.Scope, id uuid.UUID, nombre string) (*types.Process, error)
	DeleteProcess(ctx context.Context, s scope.Scope, id uuid.UUID) error

	CreateTask(ctx context.Context, s scope.Scope, task *types.Task) (*types.Task, error)
	ListTasks(ctx context.Context, s scope.Scope, processID uuid.UUID) ([]*types.Task, error)
	UpdateTask(ctx context.Context, s scope.Scope, task *types.Task) (*types.Task, error)
	DeleteTask(ctx context.Context, s scope.Scope, id uuid.UUID) error
}

type matrixService struct {
	db          *gorm.DB
	log         *logger.Logger
	companyRepo repos.CompanyRepo
	matrixRepo  repos.MatrixRepo
	processRepo repos.ProcessRepo
	taskRepo    repos.TaskRepo
}

func NewMatrixService(
	db *gorm.DB,
	log *logger.Logger,
	companyRepo repos.CompanyRepo,
	matrixRepo repos.MatrixRepo,
	processRepo repos.ProcessRepo,
	taskRepo repos.TaskRepo,
) MatrixService {
	return &matrixService{
		db:          db,
		log:         log.With("service", "MatrixService"),
		companyRepo: companyRepo,
		matrixRepo:  matrixRepo,
		processRepo: processRepo,
		taskRepo:    taskRepo,
	}
}

func (ms *matrixService) CreateMatrix(ctx context.Context, s scope.Scope, companyID uuid.UUID, nombreProyecto string) (*types.Matrix, error) {
	nombreProyecto = strings.TrimSpace(nombreProyecto)
	if nombreProyecto == "" {
		return nil, apierr.Validation("nombre_proyecto is required")
	}
	if _, err := ms.companyRepo.GetByID(ctx, nil, s, companyID); err != nil {
		return nil, mapNotFound(err, "company")
	}
	return ms.matrixRepo.Create(ctx, nil, &types.Matrix{
		CompanyID:      companyID,
		NombreProyecto: nombreProyecto,
		Estado:         types.MatrixStatusInitial,
		Version:        1,
	})
}

func (ms *matrixService) GetMatrix(ctx context.Context, s scope.Scope, id uuid.UUID) (*types.Matrix, error) {
	matrix, err := ms.matrixRepo.GetByID(ctx, nil, s, id)
	if err != nil {
		return nil, mapNotFound(err, "matrix")
	}
	return matrix, nil
}

func (ms *matrixService) ListMatrices(ctx context.Context, s scope.Scope, companyID uuid.UUID) ([]*types.Matrix, error) {
	if _, err := ms.companyRepo.GetByID(ctx, nil, s, companyID); err != nil {
		return nil, mapNotFound(err, "company")
	}
	return ms.matrixRepo.ListByCompany(ctx, nil, s, companyID)
}

// UpdateMatrix bumps the version counter on every edit. Estado is free text;
// the application only ever sets the initial value itself.
func (ms *matrixService) UpdateMatrix(ctx context.Context, s scope.Scope, id uuid.UUID, nombreProyecto, estado string) (*types.Matrix, error) {
	matrix, err := ms.matrixRepo.GetByID(ctx, nil, s, id)
	if err != nil {
		return nil, mapNotFound(err, "matrix")
	}
	if nombre := strings.TrimSpace(nombreProyecto); nombre != "" {
		matrix.NombreProyecto = nombre
	}
	if estado = strings.TrimSpace(estado); estado != "" {
		matrix.Estado = estado
	}
	matrix.Version++
	return ms.matrixRepo.Update(ctx, nil, matrix)
}

func (ms *matrixService) DeleteMatrix(ctx context.Context, s scope.Scope, id uuid.UUID) error {
	if err := ms.matrixRepo.Delete(ctx, nil, s, id); err != nil {
		return mapNotFound(err, "matrix")
	}
	return nil
}

func (ms *matrixService) CreateProcess(ctx context.Context, s scope.Scope, matrixID uuid.UUID, nombre string) (*types.Process, error) {
	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		return nil, apierr.Validation("nombre is required")
	}
	if _, err := ms.matrixRepo.GetByID(ctx, nil, s, matrixID); err != nil {
		return nil, mapNotFound(err, "matrix")
	}
	exists, err := ms.processRepo.NombreExists(ctx, nil, matrixID, nombre, nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apierr.Validation("process %q already exists in this matrix", nombre)
	}
	return ms.processRepo.Create(ctx, nil, &types.Process{MatrixID: matrixID, Nombre: nombre})
}

func (ms *matrixService) ListProcesses(ctx context.Context, s scope.Scope, matrixID uuid.UUID) ([]*types.Process, error) {
	if _, err := ms.matrixRepo.GetByID(ctx, nil, s, matrixID); err != nil {
		return nil, mapNotFound(err, "matrix")
	}
	return ms.processRepo.ListByMatrix(ctx, nil, s, matrixID)
}

func (ms *matrixService) UpdateProcess(ctx context.Context, s scope.Scope, id uuid.UUID, nombre string) (*types.Process, error) {
	process, err := ms.processRepo.GetByID(ctx, nil, s, id)
	if err != nil {
		return nil, mapNotFound(err, "process")
	}
	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		return nil, apierr.Validation("nombre is required")
	}
	exists, err := ms.processRepo.NombreExists(ctx, nil, process.MatrixID, nombre, &process.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apierr.Validation("process %q already exists in this matrix", nombre)
	}
	process.Nombre = nombre
	return ms.processRepo.Update(ctx, nil, process)
}

func (ms *matrixService) DeleteProcess(ctx context.Context, s scope.Scope, id uuid.UUID) error {
	if err := ms.processRepo.Delete(ctx, nil, s, id); err != nil {
		return mapNotFound(err, "process")
	}
	return nil
}

func (ms *matrixService) CreateTask(ctx context.Context, s scope.Scope, task *types.Task) (*types.Task, error) {
	if strings.TrimSpace(task.Descripcion) == "" {
		return nil, apierr.Validation("descripcion is required")
	}
	if _, err := ms.processRepo.GetByID(ctx, nil, s, task.ProcessID); err != nil {
		return nil, mapNotFound(err, "process")
	}
	return ms.taskRepo.Create(ctx, nil, task)
}

func (ms *matrixService) ListTasks(ctx context.Context, s scope.Scope, processID uuid.UUID) ([]*types.Task, error) {
	if _, err := ms.processRepo.GetByID(ctx, nil, s, processID); err != nil {
		return nil, mapNotFound(err, "process")
	}
	return ms.taskRepo.ListByProcess(ctx, nil, s, processID)
}

func (ms *matrixService) UpdateTask(ctx context.Context, s scope.Scope, task *types.Task) (*types.Task, error) {
	existing, err := ms.taskRepo.GetByID(ctx, nil, s, task.ID)
	if err != nil {
		return nil, mapNotFound(err, "task")
	}
	existing.PuestoTrabajo = task.PuestoTrabajo
	existing.Descripcion = task.Descripcion
	existing.EsRutinaria = task.EsRutinaria
	existing.NumHombres = task.NumHombres
	existing.NumMujeres = task.NumMujeres
	existing.Equipos = task.Equipos
	return ms.taskRepo.Update(ctx, nil, existing)
}

func (ms *matrixService) DeleteTask(ctx context.Context, s scope.Scope, id uuid.UUID) error {
	if err := ms.taskRepo.Delete(ctx, nil, s, id); err != nil {
		return mapNotFound(err, "task")
	}
	return nil
}
