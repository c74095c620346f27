package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/riskbee/riskbee-backend/internal/logger"
	"github.com/riskbee/riskbee-backend/internal/scope"
	"github.com/riskbee/riskbee-backend/internal/types"
)

type MatrixRepo interface {
	Create(ctx context.Context, tx *gorm.DB, matrix *types.Matrix) (*types.Matrix, error)
	GetByID(ctx context.Context, tx *gorm.DB, s scope.Scope, id uuid.UUID) (*types.Matrix, error)
	ListByCompany(ctx context.Context, tx *gorm.DB, s scope.Scope, companyID uuid.UUID) ([]*types.Matrix, error)
	Update(ctx context.Context, tx *gorm.DB, matrix *types.Matrix) (*types.Matrix, error)
	Delete(ctx context.Context, tx *gorm.DB, s scope.Scope, id uuid.UUID) error
}

type matrixRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMatrixRepo(db *gorm.DB, baseLog *logger.Logger) MatrixRepo {
	return &matrixRepo{db: db, log: baseLog.With("repo", "MatrixRepo")}
}

func (mr *matrixRepo) Create(ctx context.Context, tx *gorm.DB, matrix *types.Matrix) (*types.Matrix, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	if err := transaction.WithContext(ctx).Create(matrix).Error; err != nil {
		return nil, err
	}
	return matrix, nil
}

func (mr *matrixRepo) GetByID(ctx context.Context, tx *gorm.DB, s scope.Scope, id uuid.UUID) (*types.Matrix, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	var matrix types.Matrix
	q := transaction.WithContext(ctx).Where(`"matrix"."id" = ?`, id)
	if err := scopeMatrix(q, s).First(&matrix).Error; err != nil {
		return nil, err
	}
	return &matrix, nil
}

func (mr *matrixRepo) ListByCompany(ctx context.Context, tx *gorm.DB, s scope.Scope, companyID uuid.UUID) ([]*types.Matrix, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	var results []*types.Matrix
	q := transaction.WithContext(ctx).
		Where(`"matrix"."company_id" = ?`, companyID).
		Order(`"matrix"."created_at"`)
	if err := scopeMatrix(q, s).Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (mr *matrixRepo) Update(ctx context.Context, tx *gorm.DB, matrix *types.Matrix) (*types.Matrix, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	if err := transaction.WithContext(ctx).Save(matrix).Error; err != nil {
		return nil, err
	}
	return matrix, nil
}

func (mr *matrixRepo) Delete(ctx context.Context, tx *gorm.DB, s scope.Scope, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	matrix, err := mr.GetByID(ctx, transaction, s, id)
	if err != nil {
		return err
	}
	res := transaction.WithContext(ctx).Delete(matrix)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

type ProcessRepo interface {
	Create(ctx context.Context, tx *gorm.DB, process *types.Process) (*types.Process, error)
	GetByID(ctx context.Context, tx *gorm.DB, s scope.Scope, id uuid.UUID) (*types.Process, error)
	ListByMatrix(ctx context.Context, tx *gorm.DB, s scope.Scope, matrixID uuid.UUID) ([]*types.Process, error)
	Update(ctx context.Context, tx *gorm.DB, process *types.Process) (*types.Process, error)
	Delete(ctx context.Context, tx *gorm.DB, s scope.Scope, id uuid.UUID) error
	NombreExists(ctx context.Context, tx *gorm.DB, matrixID uuid.UUID, nombre string, excludeID *uuid.UUID) (bool, error)
}

type processRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProcessRepo(db *gorm.DB, baseLog *logger.Logger) ProcessRepo {
	return &processRepo{db: db, log: baseLog.With("repo", "ProcessRepo")}
}

func (pr *processRepo) Create(ctx context.Context, tx *gorm.DB, process *types.Process) (*types.Process, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	if err := transaction.WithContext(ctx).Create(process).Error; err != nil {
		return nil, err
	}
	return process, nil
}

func (pr *processRepo) GetByID(ctx context.Context, tx *gorm.DB, s scope.Scope, id uuid.UUID) (*types.Process, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	var process types.Process
	q := transaction.WithContext(ctx).Where(`"process"."id" = ?`, id)
	if err := scopeProcess(q, s).First(&process).Error; err != nil {
		return nil, err
	}
	return &process, nil
}

func (pr *processRepo) ListByMatrix(ctx context.Context, tx *gorm.DB, s scope.Scope, matrixID uuid.UUID) ([]*types.Process, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	var results []*types.Process
	q := transaction.WithContext(ctx).
		Where(`"process"."matrix_id" = ?`, matrixID).
		Order(`"process"."nombre"`)
	if err := scopeProcess(q, s).Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (pr *processRepo) Update(ctx context.Context, tx *gorm.DB, process *types.Process) (*types.Process, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	if err := transaction.WithContext(ctx).Save(process).Error; err != nil {
		return nil, err
	}
	return process, nil
}

func (pr *processRepo) Delete(ctx context.Context, tx *gorm.DB, s scope.Scope, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	process, err := pr.GetByID(ctx, transaction, s, id)
	if err != nil {
		return err
	}
	return transaction.WithContext(ctx).Delete(process).Error
}

func (pr *processRepo) NombreExists(ctx context.Context, tx *gorm.DB, matrixID uuid.UUID, nombre string, excludeID *uuid.UUID) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	var count int64
	q := transaction.WithContext(ctx).Model(&types.Process{}).
		Where("matrix_id = ? AND nombre = ?", matrixID, nombre)
	if excludeID != nil {
		q = q.Where("id <> ?", *excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

type TaskRepo interface {
	Create(ctx context.Context, tx *gorm.DB, task *types.Task) (*types.Task, error)
	GetByID(ctx context.Context, tx *gorm.DB, s scope.Scope, id uuid.UUID) (*types.Task, error)
	ListByProcess(ctx context.Context, tx *gorm.DB, s scope.Scope, processID uuid.UUID) ([]*types.Task, error)
	Update(ctx context.Context, tx *gorm.DB, task *types.Task) (*types.Task, error)
	Delete(ctx context.Context, tx *gorm.DB, s scope.Scope, id uuid.UUID) error
}

type taskRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTaskRepo(db *gorm.DB, baseLog *logger.Logger) TaskRepo {
	return &taskRepo{db: db, log: baseLog.With("repo", "TaskRepo")}
}

func (tr *taskRepo) Create(ctx context.Context, tx *gorm.DB, task *types.Task) (*types.Task, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}
	if err := transaction.WithContext(ctx).Create(task).Error; err != nil {
		return nil, err
	}
	return task, nil
}

func (tr *taskRepo) GetByID(ctx context.Context, tx *gorm.DB, s scope.Scope, id uuid.UUID) (*types.Task, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}
	var task types.Task
	q := transaction.WithContext(ctx).Where(`"task"."id" = ?`, id)
	if err := scopeTask(q, s).First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func (tr *taskRepo) ListByProcess(ctx context.Context, tx *gorm.DB, s scope.Scope, processID uuid.UUID) ([]*types.Task, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}
	var results []*types.Task
	q := transaction.WithContext(ctx).
		Where(`"task"."process_id" = ?`, processID).
		Order(`"task"."created_at"`)
	if err := scopeTask(q, s).Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (tr *taskRepo) Update(ctx context.Context, tx *gorm.DB, task *types.Task) (*types.Task, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}
	if err := transaction.WithContext(ctx).Save(task).Error; err != nil {
		return nil, err
	}
	return task, nil
}

func (tr *taskRepo) Delete(ctx context.Context, tx *gorm.DB, s scope.Scope, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}
	task, err := tr.GetByID(ctx, transaction, s, id)
	if err != nil {
		return err
	}
	return transaction.WithContext(ctx).Delete(task).Error
}
