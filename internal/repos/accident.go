package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/riskbee/riskbee-backend/internal/logger"
	"github.com/riskbee/riskbee-backend/internal/scope"
	"github.com/riskbee/riskbee-backend/internal/types"
)

type AccidentReportRepo interface {
	Create(ctx context.Context, tx *gorm.DB, report *types.AccidentReport) (*types.AccidentReport, error)
	GetByID(ctx context.Context, tx *gorm.DB, s scope.Scope, id uuid.UUID) (*types.AccidentReport, error)
	ListByCompany(ctx context.Context, tx *gorm.DB, s scope.Scope, companyID uuid.UUID) ([]*types.AccidentReport, error)
	Update(ctx context.Context, tx *gorm.DB, report *types.AccidentReport) (*types.AccidentReport, error)
	CountByState(ctx context.Context, tx *gorm.DB, s scope.Scope) ([]ClassificationCount, error)
}

type accidentReportRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAccidentReportRepo(db *gorm.DB, baseLog *logger.Logger) AccidentReportRepo {
	return &accidentReportRepo{db: db, log: baseLog.With("repo", "AccidentReportRepo")}
}

func (ar *accidentReportRepo) Create(ctx context.Context, tx *gorm.DB, report *types.AccidentReport) (*types.AccidentReport, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}
	if err := transaction.WithContext(ctx).Create(report).Error; err != nil {
		return nil, err
	}
	return report, nil
}

func (ar *accidentReportRepo) GetByID(ctx context.Context, tx *gorm.DB, s scope.Scope, id uuid.UUID) (*types.AccidentReport, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}
	var report types.AccidentReport
	q := transaction.WithContext(ctx).Where(`"accident_report"."id" = ?`, id)
	if err := scopeByCompanyID(q, s, "accident_report").First(&report).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

func (ar *accidentReportRepo) ListByCompany(ctx context.Context, tx *gorm.DB, s scope.Scope, companyID uuid.UUID) ([]*types.AccidentReport, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}
	var results []*types.AccidentReport
	q := transaction.WithContext(ctx).
		Where(`"accident_report"."company_id" = ?`, companyID).
		Order(`"accident_report"."fecha_accidente" DESC`)
	if err := scopeByCompanyID(q, s, "accident_report").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (ar *accidentReportRepo) Update(ctx context.Context, tx *gorm.DB, report *types.AccidentReport) (*types.AccidentReport, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}
	if err := transaction.WithContext(ctx).Save(report).Error; err != nil {
		return nil, err
	}
	return report, nil
}

func (ar *accidentReportRepo) CountByState(ctx context.Context, tx *gorm.DB, s scope.Scope) ([]ClassificationCount, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}
	var results []ClassificationCount
	q := transaction.WithContext(ctx).
		Model(&types.AccidentReport{}).
		Select(`"accident_report"."estado" AS label, COUNT(*) AS count`).
		Group(`"accident_report"."estado"`)
	if err := scopeByCompanyID(q, s, "accident_report").Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

type AccidentInvestigationRepo interface {
	Upsert(ctx context.Context, tx *gorm.DB, investigation *types.AccidentInvestigation) (*types.AccidentInvestigation, error)
	GetByReportID(ctx context.Context, tx *gorm.DB, reportID uuid.UUID) (*types.AccidentInvestigation, error)
}

type accidentInvestigationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAccidentInvestigationRepo(db *gorm.DB, baseLog *logger.Logger) AccidentInvestigationRepo {
	return &accidentInvestigationRepo{db: db, log: baseLog.With("repo", "AccidentInvestigationRepo")}
}

func (ir *accidentInvestigationRepo) Upsert(ctx context.Context, tx *gorm.DB, investigation *types.AccidentInvestigation) (*types.AccidentInvestigation, error) {
	transaction := tx
	if transaction == nil {
		transaction = ir.db
	}
	if err := transaction.WithContext(ctx).Save(investigation).Error; err != nil {
		return nil, err
	}
	return investigation, nil
}

func (ir *accidentInvestigationRepo) GetByReportID(ctx context.Context, tx *gorm.DB, reportID uuid.UUID) (*types.AccidentInvestigation, error) {
	transaction := tx
	if transaction == nil {
		transaction = ir.db
	}
	var investigation types.AccidentInvestigation
	if err := transaction.WithContext(ctx).
		Where("report_id = ?", reportID).
		First(&investigation).Error; err != nil {
		return nil, err
	}
	return &investigation, nil
}
