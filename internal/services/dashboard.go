package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/riskbee/riskbee-backend/internal/logger"
	"github.com/riskbee/riskbee-backend/internal/repos"
	"github.com/riskbee/riskbee-backend/internal/riskeval"
	"github.com/riskbee/riskbee-backend/internal/scope"
	"github.com/riskbee/riskbee-backend/internal/types"
)

// ChartData is the payload the dashboard charts render from. Labels and
// counts are parallel slices in a fixed order so the chart colors stay
// stable; buckets with zero rows are included.
type ChartData struct {
	ClassificationLabels []string `json:"classification_labels"`
	ClassificationCounts []int64  `json:"classification_counts"`
	HierarchyLabels      []string `json:"hierarchy_labels"`
	HierarchyCounts      []int64  `json:"hierarchy_counts"`
}

type DashboardService interface {
	ChartData(ctx context.Context, s scope.Scope) (*ChartData, error)
}

type dashboardService struct {
	db          *gorm.DB
	log         *logger.Logger
	riskRepo    repos.RiskRepo
	measureRepo repos.ControlMeasureRepo
}

func NewDashboardService(db *gorm.DB, log *logger.Logger, riskRepo repos.RiskRepo, measureRepo repos.ControlMeasureRepo) DashboardService {
	return &dashboardService{
		db:          db,
		log:         log.With("service", "DashboardService"),
		riskRepo:    riskRepo,
		measureRepo: measureRepo,
	}
}

var classificationOrder = []riskeval.Tier{
	riskeval.TierNotEvaluated,
	riskeval.TierTrivial,
	riskeval.TierTolerable,
	riskeval.TierModerate,
	riskeval.TierImportant,
	riskeval.TierIntolerable,
}

var hierarchyOrder = []string{
	types.ControlElimination,
	types.ControlSubstitution,
	types.ControlEngineering,
	types.ControlAdministrative,
	types.ControlPPE,
}

func (ds *dashboardService) ChartData(ctx context.Context, s scope.Scope) (*ChartData, error) {
	riskCounts, err := ds.riskRepo.CountByClassification(ctx, nil, s)
	if err != nil {
		return nil, err
	}
	measureCounts, err := ds.measureRepo.CountByType(ctx, nil, s)
	if err != nil {
		return nil, err
	}

	byClassification := make(map[string]int64, len(riskCounts))
	for _, c := range riskCounts {
		byClassification[c.Label] = c.Count
	}
	byType := make(map[string]int64, len(measureCounts))
	for _, c := range measureCounts {
		byType[c.Label] = c.Count
	}

	data := &ChartData{}
	for _, tier := range classificationOrder {
		data.ClassificationLabels = append(data.ClassificationLabels, string(tier))
		data.ClassificationCounts = append(data.ClassificationCounts, byClassification[string(tier)])
	}
	for _, controlType := range hierarchyOrder {
		data.HierarchyLabels = append(data.HierarchyLabels, types.ControlTypeLabels[controlType])
		data.HierarchyCounts = append(data.HierarchyCounts, byType[controlType])
	}
	return data, nil
}
