package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/riskbee/riskbee-backend/internal/logger"
	"github.com/riskbee/riskbee-backend/internal/mailer"
	"github.com/riskbee/riskbee-backend/internal/repos"
	"github.com/riskbee/riskbee-backend/internal/types"
)

// AlertService is the batch side of legal-compliance tracking: it mails a
// reminder for every open obligation that falls due within the alert window.
type AlertService interface {
	SendDueAlerts(ctx context.Context, window time.Duration) (int, error)
}

type alertService struct {
	db            *gorm.DB
	log           *logger.Logger
	legalTaskRepo repos.LegalTaskRepo
	companyRepo   repos.CompanyRepo
	mail          mailer.Client
	concurrency   int
}

func NewAlertService(db *gorm.DB, log *logger.Logger, legalTaskRepo repos.LegalTaskRepo, companyRepo repos.CompanyRepo, mail mailer.Client, concurrency int) AlertService {
	if concurrency <= 0 {
		concurrency = 4
	}
	return &alertService{
		db:            db,
		log:           log.With("service", "AlertService"),
		legalTaskRepo: legalTaskRepo,
		companyRepo:   companyRepo,
		mail:          mail,
		concurrency:   concurrency,
	}
}

// SendDueAlerts returns the number of alerts delivered. Tasks without a
// notification address are skipped. One failed send does not stop the batch;
// the first error is reported after every task has been attempted.
func (as *alertService) SendDueAlerts(ctx context.Context, window time.Duration) (int, error) {
	cutoff := time.Now().Add(window)
	tasks, err := as.legalTaskRepo.ListDueBefore(ctx, nil, cutoff)
	if err != nil {
		return 0, fmt.Errorf("listing due tasks: %w", err)
	}
	if len(tasks) == 0 {
		as.log.Info("no due legal tasks", "cutoff", cutoff.Format("2006-01-02"))
		return 0, nil
	}

	companyIDs := make([]uuid.UUID, 0, len(tasks))
	seen := make(map[uuid.UUID]struct{}, len(tasks))
	for _, t := range tasks {
		if _, ok := seen[t.CompanyID]; !ok {
			seen[t.CompanyID] = struct{}{}
			companyIDs = append(companyIDs, t.CompanyID)
		}
	}
	companies, err := as.companyRepo.GetByIDs(ctx, nil, companyIDs)
	if err != nil {
		return 0, fmt.Errorf("loading companies: %w", err)
	}
	companyByID := make(map[uuid.UUID]*types.Company, len(companies))
	for _, c := range companies {
		companyByID[c.ID] = c
	}

	var (
		sent     atomic.Int64
		errMu    sync.Mutex
		firstErr error
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(as.concurrency)
	for _, task := range tasks {
		task := task
		if strings.TrimSpace(task.NotificacionEmail) == "" {
			continue
		}
		company := companyByID[task.CompanyID]
		if company == nil {
			continue
		}
		g.Go(func() error {
			req := mailer.SendEmailRequest{
				To:      []mailer.EmailAddress{{Email: task.NotificacionEmail}},
				Subject: fmt.Sprintf("Alerta de Vencimiento: %s", task.NombreObligacion),
				Text: fmt.Sprintf(
					"Hola,\n\n"+
						"Te recordamos que la obligación '%s' para la empresa '%s' vence el %s.\n\n"+
						"Por favor, asegúrate de completarla a tiempo.\n\n"+
						"Saludos,\nEl equipo de Risk-Bee",
					task.NombreObligacion,
					company.RazonSocial,
					task.ProximaFechaVencimiento.Format("02-01-2006"),
				),
			}
			if _, err := as.mail.Send(gctx, req); err != nil {
				as.log.Error("alert send failed",
					"task_id", task.ID.String(),
					"to", task.NotificacionEmail,
					"error", err.Error(),
				)
				errMu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				errMu.Unlock()
				return nil
			}
			sent.Add(1)
			as.log.Info("alert sent",
				"task_id", task.ID.String(),
				"obligacion", task.NombreObligacion,
				"vence", task.ProximaFechaVencimiento.Format("02-01-2006"),
			)
			return nil
		})
	}
	_ = g.Wait()
	return int(sent.Load()), firstErr
}
