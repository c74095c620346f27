package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/riskbee/riskbee-backend/internal/logger"
	"github.com/riskbee/riskbee-backend/internal/types"
	"github.com/riskbee/riskbee-backend/internal/utils"
)

type PostgresService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPostgresService(log *logger.Logger) (*PostgresService, error) {
	serviceLog := log.With("service", "PostgresService")

	postgresHost := utils.GetEnv("POSTGRES_HOST", "localhost", log)
	postgresPort := utils.GetEnv("POSTGRES_PORT", "5432", log)
	postgresUser := utils.GetEnv("POSTGRES_USER", "postgres", log)
	postgresPassword := utils.GetEnv("POSTGRES_PASSWORD", "", log)
	postgresName := utils.GetEnv("POSTGRES_NAME", "riskbee", log)

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", postgresUser, postgresPassword, postgresHost, postgresPort, postgresName)

	log.Info("Connecting to Postgres...")
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		log.Error("Failed to connect to Postgres", "error", err)
		return nil, fmt.Errorf("failed to connect to Postgres: %w", err)
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error; err != nil {
		log.Error("Failed to enable uuid-ossp extension", "error", err)
		return nil, fmt.Errorf("failed to enable uuid-ossp extension: %w", err)
	}

	return &PostgresService{db: db, log: serviceLog}, nil
}

func Models() []interface{} {
	return []interface{}{
		&types.User{},
		&types.UserToken{},
		&types.Company{},
		&types.Contact{},
		&types.Matrix{},
		&types.Process{},
		&types.Task{},
		&types.Hazard{},
		&types.Risk{},
		&types.ControlMeasure{},
		&types.Document{},
		&types.Regulation{},
		&types.IperMatrix{},
		&types.IperDetail{},
		&types.LegalTask{},
		&types.Visit{},
		&types.Reminder{},
		&types.AccidentReport{},
		&types.AccidentInvestigation{},
	}
}

// foreignKeys declares the ownership chain. Everything under a company hard
// cascades; the hazard catalog is protected while referenced.
var foreignKeys = []struct {
	name string
	stmt string
}{
	{"fk_user_token_user_id", `ALTER TABLE "user_token" ADD CONSTRAINT "fk_user_token_user_id" FOREIGN KEY ("user_id") REFERENCES "user"("id") ON DELETE CASCADE`},
	{"fk_company_owner_id", `ALTER TABLE "company" ADD CONSTRAINT "fk_company_owner_id" FOREIGN KEY ("owner_id") REFERENCES "user"("id") ON DELETE CASCADE`},
	{"fk_contact_company_id", `ALTER TABLE "contact" ADD CONSTRAINT "fk_contact_company_id" FOREIGN KEY ("company_id") REFERENCES "company"("id") ON DELETE CASCADE`},
	{"fk_matrix_company_id", `ALTER TABLE "matrix" ADD CONSTRAINT "fk_matrix_company_id" FOREIGN KEY ("company_id") REFERENCES "company"("id") ON DELETE CASCADE`},
	{"fk_process_matrix_id", `ALTER TABLE "process" ADD CONSTRAINT "fk_process_matrix_id" FOREIGN KEY ("matrix_id") REFERENCES "matrix"("id") ON DELETE CASCADE`},
	{"fk_task_process_id", `ALTER TABLE "task" ADD CONSTRAINT "fk_task_process_id" FOREIGN KEY ("process_id") REFERENCES "process"("id") ON DELETE CASCADE`},
	{"fk_risk_task_id", `ALTER TABLE "risk" ADD CONSTRAINT "fk_risk_task_id" FOREIGN KEY ("task_id") REFERENCES "task"("id") ON DELETE CASCADE`},
	{"fk_risk_hazard_id", `ALTER TABLE "risk" ADD CONSTRAINT "fk_risk_hazard_id" FOREIGN KEY ("hazard_id") REFERENCES "hazard"("id") ON DELETE RESTRICT`},
	{"fk_control_measure_risk_id", `ALTER TABLE "control_measure" ADD CONSTRAINT "fk_control_measure_risk_id" FOREIGN KEY ("risk_id") REFERENCES "risk"("id") ON DELETE CASCADE`},
	{"fk_document_company_id", `ALTER TABLE "document" ADD CONSTRAINT "fk_document_company_id" FOREIGN KEY ("company_id") REFERENCES "company"("id") ON DELETE CASCADE`},
	{"fk_iper_matrix_company_id", `ALTER TABLE "iper_matrix" ADD CONSTRAINT "fk_iper_matrix_company_id" FOREIGN KEY ("company_id") REFERENCES "company"("id") ON DELETE CASCADE`},
	{"fk_iper_detail_iper_matrix_id", `ALTER TABLE "iper_detail" ADD CONSTRAINT "fk_iper_detail_iper_matrix_id" FOREIGN KEY ("iper_matrix_id") REFERENCES "iper_matrix"("id") ON DELETE CASCADE`},
	{"fk_legal_task_company_id", `ALTER TABLE "legal_task" ADD CONSTRAINT "fk_legal_task_company_id" FOREIGN KEY ("company_id") REFERENCES "company"("id") ON DELETE CASCADE`},
	{"fk_legal_task_regulation_id", `ALTER TABLE "legal_task" ADD CONSTRAINT "fk_legal_task_regulation_id" FOREIGN KEY ("regulation_id") REFERENCES "regulation"("id") ON DELETE SET NULL`},
	{"fk_visit_company_id", `ALTER TABLE "visit" ADD CONSTRAINT "fk_visit_company_id" FOREIGN KEY ("company_id") REFERENCES "company"("id") ON DELETE CASCADE`},
	{"fk_reminder_user_id", `ALTER TABLE "reminder" ADD CONSTRAINT "fk_reminder_user_id" FOREIGN KEY ("user_id") REFERENCES "user"("id") ON DELETE CASCADE`},
	{"fk_accident_report_company_id", `ALTER TABLE "accident_report" ADD CONSTRAINT "fk_accident_report_company_id" FOREIGN KEY ("company_id") REFERENCES "company"("id") ON DELETE CASCADE`},
	{"fk_accident_report_reported_by_id", `ALTER TABLE "accident_report" ADD CONSTRAINT "fk_accident_report_reported_by_id" FOREIGN KEY ("reported_by_id") REFERENCES "user"("id") ON DELETE SET NULL`},
	{"fk_accident_investigation_report_id", `ALTER TABLE "accident_investigation" ADD CONSTRAINT "fk_accident_investigation_report_id" FOREIGN KEY ("report_id") REFERENCES "accident_report"("id") ON DELETE CASCADE`},
}

func (s *PostgresService) AutoMigrateAll() error {
	s.log.Info("Auto migrating postgres tables...")
	if err := s.db.AutoMigrate(Models()...); err != nil {
		s.log.Error("Auto migration failed for postgres tables", "error", err)
		return err
	}

	s.log.Info("Configuring foreign key relationships for postgres tables...")
	return ApplyForeignKeys(s.db)
}

// ApplyForeignKeys adds any missing ownership-chain constraints. Idempotent;
// also used by the test harness, which migrates without gorm's FK handling.
func ApplyForeignKeys(g *gorm.DB) error {
	for _, fk := range foreignKeys {
		var count int64
		if err := g.Raw(
			`SELECT COUNT(*) FROM information_schema.table_constraints WHERE constraint_name = ?`, fk.name,
		).Scan(&count).Error; err != nil {
			return fmt.Errorf("failed to check constraint %s: %w", fk.name, err)
		}
		if count > 0 {
			continue
		}
		if err := g.Exec(fk.stmt).Error; err != nil {
			return fmt.Errorf("failed to add %s: %w", fk.name, err)
		}
	}
	return nil
}

func (s *PostgresService) DB() *gorm.DB {
	return s.db
}
