package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/riskbee/riskbee-backend/internal/db"
	"github.com/riskbee/riskbee-backend/internal/logger"
	"github.com/riskbee/riskbee-backend/internal/mailer"
	"github.com/riskbee/riskbee-backend/internal/repos"
	"github.com/riskbee/riskbee-backend/internal/services"
	"github.com/riskbee/riskbee-backend/internal/utils"
)

// One-shot batch: mail a reminder for every open legal obligation due within
// the alert window. Meant to run from cron.
func main() {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "production"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	pg, err := db.NewPostgresService(log)
	if err != nil {
		log.Error("Failed to init postgres", "error", err)
		os.Exit(1)
	}
	theDB := pg.DB()

	mail, err := mailer.New(log, mailer.ConfigFromEnv(log))
	if err != nil {
		log.Error("Failed to init mailer", "error", err)
		os.Exit(1)
	}

	windowDays := utils.GetEnvAsInt("ALERT_WINDOW_DAYS", 7, log)
	concurrency := utils.GetEnvAsInt("ALERT_CONCURRENCY", 4, log)
	timeoutMin := utils.GetEnvAsInt("ALERT_TIMEOUT_MINUTES", 10, log)

	legalTaskRepo := repos.NewLegalTaskRepo(theDB, log)
	companyRepo := repos.NewCompanyRepo(theDB, log)
	alertService := services.NewAlertService(theDB, log, legalTaskRepo, companyRepo, mail, concurrency)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutMin)*time.Minute)
	defer cancel()

	sent, err := alertService.SendDueAlerts(ctx, time.Duration(windowDays)*24*time.Hour)
	if err != nil {
		log.Error("Alert batch finished with errors", "sent", sent, "error", err)
		os.Exit(1)
	}
	log.Info("Alert batch finished", "sent", sent)
}
