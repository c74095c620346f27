package app

import (
	"gorm.io/gorm"

	"github.com/riskbee/riskbee-backend/internal/logger"
	"github.com/riskbee/riskbee-backend/internal/repos"
)

type Repos struct {
	User                  repos.UserRepo
	UserToken             repos.UserTokenRepo
	Company               repos.CompanyRepo
	Contact               repos.ContactRepo
	Matrix                repos.MatrixRepo
	Process               repos.ProcessRepo
	Task                  repos.TaskRepo
	Hazard                repos.HazardRepo
	Regulation            repos.RegulationRepo
	Risk                  repos.RiskRepo
	ControlMeasure        repos.ControlMeasureRepo
	IperMatrix            repos.IperMatrixRepo
	IperDetail            repos.IperDetailRepo
	LegalTask             repos.LegalTaskRepo
	Visit                 repos.VisitRepo
	Reminder              repos.ReminderRepo
	Document              repos.DocumentRepo
	AccidentReport        repos.AccidentReportRepo
	AccidentInvestigation repos.AccidentInvestigationRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:                  repos.NewUserRepo(db, log),
		UserToken:             repos.NewUserTokenRepo(db, log),
		Company:               repos.NewCompanyRepo(db, log),
		Contact:               repos.NewContactRepo(db, log),
		Matrix:                repos.NewMatrixRepo(db, log),
		Process:               repos.NewProcessRepo(db, log),
		Task:                  repos.NewTaskRepo(db, log),
		Hazard:                repos.NewHazardRepo(db, log),
		Regulation:            repos.NewRegulationRepo(db, log),
		Risk:                  repos.NewRiskRepo(db, log),
		ControlMeasure:        repos.NewControlMeasureRepo(db, log),
		IperMatrix:            repos.NewIperMatrixRepo(db, log),
		IperDetail:            repos.NewIperDetailRepo(db, log),
		LegalTask:             repos.NewLegalTaskRepo(db, log),
		Visit:                 repos.NewVisitRepo(db, log),
		Reminder:              repos.NewReminderRepo(db, log),
		Document:              repos.NewDocumentRepo(db, log),
		AccidentReport:        repos.NewAccidentReportRepo(db, log),
		AccidentInvestigation: repos.NewAccidentInvestigationRepo(db, log),
	}
}
