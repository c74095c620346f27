package repos

import (
	"gorm.io/gorm"

	"github.com/riskbee/riskbee-backend/internal/scope"
)

// Every read goes through one of these scope helpers: they join the ownership
// chain up to company and filter by the owning user, so a row outside the
// caller's portfolio behaves exactly like a missing row. Superusers skip the
// filter.

func scopeCompany(q *gorm.DB, s scope.Scope) *gorm.DB {
	if s.Bypass() {
		return q
	}
	return q.Where(`"company"."owner_id" = ?`, s.UserID())
}

func scopeByCompanyID(q *gorm.DB, s scope.Scope, table string) *gorm.DB {
	if s.Bypass() {
		return q
	}
	return q.Joins(`JOIN "company" ON "company"."id" = "`+table+`"."company_id"`).
		Where(`"company"."owner_id" = ?`, s.UserID())
}

func scopeMatrix(q *gorm.DB, s scope.Scope) *gorm.DB {
	return scopeByCompanyID(q, s, "matrix")
}

func scopeProcess(q *gorm.DB, s scope.Scope) *gorm.DB {
	if s.Bypass() {
		return q
	}
	return q.Joins(`JOIN "matrix" ON "matrix"."id" = "process"."matrix_id"`).
		Joins(`JOIN "company" ON "company"."id" = "matrix"."company_id"`).
		Where(`"company"."owner_id" = ?`, s.UserID())
}

func scopeTask(q *gorm.DB, s scope.Scope) *gorm.DB {
	if s.Bypass() {
		return q
	}
	return q.Joins(`JOIN "process" ON "process"."id" = "task"."process_id"`).
		Joins(`JOIN "matrix" ON "matrix"."id" = "process"."matrix_id"`).
		Joins(`JOIN "company" ON "company"."id" = "matrix"."company_id"`).
		Where(`"company"."owner_id" = ?`, s.UserID())
}

func scopeRisk(q *gorm.DB, s scope.Scope) *gorm.DB {
	if s.Bypass() {
		return q
	}
	return q.Joins(`JOIN "task" ON "task"."id" = "risk"."task_id"`).
		Joins(`JOIN "process" ON "process"."id" = "task"."process_id"`).
		Joins(`JOIN "matrix" ON "matrix"."id" = "process"."matrix_id"`).
		Joins(`JOIN "company" ON "company"."id" = "matrix"."company_id"`).
		Where(`"company"."owner_id" = ?`, s.UserID())
}

func scopeControlMeasure(q *gorm.DB, s scope.Scope) *gorm.DB {
	if s.Bypass() {
		return q
	}
	return q.Joins(`JOIN "risk" ON "risk"."id" = "control_measure"."risk_id"`).
		Joins(`JOIN "task" ON "task"."id" = "risk"."task_id"`).
		Joins(`JOIN "process" ON "process"."id" = "task"."process_id"`).
		Joins(`JOIN "matrix" ON "matrix"."id" = "process"."matrix_id"`).
		Joins(`JOIN "company" ON "company"."id" = "matrix"."company_id"`).
		Where(`"company"."owner_id" = ?`, s.UserID())
}

func scopeIperDetail(q *gorm.DB, s scope.Scope) *gorm.DB {
	if s.Bypass() {
		return q
	}
	return q.Joins(`JOIN "iper_matrix" ON "iper_matrix"."id" = "iper_detail"."iper_matrix_id"`).
		Joins(`JOIN "company" ON "company"."id" = "iper_matrix"."company_id"`).
		Where(`"company"."owner_id" = ?`, s.UserID())
}
