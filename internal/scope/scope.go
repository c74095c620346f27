package scope

import (
	"context"

	"github.com/google/uuid"

	"github.com/riskbee/riskbee-backend/internal/apierr"
	"github.com/riskbee/riskbee-backend/internal/requestdata"
)

// Scope is the tenant boundary every repository query is filtered by. It can
// only be built from an authenticated request context, so an unscoped query
// cannot be written by accident.
type Scope struct {
	userID    uuid.UUID
	superuser bool
}

func FromContext(ctx context.Context) (Scope, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return Scope{}, apierr.New(401, "unauthenticated", nil)
	}
	return Scope{userID: rd.UserID, superuser: rd.IsSuperuser}, nil
}

// ForUser is the test seam; production code goes through FromContext.
func ForUser(userID uuid.UUID, superuser bool) Scope {
	return Scope{userID: userID, superuser: superuser}
}

func (s Scope) UserID() uuid.UUID { return s.userID }

// Bypass reports whether the scope skips tenant filtering (superuser role).
func (s Scope) Bypass() bool { return s.superuser }
