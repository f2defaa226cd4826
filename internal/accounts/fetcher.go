package accounts

import (
	"github.com/harborview/accounts-backend/internal/utils"
)

// SessionInfo adapts the SessionManager to the middleware's SessionFetcher.
type SessionInfo struct {
	Sessions *SessionManager
}

func (si SessionInfo) FindSessionByID(id string) (utils.SessionData, error) {
	session, err := si.Sessions.Get(id)
	if err != nil {
		return utils.SessionData{}, err
	}

	return utils.SessionData{
		UserID:    session.UserID,
		Email:     session.Email,
		ExpiresAt: session.ExpiresAt,
	}, nil
}
