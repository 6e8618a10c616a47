package server

import (
	"fmt"
	"net/http"

	"golang.org/x/crypto/bcrypt"
)

const gmCookieName = "gm_session"

// gmAuth verifies the shared GM key and tracks logged-in sessions. The
// key itself is never held in memory past startup — only its bcrypt
// hash, compared in constant time per attempt.
type gmAuth struct {
	keyHash  []byte
	sessions *gmSessions
}

func newGMAuth(adminKey string) (*gmAuth, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(adminKey), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing admin key: %w", err)
	}
	return &gmAuth{keyHash: hash, sessions: newGMSessions()}, nil
}

// VerifyKey reports whether key matches the configured GM secret.
func (a *gmAuth) VerifyKey(key string) bool {
	return bcrypt.CompareHashAndPassword(a.keyHash, []byte(key)) == nil
}

// gmFromRequest checks the gm_session cookie against the live sessions.
func gmFromRequest(r *http.Request, a *gmAuth) error {
	cookie, err := r.Cookie(gmCookieName)
	if err != nil || cookie.Value == "" {
		return errNoSession
	}
	if !a.sessions.Valid(cookie.Value) {
		return errNoSession
	}
	return nil
}
