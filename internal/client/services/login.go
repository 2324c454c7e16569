package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/mbelyaev/eventmap-client/internal/client/api"
	"github.com/mbelyaev/eventmap-client/internal/client/models"
	"github.com/mbelyaev/eventmap-client/internal/client/repositories/cache"
	"github.com/mbelyaev/eventmap-client/internal/client/session"
	"github.com/mbelyaev/eventmap-client/internal/client/validation"
	"github.com/mbelyaev/eventmap-client/internal/common"
	"github.com/mbelyaev/eventmap-client/internal/dbx"
	"github.com/mbelyaev/eventmap-client/internal/logging"
)

// GenericAuthErrorMessage is shown when the service failed without a
// displayable payload (transport failure, undecodable payload).
const GenericAuthErrorMessage = "Something went wrong."

// LoginState is the phase of the current login attempt.
type LoginState int

const (
	StateIdle LoginState = iota
	StateValidating
	StateSubmitting
	StateSucceeded
	StateFailed
)

func (s LoginState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateSubmitting:
		return "submitting"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// LoginOutcome is what one Submit call concluded, for the UI to act on.
type LoginOutcome struct {
	// Navigate is true exactly once per successful exchange.
	Navigate bool
	// EmailInvalid / PasswordInvalid carry the per-field flags when
	// validation blocked the attempt.
	EmailInvalid    bool
	PasswordInvalid bool
	// ErrorMessage is the alert text for a failed exchange; empty
	// otherwise.
	ErrorMessage string
}

// LoginService drives one login attempt end to end:
// validate → remote exchange → persist → propagate → navigate decision.
// There is no automatic retry; the user resubmits.
type LoginService struct {
	client api.Client
	db     *sql.DB
	store  *session.Store
	log    logging.Logger

	mu             sync.Mutex
	state          LoginState
	authenticating bool
	authError      string
}

func NewLoginService(client api.Client, db *sql.DB, store *session.Store, log logging.Logger) *LoginService {
	return &LoginService{
		client: client,
		db:     db,
		store:  store,
		log:    log.With("component", "login"),
		state:  StateIdle,
	}
}

func (s *LoginService) getCacheRepo() cache.Repository {
	return cache.NewSQLiteRepository(s.db)
}

// State returns the current phase of the attempt.
func (s *LoginService) State() LoginState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// IsAuthenticating reports whether an exchange is in flight; the UI shows its
// busy indicator while this is true.
func (s *LoginService) IsAuthenticating() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticating
}

// AuthError returns the surfaced error message, or "" when there is none.
func (s *LoginService) AuthError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authError
}

// Acknowledge clears a surfaced error and returns a terminal state to Idle.
// The UI calls it after the user dismisses the alert (or after navigating).
func (s *LoginService) Acknowledge() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateSucceeded || s.state == StateFailed {
		s.state = StateIdle
	}
	s.authError = ""
}

func (s *LoginService) setState(st LoginState) {
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
}

// Submit runs one full login attempt with the raw form input. The email is
// sanitized before validation and before the exchange; the password travels
// as typed.
func (s *LoginService) Submit(ctx context.Context, email string, password string) LoginOutcome {
	log := s.log.With("attempt", uuid.NewString())

	s.setState(StateValidating)

	sanitized := validation.SanitizeEmail(email)
	emailOK, passwordOK, ok := validation.FormIsValid(sanitized, password)
	if !ok {
		// Invalid form: straight back to Idle, no remote call.
		s.setState(StateIdle)
		log.Debug(ctx, "form invalid", "email_ok", emailOK, "password_ok", passwordOK)
		return LoginOutcome{EmailInvalid: !emailOK, PasswordInvalid: !passwordOK}
	}

	s.mu.Lock()
	s.state = StateSubmitting
	s.authenticating = true
	s.mu.Unlock()

	user, token, err := s.client.Authenticate(ctx, sanitized, password)
	if err != nil {
		msg := GenericAuthErrorMessage
		var ae *api.AuthError
		if errors.As(err, &ae) && ae.Message != "" {
			msg = ae.Message
		}

		s.mu.Lock()
		s.state = StateFailed
		s.authenticating = false
		s.authError = msg
		s.mu.Unlock()

		log.Warn(ctx, "authentication failed", "error", err)
		return LoginOutcome{ErrorMessage: msg}
	}

	s.persistSession(ctx, log, user, token)

	s.store.Replace(user)

	s.mu.Lock()
	s.state = StateSucceeded
	s.authenticating = false
	s.mu.Unlock()

	log.Info(ctx, "authentication succeeded", "user_id", user.ID)
	return LoginOutcome{Navigate: true}
}

// persistSession writes both cache entries. The writes are independent and
// best-effort: one failing does not stop the other, and neither failure stops
// the login. A later bootstrap simply will not find the missing value.
func (s *LoginService) persistSession(ctx context.Context, log logging.Logger, user *models.User, token string) {
	repo := s.getCacheRepo()

	if raw, err := json.Marshal(user); err != nil {
		log.Warn(ctx, "cache write skipped: user info not encodable", "error", err)
	} else if err := repo.Set(ctx, common.UserInfoCacheKey, raw); err != nil {
		log.Warn(ctx, "cache write failed", "key", common.UserInfoCacheKey, "error", err)
	}

	if err := repo.Set(ctx, common.AccessTokenCacheKey, []byte(token)); err != nil {
		log.Warn(ctx, "cache write failed", "key", common.AccessTokenCacheKey, "error", err)
	}
}

// SignOut removes both persisted entries in a single transaction and returns
// the store to the unauthenticated state. The cache clear is best-effort,
// like every other cache write: a failure is logged and the store is cleared
// regardless, so the process never stays authenticated past a sign-out.
func (s *LoginService) SignOut(ctx context.Context) {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := cache.NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, common.UserInfoCacheKey); err != nil {
			return err
		}
		return repo.Delete(ctx, common.AccessTokenCacheKey)
	})
	if err != nil {
		s.log.Warn(ctx, "cache clear failed on sign-out", "error", err)
	}

	s.store.Replace(nil)
}
