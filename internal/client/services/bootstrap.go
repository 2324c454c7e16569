package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"sync"
	"time"

	"github.com/mbelyaev/eventmap-client/internal/client/models"
	"github.com/mbelyaev/eventmap-client/internal/client/repositories/cache"
	"github.com/mbelyaev/eventmap-client/internal/client/session"
	"github.com/mbelyaev/eventmap-client/internal/common"
	"github.com/mbelyaev/eventmap-client/internal/logging"
)

// BootstrapResult is what one reconciliation pass concluded.
type BootstrapResult struct {
	// Navigate is true when both a restored identity and a still-valid
	// token are present, i.e. the authenticated area can be entered
	// without a login.
	Navigate bool
	// TokenValid reports the access-token half of the decision.
	TokenValid bool
	// Restored reports whether a cached identity was placed in the store
	// during this pass.
	Restored bool
}

// SessionBootstrap restores persisted session state into the session store
// each time the login screen becomes active. Running it repeatedly with
// unchanged cache contents yields the same result.
type SessionBootstrap struct {
	db    *sql.DB
	store *session.Store
	log   logging.Logger
	now   func() time.Time
}

func NewSessionBootstrap(db *sql.DB, store *session.Store, log logging.Logger) *SessionBootstrap {
	return &SessionBootstrap{
		db:    db,
		store: store,
		log:   log.With("component", "bootstrap"),
		now:   time.Now,
	}
}

func (b *SessionBootstrap) getCacheRepo() cache.Repository {
	return cache.NewSQLiteRepository(b.db)
}

// Run performs the two cache reads and evaluates the navigate decision.
// The reads are issued independently and may complete in either order; the
// decision is only evaluated after both have settled. Every failure along the
// way is a normal outcome: logged, never returned.
func (b *SessionBootstrap) Run(ctx context.Context) BootstrapResult {
	var (
		wg         sync.WaitGroup
		restored   bool
		tokenValid bool
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		restored = b.restoreUser(ctx)
	}()
	go func() {
		defer wg.Done()
		tokenValid = b.checkToken(ctx)
	}()
	wg.Wait()

	// Both signals must independently arrive: a valid token without an
	// identity, or an identity without a usable token, stays on the login
	// screen.
	navigate := tokenValid && b.store.Authenticated()

	b.log.Debug(ctx, "bootstrap finished",
		"restored", restored, "token_valid", tokenValid, "navigate", navigate)

	return BootstrapResult{Navigate: navigate, TokenValid: tokenValid, Restored: restored}
}

// restoreUser reads the cached identity and, only on a fully successful read
// and decode, replaces the store value. A miss or failure leaves whatever the
// store already holds untouched.
func (b *SessionBootstrap) restoreUser(ctx context.Context) bool {
	raw, err := b.getCacheRepo().Get(ctx, common.UserInfoCacheKey)
	if err != nil {
		b.log.Warn(ctx, "cache read failed", "key", common.UserInfoCacheKey, "error", err)
		return false
	}
	if raw == nil {
		return false
	}

	var u models.User
	if err := json.Unmarshal(raw, &u); err != nil {
		b.log.Warn(ctx, "cached user info is not decodable", "error", err)
		return false
	}

	b.store.Replace(&u)
	return true
}

// checkToken reads the cached access token and reports whether it is present
// and not expired. Any other outcome (miss, read failure, malformed or
// expired token) is false.
func (b *SessionBootstrap) checkToken(ctx context.Context) bool {
	raw, err := b.getCacheRepo().Get(ctx, common.AccessTokenCacheKey)
	if err != nil {
		b.log.Warn(ctx, "cache read failed", "key", common.AccessTokenCacheKey, "error", err)
		return false
	}
	if len(raw) == 0 {
		return false
	}

	return !session.IsTokenExpiredAt(string(raw), b.now())
}
