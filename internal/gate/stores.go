package gate

import (
	"context"
	"time"

	"github.com/spec-kit/booking-service/internal/domain"
	"github.com/spec-kit/booking-service/internal/events"
)

// Session is the ephemeral authenticated-access handle returned by the
// session store. Its presence is the sole authority for "a user is
// currently signed in".
type Session struct {
	Token     string
	Account   domain.Account
	ExpiresAt time.Time
}

// SessionStore is the narrow capability set the gate needs from the
// external authentication service. Implementations must return
// user-presentable error messages from CreateAccount and Authenticate;
// the gate forwards them verbatim.
type SessionStore interface {
	CreateAccount(ctx context.Context, email, password string) (*domain.Account, error)
	Authenticate(ctx context.Context, email, password string) (*Session, error)
	CurrentUser(ctx context.Context, token string) (*domain.Account, error)
	Invalidate(ctx context.Context, token string) error
	// OnTokenChange registers a listener on the store's token-change
	// feed and returns the handle that removes it again.
	OnTokenChange(handler func(events.Event)) events.Unsubscribe
}

// ProfileStore is the record-store capability set for profile rows.
// Upsert must be keyed by the unique user_id and must leave fields
// absent from the update untouched.
type ProfileStore interface {
	Upsert(ctx context.Context, update domain.ProfileUpdate) (*domain.Profile, error)
	GetByUserID(ctx context.Context, userID string) (*domain.Profile, error)
	IsNotFound(err error) bool
}

// Screen names understood by the navigation host.
const (
	ScreenSplash = "Splash"
	ScreenAuth   = "Auth"
	ScreenMain   = "Main"
)

// Navigator switches the visible screen stack. ReplaceStack is
// fire-and-forget; instructing an already-active screen to display again
// must be a no-op for implementations.
type Navigator interface {
	ReplaceStack(screen string)
}

// NavigatorFunc adapts a function to the Navigator interface.
type NavigatorFunc func(screen string)

func (f NavigatorFunc) ReplaceStack(screen string) { f(screen) }
