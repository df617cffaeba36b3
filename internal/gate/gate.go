package gate

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/spec-kit/booking-service/internal/domain"
	"github.com/spec-kit/booking-service/internal/events"
)

// State enumerates the gate's positions in the sign-up/sign-in flow.
type State string

const (
	StateUnauthenticated  State = "unauthenticated"
	StateAwaitingApproval State = "awaiting_approval"
	StateAuthenticated    State = "authenticated"
	StateDenied           State = "denied"
)

// User-visible messages for the terminal-for-this-session outcomes.
const (
	msgAwaitingApproval = "account created; please wait for admin approval before logging in"
	msgPendingApproval  = "your account is pending approval; please try again later"
	msgRejected         = "your account has been rejected; contact an administrator"
	msgWelcome          = "login successful"
)

// Result is the outcome of a Register or Login call. State is the
// outcome state of the operation; AwaitingApproval and Denied outcomes
// leave the gate itself back at Unauthenticated. Warning carries
// non-fatal profile-sync problems.
type Result struct {
	State   State
	Message string
	Session *Session
	Profile *domain.Profile
	Warning error
}

// NextScreen maps the outcome onto the navigation host's screen names.
func (r *Result) NextScreen() string {
	if r.State == StateAuthenticated {
		return ScreenMain
	}
	return ScreenAuth
}

// Gate owns the sign-up/sign-in decision flow and the post-auth
// navigation handoff. It never inspects credentials itself; it forwards
// them to the session store and applies the account-status policy to
// what comes back.
type Gate struct {
	sessions SessionStore
	profiles ProfileStore
	nav      Navigator
	logger   *zap.Logger

	mu          sync.Mutex
	state       State
	unsubscribe events.Unsubscribe
}

// New builds a gate in the Unauthenticated state. Call Watch to attach
// the token-change listener and Close to tear it down again.
func New(sessions SessionStore, profiles ProfileStore, nav Navigator, logger *zap.Logger) *Gate {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gate{
		sessions: sessions,
		profiles: profiles,
		nav:      nav,
		logger:   logger,
		state:    StateUnauthenticated,
	}
}

// State reports the gate's current state.
func (g *Gate) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

func (g *Gate) setState(s State) {
	g.mu.Lock()
	g.state = s
	g.mu.Unlock()
}

// Register creates an account and seeds its profile row. A profile-write
// failure is reported as a warning, never rolled back into the account
// creation: the session store and the record store are not
// transactionally coupled.
func (g *Gate) Register(ctx context.Context, email, password, confirmPassword, fullName string) (*Result, error) {
	email = strings.TrimSpace(email)
	fullName = strings.TrimSpace(fullName)

	switch {
	case email == "":
		return nil, &ValidationError{Message: "email is required"}
	case fullName == "":
		return nil, &ValidationError{Message: "full name is required"}
	case password == "":
		return nil, &ValidationError{Message: "password is required"}
	case password != confirmPassword:
		return nil, &ValidationError{Message: "passwords do not match"}
	}

	account, err := g.sessions.CreateAccount(ctx, email, password)
	if err != nil {
		return nil, &AuthServiceError{Op: "create account", Err: err}
	}

	result := &Result{State: StateAwaitingApproval, Message: msgAwaitingApproval}

	profile, err := g.profiles.Upsert(ctx, domain.ProfileUpdate{
		UserID:   account.ID,
		FullName: &fullName,
	})
	if err != nil {
		// the account exists; profile sync can be retried on a later login
		result.Warning = &DataSyncError{Op: "seed profile", Err: err}
		g.logger.Warn("profile seed failed after account creation",
			zap.String("user_id", account.ID), zap.Error(err))
	} else {
		result.Profile = profile
	}

	g.setState(StateUnauthenticated)
	return result, nil
}

// Login authenticates and applies the approval policy. The profile
// status check always completes before the navigation host is told to
// proceed; a pending or rejected account never sees the main screen,
// even momentarily. An unreadable status denies access.
func (g *Gate) Login(ctx context.Context, email, password string) (*Result, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, &ValidationError{Message: "email and password are required"}
	}

	session, err := g.sessions.Authenticate(ctx, email, password)
	if err != nil {
		g.setState(StateUnauthenticated)
		return nil, &AuthServiceError{Op: "login", Err: err}
	}

	var warning error
	profile, err := g.profiles.GetByUserID(ctx, session.Account.ID)
	switch {
	case err == nil:
	case g.profiles.IsNotFound(err):
		// data-consistency gap: account without profile row; fall back
		// to a minimal pending profile rather than granting access
		fallback := domain.FallbackProfile(session.Account)
		profile = &fallback
		warning = &DataSyncError{Op: "load profile", Err: err}
		g.logger.Warn("account has no profile row",
			zap.String("user_id", session.Account.ID))
	default:
		// fail closed: status unreadable means deny, not allow
		g.signOut(ctx, session.Token)
		g.setState(StateUnauthenticated)
		return nil, &DataSyncError{Op: "status check", Err: err}
	}

	switch profile.Status {
	case domain.ProfileStatusRejected:
		g.signOut(ctx, session.Token)
		g.setState(StateUnauthenticated)
		return &Result{State: StateDenied, Message: msgRejected, Profile: profile, Warning: warning}, nil
	case domain.ProfileStatusApproved:
		g.setState(StateAuthenticated)
		g.nav.ReplaceStack(ScreenMain)
		return &Result{
			State:   StateAuthenticated,
			Message: msgWelcome,
			Session: session,
			Profile: profile,
			Warning: warning,
		}, nil
	default:
		// pending, or anything unrecognized
		g.signOut(ctx, session.Token)
		g.setState(StateUnauthenticated)
		return &Result{State: StateAwaitingApproval, Message: msgPendingApproval, Profile: profile, Warning: warning}, nil
	}
}

// Logout invalidates the session and returns the gate to the
// unauthenticated state.
func (g *Gate) Logout(ctx context.Context, token string) error {
	defer g.setState(StateUnauthenticated)
	if token == "" {
		return &SessionInvalidError{Reason: "no active session"}
	}
	return g.sessions.Invalidate(ctx, token)
}

// UpdateProfile applies a partial profile write keyed by user_id. Fields
// absent from the update are never cleared. Last writer wins; there is
// no version check on profile rows.
func (g *Gate) UpdateProfile(ctx context.Context, update domain.ProfileUpdate) (*domain.Profile, error) {
	if update.UserID == "" {
		return nil, &ValidationError{Message: "user id is required"}
	}
	if update.Empty() {
		return nil, &ValidationError{Message: "no fields to update"}
	}
	if update.FullName != nil && strings.TrimSpace(*update.FullName) == "" {
		return nil, &ValidationError{Message: "name cannot be empty"}
	}

	profile, err := g.profiles.Upsert(ctx, update)
	if err != nil {
		return nil, &DataSyncError{Op: "update profile", Err: err}
	}
	return profile, nil
}

// Watch attaches the token-change listener: any event carrying a live
// token re-enters the authenticated transition without re-running the
// login flow. Navigation here is fire-and-forget and idempotent — the
// main screen being told to display twice is a no-op. Watch replaces a
// previous listener if one is still attached.
func (g *Gate) Watch() {
	g.mu.Lock()
	if g.unsubscribe != nil {
		g.unsubscribe()
	}
	g.unsubscribe = g.sessions.OnTokenChange(g.onTokenChange)
	g.mu.Unlock()
}

func (g *Gate) onTokenChange(event events.Event) {
	if !event.Live() {
		g.setState(StateUnauthenticated)
		return
	}
	g.setState(StateAuthenticated)
	g.nav.ReplaceStack(ScreenMain)
}

// Close detaches the token-change listener. A gate must be closed when
// its owner is torn down; a dangling listener firing after teardown is
// the bug class this guards against.
func (g *Gate) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.unsubscribe != nil {
		g.unsubscribe()
		g.unsubscribe = nil
	}
}

func (g *Gate) signOut(ctx context.Context, token string) {
	if err := g.sessions.Invalidate(ctx, token); err != nil {
		g.logger.Warn("forced sign-out failed", zap.Error(err))
	}
}
