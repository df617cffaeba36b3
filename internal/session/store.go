// Package session implements the session store: account creation,
// credential verification, JWT minting, and a Redis-backed registry of
// active sessions so revocation takes effect before token expiry.
// Session lifecycle changes are published on the event dispatcher; the
// auth gate's token-change subscription feeds off it.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/booking-service/internal/auth"
	"github.com/spec-kit/booking-service/internal/domain"
	"github.com/spec-kit/booking-service/internal/events"
	"github.com/spec-kit/booking-service/internal/gate"
	"github.com/spec-kit/booking-service/internal/repository"
)

var (
	// ErrEmailTaken is surfaced verbatim to registering users.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials is surfaced verbatim to logging-in users.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrSessionRevoked means the token parsed fine but its session is
	// no longer in the registry.
	ErrSessionRevoked = errors.New("session revoked or expired")
)

const (
	sessionKeyPrefix  = "session:"
	userSessionPrefix = "user_sessions:"
)

// Store is the concrete session store.
type Store struct {
	accounts   repository.AccountRepository
	tokens     *auth.TokenManager
	redis      *redis.Client
	dispatcher events.Dispatcher
	bcryptCost int
	logger     *zap.Logger
}

// NewStore builds the store.
func NewStore(accounts repository.AccountRepository, tokens *auth.TokenManager, redisClient *redis.Client, dispatcher events.Dispatcher, bcryptCost int, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		accounts:   accounts,
		tokens:     tokens,
		redis:      redisClient,
		dispatcher: dispatcher,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// CreateAccount registers a new identity. The error messages here are
// user-presentable; the gate forwards them verbatim.
func (s *Store) CreateAccount(ctx context.Context, email, password string) (*domain.Account, error) {
	if _, err := s.accounts.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	account := &domain.Account{Email: email, PasswordHash: hash}
	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, err
	}
	s.logger.Info("account created", zap.String("user_id", account.ID))
	return account, nil
}

// Authenticate verifies credentials, mints a token, registers the
// session, and announces it on the token-change feed.
func (s *Store) Authenticate(ctx context.Context, email, password string) (*gate.Session, error) {
	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := auth.ComparePassword(account.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, sessionID, expiresAt, err := s.tokens.GenerateToken(account.ID)
	if err != nil {
		return nil, err
	}
	if err := s.registerSession(ctx, account.ID, sessionID); err != nil {
		return nil, fmt.Errorf("register session: %w", err)
	}

	s.publish(ctx, events.Event{
		Type:      events.EventSessionSignedIn,
		UserID:    account.ID,
		SessionID: sessionID,
		Token:     token,
	})

	return &gate.Session{Token: token, Account: *account, ExpiresAt: expiresAt}, nil
}

// CurrentUser resolves a token to its account, requiring the session to
// still be present in the registry.
func (s *Store) CurrentUser(ctx context.Context, token string) (*domain.Account, error) {
	claims, err := s.tokens.ParseToken(token)
	if err != nil {
		return nil, err
	}

	exists, err := s.redis.Exists(ctx, sessionKeyPrefix+claims.SessionID).Result()
	if err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, ErrSessionRevoked
	}

	return s.accounts.GetByID(ctx, claims.UserID)
}

// Invalidate removes the token's session from the registry. An already
// invalid or expired token is treated as a successful sign-out.
func (s *Store) Invalidate(ctx context.Context, token string) error {
	claims, err := s.tokens.ParseToken(token)
	if err != nil {
		return nil
	}

	if err := s.dropSession(ctx, claims.UserID, claims.SessionID); err != nil {
		return err
	}

	s.publish(ctx, events.Event{
		Type:      events.EventSessionSignedOut,
		UserID:    claims.UserID,
		SessionID: claims.SessionID,
	})
	return nil
}

// InvalidateAll revokes every active session of a user, e.g. after a
// password change.
func (s *Store) InvalidateAll(ctx context.Context, userID string) error {
	setKey := userSessionPrefix + userID
	sessionIDs, err := s.redis.SMembers(ctx, setKey).Result()
	if err != nil {
		return err
	}

	for _, sessionID := range sessionIDs {
		if err := s.redis.Del(ctx, sessionKeyPrefix+sessionID).Err(); err != nil {
			return err
		}
	}
	if err := s.redis.Del(ctx, setKey).Err(); err != nil {
		return err
	}

	s.publish(ctx, events.Event{
		Type:   events.EventSessionRevoked,
		UserID: userID,
	})
	return nil
}

// OnTokenChange registers a listener on the session lifecycle feed and
// returns the unsubscribe handle.
func (s *Store) OnTokenChange(handler func(events.Event)) events.Unsubscribe {
	return s.dispatcher.SubscribeAll(func(_ context.Context, e events.Event) error {
		handler(e)
		return nil
	})
}

func (s *Store) registerSession(ctx context.Context, userID, sessionID string) error {
	ttl := s.tokens.SessionTTL()
	if err := s.redis.Set(ctx, sessionKeyPrefix+sessionID, userID, ttl).Err(); err != nil {
		return err
	}
	setKey := userSessionPrefix + userID
	if err := s.redis.SAdd(ctx, setKey, sessionID).Err(); err != nil {
		return err
	}
	// the set outlives individual sessions slightly; stale members are
	// ignored because the session key itself is gone
	return s.redis.Expire(ctx, setKey, ttl+time.Minute).Err()
}

func (s *Store) dropSession(ctx context.Context, userID, sessionID string) error {
	if err := s.redis.Del(ctx, sessionKeyPrefix+sessionID).Err(); err != nil {
		return err
	}
	return s.redis.SRem(ctx, userSessionPrefix+userID, sessionID).Err()
}

func (s *Store) publish(ctx context.Context, event events.Event) {
	event.ID = uuid.NewString()
	event.Timestamp = time.Now()
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("session event publish failed", zap.Error(err))
	}
}
