package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/booking-service/internal/events"
)

// SessionAudit logs session lifecycle events for operational visibility.
type SessionAudit struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger

	unsubscribe events.Unsubscribe
}

// NewSessionAudit creates the audit listener.
func NewSessionAudit(dispatcher events.Dispatcher, logger *zap.Logger) *SessionAudit {
	return &SessionAudit{dispatcher: dispatcher, logger: logger}
}

// Start subscribes to the session event feed.
func (a *SessionAudit) Start() {
	if a.dispatcher == nil {
		return
	}
	a.unsubscribe = a.dispatcher.SubscribeAll(a.handle)
}

// Stop detaches the listener.
func (a *SessionAudit) Stop() {
	if a.unsubscribe != nil {
		a.unsubscribe()
		a.unsubscribe = nil
	}
}

func (a *SessionAudit) handle(_ context.Context, event events.Event) error {
	a.logger.Info("session event",
		zap.String("type", string(event.Type)),
		zap.String("user_id", event.UserID),
		zap.String("session_id", event.SessionID),
	)
	return nil
}
