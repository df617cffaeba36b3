package worker

import (
	"github.com/spec-kit/booking-service/internal/gate"
	"github.com/spec-kit/booking-service/internal/service"
)

// SessionWorker runs the background session listeners: the audit log
// and a long-lived gate that tracks sign-in state from the event feed.
type SessionWorker struct {
	audit *service.SessionAudit
	gate  *gate.Gate
}

// NewSessionWorker bundles the listeners.
func NewSessionWorker(audit *service.SessionAudit, watchGate *gate.Gate) *SessionWorker {
	return &SessionWorker{audit: audit, gate: watchGate}
}

// Start attaches both listeners to the session event feed.
func (w *SessionWorker) Start() {
	if w.audit != nil {
		w.audit.Start()
	}
	if w.gate != nil {
		w.gate.Watch()
	}
}

// Stop detaches the listeners.
func (w *SessionWorker) Stop() {
	if w.gate != nil {
		w.gate.Close()
	}
	if w.audit != nil {
		w.audit.Stop()
	}
}
