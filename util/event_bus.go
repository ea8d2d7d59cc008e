// util/event_bus.go

package util

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	logger "github.com/dev-mohitbeniwal/idconsole/logging"
)

// Identity change events published after a successful provider mutation.
const (
	EventProfileUpdated       = "identity.profile_updated"
	EventSessionsRevoked      = "identity.sessions_revoked"
	EventSessionRevoked       = "identity.session_revoked"
	EventIdentityUnlinked     = "identity.identity_unlinked"
	EventAuthMethodDeleted    = "identity.auth_method_deleted"
	EventPasswordResetIssued  = "identity.password_reset_issued"
	EventMFAReset             = "identity.mfa_reset"
	EventEnrollmentDeleted    = "identity.enrollment_deleted"
	EventEnrollmentTicketSent = "identity.enrollment_ticket_issued"
)

// IdentityEvents lists every identity change event type.
var IdentityEvents = []string{
	EventProfileUpdated,
	EventSessionsRevoked,
	EventSessionRevoked,
	EventIdentityUnlinked,
	EventAuthMethodDeleted,
	EventPasswordResetIssued,
	EventMFAReset,
	EventEnrollmentDeleted,
	EventEnrollmentTicketSent,
}

// Event represents an event in the system
type Event struct {
	Type    string
	Payload interface{}
}

// IdentityChange is the payload of identity change events.
type IdentityChange struct {
	ActorID  string
	TargetID string
	Details  map[string]interface{}
}

// EventHandler is a function that handles an event
type EventHandler func(context.Context, Event) error

// EventBus manages event subscriptions and publications
type EventBus struct {
	subscribers map[string][]EventHandler
	mu          sync.RWMutex
	errorChan   chan error
}

// NewEventBus creates a new EventBus
func NewEventBus() *EventBus {
	return &EventBus{
		subscribers: make(map[string][]EventHandler),
		errorChan:   make(chan error, 100), // Buffer size can be adjusted
	}
}

// Subscribe adds a new subscriber for a specific event type
func (eb *EventBus) Subscribe(eventType string, handler EventHandler) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	eb.subscribers[eventType] = append(eb.subscribers[eventType], handler)
}

// Publish sends an event to all subscribers
func (eb *EventBus) Publish(ctx context.Context, eventType string, payload interface{}) {
	eb.mu.RLock()
	handlers, exists := eb.subscribers[eventType]
	eb.mu.RUnlock()

	if !exists {
		return
	}

	event := Event{
		Type:    eventType,
		Payload: payload,
	}

	// Handlers outlive the request that published the event.
	ctx = context.WithoutCancel(ctx)

	for _, handler := range handlers {
		go func(h EventHandler) {
			if err := h(ctx, event); err != nil {
				select {
				case eb.errorChan <- fmt.Errorf("event handler error: %w", err):
				default:
					// If error channel is full, log the error
					logger.Error("Error channel full, logging event handler error",
						zap.Error(err),
						zap.String("eventType", eventType))
				}
			}
		}(handler)
	}
}

// Start begins processing events and handling errors
func (eb *EventBus) Start(ctx context.Context) {
	go eb.processErrors(ctx)
}

// processErrors handles errors from event handlers
func (eb *EventBus) processErrors(ctx context.Context) {
	for {
		select {
		case err := <-eb.errorChan:
			logger.Error("Event handler error", zap.Error(err))
		case <-ctx.Done():
			return
		}
	}
}
