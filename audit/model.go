// audit/model.go
package audit

import (
	"encoding/json"
	"time"
)

// AuditLog is one authorization decision or identity change made through
// the console.
type AuditLog struct {
	ID            string          `json:"id,omitempty"`
	Timestamp     time.Time       `json:"timestamp"`
	ActorID       string          `json:"actor_id"`
	Action        string          `json:"action"`
	TargetID      string          `json:"target_id"`
	AccessGranted bool            `json:"access_granted"`
	Permission    string          `json:"permission,omitempty"`
	ChangeDetails json.RawMessage `json:"change_details,omitempty"`
}

// Query selects audit logs in [From, To], optionally narrowed to an actor
// or a target.
type Query struct {
	From     time.Time
	To       time.Time
	ActorID  string
	TargetID string
	Size     int
}
