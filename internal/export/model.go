package export

import (
	"time"

	"grocerylist/internal/buying"
)

const (
	StatusPending    = "PENDING"
	StatusProcessing = "PROCESSING"
	StatusDone       = "DONE"
	StatusFailed     = "FAILED"
)

// Export is a request to publish a snapshot of a user's buying list.
type Export struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Status    string    `json:"status"`
	URL       *string   `json:"url"`
	Error     *string   `json:"error"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Snapshot is the JSON document uploaded for a finished export.
type Snapshot struct {
	ExportID    string         `json:"export_id"`
	UserID      string         `json:"user_id"`
	GeneratedAt time.Time      `json:"generated_at"`
	Groups      []buying.Group `json:"groups"`
}
