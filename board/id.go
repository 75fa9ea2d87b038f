package board

import (
	"time"

	"github.com/google/uuid"
	"github.com/taskdown/taskdown/internal/ids"
)

// GenerateTaskID creates a unique 8-character alphanumeric ID from a title
// and timestamp. The ID is derived from a SHA-256 hash of the title
// concatenated with the timestamp.
func GenerateTaskID(title string, timestamp time.Time) string {
	return ids.GenerateWithTimestamp(title, timestamp, ids.DefaultLength)
}

// GenerateBoardID creates a random unique board ID.
func GenerateBoardID() string {
	return uuid.NewString()
}
