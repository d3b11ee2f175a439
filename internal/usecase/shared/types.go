package shared

import (
	"github.com/google/uuid"
)

// Minimal snapshot for command read operations
type DealSnapshot struct {
	ID       uuid.UUID
	VenueID  uuid.UUID
	IsActive bool
}
