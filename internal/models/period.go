package models

import (
	"time"

	"github.com/google/uuid"
)

// Period is a stored custom comparison window. The two seeded periods
// ("This Week", "Last Week") are relative windows computed at read time and
// never persisted; Position orders the custom periods after them.
type Period struct {
	ID        uuid.UUID  `db:"id"`
	UserID    uuid.UUID  `db:"user_id"`
	Position  int        `db:"position"`
	StartDate *time.Time `db:"start_date"`
	EndDate   *time.Time `db:"end_date"`
	CreatedAt time.Time  `db:"created_at"`
}
