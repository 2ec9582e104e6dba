package models

import (
	"time"

	"github.com/google/uuid"
)

// OtherCategoryName is the protected fallback category seeded for every user.
// It cannot be renamed or deleted and receives documents submitted without
// any selected category.
const OtherCategoryName = "Other"

type SpendingCategory struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (c *SpendingCategory) IsOther() bool {
	return c.Name == OtherCategoryName
}
