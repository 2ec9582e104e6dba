package models

import (
	"time"

	"github.com/google/uuid"
)

// Document is a single receipt or invoice. Timestamp is the purchase date
// entered by the user (or suggested by the scanner), distinct from the row's
// CreatedAt. WarrantyMonths is only set when HasWarranty is true.
type Document struct {
	ID             uuid.UUID `db:"id"`
	UserID         uuid.UUID `db:"user_id"`
	Timestamp      time.Time `db:"doc_timestamp"`
	Name           string    `db:"name"`
	Description    string    `db:"description"`
	OCRText        string    `db:"ocr_text"`
	ImageURL       string    `db:"image_url"`
	AmountSpent    float64   `db:"amount_spent"`
	Company        string    `db:"company"`
	HasWarranty    bool      `db:"has_warranty"`
	WarrantyMonths *int      `db:"warranty_months"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`

	// Categories is populated from the document_categories join table
	Categories []*SpendingCategory `db:"-"`
}
