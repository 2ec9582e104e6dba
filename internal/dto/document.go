package dto

type CreateDocumentRequest struct {
	Timestamp      string   `json:"timestamp" validate:"required"`
	Name           string   `json:"name" validate:"required"`
	Description    string   `json:"description"`
	OCRText        string   `json:"ocr_text"`
	ImageURL       string   `json:"image_url"`
	AmountSpent    float64  `json:"amount_spent" validate:"required,gt=0"`
	Company        string   `json:"company"`
	HasWarranty    bool     `json:"has_warranty"`
	WarrantyMonths *int     `json:"warranty_months,omitempty"`
	CategoryIDs    []string `json:"category_ids"`
}

// UpdateDocumentRequest mirrors the create payload; an empty ImageURL keeps
// the stored image.
type UpdateDocumentRequest struct {
	Timestamp      string   `json:"timestamp" validate:"required"`
	Name           string   `json:"name" validate:"required"`
	Description    string   `json:"description"`
	OCRText        string   `json:"ocr_text"`
	ImageURL       string   `json:"image_url"`
	AmountSpent    float64  `json:"amount_spent" validate:"required,gt=0"`
	Company        string   `json:"company"`
	HasWarranty    bool     `json:"has_warranty"`
	WarrantyMonths *int     `json:"warranty_months,omitempty"`
	CategoryIDs    []string `json:"category_ids"`
}

type DocumentResponse struct {
	ID             string             `json:"id"`
	Timestamp      string             `json:"timestamp"`
	Name           string             `json:"name"`
	Description    string             `json:"description"`
	OCRText        string             `json:"ocr_text,omitempty"`
	ImageURL       string             `json:"image_url"`
	AmountSpent    float64            `json:"amount_spent"`
	Company        string             `json:"company"`
	HasWarranty    bool               `json:"has_warranty"`
	WarrantyMonths *int               `json:"warranty_months,omitempty"`
	Categories     []CategoryResponse `json:"categories"`
	CreatedAt      string             `json:"created_at"`
}
