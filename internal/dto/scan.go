package dto

// ScanResponse carries the suggested form fields recovered from an uploaded
// receipt image. Amount, Company and Date are best-effort: the user reviews
// and corrects them before creating the document.
type ScanResponse struct {
	ImageURL string  `json:"image_url"`
	Text     string  `json:"text"`
	Amount   float64 `json:"amount"`
	Company  string  `json:"company"`
	Date     *string `json:"date,omitempty"`
}
