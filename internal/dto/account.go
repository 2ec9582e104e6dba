package dto

type UpdateAccountRequest struct {
	Username *string `json:"username,omitempty"`
	Password *string `json:"password,omitempty"`
}

// AccountFullResponse is the SPA's bootstrap payload: the user plus their
// full document and category sets.
type AccountFullResponse struct {
	User       UserResponse       `json:"user"`
	Documents  []DocumentResponse `json:"documents"`
	Categories []CategoryResponse `json:"categories"`
}
