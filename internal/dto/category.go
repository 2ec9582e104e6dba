package dto

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=4,max=30"`
}

type UpdateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=4,max=30"`
}

type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
