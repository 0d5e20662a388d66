package dto

// CreateProductRequest cadastro de produto no catálogo.
type CreateProductRequest struct {
	Name string `json:"name"`
	Unit string `json:"unit"`
}
