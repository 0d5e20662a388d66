package entity

import "time"

// Product representa um produto do catálogo do estabelecimento.
// NormalizedName é a chave canônica (sem acentos, maiúsculas) usada no
// matching por nome durante consolidação, separação e contagem de estoque.
type Product struct {
	ID              string
	EstablishmentID string
	Name            string
	NormalizedName  string
	Unit            string // unidade padrão (KG, UN, CX...)
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
