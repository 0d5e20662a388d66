package entity

import "time"

// Papéis de usuário dentro de um estabelecimento.
const (
	RoleAdmin    = "admin"
	RoleOperacao = "operacao"
	RoleProducao = "producao"
	RoleEstoque  = "estoque"
	RoleFiscal   = "fiscal"
	RoleEntrega  = "entrega"
	RoleLider    = "lider" // líder de produção (KDS)
	RoleCliente  = "cliente"
)

// User representa um usuário vinculado a um estabelecimento com um papel fixo.
type User struct {
	ID              string
	EstablishmentID string
	Email           string
	PasswordHash    string
	Name            string
	Role            string
	Status          string // active | disabled
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
