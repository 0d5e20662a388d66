package domain

// Actor é o contexto de autorização resolvido uma única vez pela camada de
// membership (claims do token) e passado explicitamente a toda operação:
// "o ator atual tem o papel Role no estabelecimento EstablishmentID".
type Actor struct {
	EstablishmentID string
	UserID          string
	Role            string
}
