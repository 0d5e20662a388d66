package dto

// RegisterRequest cadastro de usuário em um estabelecimento.
type RegisterRequest struct {
	EstablishmentID string `json:"establishment_id"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	Name            string `json:"name"`
	Role            string `json:"role"`
}

// LoginRequest credenciais de login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse projeção do usuário (sem hash de senha).
type UserResponse struct {
	ID              string `json:"id"`
	EstablishmentID string `json:"establishment_id"`
	Email           string `json:"email"`
	Name            string `json:"name"`
	Role            string `json:"role"`
}

// LoginResponse token + usuário.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
