package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/cozinhapro/cozinha-api/internal/application/dto"
	"github.com/cozinhapro/cozinha-api/internal/domain"
	"github.com/cozinhapro/cozinha-api/internal/domain/entity"
	"github.com/cozinhapro/cozinha-api/internal/domain/repository"
	"github.com/cozinhapro/cozinha-api/pkg/jwt"
)

// JWTConfig configuração para geração de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase casos de uso de autenticação: cadastro e login. O token emitido
// carrega o triplo (usuário, estabelecimento, papel) que toda operação do
// núcleo consome como contexto de ator.
type UseCase struct {
	userRepo  repository.UserRepository
	estabRepo repository.EstablishmentRepository
	jwtCfg    JWTConfig
}

// NewUseCase constrói o caso de uso de auth.
func NewUseCase(userRepo repository.UserRepository, estabRepo repository.EstablishmentRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, estabRepo: estabRepo, jwtCfg: jwtCfg}
}

var validRoles = map[string]struct{}{
	entity.RoleAdmin: {}, entity.RoleOperacao: {}, entity.RoleProducao: {},
	entity.RoleEstoque: {}, entity.RoleFiscal: {}, entity.RoleEntrega: {},
	entity.RoleLider: {}, entity.RoleCliente: {},
}

// RegisterUser cria um usuário: hasheia a senha com bcrypt e persiste.
// Devolve ErrEmailAlreadyExists se o email já existir no estabelecimento.
func (uc *UseCase) RegisterUser(in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.Email == "" || in.Password == "" || in.EstablishmentID == "" {
		return nil, domain.ErrInvalidInput
	}
	role := in.Role
	if role == "" {
		role = entity.RoleCliente
	}
	if _, ok := validRoles[role]; !ok {
		return nil, domain.ErrInvalidInput
	}

	existing, _ := uc.userRepo.GetByEmailAndEstablishment(in.Email, in.EstablishmentID)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	estab, err := uc.estabRepo.GetByID(in.EstablishmentID)
	if err != nil {
		return nil, err
	}
	if estab == nil {
		return nil, domain.ErrNotFound
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := in.Name
	if name == "" {
		name = in.Email
	}
	user := &entity.User{
		ID:              uuid.New().String(),
		EstablishmentID: in.EstablishmentID,
		Email:           in.Email,
		PasswordHash:    string(hash),
		Name:            name,
		Role:            role,
		Status:          "active",
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica email/senha, gera o JWT e retorna token + usuário.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Status != "active" {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.EstablishmentID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *toUserResponse(user)}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:              u.ID,
		EstablishmentID: u.EstablishmentID,
		Email:           u.Email,
		Name:            u.Name,
		Role:            u.Role,
	}
}
