package repository

import "github.com/cozinhapro/cozinha-api/internal/domain/entity"

// UserRepository define a porta de persistência de usuários.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	GetByEmailAndEstablishment(email, establishmentID string) (*entity.User, error)
}

// EstablishmentRepository define a porta de persistência de estabelecimentos.
type EstablishmentRepository interface {
	Create(e *entity.Establishment) error
	GetByID(id string) (*entity.Establishment, error)
	List(limit, offset int) ([]*entity.Establishment, error)
}

// ProductivityRepository define a porta dos registros de produtividade
// (efeito colateral best-effort da finalização de produção).
type ProductivityRepository interface {
	Create(record *entity.ProductivityRecord) error
}
