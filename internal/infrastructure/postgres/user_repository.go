package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/cozinhapro/cozinha-api/internal/domain"
	"github.com/cozinhapro/cozinha-api/internal/domain/entity"
	"github.com/cozinhapro/cozinha-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)
var _ repository.EstablishmentRepository = (*EstablishmentRepo)(nil)
var _ repository.ProductivityRepository = (*ProductivityRepo)(nil)

const userColumns = `id, establishment_id, email, password_hash, name, role, status, created_at, updated_at`

// UserRepo implementação do porto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository constrói o adaptador de usuários. Passar pool ou tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste um novo usuário. Email é único por estabelecimento.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, establishment_id, email, password_hash, name, role, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.EstablishmentID, user.Email, user.PasswordHash,
		user.Name, user.Role, user.Status, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtém um usuário por ID.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanOne(query, id)
}

// FindByEmail obtém um usuário por email (qualquer estabelecimento).
func (r *UserRepo) FindByEmail(email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.scanOne(query, email)
}

// GetByEmailAndEstablishment obtém um usuário por email dentro do estabelecimento.
func (r *UserRepo) GetByEmailAndEstablishment(email, establishmentID string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 AND establishment_id = $2`
	return r.scanOne(query, email, establishmentID)
}

func (r *UserRepo) scanOne(query string, args ...any) (*entity.User, error) {
	var u entity.User
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&u.ID, &u.EstablishmentID, &u.Email, &u.PasswordHash, &u.Name, &u.Role, &u.Status,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// EstablishmentRepo implementação do porto EstablishmentRepository.
type EstablishmentRepo struct {
	q Querier
}

// NewEstablishmentRepository constrói o adaptador de estabelecimentos.
func NewEstablishmentRepository(q Querier) *EstablishmentRepo {
	return &EstablishmentRepo{q: q}
}

// Create persiste um novo estabelecimento.
func (r *EstablishmentRepo) Create(e *entity.Establishment) error {
	query := `INSERT INTO establishments (id, name, created_at) VALUES ($1, $2, $3)`
	if _, err := r.q.Exec(context.Background(), query, e.ID, e.Name, e.CreatedAt); err != nil {
		return fmt.Errorf("insert establishment: %w", err)
	}
	return nil
}

// GetByID obtém um estabelecimento por ID.
func (r *EstablishmentRepo) GetByID(id string) (*entity.Establishment, error) {
	query := `SELECT id, name, created_at FROM establishments WHERE id = $1`
	var e entity.Establishment
	err := r.q.QueryRow(context.Background(), query, id).Scan(&e.ID, &e.Name, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get establishment: %w", err)
	}
	return &e, nil
}

// List devolve os estabelecimentos por nome.
func (r *EstablishmentRepo) List(limit, offset int) ([]*entity.Establishment, error) {
	query := `SELECT id, name, created_at FROM establishments ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list establishments: %w", err)
	}
	defer rows.Close()

	var out []*entity.Establishment
	for rows.Next() {
		var e entity.Establishment
		if err := rows.Scan(&e.ID, &e.Name, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan establishment: %w", err)
		}
		out = append(out, &e)
	}
	return out, rows.Err()
}

// ProductivityRepo persiste os registros de produtividade da produção.
type ProductivityRepo struct {
	q Querier
}

// NewProductivityRepository constrói o adaptador de produtividade.
func NewProductivityRepository(q Querier) *ProductivityRepo {
	return &ProductivityRepo{q: q}
}

// Create insere um registro de produtividade.
func (r *ProductivityRepo) Create(record *entity.ProductivityRecord) error {
	query := `
		INSERT INTO productivity_records (id, establishment_id, order_item_id, collaborator_id, product_name, quantity, duration_seconds, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		record.ID, record.EstablishmentID, record.OrderItemID, record.CollaboratorID,
		record.ProductName, record.Quantity, record.DurationSeconds, record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert productivity record: %w", err)
	}
	return nil
}
