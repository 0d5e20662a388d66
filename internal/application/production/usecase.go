// Package production implementa o sub-status de produção por item do pedido:
// pending → in_progress → done, com no_production_needed definido direto na
// aceitação como estado pré-satisfeito.
package production

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/cozinhapro/cozinha-api/internal/domain"
	"github.com/cozinhapro/cozinha-api/internal/domain/entity"
	"github.com/cozinhapro/cozinha-api/internal/domain/repository"
)

// Papéis: líderes iniciam e atribuem; produção também finaliza.
var (
	startRoles  = []string{entity.RoleAdmin, entity.RoleLider}
	finishRoles = []string{entity.RoleAdmin, entity.RoleLider, entity.RoleProducao}
)

func roleIn(roles []string, role string) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

// UseCase operações de produção sobre itens rastreados.
type UseCase struct {
	itemRepo         repository.OrderItemRepository
	orderRepo        repository.OrderRepository
	productivityRepo repository.ProductivityRepository
}

// NewUseCase constrói o caso de uso de produção.
func NewUseCase(
	itemRepo repository.OrderItemRepository,
	orderRepo repository.OrderRepository,
	productivityRepo repository.ProductivityRepository,
) *UseCase {
	return &UseCase{itemRepo: itemRepo, orderRepo: orderRepo, productivityRepo: productivityRepo}
}

// loadScoped resolve o item e valida o escopo via pedido pai.
func (uc *UseCase) loadScoped(actor domain.Actor, itemID string) (*entity.OrderItem, error) {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	ord, err := uc.orderRepo.GetByID(item.OrderID)
	if err != nil {
		return nil, err
	}
	if ord == nil || ord.EstablishmentID != actor.EstablishmentID {
		return nil, domain.ErrNotFound
	}
	return item, nil
}

// AssignCollaborator atribui um colaborador ao item (pré-requisito do início).
func (uc *UseCase) AssignCollaborator(ctx context.Context, actor domain.Actor, itemID, collaboratorID string) error {
	if !roleIn(startRoles, actor.Role) {
		return domain.ErrForbidden
	}
	if collaboratorID == "" {
		return domain.ErrInvalidInput
	}
	item, err := uc.loadScoped(actor, itemID)
	if err != nil {
		return err
	}
	if item.Status != entity.ItemStatusPending {
		return domain.ErrConflict
	}
	item.CollaboratorID = &collaboratorID
	item.UpdatedAt = time.Now()
	return uc.itemRepo.Update(item)
}

// StartItem inicia a produção (pending → in_progress). Exige colaborador já
// atribuído e registra o timestamp de início.
func (uc *UseCase) StartItem(ctx context.Context, actor domain.Actor, itemID string) error {
	if !roleIn(startRoles, actor.Role) {
		return domain.ErrForbidden
	}
	item, err := uc.loadScoped(actor, itemID)
	if err != nil {
		return err
	}
	if item.Status != entity.ItemStatusPending {
		return domain.ErrConflict
	}
	if item.CollaboratorID == nil || *item.CollaboratorID == "" {
		return domain.ErrInvalidInput
	}
	now := time.Now()
	item.Status = entity.ItemStatusInProgress
	item.StartedAt = &now
	item.UpdatedAt = now
	return uc.itemRepo.Update(item)
}

// FinishItem finaliza a produção (in_progress → done) e grava o registro de
// produtividade como efeito colateral best-effort: a falha volta como
// SideEffect para o chamador logar, nunca falha a transição.
func (uc *UseCase) FinishItem(ctx context.Context, actor domain.Actor, itemID string) ([]domain.SideEffect, error) {
	if !roleIn(finishRoles, actor.Role) {
		return nil, domain.ErrForbidden
	}
	item, err := uc.loadScoped(actor, itemID)
	if err != nil {
		return nil, err
	}
	if item.Status != entity.ItemStatusInProgress {
		return nil, domain.ErrConflict
	}

	now := time.Now()
	item.Status = entity.ItemStatusDone
	item.FinishedAt = &now
	item.UpdatedAt = now
	if err := uc.itemRepo.Update(item); err != nil {
		return nil, err
	}

	var sideEffects []domain.SideEffect
	var duration int64
	if item.StartedAt != nil {
		duration = int64(now.Sub(*item.StartedAt).Seconds())
	}
	collaborator := ""
	if item.CollaboratorID != nil {
		collaborator = *item.CollaboratorID
	}
	if err := uc.productivityRepo.Create(&entity.ProductivityRecord{
		ID:              uuid.New().String(),
		EstablishmentID: actor.EstablishmentID,
		OrderItemID:     item.ID,
		CollaboratorID:  collaborator,
		ProductName:     item.ProductName,
		Quantity:        item.Quantity,
		DurationSeconds: duration,
		CreatedAt:       now,
	}); err != nil {
		sideEffects = append(sideEffects, domain.SideEffect{Op: "registro de produtividade", Err: err})
	}
	return sideEffects, nil
}
