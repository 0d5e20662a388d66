package stock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cozinhapro/cozinha-api/internal/application/dto"
	"github.com/cozinhapro/cozinha-api/internal/domain"
	"github.com/cozinhapro/cozinha-api/internal/domain/entity"
	"github.com/cozinhapro/cozinha-api/internal/domain/repository"
	"github.com/cozinhapro/cozinha-api/pkg/normalize"
)

// Papéis autorizados a rodar contagem de estoque.
var countRoles = []string{entity.RoleAdmin, entity.RoleEstoque, entity.RoleOperacao}

func roleIn(roles []string, role string) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

// RunInventoryCount roda uma sessão de reconciliação: consolida duplicados
// por produto+unidade, cria o cabeçalho e processa item a item — resolução de
// produto por nome, diferença contra o saldo do razão e, se divergir, um
// movimento ajuste_inventario. A falha de um item vira resultado not_found/
// warning sem abortar o lote; só o par registro+movimento de cada item é
// atômico. A atualização do resumo do cabeçalho é best-effort e volta como
// SideEffect para o chamador logar.
func (uc *UseCase) RunInventoryCount(ctx context.Context, actor domain.Actor, in dto.RunCountRequest) (*dto.RunCountResponse, []domain.SideEffect, error) {
	if !roleIn(countRoles, actor.Role) {
		return nil, nil, domain.ErrForbidden
	}
	if len(in.Entries) == 0 {
		return nil, nil, domain.ErrInvalidInput
	}

	entries := consolidateEntries(in.Entries)

	now := time.Now()
	count := &entity.InventoryCount{
		ID:              uuid.New().String(),
		EstablishmentID: actor.EstablishmentID,
		Note:            in.Note,
		StartedAt:       now,
		CreatedBy:       actor.UserID,
	}
	if err := uc.countRepo.Create(count); err != nil {
		return nil, nil, err
	}

	results := make([]dto.CountItemResult, 0, len(entries))
	products := map[string]struct{}{}
	var sideEffects []domain.SideEffect
	for _, e := range entries {
		res, se := uc.countEntry(ctx, actor, count.ID, e)
		if se != nil {
			sideEffects = append(sideEffects, *se)
		}
		if res.Status != entity.CountItemNotFound {
			products[normalize.Key(e.ProductName, e.Unit)] = struct{}{}
		}
		results = append(results, res)
	}

	finished := time.Now()
	count.FinishedAt = &finished
	count.ItemCount = len(results)
	count.ProductCount = len(products)
	if err := uc.countRepo.UpdateSummary(count); err != nil {
		sideEffects = append(sideEffects, domain.SideEffect{Op: "resumo da contagem", Err: err})
	}

	return &dto.RunCountResponse{
		CountID:      count.ID,
		ItemCount:    count.ItemCount,
		ProductCount: count.ProductCount,
		Results:      results,
	}, sideEffects, nil
}

// countEntry processa um item consolidado. O par registro-de-item + movimento
// de ajuste roda em uma transação própria; a falha vira resultado, não abort.
// Falhas de escrita fora da transação voltam como efeito colateral.
func (uc *UseCase) countEntry(ctx context.Context, actor domain.Actor, countID string, e dto.CountEntryRequest) (dto.CountItemResult, *domain.SideEffect) {
	res := dto.CountItemResult{
		ProductName: e.ProductName,
		Unit:        e.Unit,
		CountedQty:  e.Quantity,
	}

	product, err := uc.productRepo.GetByNormalizedName(actor.EstablishmentID, normalize.Name(e.ProductName))
	if err != nil || product == nil {
		res.Status = entity.CountItemNotFound
		res.Message = fmt.Sprintf("produto %q não encontrado", e.ProductName)
		// Registra o item mesmo assim, para a sessão ficar completa.
		createErr := uc.countRepo.CreateItem(&entity.InventoryCountItem{
			ID:          uuid.New().String(),
			CountID:     countID,
			ProductName: e.ProductName,
			Unit:        e.Unit,
			CountedQty:  e.Quantity,
			Status:      entity.CountItemNotFound,
			Message:     res.Message,
			CreatedAt:   time.Now(),
		})
		if createErr != nil {
			return res, &domain.SideEffect{Op: "registro de item não encontrado", Err: createErr}
		}
		return res, nil
	}

	err = uc.txRunner.RunCount(ctx, func(
		countRepo repository.InventoryCountRepository,
		movRepo repository.StockMovementRepository,
	) error {
		current, err := movRepo.Balance(actor.EstablishmentID, product.ID, e.Unit)
		if err != nil {
			return err
		}
		diff := e.Quantity.Sub(current)
		res.SystemQty = current
		res.Diff = diff

		now := time.Now()
		status := entity.CountItemOK
		message := ""
		if !diff.IsZero() {
			status = entity.CountItemWarning
			direction := entity.DirectionIn
			if diff.LessThan(decimal.Zero) {
				direction = entity.DirectionOut
			}
			message = fmt.Sprintf("ajuste aplicado: %s", diff.String())
			if err := movRepo.Create(&entity.StockMovement{
				ID:              uuid.New().String(),
				EstablishmentID: actor.EstablishmentID,
				ProductID:       product.ID,
				Unit:            e.Unit,
				Quantity:        diff.Abs(),
				Direction:       direction,
				Type:            entity.MovementTypeAdjust,
				CountID:         &countID,
				Details:         fmt.Sprintf("contagem %s: contado %s, sistema %s", countID, e.Quantity.String(), current.String()),
				CreatedBy:       actor.UserID,
				CreatedAt:       now,
			}); err != nil {
				return err
			}
		}

		res.Status = status
		res.Message = message
		return countRepo.CreateItem(&entity.InventoryCountItem{
			ID:          uuid.New().String(),
			CountID:     countID,
			ProductID:   &product.ID,
			ProductName: e.ProductName,
			Unit:        e.Unit,
			CountedQty:  e.Quantity,
			SystemQty:   current,
			Diff:        diff,
			Status:      status,
			Message:     message,
			CreatedAt:   now,
		})
	})
	if err != nil {
		res.Status = entity.CountItemWarning
		res.Message = "falha ao aplicar item: " + err.Error()
	}
	return res, nil
}

// consolidateEntries soma quantidades de tuplas repetidas de produto+unidade
// antes de qualquer escrita: um produto contado duas vezes na mesma sessão
// vira uma entrada única com a soma.
func consolidateEntries(entries []dto.CountEntryRequest) []dto.CountEntryRequest {
	index := map[string]int{}
	var out []dto.CountEntryRequest
	for _, e := range entries {
		key := normalize.Key(e.ProductName, e.Unit)
		if i, ok := index[key]; ok {
			out[i].Quantity = out[i].Quantity.Add(e.Quantity)
			continue
		}
		index[key] = len(out)
		out = append(out, dto.CountEntryRequest{
			ProductName: e.ProductName,
			Unit:        normalize.Unit(e.Unit),
			Quantity:    e.Quantity,
		})
	}
	return out
}
