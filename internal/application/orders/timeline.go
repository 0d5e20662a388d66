package orders

import (
	"context"

	"github.com/cozinhapro/cozinha-api/internal/application/dto"
	"github.com/cozinhapro/cozinha-api/internal/domain"
	"github.com/cozinhapro/cozinha-api/internal/domain/entity"
)

// Timeline devolve os eventos visíveis da linha do tempo do pedido, ordenados
// por criação. A supressão de duplicados por conteúdo+timestamp é aplicada na
// leitura como defesa contra double-submission — nunca como restrição de escrita.
func (uc *UseCase) Timeline(ctx context.Context, actor domain.Actor, orderID string) ([]dto.TimelineEventResponse, error) {
	ord, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if ord == nil || ord.EstablishmentID != actor.EstablishmentID {
		return nil, domain.ErrNotFound
	}

	events, err := uc.eventRepo.ListByOrder(orderID)
	if err != nil {
		return nil, err
	}

	seen := map[string]struct{}{}
	out := make([]dto.TimelineEventResponse, 0, len(events))
	for _, ev := range events {
		if !ev.Visible {
			continue
		}
		key := dedupKey(ev)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, dto.TimelineEventResponse{
			FromStatus: ev.FromStatus,
			ToStatus:   ev.ToStatus,
			Label:      ev.Label,
			Note:       ev.Note,
			ActorID:    ev.ActorID,
			ActorRole:  ev.ActorRole,
			CreatedAt:  ev.CreatedAt,
		})
	}
	return out, nil
}

// dedupKey identifica um evento pelo conteúdo e pelo segundo de criação:
// dois cliques no mesmo botão geram a mesma chave.
func dedupKey(ev *entity.OrderStatusEvent) string {
	return ev.FromStatus + "|" + ev.ToStatus + "|" + ev.Note + "|" + ev.ActorID + "|" +
		ev.CreatedAt.UTC().Format("2006-01-02T15:04:05")
}
