package labels

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cozinhapro/cozinha-api/internal/application/dto"
	"github.com/cozinhapro/cozinha-api/internal/domain"
	"github.com/cozinhapro/cozinha-api/internal/domain/entity"
)

func seedProduct(s *fakeStore) *entity.Product {
	p := &entity.Product{
		ID: "prod-a", EstablishmentID: testEstab,
		Name: "Pão de Queijo", NormalizedName: "PAO DE QUEIJO", Unit: "KG",
	}
	s.products[p.ID] = p
	return p
}

func TestCreateLabelIdempotent(t *testing.T) {
	s := newFakeStore()
	seedProduct(s)
	uc := newTestUseCase(s)
	ctx := context.Background()
	actor := testActor(entity.RoleEstoque)
	in := dto.CreateLabelRequest{
		ProductID: "prod-a", Code: "LT-PPQ-0810-1A", Quantity: qty("10"), Unit: "kg",
		Notes: "manipulado 10/08, validade 13/08",
	}

	first, err := uc.CreateLabel(ctx, actor, in)
	require.NoError(t, err)
	assert.Equal(t, entity.LabelStatusDisponivel, first.Status)
	assert.True(t, first.UsedQty.IsZero())

	// Retry do cliente: mesma etiqueta, nenhum movimento a mais.
	second, err := uc.CreateLabel(ctx, actor, in)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	assert.Len(t, s.labels, 1)
	require.Len(t, s.movements, 1, "exatamente um LABEL_IN por etiqueta, mesmo sob retry")
	assert.Equal(t, entity.MovementTypeLabelIn, s.movements[0].Type)
	assert.Equal(t, entity.DirectionIn, s.movements[0].Direction)
	assert.True(t, s.movements[0].Quantity.Equal(qty("10")))
}

func TestCreateLabelValidation(t *testing.T) {
	s := newFakeStore()
	seedProduct(s)
	uc := newTestUseCase(s)
	ctx := context.Background()

	_, err := uc.CreateLabel(ctx, testActor(entity.RoleCliente), dto.CreateLabelRequest{
		ProductID: "prod-a", Code: "LT-X", Quantity: qty("1"), Unit: "KG",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.CreateLabel(ctx, testActor(entity.RoleEstoque), dto.CreateLabelRequest{
		ProductID: "prod-a", Code: "LT-X", Quantity: qty("0"), Unit: "KG",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.CreateLabel(ctx, testActor(entity.RoleEstoque), dto.CreateLabelRequest{
		ProductID: "prod-inexistente", Code: "LT-X", Quantity: qty("1"), Unit: "KG",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRevalidateVersusReset(t *testing.T) {
	s := newFakeStore()
	label := seedLabel(s, "10", "10")
	label.Status = entity.LabelStatusUsada
	orderID := "order-1"
	label.OrderID = &orderID
	label.Notes = "validade 13/08"
	uc := newTestUseCase(s)
	ctx := context.Background()

	// Revalidar só limpa notas; consumo e status ficam.
	require.NoError(t, uc.RevalidateLabel(ctx, testActor(entity.RoleEstoque), label.ID))
	assert.Empty(t, s.labels[label.ID].Notes)
	assert.Equal(t, entity.LabelStatusUsada, s.labels[label.ID].Status)
	assert.True(t, s.labels[label.ID].UsedQty.Equal(qty("10")))

	// Reset é destrutivo e exclusivo de admin.
	err := uc.ResetLabel(ctx, testActor(entity.RoleEstoque), label.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	require.NoError(t, uc.ResetLabel(ctx, testActor(entity.RoleAdmin), label.ID))
	got := s.labels[label.ID]
	assert.Equal(t, entity.LabelStatusDisponivel, got.Status)
	assert.True(t, got.UsedQty.IsZero())
	assert.Nil(t, got.OrderID)
}

func TestPrintLabelReturnsPDF(t *testing.T) {
	s := newFakeStore()
	seedLabel(s, "10", "0")
	s.estabs[testEstab] = &entity.Establishment{ID: testEstab, Name: "Cozinha Central"}
	uc := newTestUseCase(s)

	out, err := uc.PrintLabel(context.Background(), testActor(entity.RoleEstoque), "label-1")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
