package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/obame-dev/editions-api/internal/domain/entity"
)

func strptr(s string) *string { return &s }

func TestComputedTotal_TotalExplicitePrioritaire(t *testing.T) {
	o := entity.Order{
		Total: decimal.NewFromInt(500),
		Items: []entity.OrderItem{
			{Quantity: 2, Price: decimal.NewFromInt(10)},
		},
	}
	assert.True(t, o.ComputedTotal().Equal(decimal.NewFromInt(500)),
		"un total explicite positif prime sur les lignes")
}

func TestComputedTotal_DeriveDesLignes(t *testing.T) {
	o := entity.Order{
		Total: decimal.Zero,
		Items: []entity.OrderItem{
			{Quantity: 3, Price: decimal.RequireFromString("8500")},
			{Quantity: 1, Price: decimal.RequireFromString("6200")},
		},
	}
	assert.True(t, o.ComputedTotal().Equal(decimal.RequireFromString("31700")))

	vide := entity.Order{Total: decimal.Zero}
	assert.True(t, vide.ComputedTotal().IsZero())
}

func TestCountsForPartnerPerformance(t *testing.T) {
	pid := strptr("p1")

	cases := []struct {
		name  string
		order entity.Order
		want  bool
	}{
		{"sans partenaire", entity.Order{Status: entity.OrderStatusDelivered}, false},
		{"VALIDATED", entity.Order{PartnerID: pid, Status: entity.OrderStatusValidated}, true},
		{"PROCESSING", entity.Order{PartnerID: pid, Status: entity.OrderStatusProcessing}, true},
		{"SHIPPED", entity.Order{PartnerID: pid, Status: entity.OrderStatusShipped}, true},
		{"DELIVERED", entity.Order{PartnerID: pid, Status: entity.OrderStatusDelivered}, true},
		{"PENDING payée", entity.Order{PartnerID: pid, Status: entity.OrderStatusPending, PaymentReference: strptr("PAY-001")}, true},
		{"PENDING sans référence", entity.Order{PartnerID: pid, Status: entity.OrderStatusPending}, false},
		{"PENDING référence vide", entity.Order{PartnerID: pid, Status: entity.OrderStatusPending, PaymentReference: strptr("")}, false},
		{"CANCELLED", entity.Order{PartnerID: pid, Status: entity.OrderStatusCancelled}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.order.CountsForPartnerPerformance())
		})
	}
}

func TestValidOrderTransition(t *testing.T) {
	// Chemin nominal.
	assert.True(t, entity.ValidOrderTransition(entity.OrderStatusPending, entity.OrderStatusValidated))
	assert.True(t, entity.ValidOrderTransition(entity.OrderStatusValidated, entity.OrderStatusProcessing))
	assert.True(t, entity.ValidOrderTransition(entity.OrderStatusProcessing, entity.OrderStatusShipped))
	assert.True(t, entity.ValidOrderTransition(entity.OrderStatusShipped, entity.OrderStatusDelivered))

	// Annulation possible depuis tout état non terminal.
	assert.True(t, entity.ValidOrderTransition(entity.OrderStatusPending, entity.OrderStatusCancelled))
	assert.True(t, entity.ValidOrderTransition(entity.OrderStatusShipped, entity.OrderStatusCancelled))

	// Pas de saut d'étape ni de retour en arrière.
	assert.False(t, entity.ValidOrderTransition(entity.OrderStatusPending, entity.OrderStatusShipped))
	assert.False(t, entity.ValidOrderTransition(entity.OrderStatusShipped, entity.OrderStatusValidated))

	// États terminaux.
	assert.False(t, entity.ValidOrderTransition(entity.OrderStatusDelivered, entity.OrderStatusCancelled))
	assert.False(t, entity.ValidOrderTransition(entity.OrderStatusCancelled, entity.OrderStatusValidated))
}
