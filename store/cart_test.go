package store_test

import (
	"testing"

	"fortumars-mart/models"
	"fortumars-mart/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func phone() models.Product {
	return models.Product{ID: "e1", Name: "Fortumas X-Phone Pro", Price: 999.00, Category: "Electronics"}
}

func earbuds() models.Product {
	return models.Product{ID: "e3", Name: "Noise Cancelling Earbuds Gen 4", Price: 199.00, Category: "Electronics"}
}

func TestCartAddIncrementsCountByOne(t *testing.T) {
	var cart store.CartLedger

	before := cart.Count()
	cart.Add(phone())
	assert.Equal(t, before+1, cart.Count())

	cart.Add(earbuds())
	assert.Equal(t, before+2, cart.Count())
}

func TestCartAddingSameItemTwiceYieldsOneLine(t *testing.T) {
	var cart store.CartLedger

	cart.Add(phone())
	cart.Add(phone())

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "e1", lines[0].ID)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestCartAdjustQuantityFloorsAtOne(t *testing.T) {
	tests := []struct {
		name     string
		delta    int
		expected int
	}{
		{"small decrement", -1, 1},
		{"large negative delta", -1000, 1},
		{"increment", 3, 5},
		{"zero delta", 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cart store.CartLedger
			cart.Add(phone())
			cart.Add(phone())

			cart.AdjustQuantity("e1", tt.delta)

			lines := cart.Lines()
			require.Len(t, lines, 1)
			assert.Equal(t, tt.expected, lines[0].Quantity)
			assert.GreaterOrEqual(t, lines[0].Quantity, 1)
		})
	}
}

func TestCartAdjustQuantityUnknownIDIsNoOp(t *testing.T) {
	var cart store.CartLedger
	cart.Add(phone())

	cart.AdjustQuantity("nope", 5)

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].Quantity)
}

func TestCartRemove(t *testing.T) {
	var cart store.CartLedger
	cart.Add(phone())
	cart.Add(earbuds())

	cart.Remove("e1")
	require.Len(t, cart.Lines(), 1)
	assert.Equal(t, "e3", cart.Lines()[0].ID)

	// removing an absent id is a no-op
	cart.Remove("e1")
	assert.Len(t, cart.Lines(), 1)
}

func TestCartTotal(t *testing.T) {
	var cart store.CartLedger
	assert.Zero(t, cart.Total())

	cart.Add(earbuds())
	cart.AdjustQuantity("e3", 2)

	assert.InDelta(t, 199.00*3, cart.Total(), 1e-9)
}

func TestCartScenarioAddTwiceThenReduce(t *testing.T) {
	var cart store.CartLedger

	cart.Add(phone())
	cart.Add(phone())
	cart.AdjustQuantity("e1", -1)

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].Quantity)
	assert.InDelta(t, 999.00, cart.Total(), 1e-9)
}
