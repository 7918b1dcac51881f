package model

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderID(t *testing.T) {
	at := time.Date(2025, time.March, 14, 9, 26, 53, 589_000_000, time.UTC)
	got := NewOrderID(at)

	millis := fmt.Sprintf("%d", at.UnixMilli())
	want := "ORD-2025-" + millis[len(millis)-6:]
	assert.Equal(t, want, got)
	assert.Regexp(t, `^ORD-\d{4}-\d{6}$`, got)
}

func TestNewIDUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewID()
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestNowRFC3339(t *testing.T) {
	_, err := time.Parse(time.RFC3339, Now())
	require.NoError(t, err)
}

func TestStatusValidity(t *testing.T) {
	assert.True(t, OrderDelivered.Valid())
	assert.False(t, OrderStatus("shipped").Valid())
	assert.True(t, OrderInLab.Open())
	assert.False(t, OrderReady.Open())
	assert.False(t, OrderCancelled.Open())
	assert.True(t, CustomerVIP.Valid())
	assert.False(t, CustomerStatus("gold").Valid())
	assert.True(t, CategoryLens.Valid())
	assert.False(t, Category("case").Valid())
}

func TestLowStockBoundary(t *testing.T) {
	it := InventoryItem{CurrentStock: 5, ReorderLevel: 5}
	assert.True(t, it.LowStock(), "stock exactly at reorder level counts as low")
	it.CurrentStock = 6
	assert.False(t, it.LowStock())
}
