package engine

import (
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdanwarhossen/emajohn/internal/domain"
)

func testCatalog() []domain.Product {
	return []domain.Product{
		{ID: "p1", Name: "Headphones", Category: "Electronics", Price: 10, ShippingCost: 2, Stock: 3, Rating: 4, RatingCount: 10},
		{ID: "p2", Name: "Mug", Category: "Kitchen", Price: 7.5, ShippingCost: 1.5, Stock: 15, Rating: 4.6, RatingCount: 80},
		{ID: "p3", Name: "Poster", Category: "Decor", Price: 3, Stock: 0, Rating: 4, RatingCount: 50},
	}
}

func testEngine() *Engine {
	return New(testCatalog(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestApply_SearchAndSort(t *testing.T) {
	e := testEngine()

	vm := e.Apply(Search("mug"))
	require.Len(t, vm.DisplayedProducts, 1)
	assert.Equal(t, "p2", vm.DisplayedProducts[0].ID)
	assert.Equal(t, "mug", vm.Query.SearchText)

	// Clearing the search restores the full list; sort applies on top
	e.Apply(Search(""))
	vm = e.Apply(SetSort(domain.SortPriceAsc))
	require.Len(t, vm.DisplayedProducts, 3)
	assert.Equal(t, "p3", vm.DisplayedProducts[0].ID)
	assert.Equal(t, "p1", vm.DisplayedProducts[2].ID)
}

func TestApply_AddToCartEndToEnd(t *testing.T) {
	e := testEngine()

	var vm domain.ViewModel
	for i := 0; i < 3; i++ {
		vm = e.Apply(AddToCart("p1"))
		assert.Empty(t, vm.Notice, "add %d is within stock", i+1)
	}

	require.Len(t, vm.CartRows, 1)
	assert.Equal(t, 3, vm.CartRows[0].Quantity)
	assert.Equal(t, 30.0, vm.Totals.Subtotal)
	assert.Equal(t, 6.0, vm.Totals.Shipping)
	assert.Equal(t, 36.0, vm.Totals.Total)
	assert.Equal(t, 1, vm.CartBadgeCount)

	// Fourth add clamps at stock and surfaces the one-shot notice
	vm = e.Apply(AddToCart("p1"))
	assert.Equal(t, StockLimitNotice, vm.Notice)
	assert.Equal(t, 3, vm.CartRows[0].Quantity)
	assert.Equal(t, 36.0, vm.Totals.Total)

	// The notice does not stick to later snapshots
	assert.Empty(t, e.Snapshot().Notice)
	assert.Empty(t, e.Apply(Resize(500)).Notice)
}

func TestApply_UnknownProductIsNoOp(t *testing.T) {
	e := testEngine()
	e.Apply(AddToCart("p2"))

	vm := e.Apply(AddToCart("ghost"))
	assert.Equal(t, 1, vm.CartBadgeCount)
	assert.Empty(t, vm.Notice)

	vm = e.Apply(AdjustQty("ghost", 1))
	assert.Equal(t, 1, vm.CartBadgeCount)
}

func TestApply_AdjustQty(t *testing.T) {
	e := testEngine()
	e.Apply(AddToCart("p1"))

	vm := e.Apply(AdjustQty("p1", 1))
	assert.Equal(t, 2, vm.CartRows[0].Quantity)

	// Clamp on the way up
	vm = e.Apply(AdjustQty("p1", 5))
	assert.Equal(t, 3, vm.CartRows[0].Quantity)
	assert.Equal(t, StockLimitNotice, vm.Notice)

	// Down to zero removes the row
	vm = e.Apply(AdjustQty("p1", -3))
	assert.Empty(t, vm.CartRows)
	assert.Equal(t, 0, vm.CartBadgeCount)
	assert.Equal(t, domain.Totals{}, vm.Totals)
}

func TestApply_ZeroStockUnbounded(t *testing.T) {
	e := testEngine()

	var vm domain.ViewModel
	for i := 0; i < 12; i++ {
		vm = e.Apply(AddToCart("p3"))
		assert.Empty(t, vm.Notice)
	}
	assert.Equal(t, 12, vm.CartRows[0].Quantity)
}

func TestApply_Resize(t *testing.T) {
	e := testEngine()

	vm := e.Apply(Resize(1300))
	assert.Equal(t, domain.BreakpointDesktop, vm.Layout.Breakpoint)
	assert.Equal(t, 9.0/12.0, vm.Layout.ColumnShare)

	vm = e.Apply(Resize(850))
	assert.Equal(t, domain.BreakpointMobile, vm.Layout.Breakpoint)
	assert.Equal(t, 1.0, vm.Layout.ColumnShare)

	// Non-positive widths are ignored
	vm = e.Apply(Resize(0))
	assert.Equal(t, domain.BreakpointMobile, vm.Layout.Breakpoint)
}

func TestApply_ConcurrentEventsStayConsistent(t *testing.T) {
	e := testEngine()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			e.Apply(AddToCart("p2"))
			e.Apply(Resize(1000))
			e.Apply(Search("mug"))
		}()
	}
	wg.Wait()

	vm := e.Snapshot()
	require.Len(t, vm.CartRows, 1)
	assert.Equal(t, 15, vm.CartRows[0].Quantity, "50 adds clamp at stock 15")
	assert.Equal(t, len(vm.CartRows), vm.CartBadgeCount)
	assert.InDelta(t, 7.5*15, vm.Totals.Subtotal, 1e-9)
}
