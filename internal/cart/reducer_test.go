package cart

import (
	"math"
	"math/rand"
	"reflect"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/storefront-backend/internal/catalog"
	"github.com/angelmondragon/storefront-backend/pkg/enums"
)

func testProduct(id string, price int64, inStock bool) catalog.Product {
	return catalog.Product{
		ID:       id,
		Name:     "Product " + id,
		Price:    decimal.NewFromInt(price),
		Category: "test",
		InStock:  inStock,
	}
}

// expectedTotal recomputes the aggregates from the lines without trusting the cart.
func expectedTotal(c Cart) (decimal.Decimal, int) {
	total := decimal.Zero
	count := 0
	for _, item := range c.Items {
		total = total.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		count += item.Quantity
	}
	return total, count
}

func assertConsistent(t *testing.T, c Cart) {
	t.Helper()
	total, count := expectedTotal(c)
	if !c.Total.Equal(total) {
		t.Fatalf("total %s does not match lines %s", c.Total, total)
	}
	if c.ItemCount != count {
		t.Fatalf("item count %d does not match lines %d", c.ItemCount, count)
	}
	seen := map[string]bool{}
	for _, item := range c.Items {
		if item.Quantity < 1 {
			t.Fatalf("line %s stored with quantity %d", item.Product.ID, item.Quantity)
		}
		if seen[item.Product.ID] {
			t.Fatalf("duplicate line for %s", item.Product.ID)
		}
		seen[item.Product.ID] = true
	}
}

func TestEmptyCart(t *testing.T) {
	c := Empty()
	if len(c.Items) != 0 || !c.Total.IsZero() || c.ItemCount != 0 {
		t.Fatalf("unexpected empty cart %+v", c)
	}
	if c.Items == nil {
		t.Fatalf("empty cart items should be an empty slice")
	}
}

func TestAddDistinctProducts(t *testing.T) {
	c := Empty()
	quantities := []int{1, 3, 2, 5}
	sum := 0
	for i, q := range quantities {
		c = Reduce(c, AddCommand(testProduct(string(rune('a'+i)), int64(10*(i+1)), true), q))
		sum += q
	}
	if c.ItemCount != sum {
		t.Fatalf("expected item count %d, got %d", sum, c.ItemCount)
	}
	if len(c.Items) != len(quantities) {
		t.Fatalf("expected %d lines, got %d", len(quantities), len(c.Items))
	}
	for i, item := range c.Items {
		if item.Product.ID != string(rune('a'+i)) {
			t.Fatalf("insertion order broken at %d: %s", i, item.Product.ID)
		}
	}
	assertConsistent(t, c)
}

func TestAddSameProductMerges(t *testing.T) {
	p := testProduct("a", 15, true)
	c := Reduce(Empty(), AddCommand(testProduct("z", 1, true), 1))
	c = Reduce(c, AddCommand(p, 2))
	c = Reduce(c, AddCommand(p, 3))

	if len(c.Items) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(c.Items))
	}
	item, ok := c.Find("a")
	if !ok || item.Quantity != 5 {
		t.Fatalf("expected merged quantity 5, got %+v", item)
	}
	if c.Items[1].Product.ID != "a" {
		t.Fatalf("merging must keep the original position")
	}
	assertConsistent(t, c)
}

func TestUpdateQuantityNonPositiveRemoves(t *testing.T) {
	for _, q := range []int{0, -1} {
		c := Reduce(Empty(), AddCommand(testProduct("a", 10, true), 2))
		c = Reduce(c, AddCommand(testProduct("b", 20, true), 1))

		updated := Reduce(c, UpdateQuantityCommand("a", q))
		removed := Reduce(c, RemoveCommand("a"))

		if _, ok := updated.Find("a"); ok {
			t.Fatalf("quantity %d should remove the line", q)
		}
		if !reflect.DeepEqual(updated, removed) {
			t.Fatalf("update to %d should equal remove: %+v vs %+v", q, updated, removed)
		}
	}
}

func TestUpdateQuantitySetsExactly(t *testing.T) {
	c := Reduce(Empty(), AddCommand(testProduct("a", 10, true), 2))
	c = Reduce(c, UpdateQuantityCommand("a", 7))
	if item, _ := c.Find("a"); item.Quantity != 7 {
		t.Fatalf("expected quantity 7, got %d", item.Quantity)
	}
	assertConsistent(t, c)

	unchanged := Reduce(c, UpdateQuantityCommand("missing", 4))
	if !reflect.DeepEqual(unchanged, c) {
		t.Fatalf("update of absent product must be a no-op")
	}
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	c := Reduce(Empty(), AddCommand(testProduct("a", 10, true), 2))
	after := Reduce(c, RemoveCommand("missing"))
	if !reflect.DeepEqual(after, c) {
		t.Fatalf("remove of absent product changed the cart: %+v", after)
	}
}

func TestClearAlwaysEmpties(t *testing.T) {
	c := Reduce(Empty(), AddCommand(testProduct("a", 10, true), 2))
	c = Reduce(c, AddCommand(testProduct("b", 10, true), 4))
	if cleared := Reduce(c, ClearCommand()); !reflect.DeepEqual(cleared, Empty()) {
		t.Fatalf("expected empty cart, got %+v", cleared)
	}
	if cleared := Reduce(Empty(), ClearCommand()); !reflect.DeepEqual(cleared, Empty()) {
		t.Fatalf("expected empty cart, got %+v", cleared)
	}
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	c := Reduce(Empty(), AddCommand(testProduct("a", 10, true), 2))
	snapshot := c.Clone()

	_ = Reduce(c, AddCommand(testProduct("a", 10, true), 3))
	_ = Reduce(c, UpdateQuantityCommand("a", 9))
	_ = Reduce(c, RemoveCommand("a"))

	if !reflect.DeepEqual(c, snapshot) {
		t.Fatalf("reducer mutated its input: %+v", c)
	}
}

func TestAddBelowOneUnitIsNoop(t *testing.T) {
	c := Reduce(Empty(), AddCommand(testProduct("a", 10, true), 2))
	for _, q := range []int{0, -1, math.MinInt} {
		if got := Reduce(c, AddCommand(testProduct("a", 10, true), q)); !reflect.DeepEqual(got, c) {
			t.Fatalf("add of %d changed the cart: %+v", q, got)
		}
		if got := Reduce(c, AddCommand(testProduct("b", 10, true), q)); !reflect.DeepEqual(got, c) {
			t.Fatalf("add of %d appended a line: %+v", q, got)
		}
	}
}

func TestOverflowingChangesAreNoops(t *testing.T) {
	c := Reduce(Empty(), AddCommand(testProduct("a", 10, true), math.MaxInt))
	if c.ItemCount != math.MaxInt {
		t.Fatalf("largest quantity should be stored, got %d", c.ItemCount)
	}
	if got := Reduce(c, AddCommand(testProduct("a", 10, true), 1)); !reflect.DeepEqual(got, c) {
		t.Fatalf("overflowing add wrapped the line: %+v", got)
	}
	if got := Reduce(c, AddCommand(testProduct("b", 10, true), 1)); !reflect.DeepEqual(got, c) {
		t.Fatalf("overflowing add of a new line changed the cart: %+v", got)
	}

	c = Reduce(Empty(), AddCommand(testProduct("a", 10, true), 1))
	c = Reduce(c, AddCommand(testProduct("b", 10, true), 1))
	if got := Reduce(c, UpdateQuantityCommand("a", math.MaxInt)); !reflect.DeepEqual(got, c) {
		t.Fatalf("overflowing update changed the cart: %+v", got)
	}
	if got := Reduce(c, UpdateQuantityCommand("a", math.MaxInt-1)); got.ItemCount != math.MaxInt {
		t.Fatalf("fitting update should apply, got %+v", got)
	}
}

func TestUnknownCommandIsNoop(t *testing.T) {
	c := Reduce(Empty(), AddCommand(testProduct("a", 10, true), 2))
	if got := Reduce(c, Command{Kind: enums.CartCommand("bogus")}); !reflect.DeepEqual(got, c) {
		t.Fatalf("unknown command changed the cart")
	}
}

func TestTotalsMatchAfterRandomCommands(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	products := []catalog.Product{
		testProduct("a", 299, true),
		testProduct("b", 899, true),
		testProduct("c", 89, true),
		{ID: "d", Name: "Decimal", Price: decimal.RequireFromString("19.99"), InStock: true},
	}

	c := Empty()
	for i := 0; i < 500; i++ {
		p := products[rng.Intn(len(products))]
		switch rng.Intn(4) {
		case 0:
			c = Reduce(c, AddCommand(p, 1+rng.Intn(5)))
		case 1:
			c = Reduce(c, RemoveCommand(p.ID))
		case 2:
			c = Reduce(c, UpdateQuantityCommand(p.ID, rng.Intn(8)-2))
		case 3:
			if rng.Intn(10) == 0 {
				c = Reduce(c, ClearCommand())
			}
		}
		assertConsistent(t, c)
	}
}

func TestItemSubtotal(t *testing.T) {
	item := Item{Product: catalog.Product{Price: decimal.RequireFromString("19.99")}, Quantity: 3}
	if !item.Subtotal().Equal(decimal.RequireFromString("59.97")) {
		t.Fatalf("unexpected subtotal %s", item.Subtotal())
	}
}
