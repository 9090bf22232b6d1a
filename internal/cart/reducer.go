package cart

import (
	"github.com/angelmondragon/storefront-backend/internal/catalog"
	"github.com/angelmondragon/storefront-backend/pkg/enums"
)

// Command is one transition request. Product is used by add, ProductID by remove and
// update_quantity, Quantity by add and update_quantity.
type Command struct {
	Kind      enums.CartCommand
	Product   catalog.Product
	ProductID string
	Quantity  int
}

func AddCommand(product catalog.Product, quantity int) Command {
	return Command{Kind: enums.CartCommandAdd, Product: product, ProductID: product.ID, Quantity: quantity}
}

func RemoveCommand(productID string) Command {
	return Command{Kind: enums.CartCommandRemove, ProductID: productID}
}

func UpdateQuantityCommand(productID string, quantity int) Command {
	return Command{Kind: enums.CartCommandUpdateQuantity, ProductID: productID, Quantity: quantity}
}

func ClearCommand() Command {
	return Command{Kind: enums.CartCommandClear}
}

// Reduce applies cmd to c and returns the next cart. It never mutates c and does not check
// stock; that guard belongs to Machine. Unknown commands, adds of less than one unit and
// changes that would overflow the item count return c unchanged.
func Reduce(c Cart, cmd Command) Cart {
	switch cmd.Kind {
	case enums.CartCommandAdd:
		return add(c, cmd.Product, cmd.Quantity)
	case enums.CartCommandRemove:
		return remove(c, cmd.ProductID)
	case enums.CartCommandUpdateQuantity:
		return updateQuantity(c, cmd.ProductID, cmd.Quantity)
	case enums.CartCommandClear:
		return Empty()
	default:
		return c
	}
}

func add(c Cart, product catalog.Product, quantity int) Cart {
	if !c.canAdd(quantity) {
		return c
	}
	next := c.Clone()
	if idx := next.indexOf(product.ID); idx >= 0 {
		next.Items[idx].Quantity += quantity
		return recompute(next.Items)
	}
	return recompute(append(next.Items, Item{Product: product, Quantity: quantity}))
}

func remove(c Cart, productID string) Cart {
	idx := c.indexOf(productID)
	if idx < 0 {
		return c
	}
	items := make([]Item, 0, len(c.Items)-1)
	items = append(items, c.Items[:idx]...)
	items = append(items, c.Items[idx+1:]...)
	return recompute(items)
}

func updateQuantity(c Cart, productID string, quantity int) Cart {
	if quantity <= 0 {
		return remove(c, productID)
	}
	idx := c.indexOf(productID)
	if idx < 0 || !c.canSet(productID, quantity) {
		return c
	}
	next := c.Clone()
	next.Items[idx].Quantity = quantity
	return recompute(next.Items)
}
