package store

import (
	"errors"
	"fmt"
	"strings"

	"oja/internal/core/domain/model/kernel"
	"oja/internal/pkg/errs"
	"oja/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned for an Item that bypassed NewItem/RestoreItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a product listed by a store. Price is in minor currency units, stock never drops below zero.
type Item struct {
	id          kernel.UUID
	storeID     kernel.UUID
	name        string
	description string
	price       int64
	stock       int
	rating      kernel.Rating
	guard       guard.ConstructorGuard
}

// NewItem lists a new product.
func NewItem(id, storeID kernel.UUID, name, description string, price int64, stock int) (*Item, error) {
	return RestoreItem(id, storeID, name, description, price, stock, kernel.Rating{})
}

// RestoreItem rebuilds an Item from storage.
func RestoreItem(
	id, storeID kernel.UUID,
	name, description string,
	price int64,
	stock int,
	rating kernel.Rating,
) (*Item, error) {
	i := &Item{
		description: description,
		rating:      rating,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		i.setID(id),
		i.setStoreID(storeID),
		i.setName(name),
		i.setPrice(price),
		i.setStock(stock),
	); err != nil {
		return nil, err
	}

	return i, nil
}

func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i *Item) ID() kernel.UUID { return i.id }

func (i *Item) StoreID() kernel.UUID { return i.storeID }

func (i *Item) Name() string { return i.name }

func (i *Item) Description() string { return i.description }

func (i *Item) Price() int64 { return i.price }

func (i *Item) Stock() int { return i.stock }

func (i *Item) Rating() kernel.Rating { return i.rating }

// EnsureAvailable fails unless the item has at least quantity units left.
func (i *Item) EnsureAvailable(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "stock")
	}
	if quantity > i.stock {
		return errs.NewOutOfStockError(i.id.String(), quantity, i.stock)
	}
	return nil
}

// Decrement removes quantity units from stock. Stock is unchanged on failure.
func (i *Item) Decrement(quantity int) error {
	if err := i.EnsureAvailable(quantity); err != nil {
		return err
	}
	i.stock -= quantity
	return nil
}

// Restock adds quantity units to stock.
func (i *Item) Restock(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.stock += quantity
	return nil
}

// IsOutOfStock reports stock == 0.
func (i *Item) IsOutOfStock() bool {
	return i.stock == 0
}

// IsLowStock reports 0 < stock <= threshold. Out-of-stock items are not low on stock.
func (i *Item) IsLowStock(threshold int) bool {
	return i.stock > 0 && i.stock <= threshold
}

// Rate folds a review score into the item rating.
func (i *Item) Rate(score int) error {
	rating, err := i.rating.Add(score)
	if err != nil {
		return err
	}
	i.rating = rating
	return nil
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setStoreID(storeID kernel.UUID) error {
	if err := storeID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("store", err)
	}
	i.storeID = storeID
	return nil
}

func (i *Item) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}
	i.name = name
	return nil
}

func (i *Item) setPrice(price int64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%d is not greater than 0", price))
	}
	i.price = price
	return nil
}

func (i *Item) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stock", fmt.Errorf("%d is negative", stock))
	}
	i.stock = stock
	return nil
}
