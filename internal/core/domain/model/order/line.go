package order

import (
	"errors"
	"fmt"
	"strings"

	"oja/internal/core/domain/model/kernel"
	"oja/internal/pkg/errs"
	"oja/internal/pkg/guard"
)

// ErrLineIsNotConstructed is returned for a Line that bypassed NewLine.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line is the snapshot of one cart entry taken at checkout. Later price or name
// changes on the item do not affect it.
type Line struct {
	itemID    kernel.UUID
	name      string
	unitPrice int64
	quantity  int
	guard     guard.ConstructorGuard
}

// NewLine creates a line for quantity units of an item at unitPrice each.
func NewLine(itemID kernel.UUID, name string, unitPrice int64, quantity int) (Line, error) {
	var errList []error
	if err := itemID.Validate(); err != nil {
		errList = append(errList, err)
	}
	if strings.TrimSpace(name) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("line name"))
	}
	if unitPrice <= 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("unit price",
			fmt.Errorf("%d is not greater than 0", unitPrice)))
	}
	if quantity < 1 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is less than 1", quantity)))
	}
	if err := errors.Join(errList...); err != nil {
		return Line{}, err
	}

	return Line{
		itemID:    itemID,
		name:      name,
		unitPrice: unitPrice,
		quantity:  quantity,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (l Line) Validate() error {
	return l.guard.Validate(ErrLineIsNotConstructed)
}

func (l Line) ItemID() kernel.UUID { return l.itemID }

func (l Line) Name() string { return l.name }

func (l Line) UnitPrice() int64 { return l.unitPrice }

func (l Line) Quantity() int { return l.quantity }

// Amount is unit price times quantity.
func (l Line) Amount() int64 {
	return l.unitPrice * int64(l.quantity)
}
