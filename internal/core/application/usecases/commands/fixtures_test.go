package commands_test

import (
	"testing"
	"time"

	"oja/internal/core/domain/model/kernel"
	"oja/internal/core/domain/model/order"
	"oja/internal/core/domain/model/store"
	"oja/internal/core/domain/model/user"

	"github.com/stretchr/testify/require"
)

type world struct {
	buyer   *user.User
	seller  *user.User
	courier *user.User
	shop    *store.Store
	item    *store.Item
}

// newWorld builds a buyer with 50000, a seller with a store at (6.50, 3.30) and an item
// priced 5000 with 10 units in stock.
func newWorld(t *testing.T) world {
	t.Helper()

	buyer, err := user.NewUser(kernel.NewUUID(), "buyer@oja.ng", "Ada", "", user.RoleBuyer)
	require.NoError(t, err)
	seller, err := user.NewUser(kernel.NewUUID(), "seller@oja.ng", "Bola", "", user.RoleSeller)
	require.NoError(t, err)
	profile, err := user.NewCourierProfile(user.VehicleCar, "ABC-1", "1", "")
	require.NoError(t, err)
	courier, err := user.NewDeliveryPerson(kernel.NewUUID(), "courier@oja.ng", "Tunde", "", profile)
	require.NoError(t, err)

	shop, err := store.NewStore(kernel.NewUUID(), seller.ID(), "Bola Foods", "", "Food", "Yaba",
		kernel.MustGeoPoint(6.50, 3.30))
	require.NoError(t, err)
	require.NoError(t, seller.AttachStore(shop.ID()))

	item, err := store.NewItem(kernel.NewUUID(), shop.ID(), "Yam tuber", "", 5000, 10)
	require.NoError(t, err)

	return world{buyer: buyer, seller: seller, courier: courier, shop: shop, item: item}
}

// order returns an order of two items in the given status.
func (w world) order(t *testing.T, status order.Status) *order.Order {
	t.Helper()

	line, err := order.NewLine(w.item.ID(), w.item.Name(), w.item.Price(), 2)
	require.NoError(t, err)

	var courierID *kernel.UUID
	if status != order.Processing {
		id := w.courier.ID()
		courierID = &id
	}
	now := time.Now()
	o, err := order.RestoreOrder(kernel.NewUUID(), w.buyer.ID(), w.shop.ID(), []order.Line{line}, 1500,
		status, "12 Allen Avenue", kernel.MustGeoPoint(6.60, 3.40), now, now.Add(time.Hour), courierID, false)
	require.NoError(t, err)
	return o
}
