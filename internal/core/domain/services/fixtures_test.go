package services_test

import (
	"testing"

	"oja/internal/core/domain/model/kernel"
	"oja/internal/core/domain/model/store"
	"oja/internal/core/domain/model/user"

	"github.com/stretchr/testify/require"
)

type marketplace struct {
	buyer   *user.User
	seller  *user.User
	courier *user.User
	shop    *store.Store
}

func newMarketplace(t *testing.T) marketplace {
	t.Helper()

	buyer, err := user.NewUser(kernel.NewUUID(), "buyer@oja.ng", "Ada", "", user.RoleBuyer)
	require.NoError(t, err)

	seller, err := user.NewUser(kernel.NewUUID(), "seller@oja.ng", "Bola", "", user.RoleSeller)
	require.NoError(t, err)

	profile, err := user.NewCourierProfile(user.VehicleMotorcycle, "LAG-1", "123", "Yaba")
	require.NoError(t, err)
	courier, err := user.NewDeliveryPerson(kernel.NewUUID(), "courier@oja.ng", "Tunde", "", profile)
	require.NoError(t, err)

	shop, err := store.NewStore(kernel.NewUUID(), seller.ID(), "Bola Foods", "", "Food", "Yaba",
		kernel.MustGeoPoint(6.50, 3.30))
	require.NoError(t, err)
	require.NoError(t, seller.AttachStore(shop.ID()))

	return marketplace{buyer: buyer, seller: seller, courier: courier, shop: shop}
}

func (m marketplace) item(t *testing.T, price int64, stock int) *store.Item {
	t.Helper()
	i, err := store.NewItem(kernel.NewUUID(), m.shop.ID(), "Yam tuber", "", price, stock)
	require.NoError(t, err)
	return i
}
