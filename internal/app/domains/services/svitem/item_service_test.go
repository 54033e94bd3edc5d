package svitem_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oms/internal/app/domains/entity/etorder"
	"oms/internal/app/domains/modules/mdevent"
	"oms/internal/app/pkg/errorx"
	"oms/internal/app/pkg/testutil"
	"oms/internal/common/model"
)

func int64Ptr(v int64) *int64       { return &v }
func float64Ptr(v float64) *float64 { return &v }

func itemDetails(name string, count int64, price float64) etorder.ItemDetails {
	return etorder.ItemDetails{
		ItemName:  name,
		ItemCode:  "C-1",
		ItemCount: int64Ptr(count),
		ItemPrice: float64Ptr(price),
	}
}

func createOrder(t *testing.T, fx *testutil.Fixture) *etorder.Order {
	t.Helper()
	order, err := fx.Orders.CreateOrder(context.Background(), testutil.Manager, etorder.OrderDetails{
		OrderName:  "Brackets",
		ClientName: "John",
	})
	require.NoError(t, err)
	return order
}

func orderPrice(t *testing.T, fx *testutil.Fixture, orderID int64) float64 {
	t.Helper()
	order, err := fx.Orders.GetOrder(context.Background(), testutil.Viewer, orderID)
	require.NoError(t, err)
	return order.OrderPrice
}

func TestItemLifecycle_PriceRecalculation(t *testing.T) {
	fx := testutil.NewFixture(t)
	ctx := context.Background()
	order := createOrder(t, fx)

	item, err := fx.Items.AddItem(ctx, testutil.Manager, order.ID, itemDetails("Bolt", 2, 10))
	require.NoError(t, err)
	assert.NotZero(t, item.ID)
	assert.Equal(t, order.ID, item.OrderID)
	assert.InDelta(t, 20.0, item.TotalPrice, 1e-9)
	assert.InDelta(t, 20.0, orderPrice(t, fx, order.ID), 1e-9)

	updated, err := fx.Items.UpdateItem(ctx, testutil.Manager, item.ID, itemDetails("Bolt", 2, 15))
	require.NoError(t, err)
	assert.InDelta(t, 30.0, updated.TotalPrice, 1e-9)
	assert.InDelta(t, 30.0, orderPrice(t, fx, order.ID), 1e-9)

	require.NoError(t, fx.Items.DeleteItem(ctx, testutil.Manager, item.ID))
	assert.InDelta(t, 0.0, orderPrice(t, fx, order.ID), 1e-9)

	deleted, err := fx.Items.GetItem(ctx, testutil.Viewer, item.ID)
	require.NoError(t, err)
	assert.True(t, deleted.IsDeleted)
}

func TestItemLifecycle_PriceMatchesActiveItems(t *testing.T) {
	fx := testutil.NewFixture(t)
	ctx := context.Background()
	order := createOrder(t, fx)

	a, err := fx.Items.AddItem(ctx, testutil.Manager, order.ID, itemDetails("A", 3, 0.1))
	require.NoError(t, err)
	b, err := fx.Items.AddItem(ctx, testutil.Manager, order.ID, itemDetails("B", 1, 0.2))
	require.NoError(t, err)
	_, err = fx.Items.AddItem(ctx, testutil.Manager, order.ID, itemDetails("C", 7, 1.25))
	require.NoError(t, err)
	_, err = fx.Items.UpdateItem(ctx, testutil.Admin, b.ID, itemDetails("B", 4, 0.2))
	require.NoError(t, err)
	require.NoError(t, fx.Items.DeleteItem(ctx, testutil.Admin, a.ID))

	items, err := fx.Items.ListItems(ctx, testutil.Viewer, order.ID)
	require.NoError(t, err)

	var want float64
	for _, item := range items {
		want += float64(item.ItemCount) * item.ItemPrice
	}
	assert.InDelta(t, 9.55, want, 1e-9)
	assert.InDelta(t, want, orderPrice(t, fx, order.ID), 1e-9)
}

func TestAddItem_RefreshesOrderUpdateDate(t *testing.T) {
	fx := testutil.NewFixture(t)
	ctx := context.Background()
	order := createOrder(t, fx)

	fx.SetToday(t, "2024-03-05")
	item, err := fx.Items.AddItem(ctx, testutil.Manager, order.ID, itemDetails("Bolt", 1, 1))
	require.NoError(t, err)
	assert.Equal(t, "2024-03-05", item.ItemUpdateDate)

	stored, err := fx.Orders.GetOrder(ctx, testutil.Viewer, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-05", stored.OrderUpdateDate)

	messages := fx.Published.Messages()
	require.Len(t, messages, 2)
	event, err := mdevent.DecodeEvent(messages[1])
	require.NoError(t, err)
	assert.Equal(t, model.EventItemAdded, event.Type)
	assert.Equal(t, item.ID, event.ItemID)
	assert.InDelta(t, 1.0, event.OrderPrice, 1e-9)
}

func TestAddItem_Errors(t *testing.T) {
	fx := testutil.NewFixture(t)
	ctx := context.Background()

	_, err := fx.Items.AddItem(ctx, testutil.Manager, 777, itemDetails("Bolt", 1, 1))
	assert.True(t, errorx.IsNotFound(err))

	order := createOrder(t, fx)

	_, err = fx.Items.AddItem(ctx, testutil.Manager, order.ID, itemDetails("Bolt", -1, 1))
	assert.Equal(t, errorx.KindValidation, errorx.KindOf(err))

	_, err = fx.Items.AddItem(ctx, testutil.Viewer, order.ID, itemDetails("Bolt", 1, 1))
	assert.Equal(t, errorx.KindForbidden, errorx.KindOf(err))

	items, err := fx.Items.ListItems(ctx, testutil.Viewer, order.ID)
	require.NoError(t, err)
	assert.Empty(t, items)

	require.NoError(t, fx.Orders.DeleteOrder(ctx, testutil.Manager, order.ID))
	_, err = fx.Items.AddItem(ctx, testutil.Manager, order.ID, itemDetails("Bolt", 1, 1))
	assert.True(t, errorx.IsNotFound(err))
}

func TestUpdateItem_Errors(t *testing.T) {
	fx := testutil.NewFixture(t)
	ctx := context.Background()
	order := createOrder(t, fx)

	_, err := fx.Items.UpdateItem(ctx, testutil.Manager, 555, itemDetails("Bolt", 1, 1))
	assert.True(t, errorx.IsNotFound(err))

	item, err := fx.Items.AddItem(ctx, testutil.Manager, order.ID, itemDetails("Bolt", 2, 10))
	require.NoError(t, err)

	_, err = fx.Items.UpdateItem(ctx, testutil.Manager, item.ID, itemDetails("Bolt", 2, -3))
	assert.Equal(t, errorx.KindValidation, errorx.KindOf(err))
	assert.InDelta(t, 20.0, orderPrice(t, fx, order.ID), 1e-9)

	require.NoError(t, fx.Items.DeleteItem(ctx, testutil.Manager, item.ID))
	_, err = fx.Items.UpdateItem(ctx, testutil.Manager, item.ID, itemDetails("Bolt", 1, 1))
	assert.True(t, errorx.IsNotFound(err))

	err = fx.Items.DeleteItem(ctx, testutil.Manager, item.ID)
	assert.True(t, errorx.IsNotFound(err))
}

func TestListAndSearchItems(t *testing.T) {
	fx := testutil.NewFixture(t)
	ctx := context.Background()
	order := createOrder(t, fx)
	other := createOrder(t, fx)

	for _, name := range []string{"washer", "Bolt", "anchor bolt", "Nut"} {
		_, err := fx.Items.AddItem(ctx, testutil.Manager, order.ID, itemDetails(name, 1, 1))
		require.NoError(t, err)
	}
	_, err := fx.Items.AddItem(ctx, testutil.Manager, other.ID, itemDetails("Bolt", 1, 1))
	require.NoError(t, err)

	nut, err := fx.Items.SearchItems(ctx, testutil.Viewer, order.ID, "nut")
	require.NoError(t, err)
	require.Len(t, nut, 1)
	require.NoError(t, fx.Items.DeleteItem(ctx, testutil.Manager, nut[0].ID))

	items, err := fx.Items.ListItems(ctx, testutil.Viewer, order.ID)
	require.NoError(t, err)
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.ItemName)
	}
	assert.Equal(t, []string{"anchor bolt", "Bolt", "washer"}, names)

	bolts, err := fx.Items.SearchItems(ctx, testutil.Viewer, order.ID, "BOLT")
	require.NoError(t, err)
	require.Len(t, bolts, 2)
	assert.Equal(t, "anchor bolt", bolts[0].ItemName)
	assert.Equal(t, "Bolt", bolts[1].ItemName)

	all, err := fx.Items.SearchItems(ctx, testutil.Viewer, order.ID, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	_, err = fx.Items.ListItems(ctx, testutil.Viewer, 9999)
	assert.True(t, errorx.IsNotFound(err))
}

func TestGetItem_NotFound(t *testing.T) {
	fx := testutil.NewFixture(t)

	_, err := fx.Items.GetItem(context.Background(), testutil.Viewer, 1)
	assert.True(t, errorx.IsNotFound(err))
}
