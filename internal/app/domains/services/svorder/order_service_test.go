package svorder_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oms/internal/app/domains/entity/etorder"
	"oms/internal/app/domains/modules/mdevent"
	"oms/internal/app/domains/services/svorder"
	"oms/internal/app/pkg/errorx"
	"oms/internal/app/pkg/idgen"
	"oms/internal/app/pkg/logger"
	"oms/internal/app/pkg/testutil"
	"oms/internal/common/model"
)

func orderDetails(name, client, phone, term string) etorder.OrderDetails {
	return etorder.OrderDetails{
		OrderName:         name,
		ClientName:        client,
		ClientPhoneNumber: phone,
		ClientEmail:       "client@example.com",
		OrderTerm:         term,
		OrderStatus:       "New",
	}
}

func int64Ptr(v int64) *int64       { return &v }
func float64Ptr(v float64) *float64 { return &v }

func orderIDs(orders []*etorder.Order) []int64 {
	ids := make([]int64, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}
	return ids
}

func TestCreateOrder(t *testing.T) {
	fx := testutil.NewFixture(t)
	ctx := context.Background()

	order, err := fx.Orders.CreateOrder(ctx, testutil.Manager, orderDetails("Brackets", "John", "+370600", "2024-02-01"))
	require.NoError(t, err)

	assert.NotZero(t, order.ID)
	assert.True(t, idgen.IsOrderNumber(order.OrderNumber))
	assert.Equal(t, 0.0, order.OrderPrice)
	assert.Equal(t, "2024-01-22", order.OrderUpdateDate)
	assert.False(t, order.IsDeleted)

	stored, err := fx.Orders.GetOrder(ctx, testutil.Viewer, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.OrderNumber, stored.OrderNumber)
	assert.Equal(t, "Brackets", stored.OrderName)

	messages := fx.Published.Messages()
	require.Len(t, messages, 1)
	event, err := mdevent.DecodeEvent(messages[0])
	require.NoError(t, err)
	assert.Equal(t, model.EventOrderCreated, event.Type)
	assert.Equal(t, "manager", event.Actor)
}

func TestCreateOrder_UniqueNumbers(t *testing.T) {
	fx := testutil.NewFixture(t)
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		order, err := fx.Orders.CreateOrder(ctx, testutil.Admin, orderDetails("Order", "Client", "", ""))
		require.NoError(t, err)
		assert.False(t, seen[order.OrderNumber], "duplicate %s", order.OrderNumber)
		seen[order.OrderNumber] = true
	}
}

func TestCreateOrder_Validation(t *testing.T) {
	fx := testutil.NewFixture(t)
	ctx := context.Background()

	_, err := fx.Orders.CreateOrder(ctx, testutil.Manager, orderDetails("", "John", "", ""))
	require.Error(t, err)
	assert.Equal(t, errorx.KindValidation, errorx.KindOf(err))

	orders, err := fx.Orders.ListOrders(ctx, testutil.Viewer)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestCreateOrder_Forbidden(t *testing.T) {
	fx := testutil.NewFixture(t)

	_, err := fx.Orders.CreateOrder(context.Background(), testutil.Viewer, orderDetails("A", "B", "", ""))
	assert.Equal(t, errorx.KindForbidden, errorx.KindOf(err))
}

func TestCreateOrder_GenerationExhausted(t *testing.T) {
	fx := testutil.NewFixture(t)

	alwaysTaken := func(context.Context, string) (bool, error) { return true, nil }
	svc := svorder.NewOrderService(
		fx.Module,
		fx.Prices,
		idgen.NewOrderNumberGenerator(alwaysTaken, 3),
		fx.Events,
		fx.Clock(),
		logger.NewNop(),
	)

	_, err := svc.CreateOrder(context.Background(), testutil.Manager, orderDetails("A", "B", "", ""))
	require.Error(t, err)
	assert.Equal(t, errorx.KindGenerationExhausted, errorx.KindOf(err))
}

func TestGetOrder_NotFound(t *testing.T) {
	fx := testutil.NewFixture(t)

	_, err := fx.Orders.GetOrder(context.Background(), testutil.Viewer, 404)
	require.Error(t, err)
	assert.True(t, errorx.IsNotFound(err))
}

func TestListOrders_SortedByUpdateDateDesc(t *testing.T) {
	fx := testutil.NewFixture(t)
	ctx := context.Background()

	ids := map[string]int64{}
	for _, day := range []string{"2024-01-01", "2024-03-01", "2024-02-01"} {
		fx.SetToday(t, day)
		order, err := fx.Orders.CreateOrder(ctx, testutil.Manager, orderDetails("Same", "Same", "", "T"))
		require.NoError(t, err)
		ids[day] = order.ID
	}

	orders, err := fx.Orders.ListOrders(ctx, testutil.Viewer)
	require.NoError(t, err)
	assert.Equal(t, []int64{ids["2024-03-01"], ids["2024-02-01"], ids["2024-01-01"]}, orderIDs(orders))
}

func TestListOrders_TieBreakers(t *testing.T) {
	fx := testutil.NewFixture(t)
	ctx := context.Background()

	late, err := fx.Orders.CreateOrder(ctx, testutil.Manager, orderDetails("A", "Zed", "", "2024-05-01"))
	require.NoError(t, err)
	early, err := fx.Orders.CreateOrder(ctx, testutil.Manager, orderDetails("B", "Zed", "", "2024-04-01"))
	require.NoError(t, err)
	byClient, err := fx.Orders.CreateOrder(ctx, testutil.Manager, orderDetails("C", "Amy", "", "2024-04-01"))
	require.NoError(t, err)

	orders, err := fx.Orders.ListOrders(ctx, testutil.Viewer)
	require.NoError(t, err)
	assert.Equal(t, []int64{byClient.ID, early.ID, late.ID}, orderIDs(orders))
}

func TestSearchOrders(t *testing.T) {
	fx := testutil.NewFixture(t)
	ctx := context.Background()

	byPhone, err := fx.Orders.CreateOrder(ctx, testutil.Manager, orderDetails("Brackets", "John", "+370 555 123", ""))
	require.NoError(t, err)
	other, err := fx.Orders.CreateOrder(ctx, testutil.Manager, orderDetails("Bolts", "Mary", "+370 600 000", ""))
	require.NoError(t, err)

	t.Run("matches phone number", func(t *testing.T) {
		orders, err := fx.Orders.SearchOrders(ctx, testutil.Viewer, "555")
		require.NoError(t, err)
		assert.Contains(t, orderIDs(orders), byPhone.ID)
		if !strings.Contains(other.OrderNumber, "555") {
			assert.NotContains(t, orderIDs(orders), other.ID)
		}
	})

	t.Run("case insensitive name", func(t *testing.T) {
		orders, err := fx.Orders.SearchOrders(ctx, testutil.Viewer, "bOLTS")
		require.NoError(t, err)
		assert.Equal(t, []int64{other.ID}, orderIDs(orders))
	})

	t.Run("matches order number", func(t *testing.T) {
		orders, err := fx.Orders.SearchOrders(ctx, testutil.Viewer, other.OrderNumber)
		require.NoError(t, err)
		assert.Equal(t, []int64{other.ID}, orderIDs(orders))
	})

	t.Run("wildcards are literal", func(t *testing.T) {
		orders, err := fx.Orders.SearchOrders(ctx, testutil.Viewer, "%")
		require.NoError(t, err)
		assert.Empty(t, orders)
	})

	t.Run("blank behaves like list", func(t *testing.T) {
		orders, err := fx.Orders.SearchOrders(ctx, testutil.Viewer, "  ")
		require.NoError(t, err)
		assert.Len(t, orders, 2)
	})

	t.Run("deleted orders excluded", func(t *testing.T) {
		require.NoError(t, fx.Orders.DeleteOrder(ctx, testutil.Manager, byPhone.ID))
		orders, err := fx.Orders.SearchOrders(ctx, testutil.Viewer, "555")
		require.NoError(t, err)
		assert.NotContains(t, orderIDs(orders), byPhone.ID)
	})
}

func TestUpdateOrder(t *testing.T) {
	fx := testutil.NewFixture(t)
	ctx := context.Background()

	order, err := fx.Orders.CreateOrder(ctx, testutil.Manager, orderDetails("Brackets", "John", "", ""))
	require.NoError(t, err)
	_, err = fx.Items.AddItem(ctx, testutil.Manager, order.ID, etorder.ItemDetails{
		ItemName:  "Bolt",
		ItemCount: int64Ptr(4),
		ItemPrice: float64Ptr(2.5),
	})
	require.NoError(t, err)

	fx.SetToday(t, "2024-02-10")
	updated, err := fx.Orders.UpdateOrder(ctx, testutil.Admin, order.ID, orderDetails("Brackets v2", "Jane", "123", "2024-03-01"))
	require.NoError(t, err)

	assert.Equal(t, order.OrderNumber, updated.OrderNumber)
	assert.Equal(t, "Brackets v2", updated.OrderName)
	assert.Equal(t, "Jane", updated.ClientName)
	assert.InDelta(t, 10.0, updated.OrderPrice, 1e-9)
	assert.Equal(t, "2024-02-10", updated.OrderUpdateDate)

	stored, err := fx.Orders.GetOrder(ctx, testutil.Viewer, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "Brackets v2", stored.OrderName)
	assert.InDelta(t, 10.0, stored.OrderPrice, 1e-9)
}

func TestUpdateOrder_Errors(t *testing.T) {
	fx := testutil.NewFixture(t)
	ctx := context.Background()

	_, err := fx.Orders.UpdateOrder(ctx, testutil.Manager, 99, orderDetails("A", "B", "", ""))
	assert.True(t, errorx.IsNotFound(err))

	order, err := fx.Orders.CreateOrder(ctx, testutil.Manager, orderDetails("A", "B", "", ""))
	require.NoError(t, err)

	bad := orderDetails("A", "B", "", "")
	bad.ClientEmail = "broken"
	_, err = fx.Orders.UpdateOrder(ctx, testutil.Manager, order.ID, bad)
	assert.Equal(t, errorx.KindValidation, errorx.KindOf(err))

	stored, err := fx.Orders.GetOrder(ctx, testutil.Viewer, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "client@example.com", stored.ClientEmail)

	require.NoError(t, fx.Orders.DeleteOrder(ctx, testutil.Manager, order.ID))
	_, err = fx.Orders.UpdateOrder(ctx, testutil.Manager, order.ID, orderDetails("A", "B", "", ""))
	assert.True(t, errorx.IsNotFound(err))
}

func TestDeleteOrder_CascadesToItems(t *testing.T) {
	fx := testutil.NewFixture(t)
	ctx := context.Background()

	order, err := fx.Orders.CreateOrder(ctx, testutil.Manager, orderDetails("Brackets", "John", "", ""))
	require.NoError(t, err)

	var itemIDs []int64
	for _, name := range []string{"Bolt", "Nut"} {
		item, err := fx.Items.AddItem(ctx, testutil.Manager, order.ID, etorder.ItemDetails{
			ItemName:  name,
			ItemCount: int64Ptr(1),
			ItemPrice: float64Ptr(1),
		})
		require.NoError(t, err)
		itemIDs = append(itemIDs, item.ID)
	}

	require.NoError(t, fx.Orders.DeleteOrder(ctx, testutil.Admin, order.ID))

	stored, err := fx.Orders.GetOrder(ctx, testutil.Viewer, order.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsDeleted)

	for _, id := range itemIDs {
		item, err := fx.Items.GetItem(ctx, testutil.Viewer, id)
		require.NoError(t, err)
		assert.True(t, item.IsDeleted)
		assert.Equal(t, order.ID, item.OrderID)
	}

	orders, err := fx.Orders.ListOrders(ctx, testutil.Viewer)
	require.NoError(t, err)
	assert.Empty(t, orders)

	err = fx.Orders.DeleteOrder(ctx, testutil.Admin, order.ID)
	assert.True(t, errorx.IsNotFound(err))
}

func TestDeleteOrder_NotFound(t *testing.T) {
	fx := testutil.NewFixture(t)

	err := fx.Orders.DeleteOrder(context.Background(), testutil.Manager, 12345)
	assert.True(t, errorx.IsNotFound(err))
}

func TestDeleteOrder_Forbidden(t *testing.T) {
	fx := testutil.NewFixture(t)
	ctx := context.Background()

	order, err := fx.Orders.CreateOrder(ctx, testutil.Manager, orderDetails("A", "B", "", ""))
	require.NoError(t, err)

	err = fx.Orders.DeleteOrder(ctx, testutil.Viewer, order.ID)
	assert.Equal(t, errorx.KindForbidden, errorx.KindOf(err))
}
