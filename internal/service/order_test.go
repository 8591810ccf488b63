package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/filmhub/internal/dto"
)

func paidMovie(t *testing.T, f *fixture, title string, price int64) int {
	t.Helper()
	req := movieRequest(title)
	req.IsPaid = true
	req.Price = price
	res, err := f.movies.CreateMovie(context.Background(), req)
	require.NoError(t, err)
	require.True(t, res.Success, res.Message)
	return res.Data.ID
}

func TestCheckoutAndComplete(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	gateway := &fakeGateway{sessions: map[string]*PaymentSession{}}
	orders := NewOrderService(f.repos, gateway, testLogger())
	movieID := paidMovie(t, f, "Heat", 50000)

	checkout, err := orders.CreateCheckoutSession(ctx, "u1", dto.CheckoutRequest{MovieID: movieID})
	require.NoError(t, err)
	require.True(t, checkout.Success, checkout.Message)
	require.Len(t, gateway.created, 1)
	assert.EqualValues(t, 50000, gateway.created[0].Amount)
	assert.Equal(t, "Heat", gateway.created[0].Title)

	sessionID := checkout.Data.SessionID
	gateway.sessions[sessionID] = &PaymentSession{ID: sessionID, UserID: "u1", MovieID: movieID, Amount: 50000}

	unpaid, err := orders.CompleteOrder(ctx, "u1", dto.CompleteOrderRequest{SessionID: sessionID})
	require.NoError(t, err)
	assert.Equal(t, KindInvalid, unpaid.Kind)

	gateway.sessions[sessionID].Paid = true
	stranger, err := orders.CompleteOrder(ctx, "u2", dto.CompleteOrderRequest{SessionID: sessionID})
	require.NoError(t, err)
	assert.Equal(t, KindForbidden, stranger.Kind)

	done, err := orders.CompleteOrder(ctx, "u1", dto.CompleteOrderRequest{SessionID: sessionID})
	require.NoError(t, err)
	require.True(t, done.Success, done.Message)
	again, err := orders.CompleteOrder(ctx, "u1", dto.CompleteOrderRequest{SessionID: sessionID})
	require.NoError(t, err)
	assert.Equal(t, done.Data.ID, again.Data.ID)

	purchased, err := orders.HasPurchased(ctx, "u1", movieID)
	require.NoError(t, err)
	assert.True(t, purchased.Data)

	conflict, err := orders.CreateCheckoutSession(ctx, "u1", dto.CheckoutRequest{MovieID: movieID})
	require.NoError(t, err)
	assert.Equal(t, KindConflict, conflict.Kind)

	list, err := orders.GetUserOrders(ctx, "u1", dto.PageQuery{})
	require.NoError(t, err)
	assert.Len(t, list.Data.Items, 1)

	unknown, err := orders.CompleteOrder(ctx, "u1", dto.CompleteOrderRequest{SessionID: "cs_missing"})
	require.NoError(t, err)
	assert.Equal(t, KindNotFound, unknown.Kind)
}

func TestCheckoutRules(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	gateway := &fakeGateway{}
	orders := NewOrderService(f.repos, gateway, testLogger())

	cheap := paidMovie(t, f, "Cheap", MinCheckoutAmount-1)
	res, err := orders.CreateCheckoutSession(ctx, "u1", dto.CheckoutRequest{MovieID: cheap})
	require.NoError(t, err)
	assert.Equal(t, KindInvalid, res.Kind)

	exact := paidMovie(t, f, "Exact", MinCheckoutAmount)
	res, err = orders.CreateCheckoutSession(ctx, "u1", dto.CheckoutRequest{MovieID: exact})
	require.NoError(t, err)
	assert.True(t, res.Success)

	free := createSeries(t, f, "Free", false)
	res, err = orders.CreateCheckoutSession(ctx, "u1", dto.CheckoutRequest{MovieID: free})
	require.NoError(t, err)
	assert.Equal(t, KindInvalid, res.Kind)

	res, err = orders.CreateCheckoutSession(ctx, "u1", dto.CheckoutRequest{MovieID: 999})
	require.NoError(t, err)
	assert.Equal(t, KindNotFound, res.Kind)

	assert.Len(t, gateway.created, 1)
}
