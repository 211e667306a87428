package services

import (
	"testing"
	"time"

	"vipshop-backend/entity"
	"vipshop-backend/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderStartsPending(t *testing.T) {
	db := newTestDB(t)
	svc := newTestOrderService(t, db)

	order, err := svc.Create(validCheckout())
	require.NoError(t, err)

	assert.NotEmpty(t, order.ID)
	assert.Equal(t, entity.StatusPending, order.Status)
	assert.Equal(t, "VIP Platinum", order.ItemName)
	assert.Equal(t, 49.90, order.ItemPrice)
	assert.Equal(t, "John_Doe", order.PlayerNick)
	assert.Equal(t, int64(42), order.PlayerID)
	assert.Equal(t, "john#1234", order.DiscordContact)
	assert.Equal(t, "https://img.example/proof.png", order.ProofImageURL)
	assert.False(t, order.CreatedAt.IsZero())
}

func TestCreateOrderFreshIdentifiers(t *testing.T) {
	db := newTestDB(t)
	svc := newTestOrderService(t, db)

	a, err := svc.Create(validCheckout())
	require.NoError(t, err)
	b, err := svc.Create(validCheckout())
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestCreateCoinOrderComputesTotal(t *testing.T) {
	db := newTestDB(t)
	seedTestConfig(t, db, "Cash", 1.0)
	svc := newTestOrderService(t, db)

	req := validCheckout()
	req.ItemID = ItemIDCoins
	req.ItemName = ""
	req.ItemPrice = 0
	req.Quantity = 250

	order, err := svc.Create(req)
	require.NoError(t, err)

	assert.Equal(t, 250.0, order.ItemPrice)
	assert.Equal(t, "250x Cash", order.ItemName)
}

func TestCreateCoinOrderRejectsZeroQuantity(t *testing.T) {
	db := newTestDB(t)
	seedTestConfig(t, db, "Cash", 1.0)
	svc := newTestOrderService(t, db)

	req := validCheckout()
	req.ItemID = ItemIDCoins
	req.Quantity = 0

	_, err := svc.Create(req)
	assert.Error(t, err)
}

func TestCreateOrderValidation(t *testing.T) {
	db := newTestDB(t)
	svc := newTestOrderService(t, db)

	cases := []struct {
		name   string
		mutate func(*CreateOrderReq)
	}{
		{"missing nick", func(r *CreateOrderReq) { r.PlayerNick = "  " }},
		{"missing player id", func(r *CreateOrderReq) { r.PlayerID = 0 }},
		{"missing contact", func(r *CreateOrderReq) { r.DiscordContact = "" }},
		{"missing proof", func(r *CreateOrderReq) { r.ProofImage = "" }},
		{"missing item name", func(r *CreateOrderReq) { r.ItemName = "" }},
		{"zero price", func(r *CreateOrderReq) { r.ItemPrice = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validCheckout()
			tc.mutate(req)
			_, err := svc.Create(req)
			assert.Error(t, err)
		})
	}

	// nothing partial may land
	var count int64
	db.Model(&entity.Order{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestGetReturnsTranscriptInOrder(t *testing.T) {
	db := newTestDB(t)
	svc := newTestOrderService(t, db)
	chat := NewChatService(repository.NewChatRepository(db), svc.Repo)

	order, err := svc.Create(validCheckout())
	require.NoError(t, err)

	_, err = chat.Append(order.ID, entity.SenderPlayer, "oi")
	require.NoError(t, err)
	_, err = chat.Append(order.ID, entity.SenderAdmin, "olá, em que posso ajudar?")
	require.NoError(t, err)

	got, err := svc.Get(order.ID)
	require.NoError(t, err)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "oi", got.Messages[0].Content)
	assert.Equal(t, entity.SenderPlayer, got.Messages[0].Sender)
	assert.Equal(t, "olá, em que posso ajudar?", got.Messages[1].Content)
	assert.Equal(t, entity.SenderAdmin, got.Messages[1].Sender)
}

func TestGetUnknownIDIsNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newTestOrderService(t, db)

	_, err := svc.Get("never-issued-id")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestTransitionApprove(t *testing.T) {
	db := newTestDB(t)
	svc := newTestOrderService(t, db)

	order, err := svc.Create(validCheckout())
	require.NoError(t, err)

	require.NoError(t, svc.Transition(order.ID, entity.StatusApproved, ""))

	got, err := svc.Get(order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusApproved, got.Status)
}

func TestTransitionRejectWithNote(t *testing.T) {
	db := newTestDB(t)
	svc := newTestOrderService(t, db)

	order, err := svc.Create(validCheckout())
	require.NoError(t, err)

	require.NoError(t, svc.Transition(order.ID, entity.StatusRejected, "comprovante inválido"))

	got, err := svc.Get(order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusRejected, got.Status)
	assert.Equal(t, "comprovante inválido", got.AdminNote)
	assert.Empty(t, got.Messages, "a decision must not auto-append a chat message")
}

func TestTransitionOnlyOnce(t *testing.T) {
	db := newTestDB(t)
	svc := newTestOrderService(t, db)

	order, err := svc.Create(validCheckout())
	require.NoError(t, err)

	require.NoError(t, svc.Transition(order.ID, entity.StatusApproved, ""))
	err = svc.Transition(order.ID, entity.StatusRejected, "")
	assert.ErrorIs(t, err, ErrOrderDecided)

	got, err := svc.Get(order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusApproved, got.Status)
}

func TestTransitionRejectsBogusStatus(t *testing.T) {
	db := newTestDB(t)
	svc := newTestOrderService(t, db)

	order, err := svc.Create(validCheckout())
	require.NoError(t, err)

	assert.Error(t, svc.Transition(order.ID, "PENDING", ""))
	assert.Error(t, svc.Transition(order.ID, "SHIPPED", ""))
}

func TestTransitionUnknownIDIsNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newTestOrderService(t, db)

	err := svc.Transition("never-issued-id", entity.StatusApproved, "")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestResolveManySkipsUnknownIDs(t *testing.T) {
	db := newTestDB(t)
	svc := newTestOrderService(t, db)

	a, err := svc.Create(validCheckout())
	require.NoError(t, err)
	b, err := svc.Create(validCheckout())
	require.NoError(t, err)

	orders, err := svc.ResolveMany([]string{a.ID, "bogus", b.ID})
	require.NoError(t, err)
	assert.Len(t, orders, 2)

	found := map[string]bool{}
	for _, o := range orders {
		found[o.ID] = true
	}
	assert.True(t, found[a.ID])
	assert.True(t, found[b.ID])
}

func TestOrderRoundTripsThroughStore(t *testing.T) {
	db := newTestDB(t)
	svc := newTestOrderService(t, db)

	created, err := svc.Create(validCheckout())
	require.NoError(t, err)

	var loaded entity.Order
	require.NoError(t, db.Where("id = ?", created.ID).First(&loaded).Error)

	assert.Equal(t, created.ID, loaded.ID)
	assert.Equal(t, created.ItemID, loaded.ItemID)
	assert.Equal(t, created.ItemName, loaded.ItemName)
	assert.Equal(t, created.ItemPrice, loaded.ItemPrice)
	assert.Equal(t, created.PlayerNick, loaded.PlayerNick)
	assert.Equal(t, created.PlayerID, loaded.PlayerID)
	assert.Equal(t, created.DiscordContact, loaded.DiscordContact)
	assert.Equal(t, created.ProofImageURL, loaded.ProofImageURL)
	assert.Equal(t, created.Status, loaded.Status)
	assert.Equal(t, created.AdminNote, loaded.AdminNote)
	assert.WithinDuration(t, created.CreatedAt, loaded.CreatedAt, time.Second)
}
