package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lizandro-reis/pizzaria-iedita-app/internal/models"
)

// memStore is an in-memory CartStore for exercising the aggregate without a
// database.
type memStore struct {
	payloads map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{payloads: make(map[string][]byte)}
}

func (m *memStore) Load(userID string) ([]byte, error) {
	return m.payloads[userID], nil
}

func (m *memStore) Save(userID string, payload []byte) error {
	m.payloads[userID] = payload
	return nil
}

func (m *memStore) Delete(userID string) error {
	delete(m.payloads, userID)
	return nil
}

func testItem(pizzaID string, unit float64, quantity int) models.CartLineItem {
	return models.CartLineItem{
		PizzaID:    pizzaID,
		Name:       "Pizza " + pizzaID,
		Size:       models.SizeMedium,
		Quantity:   quantity,
		UnitPrice:  unit,
		TotalPrice: unit * float64(quantity),
	}
}

func TestCartStartsEmpty(t *testing.T) {
	carts := NewCartService(newMemStore())

	cart, err := carts.Get("user-1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Equal(t, 0.0, cart.Total())
}

func TestCartAddItemPreservesInsertionOrder(t *testing.T) {
	carts := NewCartService(newMemStore())

	_, err := carts.AddItem("user-1", testItem("pz-a", 40.0, 1))
	require.NoError(t, err)
	_, err = carts.AddItem("user-1", testItem("pz-b", 50.0, 2))
	require.NoError(t, err)
	cart, err := carts.AddItem("user-1", testItem("pz-a", 40.0, 1))
	require.NoError(t, err)

	require.Len(t, cart.Items, 3)
	assert.Equal(t, "pz-a", cart.Items[0].PizzaID)
	assert.Equal(t, "pz-b", cart.Items[1].PizzaID)
	assert.Equal(t, "pz-a", cart.Items[2].PizzaID)
	assert.Equal(t, 180.0, cart.Total())
}

func TestCartRemoveItemReindexes(t *testing.T) {
	carts := NewCartService(newMemStore())

	carts.AddItem("user-1", testItem("pz-a", 40.0, 1))
	carts.AddItem("user-1", testItem("pz-b", 50.0, 1))
	carts.AddItem("user-1", testItem("pz-c", 60.0, 1))

	cart, err := carts.RemoveItem("user-1", 1)
	require.NoError(t, err)

	require.Len(t, cart.Items, 2)
	assert.Equal(t, "pz-a", cart.Items[0].PizzaID)
	assert.Equal(t, "pz-c", cart.Items[1].PizzaID)
	assert.Equal(t, 100.0, cart.Total())
}

func TestCartRemoveItemOutOfBoundsIsNoOp(t *testing.T) {
	carts := NewCartService(newMemStore())
	carts.AddItem("user-1", testItem("pz-a", 40.0, 1))

	for _, index := range []int{-1, 1, 99} {
		cart, err := carts.RemoveItem("user-1", index)
		require.NoError(t, err)
		assert.Len(t, cart.Items, 1)
	}
}

func TestCartClearDeletesPersistedState(t *testing.T) {
	store := newMemStore()
	carts := NewCartService(store)

	carts.AddItem("user-1", testItem("pz-a", 40.0, 1))
	require.NoError(t, carts.Clear("user-1"))

	_, ok := store.payloads["user-1"]
	assert.False(t, ok)

	cart, err := carts.Get("user-1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestCartCorruptPayloadReadsAsEmpty(t *testing.T) {
	store := newMemStore()
	store.payloads["user-1"] = []byte("{not json at all")
	carts := NewCartService(store)

	cart, err := carts.Get("user-1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	// The next mutation overwrites the broken payload.
	cart, err = carts.AddItem("user-1", testItem("pz-a", 40.0, 1))
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)
}

func TestCartsAreIsolatedPerUser(t *testing.T) {
	carts := NewCartService(newMemStore())

	carts.AddItem("user-1", testItem("pz-a", 40.0, 1))
	carts.AddItem("user-2", testItem("pz-b", 50.0, 1))

	one, err := carts.Get("user-1")
	require.NoError(t, err)
	two, err := carts.Get("user-2")
	require.NoError(t, err)

	require.Len(t, one.Items, 1)
	require.Len(t, two.Items, 1)
	assert.Equal(t, "pz-a", one.Items[0].PizzaID)
	assert.Equal(t, "pz-b", two.Items[0].PizzaID)
}

func TestGormCartStoreRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	store := NewGormCartStore(db)

	payload, err := store.Load("user-1")
	require.NoError(t, err)
	assert.Nil(t, payload)

	require.NoError(t, store.Save("user-1", []byte(`{"items":[]}`)))
	require.NoError(t, store.Save("user-1", []byte(`{"items":[{"pizza_id":"pz-a"}]}`)))

	payload, err = store.Load("user-1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[{"pizza_id":"pz-a"}]}`, string(payload))

	require.NoError(t, store.Delete("user-1"))
	payload, err = store.Load("user-1")
	require.NoError(t, err)
	assert.Nil(t, payload)
}
