package cartControllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gowty08/Animecosplay/models"
	"github.com/Gowty08/Animecosplay/testutil"
)

type cartResponse struct {
	CartItems []models.CartItem `json:"cart_items"`
	Total     float64           `json:"total"`
}

func TestAddSameProductAndSizeMergesQuantity(t *testing.T) {
	r, db := testutil.NewTestAPI(t)
	token := testutil.RegisterUser(t, r, "buyer@example.com")
	product := testutil.CreateProduct(t, db, "Wigs", "Luffy Wig", 29.99, false)

	body := fmt.Sprintf(`{"product_id":%d,"quantity":2,"size":"M"}`, product.ID)
	w := testutil.DoJSON(t, r, http.MethodPost, "/api/cart", token, body)
	require.Equal(t, http.StatusCreated, w.Code)

	body = fmt.Sprintf(`{"product_id":%d,"quantity":3,"size":"M"}`, product.ID)
	w = testutil.DoJSON(t, r, http.MethodPost, "/api/cart", token, body)
	require.Equal(t, http.StatusCreated, w.Code)

	var items []models.CartItem
	require.NoError(t, db.Find(&items).Error)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, "M", items[0].Size)
}

func TestAddSameProductDifferentSizeCreatesTwoLines(t *testing.T) {
	r, db := testutil.NewTestAPI(t)
	token := testutil.RegisterUser(t, r, "buyer@example.com")
	product := testutil.CreateProduct(t, db, "Wigs", "Zoro Wig", 24.99, false)

	for _, size := range []string{"M", "L"} {
		body := fmt.Sprintf(`{"product_id":%d,"quantity":1,"size":"%s"}`, product.ID, size)
		w := testutil.DoJSON(t, r, http.MethodPost, "/api/cart", token, body)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestAddUnknownProductFails(t *testing.T) {
	r, _ := testutil.NewTestAPI(t)
	token := testutil.RegisterUser(t, r, "buyer@example.com")

	w := testutil.DoJSON(t, r, http.MethodPost, "/api/cart", token,
		`{"product_id":9999,"quantity":1,"size":"M"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetCartComputesLiveTotal(t *testing.T) {
	r, db := testutil.NewTestAPI(t)
	token := testutil.RegisterUser(t, r, "buyer@example.com")
	wig := testutil.CreateProduct(t, db, "Wigs", "Nami Wig", 10.00, false)
	cloak := testutil.CreateProduct(t, db, "Costumes", "Robin Cloak", 50.00, false)

	for _, item := range []struct {
		id  uint
		qty int
	}{{wig.ID, 2}, {cloak.ID, 1}} {
		body := fmt.Sprintf(`{"product_id":%d,"quantity":%d,"size":"M"}`, item.id, item.qty)
		w := testutil.DoJSON(t, r, http.MethodPost, "/api/cart", token, body)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := testutil.DoJSON(t, r, http.MethodGet, "/api/cart", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	var resp cartResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.CartItems, 2)
	assert.InDelta(t, 70.00, resp.Total, 0.001)

	// Price changes are reflected immediately, the cart total is not frozen.
	require.NoError(t, db.Model(&models.Product{}).Where("id = ?", wig.ID).
		Update("price", 15.00).Error)

	w = testutil.DoJSON(t, r, http.MethodGet, "/api/cart", token, "")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.InDelta(t, 80.00, resp.Total, 0.001)
}

func TestDeleteCartItemScopedToOwner(t *testing.T) {
	r, db := testutil.NewTestAPI(t)
	owner := testutil.RegisterUser(t, r, "owner@example.com")
	other := testutil.RegisterUser(t, r, "other@example.com")
	product := testutil.CreateProduct(t, db, "Wigs", "Sanji Wig", 19.99, false)

	body := fmt.Sprintf(`{"product_id":%d,"quantity":1,"size":"M"}`, product.ID)
	w := testutil.DoJSON(t, r, http.MethodPost, "/api/cart", owner, body)
	require.Equal(t, http.StatusCreated, w.Code)

	var item models.CartItem
	require.NoError(t, db.First(&item).Error)

	// Someone else's token cannot remove the line.
	w = testutil.DoJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/cart/%d", item.ID), other, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = testutil.DoJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/cart/%d", item.ID), owner, "")
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestClearCart(t *testing.T) {
	r, db := testutil.NewTestAPI(t)
	token := testutil.RegisterUser(t, r, "buyer@example.com")
	product := testutil.CreateProduct(t, db, "Wigs", "Chopper Hat", 9.99, false)

	body := fmt.Sprintf(`{"product_id":%d,"quantity":1,"size":"M"}`, product.ID)
	w := testutil.DoJSON(t, r, http.MethodPost, "/api/cart", token, body)
	require.Equal(t, http.StatusCreated, w.Code)

	w = testutil.DoJSON(t, r, http.MethodDelete, "/api/cart", token, "")
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}
