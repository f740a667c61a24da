package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/figliolo/bar-client/stores"
)

// CartController exposes the per-shift draft cart to the local UI.
type CartController struct {
	Carts *stores.CartStore
}

// AddItemRequest represents the request body for adding to the cart
type AddItemRequest struct {
	IDProdotto int `json:"idProdotto" binding:"required"`
	Quantita   int `json:"quantita" binding:"required"`
}

// Show handles GET /api/carrello - the active shift's cart lines.
func (cc *CartController) Show(c *gin.Context) {
	respondData(c, http.StatusOK, cc.Carts.Items())
}

// AddItem handles POST /api/carrello/items - increments a product's
// quantity, adding the line when missing. Negative quantities decrement.
func (cc *CartController) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data")
		return
	}

	cc.Carts.AddOrIncrement(req.IDProdotto, req.Quantita)
	respondData(c, http.StatusOK, cc.Carts.Items())
}

// RemoveItem handles DELETE /api/carrello/items/:id - drops a product
// line from the active shift's cart.
func (cc *CartController) RemoveItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Product id must be an integer")
		return
	}

	cc.Carts.Remove(id)
	respondData(c, http.StatusOK, cc.Carts.Items())
}

// Clear handles DELETE /api/carrello - empties the active shift's cart,
// or every cart when ?all=true.
func (cc *CartController) Clear(c *gin.Context) {
	if c.Query("all") == "true" {
		cc.Carts.ClearAll()
	} else {
		cc.Carts.ClearActive()
	}
	respondData(c, http.StatusOK, cc.Carts.Items())
}

// Confirm handles POST /api/carrello/conferma - submits the active
// cart as a new order. An empty cart fails without contacting the
// ordering service.
func (cc *CartController) Confirm(c *gin.Context) {
	if len(cc.Carts.Items()) == 0 {
		respondError(c, http.StatusBadRequest, "EMPTY_CART", "cart is empty")
		return
	}

	message, ok := cc.Carts.Confirm()
	if !ok {
		respondError(c, http.StatusBadGateway, "CONFIRM_FAILED", message)
		return
	}
	respondData(c, http.StatusOK, gin.H{"message": message})
}

// Sync handles POST /api/carrello/sync - overwrites the local cart
// with the order already placed for the active shift, if any.
func (cc *CartController) Sync(c *gin.Context) {
	found := cc.Carts.SyncFromServer()
	respondData(c, http.StatusOK, gin.H{
		"found": found,
		"items": cc.Carts.Items(),
	})
}
