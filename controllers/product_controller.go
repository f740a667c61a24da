package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/figliolo/bar-client/stores"
)

// ProductController exposes the product catalog to the local UI.
type ProductController struct {
	Products *stores.ProductsStore
}

// List handles GET /api/prodotti - the catalog plus the aggregated
// ingredient and tag sets the filter UI needs. Pass ?refresh=true to
// refetch from the ordering service.
func (pc *ProductController) List(c *gin.Context) {
	if c.Query("refresh") == "true" || len(pc.Products.Products()) == 0 {
		if !pc.Products.Fetch() {
			respondError(c, http.StatusBadGateway, "UPSTREAM_ERROR", pc.Products.Error())
			return
		}
	}

	respondData(c, http.StatusOK, gin.H{
		"products":    pc.Products.Products(),
		"ingredients": pc.Products.AllIngredients(),
		"tags":        pc.Products.AllTags(),
	})
}

// Get handles GET /api/prodotti/:id - a single product.
func (pc *ProductController) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Product id must be an integer")
		return
	}

	product := pc.Products.GetByID(id)
	if product == nil {
		respondError(c, http.StatusNotFound, "PRODUCT_NOT_FOUND", "No product with that id")
		return
	}
	respondData(c, http.StatusOK, product)
}
