package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/woodendoors/doorshowcase/cart"
	"github.com/woodendoors/doorshowcase/catalog"
	"github.com/woodendoors/doorshowcase/dto"
	"github.com/woodendoors/doorshowcase/pricing"
)

func GetCart(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, total := store.Snapshot()
		c.JSON(http.StatusOK, gin.H{
			"items": items,
			"count": len(items),
			"total": total,
		})
	}
}

func AddCartItem(products catalog.Products, options catalog.Options, engine *pricing.Engine, store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.CustomizationInputDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		sess, err := sessionFromInput(products, options, engine, body)
		if err != nil {
			respondCustomizeError(c, err)
			return
		}

		rec, err := sess.CommitToCart(store)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"item": rec, "count": store.Len()})
	}
}

// UpdateCartItem re-runs the configurator seeded from the line at
// :index and replaces that line on commit.
func UpdateCartItem(products catalog.Products, options catalog.Options, engine *pricing.Engine, store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		index, err := strconv.Atoi(c.Param("index"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cart index"})
			return
		}

		items, _ := store.Snapshot()
		if index < 0 || index >= len(items) {
			c.JSON(http.StatusNotFound, gin.H{"error": "cart index out of range"})
			return
		}

		var body dto.CustomizationInputDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		sess, err := sessionFromEdit(products, options, engine, items[index], index, body)
		if err != nil {
			respondCustomizeError(c, err)
			return
		}

		rec, err := sess.CommitToCart(store)
		if errors.Is(err, cart.ErrOutOfRange) {
			c.JSON(http.StatusNotFound, gin.H{"error": "cart index out of range"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"item": rec, "index": index})
	}
}

func RemoveCartItem(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		index, err := strconv.Atoi(c.Param("index"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cart index"})
			return
		}
		if err := store.RemoveAt(index); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "cart index out of range"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "count": store.Len()})
	}
}

func ClearCart(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		store.Clear()
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}
