package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/woodendoors/doorshowcase/catalog"
	"github.com/woodendoors/doorshowcase/dto"
	"github.com/woodendoors/doorshowcase/listing"
	"github.com/woodendoors/doorshowcase/models"
	"github.com/woodendoors/doorshowcase/pricing"
	"github.com/woodendoors/doorshowcase/utils"
)

func GetProducts(products catalog.Products) gin.HandlerFunc {
	return func(c *gin.Context) {
		search := strings.TrimSpace(c.Query("q"))
		category := strings.TrimSpace(c.Query("category"))
		sortOpt := listing.ParseSortOption(strings.TrimSpace(c.Query("sort")))

		minQ, err := utils.ParseFloatQuery(c.Query("minPrice"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid minPrice"})
			return
		}
		maxQ, err := utils.ParseFloatQuery(c.Query("maxPrice"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid maxPrice"})
			return
		}
		featured, err := utils.ParseBoolQuery(c.Query("featured"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid featured"})
			return
		}

		var presets []listing.Preset
		for _, raw := range utils.SplitCSV(c.Query("presets")) {
			p, ok := listing.ParsePreset(raw)
			if !ok {
				c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown preset %q", raw)})
				return
			}
			presets = append(presets, p)
		}

		all := products.List()
		spanMin, spanMax := listing.PriceSpan(all)
		min, max := listing.ResolveBounds(minQ, maxQ, presets, spanMin, spanMax)

		view := listing.Apply(all, listing.Query{
			Search:   search,
			MinPrice: min,
			MaxPrice: max,
			Sort:     sortOpt,
			Category: category,
			Featured: featured,
		})

		c.JSON(http.StatusOK, gin.H{
			"items":      view.Items,
			"total":      len(view.Items),
			"categories": view.Categories,
			"minPrice":   view.MinPrice,
			"maxPrice":   view.MaxPrice,
			"span":       gin.H{"min": view.SpanMin, "max": view.SpanMax},
			// helpful for debugging on frontend:
			"sort":     sortOpt,
			"category": category,
			"ts":       time.Now().UTC().Format(time.RFC3339),
		})
	}
}

func GetProduct(products catalog.Products) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := products.ByID(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

func GetOptions(options catalog.Options) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"material": options.List(models.OptionMaterial),
			"finish":   options.List(models.OptionFinish),
			"glass":    options.List(models.OptionGlass),
		})
	}
}

// ComputePrice exposes the pricing engine: it runs the selection through
// a throwaway configurator session and returns the derived total.
func ComputePrice(products catalog.Products, options catalog.Options, engine *pricing.Engine) gin.HandlerFunc {
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

		c.JSON(http.StatusOK, gin.H{
			"productId":  body.ProductID,
			"totalPrice": sess.TotalPrice(),
		})
	}
}

func respondCustomizeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
	case errors.Is(err, pricing.ErrUnknownOption):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}
