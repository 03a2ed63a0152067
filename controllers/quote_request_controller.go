package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/woodendoors/doorshowcase/catalog"
	"github.com/woodendoors/doorshowcase/dto"
	"github.com/woodendoors/doorshowcase/models"
	"github.com/woodendoors/doorshowcase/pricing"
	"github.com/woodendoors/doorshowcase/quote"
)

const submissionFailedMsg = "Failed to send your request. Please try again."

// CreateQuoteRequest handles the single-item path: the customization
// goes straight to the sink and the cart is never touched.
func CreateQuoteRequest(products catalog.Products, options catalog.Options, engine *pricing.Engine, svc *quote.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.CreateQuoteRequestDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		sess, err := sessionFromInput(products, options, engine, body.Customization)
		if err != nil {
			respondCustomizeError(c, err)
			return
		}
		rec, err := sess.CommitToQuote()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		contact := models.QuoteContact{
			FullName: body.FullName,
			Email:    body.Email,
			Phone:    body.Phone,
			Message:  body.Message,
		}
		receipt, err := svc.SubmitSingle(c.Request.Context(), contact, rec)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": submissionFailedMsg})
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"receipt": receipt,
			"quote":   quote.Build([]models.ProductCustomization{rec}),
		})
	}
}

// CreateCartQuoteRequest handles the whole-cart path; the cart is
// cleared once the sink reports success.
func CreateCartQuoteRequest(svc *quote.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.CreateCartQuoteDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		contact := models.QuoteContact{
			FullName: body.FullName,
			Email:    body.Email,
			Phone:    body.Phone,
			Message:  body.Message,
		}
		receipt, err := svc.SubmitCart(c.Request.Context(), contact)
		if errors.Is(err, quote.ErrEmptyCart) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
			return
		}
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": submissionFailedMsg})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"receipt": receipt})
	}
}
