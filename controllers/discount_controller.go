package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/woodendoors/doorshowcase/discount"
)

func GetDiscount(banner *discount.Banner) gin.HandlerFunc {
	return func(c *gin.Context) {
		d, countdown := banner.Snapshot()
		c.JSON(http.StatusOK, gin.H{
			"discount":  d,
			"countdown": countdown,
		})
	}
}
