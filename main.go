package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/woodendoors/doorshowcase/cart"
	"github.com/woodendoors/doorshowcase/catalog"
	"github.com/woodendoors/doorshowcase/controllers"
	"github.com/woodendoors/doorshowcase/database"
	"github.com/woodendoors/doorshowcase/discount"
	"github.com/woodendoors/doorshowcase/pricing"
	"github.com/woodendoors/doorshowcase/quote"
	"github.com/woodendoors/doorshowcase/storage"
	"github.com/woodendoors/doorshowcase/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Error loading .env file")
	}

	products := catalog.DefaultProducts()
	options := catalog.DefaultOptions()
	engine := pricing.NewEngine(options, utils.StrictPricing())

	kv := openKV()
	cartStore := cart.NewStore(kv)

	sink := &quote.SimulatedSink{
		Delay:     utils.SubmitDelay(),
		OutboxDir: utils.QuoteOutboxDir(),
	}
	quotes := quote.NewService(sink, cartStore)

	banner := discount.NewBanner(utils.CurrentDiscount(), utils.CountdownInterval())
	banner.Start()
	defer banner.Stop()

	r := gin.New()

	origins := os.Getenv("ALLOWED_ORIGINS")
	allowedOrigins := map[string]bool{}
	for _, origin := range utils.SplitCSV(origins) {
		allowedOrigins[origin] = true
	}
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return allowedOrigins[origin]
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	r.GET("/products", controllers.GetProducts(products))
	r.GET("/products/:id", controllers.GetProduct(products))
	r.GET("/options", controllers.GetOptions(options))
	r.POST("/price", controllers.ComputePrice(products, options, engine))

	r.GET("/cart", controllers.GetCart(cartStore))
	r.POST("/cart/items", controllers.AddCartItem(products, options, engine, cartStore))
	r.PUT("/cart/items/:index", controllers.UpdateCartItem(products, options, engine, cartStore))
	r.DELETE("/cart/items/:index", controllers.RemoveCartItem(cartStore))
	r.DELETE("/cart", controllers.ClearCart(cartStore))

	r.POST("/quote-requests", controllers.CreateQuoteRequest(products, options, engine, quotes))
	r.POST("/quote-requests/cart", controllers.CreateCartQuoteRequest(quotes))

	r.GET("/discount", controllers.GetDiscount(banner))

	// Start server on port 8080 (default)
	r.Run()
}

func openKV() storage.KV {
	switch driver := utils.StorageDriver(); driver {
	case "mongo":
		return storage.NewMongoStore(database.OpenCollection("storefront_kv"))
	case "file":
		kv, err := storage.NewFileStore(utils.CartStorageFile())
		if err != nil {
			log.Fatal("open cart storage: ", err)
		}
		return kv
	default:
		log.Fatalf("unknown STORAGE_DRIVER %q", driver)
		return nil
	}
}
