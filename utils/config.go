package utils

import (
	"os"
	"strconv"
	"time"

	"github.com/woodendoors/doorshowcase/models"
)

// Env-driven tunables, all with code defaults so a bare environment
// still runs.

func StorageDriver() string {
	if v := os.Getenv("STORAGE_DRIVER"); v != "" {
		return v
	}
	return "file"
}

func CartStorageFile() string {
	if v := os.Getenv("CART_STORAGE_FILE"); v != "" {
		return v
	}
	return "data/storefront.json"
}

func StrictPricing() bool {
	return os.Getenv("STRICT_PRICING") == "true"
}

func SubmitDelay() time.Duration {
	ms, _ := strconv.Atoi(os.Getenv("SUBMIT_DELAY_MS"))
	if ms <= 0 {
		ms = 1500
	}
	return time.Duration(ms) * time.Millisecond
}

func QuoteOutboxDir() string {
	if v := os.Getenv("QUOTE_OUTBOX_DIR"); v != "" {
		return v
	}
	return "outbox"
}

func CountdownInterval() time.Duration {
	ms, _ := strconv.Atoi(os.Getenv("COUNTDOWN_INTERVAL_MS"))
	if ms <= 0 {
		ms = 1000
	}
	return time.Duration(ms) * time.Millisecond
}

// CurrentDiscount builds the banner from env, defaulting to the running
// summer promotion expiring a week out.
func CurrentDiscount() models.Discount {
	d := models.Discount{
		Title:       "Summer Sale! 15% OFF All Doors",
		Description: "Use code SUMMER15 at checkout or request a quote",
		Code:        "SUMMER15",
	}
	if v := os.Getenv("DISCOUNT_TITLE"); v != "" {
		d.Title = v
	}
	if v := os.Getenv("DISCOUNT_DESCRIPTION"); v != "" {
		d.Description = v
	}
	if v := os.Getenv("DISCOUNT_CODE"); v != "" {
		d.Code = v
	}

	days := ParseIntDefault(os.Getenv("DISCOUNT_EXPIRY_DAYS"), 7)
	expiry := time.Now().Add(time.Duration(days) * 24 * time.Hour)
	d.ExpiryDate = &expiry
	return d
}
