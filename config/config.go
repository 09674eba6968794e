package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	// AppTitle is shown in the browser tab and the page header.
	AppTitle = "Car Price Analytics"

	TailwindCSSURL = "https://cdn.jsdelivr.net/npm/tailwindcss@2.2.19/dist/tailwind.min.css"
	HTMXURL        = "https://unpkg.com/htmx.org@1.9.10"

	// Chart canvas size in pixels (8x5 inches at 100 dpi).
	ChartWidth  = 800
	ChartHeight = 500

	// ChartMaxWidth caps the w= query parameter on chart endpoints.
	ChartMaxWidth = 1600

	ChartWebPQuality float32 = 80

	// HistogramMaxBins bounds the price histogram. Past it the bin width
	// falls back to the Sturges rule.
	HistogramMaxBins = 1000

	// RawTableMaxRows caps the rows rendered in the raw data table; the CSV
	// export always has every row.
	RawTableMaxRows = 1000
)

// Settings that may be overridden from the environment. Defaults apply when
// the variable is unset or malformed.
var (
	// DataPath is the fixed location of the cleaned listings dataset.
	DataPath = "data/processed/cleaned_cars.csv"

	// DataTable is the table read when DataPath points at a sqlite database.
	DataTable = "listings"

	ServerAddr         = ":8080"
	ServerReadTimeout  = 30 * time.Second
	ServerWriteTimeout = 30 * time.Second
	ServerRateLimitMax = 120
	ServerRateLimitExp = 1 * time.Minute

	ChartCacheTTL = 1 * time.Hour
)

// Init loads an optional .env file and applies environment overrides.
func Init() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[config] Failed to load .env: %v", err)
	}

	DataPath = getEnv("DATA_PATH", DataPath)
	DataTable = getEnv("DATA_TABLE", DataTable)
	if port := os.Getenv("PORT"); port != "" {
		ServerAddr = ":" + port
	}
	ServerRateLimitMax = getEnvInt("RATE_LIMIT_MAX", ServerRateLimitMax)
	ChartCacheTTL = getEnvDuration("CHART_CACHE_TTL", ChartCacheTTL)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[config] Ignoring %s=%q: %v", key, v, err)
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("[config] Ignoring %s=%q: %v", key, v, err)
		return fallback
	}
	return d
}
