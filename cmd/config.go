package cmd

import "time"

// Config carries every runtime setting of the ordering service. Values are
// read from the environment in cmd/app.
type Config struct {
	HTTPPort          string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSslMode         string
	StaleOrderTTL     time.Duration
	LowStockThreshold int
}
