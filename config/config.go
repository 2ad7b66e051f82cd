package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
// Credentials live here and are handed to collaborators at construction time;
// nothing reads the environment after Load returns.
type Config struct {
	// Naver shopping Open API
	NaverClientID     string
	NaverClientSecret string

	// Naver SearchAd API (keyword statistics)
	SearchAdAPIKey     string
	SearchAdSecret     string
	SearchAdCustomerID string

	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string

	SheetID        string
	SheetCredsPath string
	SheetName      string

	MaxConcurrency     int
	RateLimitMs        int
	MaxRetries         int
	ListingsPerKeyword int

	OwnerStoreName string
	BigMalls       []string

	CSVOutputPath string
	ListenAddr    string
	ChromeBin     string
}

// defaultBigMalls are the storefront names treated as large-marketplace
// channels, exempt from abuse scrutiny. Overridable via BIG_MALLS.
var defaultBigMalls = []string{
	"쿠팡", "11번가", "G마켓", "옥션", "롯데온", "SSG", "위메프", "티몬", "인터파크",
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		NaverClientID:     getEnv("NAVER_CLIENT_ID", ""),
		NaverClientSecret: getEnv("NAVER_CLIENT_SECRET", ""),

		SearchAdAPIKey:     getEnv("SEARCHAD_API_KEY", ""),
		SearchAdSecret:     getEnv("SEARCHAD_SECRET", ""),
		SearchAdCustomerID: getEnv("SEARCHAD_CUSTOMER_ID", ""),

		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "analyzer"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "analyzer123"),
		PostgresDB:       getEnv("POSTGRES_DB", "keyword_db"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),

		SheetID:        getEnv("SHEET_ID", ""),
		SheetCredsPath: getEnv("SHEET_CREDENTIALS_PATH", ""),
		SheetName:      getEnv("SHEET_NAME", "분석결과"),

		MaxConcurrency:     getEnvInt("MAX_CONCURRENCY", 3),
		RateLimitMs:        getEnvInt("RATE_LIMIT_MS", 500),
		MaxRetries:         getEnvInt("MAX_RETRIES", 3),
		ListingsPerKeyword: getEnvInt("LISTINGS_PER_KEYWORD", 20),

		OwnerStoreName: getEnv("OWNER_STORE_NAME", ""),
		BigMalls:       getEnvList("BIG_MALLS", defaultBigMalls),

		CSVOutputPath: getEnv("CSV_OUTPUT_PATH", "./output/report.csv"),
		ListenAddr:    getEnv("LISTEN_ADDR", ":8080"),
		ChromeBin:     getEnv("CHROME_BIN", ""),
	}
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return "host=" + c.PostgresHost +
		" port=" + c.PostgresPort +
		" user=" + c.PostgresUser +
		" password=" + c.PostgresPassword +
		" dbname=" + c.PostgresDB +
		" sslmode=" + c.PostgresSSLMode
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parts := strings.Split(val, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
