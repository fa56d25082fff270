package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

// Config holds application configuration. Loan terms are fixed at process
// start and are not runtime-configurable.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// Loan terms
	InterestRate     decimal.Decimal
	LoanDurationDays int

	// Operator auth
	JWTSecret            string
	JWTExpiryDuration    time.Duration
	JWTIssuer            string
	OperatorMobile       string
	OperatorPasswordHash []byte

	// HTTP
	CORSAllowedOrigins []string
	LoginRateLimit     string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("INTEREST_RATE", "0.05")
	viper.SetDefault("LOAN_DURATION_DAYS", 30)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "12h")
	viper.SetDefault("JWT_ISSUER", "loanledger-backend")
	viper.SetDefault("OPERATOR_MOBILE", "")
	viper.SetDefault("OPERATOR_PASSWORD", "")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("LOGIN_RATE_LIMIT", "10-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	rateStr := viper.GetString("INTEREST_RATE")
	rate, err := decimal.NewFromString(rateStr)
	if err != nil {
		rate = decimal.RequireFromString("0.05")
		log.Printf("Warning: Invalid value for INTEREST_RATE ('%s'). Defaulting to %s.\n", rateStr, rate)
	}
	cfg.InterestRate = rate

	cfg.LoanDurationDays = viper.GetInt("LOAN_DURATION_DAYS")
	if cfg.LoanDurationDays <= 0 {
		cfg.LoanDurationDays = 30
		log.Printf("Warning: Invalid value for LOAN_DURATION_DAYS. Defaulting to %d.\n", cfg.LoanDurationDays)
	}

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = 12 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration)
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.OperatorMobile = viper.GetString("OPERATOR_MOBILE")
	operatorPassword := viper.GetString("OPERATOR_PASSWORD")
	if cfg.OperatorMobile == "" || operatorPassword == "" {
		log.Println("Warning: OPERATOR_MOBILE or OPERATOR_PASSWORD not set. Login will not function.")
	}
	if operatorPassword != "" {
		// Hash once at startup; only the hash is kept in memory.
		hash, err := bcrypt.GenerateFromPassword([]byte(operatorPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		cfg.OperatorPasswordHash = hash
	}

	cfg.CORSAllowedOrigins = strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",")
	cfg.LoginRateLimit = viper.GetString("LOGIN_RATE_LIMIT")

	return cfg, nil
}
