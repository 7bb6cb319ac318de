package config

import "os"

// Config carries every setting the app reads from the environment. It is
// loaded once in main and handed to the components that need it, so nothing
// reaches for os.Getenv at request time.
type Config struct {
	Port        string
	DatabaseURL string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	JWTSecret string

	RazorpayKeyID     string
	RazorpayKeySecret string
	RazorpayAPIURL    string

	// PaymentTestMode bypasses the real gateway. Forced on when no key is
	// configured so local setups work out of the box.
	PaymentTestMode bool
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func Load() Config {
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getEnv("DB_NAME", "zivara"),

		JWTSecret: getEnv("JWT_SECRET", "supersecret"),

		RazorpayKeyID:     os.Getenv("RAZORPAY_KEY_ID"),
		RazorpayKeySecret: os.Getenv("RAZORPAY_KEY_SECRET"),
		RazorpayAPIURL:    getEnv("RAZORPAY_API_URL", "https://api.razorpay.com/v1"),
	}

	cfg.PaymentTestMode = cfg.RazorpayKeyID == "" || os.Getenv("TEST_MODE") == "true"

	return cfg
}
