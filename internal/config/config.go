package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config is populated once at startup; every component receives the values
// it needs through its constructor rather than reading the environment ad hoc.
type Config struct {
	Port string

	// Payment processor credentials. KeySecret doubles as the HMAC key for
	// payment verification, matching the processor's signing scheme.
	RazorpayKeyID     string
	RazorpayKeySecret string

	// Mail transport.
	SMTPHost  string
	SMTPPort  int
	MailUser  string
	MailPass  string
	MailFrom  string
	ContactTo string

	// Shipping carrier credentials (token auth only).
	ShippingEmail    string
	ShippingPassword string

	AllowedOrigins []string

	// Optional infrastructure.
	RedisURL     string
	KafkaBrokers string
}

func Load() *Config {
	smtpPort := 587
	if v := os.Getenv("SMTP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			smtpPort = p
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	mailUser := os.Getenv("EMAIL_USER")
	mailFrom := os.Getenv("EMAIL_FROM")
	if mailFrom == "" {
		mailFrom = mailUser
	}
	contactTo := os.Getenv("CONTACT_RECIPIENT")
	if contactTo == "" {
		contactTo = mailUser
	}

	origins := []string{
		"https://velmora.in",
		"https://www.velmora.in",
		"http://localhost:5173",
	}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		origins = origins[:0]
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	return &Config{
		Port:              port,
		RazorpayKeyID:     os.Getenv("RAZORPAY_KEY_ID"),
		RazorpayKeySecret: os.Getenv("RAZORPAY_KEY_SECRET"),
		SMTPHost:          getenv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:          smtpPort,
		MailUser:          mailUser,
		MailPass:          os.Getenv("EMAIL_PASS"),
		MailFrom:          mailFrom,
		ContactTo:         contactTo,
		ShippingEmail:     os.Getenv("SHIPROCKET_EMAIL"),
		ShippingPassword:  os.Getenv("SHIPROCKET_PASSWORD"),
		AllowedOrigins:    origins,
		RedisURL:          os.Getenv("REDIS_URL"),
		KafkaBrokers:      os.Getenv("KAFKA_BROKERS"),
	}
}

// Validate enforces the values every request path depends on. Mail and
// shipping credentials are checked by the paths that exercise them instead,
// so a deployment without those integrations still starts.
func (c *Config) Validate() error {
	if c.RazorpayKeyID == "" || c.RazorpayKeySecret == "" {
		return fmt.Errorf("RAZORPAY_KEY_ID and RAZORPAY_KEY_SECRET are required")
	}
	return nil
}

// MailConfigured reports whether the SMTP transport has usable credentials.
func (c *Config) MailConfigured() bool {
	return c.MailUser != "" && c.MailPass != ""
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
