// Package config builds the process-wide configuration once at startup.
//
// Business logic never reads ambient environment state; everything it needs
// arrives through this struct, constructed in routes.Run and passed into
// the component constructors.
package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port int

	AWS      *AWSConfig
	Tables   *TablesConfig
	Mail     *MailConfig
	Admin    *AdminConfig
	Payments *PaymentsConfig

	// FollowUpAfter is the age threshold for the pending-payment
	// follow-up scan.
	FollowUpAfter time.Duration
}

type AWSConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	// DynamoDBEndpoint overrides the endpoint for local DynamoDB
	// (e.g. http://dynamodb:8000). Empty means the real service.
	DynamoDBEndpoint string
}

type TablesConfig struct {
	Submissions     string
	Bookings        string
	BookingPayments string
}

type MailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	// NotifyTo is the studio inbox that receives lead notifications.
	NotifyTo string
}

func (m *MailConfig) Configured() bool {
	return m.Host != "" && m.From != "" && m.NotifyTo != ""
}

type AdminConfig struct {
	// Token authenticates "Authorization: Bearer <token>" requests.
	Token string
	// Username/Password authenticate HTTP Basic requests.
	Username string
	Password string
}

type PaymentsConfig struct {
	AccessToken string
	// MockMode skips the external payment provider; local dev only.
	MockMode bool
}

func Load() *Config {
	return &Config{
		Port: getenvInt("PORT", 8080),
		AWS: &AWSConfig{
			Region:           getenvDefault("AWS_REGION", "us-east-1"),
			AccessKeyID:      getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey:  getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
			DynamoDBEndpoint: os.Getenv("DYNAMODB_ENDPOINT"),
		},
		Tables: &TablesConfig{
			Submissions:     getenvDefault("SUBMISSIONS_TABLE", "submissions"),
			Bookings:        getenvDefault("BOOKINGS_TABLE", "bookings"),
			BookingPayments: getenvDefault("BOOKING_PAYMENTS_TABLE", "booking_payments"),
		},
		Mail: &MailConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     getenvInt("SMTP_PORT", 587),
			Username: os.Getenv("SMTP_USERNAME"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     os.Getenv("MAIL_FROM"),
			NotifyTo: os.Getenv("MAIL_NOTIFY_TO"),
		},
		Admin: &AdminConfig{
			Token:    os.Getenv("ADMIN_API_TOKEN"),
			Username: os.Getenv("ADMIN_USERNAME"),
			Password: os.Getenv("ADMIN_PASSWORD"),
		},
		Payments: &PaymentsConfig{
			AccessToken: os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
			MockMode:    getenvBool("PAYMENT_GATEWAY_MOCK"),
		},
		FollowUpAfter: getenvDuration("FOLLOW_UP_AFTER", 72*time.Hour),
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

func getenvBool(key string) bool {
	switch os.Getenv(key) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func getenvDuration(key string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}
