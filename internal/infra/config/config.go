// backend/internal/infra/config/config.go
package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all environment-driven settings for the API service.
type Config struct {
	Port string

	// GCP / Firestore
	ProjectID       string
	CredentialsFile string

	// Postgres (catalog tables: product variants, stock items)
	PostgresDSN string

	// Object storage
	PhotoBucket   string // private, customer uploads, signed URLs only
	CatalogBucket string // public read, product/catalog images
	SignerEmail   string // service account used for V4 SignBlob signing

	// Mail
	SendGridAPIKey     string // direct key (local dev)
	SendGridSecretName string // Secret Manager secret id (production)
	MailFrom           string
	MailInternalTo     string
}

// Load reads the environment into a Config.
// A .env file is loaded best-effort first so local dev works without exporting
// everything by hand.
func Load() *Config {
	if err := godotenv.Load(); err == nil {
		log.Printf("[config] loaded .env")
	}

	cfg := &Config{
		Port:      getenvDefault("PORT", "8080"),
		ProjectID: firstNonEmpty(os.Getenv("GCP_PROJECT_ID"), os.Getenv("GOOGLE_CLOUD_PROJECT")),

		CredentialsFile: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),

		PostgresDSN: os.Getenv("POSTGRES_DSN"),

		PhotoBucket:   os.Getenv("PHOTO_BUCKET"),
		CatalogBucket: os.Getenv("CATALOG_BUCKET"),
		SignerEmail:   firstNonEmpty(os.Getenv("GCS_SIGNER_EMAIL"), os.Getenv("SERVICE_ACCOUNT_EMAIL")),

		SendGridAPIKey:     os.Getenv("SENDGRID_API_KEY"),
		SendGridSecretName: os.Getenv("SENDGRID_SECRET_NAME"),
		MailFrom:           getenvDefault("MAIL_FROM", "offerte@fenestra.nl"),
		MailInternalTo:     getenvDefault("MAIL_INTERNAL_TO", "verkoop@fenestra.nl"),
	}

	return cfg
}

// Validate reports missing required settings.
func (c *Config) Validate() []string {
	var missing []string
	if strings.TrimSpace(c.ProjectID) == "" {
		missing = append(missing, "GCP_PROJECT_ID")
	}
	if strings.TrimSpace(c.PostgresDSN) == "" {
		missing = append(missing, "POSTGRES_DSN")
	}
	if strings.TrimSpace(c.PhotoBucket) == "" {
		missing = append(missing, "PHOTO_BUCKET")
	}
	if strings.TrimSpace(c.CatalogBucket) == "" {
		missing = append(missing, "CATALOG_BUCKET")
	}
	return missing
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
