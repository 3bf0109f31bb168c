package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	AllowedOrigin string

	// The external content API every request is proxied to, and the tenant
	// the data belongs to. Without these the public site renders empty and
	// admin mutations fail with a config error.
	APIBaseURL string
	WebsiteID  string

	// Media backend: "s3", "cloudinary" or empty (editor image uploads
	// disabled).
	MediaBackend  string
	S3Bucket      string
	S3Region      string
	CloudinaryURL string
	MediaFolder   string

	// Contact notification mail; optional.
	SMTPHost      string
	SMTPPort      string
	SMTPUser      string
	SMTPPassword  string
	SMTPFromName  string
	SMTPFromEmail string
	ContactNotify string
}

func Load() *Config {
	_ = godotenv.Load() // ignore error if .env not found (e.g. prod)

	return &Config{
		Port:          getEnv("PORT", "8080"),
		AllowedOrigin: getEnv("ALLOWED_ORIGIN", "http://localhost:3000"),
		APIBaseURL:    getEnv("API_BASE_URL", ""),
		WebsiteID:     getEnv("WEBSITE_ID", ""),
		MediaBackend:  getEnv("MEDIA_BACKEND", ""),
		S3Bucket:      getEnv("S3_BUCKET_NAME", ""),
		S3Region:      getEnv("S3_REGION", "eu-central-1"),
		CloudinaryURL: getEnv("CLOUDINARY_URL", ""),
		MediaFolder:   getEnv("MEDIA_FOLDER", "clinic"),
		SMTPHost:      getEnv("SMTP_HOST", ""),
		SMTPPort:      getEnv("SMTP_PORT", "587"),
		SMTPUser:      getEnv("SMTP_USER", ""),
		SMTPPassword:  getEnv("SMTP_PASSWORD", ""),
		SMTPFromName:  getEnv("SMTP_FROM_NAME", "Clinic Website"),
		SMTPFromEmail: getEnv("SMTP_FROM_EMAIL", ""),
		ContactNotify: getEnv("CONTACT_NOTIFY_EMAIL", ""),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
