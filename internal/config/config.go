package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	App        AppConfig
	JWT        JWTConfig
	Sheets     SheetsConfig
	Cloudinary CloudinaryConfig
	Storage    StorageConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret     string
	Expiration string
}

// SheetsConfig selects and configures the spreadsheet backend. Backend is
// "google" for the live Sheets API or "xlsx" for a local workbook file.
type SheetsConfig struct {
	Backend       string
	SpreadsheetID string
	XLSXPath      string

	ServiceAccountType  string
	ProjectID           string
	PrivateKeyID        string
	PrivateKey          string
	ClientEmail         string
	ClientID            string
	AuthURI             string
	TokenURI            string
	AuthProviderCertURL string
	ClientCertURL       string
	UniverseDomain      string
}

type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
}

// StorageConfig selects where attendance photos go: "cloudinary" or
// "local".
type StorageConfig struct {
	Type     string
	BasePath string
	BaseURL  string
}

func Load() (*Config, error) {
	// A missing .env is fine in deployments that inject real env vars.
	_ = godotenv.Load()

	config := &Config{}

	appPort := 0
	if portStr := getEnv("PORT", ""); portStr != "" {
		var err error
		appPort, err = strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %w", err)
		}
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	config.JWT = JWTConfig{
		Secret:     getEnv("JWT_SECRET", ""),
		Expiration: getEnv("JWT_EXPIRATION_TIME", "1h"),
	}

	config.Sheets = SheetsConfig{
		Backend:             getEnv("SHEETS_BACKEND", "google"),
		SpreadsheetID:       getEnv("SPREADSHEET_ID", ""),
		XLSXPath:            getEnv("XLSX_PATH", "attendance.xlsx"),
		ServiceAccountType:  getEnv("GOOGLE_TYPE", "service_account"),
		ProjectID:           getEnv("GOOGLE_PROJECT_ID", ""),
		PrivateKeyID:        getEnv("GOOGLE_PRIVATE_KEY_ID", ""),
		PrivateKey:          getEnv("GOOGLE_PRIVATE_KEY", ""),
		ClientEmail:         getEnv("GOOGLE_CLIENT_EMAIL", ""),
		ClientID:            getEnv("GOOGLE_CLIENT_ID", ""),
		AuthURI:             getEnv("GOOGLE_AUTH_URI", "https://accounts.google.com/o/oauth2/auth"),
		TokenURI:            getEnv("GOOGLE_TOKEN_URI", "https://oauth2.googleapis.com/token"),
		AuthProviderCertURL: getEnv("GOOGLE_AUTH_PROVIDER_X509_CERT_URL", "https://www.googleapis.com/oauth2/v1/certs"),
		ClientCertURL:       getEnv("GOOGLE_CLIENT_X509_CERT_URL", ""),
		UniverseDomain:      getEnv("GOOGLE_UNIVERSE_DOMAIN", "googleapis.com"),
	}

	config.Cloudinary = CloudinaryConfig{
		CloudName: getEnv("CLOUDINARY_CLOUD_NAME", ""),
		APIKey:    getEnv("CLOUDINARY_API_KEY", ""),
		APISecret: getEnv("CLOUDINARY_API_SECRET", ""),
	}

	config.Storage = StorageConfig{
		Type:     getEnv("STORAGE_TYPE", "cloudinary"),
		BasePath: getEnv("STORAGE_BASE_PATH", "./uploads"),
		BaseURL:  getEnv("STORAGE_BASE_URL", ""),
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// validate refuses to start with an incomplete environment rather than
// failing on the first request.
func (c *Config) validate() error {
	var missing []string

	if c.App.Port == 0 {
		missing = append(missing, "PORT")
	}
	if c.JWT.Secret == "" {
		missing = append(missing, "JWT_SECRET")
	}

	switch c.Sheets.Backend {
	case "google":
		if c.Sheets.SpreadsheetID == "" {
			missing = append(missing, "SPREADSHEET_ID")
		}
		// Every field of the assembled service-account JSON.
		if c.Sheets.ProjectID == "" {
			missing = append(missing, "GOOGLE_PROJECT_ID")
		}
		if c.Sheets.PrivateKeyID == "" {
			missing = append(missing, "GOOGLE_PRIVATE_KEY_ID")
		}
		if c.Sheets.PrivateKey == "" {
			missing = append(missing, "GOOGLE_PRIVATE_KEY")
		}
		if c.Sheets.ClientEmail == "" {
			missing = append(missing, "GOOGLE_CLIENT_EMAIL")
		}
		if c.Sheets.ClientID == "" {
			missing = append(missing, "GOOGLE_CLIENT_ID")
		}
		if c.Sheets.ClientCertURL == "" {
			missing = append(missing, "GOOGLE_CLIENT_X509_CERT_URL")
		}
	case "xlsx":
	default:
		return fmt.Errorf("unsupported SHEETS_BACKEND: %q", c.Sheets.Backend)
	}

	switch c.Storage.Type {
	case "cloudinary":
		if c.Cloudinary.CloudName == "" {
			missing = append(missing, "CLOUDINARY_CLOUD_NAME")
		}
		if c.Cloudinary.APIKey == "" {
			missing = append(missing, "CLOUDINARY_API_KEY")
		}
		if c.Cloudinary.APISecret == "" {
			missing = append(missing, "CLOUDINARY_API_SECRET")
		}
	case "local":
	default:
		return fmt.Errorf("unsupported STORAGE_TYPE: %q", c.Storage.Type)
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

// ServiceAccountJSON reassembles the Google service account credentials
// from the individual env vars. Private keys pasted into env files carry
// literal \n sequences, so those are folded back into newlines.
func (c *Config) ServiceAccountJSON() ([]byte, error) {
	key := strings.ReplaceAll(c.Sheets.PrivateKey, `\n`, "\n")

	return json.Marshal(map[string]string{
		"type":                        c.Sheets.ServiceAccountType,
		"project_id":                  c.Sheets.ProjectID,
		"private_key_id":              c.Sheets.PrivateKeyID,
		"private_key":                 key,
		"client_email":                c.Sheets.ClientEmail,
		"client_id":                   c.Sheets.ClientID,
		"auth_uri":                    c.Sheets.AuthURI,
		"token_uri":                   c.Sheets.TokenURI,
		"auth_provider_x509_cert_url": c.Sheets.AuthProviderCertURL,
		"client_x509_cert_url":        c.Sheets.ClientCertURL,
		"universe_domain":             c.Sheets.UniverseDomain,
	})
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
