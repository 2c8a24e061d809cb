package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	DB      DBConfig
	JWT     JWTConfig
	Log     LogConfig
	Seed    SeedConfig
	Quotes  QuotesConfig
	Latency LatencyConfig
	AI      AIConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env     string // development, staging, production
	Name    string
	BaseURL string // URL pública del sitio, usada en sitemap.xml
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host           string
	Port           int
	RequestTimeout time.Duration // plazo del contexto de cada petición
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DBConfig configuración de PostgreSQL. Solo se usa para el slot persistente de sesión;
// si DatabaseURL está vacío la sesión se guarda en memoria.
type DBConfig struct {
	DatabaseURL string
}

// Enabled indica si hay una base de datos configurada.
func (c DBConfig) Enabled() bool {
	return c.DatabaseURL != ""
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// LogConfig nivel del logger.
type LogConfig struct {
	Level string
}

// SeedConfig datos iniciales: cuenta administradora, catálogo y semilla del inventario aleatorio.
type SeedConfig struct {
	AdminEmail    string
	AdminPassword string
	AdminName     string
	CatalogPath   string // vacío = catálogo embebido
	InventorySeed int64  // 0 = semilla basada en la hora de arranque
}

// QuotesConfig parámetros de cotizaciones.
type QuotesConfig struct {
	ValidUntilDays int
	ExpiryCron     string
}

// LatencyConfig demoras simuladas de las operaciones asíncronas (login y solicitud de cotización).
type LatencyConfig struct {
	Login        time.Duration
	QuoteRequest time.Duration
}

// AIConfig credenciales del asistente de materiales.
type AIConfig struct {
	AnthropicAPIKey string
	AnthropicModel  string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, JWT_SECRET, etc.
func Load() (*Config, error) {
	// .env opcional; si no existe se usa solo el entorno
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:     getString(v, "APP_ENV", "development"),
			Name:    getString(v, "APP_NAME", "newtop-api"),
			BaseURL: strings.TrimRight(getString(v, "APP_BASE_URL", "http://localhost:8080"), "/"),
		},
		HTTP: HTTPConfig{
			Host:           getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:           getInt(v, "HTTP_PORT", 8080),
			RequestTimeout: getDuration(v, "HTTP_REQUEST_TIMEOUT", 8*time.Second),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 480),
			Issuer:     getString(v, "JWT_ISSUER", "newtop-api"),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
		Seed: SeedConfig{
			AdminEmail:    getString(v, "SEED_ADMIN_EMAIL", "admin@newtop.com"),
			AdminPassword: getString(v, "SEED_ADMIN_PASSWORD", "admin123"),
			AdminName:     getString(v, "SEED_ADMIN_NAME", "Vendedor"),
			CatalogPath:   getString(v, "CATALOG_PATH", ""),
			InventorySeed: int64(getInt(v, "INVENTORY_SEED", 0)),
		},
		Quotes: QuotesConfig{
			ValidUntilDays: getInt(v, "QUOTE_VALID_UNTIL_DAYS", 30),
			ExpiryCron:     getString(v, "QUOTE_EXPIRY_CRON", "0 3 * * *"),
		},
		Latency: LatencyConfig{
			Login:        getDuration(v, "LOGIN_LATENCY", 500*time.Millisecond),
			QuoteRequest: getDuration(v, "QUOTE_REQUEST_LATENCY", 1500*time.Millisecond),
		},
		AI: AIConfig{
			AnthropicAPIKey: getString(v, "ANTHROPIC_API_KEY", ""),
			AnthropicModel:  getString(v, "ANTHROPIC_MODEL", "claude-3-5-haiku-20241022"),
		},
	}

	if cfg.JWT.Secret == "" {
		if cfg.App.Env == "production" {
			return nil, fmt.Errorf("JWT_SECRET es obligatorio en producción")
		}
		cfg.JWT.Secret = "dev-secret-no-usar-en-produccion"
	}
	if cfg.Quotes.ValidUntilDays <= 0 {
		cfg.Quotes.ValidUntilDays = 30
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

// getDuration acepta "1500ms", "2s" o un entero en milisegundos.
func getDuration(v *viper.Viper, key string, def time.Duration) time.Duration {
	if !v.IsSet(key) {
		return def
	}
	raw := strings.TrimSpace(v.GetString(key))
	if ms, err := strconv.Atoi(raw); err == nil {
		return time.Duration(ms) * time.Millisecond
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return def
	}
	return d
}
