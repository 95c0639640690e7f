package config

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	JWT     JWTConfig
	Storage StorageConfig
	Sync    SyncConfig
	DB      DBConfig
	Export  ExportConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	Timezone string // zona horaria con la que se calcula "hoy" (pedidos pasados)
	LogLevel string
}

// Location devuelve la zona horaria configurada; UTC si el nombre no es válido.
func (c AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// HTTPConfig configuración del servidor HTTP local.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// JWTConfig configuración de JWT para la sesión.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// StorageConfig rutas del almacenamiento local y de los recursos estáticos.
// CatalogPath y UsersPath vacíos implican usar el catálogo/directorio embebido.
type StorageConfig struct {
	DataDir     string
	CatalogPath string
	UsersPath   string
}

// OrdersFile ruta del slot con la colección de pedidos.
func (c StorageConfig) OrdersFile() string { return filepath.Join(c.DataDir, "orders.json") }

// SessionFile ruta del slot con el usuario de la sesión actual.
func (c StorageConfig) SessionFile() string { return filepath.Join(c.DataDir, "session.json") }

// SyncConfig espejo remoto opcional.
type SyncConfig struct {
	Enabled        bool
	ConnectTimeout time.Duration
	PushTimeout    time.Duration
}

// ExportConfig opciones de los archivos exportados.
// PDFFontPath es una fuente TTF con glifos coreanos; sin ella el PDF usa la fuente base.
type ExportConfig struct {
	PDFFontPath string
}

// DBConfig configuración de PostgreSQL (espejo remoto).
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, DATA_DIR, SYNC_ENABLED, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "order-desk"),
			Timezone: getString(v, "APP_TIMEZONE", "Asia/Seoul"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "127.0.0.1"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", "order-desk-local"),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 12*60),
			Issuer:     getString(v, "JWT_ISSUER", "order-desk"),
		},
		Storage: StorageConfig{
			DataDir:     getString(v, "DATA_DIR", "./data"),
			CatalogPath: getString(v, "CATALOG_PATH", ""),
			UsersPath:   getString(v, "USERS_PATH", ""),
		},
		Sync: SyncConfig{
			Enabled:        getBool(v, "SYNC_ENABLED", false),
			ConnectTimeout: time.Duration(getInt(v, "SYNC_CONNECT_TIMEOUT_SECONDS", 5)) * time.Second,
			PushTimeout:    time.Duration(getInt(v, "SYNC_PUSH_TIMEOUT_SECONDS", 5)) * time.Second,
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "order_desk"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		Export: ExportConfig{
			PDFFontPath: getString(v, "EXPORT_PDF_FONT", ""),
		},
	}
	if cfg.Storage.DataDir == "" {
		return nil, fmt.Errorf("config: DATA_DIR vacío")
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

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}
