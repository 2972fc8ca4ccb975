package config

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
// Se construye una sola vez en main y se inyecta; ningún componente lee configuración global.
type Config struct {
	App  AppConfig
	HTTP HTTPConfig
	CRM  CRMConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// CRMConfig acceso a la API de RetailCRM. Los tres valores son obligatorios.
type CRMConfig struct {
	APIURL string // ej. https://demo.retailcrm.ru/api/v5
	APIKey string
	Site   string // código de la tienda (site) que se asigna a cada pedido
}

// Errores de configuración.
var (
	ErrMissingCRMURL  = errors.New("RETAILCRM_API_URL es obligatorio")
	ErrInvalidCRMURL  = errors.New("RETAILCRM_API_URL no es una URL absoluta")
	ErrMissingCRMKey  = errors.New("RETAILCRM_API_KEY es obligatorio")
	ErrMissingCRMSite = errors.New("RETAILCRM_SITE es obligatorio")
	ErrInvalidPort    = errors.New("HTTP_PORT fuera de rango")
)

// Load lee la configuración desde variables de entorno (y opcionalmente desde .env / config.env)
// y la valida. Las env vars tienen prioridad.
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

	cfg := FromViper(v)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuración inválida: %w", err)
	}
	return cfg, nil
}

// FromViper construye la configuración a partir de una instancia de Viper ya cargada.
func FromViper(v *viper.Viper) *Config {
	return &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "crm-gateway"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8000),
		},
		CRM: CRMConfig{
			APIURL: strings.TrimRight(getString(v, "RETAILCRM_API_URL", ""), "/"),
			APIKey: getString(v, "RETAILCRM_API_KEY", ""),
			Site:   getString(v, "RETAILCRM_SITE", ""),
		},
	}
}

// Validate comprueba los valores obligatorios. Devuelve todos los errores juntos.
func (c *Config) Validate() error {
	var errs []error
	if c.CRM.APIURL == "" {
		errs = append(errs, ErrMissingCRMURL)
	} else if u, err := url.Parse(c.CRM.APIURL); err != nil || !u.IsAbs() || u.Host == "" {
		errs = append(errs, ErrInvalidCRMURL)
	}
	if c.CRM.APIKey == "" {
		errs = append(errs, ErrMissingCRMKey)
	}
	if c.CRM.Site == "" {
		errs = append(errs, ErrMissingCRMSite)
	}
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		errs = append(errs, ErrInvalidPort)
	}
	return errors.Join(errs...)
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
				return 0
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
