package config

import (
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	API     APIConfig
	Consola ConsolaConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// APIConfig configuración del cliente hacia la API Suite360.
type APIConfig struct {
	BaseURL string // ej. https://api360suite.pqautoexpert.ec/api
	Timeout time.Duration
}

// ConsolaConfig credenciales para la consola de verificación (cmd/movil).
// En el teléfono las credenciales las digita el usuario; aquí vienen del entorno.
type ConsolaConfig struct {
	Usuario  string
	Password string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, API_BASE_URL, API_TIMEOUT_SECONDS, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// También intenta config.env
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// Bind de variables de entorno (Viper las lee automáticamente si AutomaticEnv está activo)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "suite360-movil"),
		},
		API: APIConfig{
			BaseURL: getString(v, "API_BASE_URL", "https://api360suite.pqautoexpert.ec/api"),
			Timeout: time.Duration(getInt(v, "API_TIMEOUT_SECONDS", 30)) * time.Second,
		},
		Consola: ConsolaConfig{
			Usuario:  getString(v, "CONSOLA_USUARIO", ""),
			Password: getString(v, "CONSOLA_PASSWORD", ""),
		},
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
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
