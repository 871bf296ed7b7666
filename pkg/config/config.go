package config

import (
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App    AppConfig
	Ledger LedgerConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string // trace, debug, info, warn, error
}

// LedgerConfig configuración del libro de inventario multi-bodega.
type LedgerConfig struct {
	// DefaultReorderLevel es el punto de reorden asignado a cada entrada
	// de stock creada durante el sembrado inicial.
	DefaultReorderLevel int64
	// SeedFile ruta al snapshot JSON de catálogo y bodegas (usado por cmd/demo).
	SeedFile string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo .env).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, LOG_LEVEL, LEDGER_SEED_FILE, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración .env
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// Bind de variables de entorno
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "warehouse-ops"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		Ledger: LedgerConfig{
			DefaultReorderLevel: getInt64(v, "LEDGER_DEFAULT_REORDER_LEVEL", 10),
			SeedFile:            getString(v, "LEDGER_SEED_FILE", "./testdata/snapshot.json"),
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

func getInt64(v *viper.Viper, key string, def int64) int64 {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			n, _ := strconv.ParseInt(v.GetString(key), 10, 64)
			return n
		default:
			return v.GetInt64(key)
		}
	}
	return def
}
