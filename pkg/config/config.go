package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App       AppConfig
	HTTP      HTTPConfig
	Inventory InventoryConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
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

// InventoryConfig configuración del motor de conciliación de inventario.
type InventoryConfig struct {
	UploadDir    string // carpeta donde se guardan los libros subidos
	ResultsSheet string // nombre de la hoja de resultados dentro del libro
	Columns      ColumnsConfig
}

// ColumnsConfig índices de columna (base 0) del libro de inventario subido.
// El mapeo es fijo por posición: no se autodetectan encabezados.
type ColumnsConfig struct {
	ItemID      int
	ProductName int
	ExpectedQty int
	ItemPrice   int
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, UPLOAD_DIR, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "recuento-api"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Inventory: InventoryConfig{
			UploadDir:    getString(v, "UPLOAD_DIR", "uploaded_inventory"),
			ResultsSheet: getString(v, "RESULTS_SHEET", "Scan Results"),
			Columns: ColumnsConfig{
				ItemID:      getInt(v, "COL_ITEM_ID", 11),
				ProductName: getInt(v, "COL_PRODUCT_NAME", 0),
				ExpectedQty: getInt(v, "COL_EXPECTED_QTY", 9),
				ItemPrice:   getInt(v, "COL_ITEM_PRICE", 2),
			},
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
