package config

import (
	"log"

	"github.com/sangkips/canteen-pos/internal/domain/enum"
	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	Store   StoreConfig
	Catalog CatalogConfig
	Billing BillingConfig
	Printer PrinterConfig
}

type AppConfig struct {
	Name  string
	Debug bool
}

type StoreConfig struct {
	// Path is the SQLite file holding bill history. The default keeps the
	// name the browser build used for its localStorage key.
	Path string
}

type CatalogConfig struct {
	// Path optionally points at a JSON catalog file; empty uses the built-in
	// menu.
	Path string
}

type BillingConfig struct {
	PaymentMethods []string
}

type PrinterConfig struct {
	Type    string // "usb", "network" or "none"
	Address string // device path or TCP address, depending on Type
	Width   int    // print width in characters (32 for 58mm paper)
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "canteen-pos")
	viper.SetDefault("APP_DEBUG", false)
	viper.SetDefault("STORE_PATH", "canteen_db")
	viper.SetDefault("CATALOG_PATH", "")
	viper.SetDefault("PAYMENT_METHODS", defaultPaymentMethods())
	viper.SetDefault("PRINTER_TYPE", "none")
	viper.SetDefault("PRINTER_ADDRESS", "")
	viper.SetDefault("PRINTER_WIDTH", 32)

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		Store: StoreConfig{
			Path: viper.GetString("STORE_PATH"),
		},
		Catalog: CatalogConfig{
			Path: viper.GetString("CATALOG_PATH"),
		},
		Billing: BillingConfig{
			PaymentMethods: viper.GetStringSlice("PAYMENT_METHODS"),
		},
		Printer: PrinterConfig{
			Type:    viper.GetString("PRINTER_TYPE"),
			Address: viper.GetString("PRINTER_ADDRESS"),
			Width:   viper.GetInt("PRINTER_WIDTH"),
		},
	}
}

func defaultPaymentMethods() []string {
	methods := enum.DefaultPaymentMethods()
	out := make([]string, len(methods))
	for i, m := range methods {
		out[i] = m.String()
	}
	return out
}
