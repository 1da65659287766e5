package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Defaults DefaultsConfig
}

type ServerConfig struct {
	Port               string
	Env                string
	JWTSecret          string `mapstructure:"jwt_secret"`
	JWTExpirationHours int    `mapstructure:"jwt_expiration_hours"`
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	URL      string
}

type DefaultsConfig struct {
	AdminName         string `mapstructure:"admin_name"`
	AdminEmail        string `mapstructure:"admin_email"`
	AdminPassword     string `mapstructure:"admin_password"`
	StoreName         string `mapstructure:"store_name"`
	Currency          string `mapstructure:"currency"`
	LowStockThreshold int    `mapstructure:"low_stock_threshold"`
	ReportTimezone    string `mapstructure:"report_timezone"`
}

// Load reads configuration from .env and the OS environment.
func Load() *Config {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, checking environment variables: %v", err)
	}

	viper.AutomaticEnv()

	viper.BindEnv("SERVER_PORT", "PORT")
	viper.BindEnv("DATABASE_URL")

	viper.SetDefault("SERVER_PORT", "3000")
	viper.SetDefault("JWT_EXPIRATION_HOURS", 24)
	viper.SetDefault("STORE_NAME", "Faith Community Baptist School Bookshop")
	viper.SetDefault("CURRENCY", "GHS")
	viper.SetDefault("LOW_STOCK_THRESHOLD", 10)

	cfg := &Config{
		Server: ServerConfig{
			Port:               viper.GetString("SERVER_PORT"),
			Env:                viper.GetString("SERVER_ENV"),
			JWTSecret:          viper.GetString("JWT_SECRET"),
			JWTExpirationHours: viper.GetInt("JWT_EXPIRATION_HOURS"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
			URL:      viper.GetString("DATABASE_URL"),
		},
		Defaults: DefaultsConfig{
			AdminName:         viper.GetString("ADMIN_NAME"),
			AdminEmail:        viper.GetString("ADMIN_EMAIL"),
			AdminPassword:     viper.GetString("ADMIN_PASSWORD"),
			StoreName:         viper.GetString("STORE_NAME"),
			Currency:          viper.GetString("CURRENCY"),
			LowStockThreshold: viper.GetInt("LOW_STOCK_THRESHOLD"),
			ReportTimezone:    viper.GetString("REPORT_TIMEZONE"),
		},
	}

	log.Printf("Configuration loaded:")
	log.Printf("- Server Port: %s", cfg.Server.Port)
	log.Printf("- Server Env: %s", cfg.Server.Env)
	log.Printf("- JWT Secret: %s", setOrNot(cfg.Server.JWTSecret))
	log.Printf("- Database Host: %s", cfg.Database.Host)
	log.Printf("- Database Name: %s", cfg.Database.Name)
	log.Printf("- Database URL: %s", setOrNot(cfg.Database.URL))
	log.Printf("- Store Name: %s", cfg.Defaults.StoreName)

	return cfg
}

func setOrNot(v string) string {
	if v != "" {
		return "SET"
	}
	return "NOT SET"
}
