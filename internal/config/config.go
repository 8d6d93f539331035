package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type CheckoutConfig struct {
	Env string 	   `yaml:"env"`
	HTTPServer 	   `yaml:"http_server"`
	CheckoutDB 	   `yaml:"checkout_db"`
	LogConfig 	   `yaml:"log_config"`
	MercadoPago    `yaml:"mercadopago"`
	KafkaService   `yaml:"kafka-service"`
	Export 		   `yaml:"export"`
	Migrations 	   `yaml:"migrations"`
}

type HTTPServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port" env:"PORT"`
}

type CheckoutDB struct {
	Dsn string `yaml:"dsn" env:"CHECKOUT_DB_DSN"`
}

type LogConfig struct {
	LogLevel 	string 	`yaml:"log_level"`
	LogFormat 	string 	`yaml:"log_format"`
	LogOutput 	string 	`yaml:"log_output"`
}

type MercadoPago struct {
	AccessToken 	string 	`yaml:"access_token" env:"MP_ACCESS_TOKEN"`
	BaseURL 		string 	`yaml:"base_url" env-default:"https://api.mercadopago.com"`
	NotificationURL string 	`yaml:"notification_url"`
	SuccessURL 		string 	`yaml:"success_url" env-default:"http://localhost:4000/"`
	FailureURL 		string 	`yaml:"failure_url" env-default:"http://localhost:4000/"`
	PendingURL 		string 	`yaml:"pending_url" env-default:"http://localhost:4000/"`
	CurrencyID 		string 	`yaml:"currency_id" env-default:"ARS"`
	UnitPrice 		float64 `yaml:"unit_price" env-default:"8000"`
}

type KafkaService struct {
	Host 		 string `yaml:"host"`
	Port 		 string `yaml:"port"`
	PaymentTopic string `yaml:"payment_topic" env-default:"payment-events"`
}

type Export struct {
	FilePath string `yaml:"file_path" env-default:"buyers.csv"`
}

type Migrations struct {
	Path string `yaml:"path"`
}

func MustLoad() *CheckoutConfig {

	// Processing env config variable and file
	configPath := os.Getenv("CHECKOUT_CONFIG_PATH")

	if configPath == ""{
		log.Fatalf("CHECKOUT_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil{
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg CheckoutConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil{
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
