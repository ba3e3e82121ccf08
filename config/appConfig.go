package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"gomarketsync_api/config/values"
)

type Config interface {
}

type MarketplaceConfig interface {
}

type OzonConfig struct {
	APIURL string `yaml:"api_url"`
}

type MarketConfig struct {
	APIURL string `yaml:"api_url"`
}

type StockConfig struct {
	FeedURL string `yaml:"feed_url"`
}

type OpsConfig struct {
	ListenAddr string `yaml:"listen_addr"`
}

type JournalConfig struct {
	Enabled bool `yaml:"enabled"`
}

type AppConfig struct {
	Ozon     OzonConfig        `yaml:"ozon"`
	Market   MarketConfig      `yaml:"market"`
	Stock    StockConfig       `yaml:"stock"`
	Ops      OpsConfig         `yaml:"ops"`
	Journal  JournalConfig     `yaml:"journal"`
	Postgres PostgresConfig    `yaml:"postgres"`
	Values   values.SyncValues `yaml:"sync_values"`
}

func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		Ozon:    OzonConfig{APIURL: "https://api-seller.ozon.ru"},
		Market:  MarketConfig{APIURL: "https://api.partner.market.yandex.ru"},
		Stock:   StockConfig{FeedURL: "https://timeworld.ru/upload/files/ostatki.zip"},
		Ops:     OpsConfig{ListenAddr: ":8082"},
		Journal: JournalConfig{Enabled: false},
		Postgres: PostgresConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "postgres",
			Password: "postgres",
			DBName:   "postgres",
		},
		Values: values.DefaultSyncValues(),
	}
}

// LoadConfig читает yaml конфиг. Если файла нет -- значения по умолчанию.
func LoadConfig(filename string) (*AppConfig, error) {
	file, err := os.Open(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultAppConfig(), nil
		}
		return nil, err
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	config := DefaultAppConfig()
	if err := decoder.Decode(config); err != nil {
		return nil, err
	}
	return config, nil
}
