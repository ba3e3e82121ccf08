package config

import (
	"fmt"
	"os"
	"strconv"
)

// OzonCredentials -- доступы Ozon Seller API. Только из окружения.
type OzonCredentials struct {
	ClientID    string
	SellerToken string
}

// MarketCredentials -- доступы Yandex Market Partner API. Только из окружения.
type MarketCredentials struct {
	Token          string
	FBSCampaignID  string
	DBSCampaignID  string
	FBSWarehouseID int64
	DBSWarehouseID int64
}

func GetOzonCredentials() (*OzonCredentials, error) {
	clientID, err := requireEnv("CLIENT_ID")
	if err != nil {
		return nil, err
	}
	token, err := requireEnv("SELLER_TOKEN")
	if err != nil {
		return nil, err
	}
	return &OzonCredentials{ClientID: clientID, SellerToken: token}, nil
}

func GetMarketCredentials() (*MarketCredentials, error) {
	token, err := requireEnv("MARKET_TOKEN")
	if err != nil {
		return nil, err
	}
	fbsID, err := requireEnv("FBS_ID")
	if err != nil {
		return nil, err
	}
	dbsID, err := requireEnv("DBS_ID")
	if err != nil {
		return nil, err
	}
	fbsWarehouse, err := requireIntEnv("WAREHOUSE_FBS_ID")
	if err != nil {
		return nil, err
	}
	dbsWarehouse, err := requireIntEnv("WAREHOUSE_DBS_ID")
	if err != nil {
		return nil, err
	}
	return &MarketCredentials{
		Token:          token,
		FBSCampaignID:  fbsID,
		DBSCampaignID:  dbsID,
		FBSWarehouseID: fbsWarehouse,
		DBSWarehouseID: dbsWarehouse,
	}, nil
}

func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("required environment variable %s is not set", key)
	}
	return value, nil
}

func requireIntEnv(key string) (int64, error) {
	value, err := requireEnv(key)
	if err != nil {
		return 0, err
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	return parsed, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
