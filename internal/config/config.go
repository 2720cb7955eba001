package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	DeliveryAPIURL string // リモートのデリバリーAPIベースURL

	JWTSecret string // セッショントークンの署名シークレット

	//1店舗あたりの固定配達料
	DeliveryFee decimal.Decimal

	GoEnv string // dev/prod
	FEURL string // フロントURL（CORSで使う）
}

// Loadは環境変数
func Load() (Config, error) {
	fee, err := loadFee()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port:           os.Getenv("PORT"),
		DeliveryAPIURL: os.Getenv("DELIVERY_API_URL"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		DeliveryFee:    fee,
		GoEnv:          os.Getenv("GO_ENV"),
		FEURL:          os.Getenv("FE_URL"),
	}

	//必須チェック
	if cfg.Port == "" {
		return Config{}, fmt.Errorf("PORT is required")
	}
	if cfg.DeliveryAPIURL == "" {
		return Config{}, fmt.Errorf("DELIVERY_API_URL is required")
	}
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.GoEnv == "" {
		return Config{}, fmt.Errorf("GO_ENV is required")
	}
	if cfg.FEURL == "" {
		return Config{}, fmt.Errorf("FE_URL is required")
	}

	return cfg, nil
}

func loadFee() (decimal.Decimal, error) {
	v := os.Getenv("DELIVERY_FEE")
	if v == "" {
		//デフォルトの配達料
		return decimal.NewFromFloat(5.99), nil
	}

	fee, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, fmt.Errorf("DELIVERY_FEE must be a decimal: %w", err)
	}
	if fee.IsNegative() {
		return decimal.Zero, fmt.Errorf("DELIVERY_FEE must not be negative")
	}
	return fee, nil
}
