package conf

import (
	"os"
	"time"

	"github.com/jinzhu/configor"
	"github.com/joho/godotenv"
)

type Bot struct {
	APIKey    string `json:"api_key"    env:"BINANCE_API_KEY"`
	APISecret string `json:"api_secret" env:"BINANCE_API_SECRET"`

	BaseURL    string        `json:"base_url"    env:"BINANCE_BASE_URL" default:"https://testnet.binancefuture.com"`
	Timeout    time.Duration `json:"timeout"     env:"BINANCE_TIMEOUT"  default:"10s"`
	RecvWindow int64         `json:"recv_window" env:"BINANCE_RECV_WINDOW"`

	LogDir string `json:"log_dir" env:"LOG_DIR" default:"logs"`

	Telegram struct {
		Token  string `json:"token"   env:"TELEGRAM_TOKEN"`
		ChatID int64  `json:"chat_id" env:"TELEGRAM_CHAT_ID"`
	} `json:"telegram"`

	Debug bool `json:"debug" env:"DEBUG"`
}

// New loads .env (if any) and then the json config at CFG_PATH, environment wins over the file.
func New() (*Bot, error) {
	path := os.Getenv("CFG_PATH")

	if path == "" {
		path = "./conf/conf.json"
	}

	return Load(path)
}

func Load(path string) (*Bot, error) {
	_ = godotenv.Load()

	c := &Bot{}

	if err := configor.New(&configor.Config{ErrorOnUnmatchedKeys: true, Silent: true}).Load(c, path); err != nil {
		return nil, err
	}

	return c, nil
}
