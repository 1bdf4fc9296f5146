package config

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type Config struct {
	Chain  ChainConfig
	Signer SignerConfig
	Mint   MintConfig
	Redis  RedisConfig
	Server ServerConfig
	Log    LogConfig
}

type ChainConfig struct {
	RPCURL          string `mapstructure:"rpc_url"`
	ContractAddress string `mapstructure:"contract_address"`
}

// SignerConfig selects where the minter key comes from. PrivateKey wins over
// the tapp-daemon when both are set.
type SignerConfig struct {
	PrivateKey string `mapstructure:"private_key"`
	TappAddr   string `mapstructure:"tapp_addr"`
	TappAppID  string `mapstructure:"tapp_app_id"`
}

type MintConfig struct {
	IDStrategy        string `mapstructure:"id_strategy"`
	ReservationTTLSec int64  `mapstructure:"reservation_ttl_sec"`
	MaxIDAttempts     int    `mapstructure:"max_id_attempts"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
	// Operators are the wallet addresses allowed to call signing endpoints.
	Operators []string `mapstructure:"operators"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("mint.id_strategy", "counter")
	v.SetDefault("mint.reservation_ttl_sec", 300)
	v.SetDefault("mint.max_id_attempts", 16)
	v.SetDefault("signer.tapp_app_id", "signature-mint")
	v.SetDefault("log.level", "info")

	// Config file (optional)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/app")
	_ = v.ReadInConfig()

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicit env bindings
	bindings := map[string]string{
		"chain.rpc_url":            "RPC_URL",
		"chain.contract_address":   "NFT_CONTRACT",
		"signer.private_key":       "MINTER_PRIVATE_KEY",
		"signer.tapp_addr":         "TAPP_ADDR",
		"signer.tapp_app_id":       "TAPP_APP_ID",
		"mint.id_strategy":         "ID_STRATEGY",
		"mint.reservation_ttl_sec": "RESERVATION_TTL_SEC",
		"mint.max_id_attempts":     "MAX_ID_ATTEMPTS",
		"redis.addr":               "REDIS_ADDR",
		"redis.password":           "REDIS_PASSWORD",
		"server.port":              "PORT",
		"server.operators":         "OPERATORS",
		"log.level":                "LOG_LEVEL",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", env, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return cfg, cfg.validate()
}

func (c *Config) validate() error {
	if c.Chain.RPCURL == "" {
		return fmt.Errorf("required config missing: RPC_URL")
	}
	if c.Chain.ContractAddress != "" && !common.IsHexAddress(c.Chain.ContractAddress) {
		return fmt.Errorf("NFT_CONTRACT is not an address: %q", c.Chain.ContractAddress)
	}
	switch c.Mint.IDStrategy {
	case "counter", "random":
	default:
		return fmt.Errorf("ID_STRATEGY must be counter or random, got %q", c.Mint.IDStrategy)
	}
	if c.Mint.ReservationTTLSec <= 0 {
		return fmt.Errorf("RESERVATION_TTL_SEC must be positive")
	}
	if c.Mint.MaxIDAttempts <= 0 {
		return fmt.Errorf("MAX_ID_ATTEMPTS must be positive")
	}
	for _, op := range c.Server.Operators {
		if !common.IsHexAddress(strings.TrimSpace(op)) {
			return fmt.Errorf("OPERATORS entry is not an address: %q", op)
		}
	}
	return nil
}

// HasKeySource reports whether a signing key is configured.
func (c *Config) HasKeySource() bool {
	return c.Signer.PrivateKey != "" || c.Signer.TappAddr != ""
}

// OperatorAddresses parses Server.Operators.
func (c *Config) OperatorAddresses() []common.Address {
	out := make([]common.Address, 0, len(c.Server.Operators))
	for _, op := range c.Server.Operators {
		out = append(out, common.HexToAddress(strings.TrimSpace(op)))
	}
	return out
}

// NewLogger builds a production zap logger at the configured level.
func (l LogConfig) NewLogger() (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(l.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	zc := zap.NewProductionConfig()
	zc.Level = level
	return zc.Build()
}
