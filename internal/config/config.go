package config

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
}

// AuthConfig holds authentication configuration for the write endpoints.
// Authentication is disabled when neither a JWT key nor API keys are set.
type AuthConfig struct {
	JWTPublicKey string   `mapstructure:"jwt_public_key"`
	APIKeys      []string `mapstructure:"api_keys"`
}

// OpenAIConfig holds chat completion and image generation configuration
type OpenAIConfig struct {
	APIKey      string `mapstructure:"api_key"`
	BaseURL     string `mapstructure:"base_url"`
	ChatModel   string `mapstructure:"chat_model"`
	ImageModel  string `mapstructure:"image_model"`
	ImageSize   string `mapstructure:"image_size"`
	ImagePrompt string `mapstructure:"image_prompt"`
}

// GeocodingConfig holds geocoding provider configuration
type GeocodingConfig struct {
	APIKey string `mapstructure:"api_key"`
}

// PinataConfig holds pinning service configuration
type PinataConfig struct {
	JWT        string `mapstructure:"jwt"`
	APIURL     string `mapstructure:"api_url"`
	GatewayURL string `mapstructure:"gateway_url"`
}

// UniqueConfig holds ledger configuration.
//
// SS58Prefix defaults to DEFAULT_SS58_PREFIX, the generic Substrate format ("5..." addresses)
// that Sr25519 accounts derive to and that player addresses arrive in. The REST API accepts
// either format. Set 7391 to log and send the minting account in Unique mainnet format.
type UniqueConfig struct {
	BaseURL                 string        `mapstructure:"base_url"`
	Mnemonic                string        `mapstructure:"mnemonic"`
	SS58Prefix              uint16        `mapstructure:"ss58_prefix"`
	RaceCollectionID        uint64        `mapstructure:"race_collection_id"`
	AchievementCollectionID uint64        `mapstructure:"achievement_collection_id"`
	StatusPollTimeout       time.Duration `mapstructure:"status_poll_timeout"`
}

// CloudflareConfig holds Cloudflare Images configuration for the blob relay
type CloudflareConfig struct {
	AccountID string `mapstructure:"account_id"`
	APIToken  string `mapstructure:"api_token"`
}

// NATSConfig holds NATS JetStream configuration. Events are not published when URL is empty.
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
}

// ScratchConfig holds local scratch storage configuration
type ScratchConfig struct {
	Dir           string        `mapstructure:"dir"`
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
	MaxAge        time.Duration `mapstructure:"max_age"`
}

// QueryConfig holds token query fan-out configuration
type QueryConfig struct {
	Concurrency       int     `mapstructure:"concurrency"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
}

// HTTPClientConfig holds outbound HTTP configuration
type HTTPClientConfig struct {
	Timeout          time.Duration `mapstructure:"timeout"`
	MaxDownloadBytes int64         `mapstructure:"max_download_bytes"`
}

// ProvidersConfig groups every external collaborator
type ProvidersConfig struct {
	OpenAI     OpenAIConfig     `mapstructure:"openai"`
	Geocoding  GeocodingConfig  `mapstructure:"geocoding"`
	Pinata     PinataConfig     `mapstructure:"pinata"`
	Unique     UniqueConfig     `mapstructure:"unique"`
	Cloudflare CloudflareConfig `mapstructure:"cloudflare"`
	HTTP       HTTPClientConfig `mapstructure:"http"`
	Scratch    ScratchConfig    `mapstructure:"scratch"`
	Query      QueryConfig      `mapstructure:"query"`
}

// APIConfig holds configuration for API server
type APIConfig struct {
	BaseConfig      `mapstructure:",squash"`
	ProvidersConfig `mapstructure:",squash"`
	Server          ServerConfig `mapstructure:"server"`
	Auth            AuthConfig   `mapstructure:"auth"`
	NATS            NATSConfig   `mapstructure:"nats"`
}

// AdminConfig holds configuration for the admin CLI
type AdminConfig struct {
	BaseConfig             `mapstructure:",squash"`
	ProvidersConfig        `mapstructure:",squash"`
	PregenerateConcurrency int `mapstructure:"pregenerate_concurrency"`
}

// LoadAPIConfig loads configuration for API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	setProviderDefaults(v)
	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 300)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("nats.stream_name", "NFT_EVENTS")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.connection_name", "ff-race-nft-api")

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg APIConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.ProvidersConfig.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadAdminConfig loads configuration for the admin CLI
func LoadAdminConfig(configFile string, envPath string) (*AdminConfig, error) {
	v := configureViper("admin", configFile, envPath)

	setProviderDefaults(v)
	v.SetDefault("pregenerate_concurrency", 2)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg AdminConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.ProvidersConfig.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that every secret and collection id has been supplied.
// There are no built-in fallbacks for any of them.
func (c *ProvidersConfig) Validate() error {
	var errs []error
	required := map[string]string{
		"openai.api_key":        c.OpenAI.APIKey,
		"geocoding.api_key":     c.Geocoding.APIKey,
		"pinata.jwt":            c.Pinata.JWT,
		"pinata.gateway_url":    c.Pinata.GatewayURL,
		"unique.base_url":       c.Unique.BaseURL,
		"unique.mnemonic":       c.Unique.Mnemonic,
		"cloudflare.account_id": c.Cloudflare.AccountID,
		"cloudflare.api_token":  c.Cloudflare.APIToken,
	}
	for _, key := range slices.Sorted(maps.Keys(required)) {
		if strings.TrimSpace(required[key]) == "" {
			errs = append(errs, fmt.Errorf("%s is required", key))
		}
	}
	if c.Unique.RaceCollectionID == 0 {
		errs = append(errs, errors.New("unique.race_collection_id is required"))
	}
	if c.Unique.AchievementCollectionID == 0 {
		errs = append(errs, errors.New("unique.achievement_collection_id is required"))
	}
	if c.Query.Concurrency <= 0 {
		errs = append(errs, errors.New("query.concurrency must be positive"))
	}

	return errors.Join(errs...)
}

func setProviderDefaults(v *viper.Viper) {
	v.SetDefault("openai.chat_model", "gpt-4o")
	v.SetDefault("openai.image_model", "dall-e-3")
	v.SetDefault("openai.image_size", "1024x1024")
	v.SetDefault("pinata.api_url", "https://api.pinata.cloud")
	v.SetDefault("unique.ss58_prefix", DEFAULT_SS58_PREFIX)
	v.SetDefault("unique.status_poll_timeout", "2m")
	v.SetDefault("http.timeout", "60s")
	v.SetDefault("http.max_download_bytes", 20*1024*1024) // 20MB
	v.SetDefault("scratch.dir", filepath.Join(os.TempDir(), "ff-race-nft"))
	v.SetDefault("scratch.sweep_interval", "10m")
	v.SetDefault("scratch.max_age", "1h")
	v.SetDefault("query.concurrency", 4)
	v.SetDefault("query.requests_per_second", 10)
}

func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found, use environment variables
	}
	return nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	loadEnv(envPath, service)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		v.AddConfigPath("config/")
	}

	v.SetEnvPrefix(ENV_PREFIX)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindAllEnvVars(v)
	return v
}

// ENV_PREFIX is prepended to every environment variable name
const ENV_PREFIX = "FF_RACE"

// DEFAULT_SS58_PREFIX is the generic Substrate address format
const DEFAULT_SS58_PREFIX = 42

// legacyEnvNames maps config keys to the environment variable names used by earlier deployments
var legacyEnvNames = map[string]string{
	"openai.api_key":     "GPT",
	"geocoding.api_key":  "GOOGLE",
	"pinata.jwt":         "IPFS",
	"pinata.gateway_url": "IPFS_GATEWAY",
	"unique.base_url":    "UNIQUE_NETWORK_BASE_URL",
	"unique.mnemonic":    "MNEMONIC",
	"server.port":        "PORT",
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		// Auth
		"auth.jwt_public_key",
		"auth.api_keys",
		// OpenAI
		"openai.api_key",
		"openai.base_url",
		"openai.chat_model",
		"openai.image_model",
		"openai.image_size",
		"openai.image_prompt",
		// Geocoding
		"geocoding.api_key",
		// Pinata
		"pinata.jwt",
		"pinata.api_url",
		"pinata.gateway_url",
		// Unique
		"unique.base_url",
		"unique.mnemonic",
		"unique.ss58_prefix",
		"unique.race_collection_id",
		"unique.achievement_collection_id",
		"unique.status_poll_timeout",
		// Cloudflare
		"cloudflare.account_id",
		"cloudflare.api_token",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		// Outbound
		"http.timeout",
		"http.max_download_bytes",
		"scratch.dir",
		"scratch.sweep_interval",
		"scratch.max_age",
		"query.concurrency",
		"query.requests_per_second",
		"pregenerate_concurrency",
	}

	for _, key := range keys {
		envName := ENV_PREFIX + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if legacy, ok := legacyEnvNames[key]; ok {
			_ = v.BindEnv(key, envName, legacy)
			continue
		}
		_ = v.BindEnv(key, envName)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		_ = godotenv.Overload(filepath.Join(envPath, envFile)) // later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}
