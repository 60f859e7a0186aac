package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validProviders = `
openai:
  api_key: "sk-test"
geocoding:
  api_key: "maps-test"
pinata:
  jwt: "pinata-jwt"
  gateway_url: "https://gateway.example.com"
unique:
  base_url: "https://rest.unique.network/unique/v1"
  mnemonic: "bottom drive obey lake curtain smoke basket hold race lonely fit walk"
  race_collection_id: 688
  achievement_collection_id: 689
cloudflare:
  account_id: "cf-account"
  api_token: "cf-token"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadAPIConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError string
		validate    func(*testing.T, *APIConfig)
	}{
		{
			name: "valid config file",
			configFile: validProviders + `
debug: true
sentry_dsn: "https://sentry.example.com"
server:
  port: 8081
auth:
  api_keys: ["k1", "k2"]
nats:
  url: "nats://localhost:4222"
query:
  concurrency: 8
  requests_per_second: 2.5
scratch:
  sweep_interval: 90s
  max_age: 30m
`,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "https://sentry.example.com", cfg.SentryDSN)
				assert.Equal(t, 8081, cfg.Server.Port)
				assert.Equal(t, []string{"k1", "k2"}, cfg.Auth.APIKeys)
				assert.Equal(t, "nats://localhost:4222", cfg.NATS.URL)
				assert.Equal(t, 8, cfg.Query.Concurrency)
				assert.Equal(t, 2.5, cfg.Query.RequestsPerSecond)
				assert.Equal(t, 90*time.Second, cfg.Scratch.SweepInterval)
				assert.Equal(t, 30*time.Minute, cfg.Scratch.MaxAge)
				assert.Equal(t, uint64(688), cfg.Unique.RaceCollectionID)
				assert.Equal(t, uint64(689), cfg.Unique.AchievementCollectionID)
			},
		},
		{
			name:       "config with defaults",
			configFile: validProviders,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.False(t, cfg.Debug)
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 3000, cfg.Server.Port)
				assert.Equal(t, "gpt-4o", cfg.OpenAI.ChatModel)
				assert.Equal(t, "dall-e-3", cfg.OpenAI.ImageModel)
				assert.Equal(t, "https://api.pinata.cloud", cfg.Pinata.APIURL)
				assert.Equal(t, uint16(42), cfg.Unique.SS58Prefix)
				assert.Equal(t, 2*time.Minute, cfg.Unique.StatusPollTimeout)
				assert.Equal(t, 60*time.Second, cfg.HTTP.Timeout)
				assert.Equal(t, 4, cfg.Query.Concurrency)
				assert.Equal(t, "NFT_EVENTS", cfg.NATS.StreamName)
				assert.Empty(t, cfg.NATS.URL)
				assert.NotEmpty(t, cfg.Scratch.Dir)
				assert.Equal(t, 10*time.Minute, cfg.Scratch.SweepInterval)
				assert.Equal(t, time.Hour, cfg.Scratch.MaxAge)
			},
		},
		{
			name: "missing secrets",
			configFile: `
server:
  port: 3000
`,
			expectError: "openai.api_key is required",
		},
		{
			name: "missing collection ids",
			configFile: `
openai:
  api_key: "sk-test"
geocoding:
  api_key: "maps-test"
pinata:
  jwt: "pinata-jwt"
  gateway_url: "https://gateway.example.com"
unique:
  base_url: "https://rest.unique.network/unique/v1"
  mnemonic: "phrase"
cloudflare:
  account_id: "cf-account"
  api_token: "cf-token"
`,
			expectError: "unique.race_collection_id is required",
		},
		{
			name:        "invalid yaml",
			configFile:  "server: [",
			expectError: "failed to read config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.configFile)

			cfg, err := LoadAPIConfig(path, t.TempDir())
			if tt.expectError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectError)
				return
			}

			require.NoError(t, err)
			tt.validate(t, cfg)
		})
	}
}

func TestLoadAPIConfig_LegacyEnvNames(t *testing.T) {
	t.Setenv("GPT", "sk-env")
	t.Setenv("GOOGLE", "maps-env")
	t.Setenv("IPFS", "jwt-env")
	t.Setenv("IPFS_GATEWAY", "https://gw.env")
	t.Setenv("UNIQUE_NETWORK_BASE_URL", "https://rest.env")
	t.Setenv("MNEMONIC", "phrase from env")
	t.Setenv("PORT", "4000")
	t.Setenv("FF_RACE_UNIQUE_RACE_COLLECTION_ID", "700")
	t.Setenv("FF_RACE_UNIQUE_ACHIEVEMENT_COLLECTION_ID", "701")
	t.Setenv("FF_RACE_CLOUDFLARE_ACCOUNT_ID", "cf-env")
	t.Setenv("FF_RACE_CLOUDFLARE_API_TOKEN", "cf-token-env")

	path := writeConfig(t, "debug: false\n")

	cfg, err := LoadAPIConfig(path, t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "sk-env", cfg.OpenAI.APIKey)
	assert.Equal(t, "maps-env", cfg.Geocoding.APIKey)
	assert.Equal(t, "jwt-env", cfg.Pinata.JWT)
	assert.Equal(t, "https://gw.env", cfg.Pinata.GatewayURL)
	assert.Equal(t, "https://rest.env", cfg.Unique.BaseURL)
	assert.Equal(t, "phrase from env", cfg.Unique.Mnemonic)
	assert.Equal(t, 4000, cfg.Server.Port)
	assert.Equal(t, uint64(700), cfg.Unique.RaceCollectionID)
	assert.Equal(t, uint64(701), cfg.Unique.AchievementCollectionID)
}

func TestLoadAPIConfig_SS58Prefix(t *testing.T) {
	cfg, err := LoadAPIConfig(writeConfig(t, validProviders), t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, uint16(DEFAULT_SS58_PREFIX), cfg.Unique.SS58Prefix)

	t.Setenv("FF_RACE_UNIQUE_SS58_PREFIX", "7391")
	cfg, err = LoadAPIConfig(writeConfig(t, validProviders), t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, uint16(7391), cfg.Unique.SS58Prefix)
}

func TestLoadAPIConfig_PrefixedEnvWinsOverLegacy(t *testing.T) {
	t.Setenv("MNEMONIC", "legacy phrase")
	t.Setenv("FF_RACE_UNIQUE_MNEMONIC", "prefixed phrase")

	cfg, err := LoadAPIConfig(writeConfig(t, validProviders), t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "prefixed phrase", cfg.Unique.Mnemonic)
}

func TestLoadAdminConfig(t *testing.T) {
	cfg, err := LoadAdminConfig(writeConfig(t, validProviders+"pregenerate_concurrency: 5\n"), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.PregenerateConcurrency)
	assert.Equal(t, "cf-account", cfg.Cloudflare.AccountID)
}
