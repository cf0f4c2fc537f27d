package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func newTestBuilder(flags *StructuredConfig) *configBuilder {
	b := newConfigBuilder()
	b.parseFlag = func() *StructuredConfig {
		if flags == nil {
			return &StructuredConfig{}
		}
		return flags
	}
	return b
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs yields the
// documented defaults.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.App.Env)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultDBDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultSiteAddress, cfg.Site.Address)
	assert.Equal(t, DefaultCacheTTL, cfg.Site.CacheTTL)
	assert.Equal(t, DefaultRotationInterval, cfg.Site.RotationInterval)
	assert.Equal(t, DevelopmentAPIBaseURL, cfg.ResolveAPIBaseURL())
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstSourceWins verifies that earlier configs take precedence and
// later ones only fill gaps.
func TestBuild_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0"}},
		&StructuredConfig{App: App{Version: "2.0.0", Env: EnvProduction}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, EnvProduction, cfg.App.Env)
}

// TestBuild_UnknownEnv verifies validation of APP_ENV.
func TestBuild_UnknownEnv(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{App: App{Env: "staging"}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

// ── ResolveAPIBaseURL ─────────────────────────────────────────────────────────

func TestResolveAPIBaseURL(t *testing.T) {
	tests := []struct {
		name string
		cfg  StructuredConfig
		want string
	}{
		{"override wins", StructuredConfig{App: App{Env: EnvProduction}, Adapter: Adapter{APIBaseURL: "https://x.test"}}, "https://x.test"},
		{"production default", StructuredConfig{App: App{Env: EnvProduction}}, ProductionAPIBaseURL},
		{"development default", StructuredConfig{App: App{Env: EnvDevelopment}}, DevelopmentAPIBaseURL},
		{"empty env", StructuredConfig{}, DevelopmentAPIBaseURL},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.ResolveAPIBaseURL())
		})
	}
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_VERSION":    "env-version",
		"STORAGE_DB_DSN": "env.db",
	})

	b := newConfigBuilder()
	b.withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, "env.db", b.configs[0].Storage.DB.DSN)
}

// ── withDotEnv ────────────────────────────────────────────────────────────────

// TestWithDotEnv_MissingFile verifies that an absent .env file is ignored.
func TestWithDotEnv_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.withDotEnv(filepath.Join(t.TempDir(), ".env"))
	assert.NoError(t, b.err)
}

// TestWithDotEnv_ExportsVariables verifies that .env values reach withEnv.
func TestWithDotEnv_ExportsVariables(t *testing.T) {
	clearEnvVars(t)
	// godotenv does not override variables that are already present, even
	// when blank, so drop the one under test from the environment entirely.
	require.NoError(t, os.Unsetenv("SITE_ADDRESS"))
	t.Cleanup(func() { _ = os.Unsetenv("SITE_ADDRESS") })

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("SITE_ADDRESS=127.0.0.1:9000\n"), 0o600))

	b := newConfigBuilder().withDotEnv(path).withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "127.0.0.1:9000", b.configs[0].Site.Address)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_AppendsParsedFlags(t *testing.T) {
	b := newTestBuilder(&StructuredConfig{Storage: Storage{DB: DB{DSN: "flags.db"}}})
	assert.Same(t, b, b.withFlags())
	require.Len(t, b.configs, 1)
	assert.Equal(t, "flags.db", b.configs[0].Storage.DB.DSN)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoOp_WhenNoPathSet verifies that withJSON does nothing when
// no config carries a JSON path.
func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()
	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithJSON_LoadsFile verifies that the JSON file fills the gaps left by
// earlier sources.
func TestWithJSON_LoadsFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"adapter": map[string]any{"api_base_url": "https://json.example", "request_timeout": "3s"},
		"site":    map[string]any{"cache_ttl": "10s"},
	})

	b := newTestBuilder(&StructuredConfig{JSONFilePath: path})
	b.withFlags().withJSON()
	cfg, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, "https://json.example", cfg.Adapter.APIBaseURL)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 10*time.Second, cfg.Site.CacheTTL)
}

// TestWithJSON_MissingFile verifies that an unreadable JSON path is reported.
func TestWithJSON_MissingFile(t *testing.T) {
	b := newTestBuilder(&StructuredConfig{JSONFilePath: filepath.Join(t.TempDir(), "nope.json")})
	_, err := b.withFlags().withJSON().build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

// ── views ─────────────────────────────────────────────────────────────────────

func TestAdminConfig_Validate(t *testing.T) {
	base := func() *StructuredConfig {
		cfg := &StructuredConfig{}
		cfg.applyDefaults()
		return cfg
	}

	t.Run("defaults are valid", func(t *testing.T) {
		assert.NoError(t, newAdminConfig(base()).validate())
	})

	t.Run("in-memory dsn is rejected", func(t *testing.T) {
		cfg := base()
		cfg.Storage.DB.DSN = ":memory:"
		assert.ErrorIs(t, newAdminConfig(cfg).validate(), ErrInvalidStorageConfigs)
	})

	t.Run("base url without scheme is rejected", func(t *testing.T) {
		cfg := base()
		cfg.Adapter.APIBaseURL = "api.example.com"
		assert.ErrorIs(t, newAdminConfig(cfg).validate(), ErrInvalidAdapterConfigs)
	})
}

func TestSiteConfig_Validate(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.applyDefaults()

	siteCfg := newSiteConfig(cfg)
	require.NoError(t, siteCfg.validate())
	assert.Equal(t, DefaultSiteAddress, siteCfg.Site.Address)

	siteCfg.Site.RotationInterval = 0
	assert.ErrorIs(t, siteCfg.validate(), ErrInvalidSiteConfigs)
}
