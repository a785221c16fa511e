package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"commerce": map[string]any{
			"storeDomain":     "shop.example.com",
			"storefrontToken": "",
			"chromeTls":       false,
		},
		"supabase": map[string]any{
			"anonKey":          "",
			"oauthRedirectUrl": "",
		},
		"localState": map[string]any{
			"bucketUrl": "mem://",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "COMMERCE_STOREDOMAIN", want: "commerce.storeDomain"},
		{envKey: "COMMERCE_STOREFRONTTOKEN", want: "commerce.storefrontToken"},
		{envKey: "COMMERCE_CHROMETLS", want: "commerce.chromeTls"},
		{envKey: "SUPABASE_ANONKEY", want: "supabase.anonKey"},
		{envKey: "SUPABASE_OAUTHREDIRECTURL", want: "supabase.oauthRedirectUrl"},
		{envKey: "LOCALSTATE_BUCKETURL", want: "localState.bucketUrl"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	require.NotNil(t, cfg.Commerce)
	assert.Equal(t, defaultCommerceAPIVersion, cfg.Commerce.APIVersion)
	assert.Equal(t, defaultCommercePageSize, cfg.Commerce.PageSize)
	assert.Equal(t, defaultRemoteTimeout, cfg.Commerce.Timeout)
	require.NotNil(t, cfg.Supabase)
	assert.Equal(t, defaultRemoteTimeout, cfg.Supabase.Timeout)
	assert.Equal(t, StoreDriverSupabase, cfg.Store.Driver)
	assert.Equal(t, defaultSlowQuery, cfg.Store.SlowQuery)
	assert.Equal(t, defaultLocalStateURL, cfg.LocalState.BucketURL)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultQRCodeSize, cfg.QRCode.Size)
	assert.Equal(t, defaultQRCodeLevel, cfg.QRCode.ErrorCorrectionLevel)
	assert.Equal(t, defaultMetricsPath, cfg.Metrics.Path)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Commerce: &CommerceConfig{APIVersion: "2025-10", PageSize: 12, Timeout: time.Second},
		Store:    &StoreConfig{Driver: StoreDriverPostgres, SlowQuery: time.Second},
	}

	applyDefaults(cfg)

	assert.Equal(t, "2025-10", cfg.Commerce.APIVersion)
	assert.Equal(t, 12, cfg.Commerce.PageSize)
	assert.Equal(t, time.Second, cfg.Commerce.Timeout)
	assert.Equal(t, StoreDriverPostgres, cfg.Store.Driver)
	assert.Equal(t, time.Second, cfg.Store.SlowQuery)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{
			Commerce: &CommerceConfig{StoreDomain: "shop.example.com", StorefrontToken: "token"},
			Supabase: &SupabaseConfig{URL: "https://project.supabase.co", AnonKey: "anon"},
		}
		applyDefaults(cfg)

		return cfg
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("missing store domain", func(t *testing.T) {
		cfg := valid()
		cfg.Commerce.StoreDomain = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing anon key", func(t *testing.T) {
		cfg := valid()
		cfg.Supabase.AnonKey = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("postgres driver without postgres section", func(t *testing.T) {
		cfg := valid()
		cfg.Store.Driver = StoreDriverPostgres
		assert.Error(t, cfg.Validate())
	})

	t.Run("unknown driver", func(t *testing.T) {
		cfg := valid()
		cfg.Store.Driver = "mongo"
		assert.Error(t, cfg.Validate())
	})
}
