package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	defaultCommerceAPIVersion = "2026-01"
	defaultCommercePageSize   = 20
	defaultRemoteTimeout      = 15 * time.Second
	defaultSlowQuery          = 200 * time.Millisecond
	defaultLocalStateURL      = "file://./.storefront?create_dir=true"
	defaultQRCodeSize         = 256
	defaultQRCodeLevel        = "M"
	defaultMetricsPath        = "/metrics"

	// StoreDriverSupabase routes table access through the BaaS REST API.
	StoreDriverSupabase = "supabase"
	// StoreDriverPostgres talks to the BaaS database directly.
	StoreDriverPostgres = "postgres"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int      `json:"port" yaml:"port"`
		MaxRequestBodySize string   `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		AllowOrigins       []string `json:"allowOrigins" yaml:"allowOrigins"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Commerce configuration for the Storefront GraphQL API
	Commerce *CommerceConfig `json:"commerce" yaml:"commerce"`

	// Supabase configuration for accounts and cart/wishlist tables
	Supabase *SupabaseConfig `json:"supabase" yaml:"supabase"`

	// Store selects the implementation behind the table repositories
	Store *StoreConfig `json:"store" yaml:"store"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// LocalState configuration for the device-local key/value bucket
	LocalState *LocalStateConfig `json:"localState" yaml:"localState"`

	// Secrets configuration for loading credentials from a secret manager
	Secrets *SecretsConfig `json:"secrets" yaml:"secrets"`

	// QRCode configuration for checkout handoff codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// Metrics configuration for the Prometheus endpoint
	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`
}

// CommerceConfig defines the Storefront API connection
type CommerceConfig struct {
	StoreDomain     string        `json:"storeDomain" yaml:"storeDomain"`
	StorefrontToken string        `json:"storefrontToken" yaml:"storefrontToken"`
	APIVersion      string        `json:"apiVersion" yaml:"apiVersion"`
	PageSize        int           `json:"pageSize" yaml:"pageSize"`
	Timeout         time.Duration `json:"timeout" yaml:"timeout"`

	// ChromeTLS presents a Chrome TLS fingerprint to the storefront CDN
	ChromeTLS bool `json:"chromeTls" yaml:"chromeTls"`

	// RequestsPerSecond throttles outgoing calls; zero disables throttling
	RequestsPerSecond float64 `json:"requestsPerSecond" yaml:"requestsPerSecond"`
	Burst             int     `json:"burst" yaml:"burst"`
}

// SupabaseConfig defines the backend-as-a-service connection
type SupabaseConfig struct {
	URL     string        `json:"url" yaml:"url"`
	AnonKey string        `json:"anonKey" yaml:"anonKey"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// JWTSecret verifies access token signatures locally when set
	JWTSecret string `json:"jwtSecret" yaml:"jwtSecret"`

	// OAuthRedirectURL is where the provider sends the browser after sign-in
	OAuthRedirectURL string `json:"oauthRedirectUrl" yaml:"oauthRedirectUrl"`

	// PasswordResetRedirectURL is embedded in password recovery emails
	PasswordResetRedirectURL string `json:"passwordResetRedirectUrl" yaml:"passwordResetRedirectUrl"`
}

// StoreConfig defines which backend serves the user_carts, wishlist_items and waitlist_signups tables
type StoreConfig struct {
	Driver string `json:"driver" yaml:"driver"`

	// SlowQuery is the statement duration logged as slow by the postgres driver
	SlowQuery time.Duration `json:"slowQuery" yaml:"slowQuery"`
}

// LocalStateConfig defines where the device-local state lives
type LocalStateConfig struct {
	// BucketURL is a gocloud.dev blob URL, e.g. file:///var/lib/storefront or mem://
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`
}

// SecretsConfig defines the secret manager used for credentials
type SecretsConfig struct {
	// Provider is "gcp" or empty to use plain config values
	Provider  string `json:"provider" yaml:"provider"`
	ProjectID string `json:"projectId" yaml:"projectId"`

	StorefrontTokenSecret string `json:"storefrontTokenSecret" yaml:"storefrontTokenSecret"`
	SupabaseAnonKeySecret string `json:"supabaseAnonKeySecret" yaml:"supabaseAnonKeySecret"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// MetricsConfig defines the metrics endpoint
type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	configFile, found := findConfigFile(currEnv, searchPaths)
	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Example: COMMERCE_STOREFRONTTOKEN -> commerce.storefrontToken
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func findConfigFile(currEnv string, searchPaths []string) (string, bool) {
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}

	return "", false
}

func New() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Commerce == nil {
		cfg.Commerce = &CommerceConfig{}
	}
	if cfg.Commerce.APIVersion == "" {
		cfg.Commerce.APIVersion = defaultCommerceAPIVersion
	}
	if cfg.Commerce.PageSize <= 0 {
		cfg.Commerce.PageSize = defaultCommercePageSize
	}
	if cfg.Commerce.Timeout <= 0 {
		cfg.Commerce.Timeout = defaultRemoteTimeout
	}

	if cfg.Supabase == nil {
		cfg.Supabase = &SupabaseConfig{}
	}
	if cfg.Supabase.Timeout <= 0 {
		cfg.Supabase.Timeout = defaultRemoteTimeout
	}

	if cfg.Store == nil {
		cfg.Store = &StoreConfig{}
	}
	if cfg.Store.Driver == "" {
		cfg.Store.Driver = StoreDriverSupabase
	}
	if cfg.Store.SlowQuery <= 0 {
		cfg.Store.SlowQuery = defaultSlowQuery
	}

	if cfg.LocalState == nil || cfg.LocalState.BucketURL == "" {
		cfg.LocalState = &LocalStateConfig{BucketURL: defaultLocalStateURL}
	}

	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{}
	}
	if cfg.QRCode.Size <= 0 {
		cfg.QRCode.Size = defaultQRCodeSize
	}
	if cfg.QRCode.ErrorCorrectionLevel == "" {
		cfg.QRCode.ErrorCorrectionLevel = defaultQRCodeLevel
	}

	if cfg.Metrics == nil {
		cfg.Metrics = &MetricsConfig{}
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = defaultMetricsPath
	}
}

// Validate reports configuration that would make the service unusable.
func (c *Config) Validate() error {
	if c.Commerce == nil || c.Commerce.StoreDomain == "" {
		return errors.New("commerce.storeDomain is required")
	}
	if c.Commerce.StorefrontToken == "" {
		return errors.New("commerce.storefrontToken is required")
	}
	if c.Supabase == nil || c.Supabase.URL == "" || c.Supabase.AnonKey == "" {
		return errors.New("supabase.url and supabase.anonKey are required")
	}

	switch c.Store.Driver {
	case StoreDriverSupabase:
	case StoreDriverPostgres:
		if c.Postgres == nil {
			return errors.New("postgres section is required when store.driver is postgres")
		}
	default:
		return errors.Errorf("unknown store driver: %s", c.Store.Driver)
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from POSTGRES_REPLICAS_{index}_{field} variables.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
