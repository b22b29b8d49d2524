package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Overpass  OverpassConfig
	OSRM      OSRMConfig
	Nominatim NominatimConfig
	Redis     RedisConfig
	Cache     CacheConfig
	Analytics AnalyticsConfig
	Log       LogConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type OverpassConfig struct {
	Endpoint       string
	RequestTimeout time.Duration
}

type OSRMConfig struct {
	Endpoint       string
	RequestTimeout time.Duration
}

type NominatimConfig struct {
	Endpoint       string
	UserAgent      string
	RequestTimeout time.Duration
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	LivabilityTTL time.Duration
	CommuteTTL    time.Duration
	ExploreTTL    time.Duration
}

type AnalyticsConfig struct {
	// DefaultRadius is used when a request omits the radius, meters
	DefaultRadius float64
	// MaxRadius caps the analysis radius, meters
	MaxRadius float64
	// MaxConcurrentQueries bounds the provider fan-out per request
	MaxConcurrentQueries int
	// HighlightsLimit caps the nearest-places list in exploration summaries
	HighlightsLimit int
	// WalkingSpeedMps is used for walking-time estimates (~5 km/h)
	WalkingSpeedMps float64
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// A missing .env is fine, environment variables still apply
	_ = viper.ReadInConfig()

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Overpass: OverpassConfig{
			Endpoint:       viper.GetString("OVERPASS_ENDPOINT"),
			RequestTimeout: time.Duration(viper.GetInt("OVERPASS_TIMEOUT")) * time.Second,
		},
		OSRM: OSRMConfig{
			Endpoint:       viper.GetString("OSRM_ENDPOINT"),
			RequestTimeout: time.Duration(viper.GetInt("OSRM_TIMEOUT")) * time.Second,
		},
		Nominatim: NominatimConfig{
			Endpoint:       viper.GetString("NOMINATIM_ENDPOINT"),
			UserAgent:      viper.GetString("NOMINATIM_USER_AGENT"),
			RequestTimeout: time.Duration(viper.GetInt("NOMINATIM_TIMEOUT")) * time.Second,
		},
		Redis: RedisConfig{
			Enabled:  viper.GetBool("REDIS_ENABLED"),
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			LivabilityTTL: time.Duration(viper.GetInt("LIVABILITY_CACHE_TTL")) * time.Second,
			CommuteTTL:    time.Duration(viper.GetInt("COMMUTE_CACHE_TTL")) * time.Second,
			ExploreTTL:    time.Duration(viper.GetInt("EXPLORE_CACHE_TTL")) * time.Second,
		},
		Analytics: AnalyticsConfig{
			DefaultRadius:        viper.GetFloat64("ANALYTICS_DEFAULT_RADIUS"),
			MaxRadius:            viper.GetFloat64("ANALYTICS_MAX_RADIUS"),
			MaxConcurrentQueries: viper.GetInt("ANALYTICS_MAX_CONCURRENT_QUERIES"),
			HighlightsLimit:      viper.GetInt("ANALYTICS_HIGHLIGHTS_LIMIT"),
			WalkingSpeedMps:      viper.GetFloat64("ANALYTICS_WALKING_SPEED_MPS"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	applyDefaults(cfg)

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Overpass.Endpoint == "" {
		cfg.Overpass.Endpoint = "https://overpass-api.de/api/interpreter"
	}
	if cfg.Overpass.RequestTimeout == 0 {
		cfg.Overpass.RequestTimeout = 10 * time.Second
	}
	if cfg.OSRM.Endpoint == "" {
		cfg.OSRM.Endpoint = "https://router.project-osrm.org"
	}
	if cfg.OSRM.RequestTimeout == 0 {
		cfg.OSRM.RequestTimeout = 5 * time.Second
	}
	if cfg.Nominatim.Endpoint == "" {
		cfg.Nominatim.Endpoint = "https://nominatim.openstreetmap.org"
	}
	if cfg.Nominatim.UserAgent == "" {
		cfg.Nominatim.UserAgent = "location-insights/1.0"
	}
	if cfg.Nominatim.RequestTimeout == 0 {
		cfg.Nominatim.RequestTimeout = 5 * time.Second
	}
	if cfg.Cache.LivabilityTTL == 0 {
		cfg.Cache.LivabilityTTL = 5 * time.Minute
	}
	if cfg.Cache.CommuteTTL == 0 {
		cfg.Cache.CommuteTTL = 2 * time.Minute
	}
	if cfg.Cache.ExploreTTL == 0 {
		cfg.Cache.ExploreTTL = 5 * time.Minute
	}
	if cfg.Analytics.DefaultRadius == 0 {
		cfg.Analytics.DefaultRadius = 1000
	}
	if cfg.Analytics.MaxRadius == 0 {
		cfg.Analytics.MaxRadius = 10000
	}
	if cfg.Analytics.MaxConcurrentQueries == 0 {
		cfg.Analytics.MaxConcurrentQueries = 8
	}
	if cfg.Analytics.HighlightsLimit == 0 {
		cfg.Analytics.HighlightsLimit = 10
	}
	if cfg.Analytics.WalkingSpeedMps == 0 {
		cfg.Analytics.WalkingSpeedMps = 1.39
	}
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
