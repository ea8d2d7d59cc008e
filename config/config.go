// config/config.go
package config

import (
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Configuration stores all the configurations
type Configuration struct {
	Server        ServerConfiguration        `mapstructure:"server"`
	Auth0         Auth0Configuration         `mapstructure:"auth0"`
	Session       SessionConfiguration       `mapstructure:"session"`
	Redis         RedisConfiguration         `mapstructure:"redis"`
	RateLimit     RateLimitConfiguration     `mapstructure:"rate_limit"`
	Elasticsearch ElasticsearchConfiguration `mapstructure:"elasticsearch"`
	Log           LogConfiguration           `mapstructure:"log"`
}

// ServerConfiguration stores the port and other web server settings
type ServerConfiguration struct {
	Port            string        `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Auth0Configuration holds the tenant and machine-to-machine client used for
// the Management API, plus the audience user sessions are issued for.
type Auth0Configuration struct {
	Domain                   string        `mapstructure:"domain"`
	M2MClientID              string        `mapstructure:"m2m_client_id"`
	M2MClientSecret          string        `mapstructure:"m2m_client_secret"`
	ManagementAudience       string        `mapstructure:"management_audience"`
	APIAudience              string        `mapstructure:"api_audience"`
	APIScope                 string        `mapstructure:"api_scope"`
	PasswordConnectionID     string        `mapstructure:"password_connection_id"`
	PasswordResetRedirectURL string        `mapstructure:"password_reset_redirect_url"`
	RequestTimeout           time.Duration `mapstructure:"request_timeout"`
}

type SessionConfiguration struct {
	CookieName string `mapstructure:"cookie_name"`
}

// RedisConfiguration stores data for Redis connection
type RedisConfiguration struct {
	Enabled       bool   `mapstructure:"enabled"`
	Addr          string `mapstructure:"addr"`
	Password      string `mapstructure:"password"`
	DB            int    `mapstructure:"db"`
	EncryptionKey string `mapstructure:"encryption_key"`
}

type RateLimitConfiguration struct {
	Enabled  bool          `mapstructure:"enabled"`
	Requests int           `mapstructure:"requests"`
	Per      time.Duration `mapstructure:"per"`
}

// ElasticsearchConfiguration stores data for Elasticsearch connection
type ElasticsearchConfiguration struct {
	URL   string `mapstructure:"url"`
	Index string `mapstructure:"index"`
}

type LogConfiguration struct {
	Dir   string `mapstructure:"dir"`
	Level string `mapstructure:"level"`
}

// Keys that have no default but must still be picked up from the
// environment when the config file is absent.
var envKeys = []string{
	"auth0.domain",
	"auth0.m2m_client_id",
	"auth0.m2m_client_secret",
	"auth0.management_audience",
	"auth0.api_audience",
	"auth0.password_connection_id",
	"auth0.password_reset_redirect_url",
	"redis.password",
	"redis.encryption_key",
	"elasticsearch.url",
	"log.level",
}

// RequiredAuth0Keys are the settings the Management API gateway cannot run
// without, keyed by the environment variable that provides them.
var RequiredAuth0Keys = map[string]string{
	"AUTH0_DOMAIN":            "auth0.domain",
	"AUTH0_M2M_CLIENT_ID":     "auth0.m2m_client_id",
	"AUTH0_M2M_CLIENT_SECRET": "auth0.m2m_client_secret",
}

var config *Configuration

func InitConfig() error {
	viper.AddConfigPath("config")
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	for _, key := range envKeys {
		if err := viper.BindEnv(key); err != nil {
			return err
		}
	}

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.mode", "release")
	viper.SetDefault("server.shutdown_timeout", "5s")
	viper.SetDefault("auth0.api_scope", "openid profile email")
	viper.SetDefault("auth0.request_timeout", "10s")
	viper.SetDefault("session.cookie_name", "access_token")
	viper.SetDefault("redis.enabled", false)
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("rate_limit.enabled", false)
	viper.SetDefault("rate_limit.requests", 100)
	viper.SetDefault("rate_limit.per", "1m")
	viper.SetDefault("elasticsearch.index", "idconsole-audit")
	viper.SetDefault("log.dir", "logging")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("No config file found. Using default settings and environment variables.")
		} else {
			return err
		}
	}

	return viper.Unmarshal(&config)
}

// GetConfig returns the loaded configuration
func GetConfig() *Configuration {
	return config
}

// ManagementAPIAudience returns the configured audience for Management API
// tokens, defaulting to the tenant's v2 API identifier.
func (c Auth0Configuration) ManagementAPIAudience() string {
	if c.ManagementAudience != "" {
		return c.ManagementAudience
	}
	return fmt.Sprintf("https://%s/api/v2/", c.Domain)
}

// MissingAuth0Settings lists the environment variables of required Auth0
// settings that are currently empty.
func MissingAuth0Settings() []string {
	var missing []string
	for env, key := range RequiredAuth0Keys {
		if viper.GetString(key) == "" {
			missing = append(missing, env)
		}
	}
	sort.Strings(missing)
	return missing
}
