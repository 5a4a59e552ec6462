package server

import (
	"fmt"
	"net/url"
	"time"
)

// ServerConfig is the runtime configuration of taskhived.
//
// It is read from a YAML file (mounted from a ConfigMap, usually).
// Passwords may also come from environment variables injected by a
// Secret; see Load.
type ServerConfig struct {
	// port the API server listens on.
	ServerPort string `yaml:"port"`

	// directory of static frontend assets. empty = do not serve any.
	WebRoot string `yaml:"webRoot"`

	Database DatabaseConfig `yaml:"database"`
	Cache    CacheConfig    `yaml:"cache"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
}

// URI builds the connection string for the database.
func (d DatabaseConfig) URI() string {
	u := &url.URL{
		Scheme: "postgres",
		Host:   fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:   d.Name,
	}
	if d.User != "" {
		if d.Password != "" {
			u.User = url.UserPassword(d.User, d.Password)
		} else {
			u.User = url.User(d.User)
		}
	}
	return u.String()
}

type CacheConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Password string `yaml:"password"`

	// lifetime of the cached task collection, in seconds. default = 60.
	TTLSeconds int `yaml:"ttlSeconds"`
}

func (c CacheConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func (c CacheConfig) TTL() time.Duration {
	if c.TTLSeconds <= 0 {
		return 60 * time.Second
	}
	return time.Duration(c.TTLSeconds) * time.Second
}
