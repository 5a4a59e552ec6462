package server

import (
	"os"

	"gopkg.in/yaml.v3"
)

// names of environment variables overriding passwords in the config
// file. In Kubernetes these are injected from a Secret, so the file
// from the ConfigMap can stay free of credentials.
const (
	EnvDBPassword    = "TASKHIVE_DB_PASSWORD"
	EnvCachePassword = "TASKHIVE_CACHE_PASSWORD"
)

func LoadServerConfig(filepath string) (*ServerConfig, error) {
	content, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}
	conf, err := Unmarshal(content)
	if err != nil {
		return nil, err
	}

	if p := os.Getenv(EnvDBPassword); p != "" {
		conf.Database.Password = p
	}
	if p := os.Getenv(EnvCachePassword); p != "" {
		conf.Cache.Password = p
	}

	return conf, nil
}

func Unmarshal(conf []byte) (*ServerConfig, error) {
	var out ServerConfig
	err := yaml.Unmarshal(conf, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
