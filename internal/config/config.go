package config

import (
	"os"
	"strings"

	"github.com/go-yaml/yaml"
)

type Config struct {
	Site    Site    `yaml:"site"`
	Server  Server  `yaml:"server"`
	Storage Storage `yaml:"storage"`
	SMTP    SMTP    `yaml:"smtp"`
	Auth    Auth    `yaml:"auth"`
}

type Site struct {
	// BaseURL is the canonical public origin, e.g. https://deliciosaph.com.
	// Share links and card URLs are built against it.
	BaseURL string `yaml:"baseUrl"`
	// FontURL points at the decorative serif TTF fetched at render time.
	FontURL string `yaml:"fontUrl"`
}

type Server struct {
	Listen        string `yaml:"listen"`
	PostgresDsn   string `yaml:"postgresDsn"`
	RedisAddr     string `yaml:"redisAddr"`
	RedisPassword string `yaml:"redisPassword"`
	RedisDB       int    `yaml:"redisDB"`
	EnableTrace   bool   `yaml:"enableTrace"`
	TraceEndpoint string `yaml:"traceEndpoint"`
}

type Storage struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"accessKey"`
	SecretKey string `yaml:"secretKey"`
	Bucket    string `yaml:"bucket"`
	UseSSL    bool   `yaml:"useSSL"`
	// PublicBaseURL is the origin serving uploaded objects, e.g. a CDN.
	// When empty, URLs are derived from the endpoint and bucket.
	PublicBaseURL string `yaml:"publicBaseUrl"`
}

type SMTP struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	// To receives inquiry notifications (the café's own inbox).
	To string `yaml:"to"`
}

type Auth struct {
	JWTSecret  string `yaml:"jwtSecret"`
	SessionTTL int    `yaml:"sessionTTLMinutes"`
}

func Load(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	var config Config
	err = yaml.NewDecoder(file).Decode(&config)
	if err != nil {
		return Config{}, err
	}

	if config.Server.Listen == "" {
		config.Server.Listen = ":8000"
	}
	if config.Auth.SessionTTL == 0 {
		config.Auth.SessionTTL = 12 * 60
	}
	config.Site.BaseURL = strings.TrimRight(config.Site.BaseURL, "/")
	config.Storage.PublicBaseURL = strings.TrimRight(config.Storage.PublicBaseURL, "/")

	return config, nil
}
