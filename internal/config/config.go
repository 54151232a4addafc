package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Database struct {
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
	} `yaml:"database"`

	// Fabric holds everything needed to reach the gateway peer: identity
	// material, endpoint, and the per-call deadlines of the ledger client.
	Fabric struct {
		MSPID         string `yaml:"msp_id" env:"MSP_ID"`
		ChannelName   string `yaml:"channel_name" env:"CHANNEL_NAME"`
		ChaincodeName string `yaml:"chaincode_name" env:"CHAINCODE_NAME"`
		PeerEndpoint  string `yaml:"peer_endpoint" env:"PEER_ENDPOINT"`
		GatewayPeer   string `yaml:"gateway_peer" env:"GATEWAY_PEER"`
		TLSCertPath   string `yaml:"tls_cert_path" env:"TLS_CERT_PATH"`
		CertPath      string `yaml:"cert_path" env:"CERT_PATH"`
		KeyDirPath    string `yaml:"key_dir_path" env:"KEY_DIR_PATH"`

		EvaluateTimeout     string `yaml:"evaluate_timeout" env:"FABRIC_EVALUATE_TIMEOUT"`
		EndorseTimeout      string `yaml:"endorse_timeout" env:"FABRIC_ENDORSE_TIMEOUT"`
		SubmitTimeout       string `yaml:"submit_timeout" env:"FABRIC_SUBMIT_TIMEOUT"`
		CommitStatusTimeout string `yaml:"commit_status_timeout" env:"FABRIC_COMMIT_STATUS_TIMEOUT"`
	} `yaml:"fabric"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// Config file is optional; env vars can carry everything.
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := processStructFields(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration. The Fabric paths
// default to the fabric-samples test network layout.
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "bureau"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 5
	config.Database.MaxOpenConns = 20
	config.Database.ConnMaxLifetime = "1h"

	config.Fabric.MSPID = "Org1MSP"
	config.Fabric.ChannelName = "mychannel"
	config.Fabric.ChaincodeName = "diploma"
	config.Fabric.PeerEndpoint = "localhost:7051"
	config.Fabric.GatewayPeer = "peer0.org1.example.com"
	cryptoPath := "../fabric-samples/test-network/organizations/peerOrganizations/org1.example.com"
	config.Fabric.TLSCertPath = cryptoPath + "/peers/peer0.org1.example.com/tls/ca.crt"
	config.Fabric.CertPath = cryptoPath + "/users/User1@org1.example.com/msp/signcerts/cert.pem"
	config.Fabric.KeyDirPath = cryptoPath + "/users/User1@org1.example.com/msp/keystore"
	config.Fabric.EvaluateTimeout = "5s"
	config.Fabric.EndorseTimeout = "15s"
	config.Fabric.SubmitTimeout = "5s"
	config.Fabric.CommitStatusTimeout = "1m"

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if config.Fabric.MSPID == "" {
		return fmt.Errorf("fabric MSP ID is required")
	}
	if config.Fabric.ChannelName == "" {
		return fmt.Errorf("fabric channel name is required")
	}
	if config.Fabric.ChaincodeName == "" {
		return fmt.Errorf("fabric chaincode name is required")
	}

	for name, value := range map[string]string{
		"evaluate_timeout":      config.Fabric.EvaluateTimeout,
		"endorse_timeout":       config.Fabric.EndorseTimeout,
		"submit_timeout":        config.Fabric.SubmitTimeout,
		"commit_status_timeout": config.Fabric.CommitStatusTimeout,
	} {
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid fabric %s: %w", name, err)
		}
	}

	if _, err := time.ParseDuration(config.Database.ConnMaxLifetime); err != nil {
		return fmt.Errorf("invalid database conn_max_lifetime: %w", err)
	}

	return nil
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}

// FabricTimeout parses one of the validated fabric timeout strings.
func FabricTimeout(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 5 * time.Second
	}
	return d
}
