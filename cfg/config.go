package cfg

import (
	"starchain/chain"

	"fmt"
	"io/ioutil"
	"github.com/BurntSushi/toml"
)

type Config struct {
	BaseConfig

	Chain *chain.ChainParams
	Audit *AuditConfig
}

type BaseConfig struct {
	ChainId string

	LogLevel string
}

// AuditConfig controls the node's periodic ValidateChain run.
type AuditConfig struct {
	// Seconds between runs; 0 disables auditing.
	Interval int
}

func DefaultBaseConfig() BaseConfig {
	return BaseConfig{
		ChainId: "starchain",
		LogLevel: "info",
	}
}

func DefaultAuditConfig() *AuditConfig {
	return &AuditConfig{
		Interval: 60,
	}
}

func DefaultConfig() *Config {
	config := &Config{}
	config.BaseConfig = DefaultBaseConfig()
	config.Chain = chain.DefaultChainParams()
	config.Audit = DefaultAuditConfig()
	return config
}

func (c *Config) Validate() error {
	if c.ChainId == "" {
		return fmt.Errorf("ChainId must not be empty")
	}
	if c.Chain == nil {
		return fmt.Errorf("missing [Chain] section")
	}
	if err := c.Chain.Validate(); err != nil {
		return err
	}
	if c.Audit != nil && c.Audit.Interval < 0 {
		return fmt.Errorf("Audit.Interval must not be negative. Got %d", c.Audit.Interval)
	}
	return nil
}

// DecodeConfig parses TOML over the defaults, so omitted keys keep
// their default values.
func DecodeConfig(data string) (*Config, error) {
	config := DefaultConfig()
	_, err := toml.Decode(data, config)
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func LoadConfig(pathname string) (*Config, error) {
	bz, err := ioutil.ReadFile(pathname)
	if err != nil {
		return nil, err
	}
	return DecodeConfig(string(bz))
}

func ResetTestRoot() *Config {
	config := DefaultConfig()
	config.ChainId = "test-chain"
	config.Audit.Interval = 0
	return config
}
