// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"errors"
	"fmt"

	"github.com/luxfi/geth/common"
	"github.com/spf13/viper"
)

const (
	defaultLogLevel              = "info"
	defaultReplayGuardSize       = 0 // disabled; the relay owns anti-replay
	defaultTxInclusionTimeoutSec = 30
)

var errInvalidConfig = errors.New("invalid config")

// Config holds the immutable settings for a greeting relay client.
type Config struct {
	LogLevel string `mapstructure:"log-level" json:"log-level"`

	// RPCEndpoint is the origin-domain RPC the client dispatches through.
	RPCEndpoint string `mapstructure:"rpc-endpoint" json:"rpc-endpoint"`

	// RelayerContractAddress is the relay service's identity. Deliveries from
	// any other caller are rejected, and dispatches are sent to it.
	RelayerContractAddress string `mapstructure:"relayer-contract-address" json:"relayer-contract-address"`

	// AccountPrivateKey signs dispatch transactions.
	AccountPrivateKey string `mapstructure:"account-private-key" json:"account-private-key"`

	// ReplayGuardSize, when positive, bounds a client-side set of seen
	// delivery hashes. Zero disables the guard.
	ReplayGuardSize int `mapstructure:"replay-guard-size" json:"replay-guard-size"`

	TxInclusionTimeoutSeconds uint64 `mapstructure:"tx-inclusion-timeout-seconds" json:"tx-inclusion-timeout-seconds"`
}

// NewConfig builds and validates a Config from the viper instance.
func NewConfig(v *viper.Viper) (Config, error) {
	cfg, err := BuildConfig(v)
	if err != nil {
		return cfg, err
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("failed to validate configuration: %w", err)
	}
	return cfg, nil
}

// BuildConfig unmarshals a Config without validating it.
func BuildConfig(v *viper.Viper) (Config, error) {
	SetDefaultConfigValues(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal viper config: %w", err)
	}
	return cfg, nil
}

// SetDefaultConfigValues sets the default values for optional keys.
func SetDefaultConfigValues(v *viper.Viper) {
	v.SetDefault(LogLevelKey, defaultLogLevel)
	v.SetDefault(ReplayGuardSizeKey, defaultReplayGuardSize)
	v.SetDefault(TxInclusionTimeoutSecKey, defaultTxInclusionTimeoutSec)
}

// Validate checks the configured values.
func (c *Config) Validate() error {
	if c.RPCEndpoint == "" {
		return fmt.Errorf("%w: rpc-endpoint not set", errInvalidConfig)
	}
	if !common.IsHexAddress(c.RelayerContractAddress) {
		return fmt.Errorf("%w: relayer-contract-address is not a valid address", errInvalidConfig)
	}
	if c.RelayerContract() == (common.Address{}) {
		return fmt.Errorf("%w: relayer-contract-address is zero", errInvalidConfig)
	}
	if c.AccountPrivateKey == "" {
		return fmt.Errorf("%w: account-private-key not set", errInvalidConfig)
	}
	if c.ReplayGuardSize < 0 {
		return fmt.Errorf("%w: replay-guard-size is negative", errInvalidConfig)
	}
	return nil
}

// RelayerContract returns the relay service identity as an address.
func (c *Config) RelayerContract() common.Address {
	return common.HexToAddress(c.RelayerContractAddress)
}
