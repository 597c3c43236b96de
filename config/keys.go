// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

const (
	// Command line option keys
	ConfigFileKey = "config-file"
	VersionKey    = "version"
	HelpKey       = "help"

	// Top-level configuration keys
	LogLevelKey              = "log-level"
	RPCEndpointKey           = "rpc-endpoint"
	RelayerContractKey       = "relayer-contract-address"
	AccountPrivateKeyKey     = "account-private-key"
	ReplayGuardSizeKey       = "replay-guard-size"
	TxInclusionTimeoutSecKey = "tx-inclusion-timeout-seconds"
)
