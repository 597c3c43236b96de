// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package evm

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/holiman/uint256"
	"github.com/luxfi/crypto"
	"github.com/luxfi/geth/common"
	"github.com/luxfi/geth/common/hexutil"
	"github.com/luxfi/geth/core/types"
	"github.com/luxfi/geth/ethclient"
	"github.com/luxfi/geth/rpc"
	"github.com/luxfi/ids"
	"github.com/luxfi/log"

	"github.com/luxfi/greeter/config"
	"github.com/luxfi/greeter/utils"
)

const (
	defaultRPCTimeout = 10 * time.Second

	// Gas limit for the origin-side dispatch transaction. This pays for the
	// relayer contract's bookkeeping, not for destination-side execution;
	// the destination budget travels inside the call as a parameter.
	dispatchTxGasLimit = 500_000
)

// Client talks to a delivery-relayer contract over an EVM JSON-RPC endpoint.
// It implements greeter.RelayService: quotes are read-only eth_calls and
// dispatches are signed transactions carrying the quoted cost as value.
type Client struct {
	log                log.Logger
	rpcClient          *rpc.Client
	ethClient          *ethclient.Client
	relayer            common.Address
	key                *ecdsa.PrivateKey
	sender             common.Address
	evmChainID         *big.Int
	txInclusionTimeout time.Duration

	// Synchronizes nonce access so transactions go out in nonce order.
	nonceLock    sync.Mutex
	currentNonce uint64
}

// NewClient dials the configured RPC endpoint and prepares a relay client
// signing with the configured account key.
func NewClient(ctx context.Context, logger log.Logger, cfg *config.Config) (*Client, error) {
	rpcClient, err := rpc.DialContext(ctx, cfg.RPCEndpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to dial rpc endpoint: %w", err)
	}
	ethClient := ethclient.NewClient(rpcClient)

	chainID, err := ethClient.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get chain ID: %w", err)
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.AccountPrivateKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse account private key: %w", err)
	}
	sender := common.Address(crypto.PubkeyToAddress(key.PublicKey))

	// Use the pending nonce so restarts behind long-pending txs pick up
	// where the mempool left off.
	nonce, err := ethClient.PendingNonceAt(ctx, sender)
	if err != nil {
		return nil, fmt.Errorf("failed to get pending nonce: %w", err)
	}

	logger.Info(
		"initialized relay client",
		log.String("evmChainID", chainID.String()),
		log.Stringer("relayer", cfg.RelayerContract()),
		log.Stringer("sender", sender),
		log.Uint64("pendingNonce", nonce),
	)

	return &Client{
		log:                logger,
		rpcClient:          rpcClient,
		ethClient:          ethClient,
		relayer:            cfg.RelayerContract(),
		key:                key,
		sender:             sender,
		evmChainID:         chainID,
		txInclusionTimeout: time.Duration(cfg.TxInclusionTimeoutSeconds) * time.Second,
		currentNonce:       nonce,
	}, nil
}

// SenderAddress returns the dispatching account's address.
func (c *Client) SenderAddress() common.Address {
	return c.sender
}

// QuoteDeliveryPrice performs a read-only call against the relayer contract's
// pricing method and returns the quoted cost and unused-gas refund rate.
func (c *Client) QuoteDeliveryPrice(
	ctx context.Context,
	targetDomain uint16,
	receiverValue *uint256.Int,
	gasLimit uint64,
) (*uint256.Int, *uint256.Int, error) {
	callCtx, cancel := context.WithTimeout(ctx, defaultRPCTimeout)
	defer cancel()

	data := packQuoteCall(targetDomain, receiverValue, gasLimit)
	var result hexutil.Bytes
	err := c.rpcClient.CallContext(callCtx, &result, "eth_call", map[string]interface{}{
		"to":    c.relayer,
		"input": hexutil.Bytes(data),
	}, "latest")
	if err != nil {
		return nil, nil, fmt.Errorf("pricing call failed: %w", err)
	}
	return unpackQuoteResult(result)
}

// Dispatch submits a signed transaction invoking the relayer contract's send
// method, forwarding value as payment. It blocks until the transaction is
// included and returns the transaction hash as the delivery ID.
func (c *Client) Dispatch(
	ctx context.Context,
	value *uint256.Int,
	targetDomain uint16,
	target common.Address,
	payload []byte,
	receiverValue *uint256.Int,
	gasLimit uint64,
) (ids.ID, error) {
	callData := packDispatchCall(targetDomain, target, payload, receiverValue, gasLimit)

	gasPriceCtx, cancel := context.WithTimeout(ctx, defaultRPCTimeout)
	gasPrice, err := c.ethClient.SuggestGasPrice(gasPriceCtx)
	cancel()
	if err != nil {
		return ids.Empty, fmt.Errorf("failed to get gas price: %w", err)
	}

	c.nonceLock.Lock()
	tx := types.NewTx(&types.LegacyTx{
		Nonce:    c.currentNonce,
		GasPrice: gasPrice,
		Gas:      dispatchTxGasLimit,
		To:       &c.relayer,
		Value:    value.ToBig(),
		Data:     callData,
	})
	signedTx, err := types.SignTx(tx, types.LatestSignerForChainID(c.evmChainID), c.key)
	if err != nil {
		c.nonceLock.Unlock()
		return ids.Empty, fmt.Errorf("failed to sign transaction: %w", err)
	}

	sendCtx, cancel := context.WithTimeout(ctx, defaultRPCTimeout)
	err = c.ethClient.SendTransaction(sendCtx, signedTx)
	cancel()
	if err != nil {
		c.nonceLock.Unlock()
		return ids.Empty, fmt.Errorf("failed to send transaction: %w", err)
	}
	c.currentNonce++
	c.nonceLock.Unlock()

	txHash := signedTx.Hash()
	c.log.Info(
		"sent dispatch transaction",
		log.Stringer("txID", txHash),
		log.Uint16("targetDomain", targetDomain),
		log.String("value", value.String()),
	)

	if err := c.waitForReceipt(txHash); err != nil {
		return ids.Empty, err
	}
	return ids.ID(txHash), nil
}

func (c *Client) waitForReceipt(txHash common.Hash) error {
	var receipt *types.Receipt
	operation := func() (err error) {
		callCtx, cancel := context.WithTimeout(context.Background(), defaultRPCTimeout)
		defer cancel()
		receipt, err = c.ethClient.TransactionReceipt(callCtx, txHash)
		return err
	}
	if err := utils.WithRetriesTimeout(c.log, operation, c.txInclusionTimeout, "waitForReceipt"); err != nil {
		return fmt.Errorf("failed to get transaction receipt: %w", err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return fmt.Errorf("dispatch transaction %s reverted with status %d", txHash, receipt.Status)
	}
	return nil
}
