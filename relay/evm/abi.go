// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package evm

import (
	"encoding/binary"
	"fmt"

	"github.com/holiman/uint256"
	"github.com/luxfi/crypto"
	"github.com/luxfi/geth/common"
)

// Solidity method signatures on the relayer contract. The relayer quotes
// against the same execution budget the dispatch carries; callers are
// responsible for passing identical gasLimit values to both.
const (
	quoteSig    = "quoteEVMDeliveryPrice(uint16,uint256,uint256)"
	dispatchSig = "sendPayloadToEvm(uint16,address,bytes,uint256,uint256)"
)

const wordLen = 32

func selector(sig string) []byte {
	return crypto.Keccak256([]byte(sig))[:4]
}

func appendUint64Word(data []byte, v uint64) []byte {
	var word [wordLen]byte
	binary.BigEndian.PutUint64(word[wordLen-8:], v)
	return append(data, word[:]...)
}

func appendUint256Word(data []byte, v *uint256.Int) []byte {
	if v == nil {
		v = uint256.NewInt(0)
	}
	word := v.Bytes32()
	return append(data, word[:]...)
}

func appendAddressWord(data []byte, addr common.Address) []byte {
	return append(data, common.LeftPadBytes(addr.Bytes(), wordLen)...)
}

// packQuoteCall encodes quoteEVMDeliveryPrice(targetDomain, receiverValue,
// gasLimit).
func packQuoteCall(targetDomain uint16, receiverValue *uint256.Int, gasLimit uint64) []byte {
	data := selector(quoteSig)
	data = appendUint64Word(data, uint64(targetDomain))
	data = appendUint256Word(data, receiverValue)
	data = appendUint64Word(data, gasLimit)
	return data
}

// unpackQuoteResult decodes the (nativePriceQuote, refundPerGasUnused) return
// of the pricing call.
func unpackQuoteResult(result []byte) (*uint256.Int, *uint256.Int, error) {
	if len(result) < 2*wordLen {
		return nil, nil, fmt.Errorf("quote result too short: %d bytes", len(result))
	}
	cost := new(uint256.Int).SetBytes(result[:wordLen])
	refund := new(uint256.Int).SetBytes(result[wordLen : 2*wordLen])
	return cost, refund, nil
}

// packDispatchCall encodes sendPayloadToEvm(targetDomain, target, payload,
// receiverValue, gasLimit). payload is the only dynamic argument, so its head
// word is a fixed offset past the five-word head.
func packDispatchCall(
	targetDomain uint16,
	target common.Address,
	payload []byte,
	receiverValue *uint256.Int,
	gasLimit uint64,
) []byte {
	data := selector(dispatchSig)
	data = appendUint64Word(data, uint64(targetDomain))
	data = appendAddressWord(data, target)
	data = appendUint64Word(data, 5*wordLen) // offset of payload tail
	data = appendUint256Word(data, receiverValue)
	data = appendUint64Word(data, gasLimit)

	data = appendUint64Word(data, uint64(len(payload)))
	data = append(data, payload...)
	if pad := len(payload) % wordLen; pad != 0 {
		data = append(data, make([]byte, wordLen-pad)...)
	}
	return data
}
