package evm

import (
	"encoding/hex"
	"testing"

	"github.com/holiman/uint256"
	"github.com/luxfi/geth/common"
	"github.com/stretchr/testify/require"
)

func TestSelectors(t *testing.T) {
	require := require.New(t)

	// 4-byte keccak selectors, distinct per method.
	require.Len(selector(quoteSig), 4)
	require.Len(selector(dispatchSig), 4)
	require.NotEqual(selector(quoteSig), selector(dispatchSig))
	require.Equal(selector(quoteSig), selector(quoteSig))
}

func TestPackQuoteCall(t *testing.T) {
	require := require.New(t)

	data := packQuoteCall(5, uint256.NewInt(0), 50_000)
	require.Len(data, 4+3*32)
	require.Equal(selector(quoteSig), data[:4])

	// targetDomain = 5
	require.Equal(byte(5), data[4+31])
	// receiverValue = 0
	require.Equal(make([]byte, 32), data[4+32:4+64])
	// gasLimit = 50000 = 0xc350
	require.Equal(byte(0xc3), data[4+64+30])
	require.Equal(byte(0x50), data[4+64+31])
}

func TestUnpackQuoteResult(t *testing.T) {
	require := require.New(t)

	result := make([]byte, 64)
	result[31] = 0x7b // cost = 123
	result[63] = 0x02 // refund rate = 2

	cost, refund, err := unpackQuoteResult(result)
	require.NoError(err)
	require.Equal(uint256.NewInt(123), cost)
	require.Equal(uint256.NewInt(2), refund)

	_, _, err = unpackQuoteResult(result[:63])
	require.Error(err)
}

func TestPackDispatchCall(t *testing.T) {
	require := require.New(t)

	target := common.HexToAddress("0x00000000000000000000000000000000000000bb")
	payload := []byte("hello")
	data := packDispatchCall(7, target, payload, uint256.NewInt(0), 50_000)

	require.Equal(selector(dispatchSig), data[:4])
	args := data[4:]

	// Head: domain, target, payload offset, receiverValue, gasLimit.
	require.Equal(byte(7), args[31])
	require.Equal(common.LeftPadBytes(target.Bytes(), 32), args[32:64])
	require.Equal(byte(5*32), args[64+31])
	require.Equal(make([]byte, 32), args[96:128])
	require.Equal(byte(0xc3), args[128+30])
	require.Equal(byte(0x50), args[128+31])

	// Tail: length-prefixed payload padded to a word boundary.
	require.Equal(byte(len(payload)), args[160+31])
	require.Equal("68656c6c6f", hex.EncodeToString(args[192:197]))
	require.Equal(make([]byte, 27), args[197:224])
	require.Len(args, 224)
}
