package genesis

import (
	"encoding/hex"
	"errors"
	"math/big"
	"testing"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rony4d/go-bytz-params/chaincfg/cfgerr"
)

const (
	testMessage = "Investing.com 23/Apr/2018 Facebook Gets First Downgrade Since Data Scandal"
	testPubKey  = "04678afdb0fe5548271967f1a67130b7105cd6a828e03909a67962e0ea1f61deb649f6bc3f4cef38c4f35504e51ec112de5c384df7ba0b8d578a4c702b6bf11d5f"

	mainHash    = "00000feb03167c4a4fa9f2bafcaea0e9f7e5646330e13c69e7ffa2dce58ace44"
	testnetHash = "0000065432f43b3efb23bd0f63fe33d00d02a5f36233fe1b982c08274d58ef12"
	regtestHash = "618435c615f3d628acf97c19c4b3e6320555c62f515d4144425e4e8b7610fbab"
	merkleRoot  = "80290404060ff7ff5bc6a42f755d24f6087ba5685474a5c8ffafac65de8b2bbf"

	devnet1Hash   = "7376ba75392aa145880d86a501e3e5fd4fc4faf7d296a1a7b8021f8cab3157eb"
	devnet1Merkle = "e6c4eef804e105b4815655cd7a260544fc827fd52b715527c1f12731a93178a9"
)

func mustHash(t *testing.T, s string) chainhash.Hash {
	t.Helper()
	h, err := chainhash.NewHashFromStr(s)
	require.NoError(t, err)
	return *h
}

func template(t *testing.T, nonce, bits uint32) Template {
	t.Helper()
	pk, err := hex.DecodeString(testPubKey)
	require.NoError(t, err)
	return Template{
		Message:      testMessage,
		OutputPubKey: pk,
		Time:         1524496461,
		Nonce:        nonce,
		Bits:         bits,
		Version:      1,
		Reward:       0,
	}
}

func TestCoinbaseScript(t *testing.T) {
	script, err := CoinbaseScript([]byte(testMessage))
	require.NoError(t, err)

	// push4 ffff001d, push1 04, push74 <message>
	want := "04ffff001d01044a" + hex.EncodeToString([]byte(testMessage))
	assert.Equal(t, want, hex.EncodeToString(script))
}

func TestDevnetCoinbaseScript(t *testing.T) {
	script, err := DevnetCoinbaseScript("devnet1")
	require.NoError(t, err)
	assert.Equal(t, "5107"+hex.EncodeToString([]byte("devnet1")), hex.EncodeToString(script))
}

// TestBaseGenesis pins the three base genesis blocks. They share the coinbase
// and therefore the merkle root.
func TestBaseGenesis(t *testing.T) {
	tests := []struct {
		name  string
		nonce uint32
		bits  uint32
		hash  string
	}{
		{"main", 67657104, 0x1e0ffff0, mainHash},
		{"test", 846737, 0x1e0ffff0, testnetHash},
		{"regtest", 12351, 0x207fffff, regtestHash},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			block, err := NewBlock(template(t, tt.nonce, tt.bits))
			require.NoError(t, err)

			assert.Equal(t, merkleRoot, block.Header.MerkleRoot.String())
			assert.Equal(t, tt.hash, block.BlockHash().String())
			assert.True(t, block.Header.PrevBlock.IsEqual(&chainhash.Hash{}))
			require.Len(t, block.Transactions, 1)
			assert.True(t, MeetsTarget(block.BlockHash(), tt.bits))

			require.NoError(t, Verify(tt.name, block, mustHash(t, tt.hash), mustHash(t, merkleRoot)))
		})
	}
}

func TestNewBlockDeterministic(t *testing.T) {
	a, err := NewBlock(template(t, 67657104, 0x1e0ffff0))
	require.NoError(t, err)
	b, err := NewBlock(template(t, 67657104, 0x1e0ffff0))
	require.NoError(t, err)
	assert.Equal(t, a.BlockHash(), b.BlockHash())
	assert.Equal(t, a.Header, b.Header)
}

func TestVerifyMismatch(t *testing.T) {
	block, err := NewBlock(template(t, 67657104, 0x1e0ffff0))
	require.NoError(t, err)

	err = Verify("main", block, mustHash(t, testnetHash), mustHash(t, merkleRoot))
	var cerr *cfgerr.ConsistencyError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, "genesis hash", cerr.Field)
	assert.Equal(t, testnetHash, cerr.Expected)
	assert.Equal(t, mainHash, cerr.Actual)
	assert.Contains(t, err.Error(), "main")

	err = Verify("main", block, mustHash(t, mainHash), mustHash(t, devnet1Merkle))
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, "genesis merkle root", cerr.Field)
}

func TestFindDevnetBlock(t *testing.T) {
	base, err := NewBlock(template(t, 12351, 0x207fffff))
	require.NoError(t, err)

	block, err := findDevnetBlock(base, "devnet1", 0, 100000)
	require.NoError(t, err)

	assert.Equal(t, uint32(1), block.Header.Nonce)
	assert.Equal(t, devnet1Hash, block.BlockHash().String())
	assert.Equal(t, devnet1Merkle, block.Header.MerkleRoot.String())
	assert.Equal(t, base.BlockHash(), block.Header.PrevBlock)
	assert.Equal(t, base.Header.Timestamp.Unix()+1, block.Header.Timestamp.Unix())
	assert.Equal(t, base.Header.Bits, block.Header.Bits)
	assert.EqualValues(t, DevnetBlockVersion, block.Header.Version)
	assert.Equal(t, []byte{txscript.OP_RETURN}, block.Transactions[0].TxOut[0].PkScript)
	assert.True(t, MeetsTarget(block.BlockHash(), block.Header.Bits))

	full, err := FindDevnetBlock(base, "devnet1", 0)
	require.NoError(t, err)
	assert.Equal(t, block.BlockHash(), full.BlockHash())
}

func TestFindDevnetBlockEmptyName(t *testing.T) {
	base, err := NewBlock(template(t, 12351, 0x207fffff))
	require.NoError(t, err)

	// A zero limit would also fail, so a non-nil block or an exhaustion error
	// here would mean the name was not checked first.
	block, err := findDevnetBlock(base, "", 0, 0)
	assert.Nil(t, block)
	assert.True(t, errors.Is(err, ErrEmptyDevnetName))

	_, err = NewDevnetBlock(base.BlockHash(), "", 0, 0, base.Header.Bits, 0)
	assert.True(t, errors.Is(err, ErrEmptyDevnetName))
}

func TestFindDevnetBlockExhausted(t *testing.T) {
	base, err := NewBlock(template(t, 12351, 0x207fffff))
	require.NoError(t, err)
	// a zero target cannot be met
	base.Header.Bits = 0x01000000

	_, err = findDevnetBlock(base, "devnet1", 0, 64)
	var eerr *cfgerr.ExhaustionError
	require.True(t, errors.As(err, &eerr))
	assert.Equal(t, "devnet1", eerr.DevnetName)
	assert.Equal(t, uint64(64), eerr.Attempts)
}

func TestTarget(t *testing.T) {
	// ~uint256(0) >> 1 truncated to the compact mantissa
	regtest := new(big.Int).Lsh(big.NewInt(0x7fffff), 8*(0x20-3))
	assert.Equal(t, 0, regtest.Cmp(Target(0x207fffff)))

	main := new(big.Int).Lsh(big.NewInt(0x0ffff0), 8*(0x1e-3))
	assert.Equal(t, 0, main.Cmp(Target(0x1e0ffff0)))
}
