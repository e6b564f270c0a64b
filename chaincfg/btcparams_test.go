package chaincfg

import (
	"testing"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBtcParamsAddresses(t *testing.T) {
	main := mustNew(t, MainNet)
	test := mustNew(t, TestNet)
	dev := mustNew(t, DevNet, ConstructOnly())
	reg := mustNew(t, RegTest)

	tests := []struct {
		name   string
		params *Params
		addr   string
		script bool
	}{
		{"main spork", main, main.SporkAddresses[0], false},
		{"main carbon offset", main, main.Consensus.CarbonOffsetAddress, true},
		{"main token key", main, main.Consensus.TokenManagementKey, false},
		{"test spork", test, test.SporkAddresses[0], false},
		{"test carbon offset", test, test.Consensus.CarbonOffsetAddress, false},
		{"test token key", test, test.Consensus.TokenManagementKey, false},
		{"devnet spork", dev, dev.SporkAddresses[0], false},
		{"regtest spork", reg, reg.SporkAddresses[0], false},
		{"regtest token key", reg, reg.Consensus.TokenManagementKey, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bp := tt.params.BtcParams()
			addr, err := btcutil.DecodeAddress(tt.addr, bp)
			require.NoError(t, err)
			assert.True(t, addr.IsForNet(bp))
			assert.Equal(t, tt.addr, addr.EncodeAddress())

			if tt.script {
				assert.IsType(t, &btcutil.AddressScriptHash{}, addr)
			} else {
				assert.IsType(t, &btcutil.AddressPubKeyHash{}, addr)
			}
		})
	}
}

func TestBtcParamsMainNet(t *testing.T) {
	p := mustNew(t, MainNet)
	bp := p.BtcParams()

	assert.Equal(t, "main", bp.Name)
	assert.Equal(t, wire.BitcoinNet(0x81b5eaa3), bp.Net)
	assert.Equal(t, "37415", bp.DefaultPort)
	require.Len(t, bp.DNSSeeds, 2)
	assert.Equal(t, "main.seeder1.bytz.gg", bp.DNSSeeds[0].Host)

	assert.Equal(t, mainHash, bp.GenesisHash.String())
	assert.Equal(t, mainHash, bp.GenesisBlock.BlockHash().String())
	assert.Equal(t, uint32(0x1e0fffff), bp.PowLimitBits)
	assert.Equal(t, 0, bp.PowLimit.Cmp(p.Consensus.PowLimit))
	assert.Equal(t, uint16(100), bp.CoinbaseMaturity)
	assert.Equal(t, int32(210240), bp.SubsidyReductionInterval)
	assert.False(t, bp.ReduceMinDifficulty)
	assert.False(t, bp.RelayNonStdTxs)
	assert.Equal(t, "bytz", bp.Bech32HRPSegwit)
	assert.Equal(t, uint32(416), bp.HDCoinType)
	assert.Equal(t, [4]byte{0x02, 0x2D, 0x25, 0x33}, bp.HDPublicKeyID)

	require.Len(t, bp.Checkpoints, len(p.Checkpoints))
	last := bp.Checkpoints[len(bp.Checkpoints)-1]
	assert.Equal(t, int32(1733710), last.Height)
	assert.Equal(t, p.Checkpoints[len(p.Checkpoints)-1].Hash, *last.Hash)

	assert.Equal(t, uint32(1916), bp.RuleChangeActivationThreshold)
	assert.Equal(t, uint32(2016), bp.MinerConfirmationWindow)

	// the export is a copy
	bp.PowLimit.SetInt64(1)
	bp.GenesisBlock.Header.Nonce = 0
	*bp.Checkpoints[0].Hash = [32]byte{}
	assert.Equal(t, mainHash, p.GenesisBlock.BlockHash().String())
	assert.Equal(t, mainHash, p.Checkpoints[0].Hash.String())
	assert.NotEqual(t, int64(1), p.Consensus.PowLimit.Int64())
}

func TestBtcParamsRegTest(t *testing.T) {
	bp := mustNew(t, RegTest).BtcParams()

	assert.True(t, bp.PoWNoRetargeting)
	assert.True(t, bp.ReduceMinDifficulty)
	assert.True(t, bp.GenerateSupported)
	assert.True(t, bp.RelayNonStdTxs)
	assert.Empty(t, bp.DNSSeeds)
	assert.Equal(t, "47526", bp.DefaultPort)
	assert.Equal(t, uint32(0x207fffff), bp.PowLimitBits)
}
