package chaincfg

import (
	"encoding/binary"
	"strconv"
	"time"

	"github.com/btcsuite/btcd/blockchain"
	btcchaincfg "github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/wire"
)

// BtcParams exports the profile in the shape btcd and btcutil consume, so
// address encoding, header checks and checkpoint lookups can reuse them.
//
// Only the test dummy deployment is mapped; the btcd-specific deployments
// (csv, segwit, taproot) are left unset because activation of those rules is
// height based here. The result is a copy and may be modified freely.
func (p *Params) BtcParams() *btcchaincfg.Params {
	c := &p.Consensus

	seeds := make([]btcchaincfg.DNSSeed, 0, len(p.DNSSeeds))
	for _, host := range p.DNSSeeds {
		seeds = append(seeds, btcchaincfg.DNSSeed{Host: host})
	}

	checkpoints := make([]btcchaincfg.Checkpoint, 0, len(p.Checkpoints))
	for _, cp := range p.Checkpoints {
		hash := cp.Hash
		checkpoints = append(checkpoints, btcchaincfg.Checkpoint{
			Height: int32(cp.Height),
			Hash:   &hash,
		})
	}

	genesisHash := c.GenesisHash
	powLimit := copyBig(c.PowLimit)

	bp := &btcchaincfg.Params{
		Name:        p.Name,
		Net:         wire.BitcoinNet(binary.LittleEndian.Uint32(p.MessageStart[:])),
		DefaultPort: strconv.Itoa(int(p.DefaultPort)),
		DNSSeeds:    seeds,

		GenesisBlock:     copyBlock(p.GenesisBlock),
		GenesisHash:      &genesisHash,
		PowLimit:         powLimit,
		PowLimitBits:     blockchain.BigToCompact(powLimit),
		PoWNoRetargeting: c.PowNoRetargeting,

		BIP0034Height: c.BIP34Height,
		BIP0065Height: c.BIP65Height,
		BIP0066Height: c.BIP66Height,

		CoinbaseMaturity:         uint16(c.CoinbaseMaturity),
		SubsidyReductionInterval: c.SubsidyHalvingInterval,
		TargetTimespan:           c.PowTargetTimespan,
		TargetTimePerBlock:       c.PowTargetSpacing,
		RetargetAdjustmentFactor: 4,
		ReduceMinDifficulty:      c.PowAllowMinDifficultyBlocks,
		GenerateSupported:        p.MineBlocksOnDemand,

		Checkpoints: checkpoints,

		RuleChangeActivationThreshold: c.RuleChangeActivationThreshold,
		MinerConfirmationWindow:       c.MinerConfirmationWindow,

		RelayNonStdTxs: !p.RequireStandard,

		Bech32HRPSegwit: c.AddressPrefix,

		PubKeyHashAddrID: p.Prefixes.PubKeyHash,
		ScriptHashAddrID: p.Prefixes.ScriptHash,
		PrivateKeyID:     p.Prefixes.SecretKey,

		HDPrivateKeyID: p.Prefixes.ExtSecretKey,
		HDPublicKeyID:  p.Prefixes.ExtPublicKey,
		HDCoinType:     p.ExtCoinType,
	}
	if c.PowAllowMinDifficultyBlocks {
		bp.MinDiffReductionTime = 2 * c.PowTargetSpacing
	}

	d := c.Deployments[DeploymentTestDummy]
	bp.Deployments[btcchaincfg.DeploymentTestDummy] = btcchaincfg.ConsensusDeployment{
		BitNumber:                 d.Bit,
		CustomActivationThreshold: uint32(d.Threshold(c, 0)),
		DeploymentStarter:         btcchaincfg.NewMedianTimeDeploymentStarter(time.Unix(d.StartTime, 0)),
		DeploymentEnder:           btcchaincfg.NewMedianTimeDeploymentEnder(time.Unix(d.Timeout, 0)),
	}
	return bp
}
