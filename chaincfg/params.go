// Package chaincfg defines the consensus parameters of the four Bytz networks
// (main, test, devnet and regtest) and the registry that hands exactly one of
// them to the rest of the node.
//
// This package provides:
//   - Params and ConsensusParams, the per-network parameter bundle
//   - MainNetParams, TestNetParams, DevNetParams and RegTestParams, which
//     build a bundle from compiled-in constants and verify its genesis block
//   - Builder, the pre-freeze phase where test harnesses override values
//   - Registry, the process-wide holder of the selected network
//
// A Params value handed out by a frozen Registry is shared between all
// readers and must not be modified. Use Copy to derive a modified profile.
package chaincfg

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/Fantom-foundation/lachesis-base/inter/idx"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/rony4d/go-bytz-params/chaincfg/cfgerr"
	"github.com/rony4d/go-bytz-params/chaincfg/genesis"
	"github.com/rony4d/go-bytz-params/chaincfg/llmq"
)

// Network identifiers accepted by New and Registry.Select.
const (
	MainNet = "main"
	TestNet = "test"
	DevNet  = "devnet"
	RegTest = "regtest"
)

// Error aliases so callers need not import cfgerr.
type (
	ConfigurationError = cfgerr.ConfigurationError
	ConsistencyError   = cfgerr.ConsistencyError
	ExhaustionError    = cfgerr.ExhaustionError
)

// AddressPrefixes holds the version bytes the address encoders put in front
// of a payload.
type AddressPrefixes struct {
	PubKeyHash   byte    `json:"pubKeyHash"`
	ScriptHash   byte    `json:"scriptHash"`
	SecretKey    byte    `json:"secretKey"`
	ExtPublicKey [4]byte `json:"extPublicKey"`
	ExtSecretKey [4]byte `json:"extSecretKey"`
}

// Checkpoint pins the hash of the block at Height.
type Checkpoint struct {
	Height idx.Block      `json:"height"`
	Hash   chainhash.Hash `json:"hash"`
}

// ChainTxData is the transaction count at a known point of the chain, used to
// estimate verification progress.
type ChainTxData struct {
	// Time is the unix timestamp of the last known transaction count.
	Time int64 `json:"time"`
	// TxCount is the number of transactions between genesis and Time.
	TxCount int64 `json:"txCount"`
	// TxRate is the estimated number of transactions per second after Time.
	TxRate float64 `json:"txRate"`
}

// Params is the complete parameter bundle of one network.
type Params struct {
	Name      string          `json:"name"`
	Consensus ConsensusParams `json:"consensus"`

	// MessageStart prefixes every p2p message. The bytes are rarely used
	// upper ASCII, not valid as UTF-8, and give a large 32-bit integer at
	// any alignment.
	MessageStart     [4]byte   `json:"-"`
	DefaultPort      uint16    `json:"defaultPort"`
	PruneAfterHeight idx.Block `json:"pruneAfterHeight"`
	DNSSeeds         []string  `json:"dnsSeeds"`

	Prefixes    AddressPrefixes `json:"prefixes"`
	ExtCoinType uint32          `json:"extCoinType"`

	// Checkpoints ordered from oldest to newest.
	Checkpoints []Checkpoint `json:"checkpoints"`
	ChainTxData ChainTxData  `json:"chainTxData"`

	GenesisBlock *wire.MsgBlock `json:"-"`
	// DevnetName is the full devnet name ("devnet" or "devnet-<name>"),
	// empty on other networks.
	DevnetName         string         `json:"devnetName,omitempty"`
	DevnetGenesisBlock *wire.MsgBlock `json:"-"`

	// Node policy
	DefaultConsistencyChecks        bool     `json:"defaultConsistencyChecks"`
	RequireStandard                 bool     `json:"requireStandard"`
	RequireRoutableExternalIP       bool     `json:"requireRoutableExternalIP"`
	MineBlocksOnDemand              bool     `json:"mineBlocksOnDemand"`
	AllowMultipleAddressesFromGroup bool     `json:"allowMultipleAddressesFromGroup"`
	AllowMultiplePorts              bool     `json:"allowMultiplePorts"`
	LLMQConnectionRetryTimeout      int64    `json:"llmqConnectionRetryTimeout"` // seconds
	PoolMinParticipants             int      `json:"poolMinParticipants"`
	PoolMaxParticipants             int      `json:"poolMaxParticipants"`
	FulfilledRequestExpireTime      int64    `json:"fulfilledRequestExpireTime"` // seconds
	SporkAddresses                  []string `json:"sporkAddresses"`
	MinSporkKeys                    int      `json:"minSporkKeys"`
	BIP9CheckMasternodesUpgraded    bool     `json:"bip9CheckMasternodesUpgraded"`
}

// Option tunes network construction.
type Option func(*options)

type options struct {
	devnetName    string
	constructOnly bool
}

// WithDevnetName names the devnet. The full name becomes "devnet-<name>",
// or just "devnet" when name is empty.
func WithDevnetName(name string) Option {
	return func(o *options) { o.devnetName = name }
}

// ConstructOnly skips the devnet genesis nonce search. It is meant for
// inspecting defaults (help output) without mining.
func ConstructOnly() Option {
	return func(o *options) { o.constructOnly = true }
}

// New builds the parameters of a network by identifier.
func New(network string, opts ...Option) (*Params, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	switch network {
	case MainNet:
		return MainNetParams()
	case TestNet:
		return TestNetParams()
	case DevNet:
		return DevNetParams(o.devnetName, o.constructOnly)
	case RegTest:
		return RegTestParams()
	default:
		return nil, &cfgerr.ConfigurationError{Network: network}
	}
}

// DevnetFullName returns the devnet name that is embedded in the devnet
// genesis coinbase.
func DevnetFullName(name string) string {
	if name == "" {
		return DevNet
	}
	return DevNet + "-" + name
}

// Checkpoint returns the pinned hash at height, if any.
func (p *Params) Checkpoint(height idx.Block) (chainhash.Hash, bool) {
	for _, cp := range p.Checkpoints {
		if cp.Height == height {
			return cp.Hash, true
		}
	}
	return chainhash.Hash{}, false
}

// LatestCheckpoint returns the highest checkpoint, or nil if there is none.
func (p *Params) LatestCheckpoint() *Checkpoint {
	if len(p.Checkpoints) == 0 {
		return nil
	}
	cp := p.Checkpoints[len(p.Checkpoints)-1]
	return &cp
}

// Validate checks the invariants that tie the tables together: quorum
// presets, role assignments and deployment bits.
func (p *Params) Validate() error {
	c := &p.Consensus
	for _, q := range c.LLMQs {
		if err := q.Validate(); err != nil {
			var cerr *cfgerr.ConsistencyError
			if errors.As(err, &cerr) {
				cerr.Network = p.Name
			}
			return err
		}
	}
	roles := []struct {
		field string
		t     llmq.Type
	}{
		{"llmqTypeChainLocks", c.LLMQTypeChainLocks},
		{"llmqTypeInstantSend", c.LLMQTypeInstantSend},
		{"llmqTypePlatform", c.LLMQTypePlatform},
	}
	for _, r := range roles {
		if _, ok := c.LLMQs[r.t]; !ok {
			return &cfgerr.ConsistencyError{
				Network:  p.Name,
				Field:    r.field,
				Expected: "a quorum type present in llmqs",
				Actual:   r.t.String(),
			}
		}
	}
	var used uint32
	for id, d := range c.Deployments {
		field := fmt.Sprintf("deployments[%s].bit", DeploymentID(id))
		if d.Bit > 31 {
			return &cfgerr.ConsistencyError{Network: p.Name, Field: field, Expected: "0..31", Actual: fmt.Sprint(d.Bit)}
		}
		if used&(1<<d.Bit) != 0 {
			return &cfgerr.ConsistencyError{Network: p.Name, Field: field, Expected: "an unused bit", Actual: fmt.Sprint(d.Bit)}
		}
		used |= 1 << d.Bit
	}
	if c.PowLimit == nil || c.PowLimit.Sign() <= 0 {
		return &cfgerr.ConsistencyError{Network: p.Name, Field: "powLimit", Expected: "a positive target", Actual: fmt.Sprint(c.PowLimit)}
	}
	return nil
}

// Copy creates a deep copy of Params. Big integers, maps, slices and blocks
// are all duplicated so the copy can be modified freely.
func (p *Params) Copy() *Params {
	cp := *p
	cp.Consensus = p.Consensus.copy()
	cp.DNSSeeds = append([]string(nil), p.DNSSeeds...)
	cp.Checkpoints = append([]Checkpoint(nil), p.Checkpoints...)
	cp.SporkAddresses = append([]string(nil), p.SporkAddresses...)
	cp.GenesisBlock = copyBlock(p.GenesisBlock)
	cp.DevnetGenesisBlock = copyBlock(p.DevnetGenesisBlock)
	return &cp
}

// String returns a JSON representation of Params for debugging and logging.
func (p *Params) String() string {
	type plain Params
	b, _ := json.Marshal(struct {
		*plain
		MessageStart hexutil.Bytes `json:"messageStart"`
	}{(*plain)(p), p.MessageStart[:]})
	return string(b)
}

func copyBlock(b *wire.MsgBlock) *wire.MsgBlock {
	if b == nil {
		return nil
	}
	cp := wire.NewMsgBlock(&b.Header)
	for _, tx := range b.Transactions {
		cp.Transactions = append(cp.Transactions, tx.Copy())
	}
	return cp
}

// The base genesis block is shared by all networks; they differ only in
// time, nonce and bits.
const genesisMessage = "Investing.com 23/Apr/2018 Facebook Gets First Downgrade Since Data Scandal"

var genesisOutputPubKey = common.FromHex("04678afdb0fe5548271967f1a67130b7105cd6a828e03909a67962e0ea1f61deb649f6bc3f4cef38c4f35504e51ec112de5c384df7ba0b8d578a4c702b6bf11d5f")

// genesisMerkleRoot is the merkle root of the shared genesis coinbase.
var genesisMerkleRoot = newHashFromStr("80290404060ff7ff5bc6a42f755d24f6087ba5685474a5c8ffafac65de8b2bbf")

// baseGenesis builds and verifies the genesis block of network.
func baseGenesis(network string, time, nonce, bits uint32, want chainhash.Hash) (*wire.MsgBlock, error) {
	block, err := genesis.NewBlock(genesis.Template{
		Message:      genesisMessage,
		OutputPubKey: genesisOutputPubKey,
		Time:         time,
		Nonce:        nonce,
		Bits:         bits,
		Version:      1,
		Reward:       0 * btcutil.SatoshiPerBitcoin,
	})
	if err != nil {
		return nil, fmt.Errorf("%s genesis: %w", network, err)
	}
	if err := genesis.Verify(network, block, want, genesisMerkleRoot); err != nil {
		return nil, err
	}
	return block, nil
}

// newHashFromStr converts the passed big-endian hex string into a
// chainhash.Hash. It only differs from the one available in chainhash in
// that it accepts a 0x prefix and panics on an error since it will only be
// called with hard-coded, and therefore known good, hashes.
func newHashFromStr(hexStr string) chainhash.Hash {
	hash, err := chainhash.NewHashFromStr(strings.TrimPrefix(hexStr, "0x"))
	if err != nil {
		panic(err)
	}
	return *hash
}

// newBigFromHex parses a hard-coded big-endian hex number, panicking on
// error for the same reason as newHashFromStr.
func newBigFromHex(hexStr string) *big.Int {
	n, ok := new(big.Int).SetString(strings.TrimPrefix(hexStr, "0x"), 16)
	if !ok {
		panic(fmt.Sprintf("invalid hex number %q", hexStr))
	}
	return n
}
