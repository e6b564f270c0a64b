package chaincfg

import (
	"fmt"
	"math/big"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/rony4d/go-bytz-params/chaincfg/llmq"
)

// ConsensusParams holds every consensus-affecting constant of a network.
//
// Heights are block heights. A height of math.MaxInt32 means "never".
type ConsensusParams struct {
	GenesisHash chainhash.Hash `json:"genesisHash"`
	// DevnetGenesisHash is the hash of the named devnet block chained on the
	// genesis block. Zero on every other network and on devnets built
	// without the nonce search.
	DevnetGenesisHash chainhash.Hash `json:"devnetGenesisHash"`

	SubsidyHalvingInterval int32 `json:"subsidyHalvingInterval"`

	// Masternode payments
	MasternodePaymentsStartBlock     int32 `json:"masternodePaymentsStartBlock"`
	MasternodePaymentsIncreaseBlock  int32 `json:"masternodePaymentsIncreaseBlock"`
	MasternodePaymentsIncreasePeriod int32 `json:"masternodePaymentsIncreasePeriod"`
	MasternodeMinimumConfirmations   int32 `json:"masternodeMinimumConfirmations"`

	InstantSendConfirmationsRequired int32 `json:"instantSendConfirmationsRequired"`
	InstantSendKeepLock              int32 `json:"instantSendKeepLock"`

	// Budget, superblocks and governance
	BudgetPaymentsStartBlock   int32          `json:"budgetPaymentsStartBlock"`
	BudgetPaymentsCycleBlocks  int32          `json:"budgetPaymentsCycleBlocks"`
	BudgetPaymentsWindowBlocks int32          `json:"budgetPaymentsWindowBlocks"`
	SuperblockStartBlock       int32          `json:"superblockStartBlock"`
	SuperblockStartHash        chainhash.Hash `json:"superblockStartHash"`
	SuperblockCycle            int32          `json:"superblockCycle"`
	GovernanceMinQuorum        int32          `json:"governanceMinQuorum"`
	GovernanceFilterElements   int32          `json:"governanceFilterElements"`

	// Activation heights
	V17DeploymentHeight int32          `json:"v17DeploymentHeight"`
	BIP34Height         int32          `json:"bip34Height"`
	BIP34Hash           chainhash.Hash `json:"bip34Hash"`
	BIP65Height         int32          `json:"bip65Height"`
	BIP66Height         int32          `json:"bip66Height"`
	CSVHeight           int32          `json:"csvHeight"`
	BIP147Height        int32          `json:"bip147Height"`
	DIP0001Height       int32          `json:"dip0001Height"`
	DIP0003Height       int32          `json:"dip0003Height"`
	// DIP0003EnforcementHeight is kept for the deterministic masternode list
	// enforcement switch. No network sets it; only UpdateDIP3Parameters does.
	DIP0003EnforcementHeight *int32         `json:"dip0003EnforcementHeight,omitempty"`
	DIP0003EnforcementHash   chainhash.Hash `json:"dip0003EnforcementHash"`
	DIP0008Height            int32          `json:"dip0008Height"`

	// Proof of work
	PowLimit                    *big.Int      `json:"powLimit"`
	PowTargetTimespan           time.Duration `json:"powTargetTimespan"`
	PowTargetSpacing            time.Duration `json:"powTargetSpacing"`
	PowAllowMinDifficultyBlocks bool          `json:"powAllowMinDifficultyBlocks"`
	PowNoRetargeting            bool          `json:"powNoRetargeting"`

	// Proof of stake
	PosStartHeight        int32         `json:"posStartHeight"`
	BlockTimeProtocolV2   int32         `json:"blockTimeProtocolV2"`
	PosLimit              *big.Int      `json:"posLimit"`
	PosLimitV2            *big.Int      `json:"posLimitV2"`
	TimeSlotLength        time.Duration `json:"timeSlotLength"`
	PosTargetSpacing      time.Duration `json:"posTargetSpacing"`
	PosTargetTimespan     time.Duration `json:"posTargetTimespan"`
	PosTargetTimespanV2   time.Duration `json:"posTargetTimespanV2"`
	StakeMinDepth         int32         `json:"stakeMinDepth"`
	StakeMinAge           time.Duration `json:"stakeMinAge"`
	BlockStakeModifierV1A int32         `json:"blockStakeModifierV1A"`
	BlockStakeModifierV2  int32         `json:"blockStakeModifierV2"`

	// Carbon offset and token (ATP) parameters
	CarbonOffsetAddress             string `json:"carbonOffsetAddress"`
	AccruedCarbonOffsetStartHeight  int32  `json:"accruedCarbonOffsetStartHeight"`
	AccruedCarbonOffsetWindow       int32  `json:"accruedCarbonOffsetWindow"`
	ATPStartHeight                  int32  `json:"atpStartHeight"`
	AddressPrefix                   string `json:"addressPrefix"`
	TokenManagementKey              string `json:"tokenManagementKey"`
	OpGroupNewRequiredConfirmations int32  `json:"opGroupNewRequiredConfirmations"`

	CoinbaseMaturity int32 `json:"coinbaseMaturity"`

	// Zerocoin
	ZerocoinRequiredStakeDepth int32 `json:"zerocoinRequiredStakeDepth"`
	ZerocoinStartHeight        int32 `json:"zerocoinStartHeight"`
	ZerocoinStartTime          int64 `json:"zerocoinStartTime"`
	BlockZerocoinV2            int32 `json:"blockZerocoinV2"`
	PublicZCSpends             int32 `json:"publicZCSpends"`
	FakeSerialBlockheightEnd   int32 `json:"fakeSerialBlockheightEnd"`
	MintRequiredConfirmations  int32 `json:"mintRequiredConfirmations"`
	RequiredAccumulation       int32 `json:"requiredAccumulation"`
	// ZerocoinModulusDigits is the RSA-2048 accumulator modulus as a digit
	// string. See ZerocoinModulus for how it is read.
	ZerocoinModulusDigits string `json:"zerocoinModulus"`

	// Version bits
	RuleChangeActivationThreshold uint32                         `json:"ruleChangeActivationThreshold"`
	MinerConfirmationWindow       uint32                         `json:"minerConfirmationWindow"`
	Deployments                   [DefinedDeployments]Deployment `json:"deployments"`

	MinimumChainWork *big.Int       `json:"minimumChainWork"`
	AssumeValid      chainhash.Hash `json:"assumeValid"`

	// Devnet tuning, zero unless overridden
	MinimumDifficultyBlocks int32 `json:"minimumDifficultyBlocks"`
	HighSubsidyBlocks       int32 `json:"highSubsidyBlocks"`
	HighSubsidyFactor       int32 `json:"highSubsidyFactor"`

	// Long living quorums
	LLMQs               map[llmq.Type]llmq.Params `json:"llmqs"`
	LLMQTypeChainLocks  llmq.Type                 `json:"llmqTypeChainLocks"`
	LLMQTypeInstantSend llmq.Type                 `json:"llmqTypeInstantSend"`
	LLMQTypePlatform    llmq.Type                 `json:"llmqTypePlatform"`
}

// Deployment returns the deployment registered under id.
func (c *ConsensusParams) Deployment(id DeploymentID) (Deployment, bool) {
	if id < 0 || id >= DefinedDeployments {
		return Deployment{}, false
	}
	return c.Deployments[id], true
}

// LLMQ returns the quorum parameters of type t, if the network runs it.
func (c *ConsensusParams) LLMQ(t llmq.Type) (llmq.Params, bool) {
	p, ok := c.LLMQs[t]
	return p, ok
}

// ZerocoinModulus parses the accumulator modulus. The first protocol version
// read the digit string as hexadecimal, later versions read it as decimal;
// both readings are consensus relevant.
func (c *ConsensusParams) ZerocoinModulus(v1 bool) (*big.Int, error) {
	base := 10
	if v1 {
		base = 16
	}
	n, ok := new(big.Int).SetString(c.ZerocoinModulusDigits, base)
	if !ok {
		return nil, fmt.Errorf("invalid zerocoin modulus (base %d)", base)
	}
	return n, nil
}

func (c *ConsensusParams) copy() ConsensusParams {
	cp := *c
	cp.PowLimit = copyBig(c.PowLimit)
	cp.PosLimit = copyBig(c.PosLimit)
	cp.PosLimitV2 = copyBig(c.PosLimitV2)
	cp.MinimumChainWork = copyBig(c.MinimumChainWork)
	if c.DIP0003EnforcementHeight != nil {
		h := *c.DIP0003EnforcementHeight
		cp.DIP0003EnforcementHeight = &h
	}
	cp.LLMQs = make(map[llmq.Type]llmq.Params, len(c.LLMQs))
	for t, p := range c.LLMQs {
		cp.LLMQs[t] = p
	}
	return cp
}

func copyBig(n *big.Int) *big.Int {
	if n == nil {
		return nil
	}
	return new(big.Int).Set(n)
}

// quorums builds a network quorum table from catalog presets.
func quorums(types ...llmq.Type) map[llmq.Type]llmq.Params {
	m := make(map[llmq.Type]llmq.Params, len(types))
	for _, t := range types {
		m[t] = llmq.MustPreset(t)
	}
	return m
}
