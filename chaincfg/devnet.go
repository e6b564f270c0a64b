package chaincfg

import (
	"math"
	"math/big"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rony4d/go-bytz-params/chaincfg/genesis"
	"github.com/rony4d/go-bytz-params/chaincfg/llmq"
)

var (
	// shared by devnet and regtest
	devGenesisHash = newHashFromStr("618435c615f3d628acf97c19c4b3e6320555c62f515d4144425e4e8b7610fbab")

	// ~uint256(0) >> 1
	devPowLimit = newBigFromHex("7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff")

	// devCheckpointZero is the height 0 checkpoint devnet and regtest carry.
	// It is not the hash of their genesis block and is kept as published.
	devCheckpointZero = newHashFromStr("0x000008ca1832a4baf228eb1553c03d3a2c8e02399550dd6ea8d65cec3ef23d2e")
)

// DevNetParams returns the parameters of a developer network. Every devnet
// shares the regtest genesis block and chains a second block on it carrying
// the full devnet name, so differently named devnets never connect to each
// other.
//
// With constructOnly set the nonce search for that second block is skipped,
// leaving DevnetGenesisBlock nil.
func DevNetParams(name string, constructOnly bool) (*Params, error) {
	block, err := baseGenesis(DevNet, 1524496461, 12351, 0x207fffff, devGenesisHash)
	if err != nil {
		return nil, err
	}

	const v17 = 1
	timeSlot := 15 * time.Second

	p := &Params{
		Name: DevNet,
		Consensus: ConsensusParams{
			GenesisHash: block.BlockHash(),

			SubsidyHalvingInterval: 210240,

			MasternodePaymentsStartBlock:     4010,
			MasternodePaymentsIncreaseBlock:  4030,
			MasternodePaymentsIncreasePeriod: 10,
			MasternodeMinimumConfirmations:   1,

			InstantSendConfirmationsRequired: 2,
			InstantSendKeepLock:              6,

			BudgetPaymentsStartBlock:   4100,
			BudgetPaymentsCycleBlocks:  50,
			BudgetPaymentsWindowBlocks: 10,
			SuperblockStartBlock:       4200, // must stay above BudgetPaymentsStartBlock
			SuperblockCycle:            24,
			GovernanceMinQuorum:        1,
			GovernanceFilterElements:   500,

			// everything activates right away
			V17DeploymentHeight: v17,
			BIP34Height:         1,
			BIP65Height:         1,
			BIP66Height:         1,
			CSVHeight:           v17,
			BIP147Height:        v17,
			DIP0001Height:       2,
			DIP0003Height:       2,
			DIP0008Height:       2,

			PowLimit:                    new(big.Int).Set(devPowLimit),
			PowTargetTimespan:           24 * time.Hour,
			PowTargetSpacing:            150 * time.Second,
			PowAllowMinDifficultyBlocks: true,

			PosStartHeight:        201,
			BlockTimeProtocolV2:   v17,
			PosLimit:              new(big.Int).Set(devPowLimit),
			PosLimitV2:            new(big.Int).Set(devPowLimit),
			TimeSlotLength:        timeSlot,
			PosTargetSpacing:      time.Minute,
			PosTargetTimespan:     40 * time.Minute,
			PosTargetTimespanV2:   2 * timeSlot * 60,
			StakeMinDepth:         100,
			StakeMinAge:           time.Hour,
			BlockStakeModifierV1A: 1000,
			BlockStakeModifierV2:  v17,

			CarbonOffsetAddress:             "TkDutp66Ygp5PpPnrETvfyrtnxq5UevLpo",
			AccruedCarbonOffsetStartHeight:  v17,
			AccruedCarbonOffsetWindow:       100,
			ATPStartHeight:                  v17,
			AddressPrefix:                   "bytztest",
			TokenManagementKey:              "TkDutp66Ygp5PpPnrETvfyrtnxq5UevLpo",
			OpGroupNewRequiredConfirmations: 1,

			CoinbaseMaturity: 15,

			// no zerocoin on devnets
			ZerocoinRequiredStakeDepth: 200,
			ZerocoinStartHeight:        math.MaxInt32,
			ZerocoinStartTime:          math.MaxInt32,
			BlockZerocoinV2:            math.MaxInt32,
			PublicZCSpends:             math.MaxInt32,
			FakeSerialBlockheightEnd:   -1,
			MintRequiredConfirmations:  20,
			RequiredAccumulation:       1,
			ZerocoinModulusDigits:      zerocoinModulus,

			RuleChangeActivationThreshold: 1512,
			MinerConfirmationWindow:       2016,
			Deployments: [DefinedDeployments]Deployment{
				DeploymentTestDummy: {
					Bit:       25,
					StartTime: 1199145601,
					Timeout:   1230767999,
				},
			},

			MinimumChainWork: new(big.Int),

			LLMQs:               quorums(llmq.TypeDevnet, llmq.Type20_60, llmq.Type40_60, llmq.Type40_85, llmq.Type20_70),
			LLMQTypeChainLocks:  llmq.Type20_60,
			LLMQTypeInstantSend: llmq.Type20_60,
			LLMQTypePlatform:    llmq.Type20_70,
		},

		MessageStart:     [4]byte{0xb2, 0x8f, 0xa3, 0xcc},
		DefaultPort:      47626,
		PruneAfterHeight: 1000,

		Prefixes:    testPrefixes,
		ExtCoinType: 1,

		Checkpoints: []Checkpoint{
			{0, devCheckpointZero},
		},
		ChainTxData: ChainTxData{
			TxCount: 2, // the two coinbase transactions a devnet starts with
			TxRate:  0.01,
		},

		GenesisBlock: block,
		DevnetName:   DevnetFullName(name),

		DefaultConsistencyChecks:        false,
		RequireStandard:                 false,
		RequireRoutableExternalIP:       true,
		MineBlocksOnDemand:              false,
		AllowMultipleAddressesFromGroup: true,
		AllowMultiplePorts:              true,
		LLMQConnectionRetryTimeout:      60,
		PoolMinParticipants:             2,
		PoolMaxParticipants:             20,
		FulfilledRequestExpireTime:      5 * 60,
		SporkAddresses:                  []string{"TkDutp66Ygp5PpPnrETvfyrtnxq5Z1ub79"},
		MinSporkKeys:                    1,
		// devnets start without masternodes, there is nothing to check
		BIP9CheckMasternodesUpgraded: false,
	}

	if !constructOnly {
		child, err := genesis.FindDevnetBlock(block, p.DevnetName, 0)
		if err != nil {
			return nil, err
		}
		hash := child.BlockHash()
		p.DevnetGenesisBlock = child
		p.Consensus.DevnetGenesisHash = hash
		p.Checkpoints = append(p.Checkpoints, Checkpoint{Height: 1, Hash: hash})
		p.ChainTxData.Time = child.Header.Timestamp.Unix()

		log.WithFields(logrus.Fields{
			"devnet": p.DevnetName,
			"hash":   hash,
			"nonce":  child.Header.Nonce,
		}).Debug("Devnet genesis block ready")
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}
