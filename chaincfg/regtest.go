package chaincfg

import (
	"math"
	"math/big"
	"time"

	"github.com/rony4d/go-bytz-params/chaincfg/llmq"
)

// RegTestParams returns the parameters of the local regression test network.
// Blocks are mined on demand and nothing retargets.
func RegTestParams() (*Params, error) {
	block, err := baseGenesis(RegTest, 1524496461, 12351, 0x207fffff, devGenesisHash)
	if err != nil {
		return nil, err
	}

	const (
		v17      = 300
		posStart = 201
	)
	timeSlot := 15 * time.Second

	p := &Params{
		Name: RegTest,
		Consensus: ConsensusParams{
			GenesisHash: block.BlockHash(),

			SubsidyHalvingInterval: 150,

			MasternodePaymentsStartBlock:     240,
			MasternodePaymentsIncreaseBlock:  350,
			MasternodePaymentsIncreasePeriod: 10,
			MasternodeMinimumConfirmations:   1,

			InstantSendConfirmationsRequired: 2,
			InstantSendKeepLock:              6,

			BudgetPaymentsStartBlock:   1000,
			BudgetPaymentsCycleBlocks:  50,
			BudgetPaymentsWindowBlocks: 10,
			SuperblockStartBlock:       1500,
			SuperblockCycle:            10,
			GovernanceMinQuorum:        1,
			GovernanceFilterElements:   100,

			V17DeploymentHeight: v17,
			// far in the future so v1 blocks are not rejected in tests
			BIP34Height:   100000000,
			BIP65Height:   v17,
			BIP66Height:   1251,
			CSVHeight:     v17,
			BIP147Height:  v17,
			DIP0001Height: 2000,
			DIP0003Height: 210,
			DIP0008Height: 432,

			PowLimit:                    new(big.Int).Set(devPowLimit),
			PowTargetTimespan:           24 * time.Hour,
			PowTargetSpacing:            150 * time.Second,
			PowAllowMinDifficultyBlocks: true,
			PowNoRetargeting:            true,

			PosStartHeight:        posStart,
			BlockTimeProtocolV2:   v17,
			PosLimit:              new(big.Int).Set(devPowLimit),
			PosLimitV2:            new(big.Int).Set(devPowLimit),
			TimeSlotLength:        timeSlot,
			PosTargetSpacing:      time.Minute,
			PosTargetTimespan:     40 * time.Minute,
			PosTargetTimespanV2:   2 * timeSlot * 60,
			StakeMinDepth:         1,
			StakeMinAge:           0,
			BlockStakeModifierV1A: posStart,
			BlockStakeModifierV2:  v17,

			CarbonOffsetAddress:             "TqMgq4qkw7bGxf6CDhtDfEqzEtWD5C7x8U",
			AccruedCarbonOffsetStartHeight:  v17 + 30,
			AccruedCarbonOffsetWindow:       10,
			ATPStartHeight:                  v17,
			AddressPrefix:                   "bytzreg",
			TokenManagementKey:              "TqMgq4qkw7bGxf6CDhtDfEqzEtWD5C7x8U",
			OpGroupNewRequiredConfirmations: 1,

			CoinbaseMaturity: 15,

			ZerocoinRequiredStakeDepth: 200,
			ZerocoinStartHeight:        math.MaxInt32,
			ZerocoinStartTime:          math.MaxInt32,
			BlockZerocoinV2:            math.MaxInt32,
			PublicZCSpends:             math.MaxInt32,
			FakeSerialBlockheightEnd:   -1,
			MintRequiredConfirmations:  20,
			RequiredAccumulation:       1,
			ZerocoinModulusDigits:      zerocoinModulus,

			RuleChangeActivationThreshold: 108, // 75% for testchains
			MinerConfirmationWindow:       144, // faster than normal for regtest
			Deployments: [DefinedDeployments]Deployment{
				DeploymentTestDummy: {
					Bit:       25,
					StartTime: 0,
					Timeout:   999999999999,
				},
			},

			MinimumChainWork: new(big.Int),

			LLMQs:               quorums(llmq.TypeTest, llmq.TypeTestV17),
			LLMQTypeChainLocks:  llmq.TypeTest,
			LLMQTypeInstantSend: llmq.TypeTest,
			LLMQTypePlatform:    llmq.TypeTest,
		},

		MessageStart:     [4]byte{0xb2, 0x8f, 0xa3, 0xcc},
		DefaultPort:      47526,
		PruneAfterHeight: 1000,

		Prefixes:    testPrefixes,
		ExtCoinType: 1,

		Checkpoints: []Checkpoint{
			{0, devCheckpointZero},
		},

		GenesisBlock: block,

		DefaultConsistencyChecks:        true,
		RequireStandard:                 false,
		RequireRoutableExternalIP:       false,
		MineBlocksOnDemand:              true,
		AllowMultipleAddressesFromGroup: true,
		AllowMultiplePorts:              true,
		// must stay below the signing session timeout so tests control failures
		LLMQConnectionRetryTimeout: 1,
		PoolMinParticipants:        2,
		PoolMaxParticipants:        20,
		FulfilledRequestExpireTime: 5 * 60,
		SporkAddresses:             []string{"TqMgq4qkw7bGxf6CDhtDfEqzEtWD5C7x8U"},
		MinSporkKeys:               1,
		// most regtest setups run without masternodes
		BIP9CheckMasternodesUpgraded: false,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}
