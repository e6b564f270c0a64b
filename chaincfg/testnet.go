package chaincfg

import (
	"math"
	"math/big"
	"time"

	"github.com/rony4d/go-bytz-params/chaincfg/llmq"
)

var testGenesisHash = newHashFromStr("0000065432f43b3efb23bd0f63fe33d00d02a5f36233fe1b982c08274d58ef12")

// testPrefixes are shared by test, devnet and regtest.
// pubkey addresses start with 'T'
var testPrefixes = AddressPrefixes{
	PubKeyHash:   66,
	ScriptHash:   9,
	SecretKey:    144,
	ExtPublicKey: [4]byte{0x3A, 0x80, 0x61, 0xA0},
	ExtSecretKey: [4]byte{0x3A, 0x80, 0x58, 0x37},
}

// TestNetParams returns the parameters of the public test network.
func TestNetParams() (*Params, error) {
	block, err := baseGenesis(TestNet, 1524496461, 846737, 0x1e0ffff0, testGenesisHash)
	if err != nil {
		return nil, err
	}

	const v17 = 826130
	timeSlot := 15 * time.Second

	p := &Params{
		Name: TestNet,
		Consensus: ConsensusParams{
			GenesisHash: block.BlockHash(),

			SubsidyHalvingInterval: 210240,

			MasternodePaymentsStartBlock:     4010,
			MasternodePaymentsIncreaseBlock:  4030,
			MasternodePaymentsIncreasePeriod: 10,
			MasternodeMinimumConfirmations:   1,

			InstantSendConfirmationsRequired: 2,
			InstantSendKeepLock:              6,

			BudgetPaymentsStartBlock:   4200,
			BudgetPaymentsCycleBlocks:  144,
			BudgetPaymentsWindowBlocks: 64,
			SuperblockStartBlock:       math.MaxInt32, // must stay above BudgetPaymentsStartBlock
			SuperblockCycle:            24,            // hourly
			GovernanceMinQuorum:        1,
			GovernanceFilterElements:   500,

			V17DeploymentHeight: v17,
			BIP34Height:         1,
			BIP34Hash:           newHashFromStr("0000065432f43b3efb23bd0f63fe33d00d02a5f36233fe1b982c08274d58ef12"),
			BIP65Height:         v17,
			BIP66Height:         1,
			CSVHeight:           v17,
			BIP147Height:        v17,
			DIP0001Height:       v17,
			DIP0003Height:       v17,
			DIP0008Height:       v17,

			PowLimit:          new(big.Int).Set(mainPowLimit),
			PowTargetTimespan: 24 * time.Hour,
			PowTargetSpacing:  time.Minute,

			PosStartHeight:        201,
			BlockTimeProtocolV2:   v17,
			PosLimit:              new(big.Int).Set(mainPosLimit),
			PosLimitV2:            new(big.Int).Set(mainPowLimit),
			TimeSlotLength:        timeSlot,
			PosTargetSpacing:      time.Minute,
			PosTargetTimespan:     40 * time.Minute,
			PosTargetTimespanV2:   2 * timeSlot * 60,
			StakeMinDepth:         100,
			StakeMinAge:           time.Hour,
			BlockStakeModifierV1A: 51197,
			BlockStakeModifierV2:  826130,

			CarbonOffsetAddress:             "TqqiV3twXTaD5pL4vrA3nZqT8d8BPbxM3e",
			AccruedCarbonOffsetStartHeight:  831200,
			AccruedCarbonOffsetWindow:       100,
			ATPStartHeight:                  v17,
			AddressPrefix:                   "bytztest",
			TokenManagementKey:              "TsdKwqnDKEN3N38QG5hTQBNJe6y1mdECy8",
			OpGroupNewRequiredConfirmations: 1,

			CoinbaseMaturity: 15,

			ZerocoinRequiredStakeDepth: 200,
			ZerocoinStartHeight:        25,
			ZerocoinStartTime:          1524496462,
			BlockZerocoinV2:            60,
			PublicZCSpends:             math.MaxInt32,
			FakeSerialBlockheightEnd:   -1,
			MintRequiredConfirmations:  20,
			RequiredAccumulation:       1,
			ZerocoinModulusDigits:      zerocoinModulus,

			RuleChangeActivationThreshold: 1512, // 75% for testchains
			MinerConfirmationWindow:       2016,
			Deployments: [DefinedDeployments]Deployment{
				DeploymentTestDummy: {
					Bit:       25,
					StartTime: 1199145601, // January 1, 2008
					Timeout:   1230767999, // December 31, 2008
				},
			},

			MinimumChainWork: new(big.Int),
			AssumeValid:      newHashFromStr("0x0000009303aeadf8cf3812f5c869691dbd4cb118ad20e9bf553be434bafe6a52"), // 470000

			LLMQs:               quorums(llmq.TypeTestV17, llmq.Type20_60, llmq.Type40_60, llmq.Type40_85, llmq.Type20_70),
			LLMQTypeChainLocks:  llmq.Type20_60,
			LLMQTypeInstantSend: llmq.Type20_60,
			LLMQTypePlatform:    llmq.Type20_70,
		},

		MessageStart:     [4]byte{0x81, 0xbb, 0x9f, 0x83},
		DefaultPort:      47415,
		PruneAfterHeight: 1000,
		DNSSeeds: []string{
			"testnet.seeder1.bytz.gg", // US1
			"testnet.seeder2.bytz.gg", // EU1
			"testnet.seeder3.bytz.gg", // ASIA1 (Singapore)
			"testnet.seeder4.bytz.gg", // AUSTRALIA1 (Sydney)
		},

		Prefixes:    testPrefixes,
		ExtCoinType: 1,

		Checkpoints: []Checkpoint{
			{0, newHashFromStr("0000065432f43b3efb23bd0f63fe33d00d02a5f36233fe1b982c08274d58ef12")},
		},
		ChainTxData: ChainTxData{
			Time:    1530893198, // block 387900
			TxCount: 4404,
			TxRate:  0.01,
		},

		GenesisBlock: block,

		DefaultConsistencyChecks:        false,
		RequireStandard:                 false,
		RequireRoutableExternalIP:       true,
		MineBlocksOnDemand:              false,
		AllowMultipleAddressesFromGroup: false,
		AllowMultiplePorts:              true,
		LLMQConnectionRetryTimeout:      60,
		PoolMinParticipants:             2,
		PoolMaxParticipants:             20,
		FulfilledRequestExpireTime:      5 * 60,
		SporkAddresses:                  []string{"TozWRrxnKYpshJw5PhAaP7gHzTLDFhKCnr"},
		MinSporkKeys:                    1,
		BIP9CheckMasternodesUpgraded:    true,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}
