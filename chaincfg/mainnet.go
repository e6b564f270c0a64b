package chaincfg

import (
	"math"
	"math/big"
	"time"

	"github.com/rony4d/go-bytz-params/chaincfg/llmq"
)

var (
	mainGenesisHash = newHashFromStr("00000feb03167c4a4fa9f2bafcaea0e9f7e5646330e13c69e7ffa2dce58ace44")

	// ~uint256(0) >> 20
	mainPowLimit = newBigFromHex("00000fffffffffffffffffffffffffffffffffffffffffffffffffffffffffff")
	// ~uint256(0) >> 24
	mainPosLimit = newBigFromHex("000000ffffffffffffffffffffffffffffffffffffffffffffffffffffffffff")
)

// zerocoinModulus is the RSA-2048 challenge number, shared by all networks.
const zerocoinModulus = "25195908475657893494027183240048398571429282126204032027777137836043662020707595556264018525880784" +
	"4069182906412495150821892985591491761845028084891200728449926873928072877767359714183472702618963750149718246911" +
	"6507761337985909570009733045974880842840179742910064245869181719511874612151517265463228221686998754918242243363" +
	"7259085141865462043576798423387184774447920739934236584823824281198163815010674810451660377306056201619676256133" +
	"8441436038339044149526344321901146575444541784240209246165157233507787077498171257724679629263863563732899121548" +
	"31438167899885040445364023527381951378636564391212010397122822120720357"

// MainNetParams returns the parameters of the production network.
func MainNetParams() (*Params, error) {
	block, err := baseGenesis(MainNet, 1524496461, 67657104, 0x1e0ffff0, mainGenesisHash)
	if err != nil {
		return nil, err
	}

	const v17 = 1669300
	timeSlot := 15 * time.Second

	p := &Params{
		Name: MainNet,
		Consensus: ConsensusParams{
			GenesisHash: block.BlockHash(),

			// ~200700 blocks per calendar year in practice
			SubsidyHalvingInterval: 210240,

			MasternodePaymentsStartBlock:     100000, // below the increase block, good enough
			MasternodePaymentsIncreaseBlock:  158000,
			MasternodePaymentsIncreasePeriod: 576 * 30,
			MasternodeMinimumConfirmations:   15,

			InstantSendConfirmationsRequired: 6,
			InstantSendKeepLock:              24,

			BudgetPaymentsStartBlock:   math.MaxInt32,
			BudgetPaymentsCycleBlocks:  43200, // 60*24*30
			BudgetPaymentsWindowBlocks: 2880,
			SuperblockStartBlock:       math.MaxInt32,
			SuperblockCycle:            43200,
			GovernanceMinQuorum:        10,
			GovernanceFilterElements:   20000,

			V17DeploymentHeight: v17,
			BIP34Height:         1,
			BIP34Hash:           newHashFromStr("000002f68dbbf1fcfacb8f0b4e64083efdd2f07a906728ee068d573ffa5bcb4e"),
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
			StakeMinDepth:         600,
			StakeMinAge:           time.Hour,
			BlockStakeModifierV1A: 1000,
			BlockStakeModifierV2:  v17,

			CarbonOffsetAddress:             "8GDeXyYNyc1o34v8BjtS3e1ZzvLDaqXNNK",
			AccruedCarbonOffsetStartHeight:  v17,
			AccruedCarbonOffsetWindow:       1000,
			ATPStartHeight:                  v17,
			AddressPrefix:                   "bytz",
			TokenManagementKey:              "sYCxBVHJx3A1tt7B1tFnaCJGnci3hvEf2c",
			OpGroupNewRequiredConfirmations: 1,

			CoinbaseMaturity: 100,

			ZerocoinRequiredStakeDepth: 200,
			ZerocoinStartHeight:        25,
			ZerocoinStartTime:          1524496462,
			BlockZerocoinV2:            60,
			PublicZCSpends:             math.MaxInt32,
			FakeSerialBlockheightEnd:   -1,
			MintRequiredConfirmations:  20, // accumulated at 19
			RequiredAccumulation:       1,
			ZerocoinModulusDigits:      zerocoinModulus,

			RuleChangeActivationThreshold: 1916, // 95% of 2016
			MinerConfirmationWindow:       2016, // PowTargetTimespan / PowTargetSpacing
			Deployments: [DefinedDeployments]Deployment{
				DeploymentTestDummy: {
					Bit:       25,
					StartTime: 1199145601, // January 1, 2008
					Timeout:   1230767999, // December 31, 2008
				},
			},

			MinimumChainWork: newBigFromHex("0x000000000000000000000000000000000000000000000e9b67326dfc16f4713f"), // 1623262
			AssumeValid:      newHashFromStr("0x0"),

			LLMQs:               quorums(llmq.Type20_60, llmq.Type40_60, llmq.Type40_85, llmq.Type20_70),
			LLMQTypeChainLocks:  llmq.Type40_60,
			LLMQTypeInstantSend: llmq.Type20_60,
			LLMQTypePlatform:    llmq.Type20_70,
		},

		MessageStart:     [4]byte{0xa3, 0xea, 0xb5, 0x81},
		DefaultPort:      37415,
		PruneAfterHeight: 100000,
		DNSSeeds: []string{
			"main.seeder1.bytz.gg", // US1
			"main.seeder2.bytz.gg", // EU1
		},

		// pubkey addresses start with 's', script addresses with '8'
		Prefixes: AddressPrefixes{
			PubKeyHash:   125,
			ScriptHash:   18,
			SecretKey:    140,
			ExtPublicKey: [4]byte{0x02, 0x2D, 0x25, 0x33},
			ExtSecretKey: [4]byte{0x02, 0x21, 0x31, 0x2B},
		},
		ExtCoinType: 416,

		Checkpoints: []Checkpoint{
			{0, newHashFromStr("00000feb03167c4a4fa9f2bafcaea0e9f7e5646330e13c69e7ffa2dce58ace44")},       // genesis
			{1, newHashFromStr("000002f68dbbf1fcfacb8f0b4e64083efdd2f07a906728ee068d573ffa5bcb4e")},       // first mined block
			{25, newHashFromStr("0000016f6d9c834f269f07e624feb02ba725e3d954017549afde932c8f6d6dc7")},      // zerocoin enabled
			{60, newHashFromStr("00000039aca457e0dd2287e0fd636f1998e6b2774a64e8c18fa853776ec309c8")},      // zerocoin v2 enabled
			{200, newHashFromStr("000000078d815b257737d227d50e22f2486fd3ded21c5c0bca347a410c71bd26")},     // PoW to PoS switch
			{201, newHashFromStr("5542cf20a79e2658f45fc5385cc431035efae3980985254e01a08d930408bc52")},     // PoW to PoS switch
			{202, newHashFromStr("016023220b7e1578f923a126dddecbf345d8004734afb52636f60954ba116d21")},     // PoW to PoS switch
			{300, newHashFromStr("0cddd447eebbc7bd9f158bdc25eb1b290ab2b6f54ae77b07229c8da7b1999d99")},
			{700, newHashFromStr("eac3327ace445de2f39a6209b3a778d370a7e6d676c254d82e3d1c8de272559b")},     // tx=1230 time=1526558980
			{67000, newHashFromStr("727101d555687b91ed9740f3301048f3cfe5e5062babe491f2120ea7173b7234")},   // 3 premine blocks after this one
			{69713, newHashFromStr("097a4a371b031eea8d26384a15e894dc60fcb7cd8304f62ab35c760317c36e28")},   // v0.1.03
			{1623268, newHashFromStr("1a0a8a556b6d95a44f7ba8c587879197051c1652e430ee3c3f57e5c173d80d38")}, // tx=3981853 time=1624868163
			{1669299, newHashFromStr("039f15ac2d9a8e0adb7c9040428e8784782b20100185dc4949323c661617070a")}, // v0.2.0.0
			{1669300, newHashFromStr("fbfcaed9ada1df81ec70ba584576bd0128730d6e88866e93d4c4c512d82fb707")}, // v0.2.0.0
			{1733710, newHashFromStr("62257b9363e5e62207cb86539c93726ce6ba3901501d2ca992460d55193e82d7")}, // tx=4270019 time=1631277915
		},
		ChainTxData: ChainTxData{
			Time:    1631277915, // block 1733710
			TxCount: 4270019,
			TxRate:  0.044,
		},

		GenesisBlock: block,

		DefaultConsistencyChecks:        false,
		RequireStandard:                 true,
		RequireRoutableExternalIP:       true,
		MineBlocksOnDemand:              false,
		AllowMultipleAddressesFromGroup: false,
		AllowMultiplePorts:              false,
		LLMQConnectionRetryTimeout:      60,
		PoolMinParticipants:             3,
		PoolMaxParticipants:             20,
		FulfilledRequestExpireTime:      60 * 60,
		SporkAddresses:                  []string{"sYJv3DxNMecQx7Z6FuQqqLGRBFjCVVpxmN"},
		MinSporkKeys:                    1,
		BIP9CheckMasternodesUpgraded:    true,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}
