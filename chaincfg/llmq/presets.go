package llmq

var catalog = map[Type]Params{
	// test only
	TypeTest: {
		Type:      TypeTest,
		Name:      "llmq_test",
		Size:      3,
		MinSize:   2,
		Threshold: 2,

		DKGInterval:          30, // one DKG every 30 minutes
		DKGPhaseBlocks:       3,
		DKGMiningWindowStart: 15, // DKGPhaseBlocks * 5 = after finalization
		DKGMiningWindowEnd:   27,
		DKGBadVotesThreshold: 2,

		SigningActiveQuorumCount: 2, // just a few to allow easier testing

		KeepOldConnections: 3,
		RecoveryMembers:    3,
	},

	// test only
	TypeTestV17: {
		Type:      TypeTestV17,
		Name:      "llmq_test_v17",
		Size:      3,
		MinSize:   2,
		Threshold: 2,

		DKGInterval:          30,
		DKGPhaseBlocks:       3,
		DKGMiningWindowStart: 15,
		DKGMiningWindowEnd:   27,
		DKGBadVotesThreshold: 2,

		SigningActiveQuorumCount: 2,

		KeepOldConnections: 3,
		RecoveryMembers:    3,
	},

	// devnets only
	TypeDevnet: {
		Type:      TypeDevnet,
		Name:      "llmq_devnet",
		Size:      10,
		MinSize:   7,
		Threshold: 6,

		DKGInterval:          30,
		DKGPhaseBlocks:       3,
		DKGMiningWindowStart: 15,
		DKGMiningWindowEnd:   27,
		DKGBadVotesThreshold: 7,

		SigningActiveQuorumCount: 3,

		KeepOldConnections: 4,
		RecoveryMembers:    6,
	},

	Type20_60: {
		Type:      Type20_60,
		Name:      "llmq_20_60",
		Size:      20,
		MinSize:   16,
		Threshold: 12,

		DKGInterval:          60, // one DKG per hour
		DKGPhaseBlocks:       4,
		DKGMiningWindowStart: 20,
		DKGMiningWindowEnd:   32,
		DKGBadVotesThreshold: 14,

		SigningActiveQuorumCount: 24, // a full day worth of LLMQs

		KeepOldConnections: 25,
		RecoveryMembers:    12,
	},

	Type40_60: {
		Type:      Type40_60,
		Name:      "llmq_40_60",
		Size:      40,
		MinSize:   30,
		Threshold: 24,

		DKGInterval:          60 * 12, // one DKG every 12 hours
		DKGPhaseBlocks:       6,
		DKGMiningWindowStart: 30,
		DKGMiningWindowEnd:   42,
		DKGBadVotesThreshold: 30,

		SigningActiveQuorumCount: 4, // two days worth of LLMQs

		KeepOldConnections: 5,
		RecoveryMembers:    20,
	},

	// deployment and min-proto-version signalling, needs a higher threshold
	Type40_85: {
		Type:      Type40_85,
		Name:      "llmq_40_85",
		Size:      40,
		MinSize:   35,
		Threshold: 34,

		DKGInterval:          60 * 24, // one DKG every 24 hours
		DKGPhaseBlocks:       6,
		DKGMiningWindowStart: 30,
		DKGMiningWindowEnd:   60, // larger mining window to make sure it is mined
		DKGBadVotesThreshold: 30,

		SigningActiveQuorumCount: 4, // four days worth of LLMQs

		KeepOldConnections: 5,
		RecoveryMembers:    20,
	},

	// platform
	Type20_70: {
		Type:      Type20_70,
		Name:      "llmq_20_70",
		Size:      20,
		MinSize:   16,
		Threshold: 14,

		DKGInterval:          60,
		DKGPhaseBlocks:       4,
		DKGMiningWindowStart: 20,
		DKGMiningWindowEnd:   32,
		DKGBadVotesThreshold: 14,

		SigningActiveQuorumCount: 24,

		KeepOldConnections: 25,
		RecoveryMembers:    50,
	},
}
