package flags

import (
	"gopkg.in/urfave/cli.v1"
)

// OverrideFlags holds the consensus parameter overrides test harnesses apply
// before the parameters are handed to the node. They are refused on main and
// test.
func OverrideFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "overrides",
			Usage: "YAML file with parameter overrides",
		},
		cli.StringSliceFlag{
			Name:  "vbparams",
			Usage: "Override a version bits deployment (deployment:start:timeout[:window:thresholdStart[:thresholdMin:falloffCoeff]], -1 keeps a value)",
		},
		cli.StringFlag{
			Name:  "llmqtestparams",
			Usage: "Override the llmq_test quorum size and threshold (size:threshold)",
		},
		cli.StringFlag{
			Name:  "llmqdevnetparams",
			Usage: "Override the llmq_devnet quorum size and threshold (size:threshold)",
		},
		cli.StringFlag{
			Name:  "budgetparams",
			Usage: "Override masternode, budget and superblock start heights (masternode:budget:superblock)",
		},
		cli.IntFlag{
			Name:  "minimumdifficultyblocks",
			Usage: "Number of blocks mined at minimum difficulty",
		},
		cli.IntFlag{
			Name:  "highsubsidyblocks",
			Usage: "Number of blocks paying a high subsidy",
		},
		cli.IntFlag{
			Name:  "highsubsidyfactor",
			Usage: "Factor applied to the subsidy of high subsidy blocks",
		},
		cli.StringFlag{
			Name:  "llmqchainlocks",
			Usage: "Quorum type signing chain locks (e.g. llmq_devnet)",
		},
		cli.StringFlag{
			Name:  "llmqinstantsend",
			Usage: "Quorum type signing instant send locks (e.g. llmq_devnet)",
		},
		cli.StringFlag{
			Name:  "dip3params",
			Usage: "Override DIP0003 activation and enforcement heights (activation:enforcement)",
		},
		cli.IntFlag{
			Name:  "dip8params",
			Usage: "Override the DIP0008 activation height",
		},
	}
}
