package flags

import (
	"gopkg.in/urfave/cli.v1"
)

// NetworkFlags selects the chain whose parameters are loaded.
func NetworkFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "network",
			Usage: "Chain to load (main|test|devnet|regtest)",
			Value: "main",
		},
		cli.StringFlag{
			Name:  "devnet",
			Usage: "Devnet name; the genesis child block embeds \"devnet-<name>\" (implies --network=devnet)",
		},
		cli.BoolFlag{
			Name:  "construct-only",
			Usage: "Skip the devnet genesis nonce search and show compiled-in defaults only",
		},
	}
}
