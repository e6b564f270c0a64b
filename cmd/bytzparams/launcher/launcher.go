package launcher

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gopkg.in/urfave/cli.v1"

	"github.com/rony4d/go-bytz-params/chaincfg"
	"github.com/rony4d/go-bytz-params/flags"
)

var log = logrus.WithField("module", "launcher")

// Launch parses args and runs the selected command.
func Launch(args []string) error {
	return newApp().Run(args)
}

func appFlags() []cli.Flag {
	var all []cli.Flag
	all = append(all, flags.CommonFlags()...)
	all = append(all, flags.NetworkFlags()...)
	all = append(all, flags.OverrideFlags()...)
	return all
}

func newApp() *cli.App {
	app := flags.NewApp()
	app.Flags = appFlags()
	app.Action = withParams(showParams)
	app.Commands = []cli.Command{
		{
			Name:   "show",
			Usage:  "Print the complete parameter set as JSON",
			Action: withParams(showParams),
		},
		{
			Name:   "genesis",
			Usage:  "Print the genesis block, and the devnet genesis child if any",
			Action: withParams(showGenesis),
		},
		{
			Name:   "quorums",
			Usage:  "Print the quorum table and role assignments",
			Action: withParams(showQuorums),
		},
	}
	return app
}

// withParams resolves the configuration, sets up logging and builds the
// frozen profile before handing it to fn.
func withParams(fn func(ctx *cli.Context, p *chaincfg.Params) error) func(*cli.Context) error {
	return func(ctx *cli.Context) error {
		cfg, err := MakeAllConfigs(ctx)
		if err != nil {
			return err
		}
		if err := setupLogging(cfg.Logging, ctx.App.ErrWriter); err != nil {
			return err
		}
		p, err := selectParams(cfg)
		if err != nil {
			log.WithError(err).Error("Failed to load network parameters")
			return err
		}
		return fn(ctx, p)
	}
}

// selectParams builds the profile cfg asks for on a fresh registry, applies
// the overrides and freezes it.
func selectParams(cfg Config) (*chaincfg.Params, error) {
	if !cfg.Overrides.Empty() {
		switch cfg.Network.Name {
		case chaincfg.MainNet, chaincfg.TestNet:
			return nil, fmt.Errorf("parameter overrides are only allowed on %s and %s, not %s",
				chaincfg.DevNet, chaincfg.RegTest, cfg.Network.Name)
		}
	}

	var opts []chaincfg.Option
	if cfg.Network.DevnetName != "" {
		opts = append(opts, chaincfg.WithDevnetName(cfg.Network.DevnetName))
	}
	if cfg.Network.ConstructOnly {
		opts = append(opts, chaincfg.ConstructOnly())
	}

	reg := chaincfg.NewRegistry()
	if _, err := reg.Select(cfg.Network.Name, opts...); err != nil {
		return nil, err
	}
	if err := reg.Apply(&cfg.Overrides); err != nil {
		return nil, err
	}
	return reg.Params(), nil
}
