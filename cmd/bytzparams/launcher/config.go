// This file maps CLI context and config files to the launcher Config.

package launcher

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/urfave/cli.v1"
	"gopkg.in/yaml.v3"

	"github.com/rony4d/go-bytz-params/chaincfg"
	"github.com/rony4d/go-bytz-params/chaincfg/llmq"
)

// Config aggregates everything the launcher needs to produce the active
// network profile.
type Config struct {
	Network   NetworkConfig      `yaml:"network"`
	Logging   LoggingConfig      `yaml:"logging"`
	Overrides chaincfg.Overrides `yaml:"overrides"`
}

type NetworkConfig struct {
	Name          string `yaml:"name"`
	DevnetName    string `yaml:"devnet"`
	ConstructOnly bool   `yaml:"constructOnly"`
}

type LoggingConfig struct {
	Verbosity int    `yaml:"verbosity"`
	Format    string `yaml:"format"`
	Color     bool   `yaml:"color"`
	SentryDSN string `yaml:"sentryDSN"`
}

// -----------------------------------------------------------------------------
// Default config + builders
// -----------------------------------------------------------------------------

func defaultConfig() Config {
	d := DefaultConfig()
	return Config{
		Network: NetworkConfig{
			Name:          d.Network.Name,
			DevnetName:    d.Network.DevnetName,
			ConstructOnly: d.Network.ConstructOnly,
		},
		Logging: LoggingConfig{
			Verbosity: d.Logging.Verbosity,
			Format:    d.Logging.Format,
			Color:     d.Logging.Color,
			SentryDSN: d.Logging.SentryDSN,
		},
	}
}

// MakeAllConfigs merges defaults, the optional config file, the optional
// override file and CLI flags, in that order, into a single Config.
func MakeAllConfigs(ctx *cli.Context) (Config, error) {
	cfg := defaultConfig()

	if file := ctx.GlobalString("config"); file != "" {
		if err := loadConfigFile(file, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to load config file %s: %w", file, err)
		}
	}
	if file := ctx.GlobalString("overrides"); file != "" {
		if err := loadOverridesFile(file, &cfg.Overrides); err != nil {
			return Config{}, fmt.Errorf("failed to load overrides file %s: %w", file, err)
		}
	}
	if err := applyCLIOverrides(ctx, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// -----------------------------------------------------------------------------
// Config-file / CLI wiring
// -----------------------------------------------------------------------------

func loadConfigFile(path string, cfg *Config) error {
	f, err := os.Open(resolvePath(path))
	if err != nil {
		return err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func loadOverridesFile(path string, dst *chaincfg.Overrides) error {
	f, err := os.Open(resolvePath(path))
	if err != nil {
		return err
	}
	defer f.Close()

	o, err := chaincfg.LoadOverrides(f)
	if err != nil {
		return err
	}
	mergeOverrides(dst, o)
	return nil
}

// mergeOverrides lays src over dst. Deployment overrides accumulate, every
// other field set in src replaces the one in dst.
func mergeOverrides(dst, src *chaincfg.Overrides) {
	dst.VersionBits = append(dst.VersionBits, src.VersionBits...)
	if src.LLMQTest != nil {
		dst.LLMQTest = src.LLMQTest
	}
	if src.LLMQDevnet != nil {
		dst.LLMQDevnet = src.LLMQDevnet
	}
	if src.Budget != nil {
		dst.Budget = src.Budget
	}
	if src.SubsidyAndDiff != nil {
		dst.SubsidyAndDiff = src.SubsidyAndDiff
	}
	if src.LLMQChainLocks != "" {
		dst.LLMQChainLocks = src.LLMQChainLocks
	}
	if src.LLMQInstantSend != "" {
		dst.LLMQInstantSend = src.LLMQInstantSend
	}
	if src.DIP3 != nil {
		dst.DIP3 = src.DIP3
	}
	if src.DIP8 != nil {
		dst.DIP8 = src.DIP8
	}
}

func applyCLIOverrides(ctx *cli.Context, cfg *Config) error {
	if ctx.GlobalIsSet("network") {
		cfg.Network.Name = ctx.GlobalString("network")
	}
	if ctx.GlobalIsSet("devnet") {
		if ctx.GlobalIsSet("network") && cfg.Network.Name != chaincfg.DevNet {
			return fmt.Errorf("--devnet requires --network=%s, got %q", chaincfg.DevNet, cfg.Network.Name)
		}
		cfg.Network.Name = chaincfg.DevNet
		cfg.Network.DevnetName = ctx.GlobalString("devnet")
	}
	if ctx.GlobalIsSet("construct-only") {
		cfg.Network.ConstructOnly = ctx.GlobalBool("construct-only")
	}

	if ctx.GlobalIsSet("log.format") {
		cfg.Logging.Format = ctx.GlobalString("log.format")
	}
	if ctx.GlobalIsSet("log.verbosity") {
		cfg.Logging.Verbosity = ctx.GlobalInt("log.verbosity")
	}
	if ctx.GlobalIsSet("log.color") {
		cfg.Logging.Color = ctx.GlobalBool("log.color")
	}
	if ctx.GlobalIsSet("sentry.dsn") {
		cfg.Logging.SentryDSN = ctx.GlobalString("sentry.dsn")
	}

	o := &cfg.Overrides
	for _, s := range ctx.GlobalStringSlice("vbparams") {
		vb, err := chaincfg.ParseVersionBitsParams(s)
		if err != nil {
			return err
		}
		o.VersionBits = append(o.VersionBits, vb)
	}
	if ctx.GlobalIsSet("llmqtestparams") {
		q, err := chaincfg.ParseLLMQParams(ctx.GlobalString("llmqtestparams"))
		if err != nil {
			return err
		}
		o.LLMQTest = &q
	}
	if ctx.GlobalIsSet("llmqdevnetparams") {
		q, err := chaincfg.ParseLLMQParams(ctx.GlobalString("llmqdevnetparams"))
		if err != nil {
			return err
		}
		o.LLMQDevnet = &q
	}
	if ctx.GlobalIsSet("budgetparams") {
		b, err := chaincfg.ParseBudgetParams(ctx.GlobalString("budgetparams"))
		if err != nil {
			return err
		}
		o.Budget = &b
	}
	if ctx.GlobalIsSet("minimumdifficultyblocks") || ctx.GlobalIsSet("highsubsidyblocks") || ctx.GlobalIsSet("highsubsidyfactor") {
		var s chaincfg.SubsidyAndDiffOverride
		if o.SubsidyAndDiff != nil {
			s = *o.SubsidyAndDiff
		}
		if ctx.GlobalIsSet("minimumdifficultyblocks") {
			s.MinimumDifficultyBlocks = int32(ctx.GlobalInt("minimumdifficultyblocks"))
		}
		if ctx.GlobalIsSet("highsubsidyblocks") {
			s.HighSubsidyBlocks = int32(ctx.GlobalInt("highsubsidyblocks"))
		}
		if ctx.GlobalIsSet("highsubsidyfactor") {
			s.HighSubsidyFactor = int32(ctx.GlobalInt("highsubsidyfactor"))
		}
		o.SubsidyAndDiff = &s
	}
	for flag, dst := range map[string]*string{
		"llmqchainlocks":  &o.LLMQChainLocks,
		"llmqinstantsend": &o.LLMQInstantSend,
	} {
		if !ctx.GlobalIsSet(flag) {
			continue
		}
		name := ctx.GlobalString(flag)
		if _, err := llmq.ParseType(name); err != nil {
			return fmt.Errorf("invalid --%s: %w", flag, err)
		}
		*dst = name
	}
	if ctx.GlobalIsSet("dip3params") {
		d, err := chaincfg.ParseDIP3Params(ctx.GlobalString("dip3params"))
		if err != nil {
			return err
		}
		o.DIP3 = &d
	}
	if ctx.GlobalIsSet("dip8params") {
		h := int32(ctx.GlobalInt("dip8params"))
		o.DIP8 = &h
	}
	return nil
}

// -----------------------------------------------------------------------------
// Helpers
// -----------------------------------------------------------------------------

func resolvePath(p string) string {
	if strings.HasPrefix(p, "~") {
		return filepath.Join(GuessHomeDir(), strings.TrimPrefix(p, "~"))
	}
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(GuessWorkDir(), p)
}

func GuessWorkDir() string {
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

func GuessHomeDir() string {
	if dir, err := os.UserHomeDir(); err == nil {
		return dir
	}
	return "."
}
