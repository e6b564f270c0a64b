package launcher

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/urfave/cli.v1"

	"github.com/rony4d/go-bytz-params/chaincfg"
)

// helper to run MakeAllConfigs with a synthetic CLI context.
func runConfigFromArgs(t *testing.T, args []string) (Config, error) {
	t.Helper()

	app := cli.NewApp()
	app.HideHelp = true
	app.HideVersion = true
	app.Flags = appFlags()

	var (
		got    Config
		cfgErr error
	)
	app.Action = func(c *cli.Context) error {
		got, cfgErr = MakeAllConfigs(c)
		return nil
	}

	require.NoError(t, app.Run(append([]string{"bytzparams"}, args...)))
	return got, cfgErr
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func i32(v int32) *int32 { return &v }

// TestMakeAllConfigs_flagOverrides verifies that every flag the launcher
// declares lands in the corresponding field of the aggregated Config.
func TestMakeAllConfigs_flagOverrides(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want func(t *testing.T, cfg Config)
	}{
		{
			name: "defaults",
			args: nil,
			want: func(t *testing.T, cfg Config) {
				assert.Equal(t, defaultConfig(), cfg)
				assert.Equal(t, chaincfg.MainNet, cfg.Network.Name)
				assert.Equal(t, 3, cfg.Logging.Verbosity)
				assert.True(t, cfg.Overrides.Empty())
			},
		},
		{
			name: "network and logging",
			args: []string{"--network", "regtest", "--log.verbosity", "5", "--log.format", "json", "--log.color", "--sentry.dsn", "https://key@sentry.example.org/1"},
			want: func(t *testing.T, cfg Config) {
				assert.Equal(t, chaincfg.RegTest, cfg.Network.Name)
				assert.Equal(t, LoggingConfig{Verbosity: 5, Format: "json", Color: true, SentryDSN: "https://key@sentry.example.org/1"}, cfg.Logging)
			},
		},
		{
			name: "named devnet",
			args: []string{"--devnet", "test", "--construct-only"},
			want: func(t *testing.T, cfg Config) {
				assert.Equal(t, NetworkConfig{Name: chaincfg.DevNet, DevnetName: "test", ConstructOnly: true}, cfg.Network)
			},
		},
		{
			name: "override flags",
			args: []string{
				"--network", "regtest",
				"--vbparams", "testdummy:1:2",
				"--vbparams", "testdummy:3:4:-1:80",
				"--llmqtestparams", "5:3",
				"--llmqdevnetparams", "12:8",
				"--budgetparams", "10:20:30",
				"--highsubsidyfactor", "4",
				"--llmqchainlocks", "llmq_test_v17",
				"--llmqinstantsend", "llmq_test",
				"--dip3params", "220:230",
				"--dip8params", "440",
			},
			want: func(t *testing.T, cfg Config) {
				o := cfg.Overrides
				require.Len(t, o.VersionBits, 2)
				assert.Equal(t, int64(3), o.VersionBits[1].StartTime)
				assert.Nil(t, o.VersionBits[1].WindowSize)
				require.NotNil(t, o.VersionBits[1].ThresholdStart)
				assert.Equal(t, int64(80), *o.VersionBits[1].ThresholdStart)
				assert.Equal(t, &chaincfg.LLMQOverride{Size: 5, Threshold: 3}, o.LLMQTest)
				assert.Equal(t, &chaincfg.LLMQOverride{Size: 12, Threshold: 8}, o.LLMQDevnet)
				assert.Equal(t, &chaincfg.BudgetOverride{MasternodePaymentsStart: 10, BudgetPaymentsStart: 20, SuperblockStart: 30}, o.Budget)
				assert.Equal(t, &chaincfg.SubsidyAndDiffOverride{HighSubsidyFactor: 4}, o.SubsidyAndDiff)
				assert.Equal(t, "llmq_test_v17", o.LLMQChainLocks)
				assert.Equal(t, "llmq_test", o.LLMQInstantSend)
				assert.Equal(t, &chaincfg.DIP3Override{Activation: 220, Enforcement: i32(230)}, o.DIP3)
				assert.Equal(t, i32(440), o.DIP8)
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg, err := runConfigFromArgs(t, test.args)
			require.NoError(t, err)
			test.want(t, cfg)
		})
	}
}

func TestMakeAllConfigs_badFlags(t *testing.T) {
	for _, args := range [][]string{
		{"--network", "main", "--devnet", "test"},
		{"--vbparams", "testdummy:1"},
		{"--vbparams", "segwit:1:2"},
		{"--llmqtestparams", "5"},
		{"--budgetparams", "1:2"},
		{"--llmqchainlocks", "llmq_bogus"},
		{"--dip3params", "x:1"},
	} {
		_, err := runConfigFromArgs(t, args)
		assert.Error(t, err, "%v", args)
	}
}

func TestMakeAllConfigs_configFile(t *testing.T) {
	path := writeFile(t, "bytz.yaml", `
network:
  name: regtest
logging:
  verbosity: 4
overrides:
  llmqTest:
    size: 5
    threshold: 3
  subsidyAndDiff:
    minimumDifficultyBlocks: 7
  dip8: 440
`)

	cfg, err := runConfigFromArgs(t, []string{"--config", path, "--llmqtestparams", "7:4", "--highsubsidyblocks", "9"})
	require.NoError(t, err)

	assert.Equal(t, chaincfg.RegTest, cfg.Network.Name)
	assert.Equal(t, 4, cfg.Logging.Verbosity)
	assert.Equal(t, "text", cfg.Logging.Format)
	// flags win over the file, unset flags keep file values
	assert.Equal(t, &chaincfg.LLMQOverride{Size: 7, Threshold: 4}, cfg.Overrides.LLMQTest)
	assert.Equal(t, &chaincfg.SubsidyAndDiffOverride{MinimumDifficultyBlocks: 7, HighSubsidyBlocks: 9}, cfg.Overrides.SubsidyAndDiff)
	assert.Equal(t, i32(440), cfg.Overrides.DIP8)
}

func TestMakeAllConfigs_overridesFile(t *testing.T) {
	conf := writeFile(t, "bytz.yaml", `
network:
  name: devnet
overrides:
  versionBits:
    - deployment: testdummy
      startTime: 1
      timeout: 2
  llmqChainLocks: llmq_20_60
`)
	overrides := writeFile(t, "overrides.yaml", `
versionBits:
  - deployment: testdummy
    startTime: 3
    timeout: 4
llmqChainLocks: llmq_devnet
`)

	cfg, err := runConfigFromArgs(t, []string{"--config", conf, "--overrides", overrides})
	require.NoError(t, err)

	require.Len(t, cfg.Overrides.VersionBits, 2)
	assert.Equal(t, int64(3), cfg.Overrides.VersionBits[1].StartTime)
	assert.Equal(t, "llmq_devnet", cfg.Overrides.LLMQChainLocks)
}

func TestMakeAllConfigs_badFiles(t *testing.T) {
	unknown := writeFile(t, "bytz.yaml", "network:\n  chain: main\n")
	_, err := runConfigFromArgs(t, []string{"--config", unknown})
	assert.Error(t, err)

	_, err = runConfigFromArgs(t, []string{"--config", filepath.Join(t.TempDir(), "missing.yaml")})
	assert.Error(t, err)

	badOverrides := writeFile(t, "overrides.yaml", "llmqTest: 5\n")
	_, err = runConfigFromArgs(t, []string{"--overrides", badOverrides})
	assert.Error(t, err)
}

func TestResolvePath(t *testing.T) {
	assert.Equal(t, "/etc/bytz.yaml", resolvePath("/etc/bytz.yaml"))
	assert.Equal(t, filepath.Join(GuessHomeDir(), "bytz.yaml"), resolvePath("~/bytz.yaml"))
	assert.Equal(t, filepath.Join(GuessWorkDir(), "bytz.yaml"), resolvePath("bytz.yaml"))
}
