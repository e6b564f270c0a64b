package chaincfg

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rony4d/go-bytz-params/chaincfg/llmq"
)

func mustBuilder(t *testing.T, network string, opts ...Option) *Builder {
	t.Helper()
	b, err := NewBuilder(network, opts...)
	require.NoError(t, err)
	return b
}

func mustBuild(t *testing.T, b *Builder) *Params {
	t.Helper()
	p, err := b.Build()
	require.NoError(t, err)
	return p
}

func i64(v int64) *int64 { return &v }

func TestNewBuilderUnknownNetwork(t *testing.T) {
	_, err := NewBuilder("mainnetwork")
	var cerr *ConfigurationError
	assert.True(t, errors.As(err, &cerr))
}

func TestUpdateDeploymentKeepsUnsetFields(t *testing.T) {
	b := mustBuilder(t, RegTest)
	require.NoError(t, b.UpdateDeployment(DeploymentTestDummy, DeploymentUpdate{
		StartTime:      1,
		Timeout:        2,
		WindowSize:     i64(100),
		ThresholdStart: i64(80),
		ThresholdMin:   i64(60),
		FalloffCoeff:   i64(5),
	}))
	before := mustBuild(t, b).Consensus.Deployments[DeploymentTestDummy]

	t.Run("nil fields", func(t *testing.T) {
		b := NewBuilderFrom(mustBuild(t, b))
		require.NoError(t, b.UpdateDeployment(DeploymentTestDummy, DeploymentUpdate{StartTime: 10, Timeout: 20}))

		got := mustBuild(t, b).Consensus.Deployments[DeploymentTestDummy]
		want := before
		want.StartTime, want.Timeout = 10, 20
		assert.Equal(t, want, got)
	})

	t.Run("legacy sentinel", func(t *testing.T) {
		b := NewBuilderFrom(mustBuild(t, b))
		require.NoError(t, b.UpdateDeployment(DeploymentTestDummy, DeploymentUpdate{
			StartTime:      before.StartTime,
			Timeout:        before.Timeout,
			WindowSize:     KeepIfSentinel(-1),
			ThresholdStart: KeepIfSentinel(-1),
			ThresholdMin:   KeepIfSentinel(-1),
			FalloffCoeff:   KeepIfSentinel(-1),
		}))
		assert.Equal(t, before, mustBuild(t, b).Consensus.Deployments[DeploymentTestDummy])
	})

	t.Run("partial", func(t *testing.T) {
		b := NewBuilderFrom(mustBuild(t, b))
		require.NoError(t, b.UpdateDeployment(DeploymentTestDummy, DeploymentUpdate{
			StartTime:    before.StartTime,
			Timeout:      before.Timeout,
			ThresholdMin: KeepIfSentinel(0),
		}))
		got := mustBuild(t, b).Consensus.Deployments[DeploymentTestDummy]
		assert.Equal(t, int64(0), got.ThresholdMin)
		assert.Equal(t, before.WindowSize, got.WindowSize)
		assert.Equal(t, before.ThresholdStart, got.ThresholdStart)
		assert.Equal(t, before.FalloffCoeff, got.FalloffCoeff)
	})
}

func TestUpdateDeploymentUnknown(t *testing.T) {
	b := mustBuilder(t, RegTest)
	assert.Error(t, b.UpdateDeployment(DefinedDeployments, DeploymentUpdate{}))
	assert.Error(t, b.UpdateDeployment(-1, DeploymentUpdate{}))
}

func TestUpdateLLMQTestParams(t *testing.T) {
	preset := llmq.MustPreset(llmq.TypeTest)

	b := mustBuilder(t, RegTest)
	require.NoError(t, b.UpdateLLMQTestParams(5, 3))
	got := mustBuild(t, b).Consensus.LLMQs[llmq.TypeTest]

	want := preset
	want.Size = 5
	want.MinSize = 3
	want.Threshold = 3
	want.DKGBadVotesThreshold = 3
	assert.Equal(t, want, got)

	// the catalog is never touched
	assert.Equal(t, preset, llmq.MustPreset(llmq.TypeTest))
}

func TestUpdateLLMQParamsRejectsBrokenQuorum(t *testing.T) {
	b := mustBuilder(t, RegTest)
	before := mustBuild(t, b).Consensus.LLMQs[llmq.TypeTest]

	err := b.UpdateLLMQTestParams(2, 3)
	var cerr *ConsistencyError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, RegTest, cerr.Network)
	assert.Equal(t, "llmqs[llmq_test].minSize", cerr.Field)

	assert.Equal(t, before, mustBuild(t, b).Consensus.LLMQs[llmq.TypeTest])
}

func TestUpdateLLMQParamsMissingQuorum(t *testing.T) {
	tests := []struct {
		network string
		update  func(b *Builder) error
	}{
		{MainNet, func(b *Builder) error { return b.UpdateLLMQTestParams(5, 3) }},
		{RegTest, func(b *Builder) error { return b.UpdateLLMQDevnetParams(5, 3) }},
		{TestNet, func(b *Builder) error { return b.UpdateLLMQChainLocks(llmq.TypeTest) }},
		{MainNet, func(b *Builder) error { return b.UpdateLLMQInstantSend(llmq.TypeDevnet) }},
	}
	for _, tt := range tests {
		b := mustBuilder(t, tt.network, ConstructOnly())
		assert.True(t, errors.Is(tt.update(b), ErrNoSuchQuorum), tt.network)
	}
}

func TestUpdateLLMQDevnetParams(t *testing.T) {
	b := mustBuilder(t, DevNet, ConstructOnly())
	require.NoError(t, b.UpdateLLMQDevnetParams(12, 8))

	q := mustBuild(t, b).Consensus.LLMQs[llmq.TypeDevnet]
	assert.Equal(t, 12, q.Size)
	assert.Equal(t, 8, q.MinSize)
	assert.Equal(t, 8, q.Threshold)
	assert.Equal(t, 8, q.DKGBadVotesThreshold)
}

func TestUpdateQuorumRoles(t *testing.T) {
	b := mustBuilder(t, DevNet, ConstructOnly())
	require.NoError(t, b.UpdateLLMQChainLocks(llmq.TypeDevnet))
	require.NoError(t, b.UpdateLLMQInstantSend(llmq.Type40_60))

	c := mustBuild(t, b).Consensus
	assert.Equal(t, llmq.TypeDevnet, c.LLMQTypeChainLocks)
	assert.Equal(t, llmq.Type40_60, c.LLMQTypeInstantSend)
	assert.Equal(t, llmq.Type20_70, c.LLMQTypePlatform)
}

func TestUpdateHeights(t *testing.T) {
	b := mustBuilder(t, RegTest)
	b.UpdateBudgetParameters(10, 20, 30)
	b.UpdateSubsidyAndDiffParams(1, 2, 3)
	b.UpdateDIP8Parameters(500)

	enforcement := int32(250)
	b.UpdateDIP3Parameters(200, &enforcement)
	enforcement = 0

	c := mustBuild(t, b).Consensus
	assert.Equal(t, int32(10), c.MasternodePaymentsStartBlock)
	assert.Equal(t, int32(20), c.BudgetPaymentsStartBlock)
	assert.Equal(t, int32(30), c.SuperblockStartBlock)
	assert.Equal(t, int32(1), c.MinimumDifficultyBlocks)
	assert.Equal(t, int32(2), c.HighSubsidyBlocks)
	assert.Equal(t, int32(3), c.HighSubsidyFactor)
	assert.Equal(t, int32(200), c.DIP0003Height)
	require.NotNil(t, c.DIP0003EnforcementHeight)
	assert.Equal(t, int32(250), *c.DIP0003EnforcementHeight)
	assert.Equal(t, int32(500), c.DIP0008Height)

	b.UpdateDIP3Parameters(300, nil)
	c = mustBuild(t, b).Consensus
	assert.Equal(t, int32(300), c.DIP0003Height)
	assert.Nil(t, c.DIP0003EnforcementHeight)
}

func TestBuildReturnsCopy(t *testing.T) {
	b := mustBuilder(t, RegTest)
	p1 := mustBuild(t, b)
	b.UpdateDIP8Parameters(1)
	p2 := mustBuild(t, b)

	assert.Equal(t, int32(432), p1.Consensus.DIP0008Height)
	assert.Equal(t, int32(1), p2.Consensus.DIP0008Height)
}
