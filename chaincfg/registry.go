package chaincfg

import (
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/rony4d/go-bytz-params/chaincfg/llmq"
)

var log = logrus.WithField("module", "chaincfg")

var (
	// ErrNotSelected is returned by overrides issued before any network was
	// selected.
	ErrNotSelected = errors.New("no network selected")
	// ErrFrozen is returned once the active profile has been handed out.
	ErrFrozen = errors.New("network parameters already in use")
)

// Registry holds the one active network profile of a process.
//
// Selection and overrides happen during startup. The first call to Params
// freezes the registry: from then on the profile is shared read-only and
// every further Select or Update fails with ErrFrozen.
type Registry struct {
	mu     sync.Mutex
	active *Params
	frozen bool
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Select builds the profile of network and makes it the active one. On error
// the previously active profile, if any, stays in place.
func (r *Registry) Select(network string, opts ...Option) (*Params, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return nil, ErrFrozen
	}
	p, err := New(network, opts...)
	if err != nil {
		return nil, err
	}
	r.active = p

	fields := logrus.Fields{
		"network": p.Name,
		"genesis": p.Consensus.GenesisHash,
	}
	if p.DevnetGenesisBlock != nil {
		fields["devnet"] = p.DevnetName
		fields["devnet_genesis"] = p.Consensus.DevnetGenesisHash
	}
	log.WithFields(fields).Info("Selected network")

	return p.Copy(), nil
}

// Params returns the active profile and freezes the registry. It panics if no
// network has been selected: reading consensus parameters before selection
// is a programming error.
func (r *Registry) Params() *Params {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.active == nil {
		panic(ErrNotSelected)
	}
	r.frozen = true
	return r.active
}

// Frozen reports whether the active profile has been handed out.
func (r *Registry) Frozen() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frozen
}

// update runs fn against a builder over the active profile and swaps the
// result in only when fn and the final validation both succeed.
func (r *Registry) update(fn func(b *Builder) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return ErrFrozen
	}
	if r.active == nil {
		return ErrNotSelected
	}
	b := NewBuilderFrom(r.active)
	if err := fn(b); err != nil {
		return err
	}
	p, err := b.Build()
	if err != nil {
		return err
	}
	r.active = p
	return nil
}

// UpdateDeployment overrides the signalling parameters of one deployment.
func (r *Registry) UpdateDeployment(id DeploymentID, u DeploymentUpdate) error {
	return r.update(func(b *Builder) error {
		return b.UpdateDeployment(id, u)
	})
}

// UpdateLLMQTestParams resizes the regtest quorum.
func (r *Registry) UpdateLLMQTestParams(size, threshold int) error {
	return r.update(func(b *Builder) error {
		return b.UpdateLLMQTestParams(size, threshold)
	})
}

// UpdateLLMQDevnetParams resizes the devnet quorum.
func (r *Registry) UpdateLLMQDevnetParams(size, threshold int) error {
	return r.update(func(b *Builder) error {
		return b.UpdateLLMQDevnetParams(size, threshold)
	})
}

// UpdateBudgetParameters moves the payment and superblock start heights.
func (r *Registry) UpdateBudgetParameters(masternodePaymentsStart, budgetPaymentsStart, superblockStart int32) error {
	return r.update(func(b *Builder) error {
		b.UpdateBudgetParameters(masternodePaymentsStart, budgetPaymentsStart, superblockStart)
		return nil
	})
}

// UpdateSubsidyAndDiffParams sets the devnet difficulty and subsidy windows.
func (r *Registry) UpdateSubsidyAndDiffParams(minimumDifficultyBlocks, highSubsidyBlocks, highSubsidyFactor int32) error {
	return r.update(func(b *Builder) error {
		b.UpdateSubsidyAndDiffParams(minimumDifficultyBlocks, highSubsidyBlocks, highSubsidyFactor)
		return nil
	})
}

// UpdateLLMQChainLocks reassigns the chain-lock quorum.
func (r *Registry) UpdateLLMQChainLocks(t llmq.Type) error {
	return r.update(func(b *Builder) error {
		return b.UpdateLLMQChainLocks(t)
	})
}

// UpdateLLMQInstantSend reassigns the instant-send quorum.
func (r *Registry) UpdateLLMQInstantSend(t llmq.Type) error {
	return r.update(func(b *Builder) error {
		return b.UpdateLLMQInstantSend(t)
	})
}

// UpdateDIP3Parameters moves the DIP0003 activation and enforcement heights.
func (r *Registry) UpdateDIP3Parameters(activation int32, enforcement *int32) error {
	return r.update(func(b *Builder) error {
		b.UpdateDIP3Parameters(activation, enforcement)
		return nil
	})
}

// UpdateDIP8Parameters moves the DIP0008 activation height.
func (r *Registry) UpdateDIP8Parameters(activation int32) error {
	return r.update(func(b *Builder) error {
		b.UpdateDIP8Parameters(activation)
		return nil
	})
}

// Apply applies a whole override set atomically: either every override in o
// takes effect or none does.
func (r *Registry) Apply(o *Overrides) error {
	return r.update(o.Apply)
}

// defaultRegistry backs the package level functions below.
var defaultRegistry = NewRegistry()

// SelectNetwork selects the process-wide network.
func SelectNetwork(network string, opts ...Option) (*Params, error) {
	return defaultRegistry.Select(network, opts...)
}

// ActiveParams returns the process-wide network profile and freezes it.
func ActiveParams() *Params {
	return defaultRegistry.Params()
}

// UpdateVersionBitsParameters overrides a deployment of the process-wide
// profile. The last four arguments use -1 for "keep the current value".
func UpdateVersionBitsParameters(id DeploymentID, startTime, timeout, windowSize, thresholdStart, thresholdMin, falloffCoeff int64) error {
	return defaultRegistry.UpdateDeployment(id, DeploymentUpdate{
		StartTime:      startTime,
		Timeout:        timeout,
		WindowSize:     KeepIfSentinel(windowSize),
		ThresholdStart: KeepIfSentinel(thresholdStart),
		ThresholdMin:   KeepIfSentinel(thresholdMin),
		FalloffCoeff:   KeepIfSentinel(falloffCoeff),
	})
}

// UpdateLLMQTestParams resizes the regtest quorum of the process-wide profile.
func UpdateLLMQTestParams(size, threshold int) error {
	return defaultRegistry.UpdateLLMQTestParams(size, threshold)
}

// UpdateLLMQDevnetParams resizes the devnet quorum of the process-wide profile.
func UpdateLLMQDevnetParams(size, threshold int) error {
	return defaultRegistry.UpdateLLMQDevnetParams(size, threshold)
}

// UpdateBudgetParameters moves the payment and superblock start heights of
// the process-wide profile.
func UpdateBudgetParameters(masternodePaymentsStart, budgetPaymentsStart, superblockStart int32) error {
	return defaultRegistry.UpdateBudgetParameters(masternodePaymentsStart, budgetPaymentsStart, superblockStart)
}

// UpdateDevnetSubsidyAndDiffParams sets the difficulty and subsidy windows of
// the process-wide profile.
func UpdateDevnetSubsidyAndDiffParams(minimumDifficultyBlocks, highSubsidyBlocks, highSubsidyFactor int32) error {
	return defaultRegistry.UpdateSubsidyAndDiffParams(minimumDifficultyBlocks, highSubsidyBlocks, highSubsidyFactor)
}

// UpdateDevnetLLMQChainLocks reassigns the chain-lock quorum of the
// process-wide profile.
func UpdateDevnetLLMQChainLocks(t llmq.Type) error {
	return defaultRegistry.UpdateLLMQChainLocks(t)
}

// UpdateDevnetLLMQInstantSend reassigns the instant-send quorum of the
// process-wide profile.
func UpdateDevnetLLMQInstantSend(t llmq.Type) error {
	return defaultRegistry.UpdateLLMQInstantSend(t)
}

// UpdateDIP3Parameters moves the DIP0003 heights of the process-wide profile.
func UpdateDIP3Parameters(activation int32, enforcement *int32) error {
	return defaultRegistry.UpdateDIP3Parameters(activation, enforcement)
}

// UpdateDIP8Parameters moves the DIP0008 height of the process-wide profile.
func UpdateDIP8Parameters(activation int32) error {
	return defaultRegistry.UpdateDIP8Parameters(activation)
}
