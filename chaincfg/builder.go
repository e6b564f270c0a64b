package chaincfg

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/rony4d/go-bytz-params/chaincfg/cfgerr"
	"github.com/rony4d/go-bytz-params/chaincfg/llmq"
)

// ErrNoSuchQuorum is returned when an override targets a quorum type the
// network does not run.
var ErrNoSuchQuorum = errors.New("quorum type not configured on this network")

// Builder holds a network profile that is still being tuned. Overrides only
// ever touch the builder's private copy; Build hands out a validated copy.
//
// A Builder is not safe for concurrent use.
type Builder struct {
	params *Params
}

// NewBuilder starts a builder from the compiled-in parameters of network.
func NewBuilder(network string, opts ...Option) (*Builder, error) {
	p, err := New(network, opts...)
	if err != nil {
		return nil, err
	}
	return &Builder{params: p}, nil
}

// NewBuilderFrom starts a builder from a copy of p.
func NewBuilderFrom(p *Params) *Builder {
	return &Builder{params: p.Copy()}
}

func (b *Builder) logger() *logrus.Entry {
	return log.WithField("network", b.params.Name)
}

// UpdateDeployment overrides the signalling parameters of one deployment.
func (b *Builder) UpdateDeployment(id DeploymentID, u DeploymentUpdate) error {
	d, ok := b.params.Consensus.Deployment(id)
	if !ok {
		return fmt.Errorf("unknown deployment %d", int(id))
	}
	b.params.Consensus.Deployments[id] = d.apply(u)

	b.logger().WithFields(logrus.Fields{
		"deployment": id,
		"start":      u.StartTime,
		"timeout":    u.Timeout,
	}).Warn("Overriding version bits parameters")
	return nil
}

// UpdateLLMQTestParams resizes the regtest quorum.
func (b *Builder) UpdateLLMQTestParams(size, threshold int) error {
	return b.resizeQuorum(llmq.TypeTest, size, threshold)
}

// UpdateLLMQDevnetParams resizes the devnet quorum.
func (b *Builder) UpdateLLMQDevnetParams(size, threshold int) error {
	return b.resizeQuorum(llmq.TypeDevnet, size, threshold)
}

// resizeQuorum sets the size and collapses minSize, threshold and the bad
// votes threshold onto threshold. DKG timing is left alone. The entry is only
// replaced if the result still satisfies the quorum invariants.
func (b *Builder) resizeQuorum(t llmq.Type, size, threshold int) error {
	q, ok := b.params.Consensus.LLMQs[t]
	if !ok {
		return fmt.Errorf("%s: %w: %s", b.params.Name, ErrNoSuchQuorum, t)
	}
	q.Size = size
	q.MinSize = threshold
	q.Threshold = threshold
	q.DKGBadVotesThreshold = threshold
	if err := q.Validate(); err != nil {
		var cerr *cfgerr.ConsistencyError
		if errors.As(err, &cerr) {
			cerr.Network = b.params.Name
		}
		return err
	}
	b.params.Consensus.LLMQs[t] = q

	b.logger().WithFields(logrus.Fields{
		"llmq":      t,
		"size":      size,
		"threshold": threshold,
	}).Warn("Overriding quorum parameters")
	return nil
}

// UpdateBudgetParameters moves the masternode payment, budget payment and
// superblock start heights.
func (b *Builder) UpdateBudgetParameters(masternodePaymentsStart, budgetPaymentsStart, superblockStart int32) {
	c := &b.params.Consensus
	c.MasternodePaymentsStartBlock = masternodePaymentsStart
	c.BudgetPaymentsStartBlock = budgetPaymentsStart
	c.SuperblockStartBlock = superblockStart

	b.logger().WithFields(logrus.Fields{
		"masternodePaymentsStart": masternodePaymentsStart,
		"budgetPaymentsStart":     budgetPaymentsStart,
		"superblockStart":         superblockStart,
	}).Warn("Overriding budget parameters")
}

// UpdateSubsidyAndDiffParams sets the devnet minimum difficulty and high
// subsidy windows.
func (b *Builder) UpdateSubsidyAndDiffParams(minimumDifficultyBlocks, highSubsidyBlocks, highSubsidyFactor int32) {
	c := &b.params.Consensus
	c.MinimumDifficultyBlocks = minimumDifficultyBlocks
	c.HighSubsidyBlocks = highSubsidyBlocks
	c.HighSubsidyFactor = highSubsidyFactor

	b.logger().WithFields(logrus.Fields{
		"minimumDifficultyBlocks": minimumDifficultyBlocks,
		"highSubsidyBlocks":       highSubsidyBlocks,
		"highSubsidyFactor":       highSubsidyFactor,
	}).Warn("Overriding subsidy and difficulty parameters")
}

// UpdateLLMQChainLocks reassigns the chain-lock signing quorum.
func (b *Builder) UpdateLLMQChainLocks(t llmq.Type) error {
	if err := b.requireQuorum(t); err != nil {
		return err
	}
	b.params.Consensus.LLMQTypeChainLocks = t
	b.logger().WithField("llmq", t).Warn("Overriding chain-lock quorum")
	return nil
}

// UpdateLLMQInstantSend reassigns the instant-send signing quorum.
func (b *Builder) UpdateLLMQInstantSend(t llmq.Type) error {
	if err := b.requireQuorum(t); err != nil {
		return err
	}
	b.params.Consensus.LLMQTypeInstantSend = t
	b.logger().WithField("llmq", t).Warn("Overriding instant-send quorum")
	return nil
}

func (b *Builder) requireQuorum(t llmq.Type) error {
	if _, ok := b.params.Consensus.LLMQs[t]; !ok {
		return fmt.Errorf("%s: %w: %s", b.params.Name, ErrNoSuchQuorum, t)
	}
	return nil
}

// UpdateDIP3Parameters moves the DIP0003 activation height. A nil
// enforcement height leaves the enforcement switch unset.
func (b *Builder) UpdateDIP3Parameters(activation int32, enforcement *int32) {
	c := &b.params.Consensus
	c.DIP0003Height = activation
	c.DIP0003EnforcementHeight = nil

	fields := logrus.Fields{"activation": activation}
	if enforcement != nil {
		h := *enforcement
		c.DIP0003EnforcementHeight = &h
		fields["enforcement"] = h
	}
	b.logger().WithFields(fields).Warn("Overriding DIP0003 parameters")
}

// UpdateDIP8Parameters moves the DIP0008 activation height.
func (b *Builder) UpdateDIP8Parameters(activation int32) {
	b.params.Consensus.DIP0008Height = activation
	b.logger().WithField("activation", activation).Warn("Overriding DIP0008 parameters")
}

// Build validates the tuned profile and returns a copy of it. The builder
// stays usable afterwards.
func (b *Builder) Build() (*Params, error) {
	if err := b.params.Validate(); err != nil {
		return nil, err
	}
	return b.params.Copy(), nil
}
