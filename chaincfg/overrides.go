package chaincfg

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rony4d/go-bytz-params/chaincfg/llmq"
)

// Overrides is a set of pre-freeze parameter overrides, as read from an
// override file or assembled from command line flags. Nil and empty fields
// leave the profile alone.
type Overrides struct {
	VersionBits     []VersionBitsOverride   `yaml:"versionBits"`
	LLMQTest        *LLMQOverride           `yaml:"llmqTest"`
	LLMQDevnet      *LLMQOverride           `yaml:"llmqDevnet"`
	Budget          *BudgetOverride         `yaml:"budget"`
	SubsidyAndDiff  *SubsidyAndDiffOverride `yaml:"subsidyAndDiff"`
	LLMQChainLocks  string                  `yaml:"llmqChainLocks"`
	LLMQInstantSend string                  `yaml:"llmqInstantSend"`
	DIP3            *DIP3Override           `yaml:"dip3"`
	DIP8            *int32                  `yaml:"dip8"`
}

// VersionBitsOverride overrides one deployment. Omitted optional fields keep
// their current value.
type VersionBitsOverride struct {
	Deployment     string `yaml:"deployment"`
	StartTime      int64  `yaml:"startTime"`
	Timeout        int64  `yaml:"timeout"`
	WindowSize     *int64 `yaml:"windowSize"`
	ThresholdStart *int64 `yaml:"thresholdStart"`
	ThresholdMin   *int64 `yaml:"thresholdMin"`
	FalloffCoeff   *int64 `yaml:"falloffCoeff"`
}

// LLMQOverride resizes a quorum.
type LLMQOverride struct {
	Size      int `yaml:"size"`
	Threshold int `yaml:"threshold"`
}

// BudgetOverride moves the payment and superblock start heights.
type BudgetOverride struct {
	MasternodePaymentsStart int32 `yaml:"masternodePaymentsStart"`
	BudgetPaymentsStart     int32 `yaml:"budgetPaymentsStart"`
	SuperblockStart         int32 `yaml:"superblockStart"`
}

// SubsidyAndDiffOverride sets the devnet difficulty and subsidy windows.
type SubsidyAndDiffOverride struct {
	MinimumDifficultyBlocks int32 `yaml:"minimumDifficultyBlocks"`
	HighSubsidyBlocks       int32 `yaml:"highSubsidyBlocks"`
	HighSubsidyFactor       int32 `yaml:"highSubsidyFactor"`
}

// DIP3Override moves the DIP0003 heights.
type DIP3Override struct {
	Activation  int32  `yaml:"activation"`
	Enforcement *int32 `yaml:"enforcement"`
}

// LoadOverrides decodes a YAML override file. Unknown keys are rejected. An
// empty document yields empty overrides.
func LoadOverrides(r io.Reader) (*Overrides, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	o := new(Overrides)
	if err := dec.Decode(o); err != nil {
		if errors.Is(err, io.EOF) {
			return o, nil
		}
		return nil, fmt.Errorf("decode overrides: %w", err)
	}
	return o, nil
}

// Empty reports whether o overrides nothing.
func (o *Overrides) Empty() bool {
	return o == nil || (len(o.VersionBits) == 0 &&
		o.LLMQTest == nil && o.LLMQDevnet == nil &&
		o.Budget == nil && o.SubsidyAndDiff == nil &&
		o.LLMQChainLocks == "" && o.LLMQInstantSend == "" &&
		o.DIP3 == nil && o.DIP8 == nil)
}

// Apply runs every override against b, stopping at the first error.
func (o *Overrides) Apply(b *Builder) error {
	if o == nil {
		return nil
	}
	for _, vb := range o.VersionBits {
		id, err := ParseDeploymentID(vb.Deployment)
		if err != nil {
			return err
		}
		err = b.UpdateDeployment(id, DeploymentUpdate{
			StartTime:      vb.StartTime,
			Timeout:        vb.Timeout,
			WindowSize:     vb.WindowSize,
			ThresholdStart: vb.ThresholdStart,
			ThresholdMin:   vb.ThresholdMin,
			FalloffCoeff:   vb.FalloffCoeff,
		})
		if err != nil {
			return err
		}
	}
	if q := o.LLMQTest; q != nil {
		if err := b.UpdateLLMQTestParams(q.Size, q.Threshold); err != nil {
			return err
		}
	}
	if q := o.LLMQDevnet; q != nil {
		if err := b.UpdateLLMQDevnetParams(q.Size, q.Threshold); err != nil {
			return err
		}
	}
	if bo := o.Budget; bo != nil {
		b.UpdateBudgetParameters(bo.MasternodePaymentsStart, bo.BudgetPaymentsStart, bo.SuperblockStart)
	}
	if s := o.SubsidyAndDiff; s != nil {
		b.UpdateSubsidyAndDiffParams(s.MinimumDifficultyBlocks, s.HighSubsidyBlocks, s.HighSubsidyFactor)
	}
	if o.LLMQChainLocks != "" {
		t, err := llmq.ParseType(o.LLMQChainLocks)
		if err != nil {
			return err
		}
		if err := b.UpdateLLMQChainLocks(t); err != nil {
			return err
		}
	}
	if o.LLMQInstantSend != "" {
		t, err := llmq.ParseType(o.LLMQInstantSend)
		if err != nil {
			return err
		}
		if err := b.UpdateLLMQInstantSend(t); err != nil {
			return err
		}
	}
	if d := o.DIP3; d != nil {
		b.UpdateDIP3Parameters(d.Activation, d.Enforcement)
	}
	if o.DIP8 != nil {
		b.UpdateDIP8Parameters(*o.DIP8)
	}
	return nil
}

// ParseVersionBitsParams parses
//
//	deployment:start:timeout[:window:thresholdStart[:thresholdMin:falloffCoeff]]
//
// where -1 in any of the optional fields keeps the current value.
func ParseVersionBitsParams(s string) (VersionBitsOverride, error) {
	parts := strings.Split(s, ":")
	switch len(parts) {
	case 3, 5, 7:
	default:
		return VersionBitsOverride{}, fmt.Errorf("version bits parameters malformed, expecting deployment:start:timeout[:window:thresholdStart[:thresholdMin:falloffCoeff]], got %q", s)
	}
	nums, err := parseInts(parts[1:], 64)
	if err != nil {
		return VersionBitsOverride{}, fmt.Errorf("invalid version bits parameters %q: %w", s, err)
	}
	vb := VersionBitsOverride{
		Deployment: parts[0],
		StartTime:  nums[0],
		Timeout:    nums[1],
	}
	optional := []**int64{&vb.WindowSize, &vb.ThresholdStart, &vb.ThresholdMin, &vb.FalloffCoeff}
	for i, v := range nums[2:] {
		*optional[i] = KeepIfSentinel(v)
	}
	if _, err := ParseDeploymentID(vb.Deployment); err != nil {
		return VersionBitsOverride{}, err
	}
	return vb, nil
}

// ParseLLMQParams parses size:threshold.
func ParseLLMQParams(s string) (LLMQOverride, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return LLMQOverride{}, fmt.Errorf("llmq parameters malformed, expecting size:threshold, got %q", s)
	}
	nums, err := parseInts(parts, strconv.IntSize)
	if err != nil {
		return LLMQOverride{}, fmt.Errorf("invalid llmq parameters %q: %w", s, err)
	}
	return LLMQOverride{Size: int(nums[0]), Threshold: int(nums[1])}, nil
}

// ParseBudgetParams parses masternodePaymentsStart:budgetPaymentsStart:superblockStart.
func ParseBudgetParams(s string) (BudgetOverride, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return BudgetOverride{}, fmt.Errorf("budget parameters malformed, expecting masternode:budget:superblock, got %q", s)
	}
	nums, err := parseInts(parts, 32)
	if err != nil {
		return BudgetOverride{}, fmt.Errorf("invalid budget parameters %q: %w", s, err)
	}
	return BudgetOverride{
		MasternodePaymentsStart: int32(nums[0]),
		BudgetPaymentsStart:     int32(nums[1]),
		SuperblockStart:         int32(nums[2]),
	}, nil
}

// ParseDIP3Params parses activation:enforcement.
func ParseDIP3Params(s string) (DIP3Override, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return DIP3Override{}, fmt.Errorf("dip3 parameters malformed, expecting activation:enforcement, got %q", s)
	}
	nums, err := parseInts(parts, 32)
	if err != nil {
		return DIP3Override{}, fmt.Errorf("invalid dip3 parameters %q: %w", s, err)
	}
	enforcement := int32(nums[1])
	return DIP3Override{Activation: int32(nums[0]), Enforcement: &enforcement}, nil
}

func parseInts(parts []string, bitSize int) ([]int64, error) {
	out := make([]int64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseInt(p, 10, bitSize)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
