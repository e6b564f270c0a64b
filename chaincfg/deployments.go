package chaincfg

import (
	"fmt"
	"strings"
)

// DeploymentID indexes the version bits deployments of a network.
type DeploymentID int

const (
	// DeploymentTestDummy is the placeholder deployment every network carries
	// so the signalling machinery is always exercised.
	DeploymentTestDummy DeploymentID = iota

	// DefinedDeployments is the number of known deployments. It must stay the
	// last entry.
	DefinedDeployments
)

var deploymentNames = [DefinedDeployments]string{
	DeploymentTestDummy: "testdummy",
}

// String returns the name a deployment is addressed by on the command line.
func (d DeploymentID) String() string {
	if d < 0 || d >= DefinedDeployments {
		return fmt.Sprintf("deployment(%d)", int(d))
	}
	return deploymentNames[d]
}

// ParseDeploymentID resolves a deployment by name.
func ParseDeploymentID(name string) (DeploymentID, error) {
	for id, n := range deploymentNames {
		if strings.EqualFold(n, name) {
			return DeploymentID(id), nil
		}
	}
	return 0, fmt.Errorf("unknown deployment: %q (valid: %s)", name, strings.Join(deploymentNames[:], ", "))
}

// Deployment describes one BIP9 style soft fork signalled through a version
// bit.
//
// WindowSize, ThresholdStart, ThresholdMin and FalloffCoeff drive the dynamic
// activation threshold. When ThresholdStart is zero the network-wide
// RuleChangeActivationThreshold applies instead.
type Deployment struct {
	// Bit is the version bit position, 0..31.
	Bit uint8 `json:"bit"`

	// StartTime and Timeout are median-time-past unix timestamps bounding
	// the signalling period.
	StartTime int64 `json:"startTime"`
	Timeout   int64 `json:"timeout"`

	// WindowSize is the signalling period in blocks. Zero means the miner
	// confirmation window.
	WindowSize int64 `json:"windowSize"`
	// ThresholdStart is the number of signalling blocks required in the
	// first period.
	ThresholdStart int64 `json:"thresholdStart"`
	// ThresholdMin is the floor the threshold falls off to.
	ThresholdMin int64 `json:"thresholdMin"`
	// FalloffCoeff controls how fast the threshold decays per failed period.
	FalloffCoeff int64 `json:"falloffCoeff"`
}

// Window returns the signalling period length in blocks.
func (d Deployment) Window(c *ConsensusParams) int64 {
	if d.WindowSize > 0 {
		return d.WindowSize
	}
	return int64(c.MinerConfirmationWindow)
}

// Threshold returns the number of signalling blocks needed in the given
// signalling period (attempt 0 being the first one after StartTime).
//
// The threshold decays quadratically with the number of failed attempts:
//
//	max(ThresholdMin, ThresholdStart - attempt^2 * WindowSize / 100 / FalloffCoeff)
func (d Deployment) Threshold(c *ConsensusParams, attempt int64) int64 {
	if d.ThresholdStart == 0 {
		return int64(c.RuleChangeActivationThreshold)
	}
	if d.ThresholdMin == 0 || d.FalloffCoeff == 0 {
		return d.ThresholdStart
	}
	calc := d.ThresholdStart - attempt*attempt*d.WindowSize/100/d.FalloffCoeff
	if calc < d.ThresholdMin {
		return d.ThresholdMin
	}
	return calc
}

// DeploymentUpdate is a partial override of a Deployment. StartTime and
// Timeout are always applied; every nil pointer keeps the current value.
type DeploymentUpdate struct {
	StartTime int64
	Timeout   int64

	WindowSize     *int64
	ThresholdStart *int64
	ThresholdMin   *int64
	FalloffCoeff   *int64
}

// KeepIfSentinel maps the legacy "-1 means unchanged" convention of the
// command line onto DeploymentUpdate's nil.
func KeepIfSentinel(v int64) *int64 {
	if v == -1 {
		return nil
	}
	return &v
}

func (d Deployment) apply(u DeploymentUpdate) Deployment {
	d.StartTime = u.StartTime
	d.Timeout = u.Timeout
	if u.WindowSize != nil {
		d.WindowSize = *u.WindowSize
	}
	if u.ThresholdStart != nil {
		d.ThresholdStart = *u.ThresholdStart
	}
	if u.ThresholdMin != nil {
		d.ThresholdMin = *u.ThresholdMin
	}
	if u.FalloffCoeff != nil {
		d.FalloffCoeff = *u.FalloffCoeff
	}
	return d
}
