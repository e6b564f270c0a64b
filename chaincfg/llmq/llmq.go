// Package llmq describes long-living masternode quorums (LLMQs): the fixed
// membership validator groups that run a distributed key generation (DKG)
// and then produce threshold signatures for chain-locks, instant-send and
// platform operations.
//
// This package only carries the topology and DKG timing parameters. The DKG
// protocol itself and quorum selection live elsewhere and read these values.
//
// All quorum shapes come from one static catalog. A network picks the presets
// it runs with Preset and stores copies in its own table, so per-network test
// overrides never touch the catalog.
package llmq

import (
	"fmt"
	"sort"

	"github.com/rony4d/go-bytz-params/chaincfg/cfgerr"
)

// Type identifies a quorum preset. The numeric values are part of the
// consensus encoding of quorum commitments and must not change.
type Type uint8

const (
	// Type20_60 is 20 members, 60% threshold, one DKG per hour.
	Type20_60 Type = 1
	// Type40_60 is 40 members, 60% threshold, one DKG every 12 hours.
	Type40_60 Type = 2
	// Type40_85 is 40 members, 85% threshold, one DKG per day. It is used for
	// deployment and min-proto-version signalling.
	Type40_85 Type = 3
	// Type20_70 is 20 members, 70% threshold, reserved for platform signing.
	Type20_70 Type = 4

	// TypeTest is the regtest-only quorum.
	TypeTest Type = 100
	// TypeDevnet is the devnet-only quorum.
	TypeDevnet Type = 101
	// TypeTestV17 is the test quorum kept after the v17 fork.
	TypeTestV17 Type = 102

	// TypeNone marks "no quorum".
	TypeNone Type = 0xff
)

// Params holds the topology and DKG timing of one quorum type.
//
// Invariants (checked by Validate):
//   - Threshold <= MinSize <= Size
//   - DKGMiningWindowStart < DKGMiningWindowEnd <= DKGInterval
type Params struct {
	Type Type   `json:"type"`
	Name string `json:"name"`

	// Size is the number of members selected for each quorum.
	Size int `json:"size"`
	// MinSize is the minimum number of valid members after the DKG. A DKG
	// ending with fewer members yields no quorum.
	MinSize int `json:"minSize"`
	// Threshold is the number of signature shares needed to recover a
	// threshold signature. It doubles as the number of complaints that
	// exclude a member during the DKG.
	Threshold int `json:"threshold"`

	// DKGInterval is the number of blocks between two DKG sessions.
	DKGInterval int `json:"dkgInterval"`
	// DKGPhaseBlocks is the number of blocks each DKG phase lasts.
	DKGPhaseBlocks int `json:"dkgPhaseBlocks"`
	// DKGMiningWindowStart and DKGMiningWindowEnd bound, relative to the DKG
	// start height, where miners may include the final commitment.
	DKGMiningWindowStart int `json:"dkgMiningWindowStart"`
	DKGMiningWindowEnd   int `json:"dkgMiningWindowEnd"`
	// DKGBadVotesThreshold is the number of votes needed to mark a member bad.
	DKGBadVotesThreshold int `json:"dkgBadVotesThreshold"`

	// SigningActiveQuorumCount is the number of recent quorums eligible to
	// sign at any height.
	SigningActiveQuorumCount int `json:"signingActiveQuorumCount"`

	// KeepOldConnections is how many recent quorums a member stays connected
	// to after it dropped out of the active signing set.
	KeepOldConnections int `json:"keepOldConnections"`
	// RecoveryMembers is how many members try to recover a signature when
	// shares arrive at a node.
	RecoveryMembers int `json:"recoveryMembers"`
}

// Validate checks the ordering invariants of the membership and the DKG
// mining window.
func (p Params) Validate() error {
	field := func(name string) string {
		return fmt.Sprintf("llmqs[%s].%s", p.Name, name)
	}
	switch {
	case p.Threshold > p.MinSize:
		return &cfgerr.ConsistencyError{
			Field:    field("threshold"),
			Expected: fmt.Sprintf("<= minSize (%d)", p.MinSize),
			Actual:   fmt.Sprint(p.Threshold),
		}
	case p.MinSize > p.Size:
		return &cfgerr.ConsistencyError{
			Field:    field("minSize"),
			Expected: fmt.Sprintf("<= size (%d)", p.Size),
			Actual:   fmt.Sprint(p.MinSize),
		}
	case p.DKGMiningWindowStart >= p.DKGMiningWindowEnd:
		return &cfgerr.ConsistencyError{
			Field:    field("dkgMiningWindowStart"),
			Expected: fmt.Sprintf("< dkgMiningWindowEnd (%d)", p.DKGMiningWindowEnd),
			Actual:   fmt.Sprint(p.DKGMiningWindowStart),
		}
	case p.DKGMiningWindowEnd > p.DKGInterval:
		return &cfgerr.ConsistencyError{
			Field:    field("dkgMiningWindowEnd"),
			Expected: fmt.Sprintf("<= dkgInterval (%d)", p.DKGInterval),
			Actual:   fmt.Sprint(p.DKGMiningWindowEnd),
		}
	}
	return nil
}

// String returns the preset name, or a numeric form for unknown types.
func (t Type) String() string {
	if p, ok := catalog[t]; ok {
		return p.Name
	}
	if t == TypeNone {
		return "llmq_none"
	}
	return fmt.Sprintf("llmq_%d", uint8(t))
}

// ParseType resolves a preset by its name (e.g. "llmq_test").
func ParseType(name string) (Type, error) {
	for t, p := range catalog {
		if p.Name == name {
			return t, nil
		}
	}
	return TypeNone, fmt.Errorf("unknown llmq type %q", name)
}

// Preset returns a copy of the catalog entry for t.
func Preset(t Type) (Params, bool) {
	p, ok := catalog[t]
	return p, ok
}

// Presets returns every catalog entry ordered by type id.
func Presets() []Params {
	out := make([]Params, 0, len(catalog))
	for _, p := range catalog {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Type < out[j].Type })
	return out
}

// MustPreset is Preset for the network tables, where a missing entry is a
// programming error.
func MustPreset(t Type) Params {
	p, ok := catalog[t]
	if !ok {
		panic(fmt.Sprintf("llmq: no preset for type %d", uint8(t)))
	}
	return p
}

func init() {
	for t, p := range catalog {
		if p.Type != t {
			panic(fmt.Sprintf("llmq: preset %s registered under type %d", p.Name, uint8(t)))
		}
		if err := p.Validate(); err != nil {
			panic(fmt.Sprintf("llmq: invalid preset: %v", err))
		}
	}
}
