// Package cfgerr holds the error taxonomy shared by the chain parameter
// packages. Every error here describes a defect in the compiled-in parameter
// tables (or in a test harness override) rather than a transient fault, so
// callers are expected to stop initialization instead of retrying.
package cfgerr

import "fmt"

// ConfigurationError is returned when a network identifier is not one of the
// known chains.
type ConfigurationError struct {
	Network string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("unknown chain %q (valid: main, test, devnet, regtest)", e.Network)
}

// ConsistencyError reports a parameter that does not match what the tables
// require: a genesis hash or merkle root differing from its pinned literal,
// or a quorum/deployment entry breaking its invariants.
type ConsistencyError struct {
	Network  string
	Field    string
	Expected string
	Actual   string
}

func (e *ConsistencyError) Error() string {
	if e.Network == "" {
		return fmt.Sprintf("inconsistent %s: expected %s, got %s", e.Field, e.Expected, e.Actual)
	}
	return fmt.Sprintf("%s: inconsistent %s: expected %s, got %s", e.Network, e.Field, e.Expected, e.Actual)
}

// ExhaustionError is returned when the devnet genesis nonce search walked the
// whole nonce range without meeting the target.
type ExhaustionError struct {
	DevnetName string
	Attempts   uint64
}

func (e *ExhaustionError) Error() string {
	return fmt.Sprintf("could not find devnet genesis block for %q after %d nonces", e.DevnetName, e.Attempts)
}
