package launcher

import "github.com/rony4d/go-bytz-params/chaincfg"

// Defaults bundles the baseline configuration values the launcher uses
// before the config file and flags override them.
type Defaults struct {
	Network NetworkDefaults
	Logging LoggingDefaults
}

// NetworkDefaults selects the chain.
type NetworkDefaults struct {
	Name          string // main, test, devnet or regtest
	DevnetName    string // suffix of "devnet-<name>", empty for the plain "devnet"
	ConstructOnly bool   // skip the devnet genesis nonce search
}

// LoggingDefaults controls log verbosity/format.
type LoggingDefaults struct {
	Verbosity int    // 0=fatal, 1=error, 2=warn, 3=info, 4=debug, 5=trace
	Format    string // text or json
	Color     bool
	SentryDSN string // empty disables error reporting
}

// DefaultConfig returns a fully populated Defaults instance.
func DefaultConfig() Defaults {
	return Defaults{
		Network: NetworkDefaults{
			Name: chaincfg.MainNet,
		},
		Logging: LoggingDefaults{
			Verbosity: 3,
			Format:    "text",
			Color:     false,
		},
	}
}
