package genesis

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/sirupsen/logrus"

	"github.com/rony4d/go-bytz-params/chaincfg/cfgerr"
)

// DevnetBlockVersion is the header version of a devnet genesis child.
const DevnetBlockVersion = 4

// nonceSpace is the number of distinct 32-bit header nonces.
const nonceSpace = uint64(math.MaxUint32) + 1

// ErrEmptyDevnetName is returned before any work is done when a devnet block
// is requested without a name.
var ErrEmptyDevnetName = errors.New("devnet name must not be empty")

var log = logrus.WithField("module", "genesis")

// DevnetCoinbaseScript returns OP_1 push(name): the BIP34 height of the
// child block followed by the devnet name.
func DevnetCoinbaseScript(name string) ([]byte, error) {
	return txscript.NewScriptBuilder().
		AddInt64(1).
		AddData([]byte(name)).
		Script()
}

// NewDevnetBlock builds the devnet genesis child on top of prevHash. Its
// coinbase carries the devnet name and pays to an unspendable OP_RETURN.
func NewDevnetBlock(prevHash chainhash.Hash, name string, t, nonce, bits uint32, reward btcutil.Amount) (*wire.MsgBlock, error) {
	if name == "" {
		return nil, ErrEmptyDevnetName
	}
	sigScript, err := DevnetCoinbaseScript(name)
	if err != nil {
		return nil, fmt.Errorf("devnet coinbase script: %w", err)
	}

	header := wire.BlockHeader{
		Version:   DevnetBlockVersion,
		PrevBlock: prevHash,
		Timestamp: time.Unix(int64(t), 0),
		Bits:      bits,
		Nonce:     nonce,
	}
	return assemble(header, coinbaseTx(sigScript, []byte{txscript.OP_RETURN}, reward)), nil
}

// FindDevnetBlock searches the nonce of the devnet genesis child of prev.
//
// The child reuses prev's bits, which on devnets encode a very easy target,
// and is timestamped one second after prev. Nonces are tried from zero
// upwards; the first hash at or below the target wins. The timestamp is never
// rolled: running out of nonces is reported as an ExhaustionError.
func FindDevnetBlock(prev *wire.MsgBlock, name string, reward btcutil.Amount) (*wire.MsgBlock, error) {
	return findDevnetBlock(prev, name, reward, nonceSpace)
}

func findDevnetBlock(prev *wire.MsgBlock, name string, reward btcutil.Amount, limit uint64) (*wire.MsgBlock, error) {
	if name == "" {
		return nil, ErrEmptyDevnetName
	}

	t := uint32(prev.Header.Timestamp.Unix()) + 1
	block, err := NewDevnetBlock(prev.BlockHash(), name, t, 0, prev.Header.Bits, reward)
	if err != nil {
		return nil, err
	}

	target := Target(block.Header.Bits)
	for n := uint64(0); n < limit; n++ {
		block.Header.Nonce = uint32(n)
		hash := block.Header.BlockHash()
		if hashToBig(hash).Cmp(target) <= 0 {
			log.WithFields(logrus.Fields{
				"devnet":   name,
				"nonce":    block.Header.Nonce,
				"hash":     hash,
				"attempts": n + 1,
			}).Debug("Found devnet genesis block")
			return block, nil
		}
	}

	log.WithFields(logrus.Fields{
		"devnet":   name,
		"attempts": limit,
	}).Error("Could not find devnet genesis block")
	return nil, &cfgerr.ExhaustionError{DevnetName: name, Attempts: limit}
}
