// Package genesis builds the hash-pinned first block of a chain and, for
// developer networks, the uniquely named block chained on top of it.
//
// Construction is a pure function of its inputs: the same template always
// yields the same header, merkle root and block hash. Block and transaction
// layout, hashing and the merkle tree are the btcd wire format, which is the
// format the rest of the node serializes blocks with.
package genesis

import (
	"fmt"
	"math/big"
	"time"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"

	"github.com/rony4d/go-bytz-params/chaincfg/cfgerr"
)

// coinbaseTag is pushed first in a base genesis coinbase. It is the compact
// encoding of the original Bitcoin difficulty and carries no meaning here.
const coinbaseTag = 486604799

// Template holds the inputs of a base genesis block.
type Template struct {
	// Message is the free-form timestamp text embedded in the coinbase.
	Message string
	// OutputPubKey is the public key the coinbase output pays to.
	OutputPubKey []byte

	Time    uint32
	Nonce   uint32
	Bits    uint32
	Version int32
	Reward  btcutil.Amount
}

// CoinbaseScript returns the unlock script of a base genesis coinbase:
// push(486604799) push(0x04) push(message).
func CoinbaseScript(message []byte) ([]byte, error) {
	// The 0x04 push is a literal one byte data push, not the small integer
	// opcode the builder would otherwise choose.
	return txscript.NewScriptBuilder().
		AddInt64(coinbaseTag).
		AddOps([]byte{txscript.OP_DATA_1, 4}).
		AddData(message).
		Script()
}

// PayToPubKeyScript returns <pubkey> OP_CHECKSIG.
func PayToPubKeyScript(pubKey []byte) ([]byte, error) {
	return txscript.NewScriptBuilder().
		AddData(pubKey).
		AddOp(txscript.OP_CHECKSIG).
		Script()
}

// NewBlock builds a base genesis block with a null previous hash.
func NewBlock(tpl Template) (*wire.MsgBlock, error) {
	sigScript, err := CoinbaseScript([]byte(tpl.Message))
	if err != nil {
		return nil, fmt.Errorf("genesis coinbase script: %w", err)
	}
	pkScript, err := PayToPubKeyScript(tpl.OutputPubKey)
	if err != nil {
		return nil, fmt.Errorf("genesis output script: %w", err)
	}

	header := wire.BlockHeader{
		Version:   tpl.Version,
		PrevBlock: chainhash.Hash{},
		Timestamp: time.Unix(int64(tpl.Time), 0),
		Bits:      tpl.Bits,
		Nonce:     tpl.Nonce,
	}
	return assemble(header, coinbaseTx(sigScript, pkScript, tpl.Reward)), nil
}

// coinbaseTx creates the single transaction of a genesis block: one input
// spending the null outpoint and one output.
func coinbaseTx(sigScript, pkScript []byte, reward btcutil.Amount) *wire.MsgTx {
	tx := wire.NewMsgTx(1)
	tx.AddTxIn(&wire.TxIn{
		PreviousOutPoint: *wire.NewOutPoint(&chainhash.Hash{}, wire.MaxPrevOutIndex),
		SignatureScript:  sigScript,
		Sequence:         wire.MaxTxInSequenceNum,
	})
	tx.AddTxOut(wire.NewTxOut(int64(reward), pkScript))
	return tx
}

func assemble(header wire.BlockHeader, tx *wire.MsgTx) *wire.MsgBlock {
	block := wire.NewMsgBlock(&header)
	block.Transactions = append(block.Transactions, tx)
	block.Header.MerkleRoot = MerkleRoot(block.Transactions)
	return block
}

// MerkleRoot computes the transaction merkle root of txs.
func MerkleRoot(txs []*wire.MsgTx) chainhash.Hash {
	wrapped := make([]*btcutil.Tx, len(txs))
	for i, tx := range txs {
		wrapped[i] = btcutil.NewTx(tx)
	}
	return blockchain.CalcMerkleRoot(wrapped, false)
}

// Target decodes a compact difficulty into the 256-bit value a block hash
// must not exceed.
func Target(bits uint32) *big.Int {
	return blockchain.CompactToBig(bits)
}

// MeetsTarget reports whether hash, read as an unsigned 256-bit integer, is
// at or below the target encoded by bits.
func MeetsTarget(hash chainhash.Hash, bits uint32) bool {
	return hashToBig(hash).Cmp(Target(bits)) <= 0
}

func hashToBig(hash chainhash.Hash) *big.Int {
	return blockchain.HashToBig(&hash)
}

// Verify compares a constructed genesis block against its pinned hash and
// merkle root. A mismatch means the parameter tables are corrupt.
func Verify(network string, block *wire.MsgBlock, wantHash, wantMerkle chainhash.Hash) error {
	if got := block.Header.MerkleRoot; got != wantMerkle {
		return &cfgerr.ConsistencyError{
			Network:  network,
			Field:    "genesis merkle root",
			Expected: wantMerkle.String(),
			Actual:   got.String(),
		}
	}
	if got := block.BlockHash(); got != wantHash {
		return &cfgerr.ConsistencyError{
			Network:  network,
			Field:    "genesis hash",
			Expected: wantHash.String(),
			Actual:   got.String(),
		}
	}
	return nil
}
