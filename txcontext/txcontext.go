// Copyright (c) 2024 The OriginByte developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package txcontext models the per-transaction execution context that
// the host environment injects into native calls: the transaction hash,
// the sender, the current epoch and the allocator of fresh object
// addresses.
package txcontext

import (
	"encoding/binary"

	"github.com/Origin-Byte/originmate/origin"
)

// TxContext transaction context.
type TxContext struct {
	txHash     origin.Bytes32
	sender     origin.Address
	epoch      uint64
	idsCreated uint64
}

// New creates a context for a transaction sent by sender during epoch.
func New(txHash origin.Bytes32, sender origin.Address, epoch uint64) *TxContext {
	return &TxContext{
		txHash: txHash,
		sender: sender,
		epoch:  epoch,
	}
}

// TxHash returns the hash of the enclosing transaction.
func (ctx *TxContext) TxHash() origin.Bytes32 { return ctx.txHash }

// Sender returns the transaction sender.
func (ctx *TxContext) Sender() origin.Address { return ctx.sender }

// Epoch returns the epoch the transaction executes in.
func (ctx *TxContext) Epoch() uint64 { return ctx.epoch }

// IDsCreated returns how many object addresses this context has allocated.
func (ctx *TxContext) IDsCreated() uint64 { return ctx.idsCreated }

// FreshObjectAddress allocates the next unique object address of this
// transaction. The address is blake2b-256 over the transaction hash and
// the running allocation count, so it is unique per transaction and per
// allocation within it.
func (ctx *TxContext) FreshObjectAddress() origin.Address {
	var cnt [8]byte
	binary.LittleEndian.PutUint64(cnt[:], ctx.idsCreated)
	ctx.idsCreated++
	return origin.Address(origin.Blake2b(ctx.txHash.Bytes(), cnt[:]))
}

// FreshNonceBytes allocates a fresh object address solely for its bit
// pattern and returns its raw bytes. The address itself is discarded
// right away and is never retained or exposed.
func (ctx *TxContext) FreshNonceBytes() []byte {
	addr := ctx.FreshObjectAddress()
	return addr.Bytes()
}
