// Copyright (c) 2024 The OriginByte developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package pseudorandom derives pseudo-random seeds on chain by hashing
// a per-call nonce assembled from a shared monotonic counter,
// transaction context fields and optional caller-supplied bytes.
//
// This is NOT a cryptographically secure randomness source. Every input
// (counter value, epoch, sender, sequentially derived object addresses)
// is observable or influenceable by other parties, so seeds produced
// here must never be the sole protection of value-bearing decisions.
package pseudorandom

import (
	"github.com/Origin-Byte/originmate/bcs"
	"github.com/Origin-Byte/originmate/metrics"
	"github.com/Origin-Byte/originmate/origin"
	"github.com/Origin-Byte/originmate/txcontext"
)

var metricSeedCount = metrics.LazyLoadCounterVec("pseudorandom_seed_count", []string{"entrypoint"})

// digest compresses the assembled nonce into the final 32-byte seed.
// SHA3-256 is fixed; no post-processing is applied.
func digest(entrypoint string, nonce []byte) origin.Bytes32 {
	metricSeedCount().AddWithLabel(1, map[string]string{"entrypoint": entrypoint})
	return origin.Sha3(nonce)
}

func appendCounter(dst []byte, c *Counter) []byte {
	return bcs.AppendU256(dst, c.Increment())
}

// seed-family context contribution: epoch, then a fresh object address.
func appendSeedCtx(dst []byte, ctx *txcontext.TxContext) []byte {
	dst = bcs.AppendU64(dst, ctx.Epoch())
	return append(dst, ctx.FreshNonceBytes()...)
}

// rand-family context contribution: fresh object address, epoch, sender.
func appendRandCtx(dst []byte, ctx *txcontext.TxContext) []byte {
	dst = append(dst, ctx.FreshNonceBytes()...)
	dst = bcs.AppendU64(dst, ctx.Epoch())
	return bcs.AppendAddress(dst, ctx.Sender())
}

// Seed derives a seed from the counter, an explicit sender address and
// the transaction context. The counter is incremented exactly once, so
// repeated calls never repeat a seed.
func Seed(c *Counter, sender origin.Address, ctx *txcontext.TxContext) origin.Bytes32 {
	nonce := appendCounter(nil, c)
	nonce = bcs.AppendAddress(nonce, sender)
	nonce = appendSeedCtx(nonce, ctx)
	return digest("seed", nonce)
}

// SeedNoCounter derives a seed from an explicit sender address and the
// transaction context, leaving the shared counter untouched.
func SeedNoCounter(sender origin.Address, ctx *txcontext.TxContext) origin.Bytes32 {
	nonce := bcs.AppendAddress(nil, sender)
	nonce = appendSeedCtx(nonce, ctx)
	return digest("seed_no_counter", nonce)
}

// SeedNoAddress derives a seed from the counter and the transaction
// context, taking the sender from the context.
func SeedNoAddress(c *Counter, ctx *txcontext.TxContext) origin.Bytes32 {
	nonce := appendCounter(nil, c)
	nonce = bcs.AppendAddress(nonce, ctx.Sender())
	nonce = appendSeedCtx(nonce, ctx)
	return digest("seed_no_address", nonce)
}

// SeedNoCtx derives a seed from the counter and an explicit sender
// address only. The cheap variant: no epoch and no fresh object address
// are mixed in, so within one transaction its uniqueness rests entirely
// on the counter.
func SeedNoCtx(c *Counter, sender origin.Address) origin.Bytes32 {
	nonce := appendCounter(nil, c)
	nonce = bcs.AppendAddress(nonce, sender)
	return digest("seed_no_ctx", nonce)
}

// SeedWithCounter derives a seed from the counter alone.
func SeedWithCounter(c *Counter) origin.Bytes32 {
	return digest("seed_with_counter", appendCounter(nil, c))
}

// SeedWithCtx derives a seed from the transaction context alone.
func SeedWithCtx(ctx *txcontext.TxContext) origin.Bytes32 {
	nonce := bcs.AppendAddress(nil, ctx.Sender())
	nonce = appendSeedCtx(nonce, ctx)
	return digest("seed_with_ctx", nonce)
}

// Rand derives a seed from a caller-supplied nonce, the counter and the
// transaction context. The caller nonce is mixed in as-is, without
// re-encoding.
func Rand(nonce []byte, c *Counter, ctx *txcontext.TxContext) origin.Bytes32 {
	buf := append([]byte(nil), nonce...)
	buf = appendCounter(buf, c)
	buf = appendRandCtx(buf, ctx)
	return digest("rand", buf)
}

// RandNoCounter derives a seed from a caller-supplied nonce and the
// transaction context, leaving the shared counter untouched.
func RandNoCounter(nonce []byte, ctx *txcontext.TxContext) origin.Bytes32 {
	buf := append([]byte(nil), nonce...)
	buf = appendRandCtx(buf, ctx)
	return digest("rand_no_counter", buf)
}

// RandNoNonce derives a seed from the counter and the transaction
// context.
func RandNoNonce(c *Counter, ctx *txcontext.TxContext) origin.Bytes32 {
	buf := appendCounter(nil, c)
	buf = appendRandCtx(buf, ctx)
	return digest("rand_no_nonce", buf)
}

// RandNoCtx derives a seed from a caller-supplied nonce and the
// counter. Like SeedNoCtx, nothing from the transaction context is
// mixed in.
func RandNoCtx(nonce []byte, c *Counter) origin.Bytes32 {
	buf := append([]byte(nil), nonce...)
	buf = appendCounter(buf, c)
	return digest("rand_no_ctx", buf)
}

// RandWithCounter derives a seed from the counter alone.
func RandWithCounter(c *Counter) origin.Bytes32 {
	return digest("rand_with_counter", appendCounter(nil, c))
}

// RandWithCtx derives a seed from the transaction context alone.
func RandWithCtx(ctx *txcontext.TxContext) origin.Bytes32 {
	return digest("rand_with_ctx", appendRandCtx(nil, ctx))
}

// RandWithNonce derives a seed from the caller-supplied nonce alone.
// The result is exactly the SHA3-256 digest of the nonce bytes.
func RandWithNonce(nonce []byte) origin.Bytes32 {
	return digest("rand_with_nonce", nonce)
}
