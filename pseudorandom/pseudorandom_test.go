// Copyright (c) 2024 The OriginByte developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package pseudorandom

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"

	"github.com/Origin-Byte/originmate/bcs"
	"github.com/Origin-Byte/originmate/origin"
	"github.com/Origin-Byte/originmate/txcontext"
)

var (
	testSender = origin.BytesToAddress([]byte("sender"))
	testTxHash = origin.Blake2b([]byte("tx"))
)

func newTestContext() *txcontext.TxContext {
	return txcontext.New(testTxHash, testSender, 7)
}

func TestRandWithNonce(t *testing.T) {
	// nonce-only derivation is the plain SHA3-256 digest of the input
	assert.Equal(t,
		"0x3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532",
		RandWithNonce([]byte("abc")).String())

	// and it is deterministic
	assert.Equal(t, RandWithNonce([]byte("abc")), RandWithNonce([]byte("abc")))
	assert.NotEqual(t, RandWithNonce([]byte("abc")), RandWithNonce([]byte("abd")))
}

func TestSeedLayout(t *testing.T) {
	got := Seed(NewCounter(), testSender, newTestContext())

	// independently assembled: bcs(counter=1) || sender || bcs(epoch) || fresh id
	ref := newTestContext()
	want := bcs.AppendU256(nil, uint256.NewInt(1))
	want = bcs.AppendAddress(want, testSender)
	want = bcs.AppendU64(want, 7)
	want = append(want, ref.FreshNonceBytes()...)
	assert.Equal(t, origin.Sha3(want), got)
}

func TestRandLayout(t *testing.T) {
	got := Rand([]byte("abc"), NewCounter(), newTestContext())

	// independently assembled: nonce || bcs(counter=1) || fresh id || bcs(epoch) || sender
	ref := newTestContext()
	want := []byte("abc")
	want = bcs.AppendU256(want, uint256.NewInt(1))
	want = append(want, ref.FreshNonceBytes()...)
	want = bcs.AppendU64(want, 7)
	want = bcs.AppendAddress(want, testSender)
	assert.Equal(t, origin.Sha3(want), got)
}

func TestCounterVariantsNeverRepeat(t *testing.T) {
	c := NewCounter()
	assert.NotEqual(t, SeedWithCounter(c), SeedWithCounter(c))
	assert.NotEqual(t, RandWithCounter(c), RandWithCounter(c))
	assert.NotEqual(t, SeedNoCtx(c, testSender), SeedNoCtx(c, testSender))
	assert.NotEqual(t, RandNoCtx([]byte("n"), c), RandNoCtx([]byte("n"), c))

	// eight calls, each incremented the counter exactly once
	assert.Equal(t, uint256.NewInt(8), c.Value())
}

func TestCounterValueChangesSeed(t *testing.T) {
	// identical nonce and context, counter at two different values
	a := Rand([]byte("nonce"), NewCounter(), newTestContext())
	b := Rand([]byte("nonce"), NewCounterAt(uint256.NewInt(100)), newTestContext())
	assert.NotEqual(t, a, b)
}

func TestSeedAndRandDiffer(t *testing.T) {
	// seed- and rand-family context layouts are intentionally different
	a := SeedNoCounter(testSender, newTestContext())
	b := RandNoCounter(nil, newTestContext())
	assert.NotEqual(t, a, b)
}

func TestContextVariantsDeterministic(t *testing.T) {
	assert.Equal(t, SeedWithCtx(newTestContext()), SeedWithCtx(newTestContext()))
	assert.Equal(t, RandWithCtx(newTestContext()), RandWithCtx(newTestContext()))

	// within one context every call consumes a fresh object address
	ctx := newTestContext()
	assert.NotEqual(t, SeedWithCtx(ctx), SeedWithCtx(ctx))
	assert.Equal(t, uint64(2), ctx.IDsCreated())
}

func TestSenderSourceAgreement(t *testing.T) {
	// explicit sender equal to the context sender must agree with the
	// implicit variant
	c1, c2 := NewCounter(), NewCounter()
	assert.Equal(t,
		Seed(c1, testSender, newTestContext()),
		SeedNoAddress(c2, newTestContext()))

	assert.Equal(t,
		SeedNoCounter(testSender, newTestContext()),
		SeedWithCtx(newTestContext()))
}

func TestCallerNonceUsedRaw(t *testing.T) {
	// the caller nonce is not re-encoded, so a nonce that happens to be
	// a bcs encoding is mixed in byte for byte
	nonce := bcs.AppendU64(nil, 42)
	c := NewCounterAt(uint256.NewInt(9))

	got := RandNoCtx(nonce, c)
	want := origin.Sha3(append(append([]byte(nil), nonce...), bcs.AppendU256(nil, uint256.NewInt(10))...))
	assert.Equal(t, want, got)
}
