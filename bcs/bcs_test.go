// Copyright (c) 2024 The OriginByte developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package bcs

import (
	"strings"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Origin-Byte/originmate/origin"
)

func TestIntegerRoundTrip(t *testing.T) {
	var b []byte
	b = AppendU8(b, 0xfe)
	b = AppendU16(b, 0xbeef)
	b = AppendU32(b, 0xdeadbeef)
	b = AppendU64(b, 0x0102030405060708)
	b = AppendU128(b, uint256.MustFromHex("0x0102030405060708090a0b0c0d0e0f10"))
	b = AppendU256(b, uint256.MustFromHex("0xf102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f20"))

	d := NewDecoder(b)
	assert.Equal(t, uint8(0xfe), d.PeelU8())
	assert.Equal(t, uint16(0xbeef), d.PeelU16())
	assert.Equal(t, uint32(0xdeadbeef), d.PeelU32())
	assert.Equal(t, uint64(0x0102030405060708), d.PeelU64())
	assert.Equal(t, uint256.MustFromHex("0x0102030405060708090a0b0c0d0e0f10"), d.PeelU128())
	assert.Equal(t, uint256.MustFromHex("0xf102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f20"), d.PeelU256())
	assert.Equal(t, 0, d.Len())
}

func TestLittleEndianLayout(t *testing.T) {
	assert.Equal(t, []byte{0x39, 0x30, 0, 0, 0, 0, 0, 0}, AppendU64(nil, 12345))
	assert.Equal(t, []byte{0x01, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, AppendU128(nil, uint256.NewInt(1)))

	b := AppendU256(nil, uint256.NewInt(2))
	require.Len(t, b, 32)
	assert.Equal(t, byte(0x02), b[0])
	assert.Equal(t, byte(0x00), b[31])
}

func TestAddressRoundTrip(t *testing.T) {
	addr := origin.MustParseAddress("0x" + strings.Repeat("cd", origin.AddressLength))

	b := AppendAddress(nil, addr)
	require.Len(t, b, origin.AddressLength)
	assert.Equal(t, addr, NewDecoder(b).PeelAddress())
}

func TestULEB128(t *testing.T) {
	tests := []struct {
		v   uint64
		enc []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{127, []byte{0x7f}},
		{128, []byte{0x80, 0x01}},
		{300, []byte{0xac, 0x02}},
		{1<<64 - 1, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01}},
	}
	for _, tt := range tests {
		enc := AppendULEB128(nil, tt.v)
		assert.Equal(t, tt.enc, enc)
		assert.Equal(t, tt.v, NewDecoder(enc).PeelULEB128())
	}
}

func TestBytesRoundTrip(t *testing.T) {
	payload := []byte("the quick brown fox")

	b := AppendBytes(nil, payload)
	d := NewDecoder(b)
	assert.Equal(t, payload, d.PeelBytes())
	assert.Equal(t, 0, d.Len())

	// empty vector is a lone zero-length prefix
	assert.Equal(t, []byte{0x00}, AppendBytes(nil, nil))
	assert.Empty(t, NewDecoder([]byte{0x00}).PeelBytes())
}

func TestPeelShortBuffer(t *testing.T) {
	assert.Panics(t, func() { NewDecoder(nil).PeelU8() })
	assert.Panics(t, func() { NewDecoder([]byte{1, 2, 3}).PeelU64() })
	assert.Panics(t, func() { NewDecoder(make([]byte, 15)).PeelU128() })
	assert.Panics(t, func() { NewDecoder(make([]byte, 31)).PeelU256() })
	assert.Panics(t, func() { NewDecoder(make([]byte, origin.AddressLength-1)).PeelAddress() })

	// length prefix claiming more than the buffer holds
	assert.Panics(t, func() { NewDecoder([]byte{0x05, 0x01}).PeelBytes() })

	// uleb128 wider than 64 bits
	assert.Panics(t, func() {
		NewDecoder([]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01}).PeelULEB128()
	})
}

func TestRemaining(t *testing.T) {
	d := NewDecoder([]byte{0x01, 0x02, 0x03})
	d.PeelU8()
	assert.Equal(t, []byte{0x02, 0x03}, d.Remaining())
	assert.Equal(t, 2, d.Len())
}
