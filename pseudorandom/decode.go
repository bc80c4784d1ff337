// Copyright (c) 2024 The OriginByte developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package pseudorandom

import (
	"github.com/holiman/uint256"

	"github.com/Origin-Byte/originmate/bcs"
)

// The UNFromBytes family turns seed bytes into unsigned integers. They
// are total: the first min(len(b), N/8) bytes are folded big-endian
// into the result and anything past that position is dropped. Inputs
// shorter than N/8 bytes behave as if left-padded with zeros, so an
// empty input decodes to 0.

// U8FromBytes decodes the first byte of b, or 0 if b is empty.
func U8FromBytes(b []byte) uint8 {
	if len(b) == 0 {
		return 0
	}
	return b[0]
}

// U64FromBytes folds the first 8 bytes of b big-endian into a u64.
func U64FromBytes(b []byte) uint64 {
	if len(b) > 8 {
		b = b[:8]
	}
	var v uint64
	for _, x := range b {
		v = v<<8 | uint64(x)
	}
	return v
}

// U128FromBytes folds the first 16 bytes of b big-endian into a u128.
func U128FromBytes(b []byte) *uint256.Int {
	if len(b) > 16 {
		b = b[:16]
	}
	return new(uint256.Int).SetBytes(b)
}

// U256FromBytes folds the first 32 bytes of b big-endian into a u256.
func U256FromBytes(b []byte) *uint256.Int {
	if len(b) > 32 {
		b = b[:32]
	}
	return new(uint256.Int).SetBytes(b)
}

// The BCSUNFromBytes family peels one canonically encoded integer from
// the front of b. Unlike the raw decoders above these are strict: a
// buffer shorter than the encoding is a precondition violation and
// panics, it does not yield a zero value.

// BCSU8FromBytes peels one canonical u8 from the front of b.
func BCSU8FromBytes(b []byte) uint8 {
	return bcs.NewDecoder(b).PeelU8()
}

// BCSU64FromBytes peels one canonical u64 from the front of b.
func BCSU64FromBytes(b []byte) uint64 {
	return bcs.NewDecoder(b).PeelU64()
}

// BCSU128FromBytes peels one canonical u128 from the front of b.
func BCSU128FromBytes(b []byte) *uint256.Int {
	return bcs.NewDecoder(b).PeelU128()
}
