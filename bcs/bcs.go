// Copyright (c) 2024 The OriginByte developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package bcs implements the canonical binary serialization format used
// for cross-system interoperability: fixed-width little-endian integers,
// raw fixed-width addresses and ULEB128 length-prefixed byte vectors.
package bcs

import (
	"encoding/binary"

	"github.com/holiman/uint256"

	"github.com/Origin-Byte/originmate/origin"
)

// AppendU8 appends the canonical encoding of v to dst.
func AppendU8(dst []byte, v uint8) []byte {
	return append(dst, v)
}

// AppendU16 appends the canonical encoding of v to dst.
func AppendU16(dst []byte, v uint16) []byte {
	return binary.LittleEndian.AppendUint16(dst, v)
}

// AppendU32 appends the canonical encoding of v to dst.
func AppendU32(dst []byte, v uint32) []byte {
	return binary.LittleEndian.AppendUint32(dst, v)
}

// AppendU64 appends the canonical encoding of v to dst.
func AppendU64(dst []byte, v uint64) []byte {
	return binary.LittleEndian.AppendUint64(dst, v)
}

// AppendU128 appends the canonical 16-byte encoding of v to dst.
// The high 128 bits of v must be zero.
func AppendU128(dst []byte, v *uint256.Int) []byte {
	dst = binary.LittleEndian.AppendUint64(dst, v[0])
	return binary.LittleEndian.AppendUint64(dst, v[1])
}

// AppendU256 appends the canonical 32-byte encoding of v to dst.
func AppendU256(dst []byte, v *uint256.Int) []byte {
	for i := range v {
		dst = binary.LittleEndian.AppendUint64(dst, v[i])
	}
	return dst
}

// AppendAddress appends the canonical encoding of a to dst.
// Addresses are fixed-width and carry no length prefix.
func AppendAddress(dst []byte, a origin.Address) []byte {
	return append(dst, a[:]...)
}

// AppendULEB128 appends the unsigned LEB128 encoding of v to dst.
func AppendULEB128(dst []byte, v uint64) []byte {
	for v >= 0x80 {
		dst = append(dst, byte(v)|0x80)
		v >>= 7
	}
	return append(dst, byte(v))
}

// AppendBytes appends the length-prefixed encoding of b to dst.
func AppendBytes(dst, b []byte) []byte {
	dst = AppendULEB128(dst, uint64(len(b)))
	return append(dst, b...)
}
