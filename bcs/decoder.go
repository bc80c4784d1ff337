// Copyright (c) 2024 The OriginByte developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package bcs

import (
	"encoding/binary"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"

	"github.com/Origin-Byte/originmate/origin"
)

var (
	// ErrUnexpectedEOB is the cause of the panic raised when a peel
	// consumes past the end of the buffer.
	ErrUnexpectedEOB = errors.New("bcs: unexpected end of buffer")
	// ErrMalformed is the cause of the panic raised on an encoding that
	// can never be produced by the canonical encoder.
	ErrMalformed = errors.New("bcs: malformed encoding")
)

// Decoder consumes canonical encodings from the front of a buffer.
//
// A buffer too short for the requested value is a precondition
// violation, not a recoverable condition: peel methods panic, matching
// the all-or-nothing abort semantics of the execution environment.
// Callers that accept untrusted input must validate lengths up front.
type Decoder struct {
	buf []byte
}

// NewDecoder creates a decoder consuming b from the front.
func NewDecoder(b []byte) *Decoder {
	return &Decoder{b}
}

func (d *Decoder) take(n int) []byte {
	if len(d.buf) < n {
		panic(errors.WithMessagef(ErrUnexpectedEOB, "want %d bytes, have %d", n, len(d.buf)))
	}
	b := d.buf[:n]
	d.buf = d.buf[n:]
	return b
}

// PeelU8 consumes and returns one u8.
func (d *Decoder) PeelU8() uint8 {
	return d.take(1)[0]
}

// PeelU16 consumes and returns one u16.
func (d *Decoder) PeelU16() uint16 {
	return binary.LittleEndian.Uint16(d.take(2))
}

// PeelU32 consumes and returns one u32.
func (d *Decoder) PeelU32() uint32 {
	return binary.LittleEndian.Uint32(d.take(4))
}

// PeelU64 consumes and returns one u64.
func (d *Decoder) PeelU64() uint64 {
	return binary.LittleEndian.Uint64(d.take(8))
}

// PeelU128 consumes and returns one u128.
func (d *Decoder) PeelU128() *uint256.Int {
	b := d.take(16)
	var v uint256.Int
	v[0] = binary.LittleEndian.Uint64(b)
	v[1] = binary.LittleEndian.Uint64(b[8:])
	return &v
}

// PeelU256 consumes and returns one u256.
func (d *Decoder) PeelU256() *uint256.Int {
	b := d.take(32)
	var v uint256.Int
	for i := range v {
		v[i] = binary.LittleEndian.Uint64(b[i*8:])
	}
	return &v
}

// PeelAddress consumes and returns one address.
func (d *Decoder) PeelAddress() origin.Address {
	var a origin.Address
	copy(a[:], d.take(origin.AddressLength))
	return a
}

// PeelULEB128 consumes and returns one unsigned LEB128 value.
func (d *Decoder) PeelULEB128() uint64 {
	var v uint64
	for shift := uint(0); ; shift += 7 {
		if shift > 63 {
			panic(errors.WithMessage(ErrMalformed, "uleb128 exceeds 64 bits"))
		}
		b := d.take(1)[0]
		v |= uint64(b&0x7f) << shift
		if b < 0x80 {
			return v
		}
	}
}

// PeelBytes consumes and returns one length-prefixed byte vector.
// The returned slice is a copy and does not alias the input buffer.
func (d *Decoder) PeelBytes() []byte {
	n := d.PeelULEB128()
	if n > uint64(len(d.buf)) {
		panic(errors.WithMessagef(ErrUnexpectedEOB, "want %d bytes, have %d", n, len(d.buf)))
	}
	return append([]byte(nil), d.take(int(n))...)
}

// Len returns the number of unconsumed bytes.
func (d *Decoder) Len() int {
	return len(d.buf)
}

// Remaining returns the unconsumed tail of the buffer.
func (d *Decoder) Remaining() []byte {
	return d.buf
}
