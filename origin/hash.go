// Copyright (c) 2024 The OriginByte developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package origin

import (
	"hash"
	"sync"

	"github.com/ethereum/go-ethereum/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// hashState bundles a hasher with an output buffer so that a whole
// digest computation makes no allocations once the state is pooled.
type hashState struct {
	hash.Hash
	b32 Bytes32
}

func (s *hashState) sum(data ...[]byte) Bytes32 {
	for _, b := range data {
		s.Write(b)
	}
	s.Sum(s.b32[:0])
	h := s.b32
	s.Reset()
	return h
}

// NewSha3 returns a SHA3-256 hasher.
func NewSha3() hash.Hash {
	return sha3.New256()
}

var sha3StatePool = sync.Pool{
	New: func() any {
		return &hashState{Hash: sha3.New256()}
	},
}

// Sha3 computes the SHA3-256 checksum for given data.
func Sha3(data ...[]byte) Bytes32 {
	s := sha3StatePool.Get().(*hashState)
	h := s.sum(data...)
	sha3StatePool.Put(s)
	return h
}

// NewBlake2b return blake2b-256 hash.
func NewBlake2b() hash.Hash {
	hash, _ := blake2b.New256(nil)
	return hash
}

var blake2bStatePool = sync.Pool{
	New: func() any {
		return &hashState{Hash: NewBlake2b()}
	},
}

// Blake2b computes blake2b-256 checksum for given data.
func Blake2b(data ...[]byte) Bytes32 {
	if len(data) == 1 {
		// the quick version
		return blake2b.Sum256(data[0])
	}
	s := blake2bStatePool.Get().(*hashState)
	h := s.sum(data...)
	blake2bStatePool.Put(s)
	return h
}
