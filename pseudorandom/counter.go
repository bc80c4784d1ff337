// Copyright (c) 2024 The OriginByte developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package pseudorandom

import (
	"sync"

	"github.com/holiman/uint256"
)

// Counter is the shared 256-bit counter mixed into counter-derived
// nonces. Exactly one instance exists per deployment and its value is
// strictly increasing across reads. The mutex stands in for the host's
// transaction serialization guarantee: no two callers ever observe the
// same post-increment value.
type Counter struct {
	mu    sync.Mutex
	value uint256.Int
}

// NewCounter creates a counter starting at zero.
func NewCounter() *Counter {
	return &Counter{}
}

// NewCounterAt creates a counter starting at the given value. Used to
// replay a known counter lineage offline; on-chain deployments always
// start at zero.
func NewCounterAt(start *uint256.Int) *Counter {
	c := &Counter{}
	c.value.Set(start)
	return c
}

// Increment adds 1 to the counter and returns a copy of the new value.
func (c *Counter) Increment() *uint256.Int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value.AddUint64(&c.value, 1)
	return c.value.Clone()
}

// Value returns a snapshot of the current counter value.
func (c *Counter) Value() *uint256.Int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value.Clone()
}
