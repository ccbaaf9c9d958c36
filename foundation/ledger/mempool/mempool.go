// Package mempool maintains the pool of transactions waiting to be sealed
// into the next block.
package mempool

import (
	"sync"

	"github.com/chalkchain/chalkchain/foundation/ledger/block"
)

// Mempool represents a cache of transactions in submission order. There is
// no fee market or per account keying, a transaction waits in line until the
// next block is sealed.
type Mempool struct {
	mu   sync.RWMutex
	pool []block.Tx
}

// New constructs a new mempool.
func New() *Mempool {
	return &Mempool{
		pool: []block.Tx{},
	}
}

// Count returns the current number of transactions in the pool.
func (mp *Mempool) Count() int {
	mp.mu.RLock()
	defer mp.mu.RUnlock()

	return len(mp.pool)
}

// Append adds a transaction to the end of the pool and returns the new
// number of transactions in the pool.
func (mp *Mempool) Append(tx block.Tx) int {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	mp.pool = append(mp.pool, tx)

	return len(mp.pool)
}

// Copy returns a copy of the pool in submission order.
func (mp *Mempool) Copy() []block.Tx {
	mp.mu.RLock()
	defer mp.mu.RUnlock()

	txs := make([]block.Tx, len(mp.pool))
	copy(txs, mp.pool)

	return txs
}

// Drain removes and returns every transaction in the pool as one atomic
// operation. Sealing a block must never observe a partial pool.
func (mp *Mempool) Drain() []block.Tx {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	txs := mp.pool
	mp.pool = []block.Tx{}

	return txs
}

// Truncate clears all the transactions from the pool.
func (mp *Mempool) Truncate() {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	mp.pool = []block.Tx{}
}
