// Package shmpool implements the per-connection shared-memory pool
// registry backing wl_shm_pool / wl_buffer: a read-only mmap of a
// client-supplied fd, indexed by pool id.
package shmpool

import "golang.org/x/sys/unix"

// Pool is one mapped shm pool. Mapping is nil if the mmap call failed;
// callers must treat that as "skip silently" rather than an error
// (spec: mmap failure retains the fd with a null mapping).
type Pool struct {
	Fd      int
	Mapping []byte
	Size    uint32
}

// Registry is a per-connection map of pool id to Pool.
type Registry struct {
	pools map[uint32]*Pool
}

func New() *Registry {
	return &Registry{pools: make(map[uint32]*Pool)}
}

// CreatePool maps fd read-only and records it under id. A mmap failure
// is not an error here — the pool is still recorded, with a nil
// Mapping, so subsequent buffer lookups against it resolve to "skip".
func (r *Registry) CreatePool(id uint32, fd int, size uint32) {
	mapping, err := unix.Mmap(fd, 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		r.pools[id] = &Pool{Fd: fd, Mapping: nil, Size: size}
		return
	}
	r.pools[id] = &Pool{Fd: fd, Mapping: mapping, Size: size}
}

// Lookup returns the pool registered under id, if any.
func (r *Registry) Lookup(id uint32) (*Pool, bool) {
	p, ok := r.pools[id]
	return p, ok
}

// Destroy unmaps (if mapped) and closes the fd for id, then removes it
// from the registry. Destroying an absent id is a no-op.
func (r *Registry) Destroy(id uint32) {
	p, ok := r.pools[id]
	if !ok {
		return
	}
	if p.Mapping != nil {
		_ = unix.Munmap(p.Mapping)
	}
	_ = unix.Close(p.Fd)
	delete(r.pools, id)
}

// Close tears down every remaining pool, unmapping before closing fds,
// in the order connection teardown requires.
func (r *Registry) Close() {
	for id := range r.pools {
		r.Destroy(id)
	}
}

// Len reports the number of live pools.
func (r *Registry) Len() int {
	return len(r.pools)
}
