package compositor

import "waylink/pkg/wire"

func init() {
	register("wl_shm", 0, handleShmCreatePool)
	register("wl_shm_pool", 0, handleShmPoolCreateBuffer)
	register("wl_shm_pool", 1, handleShmPoolDestroy)
	register("wl_buffer", 0, handleBufferDestroy)
}

// handleShmCreatePool implements wl_shm.create_pool (op 0): pop the fd
// that arrived via ancillary data, map it read-only, and register the
// new id as wl_shm_pool. A mmap failure is tolerated (shmpool.Registry
// records a null mapping); the fd is still consumed from the queue
// either way.
func handleShmCreatePool(c *Connection, objectID uint32, payload []byte) [][]byte {
	r := wire.NewReader(payload)
	poolID, err := r.Uint()
	if err != nil {
		return nil
	}
	size, err := r.Uint()
	if err != nil {
		return nil
	}

	if fd, ok := c.PopFd(); ok {
		c.Pools.CreatePool(poolID, fd, size)
	}
	c.Objects.Insert(poolID, "wl_shm_pool", 1)
	return nil
}

// handleShmPoolCreateBuffer implements wl_shm_pool.create_buffer (op 0).
func handleShmPoolCreateBuffer(c *Connection, objectID uint32, payload []byte) [][]byte {
	r := wire.NewReader(payload)
	bufID, err := r.Uint()
	if err != nil {
		return nil
	}
	offset, err := r.Int()
	if err != nil {
		return nil
	}
	width, err := r.Int()
	if err != nil {
		return nil
	}
	height, err := r.Int()
	if err != nil {
		return nil
	}
	stride, err := r.Int()
	if err != nil {
		return nil
	}
	format, err := r.Uint()
	if err != nil {
		return nil
	}

	c.Buffers[bufID] = BufferMeta{
		PoolID: objectID,
		Offset: offset,
		Width:  width,
		Height: height,
		Stride: stride,
		Format: format,
	}
	c.Objects.Insert(bufID, "wl_buffer", 1)
	return nil
}

// handleShmPoolDestroy implements wl_shm_pool.destroy (op 1): unmap,
// close the fd, remove the pool. Matches the source's behavior of not
// also scrubbing the pool id from the object table.
func handleShmPoolDestroy(c *Connection, objectID uint32, payload []byte) [][]byte {
	c.Pools.Destroy(objectID)
	return nil
}

// handleBufferDestroy implements wl_buffer.destroy (op 0).
func handleBufferDestroy(c *Connection, objectID uint32, payload []byte) [][]byte {
	c.Objects.Remove(objectID)
	delete(c.Buffers, objectID)
	return nil
}
