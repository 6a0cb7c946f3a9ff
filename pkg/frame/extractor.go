// Package frame extracts pixel bytes from a committed surface's shm
// buffer and writes them to the host channel as a framed PIXL record.
// It depends only on primitive types so it has no import relationship
// with pkg/compositor — pkg/compositor calls into here, not the other
// way around.
package frame

import (
	"encoding/binary"
	"io"
)

var le = binary.LittleEndian

const magic = "PIXL"

// Extract computes how many whole rows of the buffer fit inside the
// pool's mapped bytes, writes one PIXL header, then that many rows of
// width*4 bytes each. If mapping is nil (the pool failed to map), it
// skips silently. No pixel-format translation is performed; format is
// forwarded verbatim.
func Extract(w io.Writer, surfaceID uint32, width, height int32, offset, stride int32, format uint32, mapping []byte, poolSize uint32) error {
	if mapping == nil {
		return nil
	}
	if width <= 0 || height <= 0 || stride <= 0 || offset < 0 {
		return nil
	}

	row := int(width) * 4
	rows := 0
	for y := int32(0); y < height; y++ {
		rowOffset := int64(offset) + int64(y)*int64(stride)
		if rowOffset+int64(row) > int64(poolSize) {
			break
		}
		rows++
	}
	total := rows * row

	header := make([]byte, 24)
	copy(header[0:4], magic)
	le.PutUint32(header[4:8], surfaceID)
	le.PutUint32(header[8:12], uint32(width))
	le.PutUint32(header[12:16], uint32(height))
	le.PutUint32(header[16:20], format)
	le.PutUint32(header[20:24], uint32(total))

	if _, err := w.Write(header); err != nil {
		return err
	}

	for y := 0; y < rows; y++ {
		rowOffset := int(offset) + y*int(stride)
		if _, err := w.Write(mapping[rowOffset : rowOffset+row]); err != nil {
			return err
		}
	}
	return nil
}
