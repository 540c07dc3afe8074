package binaryserializer

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// maxItems is the number of buffers to keep in the free
// list to use for binary serialization and deserialization.
const maxItems = 1024

// binaryFreeList provides a free list of buffers to use for serializing and
// deserializing primitive integer values to and from io.Readers and io.Writers.
//
// It is a concurrent safe free list of byte slices (up to maxItems) that have
// a cap of 8, so it supports up to a uint64.
var binaryFreeList = make(chan []byte, maxItems)

// Borrow returns a byte slice from the free list with a length of 8. A new
// buffer is allocated if there are not any available on the free list.
func Borrow() []byte {
	var buf []byte
	select {
	case buf = <-binaryFreeList:
	default:
		buf = make([]byte, 8)
	}
	return buf[:8]
}

// Return puts the provided byte slice back on the free list. The buffer MUST
// have been obtained via the Borrow function and therefore have a cap of 8.
func Return(buf []byte) {
	select {
	case binaryFreeList <- buf:
	default:
		// Let it go to the garbage collector.
	}
}

// read fills a borrowed buffer of the given size from r and hands it to
// decode before returning the buffer to the free list.
func read(r io.Reader, size int, decode func([]byte)) error {
	buf := Borrow()[:size]
	defer Return(buf)
	if _, err := io.ReadFull(r, buf); err != nil {
		return errors.WithStack(err)
	}
	decode(buf)
	return nil
}

// write lets encode fill a borrowed buffer of the given size and writes it to w.
func write(w io.Writer, size int, encode func([]byte)) error {
	buf := Borrow()[:size]
	defer Return(buf)
	encode(buf)
	_, err := w.Write(buf)
	return errors.WithStack(err)
}

// Uint8 reads a single byte from the provided reader.
func Uint8(r io.Reader) (rv uint8, err error) {
	err = read(r, 1, func(buf []byte) { rv = buf[0] })
	return rv, err
}

// Uint16 reads two little-endian bytes from the provided reader.
func Uint16(r io.Reader) (rv uint16, err error) {
	err = read(r, 2, func(buf []byte) { rv = binary.LittleEndian.Uint16(buf) })
	return rv, err
}

// Uint32 reads four little-endian bytes from the provided reader.
func Uint32(r io.Reader) (rv uint32, err error) {
	err = read(r, 4, func(buf []byte) { rv = binary.LittleEndian.Uint32(buf) })
	return rv, err
}

// Uint64 reads eight little-endian bytes from the provided reader.
func Uint64(r io.Reader) (rv uint64, err error) {
	err = read(r, 8, func(buf []byte) { rv = binary.LittleEndian.Uint64(buf) })
	return rv, err
}

// Int32 reads a little-endian two's complement int32 from the provided reader.
func Int32(r io.Reader) (int32, error) {
	rv, err := Uint32(r)
	return int32(rv), err
}

// Int64 reads a little-endian two's complement int64 from the provided reader.
func Int64(r io.Reader) (int64, error) {
	rv, err := Uint64(r)
	return int64(rv), err
}

// PutUint8 writes a single byte to the given writer.
func PutUint8(w io.Writer, val uint8) error {
	return write(w, 1, func(buf []byte) { buf[0] = val })
}

// PutUint16 writes val to w as two little-endian bytes.
func PutUint16(w io.Writer, val uint16) error {
	return write(w, 2, func(buf []byte) { binary.LittleEndian.PutUint16(buf, val) })
}

// PutUint32 writes val to w as four little-endian bytes.
func PutUint32(w io.Writer, val uint32) error {
	return write(w, 4, func(buf []byte) { binary.LittleEndian.PutUint32(buf, val) })
}

// PutUint64 writes val to w as eight little-endian bytes.
func PutUint64(w io.Writer, val uint64) error {
	return write(w, 8, func(buf []byte) { binary.LittleEndian.PutUint64(buf, val) })
}

// PutInt32 writes val to w as a four byte little-endian two's complement.
func PutInt32(w io.Writer, val int32) error {
	return PutUint32(w, uint32(val))
}

// PutInt64 writes val to w as an eight byte little-endian two's complement.
func PutInt64(w io.Writer, val int64) error {
	return PutUint64(w, uint64(val))
}
