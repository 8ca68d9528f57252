// Package zobristcodec reads and writes the binary Zobrist key file
// dsmga2.ZobristTable is loaded from. It packs the raw little-endian
// uint64 array with a small header (magic, key count, SHA-256 of the
// payload) so a truncated or corrupted key file is caught at load time
// instead of silently producing wrong Zobrist keys downstream.
//
// Adapted from the teacher's federation/hllcodec sketch-attestation codec:
// the same "payload + canonical hash, verified on unpack" shape, retargeted
// from HLL sketch metadata to Zobrist key-file integrity.
package zobristcodec

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"io"
)

// magic identifies a Zobrist key file produced by this codec.
const magic uint32 = 0x5a4b4559 // "ZKEY"

var (
	// ErrInvalidMetadata is returned when the file header is structurally
	// wrong (bad magic, zero count).
	ErrInvalidMetadata = errors.New("zobristcodec: invalid key file header")
	// ErrCorruptPayload is returned when the payload hash does not match
	// the header's recorded hash.
	ErrCorruptPayload = errors.New("zobristcodec: key file hash mismatch")
)

// Encode writes keys to w as a header (magic, count, sha256 of the
// payload) followed by the little-endian uint64 payload itself.
func Encode(w io.Writer, keys []uint64) error {
	if len(keys) == 0 {
		return ErrInvalidMetadata
	}

	payload := make([]byte, 8*len(keys))
	for i, k := range keys {
		binary.LittleEndian.PutUint64(payload[i*8:], k)
	}
	sum := sha256.Sum256(payload)

	header := make([]byte, 4+8+32)
	binary.LittleEndian.PutUint32(header[0:4], magic)
	binary.LittleEndian.PutUint64(header[4:12], uint64(len(keys)))
	copy(header[12:], sum[:])

	if _, err := w.Write(header); err != nil {
		return err
	}
	_, err := w.Write(payload)
	return err
}

// Decode reads a key file written by Encode, verifying the payload hash
// before returning the decoded keys.
func Decode(r io.Reader) ([]uint64, error) {
	header := make([]byte, 4+8+32)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, err
	}

	gotMagic := binary.LittleEndian.Uint32(header[0:4])
	if gotMagic != magic {
		return nil, ErrInvalidMetadata
	}
	count := binary.LittleEndian.Uint64(header[4:12])
	if count == 0 {
		return nil, ErrInvalidMetadata
	}
	wantSum := header[12:]

	payload := make([]byte, 8*count)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, err
	}

	gotSum := sha256.Sum256(payload)
	if !bytesEqual(gotSum[:], wantSum) {
		return nil, ErrCorruptPayload
	}

	keys := make([]uint64, count)
	for i := range keys {
		keys[i] = binary.LittleEndian.Uint64(payload[i*8:])
	}
	return keys, nil
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
