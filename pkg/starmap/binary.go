package starmap

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"
	"os"
	"path/filepath"
	"sort"
	"unsafe"
)

// Binary format: magic, version, system count, then for each system its
// ID, X, Y, Z and adjacency length, followed by the flattened adjacency
// records for all systems in the same order, then a trailing CRC32 of
// everything written before it. Adjacency records and coordinate triples
// are written as raw arrays via unsafe.Slice, avoiding a per-element
// encode/decode pass over what is otherwise fixed-width data.
const (
	magic         uint32 = 0x53544152 // "STAR"
	formatVersion uint16 = 1
)

type systemHeader struct {
	ID        SystemID
	_         [6]byte // pad to keep X aligned at offset 8
	X, Y, Z   float64
	Adjacency uint32
	_         uint32
}

// WriteBinary serializes g to path, writing through a temporary file in the
// same directory and renaming into place so a crash or concurrent reader
// never observes a partially written graph.
func WriteBinary(g *Graph, path string) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".starmap-*.tmp")
	if err != nil {
		return fmt.Errorf("write binary graph: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	crc := crc32.NewIEEE()
	w := io.MultiWriter(tmp, crc)

	if err = binary.Write(w, binary.LittleEndian, magic); err != nil {
		return fmt.Errorf("write binary graph: %w", err)
	}
	if err = binary.Write(w, binary.LittleEndian, formatVersion); err != nil {
		return fmt.Errorf("write binary graph: %w", err)
	}
	if err = binary.Write(w, binary.LittleEndian, uint32(len(g.Systems))); err != nil {
		return fmt.Errorf("write binary graph: %w", err)
	}

	// Deterministic order: ascending by SystemID, so re-reading always
	// reproduces the same Graph value.
	ids := make([]SystemID, 0, len(g.Systems))
	for id := range g.Systems {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		s := g.Systems[id]
		hdr := systemHeader{ID: id, X: s.X, Y: s.Y, Z: s.Z, Adjacency: uint32(len(s.Adjacency))}
		hdrBytes := unsafe.Slice((*byte)(unsafe.Pointer(&hdr)), unsafe.Sizeof(hdr))
		if _, err = w.Write(hdrBytes); err != nil {
			return fmt.Errorf("write binary graph: %w", err)
		}
	}
	for _, id := range ids {
		s := g.Systems[id]
		if len(s.Adjacency) == 0 {
			continue
		}
		adjBytes := unsafe.Slice((*byte)(unsafe.Pointer(&s.Adjacency[0])), len(s.Adjacency)*int(unsafe.Sizeof(Connection{})))
		if _, err = w.Write(adjBytes); err != nil {
			return fmt.Errorf("write binary graph: %w", err)
		}
	}

	if err = binary.Write(tmp, binary.LittleEndian, crc.Sum32()); err != nil {
		return fmt.Errorf("write binary graph: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("write binary graph: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("write binary graph: %w", err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("write binary graph: %w", err)
	}
	return nil
}

// ReadBinary loads a Graph previously written by WriteBinary, verifying the
// magic header, version, and trailing checksum.
func ReadBinary(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read binary graph: %w", err)
	}
	const trailerSize = 4
	if len(data) < trailerSize {
		return nil, fmt.Errorf("read binary graph: file too short")
	}
	body, trailer := data[:len(data)-trailerSize], data[len(data)-trailerSize:]
	wantCRC := binary.LittleEndian.Uint32(trailer)
	if gotCRC := crc32.ChecksumIEEE(body); gotCRC != wantCRC {
		return nil, fmt.Errorf("read binary graph: checksum mismatch (got %x, want %x)", gotCRC, wantCRC)
	}

	off := 0
	readU32 := func() (uint32, error) {
		if off+4 > len(body) {
			return 0, fmt.Errorf("read binary graph: truncated")
		}
		v := binary.LittleEndian.Uint32(body[off:])
		off += 4
		return v, nil
	}
	readU16 := func() (uint16, error) {
		if off+2 > len(body) {
			return 0, fmt.Errorf("read binary graph: truncated")
		}
		v := binary.LittleEndian.Uint16(body[off:])
		off += 2
		return v, nil
	}

	gotMagic, err := readU32()
	if err != nil {
		return nil, err
	}
	if gotMagic != magic {
		return nil, fmt.Errorf("read binary graph: bad magic %x", gotMagic)
	}
	version, err := readU16()
	if err != nil {
		return nil, err
	}
	if version != formatVersion {
		return nil, fmt.Errorf("read binary graph: unsupported version %d", version)
	}
	count, err := readU32()
	if err != nil {
		return nil, err
	}

	// Headers and adjacency are copied into freshly allocated, naturally
	// aligned Go slices rather than cast in place: body's backing array
	// has no alignment guarantee relative to off, and systemHeader/
	// Connection contain 8-byte fields that require it.
	hdrSize := int(unsafe.Sizeof(systemHeader{}))
	headers := make([]systemHeader, count)
	for i := range headers {
		if off+hdrSize > len(body) {
			return nil, fmt.Errorf("read binary graph: truncated system header")
		}
		dst := unsafe.Slice((*byte)(unsafe.Pointer(&headers[i])), hdrSize)
		copy(dst, body[off:off+hdrSize])
		off += hdrSize
	}

	g := NewGraph()
	connSize := int(unsafe.Sizeof(Connection{}))
	for _, hdr := range headers {
		n := int(hdr.Adjacency)
		var adj []Connection
		if n > 0 {
			size := n * connSize
			if off+size > len(body) {
				return nil, fmt.Errorf("read binary graph: truncated adjacency list")
			}
			adj = make([]Connection, n)
			dst := unsafe.Slice((*byte)(unsafe.Pointer(&adj[0])), size)
			copy(dst, body[off:off+size])
			off += size
		}
		g.Systems[hdr.ID] = &System{ID: hdr.ID, X: hdr.X, Y: hdr.Y, Z: hdr.Z, Adjacency: adj}
	}

	return g, nil
}
