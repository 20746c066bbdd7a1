// core/session/session.go

// Package session persists a completed run as an opaque compressed
// container: enough to resume the breakpoint extractor and any presentation
// layer without recomputing windows or the composition table.
package session

import (
	"compress/gzip"
	"encoding/gob"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/kjemmett/TARGet/core/barcode"
	"github.com/kjemmett/TARGet/core/breakpoint"
)

// formatVersion guards against loading containers written by an
// incompatible build.
const formatVersion = 1

var (
	// ErrCorrupt indicates the container could not be decoded.
	ErrCorrupt = errors.New("session: corrupt or truncated container")
	// ErrVersion indicates a container from an incompatible format version.
	ErrVersion = errors.New("session: incompatible container version")
)

// Session is the persisted result of one run. Distances are stored
// row-major (N*N) so the container does not depend on any matrix library's
// encoding.
type Session struct {
	Version   int
	Labels    []string
	Positions []int
	Reduced   [][]byte
	DistN     int
	DistData  []float64
	Final     barcode.Barcode
	Blocks    []breakpoint.RateBlock
}

// Write gob-encodes the session through gzip.
func (s *Session) Write(w io.Writer) error {
	s.Version = formatVersion
	zw := gzip.NewWriter(w)
	if err := gob.NewEncoder(zw).Encode(s); err != nil {
		return fmt.Errorf("session encode: %w", err)
	}
	return zw.Close()
}

// Read decodes a session container and validates its version.
func Read(r io.Reader) (*Session, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	defer func() { _ = zr.Close() }()
	var s Session
	if err := gob.NewDecoder(zr).Decode(&s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if s.Version != formatVersion {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrVersion, s.Version, formatVersion)
	}
	return &s, nil
}

// WriteFile persists the session to path.
func (s *Session) WriteFile(path string) error {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := s.Write(fh); err != nil {
		_ = fh.Close()
		return err
	}
	return fh.Close()
}

// ReadFile loads a persisted session from path.
func ReadFile(path string) (*Session, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()
	s, err := Read(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
