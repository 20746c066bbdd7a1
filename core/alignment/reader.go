// core/alignment/reader.go
package alignment

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// Parse reads FASTA from r into an Alignment. Sequence lines are uppercased
// so case differences never count as polymorphism; gaps are kept as ordinary
// symbols. Multi-line records are concatenated.
func Parse(r io.Reader) (*Alignment, error) {
	sc := bufio.NewScanner(r)
	const maxLine = 16 * 1024 * 1024 // allow long single-line sequences
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	var (
		aln Alignment
		id  string
		seq []byte
	)
	flush := func() {
		if id == "" && len(seq) == 0 {
			return
		}
		aln.Records = append(aln.Records, Record{ID: id, Seq: seq})
		seq = nil
	}
	for sc.Scan() {
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if id != "" || len(seq) > 0 {
				flush()
			}
			id = parseHeaderID(line[1:])
			continue
		}
		seq = append(seq, bytes.ToUpper(bytes.TrimSpace(line))...)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("alignment scan: %w", err)
	}
	flush()
	if err := aln.Validate(); err != nil {
		return nil, err
	}
	return &aln, nil
}

// ReadFile parses the aligned FASTA at path ("-" for stdin, gzip supported).
func ReadFile(path string) (*Alignment, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	a, err := Parse(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return a, nil
}

func parseHeaderID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}

// openReader resolves "-" to stdin and transparently decompresses gzip
// input, detected by the magic bytes 1F 8B or a .gz suffix.
func openReader(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !isGzip(fh, path) {
		return fh, nil
	}
	gr, err := gzip.NewReader(fh)
	if err != nil {
		_ = fh.Close()
		return nil, err
	}
	return &gzipReadCloser{Reader: gr, gr: gr, fh: fh}, nil
}

// isGzip sniffs the first two bytes and rewinds.
func isGzip(fh *os.File, path string) bool {
	var sig [2]byte
	n, _ := fh.Read(sig[:])
	_, _ = fh.Seek(0, io.SeekStart)
	return (n == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz")
}

// gzipReadCloser closes the decompressor before the underlying file.
type gzipReadCloser struct {
	io.Reader
	gr *gzip.Reader
	fh *os.File
}

func (g *gzipReadCloser) Close() error {
	gerr := g.gr.Close()
	ferr := g.fh.Close()
	if gerr != nil {
		return gerr
	}
	return ferr
}
