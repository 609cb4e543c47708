// Package ingest reads JSONL journal records for the backfill import
package ingest

import (
	"bufio"
	"compress/gzip"
	"encoding/json"
	"io"
	"strings"

	"lipi/internal/services/backfill/domain"
)

// maxLineBytes caps a single record line; journaling snippets are short, so
// anything beyond this is junk input rather than data
const maxLineBytes = 1 << 20

// Reader yields one Record per JSONL line. Malformed lines are counted, not
// fatal; the import keeps going
type Reader struct {
	sc        *bufio.Scanner
	close     func() error
	lines     int
	malformed int
}

// NewReader wraps rc, transparently decompressing gzip input
func NewReader(rc io.ReadCloser, gzipped bool) (*Reader, error) {
	var src io.Reader = rc
	closeFn := rc.Close
	if gzipped {
		zr, err := gzip.NewReader(rc)
		if err != nil {
			_ = rc.Close()
			return nil, err
		}
		src = zr
		closeFn = func() error {
			zerr := zr.Close()
			if cerr := rc.Close(); cerr != nil {
				return cerr
			}
			return zerr
		}
	}

	sc := bufio.NewScanner(src)
	sc.Buffer(make([]byte, 64<<10), maxLineBytes)
	return &Reader{sc: sc, close: closeFn}, nil
}

// Next returns the next well-formed record, skipping blank and malformed
// lines. io.EOF signals the end of input
func (r *Reader) Next() (domain.Record, error) {
	for r.sc.Scan() {
		r.lines++
		line := strings.TrimSpace(r.sc.Text())
		if line == "" {
			continue
		}
		var rec domain.Record
		if err := json.Unmarshal([]byte(line), &rec); err != nil || strings.TrimSpace(rec.Text) == "" {
			r.malformed++
			continue
		}
		return rec, nil
	}
	if err := r.sc.Err(); err != nil {
		return domain.Record{}, err
	}
	return domain.Record{}, io.EOF
}

// Stats returns lines seen and malformed lines skipped so far
func (r *Reader) Stats() (lines, malformed int) { return r.lines, r.malformed }

// Close releases the underlying source
func (r *Reader) Close() error { return r.close() }
