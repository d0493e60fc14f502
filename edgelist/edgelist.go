// Package edgelist loads and exports graphs as plain-text edge lists.
//
// Input format:
//
//	One edge per line, two whitespace-separated integers: "source destination".
//	Each parsed line becomes core.Graph.AddEdge(source, destination, 1).
//	Lines with any other token count, or with a token that is not an integer,
//	are skipped with a warning and counted in Stats.Skipped.
//	Streams starting with the gzip magic bytes are decompressed transparently,
//	so "facebook_combined.txt.gz" and "facebook_combined.txt" load the same way.
//
// Output format:
//
//	One line per stored record, "source destination weight\n", in graph iteration
//	order. Every undirected edge therefore appears twice, once per direction.
//	Export gzips the same text when the target path ends in ".gz".
//
// Error handling:
//
//   - A missing input file is logged and reported through Stats.Missing; it is
//     not an error and leaves the graph untouched.
//   - Malformed lines never abort a load, including lines over maxLineBytes.
//   - Read failures (I/O, corrupt gzip, cancelled context) are returned wrapped.
//     Edges added before the failure stay in the graph; each AddEdge is atomic,
//     so the graph is consistent either way.
package edgelist

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/internal/ctxlog"
)

// DefaultWeight is the weight given to every edge read from an edge list.
const DefaultWeight int64 = 1

// maxLineBytes bounds a single input line. Longer lines are skipped.
const maxLineBytes = 1 << 20

// readBufBytes sizes the read buffer; longer lines are assembled from chunks.
const readBufBytes = 64 * 1024

// cancelCheckEvery controls how often Read polls ctx for cancellation.
const cancelCheckEvery = 4096

// gzipMagic is the two-byte gzip stream header.
var gzipMagic = []byte{0x1f, 0x8b}

// ErrNilGraph indicates that a nil *core.Graph was passed in.
var ErrNilGraph = errors.New("edgelist: graph is nil")

// Stats summarizes one load.
type Stats struct {
	Lines      int  // lines read, including skipped ones
	Edges      int  // lines turned into AddEdge calls
	Skipped    int  // malformed lines
	Missing    bool // input file did not exist; nothing was loaded
	Compressed bool // input was gzip-compressed
}

// Load reads the edge list at path into g.
//
// A missing file is logged at warn level and yields Stats{Missing: true} with a
// nil error.
func Load(ctx context.Context, path string, g *core.Graph) (Stats, error) {
	logger := ctxlog.FromContext(ctx)
	if g == nil {
		return Stats{}, ErrNilGraph
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Warn("Edge-list file not found, nothing loaded.", "path", path)
			return Stats{Missing: true}, nil
		}
		return Stats{}, fmt.Errorf("edgelist: open %s: %w", path, err)
	}
	defer f.Close()

	logger.Debug("Loading edge list.", "path", path)
	st, err := Read(ctx, f, g)
	if err != nil {
		return st, fmt.Errorf("edgelist: load %s: %w", path, err)
	}
	logger.Debug("Edge list loaded.", "path", path, "lines", st.Lines, "edges", st.Edges, "skipped", st.Skipped, "gzip", st.Compressed)

	return st, nil
}

// Read parses an edge list from r into g, decompressing gzip input on the fly.
func Read(ctx context.Context, r io.Reader, g *core.Graph) (Stats, error) {
	logger := ctxlog.FromContext(ctx)
	var st Stats
	if g == nil {
		return st, ErrNilGraph
	}

	br := bufio.NewReader(r)
	src := io.Reader(br)
	if head, err := br.Peek(len(gzipMagic)); err == nil && head[0] == gzipMagic[0] && head[1] == gzipMagic[1] {
		zr, err := gzip.NewReader(br)
		if err != nil {
			return st, fmt.Errorf("edgelist: gzip header: %w", err)
		}
		defer zr.Close()
		src = zr
		st.Compressed = true
	}

	lr := bufio.NewReaderSize(src, readBufBytes)
	var line []byte
	for {
		if st.Lines%cancelCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return st, err
			}
		}

		var oversize bool
		var err error
		line, oversize, err = readLine(lr, line[:0])
		if err != nil && !errors.Is(err, io.EOF) {
			return st, fmt.Errorf("edgelist: read line %d: %w", st.Lines+1, err)
		}
		if errors.Is(err, io.EOF) && len(line) == 0 && !oversize {
			break
		}
		st.Lines++

		if oversize {
			st.Skipped++
			logger.Warn("Skipping line.", "line", st.Lines, "reason", "longer than "+strconv.Itoa(maxLineBytes)+" bytes")
		} else if u, v, reason := parseLine(string(line)); reason != "" {
			st.Skipped++
			logger.Warn("Skipping line.", "line", st.Lines, "text", string(line), "reason", reason)
		} else {
			g.AddEdge(u, v, DefaultWeight)
			st.Edges++
		}

		if err != nil {
			break
		}
	}

	return st, nil
}

// readLine appends the next line of r to buf without its "\n" or "\r\n"
// terminator. A line longer than maxLineBytes is consumed to its end but not
// kept: buf comes back empty with oversize set. err is io.EOF when r ended.
func readLine(r *bufio.Reader, buf []byte) (line []byte, oversize bool, err error) {
	for {
		chunk, rerr := r.ReadSlice('\n')
		if !oversize {
			if len(buf)+len(chunk) > maxLineBytes+2 {
				oversize = true
				buf = buf[:0]
			} else {
				buf = append(buf, chunk...)
			}
		}
		if errors.Is(rerr, bufio.ErrBufferFull) {
			continue
		}

		buf = bytes.TrimSuffix(buf, []byte("\n"))
		buf = bytes.TrimSuffix(buf, []byte("\r"))
		if !oversize && len(buf) > maxLineBytes {
			oversize = true
			buf = buf[:0]
		}

		return buf, oversize, rerr
	}
}

// parseLine splits "src dst" into two integers. A non-empty reason means the
// line must be skipped.
func parseLine(line string) (int, int, string) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, "want 2 fields, got " + strconv.Itoa(len(fields))
	}
	u, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, "bad source: " + fields[0]
	}
	v, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, "bad destination: " + fields[1]
	}

	return u, v, ""
}

// Write serializes every stored record of g as "source destination weight\n",
// in graph iteration order. It returns the number of lines written.
func Write(w io.Writer, g *core.Graph) (int, error) {
	if g == nil {
		return 0, ErrNilGraph
	}

	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 64)
	n := 0
	for _, e := range g.Snapshot().Edges() {
		buf = buf[:0]
		buf = strconv.AppendInt(buf, int64(e.From), 10)
		buf = append(buf, ' ')
		buf = strconv.AppendInt(buf, int64(e.To), 10)
		buf = append(buf, ' ')
		buf = strconv.AppendInt(buf, e.Weight, 10)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return n, fmt.Errorf("edgelist: write: %w", err)
		}
		n++
	}
	if err := bw.Flush(); err != nil {
		return n, fmt.Errorf("edgelist: flush: %w", err)
	}

	return n, nil
}

// Export writes g to path, creating or truncating the file. A ".gz" suffix
// gzips the output.
func Export(ctx context.Context, path string, g *core.Graph) (n int, err error) {
	logger := ctxlog.FromContext(ctx)
	if g == nil {
		return 0, ErrNilGraph
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("edgelist: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("edgelist: close %s: %w", path, cerr)
		}
	}()

	var dst io.Writer = f
	var zw *gzip.Writer
	if strings.HasSuffix(path, ".gz") {
		zw = gzip.NewWriter(f)
		dst = zw
	}

	n, err = Write(dst, g)
	if err != nil {
		return n, err
	}
	if zw != nil {
		if err = zw.Close(); err != nil {
			return n, fmt.Errorf("edgelist: gzip %s: %w", path, err)
		}
	}
	logger.Debug("Edge list exported.", "path", path, "records", n, "gzip", zw != nil)

	return n, nil
}
