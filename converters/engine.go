package converters

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/darianmavgo/mkclickhouse/converters/common"
)

var ErrUnmatchedLine = errors.New("line matches no known statement kind")

// Rewriter converts a MySQL data dump into ClickHouse syntax one line at a time.
// It tracks the table whose rows are being emitted, so it must see lines in dump order.
// A Rewriter is not safe for concurrent use.
type Rewriter struct {
	Config common.ConversionConfig

	rules    map[string]common.Transformer
	table    string
	hasTable bool
	stats    Stats
}

// Ensure Rewriter implements StreamConverter
var _ common.StreamConverter = (*Rewriter)(nil)

// NewRewriter creates a Rewriter with the table transformers named in config resolved.
// A nil config selects the stock Sakila conversion.
func NewRewriter(config *common.ConversionConfig) (*Rewriter, error) {
	if config == nil {
		config = common.DefaultConversionConfig()
	}

	rules := make(map[string]common.Transformer, len(config.TableTransforms))
	for table, name := range config.TableTransforms {
		t, err := Lookup(name)
		if err != nil {
			return nil, fmt.Errorf("failed to bind transformer for table %s: %w", table, err)
		}
		rules[table] = t
	}

	return &Rewriter{
		Config: *config,
		rules:  rules,
	}, nil
}

// CurrentTable returns the table named by the most recent dump marker.
// ok is false until a marker has been seen.
func (r *Rewriter) CurrentTable() (table string, ok bool) {
	return r.table, r.hasTable
}

// Stats returns the counters accumulated so far.
func (r *Rewriter) Stats() Stats {
	return r.stats
}

// RewriteLine classifies line, updates the current table and returns the text to emit.
// emit is false when the line must be dropped.
func (r *Rewriter) RewriteLine(line string) (out string, kind LineKind, emit bool) {
	r.stats.Read++
	out, kind, emit = r.rewrite(line)
	if emit {
		r.stats.Emitted++
	} else {
		r.stats.Dropped++
	}
	return out, kind, emit
}

func (r *Rewriter) rewrite(line string) (string, LineKind, bool) {
	if common.IsControlLine(line) {
		return "", KindControl, false
	}

	if common.IsDumpMarker(line) {
		if table, ok := common.MarkerTable(line); ok {
			r.enterTable(table)
		}
		return line, KindMarker, true
	}

	if strings.HasPrefix(line, common.InsertPrefix) {
		if r.excluded() {
			r.stats.Excluded++
			return "", KindInsert, false
		}
		line = common.QualifyInsert(line, r.Config.Namespace)
		return r.transform(line), KindInsert, true
	}

	if strings.HasPrefix(line, common.ContinuationPrefix) && r.hasTable {
		if r.excluded() {
			r.stats.Excluded++
			return "", KindContinuation, false
		}
		return r.transform(line), KindContinuation, true
	}

	if common.IsComment(line) {
		return line, KindComment, true
	}
	if common.IsBlank(line) {
		return line, KindBlank, true
	}

	r.stats.Unmatched++
	return "", KindUnmatched, false
}

func (r *Rewriter) enterTable(table string) {
	r.table = table
	r.hasTable = true
	r.stats.Tables++
	if r.Config.Verbose {
		if r.Config.IsExcluded(table) {
			log.Printf("[MKCLICKHOUSE] Table %s is excluded, suppressing its rows", table)
		} else {
			log.Printf("[MKCLICKHOUSE] Converting table %s", table)
		}
	}
}

func (r *Rewriter) excluded() bool {
	return r.hasTable && r.Config.IsExcluded(r.table)
}

func (r *Rewriter) transform(line string) string {
	if !r.hasTable {
		return line
	}
	t, ok := r.rules[r.table]
	if !ok {
		return line
	}
	r.stats.Transformed++
	return t.Transform(line)
}

// WriteHeader writes the configured banner, one entry per line.
func (r *Rewriter) WriteHeader(writer io.Writer) error {
	for _, h := range r.Config.Header {
		if _, err := io.WriteString(writer, h+"\n"); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}
	return nil
}

// ConvertToSQL implements StreamConverter: it writes the header, then every converted line.
// Line terminators are preserved as read; the last line may lack one.
func (r *Rewriter) ConvertToSQL(reader io.Reader, writer io.Writer) error {
	bw := bufio.NewWriterSize(writer, 65536)
	if err := r.WriteHeader(bw); err != nil {
		return err
	}

	br := bufio.NewReaderSize(reader, 65536)
	for {
		line, readErr := br.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return fmt.Errorf("failed to read dump line %d: %w", r.stats.Read+1, readErr)
		}

		if line != "" {
			out, kind, emit := r.RewriteLine(line)
			if kind == KindUnmatched {
				if r.Config.Strict {
					return fmt.Errorf("line %d: %w: %.60q", r.stats.Read, ErrUnmatchedLine, line)
				}
				if r.Config.Verbose {
					log.Printf("[MKCLICKHOUSE] Dropping unmatched line %d: %.60q", r.stats.Read, line)
				}
			}
			if emit {
				if _, err := bw.WriteString(out); err != nil {
					return fmt.Errorf("failed to write line %d: %w", r.stats.Read, err)
				}
			}
		}

		if readErr == io.EOF {
			break
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	if r.Config.Verbose {
		s := r.stats
		log.Printf("[MKCLICKHOUSE] Conversion completed: %d lines read, %d emitted, %d dropped (%d excluded, %d unmatched), %d transformed, %d tables",
			s.Read, s.Emitted, s.Dropped, s.Excluded, s.Unmatched, s.Transformed, s.Tables)
	}
	return nil
}

// Convert rewrites the dump read from reader into writer using config.
func Convert(reader io.Reader, writer io.Writer, config *common.ConversionConfig) error {
	r, err := NewRewriter(config)
	if err != nil {
		return err
	}
	return r.ConvertToSQL(reader, writer)
}
