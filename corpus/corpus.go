// Package corpus reads a line-delimited stream of JSON arrays to completion
// and folds every record into a single running observation. The whole
// corpus must be consumed before synthesis: literal collapse depends on the
// total distinct-value count per slot.
package corpus

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/valyala/fastjson"

	"github.com/typesmith/json2type/observe"
)

const defaultMaxLineBytes = 16 * 1024 * 1024

// Options bound the corpus and pick the merge conflict policy. Zero values
// mean no line cap and the default 16MiB line size cap.
type Options struct {
	Strict       bool
	MaxLines     int
	MaxLineBytes int
}

type Stats struct {
	Lines   int
	Records int
	Bytes   int64
}

// DecodeError reports an unusable input line. Any decode failure aborts the
// run; inference over a corrupt corpus is not meaningful.
type DecodeError struct {
	Line int
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Collect consumes r to completion and returns the merged element
// observation for the corpus, the record every line's array contains.
// Blank lines and empty arrays contribute nothing. The observation is nil
// when no records were seen.
func Collect(r io.Reader, opts Options) (observe.Observation, Stats, error) {
	maxLine := opts.MaxLineBytes
	if maxLine <= 0 {
		maxLine = defaultMaxLineBytes
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var p fastjson.Parser
	var elem observe.Observation
	var stats Stats

	for sc.Scan() {
		stats.Lines++
		line := bytes.TrimSpace(sc.Bytes())
		stats.Bytes += int64(len(sc.Bytes()))

		if opts.MaxLines > 0 && stats.Lines > opts.MaxLines {
			return nil, stats, &DecodeError{Line: stats.Lines, Err: fmt.Errorf("corpus exceeds %d lines", opts.MaxLines)}
		}
		if len(line) == 0 {
			continue
		}

		v, err := p.ParseBytes(line)
		if err != nil {
			return nil, stats, &DecodeError{Line: stats.Lines, Err: err}
		}
		if v.Type() != fastjson.TypeArray {
			return nil, stats, &DecodeError{Line: stats.Lines, Err: fmt.Errorf("expected a JSON array, got %s", v.Type())}
		}

		vs, err := v.Array()
		if err != nil {
			return nil, stats, &DecodeError{Line: stats.Lines, Err: err}
		}

		for _, rec := range vs {
			o, err := observe.FromFastJSON(rec)
			if err != nil {
				return nil, stats, &DecodeError{Line: stats.Lines, Err: err}
			}
			if opts.Strict {
				elem, err = observe.MergeStrict(elem, o)
				if err != nil {
					return nil, stats, &DecodeError{Line: stats.Lines, Err: err}
				}
			} else {
				elem = observe.Merge(elem, o)
			}
			stats.Records++
		}
	}

	if err := sc.Err(); err != nil {
		if err == bufio.ErrTooLong {
			return nil, stats, &DecodeError{Line: stats.Lines + 1, Err: fmt.Errorf("line exceeds %d bytes", maxLine)}
		}
		return nil, stats, err
	}

	return elem, stats, nil
}
