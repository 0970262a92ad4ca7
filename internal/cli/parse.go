package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/spantree/engine"
)

// ParseEdgeList reads a SNAP-style edge list: one edge per line as
// "u v" or "u v w", whitespace-separated. Lines that are blank or start
// with '#' or '%' are skipped. Missing weights default to 1.0, matching
// the unit-conductance convention of the source methodology.
//
// Malformed lines fail with their line number; nothing is silently
// dropped.
func ParseEdgeList(r io.Reader) ([]engine.Edge, error) {
	var edges []engine.Edge

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "%") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 && len(fields) != 3 {
			return nil, fmt.Errorf("line %d: expected 'u v' or 'u v w', got %d fields", lineNo, len(fields))
		}

		u, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: node id %q: %w", lineNo, fields[0], err)
		}
		v, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: node id %q: %w", lineNo, fields[1], err)
		}

		w := 1.0
		if len(fields) == 3 {
			w, err = strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: weight %q: %w", lineNo, fields[2], err)
			}
		}

		edges = append(edges, engine.Edge{U: u, V: v, W: w})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading edge list: %w", err)
	}

	return edges, nil
}
