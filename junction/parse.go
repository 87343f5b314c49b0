package junction

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/disjoint/cluster"
	"github.com/pingcap/errors"
)

// Parse reads one "x,y,z" point per line. Surrounding whitespace on a line or
// a field is ignored, blank lines are skipped.
func Parse(r io.Reader) ([]cluster.Point3, error) {
	var (
		points []cluster.Point3
		lineNo int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		p, err := parsePoint(line)
		if err != nil {
			return nil, errors.Annotatef(err, "line %d: %q", lineNo, line)
		}
		points = append(points, p)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Trace(err)
	}
	if len(points) == 0 {
		return nil, errors.Trace(ErrNoPoints)
	}

	return points, nil
}

func parsePoint(line string) (cluster.Point3, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 3 {
		return cluster.Point3{}, errors.Annotatef(ErrMalformedLine, "want 3 fields, got %d", len(fields))
	}

	var coords [3]int64
	for i, f := range fields {
		v, err := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
		if err != nil {
			return cluster.Point3{}, errors.Annotatef(ErrMalformedLine, "field %d: %v", i+1, err)
		}
		coords[i] = v
	}

	return cluster.Point3{X: coords[0], Y: coords[1], Z: coords[2]}, nil
}
