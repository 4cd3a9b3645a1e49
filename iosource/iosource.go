// Package iosource is the vector I/O layer: a dataset reader that yields
// typed geometries plus an optional spatial-reference code, and a dataset
// writer that appends rule-tagged error geometries to a destination,
// transactionally when the destination supports it. No GIS format library
// (a GDAL binding, a shapefile reader, a WKT parser) appears in any
// reference repository's go.mod, so this package hand-rolls a
// line-oriented WKT codec rather than inventing a dependency the rest of
// the stack never reaches for.
package iosource

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-topology/topocheck/multigeom"
	"github.com/go-topology/topocheck/topoerr"
	"github.com/go-topology/topocheck/topology"
)

// Dataset is a finite sequence of typed geometries plus an optional
// spatial-reference identifier.
type Dataset struct {
	Geometries []multigeom.Geometry
	SRS        *int
}

// DriverWKT names the only driver Reader/Writer speak: the line-oriented
// Well-Known-Text text format. A CLI --driver override is validated
// against this name rather than silently accepted.
const DriverWKT = "wkt"

// Reader reads a Dataset from a line-oriented WKT text file: one geometry
// per line, blank lines and lines starting with "#" ignored. A line of the
// form "SRID=<code>" anywhere in the file sets the dataset's SRS.
type Reader struct {
	path string
}

// NewReader returns a Reader for the file at path.
func NewReader(path string) *Reader {
	return &Reader{path: path}
}

// Read parses the dataset. An empty dataset (no geometry lines) is
// rejected with a *topoerr.InputError.
func (r *Reader) Read() (Dataset, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return Dataset{}, &topoerr.InputError{Reason: "path missing", Detail: err.Error()}
	}
	defer f.Close()

	var ds Dataset
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if srid, ok := strings.CutPrefix(line, "SRID="); ok {
			code, err := strconv.Atoi(srid)
			if err != nil {
				return Dataset{}, &topoerr.FormatError{Op: "parse SRID", Err: err}
			}
			ds.SRS = &code
			continue
		}
		g, err := ParseWKT(line)
		if err != nil {
			return Dataset{}, &topoerr.FormatError{Op: "parse geometry", Err: err}
		}
		ds.Geometries = append(ds.Geometries, g)
	}
	if err := scanner.Err(); err != nil {
		return Dataset{}, &topoerr.FormatError{Op: "read dataset", Err: err}
	}
	if len(ds.Geometries) == 0 {
		return Dataset{}, &topoerr.InputError{Reason: "empty-dataset", Detail: r.path}
	}
	return ds, nil
}

// Writer is a transactional topology.Destination backed by a text file:
// writes accumulate in memory and are only made visible to readers of
// path on Commit, via a write-to-temp-then-rename sequence so a reader
// never observes a half-written export. Content already at path is kept
// and the new lines are appended after it. Rollback discards the buffer.
type Writer struct {
	path   string
	lines  []string
	failed bool
}

// NewWriter returns a Writer that will (on Commit) write to path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// WriteErrors appends one WKT line per offending geometry in err, each
// tagged with ruleName and the geometry kind.
func (w *Writer) WriteErrors(ruleName string, err topology.Error) error {
	wkts, wkErr := errorWKTs(err)
	if wkErr != nil {
		w.failed = true
		return wkErr
	}
	for _, wkt := range wkts {
		w.lines = append(w.lines, fmt.Sprintf("%s\t%s\t%s", ruleName, err.Kind, wkt))
	}
	return nil
}

// Commit appends the buffered lines to path atomically: write the existing
// content of path (if any) plus the new lines to a sibling temp file, then
// rename over path.
func (w *Writer) Commit() error {
	if w.failed {
		return &topoerr.InvariantError{Reason: "Commit called after a failed write"}
	}
	existing, err := os.ReadFile(w.path)
	if err != nil && !os.IsNotExist(err) {
		return &topoerr.FormatError{Op: "read existing export", Err: err}
	}
	tmp := w.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return &topoerr.FormatError{Op: "create export temp file", Err: err}
	}
	buf := bufio.NewWriter(f)
	if _, err := buf.Write(existing); err != nil {
		f.Close()
		os.Remove(tmp)
		return &topoerr.FormatError{Op: "copy existing export", Err: err}
	}
	for _, line := range w.lines {
		if _, err := buf.WriteString(line + "\n"); err != nil {
			f.Close()
			os.Remove(tmp)
			return &topoerr.FormatError{Op: "write export line", Err: err}
		}
	}
	if err := buf.Flush(); err != nil {
		f.Close()
		os.Remove(tmp)
		return &topoerr.FormatError{Op: "flush export", Err: err}
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return &topoerr.FormatError{Op: "close export temp file", Err: err}
	}
	if err := os.Rename(tmp, w.path); err != nil {
		os.Remove(tmp)
		return &topoerr.FormatError{Op: "commit export", Err: err}
	}
	return nil
}

// Rollback discards the buffered writes; nothing was ever made visible at
// path, so there is nothing on disk to undo.
func (w *Writer) Rollback() error {
	w.lines = nil
	w.failed = false
	return nil
}

func errorWKTs(err topology.Error) ([]string, error) {
	switch err.Kind {
	case topology.KindPoint, topology.KindMultiPoint:
		out := make([]string, len(err.Points))
		for i, p := range err.Points {
			out[i] = FormatPoint(p)
		}
		return out, nil
	case topology.KindLineString, topology.KindMultiLineString:
		out := make([]string, len(err.LineStrings))
		for i, l := range err.LineStrings {
			out[i] = FormatLineString(l)
		}
		return out, nil
	case topology.KindPolygon, topology.KindMultiPolygon:
		out := make([]string, len(err.Polygons))
		for i, p := range err.Polygons {
			out[i] = FormatPolygon(p)
		}
		return out, nil
	default:
		return nil, &topoerr.InvariantError{Reason: fmt.Sprintf("unrecognized error kind %s", err.Kind)}
	}
}
