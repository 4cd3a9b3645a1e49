package iosource

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-topology/topocheck/point"
	"github.com/go-topology/topocheck/topology"
)

func TestReader_RejectsEmptyDataset(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.wkt")
	assert.NoError(t, os.WriteFile(path, []byte("# just a comment\n"), 0o644))

	_, err := NewReader(path).Read()
	assert.Error(t, err)
}

func TestReader_RejectsMissingFile(t *testing.T) {
	_, err := NewReader(filepath.Join(t.TempDir(), "missing.wkt")).Read()
	assert.Error(t, err)
}

func TestReader_ParsesSRIDAndGeometries(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.wkt")
	content := "SRID=4326\nPOINT(1 2)\nPOINT(3 4)\n"
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	ds, err := NewReader(path).Read()
	assert.NoError(t, err)
	assert.Len(t, ds.Geometries, 2)
	assert.NotNil(t, ds.SRS)
	assert.Equal(t, 4326, *ds.SRS)
}

func TestWriter_CommitWritesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.wkt")
	w := NewWriter(path)

	err := w.WriteErrors("must-not-overlap", topology.ErrorPoint([]point.Point{point.New(1, 1)}))
	assert.NoError(t, err)
	assert.NoError(t, w.Commit())

	contents, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Contains(t, string(contents), "must-not-overlap")
	assert.Contains(t, string(contents), "POINT(1 1)")
}

func TestWriter_RollbackLeavesNoFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.wkt")
	w := NewWriter(path)

	assert.NoError(t, w.WriteErrors("must-not-overlap", topology.ErrorPoint([]point.Point{point.New(1, 1)})))
	assert.NoError(t, w.Rollback())

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestResults_Export_UsesWriter(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "export.wkt")
	w := NewWriter(path)

	var results topology.Results
	results.Add("must-not-overlap", topology.Errors(topology.ErrorPoint([]point.Point{point.New(1, 1)})))
	results.Add("must-not-have-dangles", topology.Valid())

	assert.NoError(t, results.Export(w))

	contents, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Contains(t, string(contents), "must-not-overlap")
}
