package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeWKT(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunInteractive_AggregatesUntilSummary(t *testing.T) {
	dir := t.TempDir()
	points := writeWKT(t, dir, "points.wkt", "POINT(1 1)\nPOINT(1 1)\nPOINT(2 2)\n")
	multi := writeWKT(t, dir, "multi.wkt", "POINT(1 1)\nMULTIPOINT((1 1),(2 2))\n")

	script := strings.Join([]string{
		"point must-not-overlap input=" + points,
		"multipart input=" + multi,
		"summary",
	}, "\n") + "\n"

	var out bytes.Buffer
	err := runInteractive(strings.NewReader(script), &out)
	assert.NoError(t, err)

	summary := out.String()
	assert.Contains(t, summary, "must-not-overlap: Point=1")
	assert.Contains(t, summary, "must-not-be-multipart: MultiPoint=2")
}

func TestRunInteractive_MalformedLine(t *testing.T) {
	var out bytes.Buffer
	err := runInteractive(strings.NewReader("garbage\n"), &out)
	assert.Error(t, err)
}
