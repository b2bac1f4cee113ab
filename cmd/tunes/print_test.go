// ABOUTME: Tests for tune output formatting
// ABOUTME: Verifies list lines and JSON passthrough
package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harper/tunes-client/internal/domain/tune"
)

func TestWriteList(t *testing.T) {
	tunes := tune.Collection{
		tune.Tune(`{"title":"The Morning Star","key":"A"}`),
		tune.Tune(`{"t":"The Banshee"}`),
		tune.Tune(`{"x":"3"}`),
	}

	var buf bytes.Buffer
	require.NoError(t, writeList(&buf, tunes))

	expected := "1. The Morning Star (A)\n2. The Banshee\n3. (untitled)\n"
	assert.Equal(t, expected, buf.String())
}

func TestWriteList_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeList(&buf, tune.Collection{}))
	assert.Empty(t, buf.String())
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, tune.Collection{tune.Tune(`{"title":"A"}`)}))
	assert.JSONEq(t, `[{"title":"A"}]`, buf.String())
}
