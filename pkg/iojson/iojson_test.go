package iojson

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteWith(t *testing.T) {
	var out, errOut bytes.Buffer

	require.NoError(t, WriteWith(&out, &errOut, map[string]int{"id": 1}))
	assert.Equal(t, "{\n  \"id\": 1\n}\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestWriteWith_EncodeFailure(t *testing.T) {
	var out, errOut bytes.Buffer

	err := WriteWith(&out, &errOut, math.Inf(1))
	require.Error(t, err)
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), `"message":"error encoding output"`)
	assert.Contains(t, errOut.String(), `"json_error"`)
}

func TestWriteError(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, WriteError(&out, "Error loading comments: db down", map[string]any{"status": 500}))
	assert.JSONEq(t, `{"message":"Error loading comments: db down","data":{"status":500}}`, out.String())

	out.Reset()
	require.NoError(t, WriteError(&out, "plain", nil))
	assert.JSONEq(t, `{"message":"plain"}`, out.String())
}
