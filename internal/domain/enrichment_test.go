package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessingStatusTerminal(t *testing.T) {
	assert.False(t, StatusPending.Terminal())
	assert.False(t, StatusProcessing.Terminal())
	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusPartialSuccess.Terminal())
	assert.True(t, StatusFailed.Terminal())
}

func TestFileSizeJSON_StringEncoding(t *testing.T) {
	// Larger than 2^53, the point where float64 JSON numbers lose precision.
	size := FileSize(9007199254740993)

	data, err := json.Marshal(size)
	require.NoError(t, err)
	assert.Equal(t, `"9007199254740993"`, string(data))

	var decoded FileSize
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, size, decoded)
}

func TestFileSizeJSON_AcceptsBareNumbers(t *testing.T) {
	var decoded FileSize
	require.NoError(t, json.Unmarshal([]byte(`1024`), &decoded))
	assert.Equal(t, FileSize(1024), decoded)
}

func TestFileSizeJSON_RejectsGarbage(t *testing.T) {
	var decoded FileSize
	assert.Error(t, json.Unmarshal([]byte(`"not a number"`), &decoded))
	assert.Error(t, json.Unmarshal([]byte(`-5`), &decoded))
}
