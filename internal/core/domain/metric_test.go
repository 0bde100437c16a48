package domain

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetric_Valid(t *testing.T) {
	assert.True(t, Metric(0.5).Valid())
	assert.False(t, Undefined().Valid())
	assert.False(t, Metric(math.Inf(1)).Valid())
}

func TestMetric_Format(t *testing.T) {
	assert.Equal(t, "0.74", Metric(0.742).Format(2))
	assert.Equal(t, "NaN", Undefined().Format(2))
}

func TestMetric_JSON(t *testing.T) {
	data, err := json.Marshal([]Metric{1, Undefined(), 0.25})
	require.NoError(t, err)
	assert.Equal(t, `[1,null,0.25]`, string(data))

	var decoded []Metric
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 3)
	assert.Equal(t, Metric(1), decoded[0])
	assert.False(t, decoded[1].Valid())
	assert.Equal(t, Metric(0.25), decoded[2])
}
