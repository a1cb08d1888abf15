package vehicle

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestDate_JSONRoundTrip(t *testing.T) {
	d := NewDate(2025, time.December, 31)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-12-31"`, string(data))

	var decoded Date
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, d, decoded)
}

func TestDate_UnmarshalJSON_Invalid(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"31/12/2025"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`1735603200`), &d))
}

func TestDate_BSONRoundTrip_NoTimezoneDrift(t *testing.T) {
	type wrapper struct {
		D Date `bson:"d"`
	}

	d := NewDate(2025, time.December, 31)
	data, err := bson.Marshal(wrapper{D: d})
	require.NoError(t, err)

	var decoded wrapper
	require.NoError(t, bson.Unmarshal(data, &decoded))

	// The stored value is a full datetime; the calendar date must
	// survive unchanged.
	assert.Equal(t, 2025, decoded.D.Year())
	assert.Equal(t, time.December, decoded.D.Month())
	assert.Equal(t, 31, decoded.D.Day())
	assert.Equal(t, d, decoded.D)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", d.String())

	_, err = ParseDate("2024-13-01")
	assert.Error(t, err)
}
