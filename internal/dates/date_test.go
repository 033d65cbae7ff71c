package dates

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	d, err := Parse("2023-04-01")
	require.NoError(t, err)
	assert.Equal(t, 2023, d.Year())
	assert.Equal(t, time.April, d.Month())
	assert.Equal(t, 1, d.Day())
	assert.Equal(t, "2023-04-01", d.String())

	_, err = Parse("01/04/2023")
	assert.Error(t, err)
}

func TestComparisons(t *testing.T) {
	a := New(2020, time.January, 1)
	b := New(2020, time.February, 1)

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.True(t, a.Equal(New(2020, time.January, 1)))
	assert.True(t, Date{}.IsZero())
	assert.False(t, a.IsZero())
}

func TestJSONRoundTrip(t *testing.T) {
	type payload struct {
		Start Date  `json:"start"`
		End   *Date `json:"end,omitempty"`
	}

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"start":"2021-06-15","end":null}`), &p))
	assert.Equal(t, "2021-06-15", p.Start.String())
	assert.Nil(t, p.End)

	b, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"start":"2021-06-15"}`, string(b))

	assert.Error(t, json.Unmarshal([]byte(`{"start":"June 15"}`), &p))
}

func TestFromTimeTruncates(t *testing.T) {
	ts := time.Date(2023, time.August, 9, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, New(2023, time.August, 9), FromTime(ts))
}
