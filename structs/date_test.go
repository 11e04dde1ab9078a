package structs

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_JSONRoundTrip(t *testing.T) {
	d := NewDate(2025, time.March, 14)

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-03-14"`, string(raw))

	var back Date
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.True(t, d.Equal(back))
}

func TestDate_UnmarshalRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"unquoted", `2025-03-14`},
		{"wrong layout", `"14-03-2025"`},
		{"datetime", `"2025-03-14T00:00:00Z"`},
		{"empty string", `""`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var d Date
			assert.Error(t, json.Unmarshal([]byte(tc.raw), &d))
		})
	}
}

func TestDate_UnmarshalNullYieldsZero(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	assert.True(t, d.IsZero())
}

func TestDate_After(t *testing.T) {
	earlier := NewDate(2025, time.January, 1)
	later := NewDate(2025, time.January, 2)

	assert.True(t, later.After(earlier))
	assert.False(t, earlier.After(later))
	assert.False(t, earlier.After(earlier), "a date is not after itself")
}

func TestDate_ScanVariants(t *testing.T) {
	want := NewDate(2025, time.June, 30)

	t.Run("time.Time", func(t *testing.T) {
		var d Date
		require.NoError(t, d.Scan(time.Date(2025, time.June, 30, 15, 4, 5, 0, time.UTC)))
		assert.True(t, want.Equal(d), "time-of-day must be truncated")
	})

	t.Run("string", func(t *testing.T) {
		var d Date
		require.NoError(t, d.Scan("2025-06-30"))
		assert.True(t, want.Equal(d))
	})

	t.Run("bytes", func(t *testing.T) {
		var d Date
		require.NoError(t, d.Scan([]byte("2025-06-30")))
		assert.True(t, want.Equal(d))
	})

	t.Run("nil", func(t *testing.T) {
		var d Date
		require.NoError(t, d.Scan(nil))
		assert.True(t, d.IsZero())
	})

	t.Run("unsupported type", func(t *testing.T) {
		var d Date
		assert.Error(t, d.Scan(42))
	})
}

func TestDate_ValueZeroIsNull(t *testing.T) {
	var d Date
	v, err := d.Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = NewDate(2025, time.June, 30).Value()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC), v)
}
