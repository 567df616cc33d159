package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-12-24")
	require.NoError(t, err)
	assert.Equal(t, "2025-12-24", d.String())
	assert.Equal(t, NewDate(2025, time.December, 24), d)

	_, err = ParseDate("24/12/2025")
	assert.Error(t, err)
}

func TestParseDate_ZeroDayRejected(t *testing.T) {
	_, err := ParseDate("0001-01-01")
	assert.Error(t, err)

	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"0001-01-01"`), &d))
	assert.True(t, d.IsZero())

	next, err := ParseDate("0001-01-02")
	require.NoError(t, err)
	assert.False(t, next.IsZero())
	assert.Equal(t, "0001-01-02", next.String())
}

func TestDateOf_DropsTime(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	d := DateOf(time.Date(2025, time.March, 1, 23, 59, 0, 0, loc))
	assert.Equal(t, "2025-03-01", d.String())
}

func TestDaysInRange(t *testing.T) {
	days := DaysInRange(MustParseDate("2025-12-30"), MustParseDate("2026-01-02"))

	got := make([]string, len(days))
	for i, d := range days {
		got[i] = d.String()
	}
	assert.Equal(t, []string{"2025-12-30", "2025-12-31", "2026-01-01", "2026-01-02"}, got)
}

func TestDaysInRange_SingleDay(t *testing.T) {
	d := MustParseDate("2025-01-01")
	assert.Len(t, DaysInRange(d, d), 1)
}

func TestDaysInRange_StartAfterEnd(t *testing.T) {
	days := DaysInRange(MustParseDate("2025-01-05"), MustParseDate("2025-01-01"))
	assert.Empty(t, days)
}

func TestDaysInRange_LeapYear(t *testing.T) {
	days := DaysInRange(MustParseDate("2024-02-28"), MustParseDate("2024-03-01"))
	require.Len(t, days, 3)
	assert.Equal(t, "2024-02-29", days[1].String())
}

func TestDate_Scan(t *testing.T) {
	var d Date

	require.NoError(t, d.Scan(time.Date(2025, time.June, 7, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2025-06-07", d.String())

	require.NoError(t, d.Scan([]byte("2025-06-08")))
	assert.Equal(t, "2025-06-08", d.String())

	require.NoError(t, d.Scan("2025-06-09T00:00:00Z"))
	assert.Equal(t, "2025-06-09", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(42))
}

func TestDate_JSON(t *testing.T) {
	type payload struct {
		Date Date `json:"date"`
	}

	raw, err := json.Marshal(payload{Date: MustParseDate("2025-12-25")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2025-12-25"}`, string(raw))

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"date":"2025-01-04"}`), &p))
	assert.Equal(t, "2025-01-04", p.Date.String())

	require.NoError(t, json.Unmarshal([]byte(`{"date":null}`), &p))
	assert.True(t, p.Date.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`{"date":"01/04/2025"}`), &p))
}

func TestDate_Value(t *testing.T) {
	v, err := MustParseDate("2025-01-01").Value()
	require.NoError(t, err)
	assert.Equal(t, "2025-01-01", v)

	v, err = Date{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}
