package date

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTime(t *testing.T) {
	tests := []struct {
		input    string
		expected Time
		wantErr  bool
	}{
		{input: "09:00", expected: Time{Hour: 9}},
		{input: "9", expected: Time{Hour: 9}},
		{input: "23:59:59", expected: Time{Hour: 23, Minute: 59, Second: 59}},
		{input: "12:30:15.250", expected: Time{Hour: 12, Minute: 30, Second: 15, Millisecond: 250}},
		{input: "24:00", wantErr: true},
		{input: "12:60", wantErr: true},
		{input: "1:2:3:4", wantErr: true},
		{input: "noon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			parsed, err := ParseTime(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, parsed)
		})
	}
}

func TestTimeFormatRoundTrip(t *testing.T) {
	for _, v := range []Time{
		{Hour: 9},
		{Hour: 23, Minute: 59, Second: 59},
		{Hour: 12, Minute: 30, Second: 15, Millisecond: 250},
	} {
		parsed, err := ParseTime(v.Format())
		require.NoError(t, err)
		assert.Equal(t, v, parsed)
	}
}

func TestTimeMillis(t *testing.T) {
	assert.Equal(t, int64(0), Time{}.Millis())
	assert.Equal(t, 9*MillisPerHour, Time{Hour: 9}.Millis())
	assert.Equal(t, MillisPerDay-1, Time{Hour: 23, Minute: 59, Second: 59, Millisecond: 999}.Millis())
}

func TestParseUnit(t *testing.T) {
	u, err := ParseUnit("minutes")
	require.NoError(t, err)
	assert.Equal(t, UnitMinute, u)

	_, err = ParseUnit("fortnight")
	assert.Error(t, err)
}
