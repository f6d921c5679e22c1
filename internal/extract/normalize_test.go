package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeMoney(t *testing.T) {
	tests := []struct {
		name    string
		in      any
		want    float64
		wantErr bool
	}{
		{"plain number", 1234.56, 1234.56, false},
		{"int", 500, 500, false},
		{"string with commas", "1,500,000.00", 1500000, false},
		{"baht sign", "฿2,000", 2000, false},
		{"baht suffix", "1,000 บาท", 1000, false},
		{"spaces", " 12 345 ", 12345, false},
		{"empty", "", 0, true},
		{"dash placeholder", "-", 0, true},
		{"residual text", "ประมาณ 500", 0, true},
		{"bool", true, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeMoney(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeYearBE(t *testing.T) {
	tests := []struct {
		name      string
		in        any
		want      int
		converted bool
		wantErr   bool
	}{
		{"already BE", 2566, 2566, false, false},
		{"BE as float", float64(2540), 2540, false, false},
		{"gregorian converted", 2023, 2566, true, false},
		{"gregorian string", "1999", 2542, true, false},
		{"two digit", 66, 0, false, true},
		{"absurd", 9999, 0, false, true},
		{"text", "ปี 2560", 0, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, converted, err := NormalizeYearBE(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.converted, converted)
		})
	}
}

func TestNormalizeBool(t *testing.T) {
	tests := []struct {
		in      any
		want    bool
		wantErr bool
	}{
		{true, true, false},
		{"true", true, false},
		{"ใช่", true, false},
		{"มี", true, false},
		{"ไม่มี", false, false},
		{"no", false, false},
		{float64(1), true, false},
		{float64(0), false, false},
		{"maybe", false, true},
		{[]string{}, false, true},
	}
	for _, tt := range tests {
		got, err := NormalizeBool(tt.in)
		if tt.wantErr {
			require.Error(t, err)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestNormalizeInt(t *testing.T) {
	got, err := NormalizeInt(float64(42))
	require.NoError(t, err)
	assert.Equal(t, 42, got)

	got, err = NormalizeInt(" 7 ")
	require.NoError(t, err)
	assert.Equal(t, 7, got)

	_, err = NormalizeInt("seven")
	require.Error(t, err)
}
