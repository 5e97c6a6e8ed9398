package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatBRL(t *testing.T) {
	cases := map[string]string{
		"0":       "R$ 0,00",
		"5":       "R$ 5,00",
		"12.5":    "R$ 12,50",
		"1234.5":  "R$ 1.234,50",
		"1000000": "R$ 1.000.000,00",
		"-42.199": "-R$ 42,20",
		"999.999": "R$ 1.000,00",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatBRL(decimal.RequireFromString(in)), in)
	}
}

func TestParseBRL(t *testing.T) {
	cases := map[string]string{
		"12,50":    "12.5",
		"1.234,50": "1234.5",
		"R$ 7,00":  "7",
		"45.9":     "45.9",
		"  30 ":    "30",
	}
	for in, want := range cases {
		got, err := ParseBRL(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got.String(), in)
	}
}

func TestParseBRL_Invalido(t *testing.T) {
	_, err := ParseBRL("")
	assert.Error(t, err)
	_, err = ParseBRL("abc")
	assert.Error(t, err)
}

func TestParseBRL_EspacioNoSeparable(t *testing.T) {
	d, err := ParseBRL("R$\u00a01.234,50")
	require.NoError(t, err)
	assert.Equal(t, "1234.5", d.String())

	assert.Equal(t, "R$ 1.234,50", FormatBRL(d))
}
