package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geometryzen/multivectors-sub001/internal/unit"
)

func TestFormatCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"named symbol", []string{"--exponents", "1,1,-2,0,0,0,0"}, "N\n"},
		{"scaled named", []string{"--exponents", "0,1,0,0,0,0,0", "--multiplier", "1000"}, "1000 * m\n"},
		{"not compact", []string{"--exponents", "1,1,-2,0,0,0,0", "--compact=false"}, "1 * N\n"},
		{"generic labels", []string{"--exponents", "0,0,0,0,0,0,2"}, "cd ** 2\n"},
		{"fractional exponent", []string{"--exponents", "0,1/2,0,0,0,0,0"}, "m ** 1/2\n"},
		{"scaled generic", []string{"--exponents", "0,0,0,0,0,0,2", "--multiplier", "3"}, "3 cd ** 2\n"},
		{"dimensionless", []string{"--exponents", "0,0,0,0,0,0,0", "--multiplier", "2.5"}, "2.5\n"},
		{"radix", []string{"--exponents", "0,1,0,0,0,0,0", "--multiplier", "4", "--radix", "2"}, "100 * m\n"},
		{"fixed", []string{"--exponents", "0,1,0,0,0,0,0", "--multiplier", "1000", "--fixed", "2"}, "1000.00 * m\n"},
		{"precision", []string{"--exponents", "0,1,0,0,0,0,0", "--multiplier", "1234.5678", "--precision", "3"}, "1.23e+3 * m\n"},
		{"exponential", []string{"--exponents", "0,1,0,0,0,0,0", "--multiplier", "1234.5678", "--exponential", "2"}, "1.23e+3 * m\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewFormatCommand(&RootOptions{Format: "text"})
			out, _, err := execute(t, cmd, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestFormatCommandJSON(t *testing.T) {
	cmd := NewFormatCommand(&RootOptions{Format: "json"})
	out, _, err := execute(t, cmd, "--exponents", "1,2,-2,0,0,0,0")
	require.NoError(t, err)

	var resp struct {
		Status string       `json:"status"`
		Data   FormatResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "J or N·m", resp.Data.Display)
	assert.Equal(t, "energy_or_torque", resp.Data.Unit.Tag)
	assert.Equal(t, "J or N·m", resp.Data.Unit.Symbol)
	assert.Equal(t, unit.MustDescribe(unit.Joule).ID, resp.Data.Unit.ID)
}

func TestFormatCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"too few exponents", []string{"--exponents", "1,2"}},
		{"bad rational", []string{"--exponents", "1,x,0,0,0,0,0"}},
		{"zero denominator", []string{"--exponents", "1/0,0,0,0,0,0,0"}},
		{"radix out of range", []string{"--exponents", "0,1,0,0,0,0,0", "--radix", "40"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewFormatCommand(&RootOptions{Format: "text"})
			out, _, err := execute(t, cmd, tt.args...)
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
			assert.Contains(t, out, "Error [E001]")
		})
	}
}

func TestFormatCommandRequiresExponents(t *testing.T) {
	cmd := NewFormatCommand(&RootOptions{Format: "text"})
	_, _, err := execute(t, cmd)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exponents")
}

func TestFormatCommandExclusiveFlags(t *testing.T) {
	cmd := NewFormatCommand(&RootOptions{Format: "text"})
	_, _, err := execute(t, cmd, "--exponents", "0,1,0,0,0,0,0", "--fixed", "2", "--precision", "3")
	require.Error(t, err)
}
