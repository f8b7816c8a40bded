package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flagCmd(name, value string) *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String(name, value, "")
	return cmd
}

func TestAmountParsing(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		want  string
		isErr bool
	}{
		{"plain", "30000000", "30000000", false},
		{"underscores", "30_000_000", "30000000", false},
		{"commas", "30,000,000", "30000000", false},
		{"empty defaults to zero", "", "0", false},
		{"garbage", "abc", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := flagCmd("gross", tt.raw)
			got, err := amount(cmd, "gross")
			if tt.isErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestRatePercentParsing(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"integer percent", "7", "0.07"},
		{"fractional percent", "10.5", "0.105"},
		{"trailing percent sign", "8%", "0.08"},
		{"empty", "", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := flagCmd("rate", tt.raw)
			got, err := ratePercent(cmd, "rate")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestRegionFlag(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().Int("region", 2, "")
	region, err := regionFlag(cmd)
	require.NoError(t, err)
	assert.Equal(t, "II", region.String())

	bad := &cobra.Command{Use: "test"}
	bad.Flags().Int("region", 9, "")
	_, err = regionFlag(bad)
	require.Error(t, err)
}

func TestRootCommand(t *testing.T) {
	require.NotNil(t, rootCmd)
	assert.Equal(t, "vnpit", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
}
