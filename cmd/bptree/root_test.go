package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFuzzCommandNoDivergence(t *testing.T) {
	rootCmd.SetArgs([]string{"fuzz", "--ops=2000", "--seed=7", "--order=8", "--keys=200"})
	var out bytes.Buffer
	rootCmd.SetOut(&out)

	err := rootCmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, out.String(), "OK:")
}

func TestStatsCommandReportsPlausibleShape(t *testing.T) {
	rootCmd.SetArgs([]string{"stats", "--n=5000", "--order=4"})
	var out bytes.Buffer
	rootCmd.SetOut(&out)

	err := rootCmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, out.String(), "height:")
	assert.Contains(t, out.String(), "total keys:     5000")
}

func TestBenchCommandRuns(t *testing.T) {
	rootCmd.SetArgs([]string{"bench", "--n=1000", "--order=8"})
	var out bytes.Buffer
	rootCmd.SetOut(&out)

	err := rootCmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, out.String(), "insert:")
	assert.Contains(t, out.String(), "find:")
	assert.Contains(t, out.String(), "iterate:")
}
