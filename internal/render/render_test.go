package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/bootcheck/internal/selftest"
)

func cleanSummary() selftest.Summary {
	return selftest.Summary{
		Units: []selftest.UnitResult{
			{Name: "math", Tally: selftest.Tally{Total: 89}},
			{Name: "keymap", Tally: selftest.Tally{Total: 14}},
		},
		Tally: selftest.Tally{Total: 103},
	}
}

func failedSummary() selftest.Summary {
	return selftest.Summary{
		Units: []selftest.UnitResult{
			{Name: "math", Tally: selftest.Tally{Total: 89, Failed: 2}},
		},
		Tally: selftest.Tally{Total: 89, Failed: 2},
		Failures: []selftest.Failure{
			{File: "mathtest.go", Line: 101, Desc: "probe quotient", Unit: "math"},
			{File: "mathtest.go", Line: 102, Unit: "math"},
		},
	}
}

func TestPlain_EmitsSummaryLineOnly_When_Clean(t *testing.T) {
	out := NewPlain().Render(cleanSummary())

	assert.Equal(t, "ok, 103 assertions, 0 failures\n", out)
}

func TestPlain_EmitsFailureLines_When_ChecksFailed(t *testing.T) {
	out := NewPlain().Render(failedSummary())

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "not ok — mathtest.go:101 (probe quotient) [math]", lines[0])
	assert.Equal(t, "not ok — mathtest.go:102 [math]", lines[1])
	assert.Equal(t, "not ok, 89 assertions, 2 failures", lines[2])
}

func TestTerminal_ListsEveryUnit_WithMonoTheme(t *testing.T) {
	out := NewTerminal(MonoTheme()).Render(cleanSummary())

	assert.Contains(t, out, "math")
	assert.Contains(t, out, "keymap")
	assert.Contains(t, out, "89 assertions, 0 failures")
	assert.Contains(t, out, "ok, 103 assertions, 0 failures")
}

func TestTerminal_MarksFailedUnits_WithMonoTheme(t *testing.T) {
	out := NewTerminal(MonoTheme()).Render(failedSummary())

	assert.Contains(t, out, "!! math")
	assert.Contains(t, out, "not ok — mathtest.go:101 (probe quotient) [math]")
	assert.Contains(t, out, "not ok, 89 assertions, 2 failures")
}

func TestJSON_RoundTrips(t *testing.T) {
	out := NewJSON().Render(failedSummary())

	var got selftest.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 89, got.Tally.Total)
	assert.Equal(t, 2, got.Tally.Failed)
	require.Len(t, got.Failures, 2)
	assert.Equal(t, "probe quotient", got.Failures[0].Desc)
}

func TestThemeByName_FallsBackToDefault(t *testing.T) {
	assert.Equal(t, "mono", ThemeByName("mono").Name)
	assert.Equal(t, "default", ThemeByName("default").Name)
	assert.Equal(t, "default", ThemeByName("nope").Name)
}
