package runner

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bartekus/portreview/internal/contract"
	"github.com/bartekus/portreview/internal/repo"
	"github.com/bartekus/portreview/internal/testutil/gitfixture"
)

// MockContract implements contract.Contract for testing.
type MockContract struct {
	name   string
	result contract.Result
	called bool
	onTest func()
}

func (m *MockContract) Name() string { return m.name }

func (m *MockContract) Test(ctx context.Context, repo contract.Repository) contract.Result {
	m.called = true
	if m.onTest != nil {
		m.onTest()
	}
	return m.result
}

type logLine struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

func decodeLogs(t *testing.T, buf *bytes.Buffer) []logLine {
	t.Helper()
	var lines []logLine
	for _, raw := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if raw == "" {
			continue
		}
		var l logLine
		require.NoError(t, json.Unmarshal([]byte(raw), &l))
		lines = append(lines, l)
	}
	return lines
}

func TestRunner_AllPass(t *testing.T) {
	c1 := &MockContract{name: "c1", result: contract.Pass()}
	c2 := &MockContract{name: "c2", result: contract.Pass()}

	var buf bytes.Buffer
	sum, err := New([]contract.Contract{c1, c2}, zerolog.New(&buf)).Run(context.Background(), nil)
	require.NoError(t, err)

	assert.True(t, c1.called)
	assert.True(t, c2.called)
	assert.True(t, sum.Passed())
	assert.Empty(t, sum.Failed)
	require.Len(t, sum.Entries, 2)
	assert.Equal(t, "c1", sum.Entries[0].Contract)

	assert.Equal(t, []logLine{
		{Level: "info", Message: "Testing contract 'c1'"},
		{Level: "info", Message: "Contract 'c1' passed"},
		{Level: "info", Message: "Testing contract 'c2'"},
		{Level: "info", Message: "Contract 'c2' passed"},
	}, decodeLogs(t, &buf))
}

func TestRunner_FailureDoesNotShortCircuit(t *testing.T) {
	c1 := &MockContract{name: "c1", result: contract.Fail("bad one")}
	c2 := &MockContract{name: "c2", result: contract.Fail("bad two")}
	c3 := &MockContract{name: "c3", result: contract.Pass()}

	var buf bytes.Buffer
	sum, err := New([]contract.Contract{c1, c2, c3}, zerolog.New(&buf)).Run(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "c1, c2")

	assert.True(t, c3.called)
	assert.Equal(t, []string{"c1", "c2"}, sum.Failed)

	logs := decodeLogs(t, &buf)
	assert.Contains(t, logs, logLine{Level: "error", Message: "Contract 'c1' failed:\nbad one"})
	assert.Contains(t, logs, logLine{Level: "error", Message: "Contract 'c2' failed:\nbad two"})
}

func TestRunner_WarningDoesNotFail(t *testing.T) {
	c1 := &MockContract{name: "license", result: contract.Warn("header is wrong")}

	var buf bytes.Buffer
	sum, err := New([]contract.Contract{c1}, zerolog.New(&buf)).Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"license"}, sum.Warned)
	assert.True(t, sum.Passed())
	assert.Contains(t, decodeLogs(t, &buf), logLine{Level: "warn", Message: "Contract 'license' warned: header is wrong"})
}

func TestRunner_CancelStopsBeforeNextContract(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	c1 := &MockContract{name: "c1", result: contract.Pass(), onTest: cancel}
	c2 := &MockContract{name: "c2", result: contract.Pass()}

	sum, err := New([]contract.Contract{c1, c2}, zerolog.Nop()).Run(ctx, nil)
	require.ErrorIs(t, err, context.Canceled)
	assert.True(t, c1.called)
	assert.False(t, c2.called)
	assert.Len(t, sum.Entries, 1)
}

func TestRunner_DefaultContractsAreIdempotent(t *testing.T) {
	dir := t.TempDir()
	files := gitfixture.CompliantFiles()
	files["README.md"] = gitfixture.CleanReadme + "- [Human](https://github.com/catppuccin)\n"
	gitfixture.New(t, dir, files)

	r := New(contract.Default(), zerolog.Nop())

	run := func() Summary {
		h, err := repo.Open(dir)
		require.NoError(t, err)
		sum, err := r.Run(context.Background(), h)
		require.Error(t, err)
		return sum
	}

	first, second := run(), run()
	assert.Equal(t, first, second)
	assert.Equal(t, []string{"README is correct"}, first.Failed)
	assert.Equal(t, contract.Fail("README contains '- [Human](https://github.com/catppuccin)'"), first.Entries[1].Result)
}
