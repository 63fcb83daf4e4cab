package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCentralizerCommand_Dihedral(t *testing.T) {
	out, err := run(t, "centralizer", "--structure", "dihedral", "--order", "4", "--pivot", "r1", "--output", "yaml")
	require.NoError(t, err)

	var report centralizerReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &report))
	assert.Equal(t, "D4", report.Structure)
	assert.Equal(t, "subgroup", report.Kind)
	assert.Equal(t, []string{"r0", "r1", "r2", "r3"}, report.Members)
	assert.Equal(t, 8, report.Universe)
	assert.True(t, report.Strict)
	assert.True(t, report.Closed)
}

func TestCentralizerCommand_MatrixPivotKeepsCommas(t *testing.T) {
	out, err := run(t, "centralizer", "--structure", "mat2", "--order", "2", "--pivot", "1,1;0,1", "--parallelism", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "subring of order 4 (universe 16)")
	assert.Contains(t, out, "✓ closed")
}

func TestCentralizerCommand_NoPivots(t *testing.T) {
	out, err := run(t, "centralizer", "--structure", "symmetric", "--order", "3", "--output", "yaml")
	require.NoError(t, err)

	var report centralizerReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &report))
	assert.Equal(t, 6, report.Size)
	assert.False(t, report.Strict)
}

func TestCentralizerCommand_BadPivot(t *testing.T) {
	_, err := run(t, "centralizer", "--structure", "dihedral", "--pivot", "x9")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "D4")
}

func TestPowerCommand_Units(t *testing.T) {
	out, err := run(t, "power", "--structure", "units", "--order", "11", "--a", "2", "--b", "5", "--max-exponent", "3", "--output", "yaml")
	require.NoError(t, err)

	var report powerReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &report))
	assert.True(t, report.Commute)
	assert.Zero(t, report.Failures)
	// Exponents 0..3 plus -1..-3.
	assert.Len(t, report.Checks, 7)
	for _, c := range report.Checks {
		assert.True(t, c.Holds, c.Law)
		assert.Equal(t, c.LHS, c.RHS, c.Law)
	}
}

func TestPowerCommand_RingAddsNegation(t *testing.T) {
	out, err := run(t, "power", "--structure", "zmod", "--order", "7", "--a", "3", "--b", "4", "--max-exponent", "2", "--output", "yaml")
	require.NoError(t, err)

	var report powerReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &report))
	// mul_pow and neg_pow for 0..2, no negative exponents in a ring.
	assert.Len(t, report.Checks, 6)
	assert.Equal(t, "neg_pow(2)", report.Checks[5].Law)
}

func TestPowerCommand_NonCommutingPair(t *testing.T) {
	out, err := run(t, "power", "--structure", "dihedral", "--a", "r1", "--b", "s0")
	require.NoError(t, err)
	assert.Contains(t, out, "r1 and s0 do not commute in D4")
}

func TestPowerCommand_RequiresElements(t *testing.T) {
	_, err := run(t, "power", "--structure", "dihedral", "--a", "r1")
	require.Error(t, err)
}

func TestLawsCommand(t *testing.T) {
	out, err := run(t, "laws", "--structure", "symmetric", "--order", "3", "--output", "yaml")
	require.NoError(t, err)

	var report lawsReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &report))
	assert.Equal(t, "group", report.Kind)
	assert.Contains(t, report.Laws, "Inverse")
	assert.NotContains(t, report.Laws, "Commutative")
	assert.Contains(t, report.Properties, "noncommuting")

	_, ok := checker.IsVerified("S3")
	assert.True(t, ok, "S3 should be registered after a clean run")
}

func TestLawsCommand_Ring(t *testing.T) {
	out, err := run(t, "laws", "--structure", "mat2", "--order", "2", "--samples", "8")
	require.NoError(t, err)
	assert.Contains(t, out, "M2(Z/2) (ring) on 8 samples")
	assert.Contains(t, out, "✓ Distributive")
}

func TestListCommand(t *testing.T) {
	out, err := run(t, "list")
	require.NoError(t, err)
	for _, name := range catalogNames() {
		assert.Contains(t, out, name)
	}
}

func TestOpenStructure_Errors(t *testing.T) {
	_, err := run(t, "laws", "--structure", "quaternion")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown structure")

	_, err = run(t, "laws", "--structure", "symmetric", "--order", "9")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "enumerable limit")

	_, err = run(t, "centralizer", "--structure", "zmod", "--order", "5000000000", "--pivot", "2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "enumerable limit")

	_, err = run(t, "laws", "--structure", "dihedral", "--order", "5000")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "enumerable limit")

	_, err = run(t, "laws", "--output", "json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestConfigFileWithFlagOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "commute.yaml")
	data := `structure: zmod
order: 6
pivots: ["2"]
output: yaml
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	out, err := run(t, "centralizer", "--config", path)
	require.NoError(t, err)
	var report centralizerReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &report))
	assert.Equal(t, "Z/6", report.Structure)
	assert.Equal(t, 6, report.Size)
	assert.Equal(t, []string{"2"}, report.Pivots)

	out, err = run(t, "centralizer", "--config", path, "--order", "8")
	require.NoError(t, err)
	require.NoError(t, yaml.Unmarshal([]byte(out), &report))
	assert.Equal(t, "Z/8", report.Structure)
	assert.Equal(t, 8, report.Size)
}

// TestPowerCommand_HugeModulus parses elements without enumerating the
// structure, so the enumerable limit does not apply.
func TestPowerCommand_HugeModulus(t *testing.T) {
	out, err := run(t, "power", "--structure", "zmod", "--order", "5000000000",
		"--a", "4999999999", "--b", "4999999998", "--max-exponent", "4", "--output", "yaml")
	require.NoError(t, err)

	var report powerReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &report))
	assert.Equal(t, "Z/5000000000", report.Structure)
	assert.True(t, report.Commute)
	assert.Zero(t, report.Failures)
	require.NotEmpty(t, report.Checks)
	// (-1·-2)^4 = 16
	assert.Equal(t, "mul_pow(4)", report.Checks[8].Law)
	assert.Equal(t, "16", report.Checks[8].LHS)

	_, err = run(t, "power", "--structure", "units", "--order", "5000000000", "--a", "3", "--b", "7")
	require.NoError(t, err)
}
