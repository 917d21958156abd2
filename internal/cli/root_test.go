package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nao1215/tabsql"
)

const sampleTSV = "one\ttwo\tthree\nOne\t2\t3.2\nTwo\t4\t5.5\n"

const sampleScript = "DROP TABLE IF EXISTS sample;\n" +
	"CREATE TABLE sample(\n" +
	"id INT NOT NULL AUTO_INCREMENT,\n" +
	"`one` VARCHAR(20),\n" +
	"`two` INT,\n" +
	"`three` FLOAT,\n" +
	"PRIMARY KEY ( id ));\n" +
	"\n" +
	"INSERT INTO sample\n" +
	"(`one`,`two`,`three`)\n" +
	"VALUES\n" +
	"('One',2,3.2),\n" +
	"('Two',4,5.5);\n"

func TestRootCommand_WritesScript(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "sample.tsv", sampleTSV)

	stdout, _, err := runCLI(t, "--config", emptyConfig(t), "-f", input)
	require.NoError(t, err)

	output := filepath.Join(dir, "sample.sql")
	assert.Equal(t, "SQL file written: "+output+"\n", stdout)

	got, err := os.ReadFile(output) //nolint:gosec // test file
	require.NoError(t, err)
	assert.Equal(t, sampleScript, string(got))
}

func TestRootCommand_PositionalArgument(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "sample.tsv", sampleTSV)
	output := filepath.Join(dir, "out.sql")

	_, _, err := runCLI(t, "--config", emptyConfig(t), "-o", output, input)
	require.NoError(t, err)
	assert.FileExists(t, output)
}

func TestRootCommand_Stdout(t *testing.T) {
	input := writeFile(t, t.TempDir(), "sample.tsv", sampleTSV)

	stdout, _, err := runCLI(t, "--config", emptyConfig(t), "-f", input, "-o", "-")
	require.NoError(t, err)
	assert.Equal(t, sampleScript, stdout)
}

func TestRootCommand_Flags(t *testing.T) {
	input := writeFile(t, t.TempDir(), "users.csv", "name,age\nalice,30\n")

	stdout, _, err := runCLI(t,
		"--config", emptyConfig(t),
		"-f", input,
		"-t", "members",
		"-p",
		"--varchar-length", "64",
		"-o", "-",
	)
	require.NoError(t, err)

	want := "DROP TABLE IF EXISTS members;\n" +
		"CREATE TABLE members(\n" +
		"`name` VARCHAR(64) NOT NULL,\n" +
		"`age` INT,\n" +
		"PRIMARY KEY ( `name` ));\n" +
		"\n" +
		"INSERT INTO members\n" +
		"(`name`,`age`)\n" +
		"VALUES\n" +
		"('alice',30);\n"
	assert.Equal(t, want, stdout)
}

func TestRootCommand_ConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "users.csv", "name,age\nalice,30\n")
	cfg := writeFile(t, dir, "config.toml", "primary_first = true\nvarchar_length = 8\n")

	stdout, _, err := runCLI(t, "--config", cfg, "-f", input, "-o", "-")
	require.NoError(t, err)
	assert.Contains(t, stdout, "`name` VARCHAR(8) NOT NULL,\n")
	assert.NotContains(t, stdout, "AUTO_INCREMENT")

	// Flags win over the config file
	stdout, _, err = runCLI(t, "--config", cfg, "-f", input, "-o", "-", "--varchar-length", "30")
	require.NoError(t, err)
	assert.Contains(t, stdout, "`name` VARCHAR(30) NOT NULL,\n")
}

func TestRootCommand_Verbose(t *testing.T) {
	input := writeFile(t, t.TempDir(), "sample.tsv", sampleTSV)

	_, stderr, err := runCLI(t, "--config", emptyConfig(t), "-v", "-f", input, "-o", "-")
	require.NoError(t, err)
	assert.Contains(t, stderr, "[INFO] loading "+input)
	assert.Contains(t, stderr, "[DEBUG] column types [STRING, INTEGER, FLOAT]")
}

func TestRootCommand_UsageErrors(t *testing.T) {
	input := writeFile(t, t.TempDir(), "sample.tsv", sampleTSV)

	tests := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{
			name:    "missing file",
			args:    []string{},
			wantMsg: `required flag "file" not set`,
		},
		{
			name:    "file given twice",
			args:    []string{"-f", input, input},
			wantMsg: "not both",
		},
		{
			name:    "too many arguments",
			args:    []string{input, input},
			wantMsg: "accepts at most 1 arg(s)",
		},
		{
			name:    "unknown flag",
			args:    []string{"--bogus"},
			wantMsg: "unknown flag",
		},
		{
			name:    "non positive varchar length",
			args:    []string{"-f", input, "--varchar-length", "0"},
			wantMsg: "--varchar-length must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"--config", emptyConfig(t)}, tt.args...)
			_, _, err := runCLI(t, args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.Equal(t, ExitUsage, ExitCode(err))
		})
	}
}

func TestRootCommand_ConversionErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		file    string
		content string
		wantErr error
	}{
		{
			name:    "unsupported extension",
			file:    "data.json",
			content: "{}",
			wantErr: tabsql.ErrUnsupportedFormat,
		},
		{
			name:    "ragged row",
			file:    "ragged.csv",
			content: "a,b\n1,2\n3\n",
			wantErr: tabsql.ErrRaggedRow,
		},
		{
			name:    "header only",
			file:    "header.csv",
			content: "a,b\n",
			wantErr: tabsql.ErrNoDataRows,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := writeFile(t, dir, tt.file, tt.content)
			_, _, err := runCLI(t, "--config", emptyConfig(t), "-f", input, "-o", "-")
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			assert.Equal(t, ExitFailure, ExitCode(err))
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, _, err := runCLI(t, "--config", emptyConfig(t), "-f", filepath.Join(dir, "missing.csv"))
		require.Error(t, err)
		assert.ErrorIs(t, err, tabsql.ErrFileNotFound)
		assert.Equal(t, ExitFailure, ExitCode(err))
	})
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ExitOK, ExitCode(nil))
	assert.Equal(t, ExitFailure, ExitCode(errors.New("boom")))
	assert.Equal(t, ExitUsage, ExitCode(newUsageError("bad flag %s", "-x")))
}
