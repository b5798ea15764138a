package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alem-hub/gradebook/internal/domain/shared"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"APP_ENV", "APP_DEBUG", "GRADEBOOK_FILE", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(key, "")
	}
}

func TestRootCmd_Session(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "students.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"student_id": "A01", "courses": [{"name": "Math", "score": 90}]}]`), 0o644))

	in := strings.NewReader("2\nA01\nScience\n75\n3\nA01\n4\n")
	var out, errOut bytes.Buffer

	cmd := newRootCmd(in, &out, &errOut)
	cmd.SetArgs([]string{"--file", path})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "=> Average score: 82.5")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"name": "Science"`)
}

func TestRootCmd_MissingFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "absent.json")
	var out, errOut bytes.Buffer

	cmd := newRootCmd(strings.NewReader("4\n"), &out, &errOut)
	cmd.SetArgs([]string{"--file", path})
	err := cmd.Execute()

	require.Error(t, err)
	assert.True(t, shared.IsNotFound(err))
	assert.Contains(t, out.String(), "=> Not found: file "+path+" does not exist")
	assert.NotContains(t, out.String(), "Menu")
}

func TestExecute_LoadErrorReportedOnce(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_LEVEL", "error")
	path := filepath.Join(t.TempDir(), "absent.json")
	var out, errOut bytes.Buffer

	code := execute(strings.NewReader("4\n"), &out, &errOut, []string{"--file", path})

	assert.Equal(t, 1, code)
	assert.Equal(t, 1, strings.Count(out.String()+errOut.String(), "does not exist"))
	assert.Contains(t, out.String(), "=> Not found: file "+path+" does not exist")
	assert.NotContains(t, errOut.String(), "gradebook:")
}

func TestExecute_OtherErrorsGoToStderr(t *testing.T) {
	clearEnv(t)
	var out, errOut bytes.Buffer

	code := execute(strings.NewReader(""), &out, &errOut, []string{"numbers", "1", "two"})

	assert.Equal(t, 1, code)
	assert.Equal(t, "gradebook: numbers: \"two\" is not an integer\n", errOut.String())
}

func TestExecute_Success(t *testing.T) {
	clearEnv(t)
	var out, errOut bytes.Buffer

	code := execute(strings.NewReader(""), &out, &errOut, []string{"numbers"})

	assert.Zero(t, code)
	assert.Empty(t, errOut.String())
}

func TestRootCmd_FlagOverridesInvalidEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_LEVEL", "loud")
	t.Setenv("LOG_FORMAT", "xml")
	path := filepath.Join(t.TempDir(), "students.json")
	require.NoError(t, os.WriteFile(path, []byte(`[]`), 0o644))
	var out, errOut bytes.Buffer

	cmd := newRootCmd(strings.NewReader("4\n"), &out, &errOut)
	cmd.SetArgs([]string{"--file", path, "--log-level", "debug", "--log-format", "json"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "=> Goodbye.")
	assert.Contains(t, errOut.String(), `"level":"INFO"`)
}

func TestRootCmd_InvalidEnvWithoutOverride(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_LEVEL", "loud")
	path := filepath.Join(t.TempDir(), "students.json")
	require.NoError(t, os.WriteFile(path, []byte(`[]`), 0o644))
	var out, errOut bytes.Buffer

	cmd := newRootCmd(strings.NewReader("4\n"), &out, &errOut)
	cmd.SetArgs([]string{"--file", path})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOG_LEVEL")
	assert.Empty(t, out.String())
}

func TestRootCmd_MalformedFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "students.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o644))
	var out, errOut bytes.Buffer

	cmd := newRootCmd(strings.NewReader("4\n"), &out, &errOut)
	cmd.SetArgs([]string{"--file", path})
	err := cmd.Execute()

	require.Error(t, err)
	assert.True(t, shared.IsInvalidFormat(err))
	assert.Contains(t, out.String(), "=> Invalid data:")
}

func TestNumbersCmd(t *testing.T) {
	clearEnv(t)
	var out, errOut bytes.Buffer

	cmd := newRootCmd(strings.NewReader(""), &out, &errOut)
	cmd.SetArgs([]string{"numbers"})
	require.NoError(t, cmd.Execute())

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "       4,       16,       36,       64", lines[0])
	assert.Equal(t, "       1,       27,      125,      343,      729", lines[1])
	assert.Equal(t, "       5,        6,        7,        8,        9", lines[2])
}

func TestNumbersCmd_InvalidArg(t *testing.T) {
	var out, errOut bytes.Buffer

	cmd := newRootCmd(strings.NewReader(""), &out, &errOut)
	cmd.SetArgs([]string{"numbers", "1", "two"})
	assert.Error(t, cmd.Execute())
}
