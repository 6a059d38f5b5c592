package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/jsonxl/errs"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))

	err := cmd.Execute()

	return out.String(), err
}

func TestCommand_Dir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.json"), []byte(`{"serviceId":"svc-9"}`), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.json"), []byte(`{"serviceId":`), 0o600))

	stdout, err := execute(t, "-d", dir)
	require.NoError(t, err)
	require.Contains(t, stdout, "Target directory: "+dir)
	require.Contains(t, stdout, "Sensitive fields: meterId, productId, skuId, serviceId, CustomerEntityId, id")
	require.Contains(t, stdout, "Succeeded: 1")
	require.Contains(t, stdout, "Failed: 1")

	data, err := os.ReadFile(filepath.Join(dir, "a.json"))
	require.NoError(t, err)
	require.Equal(t, "{\n  \"serviceId\": \"anon-68bac0c\"\n}", string(data))
}

func TestCommand_ReportsCollisions(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "c.json"), []byte(`[{"skuId":"Aa"},{"skuId":"BB"}]`), 0o600))

	stdout, err := execute(t, "--dir", dir)
	require.NoError(t, err)
	require.Contains(t, stdout, "Collisions: 1")
	require.Contains(t, stdout, `skuId anon-840 <- "Aa", "BB"`)
}

func TestCommand_ConfigDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.json"), []byte(`{"id":"x"}`), 0o600))

	cfgPath := filepath.Join(t.TempDir(), "jsonxl.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("anonymizer:\n  dir: "+dir+"\n"), 0o600))

	stdout, err := execute(t, "--config", cfgPath)
	require.NoError(t, err)
	require.Contains(t, stdout, "Succeeded: 1")
}

func TestCommand_Errors(t *testing.T) {
	_, err := execute(t, "-d", filepath.Join(t.TempDir(), "missing"))
	require.ErrorIs(t, err, errs.ErrFileNotFound)

	_, err = execute(t, "unexpected")
	require.Error(t, err)

	_, err = execute(t, "--log-level", "loud")
	require.ErrorIs(t, err, errs.ErrInvalidConfig)
}
