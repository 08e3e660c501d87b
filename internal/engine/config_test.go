package engine

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_LoadConfig_Defaults_When_No_File_Or_Overrides(t *testing.T) {
	t.Parallel()

	cfg, err := LoadConfig(LoadConfigInput{})
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
}

func Test_LoadConfig_File_Overrides_Defaults(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "cnotbfs.jsonc")
	require.NoError(t, os.WriteFile(path, []byte(`{
		// trailing comma and comments are fine, it's JSONC
		"n": 6,
		"max": 30,
	}`), 0o644))

	cfg, err := LoadConfig(LoadConfigInput{ConfigPath: path})
	require.NoError(t, err)
	require.Equal(t, 6, cfg.N)
	require.Equal(t, uint(30), cfg.Max)
}

func Test_LoadConfig_CLI_Overrides_Beat_File(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "cnotbfs.jsonc")
	require.NoError(t, os.WriteFile(path, []byte(`{"n": 6}`), 0o644))

	n := 5
	cfg, err := LoadConfig(LoadConfigInput{ConfigPath: path, Overrides: Overrides{N: &n}})
	require.NoError(t, err)
	require.Equal(t, 5, cfg.N)
}

func Test_LoadConfig_Rejects_Swap_Without_Nauty(t *testing.T) {
	t.Parallel()

	swap := true
	_, err := LoadConfig(LoadConfigInput{Overrides: Overrides{Swap: &swap}})
	require.ErrorIs(t, err, ErrConfig)
}

func Test_LoadConfig_Rejects_Poly_And_Swap_Together(t *testing.T) {
	t.Parallel()

	swap, nauty, poly := true, true, true
	_, err := LoadConfig(LoadConfigInput{Overrides: Overrides{Swap: &swap, Nauty: &nauty, Poly: &poly}})
	require.ErrorIs(t, err, ErrConfig)
}

func Test_LoadConfig_Rejects_N_Out_Of_Range(t *testing.T) {
	t.Parallel()

	n := 9
	_, err := LoadConfig(LoadConfigInput{Overrides: Overrides{N: &n}})
	require.ErrorIs(t, err, ErrConfig)
}

func Test_LoadConfig_Rejects_Missing_File(t *testing.T) {
	t.Parallel()

	_, err := LoadConfig(LoadConfigInput{ConfigPath: "/no/such/cnotbfs.jsonc"})
	require.ErrorIs(t, err, ErrConfig)
}

func Test_LoadConfig_Applies_Beat_Override(t *testing.T) {
	t.Parallel()

	beat := 2 * time.Second
	cfg, err := LoadConfig(LoadConfigInput{Overrides: Overrides{Beat: &beat}})
	require.NoError(t, err)
	require.Equal(t, 2*time.Second, cfg.Beat)
}
