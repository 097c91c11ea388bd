package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/GearEightGames/PerformanceBooster/lib/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLogLevelApplied(t *testing.T) {
	buf := &bytes.Buffer{}
	logger.SetOutput(buf)
	defer logger.SetOutput(os.Stderr)

	logger.Debug("not shown")
	assert.Zero(t, buf.Len())
	logger.Info("shown")
	assert.Contains(t, buf.String(), `"level":"info"`)
}

func TestParse(t *testing.T) {
	src := `# pool tuning
maxtotal 8
MaxIdle 4
initial-capacity   32
block-when-exhausted no
unknown-key whatever
loglevel warn
`
	p, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 8, p.MaxTotal)
	assert.Equal(t, 4, p.MaxIdle)
	assert.Equal(t, 32, p.InitialCapacity)
	assert.False(t, p.BlockWhenExhausted)
	assert.Equal(t, "warn", p.LogLevel)
	assert.Equal(t, Default().MaxRetainedCapacity, p.MaxRetainedCapacity)
}

func TestParseRejectsBadInt(t *testing.T) {
	_, err := Parse(strings.NewReader("maxtotal lots\n"))
	assert.ErrorContains(t, err, "maxtotal")
}

func TestSetupConfigProperties(t *testing.T) {
	old := Properties
	defer func() {
		Properties = old
		_ = logger.SetLevel(old.LogLevel)
	}()

	filename := filepath.Join(t.TempDir(), "booster.conf")
	require.NoError(t, os.WriteFile(filename, []byte("maxtotal 2\nloglevel debug\n"), 0o644))
	require.NoError(t, SetupConfigProperties(filename))
	assert.Equal(t, 2, Properties.MaxTotal)

	assert.Error(t, SetupConfigProperties(filepath.Join(t.TempDir(), "missing.conf")))
	assert.Equal(t, 2, Properties.MaxTotal)
}
