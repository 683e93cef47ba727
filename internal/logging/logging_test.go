package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gotris.log")
	log, closer, err := New(path, "debug")
	require.NoError(t, err)

	log.WithField("shape", "T").Debug("piece spawned")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(data, &entry))
	assert.Equal(t, "piece spawned", entry["msg"])
	assert.Equal(t, "T", entry["shape"])
	assert.Equal(t, "debug", entry["level"])
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, _, err := New(filepath.Join(t.TempDir(), "x.log"), "loud")
	assert.Error(t, err)
}

func TestDiscard(t *testing.T) {
	log := Discard()
	assert.Equal(t, logrus.PanicLevel, log.GetLevel())
}
