package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaultLevelHidesDebug(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, false)

	log.Debug().Msg("hidden")
	log.Info().Msg("also hidden")
	log.Warn().Str("path", "tx.csv").Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "path=tx.csv")
}

func TestNewVerbose(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, true)

	log.Debug().Int("rows", 3).Msg("read store")
	assert.Contains(t, buf.String(), "read store")
	assert.Contains(t, buf.String(), "rows=3")
}

func TestNop(t *testing.T) {
	log := Nop()
	log.Error().Msg("nothing")
}
