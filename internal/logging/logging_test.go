package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONFormatWithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := newWithOutput("debug", "json", &buf)

	logger.WithField("viewer_id", 7).Debug("listing restaurants")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "listing restaurants", entry["msg"])
	assert.Equal(t, float64(7), entry["viewer_id"])
}

func TestNew_UnknownLevelFallsBackToInfo(t *testing.T) {
	logger := newWithOutput("loud", "text", &bytes.Buffer{})
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
}
