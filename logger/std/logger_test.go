package std_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pwnedgod/uuidcodec/logger/std"
)

func TestLogger_WritesLevels(t *testing.T) {
	var out, errOut bytes.Buffer
	l := std.NewLoggerWithWriters(&out, &errOut)

	l.Info("registry ready")
	l.Debug("value rejected", "format", "json")
	l.Error("registry configuration rejected")

	assert.Equal(t, "[INFO] registry ready\n[DEBUG] value rejected format json\n", out.String())
	assert.Equal(t, "[ERROR] registry configuration rejected\n", errOut.String())
}

func TestQuietLogger_DropsDebug(t *testing.T) {
	var out, errOut bytes.Buffer
	l := std.NewQuietLogger(&out, &errOut)

	l.Debug("value rejected")
	l.Info("registry ready")

	assert.Equal(t, "[INFO] registry ready\n", out.String())
	assert.Empty(t, errOut.String())
}
