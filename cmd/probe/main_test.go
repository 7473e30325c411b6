package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doctorprofile/profile-api/internal/diagnostics"
)

func TestRun_NoDatabaseConfigured(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("LOG_LEVEL", "error")

	var out bytes.Buffer
	ok := run(1, &out)
	assert.False(t, ok)

	var rep diagnostics.Report
	require.NoError(t, json.Unmarshal(out.Bytes(), &rep))
	assert.Equal(t, "✅ Running", rep.Backend)
	assert.Equal(t, "⚠️  Available but not initialized", rep.Database)
	assert.Equal(t, "Not Connected", rep.ConnectionStatus)
	assert.Empty(t, rep.Collections)
}
