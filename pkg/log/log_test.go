package log

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Equal(t, "", GetCorrelationID(context.Background()))
}

func TestDevelopmentFieldFilter(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	SetupTestLogger()

	base := L.(*logger)

	same := L.WithField("user_agent", "curl")
	assert.Same(t, base, same.(*logger))

	kept := L.WithFields(Fields{"series_id": "UNRATE", "noise": 1}).(*logger)
	assert.Contains(t, kept.entry.Data, "series_id")
	assert.NotContains(t, kept.entry.Data, "noise")
}

func TestProductionKeepsAllFields(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	SetupTestLogger()

	got := L.WithFields(Fields{"user_agent": "curl"}).(*logger)
	assert.Contains(t, got.entry.Data, "user_agent")
}
