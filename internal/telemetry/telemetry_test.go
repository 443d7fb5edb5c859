package telemetry

import (
	"context"
	"testing"

	"crm-backend/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestSetup_DisabledWithoutEndpoint(t *testing.T) {
	shutdown := Setup(context.Background(), &config.Config{}, "crm-backend", "test")

	assert.NoError(t, shutdown(context.Background()))
}
