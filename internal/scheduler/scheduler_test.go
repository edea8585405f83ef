package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrei/vacancy-tracker/internal/config"
	"github.com/andrei/vacancy-tracker/internal/refresh"
)

func TestNew_BuildsIntervalSpec(t *testing.T) {
	s := New(&refresh.Coordinator{}, config.DefaultSettings, 45)
	assert.Equal(t, "@every 45m", s.spec)
}
