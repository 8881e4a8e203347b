package server_test

import (
	"testing"

	"inventory-manager/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_BodyLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"Configured", 8, 8 * 1024 * 1024},
		{"Zero", 0, 4 * 1024 * 1024},
		{"Negative", -1, 4 * 1024 * 1024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{BodyLimitMB: tt.limit}
			assert.Equal(t, tt.want, c.BodyLimit())
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, server.Config{Port: "8080"}.Validate())
	assert.Error(t, server.Config{}.Validate())
}
