package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"blogapi/internal/model"
)

func TestCanAccess(t *testing.T) {
	tests := []struct {
		name     string
		caller   Identity
		targetID uint
		want     bool
	}{
		{"admin may access anyone", Identity{ID: 1, Role: model.RoleAdmin}, 2, true},
		{"user may access self", Identity{ID: 2, Role: model.RoleUser}, 2, true},
		{"user may not access others", Identity{ID: 2, Role: model.RoleUser}, 3, false},
		{"unknown role falls back to self check", Identity{ID: 2, Role: "guest"}, 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanAccess(tt.caller, tt.targetID))
		})
	}
}
