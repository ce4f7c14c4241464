package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDuplicateModeIsValid(t *testing.T) {
	tests := []struct {
		mode DuplicateMode
		want bool
	}{
		{DuplicateModeAll, true},
		{DuplicateModePrimaryOnly, true},
		{DuplicateModePrimaryWithNote, true},
		{DuplicateMode(""), false},
		{DuplicateMode("primary"), false},
		{DuplicateMode("ALL"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.mode.IsValid())
		})
	}
}
