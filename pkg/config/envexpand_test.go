package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnv(t *testing.T) {
	tests := []struct {
		name  string
		input string
		env   map[string]string
		want  string
	}{
		{
			name:  "simple expansion",
			input: "api_key: {{.ANTHROPIC_API_KEY}}",
			env:   map[string]string{"ANTHROPIC_API_KEY": "sk-test-123"},
			want:  "api_key: sk-test-123",
		},
		{
			name:  "multiple variables on one line",
			input: "addr: {{.DB_HOST}}:{{.DB_PORT}}",
			env:   map[string]string{"DB_HOST": "postgres", "DB_PORT": "5432"},
			want:  "addr: postgres:5432",
		},
		{
			name:  "literal dollar in rate pattern preserved",
			input: `rate_pattern: '\$\d+(\.\d+)?\s*/\s*(hr|hour)'`,
			want:  `rate_pattern: '\$\d+(\.\d+)?\s*/\s*(hr|hour)'`,
		},
		{
			name:  "literal dollar in value preserved",
			input: `note: "looking for $40/hr tutor"`,
			want:  `note: "looking for $40/hr tutor"`,
		},
		{
			name:  "missing variable expands to empty",
			input: "token: {{.ASSIGNFLOW_UNSET_VAR}}",
			want:  "token: ",
		},
		{
			name:  "no template syntax passes through",
			input: "worker_count: 5\npipeline_version: v1",
			want:  "worker_count: 5\npipeline_version: v1",
		},
		{
			name:  "malformed template returned unchanged",
			input: "broken: {{.UNCLOSED",
			want:  "broken: {{.UNCLOSED",
		},
		{
			name:  "value containing equals sign",
			input: "conn: {{.ASSIGNFLOW_TEST_DSN}}",
			env:   map[string]string{"ASSIGNFLOW_TEST_DSN": "postgres://u:p@h/db?sslmode=disable&x=1"},
			want:  "conn: postgres://u:p@h/db?sslmode=disable&x=1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			got := ExpandEnv([]byte(tt.input))
			assert.Equal(t, tt.want, string(got))
		})
	}
}
