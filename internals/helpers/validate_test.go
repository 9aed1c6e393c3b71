package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequireJSONFields(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		required []string
		want     string
	}{
		{
			name:     "all present",
			body:     `{"name":"Alia","email":"a@b.c"}`,
			required: []string{"name", "email"},
			want:     "",
		},
		{
			name:     "one absent",
			body:     `{"name":"Alia"}`,
			required: []string{"name", "email"},
			want:     "Missing required field(s): email",
		},
		{
			name:     "null counts as missing",
			body:     `{"name":null,"email":"a@b.c"}`,
			required: []string{"name", "email"},
			want:     "Missing required field(s): name",
		},
		{
			name:     "whitespace string counts as missing",
			body:     `{"name":"   "}`,
			required: []string{"name"},
			want:     "Missing required field(s): name",
		},
		{
			name:     "multiple listed in order",
			body:     `{}`,
			required: []string{"admissionNumber", "firstName", "rollNumber"},
			want:     "Missing required field(s): admissionNumber, firstName, rollNumber",
		},
		{
			name:     "invalid json lists everything",
			body:     `not json`,
			required: []string{"name"},
			want:     "Missing required field(s): name",
		},
		{
			name:     "non-string zero values are fine",
			body:     `{"capacity":0,"active":false}`,
			required: []string{"capacity", "active"},
			want:     "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RequireJSONFields([]byte(tt.body), tt.required...))
		})
	}
}
