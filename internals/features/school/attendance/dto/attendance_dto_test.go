package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "sekolahku_backend/internals/features/school/attendance/model"
)

func recs(present ...bool) []m.AttendanceModel {
	out := make([]m.AttendanceModel, len(present))
	for i, p := range present {
		out[i].AttendancePresent = p
	}
	return out
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name string
		in   []m.AttendanceModel
		want AttendanceStats
	}{
		{"empty", nil, AttendanceStats{Total: 0, Present: 0, Percentage: 0}},
		{"all present", recs(true, true), AttendanceStats{Total: 2, Present: 2, Percentage: 100}},
		{"two thirds rounds to 67", recs(true, true, false), AttendanceStats{Total: 3, Present: 2, Percentage: 67}},
		{"one third rounds to 33", recs(true, false, false), AttendanceStats{Total: 3, Present: 1, Percentage: 33}},
		{"none present", recs(false, false), AttendanceStats{Total: 2, Present: 0, Percentage: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Summarize(tt.in))
		})
	}
}
