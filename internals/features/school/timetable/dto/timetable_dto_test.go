package dto

import (
	"testing"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "sekolahku_backend/internals/features/school/timetable/model"
)

func slot(day, timeSlot string) m.TimetableSlotModel {
	return m.TimetableSlotModel{TimetableSlotDay: day, TimetableSlotTime: timeSlot}
}

func TestSortSlots(t *testing.T) {
	slots := []m.TimetableSlotModel{
		slot("Wednesday", "09:00-10:00"),
		slot("Monday", "10:00-11:00"),
		slot("Monday", "08:00-09:00"),
		slot("Friday", "08:00-09:00"),
		slot("Tuesday", "08:00-09:00"),
	}

	SortSlots(slots)

	got := make([][2]string, 0, len(slots))
	for _, s := range slots {
		got = append(got, [2]string{s.TimetableSlotDay, s.TimetableSlotTime})
	}
	assert.Equal(t, [][2]string{
		{"Monday", "08:00-09:00"},
		{"Monday", "10:00-11:00"},
		{"Tuesday", "08:00-09:00"},
		{"Wednesday", "09:00-10:00"},
		{"Friday", "08:00-09:00"},
	}, got)
}

func TestSortSlotsStable(t *testing.T) {
	a := slot("Monday", "08:00-09:00")
	a.TimetableSlotSubjectID = uuid.New()
	b := slot("Monday", "08:00-09:00")
	b.TimetableSlotSubjectID = uuid.New()
	slots := []m.TimetableSlotModel{a, b}

	SortSlots(slots)
	assert.Equal(t, a.TimetableSlotSubjectID, slots[0].TimetableSlotSubjectID)
	assert.Equal(t, b.TimetableSlotSubjectID, slots[1].TimetableSlotSubjectID)
}

func TestUpdateSlotApply(t *testing.T) {
	rec := slot("Monday", "08:00-09:00")
	var req UpdateTimetableSlotRequest
	require.NoError(t, sonic.Unmarshal([]byte(`{"day":"Friday"}`), &req))
	req.Apply(&rec)
	assert.Equal(t, "Friday", rec.TimetableSlotDay)
	assert.Equal(t, "08:00-09:00", rec.TimetableSlotTime)
}
