package dto

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/school/timetable/model"
	helper "sekolahku_backend/internals/helpers"
)

type CreateTimetableSlotRequest struct {
	ClassID   uuid.UUID `json:"classId" validate:"required"`
	Day       string    `json:"day" validate:"required,oneof=Monday Tuesday Wednesday Thursday Friday"`
	TimeSlot  string    `json:"timeSlot" validate:"required,min=1,max=20"`
	SubjectID uuid.UUID `json:"subjectId" validate:"required"`
	TeacherID uuid.UUID `json:"teacherId" validate:"required"`
}

func (r *CreateTimetableSlotRequest) Normalize() {
	r.Day = strings.TrimSpace(r.Day)
	r.TimeSlot = strings.TrimSpace(r.TimeSlot)
}

func (r CreateTimetableSlotRequest) ToModel() m.TimetableSlotModel {
	return m.TimetableSlotModel{
		TimetableSlotClassID:   r.ClassID,
		TimetableSlotDay:       r.Day,
		TimetableSlotTime:      r.TimeSlot,
		TimetableSlotSubjectID: r.SubjectID,
		TimetableSlotTeacherID: r.TeacherID,
	}
}

type UpdateTimetableSlotRequest struct {
	ClassID   helper.PatchField[uuid.UUID] `json:"classId"`
	Day       helper.PatchField[string]    `json:"day"`
	TimeSlot  helper.PatchField[string]    `json:"timeSlot"`
	SubjectID helper.PatchField[uuid.UUID] `json:"subjectId"`
	TeacherID helper.PatchField[uuid.UUID] `json:"teacherId"`
}

func (r UpdateTimetableSlotRequest) Apply(s *m.TimetableSlotModel) {
	r.ClassID.Apply(&s.TimetableSlotClassID)
	r.Day.Apply(&s.TimetableSlotDay)
	r.TimeSlot.Apply(&s.TimetableSlotTime)
	r.SubjectID.Apply(&s.TimetableSlotSubjectID)
	r.TeacherID.Apply(&s.TimetableSlotTeacherID)
}

type Ref struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type TimetableSlotResponse struct {
	ID        uuid.UUID `json:"id"`
	ClassID   uuid.UUID `json:"classId"`
	Class     *Ref      `json:"class,omitempty"`
	Day       string    `json:"day"`
	TimeSlot  string    `json:"timeSlot"`
	SubjectID uuid.UUID `json:"subjectId"`
	Subject   *Ref      `json:"subject,omitempty"`
	TeacherID uuid.UUID `json:"teacherId"`
	Teacher   *Ref      `json:"teacher,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromModel(s m.TimetableSlotModel) TimetableSlotResponse {
	resp := TimetableSlotResponse{
		ID:        s.TimetableSlotID,
		ClassID:   s.TimetableSlotClassID,
		Day:       s.TimetableSlotDay,
		TimeSlot:  s.TimetableSlotTime,
		SubjectID: s.TimetableSlotSubjectID,
		TeacherID: s.TimetableSlotTeacherID,
		CreatedAt: s.TimetableSlotCreatedAt,
		UpdatedAt: s.TimetableSlotUpdatedAt,
	}
	if s.Class != nil {
		resp.Class = &Ref{ID: s.Class.ClassID, Name: s.Class.ClassName}
	}
	if s.Subject != nil {
		resp.Subject = &Ref{ID: s.Subject.SubjectID, Name: s.Subject.SubjectName}
	}
	if s.Teacher != nil {
		resp.Teacher = &Ref{ID: s.Teacher.TeacherID, Name: s.Teacher.TeacherName}
	}
	return resp
}

var dayRank = map[string]int{
	"Monday":    0,
	"Tuesday":   1,
	"Wednesday": 2,
	"Thursday":  3,
	"Friday":    4,
}

// SortSlots orders the class view Monday through Friday, then by time
// slot within a day.
func SortSlots(slots []m.TimetableSlotModel) {
	sort.SliceStable(slots, func(i, j int) bool {
		di, dj := dayRank[slots[i].TimetableSlotDay], dayRank[slots[j].TimetableSlotDay]
		if di != dj {
			return di < dj
		}
		return slots[i].TimetableSlotTime < slots[j].TimetableSlotTime
	})
}
