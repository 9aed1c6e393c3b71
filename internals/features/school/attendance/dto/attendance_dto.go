package dto

import (
	"math"
	"time"

	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/school/attendance/model"
	helper "sekolahku_backend/internals/helpers"
)

type CreateAttendanceRequest struct {
	StudentID uuid.UUID `json:"studentId" validate:"required"`
	ClassID   uuid.UUID `json:"classId" validate:"required"`
	Date      time.Time `json:"date" validate:"required"`
	Present   bool      `json:"present"`
}

func (r CreateAttendanceRequest) ToModel() m.AttendanceModel {
	return m.AttendanceModel{
		AttendanceStudentID: r.StudentID,
		AttendanceClassID:   r.ClassID,
		AttendanceDate:      r.Date,
		AttendancePresent:   r.Present,
	}
}

type UpdateAttendanceRequest struct {
	StudentID helper.PatchField[uuid.UUID] `json:"studentId"`
	ClassID   helper.PatchField[uuid.UUID] `json:"classId"`
	Date      helper.PatchField[time.Time] `json:"date"`
	Present   helper.PatchField[bool]      `json:"present"`
}

func (r UpdateAttendanceRequest) Apply(a *m.AttendanceModel) {
	r.StudentID.Apply(&a.AttendanceStudentID)
	r.ClassID.Apply(&a.AttendanceClassID)
	r.Date.Apply(&a.AttendanceDate)
	r.Present.Apply(&a.AttendancePresent)
}

type StudentRef struct {
	ID         uuid.UUID `json:"id"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	RollNumber string    `json:"rollNumber"`
}

type ClassRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type AttendanceResponse struct {
	ID        uuid.UUID   `json:"id"`
	StudentID uuid.UUID   `json:"studentId"`
	Student   *StudentRef `json:"student,omitempty"`
	ClassID   uuid.UUID   `json:"classId"`
	Class     *ClassRef   `json:"class,omitempty"`
	Date      time.Time   `json:"date"`
	Present   bool        `json:"present"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

func FromModel(a m.AttendanceModel) AttendanceResponse {
	resp := AttendanceResponse{
		ID:        a.AttendanceID,
		StudentID: a.AttendanceStudentID,
		ClassID:   a.AttendanceClassID,
		Date:      a.AttendanceDate,
		Present:   a.AttendancePresent,
		CreatedAt: a.AttendanceCreatedAt,
		UpdatedAt: a.AttendanceUpdatedAt,
	}
	if a.Student != nil {
		resp.Student = &StudentRef{
			ID:         a.Student.StudentID,
			FirstName:  a.Student.StudentFirstName,
			LastName:   a.Student.StudentLastName,
			RollNumber: a.Student.StudentRollNumber,
		}
	}
	if a.Class != nil {
		resp.Class = &ClassRef{ID: a.Class.ClassID, Name: a.Class.ClassName}
	}
	return resp
}

// AttendanceStats is the derived view used by the percentage endpoint and
// the dashboard; one implementation for both callers.
type AttendanceStats struct {
	Total      int `json:"total"`
	Present    int `json:"present"`
	Percentage int `json:"percentage"`
}

func Summarize(records []m.AttendanceModel) AttendanceStats {
	present := 0
	for _, r := range records {
		if r.AttendancePresent {
			present++
		}
	}
	return AttendanceStats{
		Total:      len(records),
		Present:    present,
		Percentage: int(math.Round(helper.Percentage(float64(present), float64(len(records))))),
	}
}
