package dto

import (
	"time"

	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/school/marks/model"
	helper "sekolahku_backend/internals/helpers"
)

type CreateMarksRequest struct {
	StudentID  uuid.UUID  `json:"studentId" validate:"required"`
	SubjectID  uuid.UUID  `json:"subjectId" validate:"required"`
	ClassID    uuid.UUID  `json:"classId" validate:"required"`
	Marks      float64    `json:"marks" validate:"gte=0"`
	TotalMarks float64    `json:"totalMarks" validate:"gte=0"`
	Date       *time.Time `json:"date"`
}

// ToModel derives the percentage at creation time; it is stored, not
// recomputed on reads.
func (r CreateMarksRequest) ToModel() m.MarksModel {
	date := time.Now()
	if r.Date != nil {
		date = *r.Date
	}
	return m.MarksModel{
		MarksStudentID:  r.StudentID,
		MarksSubjectID:  r.SubjectID,
		MarksClassID:    r.ClassID,
		MarksObtained:   r.Marks,
		MarksTotal:      r.TotalMarks,
		MarksPercentage: helper.Percentage(r.Marks, r.TotalMarks),
		MarksDate:       date,
	}
}

type UpdateMarksRequest struct {
	StudentID  helper.PatchField[uuid.UUID] `json:"studentId"`
	SubjectID  helper.PatchField[uuid.UUID] `json:"subjectId"`
	ClassID    helper.PatchField[uuid.UUID] `json:"classId"`
	Marks      helper.PatchField[float64]   `json:"marks"`
	TotalMarks helper.PatchField[float64]   `json:"totalMarks"`
	Date       helper.PatchField[time.Time] `json:"date"`
}

// Apply merges the patch; the percentage is recomputed only when marks
// and totalMarks arrive in the same request.
func (r UpdateMarksRequest) Apply(rec *m.MarksModel) {
	r.StudentID.Apply(&rec.MarksStudentID)
	r.SubjectID.Apply(&rec.MarksSubjectID)
	r.ClassID.Apply(&rec.MarksClassID)
	r.Marks.Apply(&rec.MarksObtained)
	r.TotalMarks.Apply(&rec.MarksTotal)
	r.Date.Apply(&rec.MarksDate)

	marks, marksOK := r.Marks.Get()
	total, totalOK := r.TotalMarks.Get()
	if marksOK && totalOK && marks != nil && total != nil {
		rec.MarksPercentage = helper.Percentage(*marks, *total)
	}
}

type StudentRef struct {
	ID         uuid.UUID `json:"id"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	RollNumber string    `json:"rollNumber"`
}

type Ref struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type MarksResponse struct {
	ID         uuid.UUID   `json:"id"`
	StudentID  uuid.UUID   `json:"studentId"`
	Student    *StudentRef `json:"student,omitempty"`
	SubjectID  uuid.UUID   `json:"subjectId"`
	Subject    *Ref        `json:"subject,omitempty"`
	ClassID    uuid.UUID   `json:"classId"`
	Class      *Ref        `json:"class,omitempty"`
	Marks      float64     `json:"marks"`
	TotalMarks float64     `json:"totalMarks"`
	Percentage float64     `json:"percentage"`
	Date       time.Time   `json:"date"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
}

func FromModel(rec m.MarksModel) MarksResponse {
	resp := MarksResponse{
		ID:         rec.MarksID,
		StudentID:  rec.MarksStudentID,
		SubjectID:  rec.MarksSubjectID,
		ClassID:    rec.MarksClassID,
		Marks:      rec.MarksObtained,
		TotalMarks: rec.MarksTotal,
		Percentage: rec.MarksPercentage,
		Date:       rec.MarksDate,
		CreatedAt:  rec.MarksCreatedAt,
		UpdatedAt:  rec.MarksUpdatedAt,
	}
	if rec.Student != nil {
		resp.Student = &StudentRef{
			ID:         rec.Student.StudentID,
			FirstName:  rec.Student.StudentFirstName,
			LastName:   rec.Student.StudentLastName,
			RollNumber: rec.Student.StudentRollNumber,
		}
	}
	if rec.Subject != nil {
		resp.Subject = &Ref{ID: rec.Subject.SubjectID, Name: rec.Subject.SubjectName}
	}
	if rec.Class != nil {
		resp.Class = &Ref{ID: rec.Class.ClassID, Name: rec.Class.ClassName}
	}
	return resp
}

// StudentPerformance groups a class's marks per student for the
// performance view.
type StudentPerformance struct {
	StudentName string    `json:"studentName"`
	Marks       []float64 `json:"marks"`
	Average     float64   `json:"average"`
}

func GroupPerformance(records []m.MarksModel) []StudentPerformance {
	order := make([]uuid.UUID, 0)
	grouped := make(map[uuid.UUID]*StudentPerformance)
	for _, rec := range records {
		perf, ok := grouped[rec.MarksStudentID]
		if !ok {
			name := ""
			if rec.Student != nil {
				name = studentFullName(rec.Student.StudentFirstName, rec.Student.StudentLastName)
			}
			perf = &StudentPerformance{StudentName: name, Marks: []float64{}}
			grouped[rec.MarksStudentID] = perf
			order = append(order, rec.MarksStudentID)
		}
		perf.Marks = append(perf.Marks, rec.MarksPercentage)
	}

	out := make([]StudentPerformance, 0, len(order))
	for _, id := range order {
		perf := grouped[id]
		perf.Average = helper.MeanRound1(perf.Marks)
		out = append(out, *perf)
	}
	return out
}

func studentFullName(first, last string) string {
	if last == "" {
		return first
	}
	return first + " " + last
}
