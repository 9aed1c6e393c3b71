package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	classModel "sekolahku_backend/internals/features/school/classes/model"
	m "sekolahku_backend/internals/features/school/subjects/model"
	teacherModel "sekolahku_backend/internals/features/school/teachers/model"
	helper "sekolahku_backend/internals/helpers"
)

type CreateSubjectRequest struct {
	Name       string    `json:"name" validate:"required,min=1,max=120"`
	Code       string    `json:"code" validate:"required,min=1,max=40"`
	ClassID    uuid.UUID `json:"classId" validate:"required"`
	TeacherIDs []string  `json:"teacherIds" validate:"omitempty,dive,uuid"`
	Status     string    `json:"status" validate:"omitempty,oneof=active inactive"`
}

func (r *CreateSubjectRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Code = strings.TrimSpace(r.Code)
	r.TeacherIDs = helper.DedupeStrings(r.TeacherIDs)
	if r.Status == "" {
		r.Status = "active"
	}
}

func (r CreateSubjectRequest) ToModel() m.SubjectModel {
	return m.SubjectModel{
		SubjectName:       r.Name,
		SubjectCode:       r.Code,
		SubjectClassID:    r.ClassID,
		SubjectTeacherIDs: pq.StringArray(r.TeacherIDs),
		SubjectStatus:     r.Status,
	}
}

type UpdateSubjectRequest struct {
	Name       helper.PatchField[string]    `json:"name"`
	Code       helper.PatchField[string]    `json:"code"`
	ClassID    helper.PatchField[uuid.UUID] `json:"classId"`
	TeacherIDs helper.PatchField[[]string]  `json:"teacherIds"`
	Status     helper.PatchField[string]    `json:"status"`
}

func (r UpdateSubjectRequest) Apply(s *m.SubjectModel) {
	if v, ok := r.Name.Get(); ok && v != nil {
		s.SubjectName = strings.TrimSpace(*v)
	}
	if v, ok := r.Code.Get(); ok && v != nil {
		s.SubjectCode = strings.TrimSpace(*v)
	}
	r.ClassID.Apply(&s.SubjectClassID)
	if v, ok := r.TeacherIDs.Get(); ok && v != nil {
		s.SubjectTeacherIDs = pq.StringArray(helper.DedupeStrings(*v))
	}
	r.Status.Apply(&s.SubjectStatus)
}

type ClassRef struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Capacity int       `json:"capacity"`
	Status   string    `json:"status"`
}

type TeacherRef struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type SubjectResponse struct {
	ID         uuid.UUID    `json:"id"`
	Name       string       `json:"name"`
	Code       string       `json:"code"`
	ClassID    uuid.UUID    `json:"classId"`
	Class      *ClassRef    `json:"class,omitempty"`
	TeacherIDs []string     `json:"teacherIds"`
	Teachers   []TeacherRef `json:"teachers"`
	Status     string       `json:"status"`
	CreatedAt  time.Time    `json:"createdAt"`
	UpdatedAt  time.Time    `json:"updatedAt"`
}

func FromModel(s m.SubjectModel, teachers []teacherModel.TeacherModel) SubjectResponse {
	refs := make([]TeacherRef, 0, len(teachers))
	for _, t := range teachers {
		refs = append(refs, TeacherRef{ID: t.TeacherID, Name: t.TeacherName, Email: t.TeacherEmail})
	}
	resp := SubjectResponse{
		ID:         s.SubjectID,
		Name:       s.SubjectName,
		Code:       s.SubjectCode,
		ClassID:    s.SubjectClassID,
		TeacherIDs: s.SubjectTeacherIDs,
		Teachers:   refs,
		Status:     s.SubjectStatus,
		CreatedAt:  s.SubjectCreatedAt,
		UpdatedAt:  s.SubjectUpdatedAt,
	}
	if s.Class != nil {
		resp.Class = classRef(s.Class)
	}
	return resp
}

func classRef(cl *classModel.ClassModel) *ClassRef {
	return &ClassRef{ID: cl.ClassID, Name: cl.ClassName, Capacity: cl.ClassCapacity, Status: cl.ClassStatus}
}
