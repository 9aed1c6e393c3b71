package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/school/classes/model"
	teacherModel "sekolahku_backend/internals/features/school/teachers/model"
	helper "sekolahku_backend/internals/helpers"
)

type CreateClassRequest struct {
	Name      string     `json:"name" validate:"required,min=1,max=120"`
	TeacherID *uuid.UUID `json:"teacherId"`
	Capacity  int        `json:"capacity" validate:"required,gte=1"`
	Status    string     `json:"status" validate:"omitempty,oneof=active inactive"`
}

func (r *CreateClassRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	if r.Status == "" {
		r.Status = "active"
	}
}

func (r CreateClassRequest) ToModel() m.ClassModel {
	return m.ClassModel{
		ClassName:      r.Name,
		ClassTeacherID: r.TeacherID,
		ClassCapacity:  r.Capacity,
		ClassStatus:    r.Status,
	}
}

type UpdateClassRequest struct {
	Name      helper.PatchField[string]    `json:"name"`
	TeacherID helper.PatchField[uuid.UUID] `json:"teacherId"`
	Capacity  helper.PatchField[int]       `json:"capacity"`
	Status    helper.PatchField[string]    `json:"status"`
}

func (r UpdateClassRequest) Apply(cl *m.ClassModel) {
	if v, ok := r.Name.Get(); ok && v != nil {
		cl.ClassName = strings.TrimSpace(*v)
	}
	if v, ok := r.TeacherID.Get(); ok {
		cl.ClassTeacherID = v
	}
	r.Capacity.Apply(&cl.ClassCapacity)
	r.Status.Apply(&cl.ClassStatus)
}

type TeacherRef struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type ClassResponse struct {
	ID        uuid.UUID   `json:"id"`
	Name      string      `json:"name"`
	TeacherID *uuid.UUID  `json:"teacherId,omitempty"`
	Teacher   *TeacherRef `json:"teacher,omitempty"`
	Capacity  int         `json:"capacity"`
	Status    string      `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

func FromModel(cl m.ClassModel) ClassResponse {
	resp := ClassResponse{
		ID:        cl.ClassID,
		Name:      cl.ClassName,
		TeacherID: cl.ClassTeacherID,
		Capacity:  cl.ClassCapacity,
		Status:    cl.ClassStatus,
		CreatedAt: cl.ClassCreatedAt,
		UpdatedAt: cl.ClassUpdatedAt,
	}
	if cl.Teacher != nil {
		resp.Teacher = teacherRef(cl.Teacher)
	}
	return resp
}

func teacherRef(t *teacherModel.TeacherModel) *TeacherRef {
	return &TeacherRef{ID: t.TeacherID, Name: t.TeacherName, Email: t.TeacherEmail}
}
