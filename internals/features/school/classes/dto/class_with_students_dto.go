package dto

import (
	m "sekolahku_backend/internals/features/school/classes/model"
	studentDTO "sekolahku_backend/internals/features/school/students/dto"
	studentModel "sekolahku_backend/internals/features/school/students/model"
)

// ClassWithStudentsResponse is the composite view for
// GET /classes/:id/with-students.
type ClassWithStudentsResponse struct {
	ClassResponse
	Students     []studentDTO.StudentResponse `json:"students"`
	StudentCount int                          `json:"studentCount"`
}

func FromModelWithStudents(cl m.ClassModel, students []studentModel.StudentModel) ClassWithStudentsResponse {
	out := make([]studentDTO.StudentResponse, 0, len(students))
	for _, s := range students {
		out = append(out, studentDTO.FromModel(s))
	}
	return ClassWithStudentsResponse{
		ClassResponse: FromModel(cl),
		Students:      out,
		StudentCount:  len(out),
	}
}
