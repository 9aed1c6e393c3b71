package model

import (
	"time"

	"github.com/google/uuid"

	classModel "sekolahku_backend/internals/features/school/classes/model"
	studentModel "sekolahku_backend/internals/features/school/students/model"
	subjectModel "sekolahku_backend/internals/features/school/subjects/model"
)

type MarksModel struct {
	MarksID        uuid.UUID `gorm:"column:marks_id;type:uuid;default:gen_random_uuid();primaryKey" json:"marks_id"`
	MarksStudentID uuid.UUID `gorm:"column:marks_student_id;type:uuid;not null;index:idx_marks_student_subject" json:"marks_student_id"`
	MarksSubjectID uuid.UUID `gorm:"column:marks_subject_id;type:uuid;not null;index:idx_marks_student_subject" json:"marks_subject_id"`
	MarksClassID   uuid.UUID `gorm:"column:marks_class_id;type:uuid;not null;index" json:"marks_class_id"`

	MarksObtained   float64 `gorm:"column:marks_obtained;not null" json:"marks_obtained"`
	MarksTotal      float64 `gorm:"column:marks_total;not null" json:"marks_total"`
	MarksPercentage float64 `gorm:"column:marks_percentage;not null" json:"marks_percentage"`

	MarksDate      time.Time `gorm:"column:marks_date;not null;default:now()" json:"marks_date"`
	MarksCreatedAt time.Time `gorm:"column:marks_created_at;not null;autoCreateTime" json:"marks_created_at"`
	MarksUpdatedAt time.Time `gorm:"column:marks_updated_at;not null;autoUpdateTime" json:"marks_updated_at"`

	Student *studentModel.StudentModel `gorm:"foreignKey:MarksStudentID;references:StudentID" json:"-"`
	Subject *subjectModel.SubjectModel `gorm:"foreignKey:MarksSubjectID;references:SubjectID" json:"-"`
	Class   *classModel.ClassModel     `gorm:"foreignKey:MarksClassID;references:ClassID" json:"-"`
}

func (MarksModel) TableName() string { return "marks_records" }
