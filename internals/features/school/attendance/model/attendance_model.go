package model

import (
	"time"

	"github.com/google/uuid"

	classModel "sekolahku_backend/internals/features/school/classes/model"
	studentModel "sekolahku_backend/internals/features/school/students/model"
)

type AttendanceModel struct {
	AttendanceID        uuid.UUID `gorm:"column:attendance_id;type:uuid;default:gen_random_uuid();primaryKey" json:"attendance_id"`
	AttendanceStudentID uuid.UUID `gorm:"column:attendance_student_id;type:uuid;not null;index:idx_attendance_student_date" json:"attendance_student_id"`
	AttendanceClassID   uuid.UUID `gorm:"column:attendance_class_id;type:uuid;not null;index:idx_attendance_class_date" json:"attendance_class_id"`
	AttendanceDate      time.Time `gorm:"column:attendance_date;not null;index:idx_attendance_student_date;index:idx_attendance_class_date" json:"attendance_date"`
	AttendancePresent   bool      `gorm:"column:attendance_present;not null;default:false" json:"attendance_present"`

	AttendanceCreatedAt time.Time `gorm:"column:attendance_created_at;not null;autoCreateTime" json:"attendance_created_at"`
	AttendanceUpdatedAt time.Time `gorm:"column:attendance_updated_at;not null;autoUpdateTime" json:"attendance_updated_at"`

	Student *studentModel.StudentModel `gorm:"foreignKey:AttendanceStudentID;references:StudentID" json:"-"`
	Class   *classModel.ClassModel     `gorm:"foreignKey:AttendanceClassID;references:ClassID" json:"-"`
}

func (AttendanceModel) TableName() string { return "attendance_records" }
