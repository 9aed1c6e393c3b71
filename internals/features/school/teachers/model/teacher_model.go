package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// TeacherModel stores staff accounts. Subject/class membership lives in
// uuid[] columns; assignment endpoints keep them set-like.
type TeacherModel struct {
	TeacherID       uuid.UUID `gorm:"column:teacher_id;type:uuid;default:gen_random_uuid();primaryKey" json:"teacher_id"`
	TeacherName     string    `gorm:"column:teacher_name;type:varchar(120);not null" json:"teacher_name"`
	TeacherEmail    string    `gorm:"column:teacher_email;type:varchar(160);not null;uniqueIndex" json:"teacher_email"`
	TeacherPassword string    `gorm:"column:teacher_password;type:text;not null" json:"-"`

	// employeeId is optional but unique when present (nullable unique index).
	TeacherEmployeeID    *string    `gorm:"column:teacher_employee_id;type:varchar(40);uniqueIndex" json:"teacher_employee_id,omitempty"`
	TeacherPhoneNumber   string     `gorm:"column:teacher_phone_number;type:varchar(30);not null;default:''" json:"teacher_phone_number"`
	TeacherQualification string     `gorm:"column:teacher_qualification;type:varchar(160);not null;default:''" json:"teacher_qualification"`
	TeacherExperience    int        `gorm:"column:teacher_experience;not null;default:0" json:"teacher_experience"`
	TeacherJoiningDate   *time.Time `gorm:"column:teacher_joining_date" json:"teacher_joining_date,omitempty"`
	TeacherDateOfBirth   *time.Time `gorm:"column:teacher_date_of_birth" json:"teacher_date_of_birth,omitempty"`

	TeacherSubjects pq.StringArray `gorm:"column:teacher_subjects;type:uuid[]" json:"teacher_subjects"`
	TeacherClasses  pq.StringArray `gorm:"column:teacher_classes;type:uuid[]" json:"teacher_classes"`

	TeacherIsClassTeacher    bool   `gorm:"column:teacher_is_class_teacher;not null;default:false" json:"teacher_is_class_teacher"`
	TeacherDepartment        string `gorm:"column:teacher_department;type:varchar(120);not null;default:''" json:"teacher_department"`
	TeacherAddress           string `gorm:"column:teacher_address;type:text;not null;default:''" json:"teacher_address"`
	TeacherEmergencyContact  string `gorm:"column:teacher_emergency_contact;type:varchar(30);not null;default:''" json:"teacher_emergency_contact"`
	TeacherAlternatePhone    string `gorm:"column:teacher_alternate_phone;type:varchar(30);not null;default:''" json:"teacher_alternate_phone"`
	TeacherStatus            string `gorm:"column:teacher_status;type:varchar(10);not null;default:active" json:"teacher_status"`

	TeacherCreatedAt time.Time `gorm:"column:teacher_created_at;not null;autoCreateTime" json:"teacher_created_at"`
	TeacherUpdatedAt time.Time `gorm:"column:teacher_updated_at;not null;autoUpdateTime" json:"teacher_updated_at"`
}

func (TeacherModel) TableName() string { return "teachers" }
