package model

import (
	"time"

	"github.com/google/uuid"

	teacherModel "sekolahku_backend/internals/features/school/teachers/model"
)

type ClassModel struct {
	ClassID        uuid.UUID  `gorm:"column:class_id;type:uuid;default:gen_random_uuid();primaryKey" json:"class_id"`
	ClassName      string     `gorm:"column:class_name;type:varchar(120);not null;uniqueIndex" json:"class_name"`
	ClassTeacherID *uuid.UUID `gorm:"column:class_teacher_id;type:uuid;index" json:"class_teacher_id,omitempty"`
	ClassCapacity  int        `gorm:"column:class_capacity;not null" json:"class_capacity"`
	ClassStatus    string     `gorm:"column:class_status;type:varchar(10);not null;default:active" json:"class_status"`

	ClassCreatedAt time.Time `gorm:"column:class_created_at;not null;autoCreateTime" json:"class_created_at"`
	ClassUpdatedAt time.Time `gorm:"column:class_updated_at;not null;autoUpdateTime" json:"class_updated_at"`

	// homeroom teacher, loaded on demand
	Teacher *teacherModel.TeacherModel `gorm:"foreignKey:ClassTeacherID;references:TeacherID" json:"-"`
}

func (ClassModel) TableName() string { return "classes" }
