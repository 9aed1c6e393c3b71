package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	classModel "sekolahku_backend/internals/features/school/classes/model"
)

// SubjectModel: one subject name per class (compound unique index).
type SubjectModel struct {
	SubjectID      uuid.UUID `gorm:"column:subject_id;type:uuid;default:gen_random_uuid();primaryKey" json:"subject_id"`
	SubjectName    string    `gorm:"column:subject_name;type:varchar(120);not null;uniqueIndex:uq_subject_name_per_class" json:"subject_name"`
	SubjectCode    string    `gorm:"column:subject_code;type:varchar(40);not null" json:"subject_code"`
	SubjectClassID uuid.UUID `gorm:"column:subject_class_id;type:uuid;not null;index;uniqueIndex:uq_subject_name_per_class" json:"subject_class_id"`

	SubjectTeacherIDs pq.StringArray `gorm:"column:subject_teacher_ids;type:uuid[]" json:"subject_teacher_ids"`
	SubjectStatus     string         `gorm:"column:subject_status;type:varchar(10);not null;default:active" json:"subject_status"`

	SubjectCreatedAt time.Time `gorm:"column:subject_created_at;not null;autoCreateTime" json:"subject_created_at"`
	SubjectUpdatedAt time.Time `gorm:"column:subject_updated_at;not null;autoUpdateTime" json:"subject_updated_at"`

	Class *classModel.ClassModel `gorm:"foreignKey:SubjectClassID;references:ClassID" json:"-"`
}

func (SubjectModel) TableName() string { return "subjects" }
