package model

import (
	"time"

	"github.com/google/uuid"

	classModel "sekolahku_backend/internals/features/school/classes/model"
	subjectModel "sekolahku_backend/internals/features/school/subjects/model"
	teacherModel "sekolahku_backend/internals/features/school/teachers/model"
)

// TimetableSlotModel: one slot per (class, day, time) enforced by the
// compound unique index.
type TimetableSlotModel struct {
	TimetableSlotID        uuid.UUID `gorm:"column:timetable_slot_id;type:uuid;default:gen_random_uuid();primaryKey" json:"timetable_slot_id"`
	TimetableSlotClassID   uuid.UUID `gorm:"column:timetable_slot_class_id;type:uuid;not null;index;uniqueIndex:uq_timetable_slot_per_class_day_time" json:"timetable_slot_class_id"`
	TimetableSlotDay       string    `gorm:"column:timetable_slot_day;type:varchar(10);not null;uniqueIndex:uq_timetable_slot_per_class_day_time" json:"timetable_slot_day"`
	TimetableSlotTime      string    `gorm:"column:timetable_slot_time;type:varchar(20);not null;uniqueIndex:uq_timetable_slot_per_class_day_time" json:"timetable_slot_time"`
	TimetableSlotSubjectID uuid.UUID `gorm:"column:timetable_slot_subject_id;type:uuid;not null" json:"timetable_slot_subject_id"`
	TimetableSlotTeacherID uuid.UUID `gorm:"column:timetable_slot_teacher_id;type:uuid;not null" json:"timetable_slot_teacher_id"`

	TimetableSlotCreatedAt time.Time `gorm:"column:timetable_slot_created_at;not null;autoCreateTime" json:"timetable_slot_created_at"`
	TimetableSlotUpdatedAt time.Time `gorm:"column:timetable_slot_updated_at;not null;autoUpdateTime" json:"timetable_slot_updated_at"`

	Class   *classModel.ClassModel     `gorm:"foreignKey:TimetableSlotClassID;references:ClassID" json:"-"`
	Subject *subjectModel.SubjectModel `gorm:"foreignKey:TimetableSlotSubjectID;references:SubjectID" json:"-"`
	Teacher *teacherModel.TeacherModel `gorm:"foreignKey:TimetableSlotTeacherID;references:TeacherID" json:"-"`
}

func (TimetableSlotModel) TableName() string { return "timetable_slots" }
