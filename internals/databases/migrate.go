package database

import (
	"log"

	"gorm.io/gorm"

	attendanceModel "sekolahku_backend/internals/features/school/attendance/model"
	classModel "sekolahku_backend/internals/features/school/classes/model"
	marksModel "sekolahku_backend/internals/features/school/marks/model"
	noticeModel "sekolahku_backend/internals/features/school/notices/model"
	studentModel "sekolahku_backend/internals/features/school/students/model"
	subjectModel "sekolahku_backend/internals/features/school/subjects/model"
	teacherModel "sekolahku_backend/internals/features/school/teachers/model"
	timetableModel "sekolahku_backend/internals/features/school/timetable/model"
)

// Migrate applies the schema for every feature table. Ordered so that
// referenced tables exist before the ones pointing at them.
func Migrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&teacherModel.TeacherModel{},
		&classModel.ClassModel{},
		&studentModel.StudentModel{},
		&subjectModel.SubjectModel{},
		&noticeModel.NoticeModel{},
		&timetableModel.TimetableSlotModel{},
		&attendanceModel.AttendanceModel{},
		&marksModel.MarksModel{},
	)
	if err != nil {
		log.Fatalf("[FATAL] migration failed: %v", err)
	}
	log.Println("[INFO] database migrated")
}
