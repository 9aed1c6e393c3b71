package seeds

import (
	"log"
	"time"

	"github.com/google/uuid"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	classModel "sekolahku_backend/internals/features/school/classes/model"
	noticeModel "sekolahku_backend/internals/features/school/notices/model"
	teacherModel "sekolahku_backend/internals/features/school/teachers/model"
)

// Run inserts a minimal demo dataset (one teacher, one class, one
// notice) so a fresh database has something to log in with. Existing
// rows are left alone.
func Run(db *gorm.DB) {
	teacher := seedTeacher(db)
	if teacher != nil {
		seedClass(db, teacher.TeacherID.String())
	}
	seedNotice(db)
}

func seedTeacher(db *gorm.DB) *teacherModel.TeacherModel {
	var existing teacherModel.TeacherModel
	if err := db.First(&existing, "teacher_email = ?", "admin@school.test").Error; err == nil {
		log.Println("[SEED] teacher admin@school.test already present, skipping")
		return &existing
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[SEED] hash password: %v", err)
		return nil
	}
	t := teacherModel.TeacherModel{
		TeacherName:     "Admin Teacher",
		TeacherEmail:    "admin@school.test",
		TeacherPassword: string(hash),
		TeacherStatus:   "active",
	}
	if err := db.Create(&t).Error; err != nil {
		log.Printf("[SEED] create teacher: %v", err)
		return nil
	}
	log.Println("[SEED] created teacher admin@school.test")
	return &t
}

func seedClass(db *gorm.DB, teacherID string) {
	var existing classModel.ClassModel
	if err := db.First(&existing, "class_name = ?", "Class 1-A").Error; err == nil {
		return
	}
	cl := classModel.ClassModel{
		ClassName:     "Class 1-A",
		ClassCapacity: 30,
		ClassStatus:   "active",
	}
	if id, err := uuid.Parse(teacherID); err == nil {
		cl.ClassTeacherID = &id
	}
	if err := db.Create(&cl).Error; err != nil {
		log.Printf("[SEED] create class: %v", err)
		return
	}
	log.Println("[SEED] created class Class 1-A")
}

func seedNotice(db *gorm.DB) {
	var count int64
	if err := db.Model(&noticeModel.NoticeModel{}).Count(&count).Error; err != nil || count > 0 {
		return
	}
	n := noticeModel.NoticeModel{
		NoticeTitle:    "Welcome to the new term",
		NoticeContent:  "Classes resume Monday. Check the timetable for your slots.",
		NoticeDate:     time.Now(),
		NoticePriority: "medium",
		NoticeAudience: "all",
	}
	if err := db.Create(&n).Error; err != nil {
		log.Printf("[SEED] create notice: %v", err)
		return
	}
	log.Println("[SEED] created welcome notice")
}
