package route

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	analyticsRoute "sekolahku_backend/internals/features/school/analytics/route"
	attendanceRoute "sekolahku_backend/internals/features/school/attendance/route"
	classRoute "sekolahku_backend/internals/features/school/classes/route"
	marksRoute "sekolahku_backend/internals/features/school/marks/route"
	noticeRoute "sekolahku_backend/internals/features/school/notices/route"
	studentRoute "sekolahku_backend/internals/features/school/students/route"
	subjectRoute "sekolahku_backend/internals/features/school/subjects/route"
	teacherRoute "sekolahku_backend/internals/features/school/teachers/route"
	timetableRoute "sekolahku_backend/internals/features/school/timetable/route"
	authRoute "sekolahku_backend/internals/features/users/auth/route"
	helper "sekolahku_backend/internals/helpers"
)

var startedAt = time.Now()

// SetupRoutes mounts every feature group under /api plus the base
// liveness endpoints, and in production the built frontend.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	baseRoutes(app, db)

	api := app.Group("/api")

	log.Println("[INFO] Setting up auth routes")
	authRoute.AuthRoutes(api, db, configs.JWTSecret)

	log.Println("[INFO] Setting up school routes")
	teacherRoute.TeacherRoutes(api, db)
	classRoute.ClassRoutes(api, db)
	studentRoute.StudentRoutes(api, db)
	subjectRoute.SubjectRoutes(api, db)
	noticeRoute.NoticeRoutes(api, db)
	timetableRoute.TimetableRoutes(api, db)
	attendanceRoute.AttendanceRoutes(api, db)
	marksRoute.MarksRoutes(api, db)

	log.Println("[INFO] Setting up analytics routes")
	analyticsRoute.AnalyticsRoutes(api, db)

	if configs.IsProduction() {
		spaFallback(app)
	}
}

func baseRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/", func(c *fiber.Ctx) error {
		return helper.JsonSuccess(c, fiber.Map{
			"name":    "sekolahku-backend",
			"message": "School management API is running",
		})
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		dbStatus := "ok"
		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(c.UserContext()) != nil {
			dbStatus = "unreachable"
		}
		return helper.JsonSuccess(c, fiber.Map{
			"status":   "ok",
			"database": dbStatus,
			"uptime":   time.Since(startedAt).Round(time.Second).String(),
		})
	})
}

// spaFallback serves the compiled frontend and routes unknown
// non-API paths to index.html for client-side routing.
func spaFallback(app *fiber.App) {
	dist := getenvDefault("FRONTEND_DIST", "./web/dist")
	if _, err := os.Stat(dist); err != nil {
		log.Printf("[WARN] frontend dist %q not found, skipping static routes", dist)
		return
	}
	app.Static("/", dist)
	app.Get("/*", func(c *fiber.Ctx) error {
		return c.SendFile(filepath.Join(dist, "index.html"))
	})
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
