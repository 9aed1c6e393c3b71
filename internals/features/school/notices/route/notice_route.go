package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	noticeController "sekolahku_backend/internals/features/school/notices/controller"
)

func NoticeRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &noticeController.NoticeController{DB: db}
	notices := r.Group("/notices")
	notices.Get("/", ctl.GetNotices)
	notices.Post("/", ctl.CreateNotice)
	// "recent" must register before the :id wildcard
	notices.Get("/recent", ctl.GetRecentNotices)
	notices.Get("/:id", ctl.GetNoticeByID)
	notices.Put("/:id", ctl.UpdateNotice)
	notices.Delete("/:id", ctl.DeleteNotice)
}
