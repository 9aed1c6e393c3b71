package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	analyticsController "sekolahku_backend/internals/features/school/analytics/controller"
)

func AnalyticsRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &analyticsController.AnalyticsController{DB: db}
	r.Get("/dashboard/summary", ctl.GetDashboardSummary)
	r.Get("/dashboard/performance", ctl.GetPerformanceByClass)
	r.Get("/analytics", ctl.GetAnalytics)
}
