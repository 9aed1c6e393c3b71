package controller

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	noticeDTO "sekolahku_backend/internals/features/school/notices/dto"
	noticeModel "sekolahku_backend/internals/features/school/notices/model"
	helper "sekolahku_backend/internals/helpers"
)

var validate = validator.New()

var noticeRequired = []string{"title", "content", "author"}

type NoticeController struct {
	DB *gorm.DB
}

// GET /api/notices (newest first)
func (h *NoticeController) GetNotices(c *fiber.Ctx) error {
	var notices []noticeModel.NoticeModel
	if err := h.DB.WithContext(c.UserContext()).
		Order("notice_date DESC").Find(&notices).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch notices")
	}
	out := make([]noticeDTO.NoticeResponse, 0, len(notices))
	for _, n := range notices {
		out = append(out, noticeDTO.FromModel(n))
	}
	return helper.JsonSuccess(c, out)
}

// GET /api/notices/recent?limit=N
func (h *NoticeController) GetRecentNotices(c *fiber.Ctx) error {
	limit, err := strconv.Atoi(c.Query("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}
	var notices []noticeModel.NoticeModel
	if err := h.DB.WithContext(c.UserContext()).
		Order("notice_date DESC").Limit(limit).Find(&notices).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch recent notices")
	}
	out := make([]noticeDTO.NoticeResponse, 0, len(notices))
	for _, n := range notices {
		out = append(out, noticeDTO.FromModel(n))
	}
	return helper.JsonSuccess(c, out)
}

// GET /api/notices/:id
func (h *NoticeController) GetNoticeByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var n noticeModel.NoticeModel
	if err := h.DB.WithContext(c.UserContext()).First(&n, "notice_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Notice not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch notice")
	}
	return helper.JsonSuccess(c, noticeDTO.FromModel(n))
}

// POST /api/notices
func (h *NoticeController) CreateNotice(c *fiber.Ctx) error {
	if msg := helper.RequireJSONFields(c.Body(), noticeRequired...); msg != "" {
		return helper.JsonError(c, fiber.StatusBadRequest, msg)
	}

	var req noticeDTO.CreateNoticeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	n := req.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Create(&n).Error; err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return helper.JsonCreated(c, noticeDTO.FromModel(n))
}

// PUT /api/notices/:id
func (h *NoticeController) UpdateNotice(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var n noticeModel.NoticeModel
	if err := h.DB.WithContext(c.UserContext()).First(&n, "notice_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Notice not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch notice")
	}

	var req noticeDTO.UpdateNoticeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Apply(&n)

	if err := h.DB.WithContext(c.UserContext()).Save(&n).Error; err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return helper.JsonSuccess(c, noticeDTO.FromModel(n))
}

// DELETE /api/notices/:id
func (h *NoticeController) DeleteNotice(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	res := h.DB.WithContext(c.UserContext()).Delete(&noticeModel.NoticeModel{}, "notice_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete notice")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Notice not found")
	}
	return helper.JsonDeleted(c, "Notice deleted")
}
