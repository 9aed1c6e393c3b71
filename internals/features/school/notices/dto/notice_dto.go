package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/school/notices/model"
	helper "sekolahku_backend/internals/helpers"
)

type CreateNoticeRequest struct {
	Title    string     `json:"title" validate:"required,min=1,max=200"`
	Content  string     `json:"content" validate:"required,min=1"`
	Date     *time.Time `json:"date"`
	Priority string     `json:"priority" validate:"omitempty,oneof=low medium high"`
	Audience string     `json:"audience" validate:"omitempty,oneof=all teachers students"`
	Author   string     `json:"author" validate:"required,min=1,max=120"`
}

func (r *CreateNoticeRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Author = strings.TrimSpace(r.Author)
	if r.Priority == "" {
		r.Priority = "medium"
	}
	if r.Audience == "" {
		r.Audience = "all"
	}
}

func (r CreateNoticeRequest) ToModel() m.NoticeModel {
	date := time.Now()
	if r.Date != nil {
		date = *r.Date
	}
	return m.NoticeModel{
		NoticeTitle:    r.Title,
		NoticeContent:  r.Content,
		NoticeDate:     date,
		NoticePriority: r.Priority,
		NoticeAudience: r.Audience,
		NoticeAuthor:   r.Author,
	}
}

type UpdateNoticeRequest struct {
	Title    helper.PatchField[string]    `json:"title"`
	Content  helper.PatchField[string]    `json:"content"`
	Date     helper.PatchField[time.Time] `json:"date"`
	Priority helper.PatchField[string]    `json:"priority"`
	Audience helper.PatchField[string]    `json:"audience"`
	Author   helper.PatchField[string]    `json:"author"`
}

func (r UpdateNoticeRequest) Apply(n *m.NoticeModel) {
	r.Title.Apply(&n.NoticeTitle)
	r.Content.Apply(&n.NoticeContent)
	r.Date.Apply(&n.NoticeDate)
	r.Priority.Apply(&n.NoticePriority)
	r.Audience.Apply(&n.NoticeAudience)
	r.Author.Apply(&n.NoticeAuthor)
}

type NoticeResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Date      time.Time `json:"date"`
	Priority  string    `json:"priority"`
	Audience  string    `json:"audience"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromModel(n m.NoticeModel) NoticeResponse {
	return NoticeResponse{
		ID:        n.NoticeID,
		Title:     n.NoticeTitle,
		Content:   n.NoticeContent,
		Date:      n.NoticeDate,
		Priority:  n.NoticePriority,
		Audience:  n.NoticeAudience,
		Author:    n.NoticeAuthor,
		CreatedAt: n.NoticeCreatedAt,
		UpdatedAt: n.NoticeUpdatedAt,
	}
}
