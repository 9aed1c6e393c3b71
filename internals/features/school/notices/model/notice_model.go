package model

import (
	"time"

	"github.com/google/uuid"
)

type NoticeModel struct {
	NoticeID       uuid.UUID `gorm:"column:notice_id;type:uuid;default:gen_random_uuid();primaryKey" json:"notice_id"`
	NoticeTitle    string    `gorm:"column:notice_title;type:varchar(200);not null" json:"notice_title"`
	NoticeContent  string    `gorm:"column:notice_content;type:text;not null" json:"notice_content"`
	NoticeDate     time.Time `gorm:"column:notice_date;not null;default:now();index" json:"notice_date"`
	NoticePriority string    `gorm:"column:notice_priority;type:varchar(10);not null;default:medium" json:"notice_priority"`
	NoticeAudience string    `gorm:"column:notice_audience;type:varchar(10);not null;default:all" json:"notice_audience"`
	NoticeAuthor   string    `gorm:"column:notice_author;type:varchar(120);not null" json:"notice_author"`

	NoticeCreatedAt time.Time `gorm:"column:notice_created_at;not null;autoCreateTime" json:"notice_created_at"`
	NoticeUpdatedAt time.Time `gorm:"column:notice_updated_at;not null;autoUpdateTime" json:"notice_updated_at"`
}

func (NoticeModel) TableName() string { return "notices" }
