package logo

import "time"

// Logo is an image-only row. The same shape backs the partner logo, app logo
// and documentation tables.
type Logo struct {
	ID        int64     `gorm:"column:id;primaryKey" json:"id"`
	Image     string    `gorm:"column:image;type:text" json:"image"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (l *Logo) GetID() int64        { return l.ID }
func (l *Logo) GetImage() string    { return l.Image }
func (l *Logo) SetImage(url string) { l.Image = url }
