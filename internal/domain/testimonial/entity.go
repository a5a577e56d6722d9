package testimonial

import "time"

type Testimonial struct {
	ID          int64     `gorm:"column:id;primaryKey" json:"id"`
	Name        string    `gorm:"column:name" json:"name"`
	Company     string    `gorm:"column:company" json:"company"`
	Testimonial string    `gorm:"column:testimonial;type:text" json:"testimonial"`
	Image       string    `gorm:"column:image;type:text" json:"image"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (t *Testimonial) GetID() int64        { return t.ID }
func (t *Testimonial) GetImage() string    { return t.Image }
func (t *Testimonial) SetImage(url string) { t.Image = url }

// Merge copies the non-empty fields of in; empty fields keep their value.
func (t *Testimonial) Merge(in Fields) {
	if in.Name != "" {
		t.Name = in.Name
	}
	if in.Company != "" {
		t.Company = in.Company
	}
	if in.Testimonial != "" {
		t.Testimonial = in.Testimonial
	}
}
