package testimonial

import (
	"errors"
	"io"
	"strings"

	"github.com/gin-gonic/gin"
)

// Fields are the text fields of a testimonial, sent as multipart form
// values or, on update, optionally as JSON.
type Fields struct {
	Name        string `form:"name" json:"name"`
	Company     string `form:"company" json:"company"`
	Testimonial string `form:"testimonial" json:"testimonial"`
}

func (f Fields) complete() bool {
	return f.Name != "" && f.Company != "" && f.Testimonial != ""
}

func (f *Fields) trim() {
	f.Name = strings.TrimSpace(f.Name)
	f.Company = strings.TrimSpace(f.Company)
	f.Testimonial = strings.TrimSpace(f.Testimonial)
}

// bindFields picks JSON, multipart or urlencoded binding from Content-Type.
// An empty JSON body is an update that changes nothing.
func bindFields(c *gin.Context) (Fields, error) {
	var f Fields
	err := c.ShouldBind(&f)
	if errors.Is(err, io.EOF) {
		return Fields{}, nil
	}
	f.trim()
	return f, err
}
