package announcements

import (
	"time"

	"jobboard/internal/validate"
)

type Announcement struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Date        time.Time `json:"date"`
}

func ValidateNew(a Announcement) error {
	v := validate.New()
	v.Required("title", a.Title)
	v.Required("description", a.Description)
	v.Required("location", a.Location)
	return v.Err()
}
