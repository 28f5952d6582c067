package model

import (
	"errors"
	"strings"
	"time"
)

// Zone is a named area of the home used to group tasks. It holds no ownership
// over its tasks; deleting a zone only clears their zone references.
type Zone struct {
	ID        string
	Name      string
	Icon      string
	SortOrder int
	CreatedAt time.Time
}

func (z Zone) Validate() error {
	if strings.TrimSpace(z.ID) == "" {
		return errors.New("model: zone id is required")
	}
	if strings.TrimSpace(z.Name) == "" {
		return errors.New("model: zone name is required")
	}
	if z.SortOrder < 0 {
		return errors.New("model: zone sort_order must not be negative")
	}
	return nil
}
