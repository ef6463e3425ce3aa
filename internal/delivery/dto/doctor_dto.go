package dto

import (
	"encoding/json"
	"strings"
	"time"
)

// Availability is a list of day tags. Clients send either a JSON array or a
// single comma separated string; both decode to the same trimmed list.
type Availability []string

func (a *Availability) UnmarshalJSON(data []byte) error {
	var raw []string
	if len(data) > 0 && data[0] == '"' {
		var joined string
		if err := json.Unmarshal(data, &joined); err != nil {
			return err
		}
		raw = strings.Split(joined, ",")
	} else if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := make([]string, 0, len(raw))
	for _, day := range raw {
		if day = strings.TrimSpace(day); day != "" {
			out = append(out, day)
		}
	}
	*a = out
	return nil
}

type DoctorRequest struct {
	Name         string       `json:"name" validate:"required"`
	Specialty    string       `json:"specialty"`
	Availability Availability `json:"availability"`
}

type DoctorResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Specialty    string    `json:"specialty"`
	Availability []string  `json:"availability"`
	CreatedAt    time.Time `json:"created_at"`
}
