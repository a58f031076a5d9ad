package spacex

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/five82/liftoff/internal/launches"
)

// launchPayload accepts the field names used across API versions. Only
// normalize reads it; the rest of the program sees launches.Launch.
type launchPayload struct {
	FlightNumber  int       `json:"flight_number"`
	MissionName   string    `json:"mission_name"`
	Name          string    `json:"name"`
	LaunchDate    string    `json:"launch_date"`
	LaunchDateUTC string    `json:"launch_date_utc"`
	DateUTC       string    `json:"date_utc"`
	LaunchSuccess *bool     `json:"launch_success"`
	Success       *bool     `json:"success"`
	Upcoming      bool      `json:"upcoming"`
	Rocket        rocketRef `json:"rocket"`
	ImageURL      string    `json:"image_url"`
	Details       string    `json:"details"`
	Links         struct {
		MissionPatch      string `json:"mission_patch"`
		MissionPatchSmall string `json:"mission_patch_small"`
		Patch             struct {
			Small string `json:"small"`
			Large string `json:"large"`
		} `json:"patch"`
	} `json:"links"`
}

// rocketRef is either {"rocket_name": "..."} or a bare rocket id string.
type rocketRef struct {
	Name string
}

func (r *rocketRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '"' {
		return json.Unmarshal(data, &r.Name)
	}
	var obj struct {
		RocketName string `json:"rocket_name"`
		Name       string `json:"name"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	r.Name = firstNonEmpty(obj.RocketName, obj.Name)
	return nil
}

func (p launchPayload) normalize() launches.Launch {
	success := false
	switch {
	case p.LaunchSuccess != nil:
		success = *p.LaunchSuccess
	case p.Success != nil:
		success = *p.Success
	}
	return launches.Launch{
		FlightNumber: p.FlightNumber,
		MissionName:  strings.TrimSpace(firstNonEmpty(p.MissionName, p.Name)),
		LaunchDate:   firstNonEmpty(p.LaunchDate, p.LaunchDateUTC, p.DateUTC),
		Success:      success,
		Upcoming:     p.Upcoming,
		RocketName:   strings.TrimSpace(p.Rocket.Name),
		ImageURL:     firstNonEmpty(p.ImageURL, p.Links.MissionPatch, p.Links.MissionPatchSmall, p.Links.Patch.Small),
		Details:      strings.TrimSpace(p.Details),
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
