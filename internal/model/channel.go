package model

// AccountAge is the derived age of a channel. Formatted is a civil-calendar
// breakdown ("3 years, 11 months, 24 days"); Days is the flat count of whole
// elapsed days. The two are computed independently and are not required to be
// mutually derivable.
type AccountAge struct {
	Formatted string
	Days      int64
}

// ChannelSnapshot is the normalized API response for a channel age lookup.
// It reflects upstream state at the time it was fetched and is never mutated
// after creation; cache refreshes produce a new snapshot.
type ChannelSnapshot struct {
	ChannelID          string `json:"channel_id"`
	ChannelName        string `json:"channel_name"`
	ProfileImageURL    string `json:"profile_image_url"`
	CreationDate       string `json:"creation_date"`
	AccountAge         string `json:"account_age"`
	AgeDays            int64  `json:"age_days"`
	Country            string `json:"country,omitempty"`
	VerificationStatus string `json:"verification_status"`
	Accuracy           string `json:"accuracy"`
	Subscribers        int64  `json:"subscribers"`
	Description        string `json:"description,omitempty"`
	IsCached           bool   `json:"is_cached,omitempty"`
}

// AgeRequest is the POST /api/age request body.
type AgeRequest struct {
	Channel string `json:"channel"`
}
