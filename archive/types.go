package archive

import "encoding/json"

// Message is one entry in a conversation's message_1.json. The on-disk order
// is newest-first; loaders preserve it.
//
// TimestampMS is epoch milliseconds. Follower and login records use epoch
// seconds instead; the mismatch comes straight from the export format and is
// kept as-is per source.
type Message struct {
	SenderName  string `json:"sender_name"`
	TimestampMS int64  `json:"timestamp_ms"`
	Content     string `json:"content,omitempty"`
	Type        string `json:"type,omitempty"`
	IsUnsent    bool   `json:"is_unsent,omitempty"`

	// HasContent distinguishes a genuinely absent "content" field (pure-media
	// messages) from an empty string. Aggregations keyed on text length or
	// word content skip messages without it; structural aggregations count
	// them anyway.
	HasContent bool `json:"has_content"`
}

func (m *Message) UnmarshalJSON(b []byte) error {
	var raw struct {
		SenderName  string  `json:"sender_name"`
		TimestampMS int64   `json:"timestamp_ms"`
		Content     *string `json:"content"`
		Type        string  `json:"type"`
		IsUnsent    bool    `json:"is_unsent"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	m.SenderName = raw.SenderName
	m.TimestampMS = raw.TimestampMS
	m.Type = raw.Type
	m.IsUnsent = raw.IsUnsent
	if raw.Content != nil {
		m.Content = *raw.Content
		m.HasContent = true
	} else {
		m.Content = ""
		m.HasContent = false
	}
	return nil
}

// LoginRecord is one authentication event from login_activity.json.
// Time is the ISO-8601 string exactly as exported.
type LoginRecord struct {
	Time         string `json:"time"`
	IPAddress    string `json:"ip_address"`
	UserAgent    string `json:"user_agent"`
	LanguageCode string `json:"language_code"`
}

// FollowRecord is one entry from followers/following data.
//
// Timestamp is epoch SECONDS, unlike Message.TimestampMS. The export stores
// follow events in seconds and messages in milliseconds; both units are
// preserved rather than unified.
type FollowRecord struct {
	Handle     string `json:"handle"`
	ProfileURL string `json:"profile_url"`
	Timestamp  int64  `json:"timestamp"`
}

// PersonalInfo holds the owner-facing fields of personal_information.json.
type PersonalInfo struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Bio      string `json:"bio,omitempty"`
	Gender   string `json:"gender,omitempty"`
}

// Advertiser is one entry of the advertisers list
// (ig_custom_audiences_all_types).
type Advertiser struct {
	Name                         string `json:"advertiser_name"`
	HasDataFileCustomAudience    bool   `json:"has_data_file_custom_audience"`
	HasRemarketingCustomAudience bool   `json:"has_remarketing_custom_audience"`
	HasInPersonStoreVisit        bool   `json:"has_in_person_store_visit"`
}
