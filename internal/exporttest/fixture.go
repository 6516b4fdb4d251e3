// Package exporttest builds synthetic Instagram export trees on disk for
// tests. It writes the same JSON shapes the real export uses, in either of
// the two known directory layouts.
package exporttest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// Builder assembles one synthetic export under a temp directory.
type Builder struct {
	t      *testing.T
	Root   string
	prefix []string
}

// New creates an export with data directly under the root (the older layout).
func New(t *testing.T) *Builder {
	t.Helper()
	return &Builder{t: t, Root: t.TempDir()}
}

// NewWrapped creates an export using the your_instagram_activity layout.
func NewWrapped(t *testing.T) *Builder {
	t.Helper()
	return &Builder{t: t, Root: t.TempDir(), prefix: []string{"your_instagram_activity"}}
}

func (b *Builder) writeJSON(segments []string, file string, v any) {
	b.t.Helper()
	parts := append([]string{b.Root}, b.prefix...)
	parts = append(parts, segments...)
	dir := filepath.Join(parts...)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		b.t.Fatalf("mkdir %s: %v", dir, err)
	}
	data, err := json.Marshal(v)
	if err != nil {
		b.t.Fatalf("marshal %s: %v", file, err)
	}
	if err := os.WriteFile(filepath.Join(dir, file), data, 0o644); err != nil {
		b.t.Fatalf("write %s: %v", file, err)
	}
}

// WriteRaw writes raw bytes at the given location, for malformed-data tests.
func (b *Builder) WriteRaw(segments []string, file string, data []byte) {
	b.t.Helper()
	parts := append([]string{b.Root}, b.prefix...)
	parts = append(parts, segments...)
	dir := filepath.Join(parts...)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		b.t.Fatalf("mkdir %s: %v", dir, err)
	}
	if err := os.WriteFile(filepath.Join(dir, file), data, 0o644); err != nil {
		b.t.Fatalf("write %s: %v", file, err)
	}
}

// Msg builds one message object. Pass no content for a pure-media message
// (the "content" key is omitted entirely, as the export does).
func Msg(sender string, timestampMS int64, content ...string) map[string]any {
	m := map[string]any{
		"sender_name":  sender,
		"timestamp_ms": timestampMS,
		"type":         "Generic",
		"is_unsent":    false,
	}
	if len(content) > 0 {
		m["content"] = content[0]
	}
	return m
}

// AddConversation writes messages/inbox/<folder>/message_1.json. Messages
// should be given newest-first, matching the export's on-disk order.
func (b *Builder) AddConversation(folder string, messages ...map[string]any) {
	b.t.Helper()
	if messages == nil {
		messages = []map[string]any{}
	}
	b.writeJSON([]string{"messages", "inbox", folder}, "message_1.json",
		map[string]any{"messages": messages})
}

// EnsureInbox creates an empty inbox directory so Open recognizes the tree.
func (b *Builder) EnsureInbox() {
	b.t.Helper()
	parts := append([]string{b.Root}, b.prefix...)
	parts = append(parts, "messages", "inbox")
	if err := os.MkdirAll(filepath.Join(parts...), 0o755); err != nil {
		b.t.Fatalf("mkdir inbox: %v", err)
	}
}

// SetLogins writes login_activity.json with one record per ISO-8601 time.
func (b *Builder) SetLogins(times ...string) {
	b.t.Helper()
	entries := make([]map[string]any, 0, len(times))
	for _, ts := range times {
		entries = append(entries, map[string]any{
			"title":          ts,
			"media_map_data": map[string]any{},
			"string_map_data": map[string]any{
				"IP Address":    map[string]any{"href": "", "timestamp": 0, "value": "203.0.113.7"},
				"Language Code": map[string]any{"href": "", "timestamp": 0, "value": "en"},
				"User Agent":    map[string]any{"href": "", "timestamp": 0, "value": "Mozilla/5.0"},
			},
		})
	}
	b.writeJSON([]string{"login_and_account_creation"}, "login_activity.json",
		map[string]any{"account_history_login_history": entries})
}

// SetPersonalInfo writes personal_information.json for the owner.
func (b *Builder) SetPersonalInfo(name, username string) {
	b.t.Helper()
	b.writeJSON([]string{"personal_information", "personal_information"}, "personal_information.json",
		map[string]any{"profile_user": []map[string]any{{
			"title": "User Information",
			"string_map_data": map[string]any{
				"Name":     map[string]any{"href": "", "timestamp": 0, "value": name},
				"Username": map[string]any{"href": "", "timestamp": 0, "value": username},
			},
		}}})
}

func followEntry(handle string, timestamp int64) map[string]any {
	return map[string]any{
		"title":           "",
		"media_list_data": []any{},
		"string_list_data": []map[string]any{{
			"href":      "https://www.instagram.com/" + handle,
			"timestamp": timestamp,
			"value":     handle,
		}},
	}
}

// SetFollowers writes followers.json (object form, relationships_followers).
func (b *Builder) SetFollowers(handles map[string]int64) {
	b.t.Helper()
	entries := make([]map[string]any, 0, len(handles))
	for handle, ts := range handles {
		entries = append(entries, followEntry(handle, ts))
	}
	b.writeJSON([]string{"connections", "followers_and_following"}, "followers.json",
		map[string]any{"relationships_followers": entries})
}

// SetFollowersLegacy writes followers_1.json (bare array form).
func (b *Builder) SetFollowersLegacy(handles map[string]int64) {
	b.t.Helper()
	entries := make([]map[string]any, 0, len(handles))
	for handle, ts := range handles {
		entries = append(entries, followEntry(handle, ts))
	}
	b.writeJSON([]string{"connections", "followers_and_following"}, "followers_1.json", entries)
}

// SetFollowing writes following.json under connections/ (the newer path).
func (b *Builder) SetFollowing(handles map[string]int64) {
	b.t.Helper()
	entries := make([]map[string]any, 0, len(handles))
	for handle, ts := range handles {
		entries = append(entries, followEntry(handle, ts))
	}
	b.writeJSON([]string{"connections", "followers_and_following"}, "following.json",
		map[string]any{"relationships_following": entries})
}

// SetFollowingBare writes following.json without the connections/ prefix.
func (b *Builder) SetFollowingBare(handles map[string]int64) {
	b.t.Helper()
	entries := make([]map[string]any, 0, len(handles))
	for handle, ts := range handles {
		entries = append(entries, followEntry(handle, ts))
	}
	b.writeJSON([]string{"followers_and_following"}, "following.json",
		map[string]any{"relationships_following": entries})
}

// SetAdvertisers writes the advertisers list.
func (b *Builder) SetAdvertisers(names ...string) {
	b.t.Helper()
	entries := make([]map[string]any, 0, len(names))
	for _, name := range names {
		entries = append(entries, map[string]any{
			"advertiser_name":                 name,
			"has_data_file_custom_audience":   true,
			"has_remarketing_custom_audience": false,
			"has_in_person_store_visit":       false,
		})
	}
	b.writeJSON([]string{"ads_and_businesses"}, "advertisers_using_your_activity_or_information.json",
		map[string]any{"ig_custom_audiences_all_types": entries})
}
