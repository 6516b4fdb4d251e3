package archive

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

// followVariant is one known location of follower/following data. The export
// format's nesting changed between observed versions, so each accessor tries
// an ordered list of variants before giving up.
type followVariant struct {
	segments []string
	file     string
	key      string // empty means the file is a bare array
}

var followerVariants = []followVariant{
	{segments: []string{"connections", "followers_and_following"}, file: "followers.json", key: "relationships_followers"},
	{segments: []string{"connections", "followers_and_following"}, file: "followers_1.json"},
}

var followingVariants = []followVariant{
	{segments: []string{"followers_and_following"}, file: "following.json", key: "relationships_following"},
	{segments: []string{"connections", "followers_and_following"}, file: "following.json", key: "relationships_following"},
}

// LoginHistory loads every login event from login_activity.json.
// Record timestamps stay ISO-8601 strings, exactly as exported.
func (e *Export) LoginHistory() ([]LoginRecord, error) {
	raw, err := e.LoadJSON([]string{"login_and_account_creation"}, "login_activity.json")
	if err != nil {
		return nil, err
	}

	entries := gjson.GetBytes(raw, "account_history_login_history")
	if !entries.IsArray() {
		return nil, &MalformedDataError{
			Path: "login_activity.json",
			Err:  errors.New("missing account_history_login_history array"),
		}
	}

	var records []LoginRecord
	entries.ForEach(func(_, entry gjson.Result) bool {
		records = append(records, LoginRecord{
			Time:         entry.Get("title").String(),
			IPAddress:    entry.Get("string_map_data.IP Address.value").String(),
			UserAgent:    entry.Get("string_map_data.User Agent.value").String(),
			LanguageCode: entry.Get("string_map_data.Language Code.value").String(),
		})
		return true
	})
	return records, nil
}

// Followers loads the follower list, trying both known file variants.
func (e *Export) Followers() ([]FollowRecord, error) {
	return e.loadFollowData(followerVariants)
}

// Following loads the following list, trying both known path variants.
func (e *Export) Following() ([]FollowRecord, error) {
	return e.loadFollowData(followingVariants)
}

func (e *Export) loadFollowData(variants []followVariant) ([]FollowRecord, error) {
	var lastErr error
	for _, v := range variants {
		raw, err := e.LoadJSON(v.segments, v.file)
		if err != nil {
			var nf *NotFoundError
			if errors.As(err, &nf) {
				lastErr = err
				continue
			}
			return nil, err
		}

		entries := gjson.ParseBytes(raw)
		if v.key != "" {
			entries = entries.Get(v.key)
			if !entries.Exists() {
				lastErr = &MalformedDataError{
					Path: v.file,
					Err:  fmt.Errorf("missing %s key", v.key),
				}
				continue
			}
		}
		if !entries.IsArray() {
			return nil, &MalformedDataError{Path: v.file, Err: errors.New("expected an array of relationships")}
		}

		var records []FollowRecord
		entries.ForEach(func(_, entry gjson.Result) bool {
			item := entry.Get("string_list_data.0")
			records = append(records, FollowRecord{
				Handle:     item.Get("value").String(),
				ProfileURL: item.Get("href").String(),
				Timestamp:  item.Get("timestamp").Int(),
			})
			return true
		})
		return records, nil
	}
	return nil, lastErr
}

// PersonalInfo loads the owner's profile fields from
// personal_information.json.
func (e *Export) PersonalInfo() (PersonalInfo, error) {
	raw, err := e.LoadJSON([]string{"personal_information", "personal_information"}, "personal_information.json")
	if err != nil {
		return PersonalInfo{}, err
	}

	user := gjson.GetBytes(raw, "profile_user.0")
	if !user.Exists() {
		return PersonalInfo{}, &MalformedDataError{
			Path: "personal_information.json",
			Err:  errors.New("missing profile_user entry"),
		}
	}
	fields := user.Get("string_map_data")
	return PersonalInfo{
		Name:     fields.Get("Name.value").String(),
		Username: fields.Get("Username.value").String(),
		Bio:      fields.Get("Bio.value").String(),
		Gender:   fields.Get("Gender.value").String(),
	}, nil
}

// OwnerName returns the account holder's display name as stored in the
// export. Aggregations use it to split sent from received messages.
func (e *Export) OwnerName() (string, error) {
	info, err := e.PersonalInfo()
	if err != nil {
		return "", err
	}
	return info.Name, nil
}

// Advertisers loads the list of advertisers holding the account in a custom
// audience.
func (e *Export) Advertisers() ([]Advertiser, error) {
	raw, err := e.LoadJSON([]string{"ads_and_businesses"}, "advertisers_using_your_activity_or_information.json")
	if err != nil {
		return nil, err
	}

	entries := gjson.GetBytes(raw, "ig_custom_audiences_all_types")
	if !entries.IsArray() {
		return nil, &MalformedDataError{
			Path: "advertisers_using_your_activity_or_information.json",
			Err:  errors.New("missing ig_custom_audiences_all_types array"),
		}
	}

	var ads []Advertiser
	entries.ForEach(func(_, entry gjson.Result) bool {
		ads = append(ads, Advertiser{
			Name:                         entry.Get("advertiser_name").String(),
			HasDataFileCustomAudience:    entry.Get("has_data_file_custom_audience").Bool(),
			HasRemarketingCustomAudience: entry.Get("has_remarketing_custom_audience").Bool(),
			HasInPersonStoreVisit:        entry.Get("has_in_person_store_visit").Bool(),
		})
		return true
	})
	return ads, nil
}
