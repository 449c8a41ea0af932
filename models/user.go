package models

import (
	"time"

	"github.com/kbukum/tradekit/schema"
)

// User is the account owner profile.
type User struct {
	ID          int64
	Firstname   string
	Lastname    string
	Username    string
	Email       string
	Country     string
	AffiliateID string
	Created     time.Time
	LastUpdated time.Time
	Preferences *UserPreferences
}

// UserPreferences holds per-user display and notification settings.
type UserPreferences struct {
	Locale                string
	Currency              string
	Debug                 bool
	AnnouncementsLastSeen time.Time
	DisableEmails         []string
	HideFromLeaderboard   bool
	StrictIPCheck         bool
	TickerGroup           string
	OrderBookBinning      map[string]any
}

func init() {
	schema.Register(&schema.ModelSpec{
		Name: "User",
		New:  func() any { return &User{} },
		Fields: []schema.FieldSpec{
			{Attr: "id", Wire: "id", Type: schema.MustParse("Integer"),
				Set: func(m, v any) { m.(*User).ID = v.(int64) }},
			{Attr: "firstname", Wire: "firstname", Type: schema.MustParse("String"),
				Set: func(m, v any) { m.(*User).Firstname = v.(string) }},
			{Attr: "lastname", Wire: "lastname", Type: schema.MustParse("String"),
				Set: func(m, v any) { m.(*User).Lastname = v.(string) }},
			{Attr: "username", Wire: "username", Type: schema.MustParse("String"),
				Set: func(m, v any) { m.(*User).Username = v.(string) }},
			{Attr: "email", Wire: "email", Type: schema.MustParse("String"),
				Set: func(m, v any) { m.(*User).Email = v.(string) }},
			{Attr: "country", Wire: "country", Type: schema.MustParse("String"),
				Set: func(m, v any) { m.(*User).Country = v.(string) }},
			{Attr: "affiliate_id", Wire: "affiliateID", Type: schema.MustParse("String"),
				Set: func(m, v any) { m.(*User).AffiliateID = v.(string) }},
			{Attr: "created", Wire: "created", Type: schema.MustParse("DateTime"),
				Set: func(m, v any) { m.(*User).Created = v.(time.Time) }},
			{Attr: "last_updated", Wire: "lastUpdated", Type: schema.MustParse("DateTime"),
				Set: func(m, v any) { m.(*User).LastUpdated = v.(time.Time) }},
			{Attr: "preferences", Wire: "preferences", Type: schema.MustParse("UserPreferences"),
				Set: func(m, v any) { m.(*User).Preferences = v.(*UserPreferences) }},
		},
	})

	schema.Register(&schema.ModelSpec{
		Name: "UserPreferences",
		New:  func() any { return &UserPreferences{} },
		Fields: []schema.FieldSpec{
			{Attr: "locale", Wire: "locale", Type: schema.MustParse("String"),
				Set: func(m, v any) { m.(*UserPreferences).Locale = v.(string) }},
			{Attr: "currency", Wire: "currency", Type: schema.MustParse("String"),
				Set: func(m, v any) { m.(*UserPreferences).Currency = v.(string) }},
			{Attr: "debug", Wire: "debug", Type: schema.MustParse("Boolean"),
				Set: func(m, v any) { m.(*UserPreferences).Debug = v.(bool) }},
			{Attr: "announcements_last_seen", Wire: "announcementsLastSeen", Type: schema.MustParse("DateTime"),
				Set: func(m, v any) { m.(*UserPreferences).AnnouncementsLastSeen = v.(time.Time) }},
			{Attr: "disable_emails", Wire: "disableEmails", Type: schema.MustParse("Array<String>"),
				Set: func(m, v any) { m.(*UserPreferences).DisableEmails = schema.Slice[string](v) }},
			{Attr: "hide_from_leaderboard", Wire: "hideFromLeaderboard", Type: schema.MustParse("Boolean"),
				Set: func(m, v any) { m.(*UserPreferences).HideFromLeaderboard = v.(bool) }},
			{Attr: "strict_ip_check", Wire: "strictIPCheck", Type: schema.MustParse("Boolean"),
				Set: func(m, v any) { m.(*UserPreferences).StrictIPCheck = v.(bool) }},
			{Attr: "ticker_group", Wire: "tickerGroup", Type: schema.MustParse("String"),
				Set: func(m, v any) { m.(*UserPreferences).TickerGroup = v.(string) }},
			{Attr: "order_book_binning", Wire: "orderBookBinning", Type: schema.MustParse("Object"),
				Set: func(m, v any) { m.(*UserPreferences).OrderBookBinning = v.(map[string]any) }},
		},
	})
}
