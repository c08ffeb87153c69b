package constants

const (
	// SessionCookieName is the name of the session cookie.
	SessionCookieName = "watchlist_session"

	// ContextKeyUserID is the session and gin-context key holding the
	// authenticated user's ID.
	ContextKeyUserID = "user_id"

	// MaxNameLength bounds the display name, in runes.
	MaxNameLength = 20

	// MaxTitleLength bounds a movie title, in runes.
	MaxTitleLength = 60

	// YearLength is the expected length of a movie year.
	YearLength = 4
)
