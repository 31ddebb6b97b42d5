package domain

// Session is the client-held authentication token and hydrated user profile.
type Session struct {
	Token          string
	User           *User
	IsLoading      bool
	JustRegistered bool
}

func (s Session) HasToken() bool {
	return s.Token != ""
}

func (s Session) InterestCount() int {
	if s.User == nil {
		return 0
	}
	return len(s.User.Interests)
}
