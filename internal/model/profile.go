package model

// ProfileStats are the aggregate counters shown on a public profile.
type ProfileStats struct {
	Posts      int
	Comments   int
	Helpful    int
	NotHelpful int
}

// ProfileView is everything the profile page renders.
type ProfileView struct {
	User           *User
	Posts          []Post
	RecentComments []Comment
	Stats          ProfileStats
}
