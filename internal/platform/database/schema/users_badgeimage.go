package schema

// BadgeImageTable represents the 'users.badgeimage' table
type BadgeImageTable struct {
	Table     string
	ID        string
	MemberID  string
	SavedURL  string
	YearMonth string
}

// BadgeImage is the schema definition for users.badgeimage
var BadgeImage = BadgeImageTable{
	Table:     "users.badgeimage",
	ID:        "id",
	MemberID:  "memberid",
	SavedURL:  "s3savedurl",
	YearMonth: "badgeyearmonth",
}
