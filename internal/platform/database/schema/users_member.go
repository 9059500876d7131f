package schema

// MemberTable represents the 'users.member' table
type MemberTable struct {
	Table               string
	ID                  string
	Username            string
	Nickname            string
	Password            string
	Role                string
	PhoneNumber         string
	MemberType          string
	Sido                string
	Sgg                 string
	Emd                 string
	Radius              string
	Rank                string
	RankScore           string
	JoinCount           string
	TotalExcellentCount string
	TotalGoodCount      string
	TotalBadCount       string
	BuddyScore          string
	Description         string
	CreatedAt           string
}

// Member is the schema definition for users.member
var Member = MemberTable{
	Table:               "users.member",
	ID:                  "id",
	Username:            "username",
	Nickname:            "nickname",
	Password:            "passwordhash",
	Role:                "role",
	PhoneNumber:         "phonenumber",
	MemberType:          "membertype",
	Sido:                "sido",
	Sgg:                 "sgg",
	Emd:                 "emd",
	Radius:              "radius",
	Rank:                "rank",
	RankScore:           "rankscore",
	JoinCount:           "joincount",
	TotalExcellentCount: "totalexcellentcount",
	TotalGoodCount:      "totalgoodcount",
	TotalBadCount:       "totalbadcount",
	BuddyScore:          "buddyscore",
	Description:         "description",
	CreatedAt:           "createdat",
}

// Columns returns the columns of a full member row, password excluded
func (t MemberTable) Columns() []string {
	return []string{
		t.ID, t.Username, t.Nickname, t.Role, t.PhoneNumber, t.MemberType,
		t.Sido, t.Sgg, t.Emd, t.Radius, t.Rank, t.RankScore, t.JoinCount,
		t.TotalExcellentCount, t.TotalGoodCount, t.TotalBadCount, t.BuddyScore,
		t.Description, t.CreatedAt,
	}
}
