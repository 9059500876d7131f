package schema

// MemberGatherArticleTable represents the 'core.membergatherarticle' table
type MemberGatherArticleTable struct {
	Table           string
	ID              string
	MemberID        string
	GatherArticleID string
	Role            string
}

// MemberGatherArticle is the schema definition for core.membergatherarticle
var MemberGatherArticle = MemberGatherArticleTable{
	Table:           "core.membergatherarticle",
	ID:              "id",
	MemberID:        "memberid",
	GatherArticleID: "gatherarticleid",
	Role:            "role",
}
