package schema

// GatherArticleTable represents the 'core.gatherarticle' table
type GatherArticleTable struct {
	Table               string
	ID                  string
	Title               string
	Description         string
	MeetingLocation     string
	Sido                string
	Sgg                 string
	Emd                 string
	X                   string
	Y                   string
	MaxParticipants     string
	CurrentParticipants string
	StartDateTime       string
	EndDateTime         string
	CreatedAt           string
	Status              string
}

// GatherArticle is the schema definition for core.gatherarticle
var GatherArticle = GatherArticleTable{
	Table:               "core.gatherarticle",
	ID:                  "id",
	Title:               "title",
	Description:         "description",
	MeetingLocation:     "meetinglocation",
	Sido:                "sido",
	Sgg:                 "sgg",
	Emd:                 "emd",
	X:                   "x",
	Y:                   "y",
	MaxParticipants:     "maxparticipants",
	CurrentParticipants: "currentparticipants",
	StartDateTime:       "startdatetime",
	EndDateTime:         "enddatetime",
	CreatedAt:           "createdat",
	Status:              "status",
}
