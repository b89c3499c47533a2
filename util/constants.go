package util

const (
	// API parameters
	ApiEndpoint    = "https://graphql.anilist.co"
	EndpointEnvVar = "ANILIST_GRAPHQL_ENDPOINT"

	// only these list names produce reports
	WatchingListName  = "Watching"
	CompletedListName = "Completed"

	// report output
	CsvFileNameFormat = "anilist_%s_%s_score_%s.csv"
)

// CsvHeader is the column order every report file starts with.
var CsvHeader = []string{"list_type", "anilist_id", "user_score", "global_avg_score"}
