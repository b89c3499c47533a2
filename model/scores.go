package model

// ListEntry is one tracked item from a user's list.
type ListEntry struct {
	MediaID       int64
	PersonalScore int64
}

// ScoredList pairs a list's entries with the global average score of each
// entry. GlobalAvgScores is aligned 1:1 by position with Entries; the join in
// the score service is the only constructor and enforces equal lengths.
type ScoredList struct {
	ListType        string
	Entries         []ListEntry
	GlobalAvgScores []int64
}

// ReportRow is the flattened unit written to CSV.
type ReportRow struct {
	ListType       string
	AnilistID      int64
	UserScore      int64
	GlobalAvgScore int64
}

// TasteSummary is the per-list console metric. Ratio is NaN when the list's
// global score total is zero.
type TasteSummary struct {
	ListType string
	Ratio    float64
}

func (list *ScoredList) ReportRows() []ReportRow {
	rows := make([]ReportRow, 0, len(list.Entries))
	for i, entry := range list.Entries {
		rows = append(rows, ReportRow{
			ListType:       list.ListType,
			AnilistID:      entry.MediaID,
			UserScore:      entry.PersonalScore,
			GlobalAvgScore: list.GlobalAvgScores[i],
		})
	}
	return rows
}
