package job

import (
	model "github.com/alceccentric/anilist-taste/model"
)

// TasteOrchJob carries one tracked list through the scoring pipeline. Scored
// stays nil when the list's average-score round trip or join failed; later
// stages pass such jobs through without reporting them.
type TasteOrchJob struct {
	ListType   string
	MediaIDs   []int64
	UserScores []int64
	Scored     *model.ScoredList
	Summary    model.TasteSummary
}
