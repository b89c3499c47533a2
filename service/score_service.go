package service

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	model "github.com/alceccentric/anilist-taste/model"
	util "github.com/alceccentric/anilist-taste/util"
	"github.com/montanaflynn/stats"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
)

const aliasPrefix = "query_"

// IsReportedList accepts only the Watching and Completed lists; every other
// list name is dropped from the run.
func IsReportedList(list gjson.Result) bool {
	name := list.Get("name").String()
	return name == util.WatchingListName || name == util.CompletedListName
}

// ExtractListEntries reads a list's entries array into co-indexed id and
// personal-score sequences. An entry missing mediaId or score, or carrying a
// non-integer value, is skipped rather than failing the list.
func ExtractListEntries(list gjson.Result) (ids []int64, scores []int64) {
	list.Get("entries").ForEach(func(_, entry gjson.Result) bool {
		id, idOk := intValue(entry.Get("mediaId"))
		score, scoreOk := intValue(entry.Get("score"))
		if !idOk || !scoreOk {
			log.Debug().Msgf("Skipping malformed entry %s", entry.Raw)
			return true
		}
		ids = append(ids, id)
		scores = append(scores, score)
		return true
	})
	return ids, scores
}

// ExtractBatchedAverages recovers the average-score sequence from a batched
// response object keyed by query_{i} aliases. Response key order is not
// contractually the request order, so results are sorted by the numeric alias
// suffix before the indexes are discarded. averageScore absent or non-numeric
// counts as 0.
func ExtractBatchedAverages(data gjson.Result) []int64 {
	type indexedScore struct {
		index int
		score int64
	}

	indexed := make([]indexedScore, 0)
	data.ForEach(func(key, value gjson.Result) bool {
		index, err := strconv.Atoi(strings.TrimPrefix(key.String(), aliasPrefix))
		if err != nil {
			log.Debug().Msgf("Skipping unexpected alias %s in batched response", key.String())
			return true
		}
		indexed = append(indexed, indexedScore{
			index: index,
			score: value.Get("averageScore").Int(),
		})
		return true
	})

	sort.Slice(indexed, func(i, j int) bool {
		return indexed[i].index < indexed[j].index
	})

	avgScores := make([]int64, 0, len(indexed))
	for _, entry := range indexed {
		avgScores = append(avgScores, entry.score)
	}
	return avgScores
}

// Join pairs a list's entries with their global average scores by position.
// The position-based join has no id-matching fallback, so a length mismatch
// is an error, never a truncation.
func Join(listType string, ids, userScores, avgScores []int64) (model.ScoredList, error) {
	if len(ids) != len(userScores) {
		return model.ScoredList{}, fmt.Errorf("list %s: id count %d does not match user score count %d", listType, len(ids), len(userScores))
	}
	if len(ids) != len(avgScores) {
		return model.ScoredList{}, fmt.Errorf("list %s: entry count %d does not match average score count %d", listType, len(ids), len(avgScores))
	}

	entries := make([]model.ListEntry, 0, len(ids))
	for i, id := range ids {
		entries = append(entries, model.ListEntry{
			MediaID:       id,
			PersonalScore: userScores[i],
		})
	}
	return model.ScoredList{
		ListType:        listType,
		Entries:         entries,
		GlobalAvgScores: avgScores,
	}, nil
}

// TasteRatio is the list's personal score total over its global average score
// total. A zero global total makes the ratio undefined and returns NaN; it is
// never coerced to 0 or infinity.
func TasteRatio(list model.ScoredList) float64 {
	userScores := make([]int64, 0, len(list.Entries))
	for _, entry := range list.Entries {
		userScores = append(userScores, entry.PersonalScore)
	}
	userTotal := sumScores(userScores)
	avgTotal := sumScores(list.GlobalAvgScores)

	if avgTotal == 0 {
		return math.NaN()
	}
	return userTotal / avgTotal
}

func Summarize(list model.ScoredList) model.TasteSummary {
	return model.TasteSummary{
		ListType: list.ListType,
		Ratio:    TasteRatio(list),
	}
}

func sumScores(scores []int64) float64 {
	if len(scores) == 0 {
		return 0
	}
	total, err := stats.Sum(stats.LoadRawData(scores))
	if err != nil {
		return 0
	}
	return total
}

func intValue(value gjson.Result) (int64, bool) {
	if value.Type != gjson.Number || value.Num != math.Trunc(value.Num) {
		return 0, false
	}
	return int64(value.Num), true
}
