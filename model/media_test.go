package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMediaKindFromString(t *testing.T) {
	for _, kindStr := range []string{"ANIME", "anime", "AnImE"} {
		kind, err := MediaKindFromString(kindStr)
		assert.NoError(t, err)
		assert.Equal(t, Anime, kind)
	}

	kind, err := MediaKindFromString("manga")
	assert.NoError(t, err)
	assert.Equal(t, Manga, kind)
	assert.Equal(t, "MANGA", kind.String())

	_, err = MediaKindFromString("podcast")
	assert.Error(t, err)
}

func TestReportRowsFlattenByPosition(t *testing.T) {
	list := ScoredList{
		ListType: "Completed",
		Entries: []ListEntry{
			{MediaID: 5, PersonalScore: 60},
			{MediaID: 9, PersonalScore: 75},
		},
		GlobalAvgScores: []int64{72, 81},
	}

	rows := list.ReportRows()
	assert.Equal(t, []ReportRow{
		{ListType: "Completed", AnilistID: 5, UserScore: 60, GlobalAvgScore: 72},
		{ListType: "Completed", AnilistID: 9, UserScore: 75, GlobalAvgScore: 81},
	}, rows)
}
