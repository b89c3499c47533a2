package request

import (
	"testing"

	model "github.com/alceccentric/anilist-taste/model"
	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

func TestGetListCollectionRequestBody(t *testing.T) {
	req := &GetListCollectionRequest{
		Username: "kyon",
		Kind:     model.Anime,
	}

	body := req.ToBody()
	assert.True(t, gjson.Valid(body))

	parsed := gjson.Parse(body)
	assert.Equal(t, "kyon", parsed.Get("variables.username").String())
	assert.Equal(t, "ANIME", parsed.Get("variables.media").String())

	query := parsed.Get("query").String()
	assert.Contains(t, query, "MediaListCollection (userName: $username, type: $media)")
	assert.Contains(t, query, "mediaId")
	assert.Contains(t, query, "score")
}

func TestGetListCollectionRequestEscapesUsername(t *testing.T) {
	req := &GetListCollectionRequest{
		Username: `ky"on`,
		Kind:     model.Manga,
	}

	body := req.ToBody()
	assert.True(t, gjson.Valid(body))
	assert.Equal(t, `ky"on`, gjson.Get(body, "variables.username").String())
}

func TestGetBatchAveragesRequestAliasesEveryId(t *testing.T) {
	req := &GetBatchAveragesRequest{
		MediaIDs: []int64{101, 7, 2048},
		Kind:     model.Anime,
	}

	body := req.ToBody()
	assert.True(t, gjson.Valid(body))

	parsed := gjson.Parse(body)
	assert.Equal(t, "ANIME", parsed.Get("variables.media").String())

	query := parsed.Get("query").String()
	assert.Contains(t, query, "query ($media: MediaType)")
	assert.Contains(t, query, "query_0: Media (id: 101, type: $media) { averageScore }")
	assert.Contains(t, query, "query_1: Media (id: 7, type: $media) { averageScore }")
	assert.Contains(t, query, "query_2: Media (id: 2048, type: $media) { averageScore }")
	assert.NotContains(t, query, "query_3:")
}

func TestGetBatchAveragesRequestEmptyIds(t *testing.T) {
	req := &GetBatchAveragesRequest{
		MediaIDs: nil,
		Kind:     model.Manga,
	}

	body := req.ToBody()
	assert.True(t, gjson.Valid(body))
	assert.NotContains(t, gjson.Get(body, "query").String(), "Media (id:")
}
