package dao

import (
	"errors"
	"fmt"
	"os"

	model "github.com/alceccentric/anilist-taste/model"
	req "github.com/alceccentric/anilist-taste/model/request"
	util "github.com/alceccentric/anilist-taste/util"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
)

// ErrMissingLists means the response carried no MediaListCollection.lists at
// all. Nothing downstream is meaningful without it, so callers treat this as
// fatal for the run rather than a per-list failure.
var ErrMissingLists = errors.New("media lists not found in response")

type AniListAccessor struct {
	httpClient *resty.Client
	endpoint   string
}

func NewAniListAccessor() *AniListAccessor {
	endpoint := os.Getenv(util.EndpointEnvVar)
	if endpoint == "" {
		endpoint = util.ApiEndpoint
	}
	return NewAniListAccessorFor(endpoint)
}

func NewAniListAccessorFor(endpoint string) *AniListAccessor {
	return &AniListAccessor{
		httpClient: resty.New(),
		endpoint:   endpoint,
	}
}

// GetMediaLists runs the list-collection query and returns the raw list
// objects (name + entries) for the given user and media kind.
func (apiClient *AniListAccessor) GetMediaLists(username string, kind model.MediaKind) ([]gjson.Result, error) {
	log.Debug().Msgf("Sending list collection request for user %s with media kind %s", username, kind)
	respBody, resp, err := apiClient.post(&req.GetListCollectionRequest{
		Username: username,
		Kind:     kind,
	})

	if resp == nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("GetListCollectionRequest failed with status: %s and code: %d", resp.Status(), resp.StatusCode())
	}
	if err != nil {
		return nil, err
	}

	lists := respBody.Get("data.MediaListCollection.lists")
	if !lists.Exists() {
		return nil, fmt.Errorf("user %s: %w", username, ErrMissingLists)
	}
	return lists.Array(), nil
}

// GetBatchAverages runs one aliased query covering every id in mediaIds and
// returns the response's data object, keyed by alias. An empty id slice
// yields an empty object without a round trip.
func (apiClient *AniListAccessor) GetBatchAverages(mediaIds []int64, kind model.MediaKind) (gjson.Result, error) {
	if len(mediaIds) == 0 {
		return gjson.Parse("{}"), nil
	}

	log.Debug().Msgf("Sending batch average request for %d media ids with media kind %s", len(mediaIds), kind)
	respBody, resp, err := apiClient.post(&req.GetBatchAveragesRequest{
		MediaIDs: mediaIds,
		Kind:     kind,
	})

	if resp == nil {
		return gjson.Result{}, err
	}
	if resp.IsError() {
		return gjson.Result{}, fmt.Errorf("GetBatchAveragesRequest failed with status: %s and code: %d", resp.Status(), resp.StatusCode())
	}
	if err != nil {
		return gjson.Result{}, err
	}

	return respBody.Get("data"), nil
}

// post issues one synchronous POST and parses the body. A nil response means
// the request never completed; a non-nil response with a non-nil error means
// the body was not valid JSON.
func (apiClient *AniListAccessor) post(request req.AniListRequest) (gjson.Result, *resty.Response, error) {
	resp, err := apiClient.httpClient.R().EnableTrace().
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetBody(request.ToBody()).
		Post(apiClient.endpoint)
	if err != nil {
		return gjson.Result{}, nil, err
	}

	if !gjson.ValidBytes(resp.Body()) {
		return gjson.Result{}, resp, fmt.Errorf("malformed query response: body is not valid JSON")
	}
	return gjson.ParseBytes(resp.Body()), resp, nil
}
