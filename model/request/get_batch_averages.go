package request

import (
	"fmt"
	"strconv"
	"strings"

	model "github.com/alceccentric/anilist-taste/model"
)

// GetBatchAveragesRequest fetches the global average score of every id in
// MediaIDs within a single round trip. AniList has no field that takes an id
// list here, so the id at position i becomes an aliased sub-query named
// query_{i}; the alias suffix is what lets the response be matched back to
// request order.
type GetBatchAveragesRequest struct {
	MediaIDs []int64
	Kind     model.MediaKind
}

func (request *GetBatchAveragesRequest) ToBody() string {
	var fields strings.Builder
	for i, id := range request.MediaIDs {
		fields.WriteString(fmt.Sprintf("query_%d: Media (id: %d, type: $media) { averageScore }\n", i, id))
	}

	query := "query ($media: MediaType) {\n" + fields.String() + "}"

	return `{
		"query": ` + strconv.Quote(query) + `,
		"variables": {
			"media": ` + strconv.Quote(request.Kind.String()) + `
		}
	}`
}
