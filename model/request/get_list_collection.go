package request

import (
	"strconv"

	model "github.com/alceccentric/anilist-taste/model"
)

const listCollectionQuery = `
query ($username: String, $media: MediaType) {
  MediaListCollection (userName: $username, type: $media) {
    lists {
        name
        entries {
            mediaId,
            score
        }
    }
  }
}
`

type GetListCollectionRequest struct {
	Username string
	Kind     model.MediaKind
}

func (request *GetListCollectionRequest) ToBody() string {
	return `{
		"query": ` + strconv.Quote(listCollectionQuery) + `,
		"variables": {
			"username": ` + strconv.Quote(request.Username) + `,
			"media": ` + strconv.Quote(request.Kind.String()) + `
		}
	}`
}
