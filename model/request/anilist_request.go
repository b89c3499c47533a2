package request

// AniListRequest produces the JSON body of one GraphQL POST. AniList exposes a
// single endpoint, so unlike a REST request there is no per-request URI.
type AniListRequest interface {
	ToBody() string
}
