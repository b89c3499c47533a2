package model

import (
	"fmt"
	"strings"
)

// MediaKind is the AniList MediaType enum value scoping both queries of a run.
type MediaKind string

const (
	Anime MediaKind = "ANIME"
	Manga MediaKind = "MANGA"
)

func MediaKindFromString(kindStr string) (MediaKind, error) {
	switch strings.ToUpper(kindStr) {
	case string(Anime):
		return Anime, nil
	case string(Manga):
		return Manga, nil
	default:
		return "", fmt.Errorf("media type %s is not supported (ANIME/MANGA)", kindStr)
	}
}

func (kind MediaKind) String() string {
	return string(kind)
}
