package sqlite

import "github.com/Mushus/retweet"

// Stored media type values. The column keeps ints so the domain enum can
// be reordered without a migration.
const (
	mediaTypeAvatar = iota
	mediaTypeBanner
	mediaTypeAttachment
)

func mediaTypeValue(t retweet.MediaType) int {
	switch t {
	case retweet.MediaTypeBanner:
		return mediaTypeBanner
	case retweet.MediaTypeAttachment:
		return mediaTypeAttachment
	default:
		return mediaTypeAvatar
	}
}

func mediaTypeOf(value int) retweet.MediaType {
	switch value {
	case mediaTypeBanner:
		return retweet.MediaTypeBanner
	case mediaTypeAttachment:
		return retweet.MediaTypeAttachment
	default:
		return retweet.MediaTypeAvatar
	}
}
