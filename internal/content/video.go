package content

import "strings"

// VideoThumbnail derives a poster image URL from a recognized video URL.
// YouTube links (youtube.com watch URLs and youtu.be short links) map to the
// maxresdefault frame; anything else yields "".
func VideoThumbnail(videoURL string) string {
	id := youtubeVideoID(videoURL)
	if id == "" {
		return ""
	}
	return "https://img.youtube.com/vi/" + id + "/maxresdefault.jpg"
}

func youtubeVideoID(videoURL string) string {
	switch {
	case strings.Contains(videoURL, "youtu.be"):
		// Short link: the ID is the last path segment, before any query.
		segment := videoURL[strings.LastIndex(videoURL, "/")+1:]
		if i := strings.Index(segment, "?"); i >= 0 {
			segment = segment[:i]
		}
		return segment
	case strings.Contains(videoURL, "youtube.com"):
		// Watch URL: the ID follows v=, ending at the next parameter.
		_, after, found := strings.Cut(videoURL, "v=")
		if !found {
			return ""
		}
		if i := strings.Index(after, "&"); i >= 0 {
			after = after[:i]
		}
		return after
	default:
		return ""
	}
}
