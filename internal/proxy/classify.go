package proxy

import "strings"

// Bucket names one of the four browser-facing publication groups.
type Bucket string

const (
	BucketCourse        Bucket = "course_books"
	BucketGuidance      Bucket = "guidance_books"
	BucketInspirational Bucket = "inspirational_books"
	BucketLiterature    Bucket = "literature"
)

// KnownBucket reports whether name is one of the four bucket keys.
func KnownBucket(name string) bool {
	switch Bucket(name) {
	case BucketCourse, BucketGuidance, BucketInspirational, BucketLiterature:
		return true
	}
	return false
}

// Classify maps a category name to its bucket by ordered keyword match.
// The first matching group wins; anything unmatched lands in literature.
func Classify(category string) Bucket {
	name := strings.ToLower(category)
	switch {
	case containsAny(name, "course", "business", "management", "education"):
		return BucketCourse
	case containsAny(name, "guidance", "career"):
		return BucketGuidance
	case containsAny(name, "inspirational", "personal", "motivation"):
		return BucketInspirational
	default:
		return BucketLiterature
	}
}

func containsAny(s string, keywords ...string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}
