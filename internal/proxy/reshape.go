package proxy

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"kambel/internal/content"
)

// flexName decodes a category that may arrive as a bare string, as an
// object carrying a name field, or as null.
type flexName struct {
	Value string
}

func (f *flexName) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		f.Value = ""
		return nil
	}
	if strings.HasPrefix(trimmed, "{") {
		var obj struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		f.Value = obj.Name
		return nil
	}
	return json.Unmarshal(data, &f.Value)
}

// flexPrice decodes a price that may arrive as a JSON number, a numeric
// string, or null. Anything unparsable defaults to zero.
type flexPrice struct {
	Value float64
}

func (f *flexPrice) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" || trimmed == `""` {
		f.Value = 0
		return nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			f.Value = 0
			return nil
		}
		f.Value = parsed
		return nil
	}
	return json.Unmarshal(data, &f.Value)
}

// upstreamPublication is the loosely-shaped record the authority serves.
// All optional keys are defaulted here at the boundary, never downstream.
type upstreamPublication struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	Description   string    `json:"description"`
	Pages         int       `json:"pages"`
	Price         flexPrice `json:"price"`
	Category      flexName  `json:"category"`
	CoverImageURL *string   `json:"cover_image_url"`
	PurchaseLink  string    `json:"purchase_link"`
}

// isbn synthesizes the display ISBN from a record id.
func isbn(id int64) string {
	return fmt.Sprintf("978-%010d", id)
}

// reshapePublications converts upstream records into the four display
// buckets, preserving upstream order within each bucket. The principal is
// credited when a record carries no author.
func reshapePublications(records []upstreamPublication, principal string) content.PublicationBuckets {
	if principal == "" {
		principal = content.DefaultAuthor
	}
	buckets := content.NewPublicationBuckets()

	for _, record := range records {
		book := content.Book{
			ID:            record.ID,
			Title:         record.Title,
			Author:        record.Author,
			Price:         record.Price.Value,
			Description:   record.Description,
			Category:      record.Category.Value,
			Pages:         record.Pages,
			ISBN:          isbn(record.ID),
			CoverImageURL: record.CoverImageURL,
			PurchaseLink:  record.PurchaseLink,
		}
		if book.Author == "" {
			book.Author = principal
		}

		switch Classify(book.Category) {
		case BucketCourse:
			buckets.CourseBooks = append(buckets.CourseBooks, book)
		case BucketGuidance:
			buckets.GuidanceBooks = append(buckets.GuidanceBooks, book)
		case BucketInspirational:
			buckets.InspirationalBooks = append(buckets.InspirationalBooks, book)
		default:
			buckets.Literature = append(buckets.Literature, book)
		}
	}
	return buckets
}

// bucketSlice selects one bucket from the grouped set by key.
func bucketSlice(buckets content.PublicationBuckets, name string) ([]content.Book, bool) {
	switch Bucket(name) {
	case BucketCourse:
		return buckets.CourseBooks, true
	case BucketGuidance:
		return buckets.GuidanceBooks, true
	case BucketInspirational:
		return buckets.InspirationalBooks, true
	case BucketLiterature:
		return buckets.Literature, true
	}
	return nil, false
}
