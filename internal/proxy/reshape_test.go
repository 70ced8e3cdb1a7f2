package proxy

import (
	"encoding/json"
	"testing"

	"kambel/internal/content"
)

func TestUpstreamPublicationTolerantDecode(t *testing.T) {
	t.Parallel()

	raw := `[
		{"id": 7, "title": "A", "category": {"name": "Career Guidance"}, "price": "19.99"},
		{"id": 8, "title": "B", "category": "Business", "price": 25},
		{"id": 9, "title": "C", "category": null, "price": null},
		{"id": 10, "title": "D", "category": "Fiction", "price": "not-a-number"}
	]`
	var records []upstreamPublication
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if records[0].Category.Value != "Career Guidance" {
		t.Errorf("object category = %q", records[0].Category.Value)
	}
	if records[0].Price.Value != 19.99 {
		t.Errorf("string price = %v", records[0].Price.Value)
	}
	if records[1].Category.Value != "Business" {
		t.Errorf("string category = %q", records[1].Category.Value)
	}
	if records[1].Price.Value != 25 {
		t.Errorf("numeric price = %v", records[1].Price.Value)
	}
	if records[2].Category.Value != "" || records[2].Price.Value != 0 {
		t.Errorf("null fields not zeroed: %+v", records[2])
	}
	if records[3].Price.Value != 0 {
		t.Errorf("unparsable price should default to zero, got %v", records[3].Price.Value)
	}
}

func TestReshapePublications(t *testing.T) {
	t.Parallel()

	records := []upstreamPublication{
		{ID: 1, Title: "Strategy", Category: flexName{Value: "Business"}},
		{ID: 2, Title: "Pathways", Author: "Ama Mensah", Category: flexName{Value: "Career Guidance"}},
		{ID: 3, Title: "Rise", Category: flexName{Value: "Motivation"}},
		{ID: 4, Title: "Tales", Category: flexName{Value: "Fiction"}},
		{ID: 5, Title: "More Tales", Category: flexName{Value: "Fiction"}},
	}
	buckets := reshapePublications(records, "Kofi Asante")

	if len(buckets.CourseBooks) != 1 || len(buckets.GuidanceBooks) != 1 ||
		len(buckets.InspirationalBooks) != 1 || len(buckets.Literature) != 2 {
		t.Fatalf("bucket sizes wrong: %+v", buckets)
	}
	if buckets.Literature[0].Title != "Tales" || buckets.Literature[1].Title != "More Tales" {
		t.Fatalf("upstream order not preserved: %+v", buckets.Literature)
	}
	if buckets.CourseBooks[0].Author != "Kofi Asante" {
		t.Errorf("principal not applied: %q", buckets.CourseBooks[0].Author)
	}
	if buckets.GuidanceBooks[0].Author != "Ama Mensah" {
		t.Errorf("explicit author overwritten: %q", buckets.GuidanceBooks[0].Author)
	}
	if buckets.CourseBooks[0].ISBN != "978-0000000001" {
		t.Errorf("ISBN = %q", buckets.CourseBooks[0].ISBN)
	}
}

func TestReshapePublicationsEmptyPrincipal(t *testing.T) {
	t.Parallel()

	buckets := reshapePublications([]upstreamPublication{{ID: 1, Title: "X"}}, "")
	if buckets.Literature[0].Author != content.DefaultAuthor {
		t.Fatalf("author = %q, want default", buckets.Literature[0].Author)
	}
}

func TestReshapeBlogDecoratesEntries(t *testing.T) {
	t.Parallel()

	entries := reshapeBlog([]content.BlogPost{
		{ID: 1, Title: "Post", Author: ""},
	})
	if len(entries) != 1 {
		t.Fatalf("got %d entries", len(entries))
	}
	entry := entries[0]
	if entry.Icon != content.DefaultBlogIcon {
		t.Errorf("icon = %q", entry.Icon)
	}
	if entry.Author != content.BlogTeamAuthor {
		t.Errorf("author = %q", entry.Author)
	}
	if entry.Tags == nil || len(entry.Tags) != 0 {
		t.Errorf("tags should be empty non-nil slice: %#v", entry.Tags)
	}
}

func TestReshapeMasterclassesAppliesDefaults(t *testing.T) {
	t.Parallel()

	video := "https://youtu.be/dQw4w9WgXcQ"
	sessions := reshapeMasterclasses(content.MasterclassList{
		Upcoming: []content.Masterclass{
			{ID: 1, Title: "Leadership", Price: 0, TotalSeats: 0, VideoURL: &video},
		},
		Previous: []content.Masterclass{
			{ID: 2, Title: "Strategy", Instructor: "Ama Mensah", Price: 150, TotalSeats: 20},
		},
	})

	up := sessions.Upcoming[0]
	if up.Time != content.DefaultMasterclassTime {
		t.Errorf("time = %q", up.Time)
	}
	if up.Price != content.DefaultMasterclassPrice {
		t.Errorf("price = %v", up.Price)
	}
	if up.TotalSeats != 30 {
		t.Errorf("total seats = %d", up.TotalSeats)
	}
	if up.Instructor != content.DefaultAuthor {
		t.Errorf("instructor = %q", up.Instructor)
	}
	if up.CoverImageURL == nil || *up.CoverImageURL != "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg" {
		t.Errorf("cover not derived from video: %v", up.CoverImageURL)
	}

	prev := sessions.Previous[0]
	if prev.Price != 150 || prev.TotalSeats != 20 || prev.Instructor != "Ama Mensah" {
		t.Errorf("explicit values overwritten: %+v", prev)
	}

	if _, ok := findSession(sessions, 2); !ok {
		t.Error("findSession missed previous session")
	}
	if _, ok := findSession(sessions, 99); ok {
		t.Error("findSession invented a session")
	}
}
