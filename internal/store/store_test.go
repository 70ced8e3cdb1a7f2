package store_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"kambel/internal/content"
	"kambel/internal/store"
	"kambel/internal/testsupport"
)

func TestPublicationLifecycle(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	catID, err := st.CreateCategory(ctx, "Business Management", "")
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}

	id, err := st.CreatePublication(ctx, store.PublicationParams{
		Title:      "Leading Teams",
		Author:     content.DefaultAuthor,
		Pages:      120,
		Price:      19.99,
		CategoryID: &catID,
	})
	if err != nil {
		t.Fatalf("CreatePublication: %v", err)
	}

	pubs, err := st.ListPublications(ctx)
	if err != nil {
		t.Fatalf("ListPublications: %v", err)
	}
	if len(pubs) != 1 {
		t.Fatalf("expected 1 publication, got %d", len(pubs))
	}
	if pubs[0].Category == nil || *pubs[0].Category != "Business Management" {
		t.Fatalf("category not joined: %+v", pubs[0])
	}

	newTitle := "Leading Teams, 2nd Edition"
	if err := st.UpdatePublication(ctx, id, store.PublicationUpdate{Title: &newTitle}); err != nil {
		t.Fatalf("UpdatePublication: %v", err)
	}
	pub, err := st.GetPublication(ctx, id)
	if err != nil {
		t.Fatalf("GetPublication: %v", err)
	}
	if pub.Title != newTitle {
		t.Fatalf("title not updated: %q", pub.Title)
	}
	if pub.Price != 19.99 || pub.Pages != 120 {
		t.Fatalf("partial update clobbered fields: %+v", pub)
	}

	if err := st.DeletePublication(ctx, id); err != nil {
		t.Fatalf("DeletePublication: %v", err)
	}
	if _, err := st.GetPublication(ctx, id); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after soft delete, got %v", err)
	}
	pubs, err = st.ListPublications(ctx)
	if err != nil {
		t.Fatalf("ListPublications after delete: %v", err)
	}
	if len(pubs) != 0 {
		t.Fatalf("soft-deleted publication still listed: %+v", pubs)
	}

	if err := st.DeletePublication(ctx, id); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("double delete should report ErrNotFound, got %v", err)
	}
}

func TestUpdatePublicationUnknownID(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)

	title := "x"
	err := st.UpdatePublication(context.Background(), 999, store.PublicationUpdate{Title: &title})
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestConsultancyFeaturesOrderedAndFiltered(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	svcID, err := st.CreateService(ctx, store.ServiceParams{
		Name: "Career Guidance", ServiceType: "career", SortOrder: 2,
	})
	if err != nil {
		t.Fatalf("CreateService: %v", err)
	}
	if _, err := st.CreateService(ctx, store.ServiceParams{
		Name: "Business Advisory", ServiceType: "business", SortOrder: 1,
	}); err != nil {
		t.Fatalf("CreateService: %v", err)
	}

	for i, title := range []string{"CV Review", "Mock Interviews"} {
		if _, err := st.CreateServiceFeature(ctx, store.FeatureParams{
			ServiceID: svcID, Title: title, SortOrder: i,
		}); err != nil {
			t.Fatalf("CreateServiceFeature: %v", err)
		}
	}

	services, err := st.ListServices(ctx)
	if err != nil {
		t.Fatalf("ListServices: %v", err)
	}
	if len(services) != 2 {
		t.Fatalf("expected 2 services, got %d", len(services))
	}
	if services[0].Name != "Business Advisory" {
		t.Fatalf("sort order not respected: %q first", services[0].Name)
	}
	career := services[1]
	if len(career.Features) != 2 || career.Features[0].Title != "CV Review" {
		t.Fatalf("unexpected features: %+v", career.Features)
	}
}

func TestBlogPostsNewestFirstWithDisplayDate(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	if _, err := st.CreateBlogPost(ctx, store.BlogPostParams{Title: "First", Published: true}); err != nil {
		t.Fatalf("CreateBlogPost: %v", err)
	}
	if _, err := st.CreateBlogPost(ctx, store.BlogPostParams{Title: "Second", Published: true}); err != nil {
		t.Fatalf("CreateBlogPost: %v", err)
	}
	if _, err := st.CreateBlogPost(ctx, store.BlogPostParams{Title: "Draft", Published: false}); err != nil {
		t.Fatalf("CreateBlogPost: %v", err)
	}

	posts, err := st.ListBlogPosts(ctx)
	if err != nil {
		t.Fatalf("ListBlogPosts: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 published posts, got %d", len(posts))
	}
	if posts[0].Title != "Second" {
		t.Fatalf("expected newest first, got %q", posts[0].Title)
	}
	if posts[0].Author != content.BlogTeamAuthor {
		t.Fatalf("author default not applied: %q", posts[0].Author)
	}
	if posts[0].Date == "" {
		t.Fatal("display date missing")
	}
}

func TestNewsletterSubscriptionIdempotence(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	status, err := st.SubscribeNewsletter(ctx, "reader@example.com")
	if err != nil {
		t.Fatalf("SubscribeNewsletter: %v", err)
	}
	if status != store.NewsletterSubscribed {
		t.Fatalf("expected fresh subscription, got %v", status)
	}

	status, err = st.SubscribeNewsletter(ctx, "reader@example.com")
	if err != nil {
		t.Fatalf("SubscribeNewsletter duplicate: %v", err)
	}
	if status != store.NewsletterAlreadySubscribed {
		t.Fatalf("expected already-subscribed, got %v", status)
	}
}

func TestNewsletterResubscribeReactivatesRow(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	if _, err := st.SubscribeNewsletter(ctx, "reader@example.com"); err != nil {
		t.Fatalf("SubscribeNewsletter: %v", err)
	}
	if err := st.UnsubscribeNewsletter(ctx, "reader@example.com"); err != nil {
		t.Fatalf("UnsubscribeNewsletter: %v", err)
	}
	if err := st.UnsubscribeNewsletter(ctx, "ghost@example.com"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("unknown email should report ErrNotFound, got %v", err)
	}

	status, err := st.SubscribeNewsletter(ctx, "reader@example.com")
	if err != nil {
		t.Fatalf("SubscribeNewsletter after unsubscribe: %v", err)
	}
	if status != store.NewsletterResubscribed {
		t.Fatalf("expected resubscription, got %v", status)
	}
	if status.Message() != "Email resubscribed successfully" {
		t.Fatalf("unexpected message %q", status.Message())
	}

	// The same row flipped back; a duplicate insert would report a fresh
	// subscription here and double the count below.
	status, err = st.SubscribeNewsletter(ctx, "reader@example.com")
	if err != nil {
		t.Fatalf("SubscribeNewsletter again: %v", err)
	}
	if status != store.NewsletterAlreadySubscribed {
		t.Fatalf("expected already-subscribed, got %v", status)
	}
	stats, err := st.ContentStats(ctx)
	if err != nil {
		t.Fatalf("ContentStats: %v", err)
	}
	for _, row := range stats {
		if row.Name == "newsletter subscribers" && row.Total != 1 {
			t.Fatalf("expected a single subscription row, got %d", row.Total)
		}
	}
}

func TestMasterclassRegistrationReservesSeat(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	mcID, err := st.CreateMasterclass(ctx, store.MasterclassParams{
		Title: "Strategic Leadership", Date: "2026-10-01",
		TotalSeats: 2, SeatsAvailable: 1, Upcoming: true,
	})
	if err != nil {
		t.Fatalf("CreateMasterclass: %v", err)
	}

	outcome, err := st.RegisterForMasterclass(ctx, content.RegistrationRequest{
		MasterclassID:       mcID,
		FirstName:           "Ama",
		LastName:            "Mensah",
		Email:               "ama@example.com",
		SubscribeNewsletter: true,
	})
	if err != nil {
		t.Fatalf("RegisterForMasterclass: %v", err)
	}
	if outcome.RegistrationID == 0 || outcome.Reference == "" {
		t.Fatalf("incomplete outcome: %+v", outcome)
	}
	if !outcome.SeatReserved {
		t.Fatal("expected seat to be reserved")
	}

	mc, err := st.GetMasterclass(ctx, mcID)
	if err != nil {
		t.Fatalf("GetMasterclass: %v", err)
	}
	if mc.SeatsAvailable != 0 {
		t.Fatalf("seats_available = %d, want 0", mc.SeatsAvailable)
	}

	// Sold out: the registration still lands but no seat goes negative.
	outcome, err = st.RegisterForMasterclass(ctx, content.RegistrationRequest{
		MasterclassID: mcID, FirstName: "Kofi", Email: "kofi@example.com",
	})
	if err != nil {
		t.Fatalf("RegisterForMasterclass sold out: %v", err)
	}
	if outcome.SeatReserved {
		t.Fatal("seat reserved past zero")
	}
	mc, err = st.GetMasterclass(ctx, mcID)
	if err != nil {
		t.Fatalf("GetMasterclass: %v", err)
	}
	if mc.SeatsAvailable != 0 {
		t.Fatalf("seats_available went negative: %d", mc.SeatsAvailable)
	}

	// The newsletter opt-in from the first registration stuck.
	status, err := st.SubscribeNewsletter(ctx, "ama@example.com")
	if err != nil {
		t.Fatalf("SubscribeNewsletter: %v", err)
	}
	if status != store.NewsletterAlreadySubscribed {
		t.Fatalf("registration opt-in not persisted, status %v", status)
	}
}

func TestRegistrationWithUnknownMasterclassStaysUnlinked(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)

	outcome, err := st.RegisterForMasterclass(context.Background(), content.RegistrationRequest{
		MasterclassID:    42,
		MasterclassTitle: "Ghost Session",
		FirstName:        "Esi",
		Email:            "esi@example.com",
	})
	if err != nil {
		t.Fatalf("RegisterForMasterclass: %v", err)
	}
	if outcome.SeatReserved {
		t.Fatal("no seat should be reserved for an unknown masterclass")
	}
	if outcome.RegistrationID == 0 {
		t.Fatal("registration should still be stored")
	}
}

func TestMasterclassListSplitsAndDerivesThumbnails(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	if _, err := st.CreateMasterclass(ctx, store.MasterclassParams{
		Title: "Later", Date: "2026-11-01", Upcoming: true,
	}); err != nil {
		t.Fatalf("CreateMasterclass: %v", err)
	}
	if _, err := st.CreateMasterclass(ctx, store.MasterclassParams{
		Title: "Sooner", Date: "2026-09-01", Upcoming: true,
	}); err != nil {
		t.Fatalf("CreateMasterclass: %v", err)
	}
	if _, err := st.CreateMasterclass(ctx, store.MasterclassParams{
		Title: "Recorded", Date: "2025-05-01", Upcoming: false,
		VideoURL: "https://youtu.be/abc123",
	}); err != nil {
		t.Fatalf("CreateMasterclass: %v", err)
	}

	list, err := st.ListMasterclasses(ctx)
	if err != nil {
		t.Fatalf("ListMasterclasses: %v", err)
	}
	if len(list.Upcoming) != 2 || len(list.Previous) != 1 {
		t.Fatalf("unexpected split: %d upcoming, %d previous", len(list.Upcoming), len(list.Previous))
	}
	if list.Upcoming[0].Title != "Sooner" {
		t.Fatalf("upcoming not date ascending: %q first", list.Upcoming[0].Title)
	}
	recorded := list.Previous[0]
	if recorded.CoverImageURL == nil || *recorded.CoverImageURL != "https://img.youtube.com/vi/abc123/maxresdefault.jpg" {
		t.Fatalf("thumbnail not derived: %+v", recorded.CoverImageURL)
	}
	if recorded.Instructor != content.DefaultAuthor {
		t.Fatalf("instructor default not applied: %q", recorded.Instructor)
	}
}

func TestSingletonConfigsRefuseSecondInsert(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	if _, err := st.CreateSiteConfig(ctx, content.DefaultSiteConfig()); err != nil {
		t.Fatalf("CreateSiteConfig: %v", err)
	}
	if _, err := st.CreateSiteConfig(ctx, content.DefaultSiteConfig()); !errors.Is(err, store.ErrSingletonExists) {
		t.Fatalf("expected ErrSingletonExists, got %v", err)
	}

	if _, err := st.CreateHeroConfig(ctx, content.DefaultHeroConfig()); err != nil {
		t.Fatalf("CreateHeroConfig: %v", err)
	}
	if _, err := st.CreateHeroConfig(ctx, content.DefaultHeroConfig()); !errors.Is(err, store.ErrSingletonExists) {
		t.Fatalf("expected ErrSingletonExists for hero, got %v", err)
	}
}

func TestAboutConfigEmbedsOrderedChildren(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	about := content.DefaultAboutConfig()
	aboutID, err := st.CreateAboutConfig(ctx, about)
	if err != nil {
		t.Fatalf("CreateAboutConfig: %v", err)
	}

	if err := st.AddJourneyItem(ctx, store.AboutChildParams{AboutID: aboutID, SortOrder: 1}, content.JourneyItem{Title: "Senior Consultant"}); err != nil {
		t.Fatalf("AddJourneyItem: %v", err)
	}
	if err := st.AddJourneyItem(ctx, store.AboutChildParams{AboutID: aboutID, SortOrder: 0}, content.JourneyItem{Title: "Founder"}); err != nil {
		t.Fatalf("AddJourneyItem: %v", err)
	}
	if err := st.AddEducationItem(ctx, store.AboutChildParams{AboutID: aboutID}, content.EducationItem{Qualification: "MBA"}); err != nil {
		t.Fatalf("AddEducationItem: %v", err)
	}

	got, err := st.AboutConfig(ctx)
	if err != nil {
		t.Fatalf("AboutConfig: %v", err)
	}
	if len(got.Journey) != 2 || got.Journey[0].Title != "Founder" {
		t.Fatalf("journey order wrong: %+v", got.Journey)
	}
	if len(got.Education) != 1 || got.Education[0].Qualification != "MBA" {
		t.Fatalf("education missing: %+v", got.Education)
	}
	if len(got.Tags) != len(about.Tags) {
		t.Fatalf("tags round trip failed: %v vs %v", got.Tags, about.Tags)
	}
}

func TestSiteConfigMissingReportsNotFound(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)

	if _, err := st.SiteConfig(context.Background()); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPublishLegalPageDeactivatesPredecessors(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	first := "2026-01-01"
	if _, err := st.PublishLegalPage(ctx, content.LegalKindPrivacy, content.LegalPage{
		Title: "Privacy v1", LastUpdated: &first,
	}); err != nil {
		t.Fatalf("PublishLegalPage: %v", err)
	}
	second := "2026-06-01"
	if _, err := st.PublishLegalPage(ctx, content.LegalKindPrivacy, content.LegalPage{
		Title: "Privacy v2", LastUpdated: &second,
	}); err != nil {
		t.Fatalf("PublishLegalPage v2: %v", err)
	}

	page, err := st.LegalPage(ctx, content.LegalKindPrivacy)
	if err != nil {
		t.Fatalf("LegalPage: %v", err)
	}
	if page.Title != "Privacy v2" {
		t.Fatalf("expected latest page active, got %q", page.Title)
	}

	if _, err := st.LegalPage(ctx, content.LegalKindTerms); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("terms should be absent, got %v", err)
	}
}

func TestGalleryFilteringAndThumbnails(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	if _, err := st.CreateGalleryItem(ctx, store.GalleryParams{
		Title: "Workshop", MediaType: "image",
		ImageURL: "https://cdn.example.com/w.jpg", Featured: true,
	}); err != nil {
		t.Fatalf("CreateGalleryItem: %v", err)
	}
	if _, err := st.CreateGalleryItem(ctx, store.GalleryParams{
		Title: "Keynote", MediaType: "video",
		VideoURL: "https://www.youtube.com/watch?v=xyz789",
	}); err != nil {
		t.Fatalf("CreateGalleryItem: %v", err)
	}

	all, err := st.ListGallery(ctx, false)
	if err != nil {
		t.Fatalf("ListGallery: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 items, got %d", len(all))
	}
	for _, item := range all {
		if item.MediaType == "video" {
			if item.ThumbnailURL == nil || *item.ThumbnailURL != "https://img.youtube.com/vi/xyz789/maxresdefault.jpg" {
				t.Fatalf("video thumbnail not derived: %+v", item.ThumbnailURL)
			}
		}
	}

	featured, err := st.ListGallery(ctx, true)
	if err != nil {
		t.Fatalf("ListGallery featured: %v", err)
	}
	if len(featured) != 1 || featured[0].Title != "Workshop" {
		t.Fatalf("featured filter wrong: %+v", featured)
	}
}

func TestSocialLinksDefaultIcons(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	if _, err := st.CreateSocialLink(ctx, "linkedin", "https://linkedin.com/in/kambel", "", 1); err != nil {
		t.Fatalf("CreateSocialLink: %v", err)
	}
	if _, err := st.CreateSocialLink(ctx, "facebook", "https://facebook.com/kambel", "custom-icon", 0); err != nil {
		t.Fatalf("CreateSocialLink: %v", err)
	}

	links, err := st.SocialLinks(ctx)
	if err != nil {
		t.Fatalf("SocialLinks: %v", err)
	}
	if len(links) != 2 {
		t.Fatalf("expected 2 links, got %d", len(links))
	}
	if links[0].Platform != "facebook" || links[0].IconClass != "custom-icon" {
		t.Fatalf("explicit icon lost: %+v", links[0])
	}
	if links[1].IconClass != "fab fa-linkedin" {
		t.Fatalf("default icon not applied: %+v", links[1])
	}
}

func TestContentStatsCountsRows(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := st.CreatePublication(ctx, store.PublicationParams{
			Title: fmt.Sprintf("Book %d", i), Author: content.DefaultAuthor,
		}); err != nil {
			t.Fatalf("CreatePublication: %v", err)
		}
	}
	if _, err := st.CreateContactMessage(ctx, content.ContactRequest{
		Name: "Ama", Email: "ama@example.com",
	}); err != nil {
		t.Fatalf("CreateContactMessage: %v", err)
	}

	stats, err := st.ContentStats(ctx)
	if err != nil {
		t.Fatalf("ContentStats: %v", err)
	}
	byName := map[string]store.StatRow{}
	for _, row := range stats {
		byName[row.Name] = row
	}
	if byName["publications"].Total != 3 || byName["publications"].Active != 3 {
		t.Fatalf("publication counts wrong: %+v", byName["publications"])
	}
	if byName["contact messages"].Total != 1 {
		t.Fatalf("contact counts wrong: %+v", byName["contact messages"])
	}
}
