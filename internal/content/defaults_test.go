package content

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestFallbackCoversEveryType(t *testing.T) {
	t.Parallel()

	types := []Type{
		TypeBlog, TypePublications, TypeCategories, TypeConsultancy,
		TypeMasterclasses, TypeGallery, TypeKICTCourses, TypeSiteConfig,
		TypeHeroConfig, TypeAboutConfig, TypeContactInfo, TypeSocialLinks,
		TypePrivacyPolicy, TypeTermsConditions,
	}
	for _, typ := range types {
		payload, err := Fallback(typ)
		if err != nil {
			t.Fatalf("Fallback(%s): %v", typ, err)
		}
		data, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal fallback for %s: %v", typ, err)
		}
		if string(data) == "null" {
			t.Fatalf("fallback for %s encodes as null", typ)
		}
	}
}

func TestFallbackUnknownType(t *testing.T) {
	t.Parallel()

	if _, err := Fallback(Type("bogus")); err == nil {
		t.Fatal("expected error for unregistered content type")
	}
}

func TestPublicationBucketsEncodeAsArrays(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(NewPublicationBuckets())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, key := range []string{"course_books", "guidance_books", "inspirational_books", "literature"} {
		if !strings.Contains(string(data), `"`+key+`":[]`) {
			t.Fatalf("bucket %s not an empty array: %s", key, data)
		}
	}
}

func TestDefaultSEOTitleCasesPage(t *testing.T) {
	t.Parallel()

	seo := DefaultSEO("about")
	if seo.Title != "Kambel Consult - About" {
		t.Fatalf("unexpected title %q", seo.Title)
	}
	if seo.OGTitle != seo.Title {
		t.Fatalf("og_title %q diverges from title %q", seo.OGTitle, seo.Title)
	}
	if seo.Page != "about" {
		t.Fatalf("page not preserved: %q", seo.Page)
	}
}

func TestSocialIconDefaults(t *testing.T) {
	t.Parallel()

	if got := SocialIcon("linkedin", ""); got != "fab fa-linkedin" {
		t.Fatalf("linkedin icon: %q", got)
	}
	if got := SocialIcon("myspace", ""); got != "fas fa-share-alt" {
		t.Fatalf("unknown platform icon: %q", got)
	}
	if got := SocialIcon("twitter", "custom-class"); got != "custom-class" {
		t.Fatalf("explicit icon not preserved: %q", got)
	}
}

func TestContactInfoFromSiteConfigSkipsEmptyFields(t *testing.T) {
	t.Parallel()

	entries := ContactInfoFromSiteConfig(SiteConfig{ContactEmail: "a@b.com"})
	if len(entries) != 1 {
		t.Fatalf("expected single entry, got %d", len(entries))
	}
	if entries[0].Type != "email" || entries[0].Value != "a@b.com" {
		t.Fatalf("unexpected entry %+v", entries[0])
	}
}

func TestDefaultLegalPages(t *testing.T) {
	t.Parallel()

	privacy := DefaultLegalPage(LegalKindPrivacy)
	if privacy.Title != "Privacy Policy" || privacy.LastUpdated != nil {
		t.Fatalf("unexpected privacy default %+v", privacy)
	}
	terms := DefaultLegalPage(LegalKindTerms)
	if terms.Title != "Terms & Conditions" {
		t.Fatalf("unexpected terms default %+v", terms)
	}
}
