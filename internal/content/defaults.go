package content

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Fixed values substituted whenever a record or upstream omits them.
const (
	DefaultAuthor           = "Moses Agbesi Katamani"
	BlogTeamAuthor          = "Kambel Team"
	DefaultBlogIcon         = "fas fa-book"
	DefaultMasterclassTime  = "10:00 AM - 4:00 PM"
	DefaultMasterclassPrice = 299.99
)

// BlogDateLayout renders blog timestamps for the front-end.
const BlogDateLayout = "January 2, 2006"

// Type identifies a content type in the fallback-defaults registry.
type Type string

const (
	TypeBlog            Type = "blog"
	TypePublications    Type = "publications"
	TypeCategories      Type = "categories"
	TypeConsultancy     Type = "consultancy"
	TypeMasterclasses   Type = "masterclasses"
	TypeGallery         Type = "gallery"
	TypeKICTCourses     Type = "kict_courses"
	TypeSiteConfig      Type = "site_config"
	TypeHeroConfig      Type = "hero_config"
	TypeAboutConfig     Type = "about_config"
	TypeContactInfo     Type = "contact_info"
	TypeSocialLinks     Type = "social_links"
	TypePrivacyPolicy   Type = "privacy_policy"
	TypeTermsConditions Type = "terms_conditions"
)

// Fallback returns the registered default payload for a content type. Every
// read surface substitutes these when no data exists or the upstream is
// unreachable, so pages never render empty. The payload is built fresh per
// call; callers may mutate it.
func Fallback(t Type) (any, error) {
	switch t {
	case TypeBlog:
		return []BlogEntry{}, nil
	case TypePublications:
		return NewPublicationBuckets(), nil
	case TypeCategories:
		return []Category{}, nil
	case TypeConsultancy:
		return []Service{}, nil
	case TypeMasterclasses:
		return NewMasterclassList(), nil
	case TypeGallery:
		return []GalleryItem{}, nil
	case TypeKICTCourses:
		return []KICTCourse{}, nil
	case TypeSiteConfig:
		return DefaultSiteConfig(), nil
	case TypeHeroConfig:
		return DefaultHeroConfig(), nil
	case TypeAboutConfig:
		return DefaultAboutConfig(), nil
	case TypeContactInfo:
		return DefaultContactInfo(), nil
	case TypeSocialLinks:
		return []SocialLink{}, nil
	case TypePrivacyPolicy:
		return DefaultLegalPage(LegalKindPrivacy), nil
	case TypeTermsConditions:
		return DefaultLegalPage(LegalKindTerms), nil
	default:
		return nil, fmt.Errorf("no fallback registered for content type %q", t)
	}
}

// DefaultSiteConfig is the site configuration served when no row exists.
func DefaultSiteConfig() SiteConfig {
	return SiteConfig{
		SiteName:     "Kambel Consult",
		Tagline:      "Professional Consulting and Training Services",
		ContactEmail: "info@kambelconsult.com",
		ContactPhone: "+1 (555) 123-4567",
		Address:      "123 Business Street, City, State 12345",
	}
}

// DefaultHeroConfig is the landing-page hero served when no active row exists.
func DefaultHeroConfig() HeroConfig {
	return HeroConfig{
		HeroTitle:               "Welcome to Kambel Consult",
		HeroSubtitle:            "Your trusted partner in career development and business excellence",
		ProfileName:             DefaultAuthor,
		ProfileTitle:            "Chief Executive Officer",
		YearsExperience:         "15+",
		YearsLabel:              "Years Experience",
		YearsDescription:        "Professional Development",
		ClientsCount:            "5000+",
		ClientsLabel:            "Clients",
		ClientsDescription:      "Successfully Helped",
		PublicationsCount:       "50+",
		PublicationsLabel:       "Publications",
		PublicationsDescription: "Authored Works",
	}
}

// DefaultAboutConfig is the about page served when no active row exists.
func DefaultAboutConfig() AboutConfig {
	return AboutConfig{
		HeroYears:        "15+",
		HeroClients:      "500+",
		HeroPublications: "50+",
		HeroSpeaking:     "100+",
		ProfileName:      DefaultAuthor,
		ProfileTitle:     "Founder & CEO, Kambel Consult",
		BioSummary:       "A visionary leader and expert consultant with over 15 years of experience in education, career development, and business advisory services.",
		Tags:             []string{"Education Expert", "Career Coach", "Business Advisor", "Author", "Speaker"},
		PhilosophyQuote:  "Education is the foundation of all progress. Through knowledge, guidance, and strategic thinking, we can unlock the potential within every individual and organization.",
		CTATitle:         "Ready to Work Together?",
		CTADescription:   "Let's discuss how I can help you achieve your goals and unlock your potential.",
		Journey:          []JourneyItem{},
		Education:        []EducationItem{},
		Achievements:     []Achievement{},
		Speaking:         []SpeakingEngagement{},
	}
}

// DefaultContactInfo is the contact list served when no site config exists.
func DefaultContactInfo() []ContactInfoEntry {
	return []ContactInfoEntry{
		{Type: "email", Value: "info@kambelconsult.com", Icon: "fas fa-envelope"},
		{Type: "phone", Value: "+1 (555) 123-4567", Icon: "fas fa-phone"},
		{Type: "address", Value: "123 Business Street, City, State 12345", Icon: "fas fa-map-marker-alt"},
		{Type: "location", Value: "City, State 12345", Icon: "fas fa-map-pin"},
	}
}

// ContactInfoFromSiteConfig builds the contact list from a site config,
// skipping empty fields.
func ContactInfoFromSiteConfig(cfg SiteConfig) []ContactInfoEntry {
	entries := []ContactInfoEntry{}
	if cfg.ContactEmail != "" {
		entries = append(entries, ContactInfoEntry{Type: "email", Value: cfg.ContactEmail, Icon: "fas fa-envelope"})
	}
	if cfg.ContactPhone != "" {
		entries = append(entries, ContactInfoEntry{Type: "phone", Value: cfg.ContactPhone, Icon: "fas fa-phone"})
	}
	if cfg.Address != "" {
		entries = append(entries, ContactInfoEntry{Type: "address", Value: cfg.Address, Icon: "fas fa-map-marker-alt"})
	}
	if cfg.Location != "" {
		entries = append(entries, ContactInfoEntry{Type: "location", Value: cfg.Location, Icon: "fas fa-map-pin"})
	}
	return entries
}

// LegalKind distinguishes the two legal page types.
type LegalKind string

const (
	LegalKindPrivacy LegalKind = "privacy"
	LegalKindTerms   LegalKind = "terms"
)

// DefaultLegalPage is the placeholder page served until one is published.
func DefaultLegalPage(kind LegalKind) LegalPage {
	if kind == LegalKindTerms {
		return LegalPage{
			Title:    "Terms & Conditions",
			Subtitle: "Please read these terms and conditions carefully before using our services.",
			Content:  "<p>Terms and conditions content will be available soon.</p>",
		}
	}
	return LegalPage{
		Title:    "Privacy Policy",
		Subtitle: "Your privacy is important to us. This policy explains how we collect, use, and protect your information.",
		Content:  "<p>Privacy policy content will be available soon.</p>",
	}
}

// DefaultSEO is the per-page SEO payload; the page name is title-cased into
// the document titles.
func DefaultSEO(page string) SEOContent {
	title := fmt.Sprintf("Kambel Consult - %s", cases.Title(language.English).String(page))
	return SEOContent{
		Page:            page,
		Title:           title,
		MetaDescription: "Professional consulting and training services",
		MetaKeywords:    "consulting, training, career development, business strategy",
		OGTitle:         title,
		OGDescription:   "Professional consulting and training services",
	}
}

// SocialIcon returns the icon class for a platform, falling back to a
// generic share icon for unknown platforms.
func SocialIcon(platform, explicit string) string {
	if explicit != "" {
		return explicit
	}
	switch platform {
	case "facebook":
		return "fab fa-facebook"
	case "twitter":
		return "fab fa-twitter"
	case "linkedin":
		return "fab fa-linkedin"
	case "instagram":
		return "fab fa-instagram"
	case "youtube":
		return "fab fa-youtube"
	case "tiktok":
		return "fab fa-tiktok"
	default:
		return "fas fa-share-alt"
	}
}
