package content

// Category is a publication category as served by the authority.
type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Publication is the authority's flat publication record. Category carries
// the category name, null when the publication is uncategorized.
type Publication struct {
	ID            int64    `json:"id"`
	Title         string   `json:"title"`
	Author        string   `json:"author"`
	Description   string   `json:"description"`
	Pages         int      `json:"pages"`
	Price         float64  `json:"price"`
	CoverImageURL *string  `json:"cover_image_url"`
	PurchaseLink  string   `json:"purchase_link"`
	Category      *string  `json:"category"`
}

// Book is the browser-facing publication shape produced by the reshaper.
type Book struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	Author        string  `json:"author"`
	Price         float64 `json:"price"`
	Description   string  `json:"description"`
	Category      string  `json:"category"`
	Pages         int     `json:"pages"`
	ISBN          string  `json:"isbn"`
	CoverImageURL *string `json:"cover_image_url"`
	PurchaseLink  string  `json:"purchase_link"`
}

// PublicationBuckets groups books into the four browser categories.
// Slices are always non-nil so the JSON encodes as arrays, never null.
type PublicationBuckets struct {
	CourseBooks        []Book `json:"course_books"`
	GuidanceBooks      []Book `json:"guidance_books"`
	InspirationalBooks []Book `json:"inspirational_books"`
	Literature         []Book `json:"literature"`
}

// NewPublicationBuckets returns an empty bucket set with all slices allocated.
func NewPublicationBuckets() PublicationBuckets {
	return PublicationBuckets{
		CourseBooks:        []Book{},
		GuidanceBooks:      []Book{},
		InspirationalBooks: []Book{},
		Literature:         []Book{},
	}
}

// ServiceFeature is one bullet under a consultancy service.
type ServiceFeature struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Service is a consultancy service with its active features.
type Service struct {
	ID            int64            `json:"id"`
	Name          string           `json:"name"`
	ServiceType   string           `json:"service_type"`
	Description   string           `json:"description"`
	CoverImageURL *string          `json:"cover_image_url"`
	Icon          string           `json:"icon"`
	Features      []ServiceFeature `json:"features"`
}

// BlogPost is a published blog entry. Date is pre-formatted for display
// ("January 2, 2006").
type BlogPost struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	Content       string  `json:"content"`
	Excerpt       string  `json:"excerpt"`
	Author        string  `json:"author"`
	Date          string  `json:"date"`
	CoverImageURL *string `json:"cover_image_url"`
}

// BlogEntry is the browser-facing blog shape with the presentation extras
// the front-end expects on top of BlogPost.
type BlogEntry struct {
	BlogPost
	Category string   `json:"category"`
	Icon     string   `json:"icon"`
	Tags     []string `json:"tags"`
}

// Masterclass is the authority's masterclass record.
type Masterclass struct {
	ID             int64   `json:"id"`
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	Date           string  `json:"date"`
	Instructor     string  `json:"instructor"`
	Duration       string  `json:"duration"`
	Price          float64 `json:"price"`
	TotalSeats     int     `json:"total_seats"`
	SeatsAvailable int     `json:"seats_available"`
	CoverImageURL  *string `json:"cover_image_url"`
	VideoURL       *string `json:"video_url"`
}

// MasterclassList splits masterclasses into upcoming and previous sessions.
type MasterclassList struct {
	Upcoming []Masterclass `json:"upcoming"`
	Previous []Masterclass `json:"previous"`
}

// NewMasterclassList returns an empty list with both slices allocated.
func NewMasterclassList() MasterclassList {
	return MasterclassList{Upcoming: []Masterclass{}, Previous: []Masterclass{}}
}

// MasterclassSession is the browser-facing masterclass shape, adding the
// session time the front-end renders.
type MasterclassSession struct {
	Masterclass
	Time string `json:"time"`
}

// MasterclassSessions is the reshaped upcoming/previous split.
type MasterclassSessions struct {
	Upcoming []MasterclassSession `json:"upcoming"`
	Previous []MasterclassSession `json:"previous"`
}

// RegistrationRequest is the masterclass registration payload accepted by
// both servers.
type RegistrationRequest struct {
	MasterclassID       int64  `json:"masterclass_id,omitempty"`
	MasterclassTitle    string `json:"masterclass_title,omitempty"`
	FirstName           string `json:"first_name"`
	LastName            string `json:"last_name"`
	Email               string `json:"email"`
	Phone               string `json:"phone,omitempty"`
	Company             string `json:"company,omitempty"`
	ExperienceYears     string `json:"experience_years,omitempty"`
	Motivation          string `json:"motivation,omitempty"`
	SubscribeNewsletter bool   `json:"subscribe_newsletter,omitempty"`
}

// RegistrationResult reports the outcome of a registration attempt.
type RegistrationResult struct {
	Success        bool   `json:"success"`
	Message        string `json:"message"`
	RegistrationID int64  `json:"registration_id,omitempty"`
	Reference      string `json:"reference,omitempty"`
}

// ContactRequest is the contact form payload.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// NewsletterRequest is the newsletter subscription payload.
type NewsletterRequest struct {
	Email string `json:"email"`
}

// SiteConfig is the singleton site configuration payload.
type SiteConfig struct {
	SiteName     string  `json:"site_name"`
	Tagline      string  `json:"tagline"`
	ContactEmail string  `json:"contact_email"`
	ContactPhone string  `json:"contact_phone"`
	Address      string  `json:"address"`
	Location     string  `json:"location,omitempty"`
	LogoURL      *string `json:"logo_url"`
	FaviconURL   *string `json:"favicon_url"`
}

// HeroConfig is the landing-page hero singleton payload.
type HeroConfig struct {
	HeroTitle               string  `json:"hero_title"`
	HeroSubtitle            string  `json:"hero_subtitle"`
	ProfileName             string  `json:"profile_name"`
	ProfileTitle            string  `json:"profile_title"`
	ProfilePictureURL       *string `json:"profile_picture_url"`
	YearsExperience         string  `json:"years_experience"`
	YearsLabel              string  `json:"years_label"`
	YearsDescription        string  `json:"years_description"`
	ClientsCount            string  `json:"clients_count"`
	ClientsLabel            string  `json:"clients_label"`
	ClientsDescription      string  `json:"clients_description"`
	PublicationsCount       string  `json:"publications_count"`
	PublicationsLabel       string  `json:"publications_label"`
	PublicationsDescription string  `json:"publications_description"`
}

// JourneyItem is one professional journey entry on the about page.
type JourneyItem struct {
	Title        string `json:"title"`
	Organization string `json:"organization"`
	Period       string `json:"period"`
	Description  string `json:"description"`
	Icon         string `json:"icon"`
}

// EducationItem is one qualification on the about page.
type EducationItem struct {
	Qualification string `json:"qualification"`
	Institution   string `json:"institution"`
	Year          string `json:"year"`
	Icon          string `json:"icon"`
}

// Achievement is one achievement entry on the about page.
type Achievement struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Year        string `json:"year"`
	Icon        string `json:"icon"`
}

// SpeakingEngagement is one speaking entry on the about page.
type SpeakingEngagement struct {
	Title    string `json:"title"`
	Event    string `json:"event"`
	Date     string `json:"date"`
	Location string `json:"location"`
}

// AboutConfig is the about-page singleton payload with its nested lists.
type AboutConfig struct {
	HeroYears         string               `json:"hero_years"`
	HeroClients       string               `json:"hero_clients"`
	HeroPublications  string               `json:"hero_publications"`
	HeroSpeaking      string               `json:"hero_speaking"`
	ProfileName       string               `json:"profile_name"`
	ProfileTitle      string               `json:"profile_title"`
	ProfilePictureURL *string              `json:"profile_picture_url"`
	BioSummary        string               `json:"bio_summary"`
	Tags              []string             `json:"tags"`
	PhilosophyQuote   string               `json:"philosophy_quote"`
	CTATitle          string               `json:"cta_title"`
	CTADescription    string               `json:"cta_description"`
	Journey           []JourneyItem        `json:"journey"`
	Education         []EducationItem      `json:"education"`
	Achievements      []Achievement        `json:"achievements"`
	Speaking          []SpeakingEngagement `json:"speaking"`
}

// ContactInfoEntry is one row of the contact-info list.
type ContactInfoEntry struct {
	Type  string `json:"type"`
	Value string `json:"value"`
	Icon  string `json:"icon"`
}

// SocialLink is a footer social media link.
type SocialLink struct {
	Platform  string `json:"platform"`
	URL       string `json:"url"`
	IconClass string `json:"icon_class"`
	Order     int    `json:"order"`
}

// SEOContent is the per-page SEO metadata payload.
type SEOContent struct {
	Page            string  `json:"page"`
	Title           string  `json:"title"`
	MetaDescription string  `json:"meta_description"`
	MetaKeywords    string  `json:"meta_keywords"`
	OGTitle         string  `json:"og_title"`
	OGDescription   string  `json:"og_description"`
	OGImageURL      *string `json:"og_image_url"`
}

// LegalPage is a privacy policy or terms & conditions payload. LastUpdated
// is a "2006-01-02" date, null when never published.
type LegalPage struct {
	Title       string  `json:"title"`
	Subtitle    string  `json:"subtitle"`
	Content     string  `json:"content"`
	LastUpdated *string `json:"last_updated"`
}

// GalleryItem is one gallery entry, image or video.
type GalleryItem struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Caption      string  `json:"caption"`
	Description  string  `json:"description"`
	MediaType    string  `json:"media_type"`
	MediaURL     *string `json:"media_url"`
	ThumbnailURL *string `json:"thumbnail_url"`
	IsFeatured   bool    `json:"is_featured"`
	Order        int     `json:"order"`
	CreatedAt    *string `json:"created_at"`
}

// KICTCourse is a training course record. The catalog is currently empty
// but the shape is fixed for the front-end.
type KICTCourse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Duration    string  `json:"duration"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Instructor  string  `json:"instructor"`
	StartDate   string  `json:"start_date"`
}
