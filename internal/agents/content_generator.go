package agents

import "github.com/shubh-37/website-section-generator/internal/models"

var sectionTemplates = map[Bucket][]models.SectionTemplate{
	BucketFood: {
		{
			Title:       "Hero Section",
			Type:        "Landing Page Component",
			Description: "A compelling hero section featuring your bakery's signature breads and pastries. Includes a prominent call-to-action button directing visitors to your menu and ordering system.",
			Features:    []string{"Hero Image", "CTA Button", "Headline Text"},
		},
		{
			Title:       "Menu & Products",
			Type:        "Product Showcase",
			Description: "Display your bakery's delicious offerings with high-quality images, descriptions, and pricing. Organized by categories like breads, pastries, and custom cakes.",
			Features:    []string{"Product Grid", "Category Filters", "Pricing Display"},
		},
		{
			Title:       "Contact & Location",
			Type:        "Contact Section",
			Description: "Display your bakery's location, hours of operation, and contact information. Include an embedded map and easy ways for customers to reach you for orders.",
			Features:    []string{"Contact Form", "Map Integration", "Hours & Info"},
		},
	},
	BucketPortfolio: {
		{
			Title:       "Hero Portfolio",
			Type:        "Visual Showcase",
			Description: "A stunning hero section showcasing your best work with a dynamic image gallery and professional introduction to capture visitors' attention immediately.",
			Features:    []string{"Image Gallery", "Professional Bio", "Contact CTA"},
		},
		{
			Title:       "Work Gallery",
			Type:        "Portfolio Grid",
			Description: "An organized display of your photography work, categorized by style or subject matter. Includes filtering options and lightbox viewing experience.",
			Features:    []string{"Filterable Grid", "Lightbox View", "Category Tags"},
		},
		{
			Title:       "About & Services",
			Type:        "Information Section",
			Description: "Tell your story as a photographer and outline the services you offer. Include testimonials and your unique approach to photography.",
			Features:    []string{"Personal Story", "Service List", "Client Testimonials"},
		},
	},
	BucketCommerce: {
		{
			Title:       "Hero Banner",
			Type:        "E-commerce Hero",
			Description: "An eye-catching hero section featuring your best-selling products with promotional banners and clear navigation to your product catalog.",
			Features:    []string{"Product Showcase", "Promotional Banners", "Shop Now CTA"},
		},
		{
			Title:       "Featured Products",
			Type:        "Product Grid",
			Description: "Highlight your most popular or newest products with high-quality images, pricing, and quick add-to-cart functionality for immediate purchases.",
			Features:    []string{"Product Cards", "Add to Cart", "Price Display"},
		},
		{
			Title:       "Customer Reviews",
			Type:        "Social Proof",
			Description: "Build trust with potential customers by showcasing authentic reviews and testimonials from satisfied buyers of your products.",
			Features:    []string{"Review Cards", "Star Ratings", "Customer Photos"},
		},
	},
	BucketGeneric: {
		{
			Title:       "Hero Section",
			Type:        "Landing Page Component",
			Description: "A compelling introduction to your business or project with clear messaging about what you offer and why visitors should care.",
			Features:    []string{"Hero Image", "Value Proposition", "Call to Action"},
		},
		{
			Title:       "About Us",
			Type:        "Content Section",
			Description: "Share your story, mission, and what makes your business unique. Build trust and connection with your audience through authentic storytelling.",
			Features:    []string{"Company Story", "Mission Statement", "Team Information"},
		},
		{
			Title:       "Contact",
			Type:        "Contact Section",
			Description: "Make it easy for visitors to get in touch with you. Include multiple contact methods and clear information about how to reach you.",
			Features:    []string{"Contact Form", "Contact Details", "Location Info"},
		},
	},
}

// ContentGeneratorAgent turns an idea into its three section templates
type ContentGeneratorAgent struct {
	categorizer *CategorizerAgent
}

func NewContentGeneratorAgent(categorizer *CategorizerAgent) *ContentGeneratorAgent {
	return &ContentGeneratorAgent{categorizer: categorizer}
}

// GenerateSections classifies the idea and returns the bucket together with
// a fresh copy of its templates, in display order.
func (a *ContentGeneratorAgent) GenerateSections(idea string) (Bucket, []models.SectionTemplate) {
	bucket := a.categorizer.Categorize(idea)
	return bucket, Templates(bucket)
}

// Templates returns a copy of the templates for a bucket. Unknown buckets get
// the generic set.
func Templates(bucket Bucket) []models.SectionTemplate {
	src, ok := sectionTemplates[bucket]
	if !ok {
		src = sectionTemplates[BucketGeneric]
	}

	out := make([]models.SectionTemplate, len(src))
	for i, tpl := range src {
		features := make([]string, len(tpl.Features))
		copy(features, tpl.Features)
		tpl.Features = features
		out[i] = tpl
	}
	return out
}
