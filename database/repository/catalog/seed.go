package catalogRepo

import (
	"time"

	"servicehub/models"
)

const day = 24 * time.Hour

// DefaultServices is the catalog the application boots with. Its aggregates
// include reviews that predate the listed reviewsList entries.
func DefaultServices(now time.Time) []models.Service {
	created := now.Add(-90 * day)
	services := []models.Service{
		{
			ID:           1,
			Title:        "Professional Web Development",
			Description:  "Custom websites and web applications built with modern technologies",
			Category:     "tech",
			Price:        2500,
			Rating:       4.9,
			Reviews:      127,
			Location:     "New York, NY",
			Image:        "/web-dev-workspace.png",
			Provider:     models.Provider{ID: 2, Name: "Jane Provider", Location: "New York, NY"},
			ProviderID:   2,
			DeliveryTime: "2-4 weeks",
			Features: []string{
				"Responsive design for all devices",
				"SEO optimization included",
				"3 rounds of revisions",
				"Post-launch support for 30 days",
			},
			Views: 342,
			ReviewsList: []models.Review{
				{ID: 1, Name: "John Smith", Rating: 5, Comment: "Excellent work! Very professional and delivered on time.", Date: now.Add(-14 * day)},
				{ID: 2, Name: "Sarah Johnson", Rating: 5, Comment: "Great communication throughout the project. Highly recommend!", Date: now.Add(-30 * day)},
			},
			CreatedAt: created,
			UpdatedAt: created,
			Version:   1,
		},
		{
			ID:           2,
			Title:        "Home Cleaning Service",
			Description:  "Deep cleaning for homes and apartments",
			Category:     "home",
			Price:        150,
			Rating:       4.8,
			Reviews:      89,
			Location:     "Los Angeles, CA",
			Image:        "/clean-modern-home-interior-with-cleaning-supplies.jpg",
			Provider:     models.Provider{ID: 3, Name: "Clean Pro"},
			ProviderID:   3,
			DeliveryTime: "Same day",
			Features:     []string{"Eco-friendly products", "Insured and bonded", "Flexible scheduling", "Satisfaction guaranteed"},
			Views:        256,
			ReviewsList: []models.Review{
				{ID: 3, Name: "Mike Davis", Rating: 5, Comment: "My house has never looked better!", Date: now.Add(-7 * day)},
			},
			CreatedAt: created,
			UpdatedAt: created,
			Version:   1,
		},
		{
			ID:           3,
			Title:        "Logo & Brand Identity Design",
			Description:  "Professional logo design and complete brand identity packages",
			Category:     "design",
			Price:        800,
			Rating:       4.9,
			Reviews:      156,
			Location:     "Chicago, IL",
			Image:        "/creative-design-workspace-with-logo-sketches-and-c.jpg",
			Provider:     models.Provider{ID: 4, Name: "Creative Studio"},
			ProviderID:   4,
			DeliveryTime: "1-2 weeks",
			Features: []string{
				"Multiple design concepts",
				"Unlimited revisions",
				"All file formats included",
				"Brand style guide",
				"Social media kit",
			},
			Views: 412,
			ReviewsList: []models.Review{
				{ID: 4, Name: "Emily Chen", Rating: 5, Comment: "Amazing designer! Captured our vision perfectly.", Date: now.Add(-3 * day)},
			},
			CreatedAt: created,
			UpdatedAt: created,
			Version:   1,
		},
		{
			ID:           4,
			Title:        "Business Consulting",
			Description:  "Strategic business consulting for startups and small businesses",
			Category:     "business",
			Price:        500,
			Rating:       4.7,
			Reviews:      64,
			Location:     "Boston, MA",
			Image:        "/professional-business-meeting-with-charts-and-stra.jpg",
			Provider:     models.Provider{ID: 5, Name: "Business Advisors"},
			ProviderID:   5,
			DeliveryTime: "Flexible",
			Features:     []string{"Market analysis", "Growth strategy", "Financial planning", "Ongoing support"},
			Views:        189,
			ReviewsList:  []models.Review{},
			CreatedAt:    created,
			UpdatedAt:    created,
			Version:      1,
		},
		{
			ID:           5,
			Title:        "Math & Science Tutoring",
			Description:  "One-on-one tutoring for high school and college students",
			Category:     "education",
			Price:        75,
			Rating:       4.9,
			Reviews:      203,
			Location:     "Austin, TX",
			Image:        "/student-learning-with-books-and-educational-materi.jpg",
			Provider:     models.Provider{ID: 6, Name: "Tutor Pro"},
			ProviderID:   6,
			DeliveryTime: "Flexible",
			Features:     []string{"Personalized lesson plans", "Homework help", "Test preparation", "Progress tracking"},
			Views:        567,
			ReviewsList:  []models.Review{},
			CreatedAt:    created,
			UpdatedAt:    created,
			Version:      1,
		},
		{
			ID:           6,
			Title:        "Mobile App Development",
			Description:  "iOS and Android app development services",
			Category:     "tech",
			Price:        5000,
			Rating:       4.8,
			Reviews:      45,
			Location:     "San Francisco, CA",
			Image:        "/mobile-app-development-with-smartphone-and-code-in.jpg",
			Provider:     models.Provider{ID: 7, Name: "App Developers Inc"},
			ProviderID:   7,
			DeliveryTime: "6-8 weeks",
			Features:     []string{"Native or cross-platform", "UI/UX design included", "App store submission", "6 months support"},
			Views:        298,
			ReviewsList:  []models.Review{},
			CreatedAt:    created,
			UpdatedAt:    created,
			Version:      1,
		},
	}
	for i := range services {
		services[i].Status = models.ServiceApproved
	}
	return services
}

// MaxServiceID returns the highest service id in services.
func MaxServiceID(services []models.Service) int64 {
	var max int64
	for _, s := range services {
		if s.ID > max {
			max = s.ID
		}
	}
	return max
}

// MaxReviewID returns the highest review id across services.
func MaxReviewID(services []models.Service) int64 {
	var max int64
	for _, s := range services {
		for _, r := range s.ReviewsList {
			if r.ID > max {
				max = r.ID
			}
		}
	}
	return max
}
