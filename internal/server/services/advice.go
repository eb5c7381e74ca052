package services

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"

	"github.com/dmitrijs2005/greencareers/internal/common"
	"github.com/dmitrijs2005/greencareers/internal/server/models"
)

// maxSuggestions caps every recommendation list.
const maxSuggestions = 2

type IdentityGetter interface {
	GetIdentity(ctx context.Context, id string) (*models.Identity, error)
}

// AdviceService serves canned career content picked by substring matches
// against the profile's job title and interests.
type AdviceService struct {
	identities IdentityGetter

	mu  sync.Mutex
	rng *rand.Rand
}

// NewAdviceService uses rng for shuffling and randomized figures; nil seeds
// a fresh PCG source.
func NewAdviceService(identities IdentityGetter, rng *rand.Rand) *AdviceService {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &AdviceService{identities: identities, rng: rng}
}

type jobFamily int

const (
	familyOther jobFamily = iota
	familyRetail
	familyEducation
)

func classify(jobTitle string) jobFamily {
	t := strings.ToLower(jobTitle)
	switch {
	case strings.Contains(t, "cashier") || strings.Contains(t, "retail"):
		return familyRetail
	case strings.Contains(t, "teacher") || strings.Contains(t, "educator"):
		return familyEducation
	default:
		return familyOther
	}
}

func containsAny(text string, keywords ...string) bool {
	t := strings.ToLower(text)
	for _, k := range keywords {
		if strings.Contains(t, k) {
			return true
		}
	}
	return false
}

// RiskScore is the automation risk for jobTitle with a one-line explanation.
func RiskScore(jobTitle string) (int, string) {
	switch classify(jobTitle) {
	case familyRetail:
		return 75, "Cashier jobs face high automation risk due to self-checkout technology and online retail."
	case familyEducation:
		return 50, "Teaching roles have moderate automation risk, with technology assisting but human interaction remaining key."
	default:
		return 60, "This job has a moderate automation risk, typical for many roles impacted by technology."
	}
}

func (s *AdviceService) profile(ctx context.Context, id string) (*models.Identity, error) {
	identity, err := s.identities.GetIdentity(ctx, id)
	if err != nil {
		return nil, err
	}
	if !identity.HasProfile() {
		return nil, common.ErrUserNotFound
	}
	return identity, nil
}

func (s *AdviceService) Risk(ctx context.Context, id string) (*models.RiskAssessment, error) {
	identity, err := s.profile(ctx, id)
	if err != nil {
		return nil, err
	}
	score, explanation := RiskScore(identity.JobTitle)
	return &models.RiskAssessment{
		IdentityID:  identity.ID,
		JobTitle:    identity.JobTitle,
		Score:       score,
		Explanation: explanation,
	}, nil
}

func (s *AdviceService) GreenJobs(ctx context.Context, id string) ([]models.GreenJob, error) {
	identity, err := s.profile(ctx, id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var jobs []models.GreenJob
	switch classify(identity.JobTitle) {
	case familyRetail:
		jobs = append(jobs, models.GreenJob{
			Title:       "Solar Sales Support Specialist",
			GrowthRate:  s.between(10, 20),
			SkillMatch:  "Uses your customer service and sales skills",
			Description: "Assist customers with solar panel purchases and installation scheduling.",
			Salary:      "$45,000 - $60,000",
		})
		if containsAny(identity.Interests, "environment", "eco") {
			jobs = append(jobs, models.GreenJob{
				Title:       "Eco-Retail Coordinator",
				GrowthRate:  s.between(8, 15),
				SkillMatch:  "Uses your inventory and customer interaction experience",
				Description: "Manage sustainable product lines and assist customers in an eco-friendly retail setting.",
				Salary:      "$42,000 - $55,000",
			})
		} else {
			jobs = append(jobs, models.GreenJob{
				Title:       "Community Recycling Program Assistant",
				GrowthRate:  s.between(5, 10),
				SkillMatch:  "Uses your organizational and public interaction skills",
				Description: "Help manage local recycling initiatives and educate the public.",
				Salary:      "$35,000 - $45,000",
			})
		}
	case familyEducation:
		jobs = append(jobs,
			models.GreenJob{
				Title:       "Environmental Education Program Manager",
				GrowthRate:  s.between(10, 18),
				SkillMatch:  "Leverages your teaching and program management abilities",
				Description: "Develop and deliver educational programs on environmental topics for schools or community groups.",
				Salary:      "$50,000 - $70,000",
			},
			models.GreenJob{
				Title:       "Sustainability Training Coordinator",
				GrowthRate:  s.between(12, 25),
				SkillMatch:  "Uses your training and communication skills",
				Description: "Coordinate and deliver training sessions for businesses on sustainable practices.",
				Salary:      "$55,000 - $75,000",
			},
		)
	default:
		jobs = append(jobs,
			models.GreenJob{
				Title:       "Green Building Consultant Assistant",
				GrowthRate:  s.between(10, 20),
				SkillMatch:  "Adaptable to new industry knowledge",
				Description: "Assist in consulting projects for sustainable construction and building practices.",
				Salary:      "$40,000 - $55,000",
			},
			models.GreenJob{
				Title:       "Renewable Energy Project Administrator",
				GrowthRate:  s.between(15, 25),
				SkillMatch:  "Uses organizational and administrative skills",
				Description: "Provide administrative support for solar, wind, or other renewable energy projects.",
				Salary:      "$45,000 - $60,000",
			},
		)
	}

	return pick(s.rng, jobs), nil
}

func (s *AdviceService) ReskillingCourses(ctx context.Context, id string) ([]models.ReskillingCourse, error) {
	identity, err := s.profile(ctx, id)
	if err != nil {
		return nil, err
	}

	var courses []models.ReskillingCourse
	switch classify(identity.JobTitle) {
	case familyRetail:
		courses = append(courses, models.ReskillingCourse{
			Title:    "Coursera: Sustainable Business Practices",
			Provider: "Coursera",
			Duration: "6 weeks",
			Skills:   "Sustainability, customer engagement, business ethics",
			Link:     "https://www.coursera.org/courses?query=sustainable%20business%20practices",
		})
		if containsAny(identity.Interests, "environment", "eco", "green") {
			courses = append(courses, models.ReskillingCourse{
				Title:    "edX: Solar Energy Fundamentals",
				Provider: "edX",
				Duration: "8 weeks",
				Skills:   "Renewable energy, solar technology, basic sales principles",
				Link:     "https://www.edx.org/learn/solar-energy",
			})
		} else {
			courses = append(courses, models.ReskillingCourse{
				Title:    "Coursera: Introduction to Sales",
				Provider: "Coursera",
				Duration: "4 weeks",
				Skills:   "Sales techniques, customer relationship management",
				Link:     "https://www.coursera.org/courses?query=introduction%20to%20sales",
			})
		}
	case familyEducation:
		courses = append(courses,
			models.ReskillingCourse{
				Title:    "Coursera: Climate Change Education",
				Provider: "Coursera",
				Duration: "7 weeks",
				Skills:   "Environmental education, climate science communication, pedagogy",
				Link:     "https://www.coursera.org/courses?query=climate%20change%20education",
			},
			models.ReskillingCourse{
				Title:    "edX: Urban Sustainability",
				Provider: "edX",
				Duration: "9 weeks",
				Skills:   "Urban planning, environmental policy, sustainable development",
				Link:     "https://www.edx.org/learn/sustainable-development",
			},
		)
	default:
		courses = append(courses,
			models.ReskillingCourse{
				Title:    "Coursera: Circular Economy",
				Provider: "Coursera",
				Duration: "5 weeks",
				Skills:   "Circular economy principles, sustainable design",
				Link:     "https://www.coursera.org/courses?query=circular%20economy",
			},
			models.ReskillingCourse{
				Title:    "edX: Introduction to Environmental Science",
				Provider: "edX",
				Duration: "6 weeks",
				Skills:   "Environmental systems, ecological principles",
				Link:     "https://www.edx.org/learn/environmental-science",
			},
		)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return pick(s.rng, courses), nil
}

func (s *AdviceService) SideHustles(ctx context.Context, id string) ([]models.SideHustle, error) {
	identity, err := s.profile(ctx, id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var hustles []models.SideHustle
	switch classify(identity.JobTitle) {
	case familyRetail:
		if containsAny(identity.Interests, "environment", "eco") {
			hustles = append(hustles,
				models.SideHustle{
					Title:       "Etsy Eco-Crafts",
					Description: "Sell handmade sustainable crafts (e.g., upcycled items, eco-friendly candles) on Etsy.",
					Skills:      "Creativity, crafting, online selling, customer service",
					Earnings:    s.earnings(300, 800, 1000, 2500),
				},
				models.SideHustle{
					Title:       "Green Blogging / Social Media Content",
					Description: "Create content about sustainability, zero waste, or eco-friendly living.",
					Skills:      "Writing, research, social media marketing",
					Earnings:    s.earnings(100, 300, 500, 1500),
				},
			)
		} else {
			hustles = append(hustles,
				models.SideHustle{
					Title:       "Online Reselling (Sustainable Goods)",
					Description: "Buy and resell second-hand clothing or vintage items online.",
					Skills:      "Eye for value, online marketplaces, photography, customer service",
					Earnings:    s.earnings(400, 900, 1200, 2800),
				},
				models.SideHustle{
					Title:       "Local Errand Service (using sustainable transport)",
					Description: "Offer delivery or errand services in your neighborhood using a bike or walking.",
					Skills:      "Reliability, organization, knowledge of local area, physical fitness",
					Earnings:    s.earnings(200, 500, 800, 2000),
				},
			)
		}
	case familyEducation:
		hustles = append(hustles,
			models.SideHustle{
				Title:       "Online Environmental Tutoring",
				Description: "Offer tutoring in science or environmental subjects to students online.",
				Skills:      "Subject matter expertise, online teaching tools, communication",
				Earnings:    s.earnings(300, 800, 1000, 2500),
			},
			models.SideHustle{
				Title:       "Workshop Facilitator (Sustainable Living)",
				Description: "Lead local workshops on topics like composting, urban gardening, or DIY eco-products.",
				Skills:      "Teaching, presentation, subject matter knowledge",
				Earnings:    s.earnings(200, 600, 700, 1800),
			},
		)
	default:
		hustles = append(hustles,
			models.SideHustle{
				Title:       "Freelance Green Copywriting",
				Description: "Write articles, blog posts, or marketing content for environmentally focused businesses.",
				Skills:      "Writing, research, understanding of green industries",
				Earnings:    s.earnings(400, 1000, 1500, 3500),
			},
			models.SideHustle{
				Title:       "Sustainable Product Affiliate Marketing",
				Description: "Promote eco-friendly products online and earn commission.",
				Skills:      "Online marketing, content creation, product reviews",
				Earnings:    s.earnings(100, 400, 600, 2000),
			},
		)
	}

	return pick(s.rng, hustles), nil
}

const defaultChatReply = "I'm a demo AI mentor. I can tell you about automation risk, green job ideas, reskilling courses, or side hustles based on your profile."

// Chat answers message with a template chosen by the first matching keyword
// group, tailored to the profile's job family.
func (s *AdviceService) Chat(ctx context.Context, id, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", common.ErrInvalidMessage
	}

	identity, err := s.profile(ctx, id)
	if err != nil {
		return "", err
	}

	msg := strings.ToLower(message)
	title := identity.JobTitle
	family := classify(title)

	byFamily := func(retail, education, other string) string {
		switch family {
		case familyRetail:
			return retail
		case familyEducation:
			return education
		default:
			return other
		}
	}

	switch {
	case containsAny(msg, "next", "future", "path", "transition"):
		return byFamily(
			fmt.Sprintf("Considering your %s background and potential interest in green fields, a good next step could be exploring roles like Solar Sales Support or Eco-Retail Coordinator. Look into courses like 'Sustainable Business Practices'.", title),
			fmt.Sprintf("For an %s, you could transition into environmental education or sustainability training. Courses on climate change education or urban sustainability could be beneficial.", title),
			fmt.Sprintf("Based on your %s role, exploring green jobs in areas like green building or renewable energy project administration could be a good direction. Consider introductory courses in environmental science.", title),
		), nil
	case containsAny(msg, "green job", "eco job", "sustainable career"):
		return byFamily(
			"Green jobs like Solar Sales Support Specialist or Eco-Retail Coordinator are good fits for someone with your skills, especially if you have interests in the environment.",
			"You could leverage your skills in roles like Environmental Education Program Manager or Sustainability Training Coordinator.",
			"Many industries need green skills now. Roles in renewable energy, sustainable consulting, or environmental program management are growing.",
		), nil
	case containsAny(msg, "reskilling", "courses", "learn", "train"):
		return byFamily(
			"Consider online courses such as 'Sustainable Business Practices' (Coursera) or 'Solar Energy Fundamentals' (edX) to build new skills.",
			"Courses like 'Climate Change Education' (Coursera) or 'Urban Sustainability' (edX) can enhance your profile for green roles.",
			"Look into courses related to your specific interests within the green sector, such as circular economy or environmental science basics.",
		), nil
	case containsAny(msg, "side hustle", "extra income", "part-time"):
		return byFamily(
			"Ideas include selling eco-friendly crafts on Etsy or starting a green-themed blog, especially if you have related interests.",
			"You could offer online tutoring in environmental subjects or lead workshops on sustainable living.",
			"Consider freelance green copywriting or sustainable product affiliate marketing.",
		), nil
	case containsAny(msg, "risk", "automate", "obsolete"):
		score, explanation := RiskScore(title)
		return fmt.Sprintf("Based on your role as a %s, the automation risk score is %d%%. %s", title, score, explanation), nil
	}

	return defaultChatReply, nil
}

// between returns a uniform int in [lo, hi]. Callers hold s.mu.
func (s *AdviceService) between(lo, hi int) int {
	return lo + s.rng.IntN(hi-lo+1)
}

// earnings renders a monthly range whose ends are each randomly doubled.
// Callers hold s.mu.
func (s *AdviceService) earnings(lowMin, lowMax, highMin, highMax int) string {
	low := s.between(lowMin, lowMax) * (1 + s.rng.IntN(2))
	high := s.between(highMin, highMax) * (1 + s.rng.IntN(2))
	return fmt.Sprintf("$%d - $%d/month", low, high)
}

func pick[T any](rng *rand.Rand, items []T) []T {
	rng.Shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })
	if len(items) > maxSuggestions {
		items = items[:maxSuggestions]
	}
	return items
}
