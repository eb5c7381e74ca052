package services

import (
	"context"
	"math/rand/v2"
	"regexp"
	"strconv"
	"testing"

	"github.com/dmitrijs2005/greencareers/internal/common"
	"github.com/dmitrijs2005/greencareers/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticIdentities map[string]*models.Identity

func (s staticIdentities) GetIdentity(_ context.Context, id string) (*models.Identity, error) {
	if i, ok := s[id]; ok {
		return i, nil
	}
	return nil, common.ErrUserNotFound
}

func newAdvice(ids staticIdentities) *AdviceService {
	return NewAdviceService(ids, rand.New(rand.NewPCG(1, 2)))
}

var adviceFixtures = staticIdentities{
	"cashier-eco":  {ID: "cashier-eco", JobTitle: "Cashier", Interests: "eco, gardening"},
	"cashier":      {ID: "cashier", JobTitle: "Retail Associate"},
	"teacher":      {ID: "teacher", JobTitle: "High School Teacher"},
	"other":        {ID: "other", JobTitle: "Accountant", Interests: "Green energy"},
	"account-only": {ID: "account-only", Email: "a@b.com", PasswordHash: "x"},
}

func titles[T any](items []T, title func(T) string) []string {
	out := make([]string, 0, len(items))
	for _, i := range items {
		out = append(out, title(i))
	}
	return out
}

func TestRiskScore(t *testing.T) {
	cases := map[string]int{
		"Cashier":            75,
		"senior RETAIL lead": 75,
		"Teacher":            50,
		"Adult Educator":     50,
		"Plumber":            60,
	}
	for title, want := range cases {
		got, explanation := RiskScore(title)
		assert.Equal(t, want, got, title)
		assert.NotEmpty(t, explanation)
	}
}

func TestAdviceService_Risk(t *testing.T) {
	s := newAdvice(adviceFixtures)

	r, err := s.Risk(context.Background(), "cashier-eco")
	require.NoError(t, err)
	assert.Equal(t, &models.RiskAssessment{
		IdentityID:  "cashier-eco",
		JobTitle:    "Cashier",
		Score:       75,
		Explanation: "Cashier jobs face high automation risk due to self-checkout technology and online retail.",
	}, r)
}

func TestAdviceService_UnknownOrProfileless(t *testing.T) {
	s := newAdvice(adviceFixtures)
	ctx := context.Background()

	for _, id := range []string{"missing", "account-only"} {
		_, err := s.Risk(ctx, id)
		assert.ErrorIs(t, err, common.ErrUserNotFound)
		_, err = s.GreenJobs(ctx, id)
		assert.ErrorIs(t, err, common.ErrUserNotFound)
		_, err = s.ReskillingCourses(ctx, id)
		assert.ErrorIs(t, err, common.ErrUserNotFound)
		_, err = s.SideHustles(ctx, id)
		assert.ErrorIs(t, err, common.ErrUserNotFound)
		_, err = s.Chat(ctx, id, "hello")
		assert.ErrorIs(t, err, common.ErrUserNotFound)
	}
}

func TestAdviceService_GreenJobs(t *testing.T) {
	s := newAdvice(adviceFixtures)
	ctx := context.Background()
	title := func(j models.GreenJob) string { return j.Title }

	cases := map[string][]string{
		"cashier-eco": {"Solar Sales Support Specialist", "Eco-Retail Coordinator"},
		"cashier":     {"Solar Sales Support Specialist", "Community Recycling Program Assistant"},
		"teacher":     {"Environmental Education Program Manager", "Sustainability Training Coordinator"},
		"other":       {"Green Building Consultant Assistant", "Renewable Energy Project Administrator"},
	}
	for id, want := range cases {
		jobs, err := s.GreenJobs(ctx, id)
		require.NoError(t, err)
		assert.ElementsMatch(t, want, titles(jobs, title), id)
		for _, j := range jobs {
			assert.GreaterOrEqual(t, j.GrowthRate, 5)
			assert.LessOrEqual(t, j.GrowthRate, 25)
		}
	}
}

func TestAdviceService_GreenJobsGrowthRange(t *testing.T) {
	s := newAdvice(adviceFixtures)

	for i := 0; i < 50; i++ {
		jobs, err := s.GreenJobs(context.Background(), "teacher")
		require.NoError(t, err)
		for _, j := range jobs {
			switch j.Title {
			case "Environmental Education Program Manager":
				assert.True(t, j.GrowthRate >= 10 && j.GrowthRate <= 18, j.GrowthRate)
			case "Sustainability Training Coordinator":
				assert.True(t, j.GrowthRate >= 12 && j.GrowthRate <= 25, j.GrowthRate)
			}
		}
	}
}

func TestAdviceService_ReskillingCourses(t *testing.T) {
	s := newAdvice(adviceFixtures)
	ctx := context.Background()
	title := func(c models.ReskillingCourse) string { return c.Title }

	cases := map[string][]string{
		"cashier-eco": {"Coursera: Sustainable Business Practices", "edX: Solar Energy Fundamentals"},
		"cashier":     {"Coursera: Sustainable Business Practices", "Coursera: Introduction to Sales"},
		"teacher":     {"Coursera: Climate Change Education", "edX: Urban Sustainability"},
		"other":       {"Coursera: Circular Economy", "edX: Introduction to Environmental Science"},
	}
	for id, want := range cases {
		courses, err := s.ReskillingCourses(ctx, id)
		require.NoError(t, err)
		assert.ElementsMatch(t, want, titles(courses, title), id)
	}
}

var earningsRe = regexp.MustCompile(`^\$(\d+) - \$(\d+)/month$`)

func TestAdviceService_SideHustles(t *testing.T) {
	s := newAdvice(adviceFixtures)
	ctx := context.Background()
	title := func(h models.SideHustle) string { return h.Title }

	cases := map[string][]string{
		"cashier-eco": {"Etsy Eco-Crafts", "Green Blogging / Social Media Content"},
		"cashier":     {"Online Reselling (Sustainable Goods)", "Local Errand Service (using sustainable transport)"},
		"teacher":     {"Online Environmental Tutoring", "Workshop Facilitator (Sustainable Living)"},
		"other":       {"Freelance Green Copywriting", "Sustainable Product Affiliate Marketing"},
	}
	for id, want := range cases {
		hustles, err := s.SideHustles(ctx, id)
		require.NoError(t, err)
		assert.ElementsMatch(t, want, titles(hustles, title), id)

		for _, h := range hustles {
			m := earningsRe.FindStringSubmatch(h.Earnings)
			require.NotNil(t, m, h.Earnings)
			low, _ := strconv.Atoi(m[1])
			high, _ := strconv.Atoi(m[2])
			assert.GreaterOrEqual(t, low, 100)
			assert.LessOrEqual(t, high, 7000)
		}
	}
}

func TestAdviceService_Chat(t *testing.T) {
	s := newAdvice(adviceFixtures)
	ctx := context.Background()

	cases := []struct {
		id, message, want string
	}{
		{"cashier-eco", "What should I do next?", "Considering your Cashier background and potential interest in green fields, a good next step could be exploring roles like Solar Sales Support or Eco-Retail Coordinator. Look into courses like 'Sustainable Business Practices'."},
		{"teacher", "any GREEN JOB ideas", "You could leverage your skills in roles like Environmental Education Program Manager or Sustainability Training Coordinator."},
		{"other", "where can I learn more", "Look into courses related to your specific interests within the green sector, such as circular economy or environmental science basics."},
		{"cashier", "side hustle please", "Ideas include selling eco-friendly crafts on Etsy or starting a green-themed blog, especially if you have related interests."},
		{"teacher", "will I be automated", "Based on your role as a High School Teacher, the automation risk score is 50%. Teaching roles have moderate automation risk, with technology assisting but human interaction remaining key."},
		{"other", "hello", defaultChatReply},
	}
	for _, tc := range cases {
		got, err := s.Chat(ctx, tc.id, tc.message)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, tc.message)
	}
}

func TestAdviceService_ChatEmptyMessage(t *testing.T) {
	s := newAdvice(adviceFixtures)

	for _, msg := range []string{"", "   "} {
		_, err := s.Chat(context.Background(), "cashier", msg)
		assert.ErrorIs(t, err, common.ErrInvalidMessage)
	}
	// message is validated before the identity lookup
	_, err := s.Chat(context.Background(), "missing", " ")
	assert.ErrorIs(t, err, common.ErrInvalidMessage)
}

func TestNewAdviceService_DefaultRNG(t *testing.T) {
	s := NewAdviceService(adviceFixtures, nil)
	jobs, err := s.GreenJobs(context.Background(), "other")
	require.NoError(t, err)
	assert.Len(t, jobs, 2)
}
