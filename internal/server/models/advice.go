package models

// RiskAssessment scores how exposed a job title is to automation, 0 to 100.
type RiskAssessment struct {
	IdentityID  string
	JobTitle    string
	Score       int
	Explanation string
}

type GreenJob struct {
	Title       string
	GrowthRate  int
	SkillMatch  string
	Description string
	Salary      string
}

type ReskillingCourse struct {
	Title    string
	Provider string
	Duration string
	Skills   string
	Link     string
}

type SideHustle struct {
	Title       string
	Description string
	Skills      string
	Earnings    string
}
