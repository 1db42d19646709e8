package persistence

import "github.com/example/ladder/internal/ports/primary"

// DemoData returns a fresh copy of the built-in career matrix. It doubles
// as the seed payload for `ladder seed --demo` and as the fallback dataset,
// so the two paths can never drift apart.
//
// Several capability descriptions carry "As <LEVEL>" shorthand on purpose;
// both the seed path and the fallback provider expand them before serving.
func DemoData() *primary.MatrixData {
	return &primary.MatrixData{
		JobLevels: []*primary.JobLevel{
			{
				ID:                 "l1-l2",
				Name:               "L1 / L2",
				PrimaryTitle:       "Software Engineer",
				DescriptionSummary: "Learning the craft. Delivers well-scoped tasks with support from the team.",
			},
			{
				ID:                 "l3",
				Name:               "L3",
				PrimaryTitle:       "Software Engineer",
				DescriptionSummary: "A solid, self-sufficient engineer. Owns features end to end.",
			},
			{
				ID:                 "l4",
				Name:               "L4",
				PrimaryTitle:       "Senior Software Engineer",
				DescriptionSummary: "Drives complex projects and raises the level of everyone around them.",
			},
			{
				ID:                 "tl1",
				Name:               "TL1",
				PrimaryTitle:       "Tech Lead",
				DescriptionSummary: "Leads the technical direction of a team.",
				TrajectoryNote:     "Parallel to L4; people and project leadership over individual output.",
			},
			{
				ID:                 "em1",
				Name:               "EM1",
				PrimaryTitle:       "Engineering Manager",
				DescriptionSummary: "Responsible for a team's delivery, health and growth.",
				TrajectoryNote:     "Management track entry point.",
			},
		},
		Criteria: []*primary.Criterion{
			{ID: "craft-technical-expertise", Category: "Craft", SubCategory: "Technical Expertise"},
			{ID: "craft-quality", Category: "Craft", SubCategory: "Quality"},
			{ID: "craft-delivery", Category: "Craft", SubCategory: "Delivery"},
			{ID: "impact-scope", Category: "Impact", SubCategory: "Scope"},
			{ID: "impact-initiative", Category: "Impact", SubCategory: "Initiative"},
			{ID: "collaboration-communication", Category: "Collaboration", SubCategory: "Communication"},
			{ID: "collaboration-mentoring", Category: "Collaboration", SubCategory: "Mentoring"},
		},
		Capabilities: []*primary.Capability{
			{JobLevelID: "l1-l2", CriterionID: "craft-technical-expertise", Description: "Learns the team's stack and tools. Delivers small, well-defined changes with guidance."},
			{JobLevelID: "l3", CriterionID: "craft-technical-expertise", Description: "Works confidently across the team's codebase. Picks sensible designs for feature-sized problems."},
			{JobLevelID: "l4", CriterionID: "craft-technical-expertise", Description: "Designs systems spanning several components. Anticipates failure modes and operational cost."},
			{JobLevelID: "tl1", CriterionID: "craft-technical-expertise", Description: "As L4, and sets the technical direction for the team."},
			{JobLevelID: "l1-l2", CriterionID: "craft-quality", Description: "Writes tests for own changes. Responds to review feedback constructively."},
			{JobLevelID: "l3", CriterionID: "craft-quality", Description: "Ships well-tested, observable code. Leaves the codebase better than found."},
			{JobLevelID: "l4", CriterionID: "craft-quality", Description: "As L3, and establishes quality practices the team adopts."},
			{JobLevelID: "l1-l2", CriterionID: "craft-delivery", Description: "Breaks tasks into reviewable steps. Asks for help early when stuck."},
			{JobLevelID: "l3", CriterionID: "craft-delivery", Description: "Delivers features predictably. Flags scope risk before it bites."},
			{JobLevelID: "l4", CriterionID: "craft-delivery", Description: "Runs multi-person projects. Keeps delivery on track through changing requirements."},
			{JobLevelID: "em1", CriterionID: "craft-delivery", Description: "Accountable for the team's delivery. Balances roadmap pressure against sustainability."},
			{JobLevelID: "l3", CriterionID: "impact-scope", Description: "Impact at the level of a feature or service area."},
			{JobLevelID: "l4", CriterionID: "impact-scope", Description: "Impact at the level of the whole team's domain."},
			{JobLevelID: "tl1", CriterionID: "impact-scope", Description: "As L4, and accountable for outcomes across the team's projects."},
			{JobLevelID: "em1", CriterionID: "impact-scope", Description: "Impact through the team: hiring, growth and priorities."},
			{JobLevelID: "l3", CriterionID: "impact-initiative", Description: "Spots problems worth solving and raises them with proposals."},
			{JobLevelID: "l4", CriterionID: "impact-initiative", Description: "Drives improvements beyond assigned work without being asked."},
			{JobLevelID: "l1-l2", CriterionID: "collaboration-communication", Description: "Communicates status clearly. Writes useful commit messages and PR descriptions."},
			{JobLevelID: "l3", CriterionID: "collaboration-communication", Description: "Explains technical trade-offs to non-experts. Documents decisions."},
			{JobLevelID: "l4", CriterionID: "collaboration-communication", Description: "As L3, and communicates across teams; aligns stakeholders on contentious calls."},
			{JobLevelID: "em1", CriterionID: "collaboration-communication", Description: "Keeps the team and its stakeholders aligned. Delivers hard messages with care."},
			{JobLevelID: "l3", CriterionID: "collaboration-mentoring", Description: "Mentors interns and new joiners through onboarding."},
			{JobLevelID: "l4", CriterionID: "collaboration-mentoring", Description: "Grows other engineers deliberately through reviews, pairing and feedback."},
			{JobLevelID: "tl1", CriterionID: "collaboration-mentoring", Description: "As L4, and develops the team's future leads."},
		},
		EditHistory: []*primary.EditHistoryEntry{
			{Date: "2024-01-15", Description: "Initial version of the matrix."},
			{Date: "2024-03-05", Description: "Clarified the Craft criteria after calibration feedback."},
			{Date: "2024-03-20", Description: "Added the TL and EM tracks."},
		},
		Overview: primary.Overview{
			Goals: []string{
				"Give every engineer a clear picture of what growth looks like here.",
				"Make promotion and calibration decisions consistent and explainable.",
				"Value technical and leadership tracks equally.",
			},
			Principles: []string{
				"Levels describe sustained behaviour, not single highlights.",
				"Higher levels include the expectations of the levels below.",
				"The matrix is a map, not a checklist.",
			},
		},
	}
}
