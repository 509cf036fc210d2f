// File path: internal/store/seed.go
package store

import (
	"context"
	"fmt"

	"github.com/friendlynotebook/vuai/internal/kb"
)

// Seed loads the starter knowledge base. Entries are upserted, so seeding
// an already-populated database refreshes the starter rows without
// touching anything added since.
func (s *Store) Seed(ctx context.Context) (int, error) {
	inserted := 0
	for _, entry := range seedEntries {
		if _, err := s.UpsertKnowledge(ctx, entry); err != nil {
			return inserted, fmt.Errorf("seed %s/%s: %w", entry.Role, entry.Topic, err)
		}
		inserted++
	}
	return inserted, nil
}

var seedEntries = []kb.KnowledgeEntry{
	{
		Role:     kb.RoleStudent,
		Category: "Academics",
		Subject:  "Python Programming",
		Topic:    "Getting Started with Python",
		Content:  "Python course materials, lab manuals, and practice problems are on the LMS under CS101. Weekly lab sessions run Tuesday and Thursday in Lab Block B. Start with the variables and control-flow notebooks before attempting the assignment sets.",
		Tags:     kb.StringList{"python", "programming", "cs101", "labs"},
	},
	{
		Role:     kb.RoleStudent,
		Category: "Academics",
		Subject:  "Data Structures",
		Topic:    "Data Structures Exam Preparation",
		Content:  "The data structures end-semester exam covers arrays, linked lists, stacks, queues, trees, and graph traversal. Previous year question papers are available in the library portal. Focus on complexity analysis and tree rotations.",
		Tags:     kb.StringList{"exams", "data", "structures", "preparation"},
	},
	{
		Role:     kb.RoleStudent,
		Category: "Campus Life",
		Subject:  "Hostel",
		Topic:    "Hostel Rules and Timings",
		Content:  "Hostel gates close at 10:30 PM on weekdays and 11:30 PM on weekends. Mess timings: breakfast 7-9 AM, lunch 12-2 PM, dinner 7-9 PM. Room maintenance requests go through the hostel office portal.",
		Tags:     kb.StringList{"hostel", "rules", "mess", "timings"},
	},
	{
		Role:     kb.RoleStudent,
		Category: "Fees",
		Subject:  "Payments",
		Topic:    "Semester Fee Payment",
		Content:  "Semester fees are payable online through the student portal before the published deadline each term. Late payment attracts a penalty after the grace week. Scholarship holders should verify their waiver reflects before paying.",
		Tags:     kb.StringList{"fees", "payment", "deadline", "scholarship"},
	},
	{
		Role:     kb.RoleFaculty,
		Category: "Teaching",
		Subject:  "Course Management",
		Topic:    "Uploading Course Materials",
		Content:  "Course materials upload through the faculty LMS dashboard. Supported formats are PDF, PPTX, and video links. Materials published before Sunday midnight appear in the student view for the coming week.",
		Tags:     kb.StringList{"lms", "materials", "upload", "courses"},
	},
	{
		Role:     kb.RoleFaculty,
		Category: "Evaluation",
		Subject:  "Grading",
		Topic:    "Internal Assessment Submission",
		Content:  "Internal assessment marks must be entered in the evaluation portal within ten working days of the test. The moderation committee reviews distributions before results are frozen. Corrections after freezing need HoD approval.",
		Tags:     kb.StringList{"grading", "assessment", "marks", "moderation"},
	},
	{
		Role:     kb.RoleFaculty,
		Category: "Research",
		Subject:  "Grants",
		Topic:    "Research Grant Applications",
		Content:  "Internal seed grant applications open each January and July. Proposals go through the research office with a budget sheet and two-page summary. External grant submissions need institutional sign-off at least one week before the agency deadline.",
		Tags:     kb.StringList{"research", "grants", "proposals", "funding"},
	},
	{
		Role:     kb.RoleAdmin,
		Category: "Administration",
		Subject:  "Admissions",
		Topic:    "Admission Cycle Overview",
		Content:  "The admission cycle runs April through July. Application verification, merit list publication, and seat allotment are tracked in the admissions module. Daily intake reports are generated at 6 PM.",
		Tags:     kb.StringList{"admissions", "applications", "merit", "reports"},
	},
	{
		Role:     kb.RoleAdmin,
		Category: "Finance",
		Subject:  "Fee Reports",
		Topic:    "Fee Collection Reporting",
		Content:  "Fee collection summaries are available per department, per programme, and per term in the finance module. Defaulter lists refresh nightly. Reconciliation with the bank statement happens on the 1st and 16th of each month.",
		Tags:     kb.StringList{"fees", "finance", "reports", "reconciliation"},
	},
	{
		Role:     kb.RoleAdmin,
		Category: "Operations",
		Subject:  "Infrastructure",
		Topic:    "Facility Maintenance Requests",
		Content:  "Maintenance requests route through the operations desk with a priority tag. Electrical and network faults are serviced within 24 hours; civil works are scheduled weekly. Escalations go to the estate officer.",
		Tags:     kb.StringList{"maintenance", "facilities", "operations", "requests"},
	},
}
