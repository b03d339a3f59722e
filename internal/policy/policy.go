// Package policy maps a role to the dashboard sections and mutating actions
// it may reach. It is pure: no state, no storage access, so the mapping can
// be tested independently of any rendering or transport concern.
package policy

import "github.com/pixelforge/studio-console/internal/models"

// Section identifies one dashboard screen.
type Section string

const (
	SectionOverview      Section = "overview"
	SectionUsers         Section = "users"
	SectionProjects      Section = "projects"
	SectionBlog          Section = "blog"
	SectionPortfolio     Section = "portfolio"
	SectionMedia         Section = "media"
	SectionActivity      Section = "activity"
	SectionApprovals     Section = "approvals"
	SectionAnalytics     Section = "analytics"
	SectionSystemHealth  Section = "system-health"
	SectionInvoices      Section = "invoices"
	SectionMessages      Section = "messages"
	SectionTasks         Section = "tasks"
	SectionSubmissions   Section = "submissions"
	SectionSchedule      Section = "schedule"
	SectionAnnouncements Section = "announcements"
)

// Action identifies one mutating operation.
type Action string

const (
	ActionAddBlogPost      Action = "add_blog_post"
	ActionAddPortfolioItem Action = "add_portfolio_item"
	ActionApproveRequest   Action = "approve_request"
	ActionRejectRequest    Action = "reject_request"
	ActionAdvanceTask      Action = "advance_task"
	ActionAddSubmission    Action = "add_submission"
)

var sectionsByRole = map[models.Role][]Section{
	models.RoleAdmin: {
		SectionOverview,
		SectionUsers,
		SectionProjects,
		SectionBlog,
		SectionPortfolio,
		SectionMedia,
		SectionActivity,
		SectionApprovals,
		SectionAnalytics,
		SectionSystemHealth,
	},
	models.RoleClient: {
		SectionOverview,
		SectionProjects,
		SectionInvoices,
		SectionMessages,
	},
	models.RoleEmployee: {
		SectionOverview,
		SectionTasks,
		SectionSubmissions,
		SectionSchedule,
		SectionAnnouncements,
	},
}

var actionsByRole = map[models.Role][]Action{
	models.RoleAdmin: {
		ActionAddBlogPost,
		ActionAddPortfolioItem,
		ActionApproveRequest,
		ActionRejectRequest,
	},
	models.RoleEmployee: {
		ActionAdvanceTask,
		ActionAddSubmission,
	},
}

// SectionsFor returns the ordered dashboard sections a role may view.
// Unknown roles, including none, see nothing.
func SectionsFor(role models.Role) []Section {
	sections, ok := sectionsByRole[role]
	if !ok {
		return nil
	}
	out := make([]Section, len(sections))
	copy(out, sections)
	return out
}

// CanAccess reports whether a role may invoke a mutating action.
func CanAccess(role models.Role, action Action) bool {
	for _, a := range actionsByRole[role] {
		if a == action {
			return true
		}
	}
	return false
}

// LoginPathFor returns the entry point a mismatched or unauthenticated caller
// is redirected to when targeting a dashboard owned by the given role.
func LoginPathFor(role models.Role) string {
	if role == models.RoleEmployee {
		return "/employee-login"
	}
	return "/login"
}
