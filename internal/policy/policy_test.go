package policy

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pixelforge/studio-console/internal/models"
)

func TestSectionsFor(t *testing.T) {
	admin := SectionsFor(models.RoleAdmin)
	require.Equal(t, Section("overview"), admin[0])
	require.Contains(t, admin, SectionApprovals)
	require.Contains(t, admin, SectionSystemHealth)
	require.NotContains(t, admin, SectionTasks)

	client := SectionsFor(models.RoleClient)
	require.Equal(t, []Section{SectionOverview, SectionProjects, SectionInvoices, SectionMessages}, client)

	employee := SectionsFor(models.RoleEmployee)
	require.Contains(t, employee, SectionTasks)
	require.Contains(t, employee, SectionSchedule)
	require.NotContains(t, employee, SectionApprovals)

	require.Nil(t, SectionsFor(models.RoleNone))
	require.Nil(t, SectionsFor(models.Role("ghost")))
}

func TestSectionsForReturnsCopy(t *testing.T) {
	first := SectionsFor(models.RoleClient)
	first[0] = Section("tampered")

	second := SectionsFor(models.RoleClient)
	require.Equal(t, SectionOverview, second[0])
}

func TestCanAccess(t *testing.T) {
	tests := []struct {
		role   models.Role
		action Action
		want   bool
	}{
		{models.RoleAdmin, ActionAddBlogPost, true},
		{models.RoleAdmin, ActionApproveRequest, true},
		{models.RoleAdmin, ActionRejectRequest, true},
		{models.RoleAdmin, ActionAdvanceTask, false},
		{models.RoleEmployee, ActionAdvanceTask, true},
		{models.RoleEmployee, ActionAddSubmission, true},
		{models.RoleEmployee, ActionApproveRequest, false},
		{models.RoleClient, ActionAddBlogPost, false},
		{models.RoleClient, ActionAdvanceTask, false},
		{models.RoleNone, ActionAdvanceTask, false},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, CanAccess(tt.role, tt.action),
			"role %s action %s", tt.role, tt.action)
	}
}

func TestLoginPathFor(t *testing.T) {
	require.Equal(t, "/employee-login", LoginPathFor(models.RoleEmployee))
	require.Equal(t, "/login", LoginPathFor(models.RoleAdmin))
	require.Equal(t, "/login", LoginPathFor(models.RoleClient))
	require.Equal(t, "/login", LoginPathFor(models.RoleNone))
}
