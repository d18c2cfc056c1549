package services

import (
	"testing"

	"github.com/RasuriVIGNESH/peerconnect/internal/models"
	"github.com/RasuriVIGNESH/peerconnect/pkg/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountMembers_IncludesLead(t *testing.T) {
	env := newTestEnv(t)
	lead := env.createUser(t, "lead")
	project := env.createProject(t, lead.ID, 4)

	size, err := env.teams.CountMembers(env.db, project.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, size, "a fresh project has the lead as its only member")

	member := env.createUser(t, "member")
	env.addMember(t, project.ID, member.ID)

	size, err = env.teams.CountMembers(env.db, project.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, size)
}

func TestAddMember(t *testing.T) {
	env := newTestEnv(t)
	lead := env.createUser(t, "lead")
	other := env.createUser(t, "other")
	project := env.createProject(t, lead.ID, 3)

	member, err := env.teams.AddMember(project.ID, other.ID, models.RoleMember, lead.ID)
	require.NoError(t, err)
	assert.Equal(t, other.ID, member.UserID)
	assert.Equal(t, models.RoleMember, member.Role)

	// Adding the same user twice conflicts.
	_, err = env.teams.AddMember(project.ID, other.ID, models.RoleMember, lead.ID)
	assert.True(t, response.IsConflict(err))

	// Only the lead can add members.
	third := env.createUser(t, "third")
	_, err = env.teams.AddMember(project.ID, third.ID, models.RoleMember, other.ID)
	appErr, ok := err.(*response.AppError)
	require.True(t, ok)
	assert.Equal(t, 403, appErr.Code)
}

func TestAddMember_FullTeam(t *testing.T) {
	env := newTestEnv(t)
	lead := env.createUser(t, "lead")
	project := env.createProject(t, lead.ID, 2)

	first := env.createUser(t, "first")
	_, err := env.teams.AddMember(project.ID, first.ID, models.RoleMember, lead.ID)
	require.NoError(t, err)

	second := env.createUser(t, "second")
	_, err = env.teams.AddMember(project.ID, second.ID, models.RoleMember, lead.ID)
	assert.True(t, response.IsConflict(err), "lead plus one member fills a team of 2")

	size, err := env.teams.CountMembers(env.db, project.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, size, "failed add must not leave a membership row behind")
}

func TestRemoveMember(t *testing.T) {
	env := newTestEnv(t)
	lead := env.createUser(t, "lead")
	member := env.createUser(t, "member")
	project := env.createProject(t, lead.ID, 4)
	env.addMember(t, project.ID, member.ID)

	// Only the lead may remove.
	err := env.teams.RemoveMember(project.ID, member.ID, member.ID)
	appErr, ok := err.(*response.AppError)
	require.True(t, ok)
	assert.Equal(t, 403, appErr.Code)

	require.NoError(t, env.teams.RemoveMember(project.ID, member.ID, lead.ID))

	size, err := env.teams.CountMembers(env.db, project.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, size)

	// Removing again is not found.
	err = env.teams.RemoveMember(project.ID, member.ID, lead.ID)
	appErr, ok = err.(*response.AppError)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.Code)
}

func TestRemoveMember_LeadRoleProtected(t *testing.T) {
	env := newTestEnv(t)
	lead := env.createUser(t, "lead")
	colead := env.createUser(t, "colead")
	project := env.createProject(t, lead.ID, 4)
	require.NoError(t, env.db.Create(&models.ProjectMember{
		ProjectID: project.ID,
		UserID:    colead.ID,
		Role:      models.RoleLead,
	}).Error)

	err := env.teams.RemoveMember(project.ID, colead.ID, lead.ID)
	assert.True(t, response.IsConflict(err))
}

func TestUpdateMemberRole(t *testing.T) {
	env := newTestEnv(t)
	lead := env.createUser(t, "lead")
	member := env.createUser(t, "member")
	project := env.createProject(t, lead.ID, 4)
	env.addMember(t, project.ID, member.ID)

	// Promotion to LEAD is not available through this path.
	_, err := env.teams.UpdateMemberRole(project.ID, member.ID, models.RoleLead, lead.ID)
	assert.True(t, response.IsConflict(err))

	_, err = env.teams.UpdateMemberRole(project.ID, member.ID, models.ProjectRole("ADMIN"), lead.ID)
	appErr, ok := err.(*response.AppError)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.Code)

	updated, err := env.teams.UpdateMemberRole(project.ID, member.ID, models.RoleMember, lead.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleMember, updated.Role)
}

func TestLeaveProject(t *testing.T) {
	env := newTestEnv(t)
	lead := env.createUser(t, "lead")
	member := env.createUser(t, "member")
	project := env.createProject(t, lead.ID, 4)
	env.addMember(t, project.ID, member.ID)

	// The lead cannot leave their own project.
	err := env.teams.LeaveProject(project.ID, lead.ID)
	assert.True(t, response.IsConflict(err))

	require.NoError(t, env.teams.LeaveProject(project.ID, member.ID))

	// A non-member leaving is not found.
	err = env.teams.LeaveProject(project.ID, member.ID)
	appErr, ok := err.(*response.AppError)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.Code)
}

func TestGetProjectMembers_MembersOnly(t *testing.T) {
	env := newTestEnv(t)
	lead := env.createUser(t, "lead")
	member := env.createUser(t, "member")
	outsider := env.createUser(t, "outsider")
	project := env.createProject(t, lead.ID, 4)
	env.addMember(t, project.ID, member.ID)

	members, err := env.teams.GetProjectMembers(project.ID, lead.ID)
	require.NoError(t, err)
	assert.Len(t, members, 1, "the lead has no explicit membership row")

	_, err = env.teams.GetProjectMembers(project.ID, member.ID)
	require.NoError(t, err)

	_, err = env.teams.GetProjectMembers(project.ID, outsider.ID)
	appErr, ok := err.(*response.AppError)
	require.True(t, ok)
	assert.Equal(t, 403, appErr.Code)
}
