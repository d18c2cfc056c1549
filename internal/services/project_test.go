package services

import (
	"testing"
	"time"

	"github.com/RasuriVIGNESH/peerconnect/internal/models"
	"github.com/RasuriVIGNESH/peerconnect/pkg/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectCreate(t *testing.T) {
	env := newTestEnv(t)
	lead := env.createUser(t, "lead")

	project, err := env.projects.Create(lead.ID, &CreateProjectRequest{
		Title:       "Campus Marketplace",
		Description: "a second-hand marketplace for students",
		MaxTeamSize: 5,
		Skills:      []string{"Go", "React", " go "},
		TechStack:   []string{"Go", "React", "PostgreSQL"},
	})
	require.NoError(t, err)
	assert.Equal(t, lead.ID, project.LeadID)
	assert.Equal(t, models.ProjectRecruiting, project.Status)
	assert.Len(t, project.Skills, 2, "duplicate skill names collapse to one link")
}

func TestProjectCreate_SingleConnectionPool(t *testing.T) {
	// The test pool has exactly one connection, so skill resolution inside
	// the create transaction must run on the transaction itself. Resolving
	// through the pool would block forever waiting for the connection the
	// transaction already holds.
	env := newTestEnv(t)
	lead := env.createUser(t, "lead")

	done := make(chan error, 1)
	go func() {
		_, err := env.projects.Create(lead.ID, &CreateProjectRequest{
			Title:       "Pinned Pool",
			Description: "y",
			MaxTeamSize: 3,
			Skills:      []string{"Brand New Skill"},
		})
		done <- err
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("project create blocked on the connection pool")
	}

	skill, err := env.skills.ResolveByName("Brand New Skill")
	require.NoError(t, err)
	assert.Equal(t, 1, skill.ProjectsCount)
}

func TestProjectCreate_Validation(t *testing.T) {
	env := newTestEnv(t)
	lead := env.createUser(t, "lead")

	for _, size := range []int{0, 1, 21} {
		_, err := env.projects.Create(lead.ID, &CreateProjectRequest{
			Title:       "x",
			Description: "y",
			MaxTeamSize: size,
			Skills:      []string{"Go"},
		})
		appErr, ok := err.(*response.AppError)
		require.True(t, ok, "size %d", size)
		assert.Equal(t, 400, appErr.Code, "size %d", size)
	}

	_, err := env.projects.Create(lead.ID, &CreateProjectRequest{
		Title:       "x",
		Description: "y",
		MaxTeamSize: 3,
		Skills:      []string{},
	})
	appErr, ok := err.(*response.AppError)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.Code)
}

func TestProjectUpdate(t *testing.T) {
	env := newTestEnv(t)
	lead := env.createUser(t, "lead")
	member := env.createUser(t, "member")
	project := env.createProject(t, lead.ID, 4)
	env.addMember(t, project.ID, member.ID)

	// Lead only.
	title := "New Title"
	_, err := env.projects.Update(project.ID, member.ID, &UpdateProjectRequest{Title: &title})
	appErr, ok := err.(*response.AppError)
	require.True(t, ok)
	assert.Equal(t, 403, appErr.Code)

	// Max team size cannot drop below the current team size (lead + 1).
	tooSmall := 1
	_, err = env.projects.Update(project.ID, lead.ID, &UpdateProjectRequest{MaxTeamSize: &tooSmall})
	appErr, ok = err.(*response.AppError)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.Code)

	belowCurrent := 2
	_, err = env.projects.Update(project.ID, lead.ID, &UpdateProjectRequest{MaxTeamSize: &belowCurrent})
	require.NoError(t, err, "max size equal to the current team size is allowed")

	status := string(models.ProjectInProgress)
	updated, err := env.projects.Update(project.ID, lead.ID, &UpdateProjectRequest{
		Title:  &title,
		Status: &status,
	})
	require.NoError(t, err)
	assert.Equal(t, "New Title", updated.Title)
	assert.Equal(t, models.ProjectInProgress, updated.Status)
}

func TestProjectUpdate_ReplaceSkills(t *testing.T) {
	env := newTestEnv(t)
	lead := env.createUser(t, "lead")
	project := env.createProject(t, lead.ID, 4)

	updated, err := env.projects.Update(project.ID, lead.ID, &UpdateProjectRequest{
		Skills: []string{"Python", "Django"},
	})
	require.NoError(t, err)
	require.Len(t, updated.Skills, 2)

	// The old skill's project counter went back down.
	goSkill, err := env.skills.ResolveByName("Go")
	require.NoError(t, err)
	assert.Equal(t, 0, goSkill.ProjectsCount)

	pySkill, err := env.skills.ResolveByName("Python")
	require.NoError(t, err)
	assert.Equal(t, 1, pySkill.ProjectsCount)
}

func TestProjectDelete(t *testing.T) {
	env := newTestEnv(t)
	lead := env.createUser(t, "lead")
	member := env.createUser(t, "member")
	project := env.createProject(t, lead.ID, 4)
	env.addMember(t, project.ID, member.ID)

	invitee := env.createUser(t, "invitee")
	_, err := env.invitations.Send(project.ID, lead.ID, &SendInvitationRequest{InvitedUserID: invitee.ID})
	require.NoError(t, err)

	// In-progress projects cannot be deleted.
	require.NoError(t, env.db.Model(&models.Project{}).
		Where("id = ?", project.ID).
		Update("status", models.ProjectInProgress).Error)
	err = env.projects.Delete(project.ID, lead.ID)
	assert.True(t, response.IsConflict(err))

	require.NoError(t, env.db.Model(&models.Project{}).
		Where("id = ?", project.ID).
		Update("status", models.ProjectCancelled).Error)
	require.NoError(t, env.projects.Delete(project.ID, lead.ID))

	// Dependent rows are gone with the project.
	var members, invitations int64
	env.db.Model(&models.ProjectMember{}).Where("project_id = ?", project.ID).Count(&members)
	env.db.Model(&models.ProjectInvitation{}).Where("project_id = ?", project.ID).Count(&invitations)
	assert.EqualValues(t, 0, members)
	assert.EqualValues(t, 0, invitations)

	_, err = env.projects.GetByID(project.ID)
	appErr, ok := err.(*response.AppError)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.Code)
}

func TestProjectDiscover(t *testing.T) {
	env := newTestEnv(t)
	lead := env.createUser(t, "lead")
	viewer := env.createUser(t, "viewer")

	own := env.createProject(t, viewer.ID, 4)
	open := env.createProject(t, lead.ID, 4)
	joined := env.createProject(t, lead.ID, 4)
	env.addMember(t, joined.ID, viewer.ID)
	full := env.createProject(t, lead.ID, 2)
	filler := env.createUser(t, "filler")
	env.addMember(t, full.ID, filler.ID)

	projects, err := env.projects.Discover(viewer.ID, 20)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, open.ID, projects[0].ID)
	assert.NotEqual(t, own.ID, projects[0].ID)
}

func TestProjectListForUser(t *testing.T) {
	env := newTestEnv(t)
	lead := env.createUser(t, "lead")
	member := env.createUser(t, "member")

	led := env.createProject(t, member.ID, 4)
	joined := env.createProject(t, lead.ID, 4)
	env.addMember(t, joined.ID, member.ID)
	env.createProject(t, lead.ID, 4) // unrelated

	projects, err := env.projects.ListForUser(member.ID)
	require.NoError(t, err)
	require.Len(t, projects, 2)
	ids := []string{projects[0].ID, projects[1].ID}
	assert.Contains(t, ids, led.ID)
	assert.Contains(t, ids, joined.ID)
}
