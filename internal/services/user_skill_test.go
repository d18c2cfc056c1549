package services

import (
	"testing"

	"github.com/RasuriVIGNESH/peerconnect/pkg/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserSkillAdd(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "user")

	link, err := env.userSkills.Add(user.ID, &AddUserSkillRequest{
		Name:            "Go",
		Category:        "Programming Languages",
		Level:           "ADVANCED",
		YearsExperience: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, "ADVANCED", link.Level)
	require.NotNil(t, link.Skill)

	skill, err := env.skills.GetByID(link.SkillID)
	require.NoError(t, err)
	assert.Equal(t, 1, skill.UsersCount)

	// Same skill under a name variant conflicts.
	_, err = env.userSkills.Add(user.ID, &AddUserSkillRequest{Name: " go "})
	assert.True(t, response.IsConflict(err))
}

func TestUserSkillAdd_InvalidLevel(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "user")

	_, err := env.userSkills.Add(user.ID, &AddUserSkillRequest{Name: "Go", Level: "WIZARD"})
	appErr, ok := err.(*response.AppError)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.Code)
}

func TestUserSkillUpdate(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "user")

	link, err := env.userSkills.Add(user.ID, &AddUserSkillRequest{Name: "Go", Level: "BEGINNER"})
	require.NoError(t, err)

	level := "EXPERT"
	years := 5
	updated, err := env.userSkills.Update(user.ID, link.SkillID, &UpdateUserSkillRequest{
		Level:           &level,
		YearsExperience: &years,
	})
	require.NoError(t, err)
	assert.Equal(t, "EXPERT", updated.Level)
	assert.Equal(t, 5, updated.YearsExperience)

	bad := "NINJA"
	_, err = env.userSkills.Update(user.ID, link.SkillID, &UpdateUserSkillRequest{Level: &bad})
	appErr, ok := err.(*response.AppError)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.Code)
}

func TestUserSkillRemove(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "user")

	link, err := env.userSkills.Add(user.ID, &AddUserSkillRequest{Name: "Go"})
	require.NoError(t, err)

	require.NoError(t, env.userSkills.Remove(user.ID, link.SkillID))

	skill, err := env.skills.GetByID(link.SkillID)
	require.NoError(t, err)
	assert.Equal(t, 0, skill.UsersCount, "counter returns to zero on removal")

	err = env.userSkills.Remove(user.ID, link.SkillID)
	appErr, ok := err.(*response.AppError)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.Code)
}

func TestUserSkillList(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "user")

	_, err := env.userSkills.Add(user.ID, &AddUserSkillRequest{Name: "Go"})
	require.NoError(t, err)
	_, err = env.userSkills.Add(user.ID, &AddUserSkillRequest{Name: "React"})
	require.NoError(t, err)

	links, err := env.userSkills.List(user.ID)
	require.NoError(t, err)
	require.Len(t, links, 2)
	assert.NotNil(t, links[0].Skill)
}
