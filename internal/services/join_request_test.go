package services

import (
	"sync"
	"testing"

	"github.com/RasuriVIGNESH/peerconnect/internal/models"
	"github.com/RasuriVIGNESH/peerconnect/pkg/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoinRequestSend(t *testing.T) {
	env := newTestEnv(t)
	lead := env.createUser(t, "lead")
	applicant := env.createUser(t, "applicant")
	project := env.createProject(t, lead.ID, 4)

	request, err := env.requests.Send(project.ID, applicant.ID, &SendJoinRequestRequest{Message: "let me in"})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, request.Status)

	// One pending request per (project, user).
	_, err = env.requests.Send(project.ID, applicant.ID, &SendJoinRequestRequest{})
	assert.True(t, response.IsConflict(err))
}

func TestJoinRequestSend_Rejections(t *testing.T) {
	env := newTestEnv(t)
	lead := env.createUser(t, "lead")
	member := env.createUser(t, "member")
	project := env.createProject(t, lead.ID, 2)
	env.addMember(t, project.ID, member.ID)

	// The lead asking to join their own project is already a member.
	_, err := env.requests.Send(project.ID, lead.ID, &SendJoinRequestRequest{})
	assert.True(t, response.IsConflict(err))

	_, err = env.requests.Send(project.ID, member.ID, &SendJoinRequestRequest{})
	assert.True(t, response.IsConflict(err))

	// Full team.
	outsider := env.createUser(t, "outsider")
	_, err = env.requests.Send(project.ID, outsider.ID, &SendJoinRequestRequest{})
	assert.True(t, response.IsConflict(err))

	// Not recruiting.
	closed := env.createProject(t, lead.ID, 4)
	require.NoError(t, env.db.Model(&models.Project{}).
		Where("id = ?", closed.ID).
		Update("status", models.ProjectCompleted).Error)
	_, err = env.requests.Send(closed.ID, outsider.ID, &SendJoinRequestRequest{})
	assert.True(t, response.IsConflict(err))
}

func TestJoinRequestAccept(t *testing.T) {
	env := newTestEnv(t)
	lead := env.createUser(t, "lead")
	applicant := env.createUser(t, "applicant")
	project := env.createProject(t, lead.ID, 4)

	request, err := env.requests.Send(project.ID, applicant.ID, &SendJoinRequestRequest{})
	require.NoError(t, err)

	// Only the lead decides.
	_, err = env.requests.Accept(request.ID, applicant.ID)
	appErr, ok := err.(*response.AppError)
	require.True(t, ok)
	assert.Equal(t, 403, appErr.Code)

	accepted, err := env.requests.Accept(request.ID, lead.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, accepted.Status)
	assert.NotNil(t, accepted.RespondedAt)

	isMember, err := env.teams.IsMember(env.db, project, applicant.ID)
	require.NoError(t, err)
	assert.True(t, isMember)

	// Terminal states are immutable.
	_, err = env.requests.Accept(request.ID, lead.ID)
	assert.True(t, response.IsConflict(err))
	_, err = env.requests.Reject(request.ID, lead.ID)
	assert.True(t, response.IsConflict(err))
}

func TestJoinRequestReject(t *testing.T) {
	env := newTestEnv(t)
	lead := env.createUser(t, "lead")
	applicant := env.createUser(t, "applicant")
	project := env.createProject(t, lead.ID, 4)

	request, err := env.requests.Send(project.ID, applicant.ID, &SendJoinRequestRequest{})
	require.NoError(t, err)

	rejected, err := env.requests.Reject(request.ID, lead.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, rejected.Status)

	isMember, err := env.teams.IsMember(env.db, project, applicant.ID)
	require.NoError(t, err)
	assert.False(t, isMember)

	// The applicant may ask again after a rejection.
	_, err = env.requests.Send(project.ID, applicant.ID, &SendJoinRequestRequest{})
	assert.NoError(t, err)
}

func TestJoinRequestCancel_RequesterOnly(t *testing.T) {
	env := newTestEnv(t)
	lead := env.createUser(t, "lead")
	applicant := env.createUser(t, "applicant")
	project := env.createProject(t, lead.ID, 4)

	request, err := env.requests.Send(project.ID, applicant.ID, &SendJoinRequestRequest{})
	require.NoError(t, err)

	// Even the lead cannot cancel; they reject instead.
	_, err = env.requests.Cancel(request.ID, lead.ID)
	appErr, ok := err.(*response.AppError)
	require.True(t, ok)
	assert.Equal(t, 403, appErr.Code)

	cancelled, err := env.requests.Cancel(request.ID, applicant.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, cancelled.Status)

	// Cancelled is terminal.
	_, err = env.requests.Accept(request.ID, lead.ID)
	assert.True(t, response.IsConflict(err))
}

func TestJoinRequestAccept_LastSlot(t *testing.T) {
	env := newTestEnv(t)
	lead := env.createUser(t, "lead")
	first := env.createUser(t, "first")
	second := env.createUser(t, "second")
	project := env.createProject(t, lead.ID, 2)

	reqFirst, err := env.requests.Send(project.ID, first.ID, &SendJoinRequestRequest{})
	require.NoError(t, err)
	reqSecond, err := env.requests.Send(project.ID, second.ID, &SendJoinRequestRequest{})
	require.NoError(t, err)

	_, err = env.requests.Accept(reqFirst.ID, lead.ID)
	require.NoError(t, err)

	_, err = env.requests.Accept(reqSecond.ID, lead.ID)
	assert.True(t, response.IsConflict(err))

	var stored models.ProjectJoinRequest
	require.NoError(t, env.db.First(&stored, "id = ?", reqSecond.ID).Error)
	assert.Equal(t, models.StatusPending, stored.Status, "losing request stays PENDING")

	size, err := env.teams.CountMembers(env.db, project.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, size)
}

func TestJoinRequestAccept_ConcurrentLastSlot(t *testing.T) {
	env := newTestEnv(t)
	lead := env.createUser(t, "lead")
	first := env.createUser(t, "first")
	second := env.createUser(t, "second")
	project := env.createProject(t, lead.ID, 2)

	reqFirst, err := env.requests.Send(project.ID, first.ID, &SendJoinRequestRequest{})
	require.NoError(t, err)
	reqSecond, err := env.requests.Send(project.ID, second.ID, &SendJoinRequestRequest{})
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, id := range []uint{reqFirst.ID, reqSecond.ID} {
		wg.Add(1)
		go func(i int, id uint) {
			defer wg.Done()
			_, errs[i] = env.requests.Accept(id, lead.ID)
		}(i, id)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
		} else {
			assert.True(t, response.IsConflict(err), "loser must fail with Conflict, got %v", err)
		}
	}
	assert.Equal(t, 1, successes, "exactly one acceptance may win the last slot")

	size, err := env.teams.CountMembers(env.db, project.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, size, "capacity invariant must hold under concurrency")
}

func TestJoinRequestLists(t *testing.T) {
	env := newTestEnv(t)
	lead := env.createUser(t, "lead")
	applicant := env.createUser(t, "applicant")
	outsider := env.createUser(t, "outsider")
	project := env.createProject(t, lead.ID, 4)

	_, err := env.requests.Send(project.ID, applicant.ID, &SendJoinRequestRequest{})
	require.NoError(t, err)

	_, err = env.requests.ListForProject(project.ID, outsider.ID)
	appErr, ok := err.(*response.AppError)
	require.True(t, ok)
	assert.Equal(t, 403, appErr.Code)

	forProject, err := env.requests.ListForProject(project.ID, lead.ID)
	require.NoError(t, err)
	assert.Len(t, forProject, 1)

	mine, err := env.requests.ListForUser(applicant.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 1)
}
