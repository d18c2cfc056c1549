package services

import (
	"testing"

	"github.com/RasuriVIGNESH/peerconnect/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// testEnv wires the full service graph against an in-memory database.
// Notifications run with a nil queue so flow tests stay deterministic.
type testEnv struct {
	db          *gorm.DB
	skills      *SkillService
	teams       *TeamService
	projects    *ProjectService
	invitations *InvitationService
	requests    *JoinRequestService
	userSkills  *UserSkillService
	notifier    *NotificationService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps the shared in-memory database alive and
	// serializes concurrent transactions the way a real database would.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.ProjectMember{},
		&models.ProjectInvitation{},
		&models.ProjectJoinRequest{},
		&models.Skill{},
		&models.UserSkill{},
		&models.ProjectSkill{},
		&models.Notification{},
	))

	notifier := NewNotificationService(db, nil)
	skills := NewSkillService(db)
	teams := NewTeamService(db, notifier)

	return &testEnv{
		db:          db,
		skills:      skills,
		teams:       teams,
		projects:    NewProjectService(db, skills, teams),
		invitations: NewInvitationService(db, teams, notifier),
		requests:    NewJoinRequestService(db, teams, notifier),
		userSkills:  NewUserSkillService(db, skills),
		notifier:    notifier,
	}
}

func (e *testEnv) createUser(t *testing.T, name string) *models.User {
	t.Helper()
	user := &models.User{
		ID:    uuid.New().String(),
		Email: name + "@example.com",
		Name:  name,
	}
	require.NoError(t, e.db.Create(user).Error)
	return user
}

func (e *testEnv) createProject(t *testing.T, leadID string, maxTeamSize int) *models.Project {
	t.Helper()
	project, err := e.projects.Create(leadID, &CreateProjectRequest{
		Title:       "Project " + uuid.New().String()[:8],
		Description: "a test project",
		MaxTeamSize: maxTeamSize,
		Skills:      []string{"Go"},
	})
	require.NoError(t, err)
	return project
}

func (e *testEnv) addMember(t *testing.T, projectID, userID string) {
	t.Helper()
	require.NoError(t, e.db.Create(&models.ProjectMember{
		ProjectID: projectID,
		UserID:    userID,
		Role:      models.RoleMember,
	}).Error)
}
