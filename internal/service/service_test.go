package service

import (
	"testing"

	"eventide/internal/domain/entity"
	"eventide/internal/domain/policy"
	"eventide/internal/domain/store"
	"eventide/internal/domain/store/repository"
	"eventide/internal/realtime"
	"eventide/internal/utils"
	"eventide/internal/utils/uid"
	"eventide/internal/utils/validators"

	"github.com/glebarez/sqlite"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, store.Migrate(db))
	return db
}

func newValidate() *validator.Validate {
	validate := validator.New()
	_ = validate.RegisterValidation("notblank", validators.NotBlank)
	_ = validate.RegisterValidation("datadate", validators.DataDate)
	_ = validate.RegisterValidation("daytime", validators.DayTime)
	_ = validate.RegisterValidation("nodupes", validators.NoDupes)
	return validate
}

type fixture struct {
	db       *gorm.DB
	hub      *realtime.Hub
	collabs  *CollabService
	invites  *InvitationService
	messages *MessageService
	events   *EventService
	projects *ProjectService
	todos    *TodoService
	labels   *LabelService
	notes    *NoteService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	uid.Init(1)

	db := newTestDB(t)
	validate := newValidate()
	pol := policy.NewCollabPolicy()
	hub := realtime.NewHub()

	collabRepo := repository.NewCollabRepository(db)
	memberRepo := repository.NewMemberRepository(db)
	inviteRepo := repository.NewInvitationRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	eventRepo := repository.NewEventRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	todoRepo := repository.NewTodoRepository(db)
	labelRepo := repository.NewLabelRepository(db)
	notebookRepo := repository.NewNotebookRepository(db)
	noteRepo := repository.NewNoteRepository(db)

	projects := NewProjectService(projectRepo, collabRepo, memberRepo, pol, validate)

	return &fixture{
		db:       db,
		hub:      hub,
		collabs:  NewCollabService(collabRepo, memberRepo, pol, validate),
		invites:  NewInvitationService(inviteRepo, collabRepo, memberRepo, pol, validate),
		messages: NewMessageService(messageRepo, collabRepo, memberRepo, pol, hub, validate),
		events:   NewEventService(eventRepo, collabRepo, memberRepo, pol, validate),
		projects: projects,
		todos:    NewTodoService(todoRepo, projects, collabRepo, memberRepo, pol, validate),
		labels:   NewLabelService(labelRepo, validate),
		notes:    NewNoteService(notebookRepo, noteRepo, collabRepo, memberRepo, pol, validate),
	}
}

func profileOf(email string) *entity.Profile {
	now := utils.NowUTC()
	return &entity.Profile{
		Sub:       "sub-" + email,
		Email:     email,
		Username:  email,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func strptr(s string) *string { return &s }
