package main

import (
	"context"
	"os"
	"strconv"

	"eventide/internal/domain/policy"
	"eventide/internal/domain/store"
	"eventide/internal/domain/store/repository"
	"eventide/internal/http/handler"
	authmw "eventide/internal/http/middleware"
	"eventide/internal/infrastructure/summarizer"
	"eventide/internal/realtime"
	"eventide/internal/service"
	"eventide/internal/service/jobs"
	"eventide/internal/utils"
	"eventide/internal/utils/uid"
	"eventide/internal/utils/validators"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/robfig/cron/v3"
)

func main() {
	// Loads from .env when present; production sets real env vars
	_ = godotenv.Load()

	validate := validator.New()
	registerValidators(validate)

	uid.Init(machineID())

	if jwksURL := os.Getenv("JWKS_URL"); jwksURL != "" {
		if err := utils.InitJWKS(jwksURL); err != nil {
			log.Fatalf("failed to load JWKS: %v", err)
		}
	} else {
		log.Warn("JWKS_URL not set, token verification will reject every request")
	}

	db, err := store.Init()
	if err != nil {
		panic(err)
	}

	// Repos
	profileRepo := repository.NewProfileRepository(db)
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

	pol := policy.NewCollabPolicy()
	hub := realtime.NewHub()
	sumClient := summarizer.NewClient(os.Getenv("SUMMARIZER_URL"), os.Getenv("SUMMARIZER_API_KEY"))

	// Services
	profileService := service.NewProfileService(profileRepo, validate)
	collabService := service.NewCollabService(collabRepo, memberRepo, pol, validate)
	inviteService := service.NewInvitationService(inviteRepo, collabRepo, memberRepo, pol, validate)
	messageService := service.NewMessageService(messageRepo, collabRepo, memberRepo, pol, hub, validate)
	eventService := service.NewEventService(eventRepo, collabRepo, memberRepo, pol, validate)
	projectService := service.NewProjectService(projectRepo, collabRepo, memberRepo, pol, validate)
	todoService := service.NewTodoService(todoRepo, projectService, collabRepo, memberRepo, pol, validate)
	labelService := service.NewLabelService(labelRepo, validate)
	noteService := service.NewNoteService(notebookRepo, noteRepo, collabRepo, memberRepo, pol, validate)
	summaryService := service.NewSummaryService(sumClient, validate)

	// Handlers
	eventRoutes := handler.NewEventDefault(eventService)
	todoRoutes := handler.NewTodoDefault(todoService)
	projectRoutes := handler.NewProjectDefault(projectService)
	labelRoutes := handler.NewLabelDefault(labelService)
	noteRoutes := handler.NewNoteDefault(noteService)
	collabRoutes := handler.NewCollabDefault(collabService)
	inviteRoutes := handler.NewInvitationDefault(inviteService)
	messageRoutes := handler.NewMessageDefault(messageService)
	feedRoutes := handler.NewFeedDefault(messageService, hub)
	profileRoutes := handler.NewProfileDefault(profileService)
	utilRoutes := handler.NewUtilRoute(summaryService)

	// Jobs
	ctx := context.Background()
	go hub.StartReaper(ctx)

	scheduler := cron.New()
	sweeper := jobs.NewInvitationSweeper(inviteRepo)
	if _, err := scheduler.AddJob("@daily", sweeper); err != nil {
		log.Fatalf("failed to schedule invitation sweeper: %v", err)
	}
	scheduler.Start()

	e := echo.New()
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit("5M"))

	auth := authmw.NewAuthMiddleware(&authmw.AuthMiddlewareConfig{Profiles: profileService})
	api := e.Group("/api", auth)

	// Events
	api.GET("/events", eventRoutes.GetEvents)
	api.GET("/events/export", eventRoutes.ExportCalendar)
	api.POST("/events", eventRoutes.CreateEvent)
	api.PATCH("/events/:eventId", eventRoutes.UpdateEvent)
	api.DELETE("/events/:eventId", eventRoutes.DeleteEvent)

	// Todos
	api.GET("/todos", todoRoutes.GetTodos)
	api.GET("/todos/:todoId", todoRoutes.GetTodo)
	api.POST("/todos", todoRoutes.CreateTodo)
	api.PATCH("/todos/:todoId", todoRoutes.UpdateTodo)
	api.DELETE("/todos/:todoId", todoRoutes.DeleteTodo)

	// Projects
	api.GET("/projects", projectRoutes.GetProjects)
	api.POST("/projects", projectRoutes.CreateProject)
	api.DELETE("/projects/:projectId", projectRoutes.DeleteProject)

	// Labels
	api.GET("/labels", labelRoutes.GetLabels)
	api.POST("/labels", labelRoutes.CreateLabel)
	api.PATCH("/labels/:labelId", labelRoutes.UpdateLabel)
	api.DELETE("/labels/:labelId", labelRoutes.DeleteLabel)

	// Notebooks and notes
	api.GET("/notebooks", noteRoutes.GetNotebooks)
	api.POST("/notebooks", noteRoutes.CreateNotebook)
	api.PATCH("/notebooks/:notebookId", noteRoutes.UpdateNotebook)
	api.DELETE("/notebooks/:notebookId", noteRoutes.DeleteNotebook)
	api.GET("/notes", noteRoutes.GetNotes)
	api.GET("/notes/:noteId", noteRoutes.GetNote)
	api.POST("/notes", noteRoutes.CreateNote)
	api.PATCH("/notes/:noteId", noteRoutes.UpdateNote)
	api.DELETE("/notes/:noteId", noteRoutes.DeleteNote)

	// Collaborations
	api.POST("/collaborations", collabRoutes.CreateCollab)
	api.GET("/user/collaborations", collabRoutes.GetUserCollabs)
	api.GET("/collaborations/:collabId", collabRoutes.GetCollab)
	api.PATCH("/collaborations/:collabId", collabRoutes.RenameCollab)
	api.DELETE("/collaborations/:collabId", collabRoutes.DeleteCollab)
	api.GET("/collaborations/:collabId/members", collabRoutes.GetMembers)
	api.PATCH("/collaborations/:collabId/members/:email", collabRoutes.UpdateMember)
	api.DELETE("/collaborations/:collabId/members/:email", collabRoutes.RemoveMember)

	// Invitations
	api.GET("/invitations", inviteRoutes.GetInvitations)
	api.POST("/invitations", inviteRoutes.CreateInvitation)
	api.PATCH("/invitations/:inviteId", inviteRoutes.AnswerInvitation)

	// Chat
	api.GET("/collaborations/:collabId/messages", messageRoutes.GetMessages)
	api.POST("/collaborations/:collabId/messages", messageRoutes.CreateMessage)

	// Profile and misc
	api.GET("/profile", profileRoutes.GetProfile)
	api.PATCH("/profile", profileRoutes.UpdateProfile)
	api.POST("/summarize", utilRoutes.Summarize)

	// Realtime feed (token passed as query param by browser clients)
	e.GET("/ws/collaborations/:collabId", feedRoutes.HandleFeed, auth)

	// Docker Compose healthcheck
	e.GET("/health", healthCheckRoute)

	port := os.Getenv("PORT")
	if port == "" {
		port = "7070"
	}
	if err := e.Start(":" + port); err != nil {
		panic(err)
	}
}

func registerValidators(validate *validator.Validate) {
	_ = validate.RegisterValidation("notblank", validators.NotBlank)
	_ = validate.RegisterValidation("datadate", validators.DataDate)
	_ = validate.RegisterValidation("daytime", validators.DayTime)
	_ = validate.RegisterValidation("nodupes", validators.NoDupes)
}

func machineID() int64 {
	raw := os.Getenv("MACHINE_ID")
	if raw == "" {
		return 1
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.Fatalf("invalid MACHINE_ID: %v", err)
	}
	return id
}

func healthCheckRoute(c echo.Context) error {
	return c.String(200, "OK")
}
