package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"surveytool/config"
	"surveytool/database"
	_ "surveytool/docs" // Swagger docs - auto-generated
	adminctrl "surveytool/internal/controller/admin"
	userctrl "surveytool/internal/controller/user"
	"surveytool/internal/logger"
	"surveytool/internal/model"
	"surveytool/internal/repository"
	"surveytool/internal/service"
)

// @title Survey Tool API
// @version 1.0
// @description API for defining surveys with conditionally visible questions, collecting responses and computing scores.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
		),

		// Repositories Layer
		fx.Provide(
			repository.NewSurveyRepository,
			repository.NewQuestionRepository,
			repository.NewOptionRepository,
			repository.NewResponseRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewSurveyService,
			service.NewQuestionService,
			service.NewOptionService,
			service.NewResponseService,
			service.NewScoreService,
		),

		// API Controllers Layer
		fx.Provide(
			adminctrl.NewSurveyController,
			adminctrl.NewQuestionController,
			userctrl.NewSurveyController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(PrepareDatabase),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	// Route gin's request log through zerolog.
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	adminSurveyCtrl *adminctrl.SurveyController,
	adminQuestionCtrl *adminctrl.QuestionController,
	userSurveyCtrl *userctrl.SurveyController,
) {
	// Admin Routes (prefixed with /api/v1/admin)
	adminAPIGroup := router.Group("/api/v1/admin")
	{
		adminAPIGroup.POST("/surveys", adminSurveyCtrl.CreateSurvey)
		adminAPIGroup.PUT("/surveys/:survey_id", adminSurveyCtrl.UpdateSurvey)
		adminAPIGroup.DELETE("/surveys/:survey_id", adminSurveyCtrl.DeleteSurvey)

		adminAPIGroup.POST("/surveys/:survey_id/questions", adminQuestionCtrl.AddQuestion)
		adminAPIGroup.PUT("/questions/:question_id", adminQuestionCtrl.UpdateQuestion)
		adminAPIGroup.DELETE("/questions/:question_id", adminQuestionCtrl.DeleteQuestion)

		adminAPIGroup.POST("/questions/:question_id/options", adminQuestionCtrl.AddOption)
		adminAPIGroup.PUT("/options/:option_id", adminQuestionCtrl.UpdateOption)
		adminAPIGroup.DELETE("/options/:option_id", adminQuestionCtrl.DeleteOption)
	}

	// User Routes (prefixed with /api/v1)
	userAPIGroup := router.Group("/api/v1")
	{
		userAPIGroup.GET("/surveys", userSurveyCtrl.GetAllSurveys)
		userAPIGroup.GET("/surveys/:survey_id", userSurveyCtrl.GetSurveyDetails)

		userAPIGroup.POST("/surveys/:survey_id/responses", userSurveyCtrl.SubmitResponse)
		userAPIGroup.GET("/surveys/:survey_id/responses", userSurveyCtrl.ListResponses)
		userAPIGroup.GET("/surveys/:survey_id/score", userSurveyCtrl.GetScoreSummary)
		userAPIGroup.GET("/responses/:response_id", userSurveyCtrl.GetResponse)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Survey Tool API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

// PrepareDatabase runs migrations and, when configured, seeds demo data.
func PrepareDatabase(db *gorm.DB, cfg *config.Config) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Survey{},
		&model.Question{},
		&model.AnswerOption{},
		&model.SurveyResponse{},
		&model.ResponseItem{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")

	if cfg.SeedDemoData {
		if err := database.SeedDemoData(db); err != nil {
			log.Error().Err(err).Msg("Demo data seeding failed")
			return err
		}
	}
	return nil
}
