package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/ZeeshanMalik1/switch2itech-backend/internal/config"
	"github.com/ZeeshanMalik1/switch2itech-backend/internal/handler"
	"github.com/ZeeshanMalik1/switch2itech-backend/internal/model"
	"github.com/ZeeshanMalik1/switch2itech-backend/internal/router"
	"github.com/ZeeshanMalik1/switch2itech-backend/internal/service"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	var log *zap.Logger
	if cfg.Server.Mode == gin.ReleaseMode {
		log, err = zap.NewProduction()
	} else {
		log, err = zap.NewDevelopment()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	db, err := gorm.Open(mysql.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatal("connect database", zap.Error(err))
	}
	if err := db.AutoMigrate(
		&model.User{},
		&model.Project{},
		&model.Milestone{},
		&model.Module{},
		&model.Task{},
		&model.Product{},
		&model.Testimonial{},
	); err != nil {
		log.Fatal("migrate database", zap.Error(err))
	}

	authService := service.NewAuthService(db, cfg.JWT.Secret, cfg.JWT.ExpireHours)
	userService := service.NewUserService(db)
	projectService := service.NewProjectService(db, log)
	milestoneService := service.NewMilestoneService(db, log)
	moduleService := service.NewModuleService(db)
	taskService := service.NewTaskService(db)
	productService := service.NewProductService(db)
	testimonialService := service.NewTestimonialService(db)

	gin.SetMode(cfg.Server.Mode)
	r := gin.New()
	r.Use(gin.Recovery())

	router.Setup(r, router.Deps{
		DB:                 db,
		JWTSecret:          cfg.JWT.Secret,
		CORSOrigin:         cfg.Server.CORSOrigin,
		AuthHandler:        handler.NewAuthHandler(authService, cfg.Server.CookieSecure),
		UserHandler:        handler.NewUserHandler(userService),
		ProjectHandler:     handler.NewProjectHandler(projectService, userService),
		MilestoneHandler:   handler.NewMilestoneHandler(milestoneService),
		ModuleHandler:      handler.NewModuleHandler(moduleService),
		TaskHandler:        handler.NewTaskHandler(taskService),
		ProductHandler:     handler.NewProductHandler(productService, userService),
		TestimonialHandler: handler.NewTestimonialHandler(testimonialService),
	})

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Info("server starting", zap.String("addr", addr), zap.String("mode", cfg.Server.Mode))
	if err := r.Run(addr); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}
}
