package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ZeeshanMalik1/switch2itech-backend/internal/handler"
	"github.com/ZeeshanMalik1/switch2itech-backend/internal/middleware"
	"github.com/ZeeshanMalik1/switch2itech-backend/internal/model"
)

type Deps struct {
	DB                 *gorm.DB
	JWTSecret          string
	CORSOrigin         string
	AuthHandler        *handler.AuthHandler
	UserHandler        *handler.UserHandler
	ProjectHandler     *handler.ProjectHandler
	MilestoneHandler   *handler.MilestoneHandler
	ModuleHandler      *handler.ModuleHandler
	TaskHandler        *handler.TaskHandler
	ProductHandler     *handler.ProductHandler
	TestimonialHandler *handler.TestimonialHandler
}

func Setup(r *gin.Engine, deps Deps) {
	r.Use(middleware.CORSMiddleware(deps.CORSOrigin))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "success",
			"message":   "Switch2itech Backend Working Successfully",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	api := r.Group("/api")
	authed := middleware.AuthMiddleware(deps.JWTSecret, deps.DB)

	// Auth
	auth := api.Group("/auth")
	{
		auth.POST("/register", deps.AuthHandler.Register)
		auth.POST("/login", deps.AuthHandler.Login)
		auth.POST("/logout", authed, deps.AuthHandler.Logout)
		auth.GET("/me", authed, deps.AuthHandler.GetMe)
	}

	// Users
	users := api.Group("/users")
	users.Use(authed)
	{
		users.GET("", deps.UserHandler.List)
		users.GET("/:id", deps.UserHandler.Get)
		users.PATCH("/:id/role", middleware.RequireRole(model.RoleAdmin), deps.UserHandler.UpdateRole)
	}

	// Projects and the milestone/module/task hierarchy
	adminOrManager := middleware.RequireRole(model.RoleAdmin, model.RoleManager)
	projects := api.Group("/projects")
	projects.Use(authed)
	{
		projects.GET("", deps.ProjectHandler.List)
		projects.POST("", adminOrManager, deps.ProjectHandler.Create)
		projects.GET("/:projectId", deps.ProjectHandler.Get)
		projects.PATCH("/:projectId", adminOrManager, deps.ProjectHandler.Update)
		projects.DELETE("/:projectId", middleware.RequireRole(model.RoleAdmin), deps.ProjectHandler.Delete)

		projects.PATCH("/:projectId/assign", middleware.RequireRole(model.RoleAdmin), deps.ProjectHandler.AssignTeam)

		projects.POST("/:projectId/faqs", adminOrManager, deps.ProjectHandler.AddFAQ)
		projects.PATCH("/:projectId/faqs/:faqId", adminOrManager, deps.ProjectHandler.UpdateFAQ)
		projects.DELETE("/:projectId/faqs/:faqId", adminOrManager, deps.ProjectHandler.DeleteFAQ)

		milestones := projects.Group("/:projectId/milestones")
		{
			milestones.GET("", deps.MilestoneHandler.List)
			milestones.POST("", adminOrManager, deps.MilestoneHandler.Create)
			milestones.PATCH("/:milestoneId", adminOrManager, deps.MilestoneHandler.Update)
			milestones.DELETE("/:milestoneId", middleware.RequireRole(model.RoleAdmin), deps.MilestoneHandler.Delete)
			milestones.PATCH("/:milestoneId/assign", adminOrManager, deps.MilestoneHandler.Assign)
		}

		modules := projects.Group("/:projectId/milestones/:milestoneId/modules")
		{
			modules.GET("", deps.ModuleHandler.List)
			modules.POST("", adminOrManager, deps.ModuleHandler.Create)
			modules.PATCH("/:moduleId",
				middleware.RequireRole(model.RoleAdmin, model.RoleManager, model.RoleDeveloper),
				deps.ModuleHandler.Update)
			modules.PATCH("/:moduleId/assign", adminOrManager, deps.ModuleHandler.Assign)
		}

		tasks := projects.Group("/:projectId/milestones/:milestoneId/modules/:moduleId/tasks")
		{
			tasks.GET("", deps.TaskHandler.List)
			tasks.POST("", deps.TaskHandler.Create)
			tasks.PATCH("/:taskId", deps.TaskHandler.Update)
			tasks.DELETE("/:taskId", adminOrManager, deps.TaskHandler.Delete)
			tasks.PATCH("/:taskId/assign", adminOrManager, deps.TaskHandler.Assign)
		}
	}

	// Products (public reads, admin writes)
	adminOnly := middleware.RequireRole(model.RoleAdmin)
	products := api.Group("/products")
	{
		products.GET("", deps.ProductHandler.List)
		products.GET("/:id", deps.ProductHandler.Get)
		products.POST("", authed, adminOnly, deps.ProductHandler.Create)
		products.PUT("/:id", authed, adminOnly, deps.ProductHandler.Update)
		products.DELETE("/:id", authed, adminOnly, deps.ProductHandler.Delete)

		products.POST("/:id/faqs", authed, adminOnly, deps.ProductHandler.AddFAQ)
		products.PATCH("/:id/faqs/:faqId", authed, adminOnly, deps.ProductHandler.UpdateFAQ)
		products.DELETE("/:id/faqs/:faqId", authed, adminOnly, deps.ProductHandler.DeleteFAQ)
	}

	// Testimonials (public reads, authenticated writes, admin moderation)
	testimonials := api.Group("/testimonials")
	{
		testimonials.GET("", deps.TestimonialHandler.List)
		testimonials.GET("/:id", deps.TestimonialHandler.Get)
		testimonials.POST("", authed, deps.TestimonialHandler.Create)
		testimonials.PATCH("/:id", authed, deps.TestimonialHandler.Update)
		testimonials.PATCH("/:id/approve", authed, adminOnly, deps.TestimonialHandler.Approve)
		testimonials.DELETE("/:id", authed, adminOnly, deps.TestimonialHandler.Delete)
	}
}
