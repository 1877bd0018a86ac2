package api

import (
	"iov-backend/internal/api/handlers"
	"iov-backend/internal/api/middleware"
	"iov-backend/internal/config"
	"iov-backend/internal/repository"
	"iov-backend/internal/service"
	"iov-backend/pkg/database"

	"github.com/gin-gonic/gin"
)

// SetupRoutes 设置所有路由
func SetupRoutes(router *gin.Engine, cfg *config.Config) {
	// 获取数据库连接
	db := database.GetDB()

	// 初始化仓储层
	userRepo := repository.NewUserRepository(db)
	infraRepo := repository.NewInfraRepository(db)
	cycleRepo := repository.NewCycleRepository(db)
	alertRepo := repository.NewAlertRepository(db)

	// 初始化服务层
	userService := service.NewUserService(userRepo)
	monitorService := service.NewMonitorService()
	simService := service.NewSimulationService(cfg, cycleRepo, alertRepo)

	// 初始化处理器
	authHandler := handlers.NewAuthHandler(userService)
	userHandler := handlers.NewUserHandler(userService)
	healthHandler := handlers.NewHealthHandler()
	monitorHandler := handlers.NewMonitorHandler(monitorService)
	simHandler := handlers.NewSimulationHandler(simService)
	twinHandler := handlers.NewTwinHandler(simService)
	optimizerHandler := handlers.NewOptimizerHandler(simService)
	resultsHandler := handlers.NewResultsHandler(cycleRepo, alertRepo, simService)
	overviewHandler := handlers.NewOverviewHandler(simService, infraRepo, cycleRepo, alertRepo)

	// 公开路由组
	public := router.Group("/api/v1")
	{
		// 健康检查路由
		public.GET("/health", healthHandler.CheckHealth)

		// 认证相关路由（登录和刷新令牌无需认证）
		auth := public.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.RefreshToken)
		}

		// 仿真管理路由
		simulation := public.Group("/simulation")
		{
			simulation.POST("/start", simHandler.StartSimulation)
			simulation.POST("/stop", simHandler.StopSimulation)
			simulation.POST("/step", simHandler.StepSimulation)
			simulation.POST("/clear", simHandler.ClearHistory)
			simulation.GET("/status", simHandler.GetStatus)
			simulation.GET("/state", simHandler.GetPhysicalState)
			simulation.GET("/tasks", simHandler.GetTasks)
		}

		// 孪生管理路由
		twin := public.Group("/twin")
		{
			twin.GET("/snapshot", twinHandler.GetSnapshot)
			twin.GET("/stats", twinHandler.GetStats)
			twin.GET("/aoi", twinHandler.GetAoIHistory)
			twin.GET("/loads", twinHandler.GetRSULoads)
			twin.GET("/backend", twinHandler.GetBackendStatus)
			twin.GET("/things/:id", twinHandler.GetThing)
		}

		// 优化管理路由
		optimizer := public.Group("/optimizer")
		{
			optimizer.POST("/run", optimizerHandler.RunOptimizer)
			optimizer.GET("/result", optimizerHandler.GetLastResult)
		}
	}

	// 需要认证的路由组
	protected := router.Group("/api/v1")
	protected.Use(middleware.AuthMiddleware())
	{
		// 系统概览
		protected.GET("/overview", overviewHandler.GetOverview)
		protected.GET("/overview/infra", overviewHandler.GetInfraNodes)

		// 系统监控
		protected.GET("/monitor/metrics", monitorHandler.GetSystemMetrics)

		// 认证相关路由
		auth := protected.Group("/auth")
		{
			auth.GET("/me", authHandler.GetCurrentUser)
		}

		// 用户管理路由
		users := protected.Group("/users")
		{
			users.GET("/:id", userHandler.GetUser)
		}

		// 结果管理路由
		results := protected.Group("/results")
		{
			results.GET("/cycles", resultsHandler.ListCycles)
			results.GET("/recent", resultsHandler.GetRecentCycles)
			results.GET("/alerts", resultsHandler.ListAlerts)
		}

		// 管理员专用路由
		admin := protected.Group("/admin")
		admin.Use(middleware.AdminMiddleware())
		{
			adminUsers := admin.Group("/users")
			{
				adminUsers.GET("", userHandler.ListUsers)
				adminUsers.POST("", userHandler.CreateUser)
			}
		}
	}
}
