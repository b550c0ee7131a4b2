package api

import (
	"Limelight/internal/api/middleware"
	"Limelight/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		campaignGroup := apiGroup.Group("/campaigns")
		{
			campaignGroup.GET("", group.CampaignHandler.List)
			campaignGroup.GET("/:campaign_id", group.CampaignHandler.Get)
			campaignGroup.GET("/:campaign_id/leaderboard", group.LeaderboardHandler.GetByCampaign)

			adminGroup := campaignGroup.Group("")
			adminGroup.Use(middleware.AuthMiddleware(), middleware.CheckRoles("ADMIN"))
			{
				adminGroup.POST("/:campaign_id/sync", group.SubmissionHandler.SyncCampaign)
			}
		}

		submissionGroup := apiGroup.Group("/submissions")
		{
			submissionGroup.GET("/:submission_id/impressions", group.ImpressionHandler.GetCount)
			submissionGroup.GET("/campaign/:campaign_id", group.SubmissionHandler.GetByCampaign)

			// 曝光上报登录与否均可，以会话头去重；已登录请求带上用户身份
			authOptGroup := submissionGroup.Group("")
			authOptGroup.Use(middleware.AuthOptionalMiddleware())
			{
				authOptGroup.POST("/:submission_id/impression", group.ImpressionHandler.Record)
			}

			authGroup := submissionGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("", group.SubmissionHandler.Create)
			}

			adminGroup := authGroup.Group("")
			adminGroup.Use(middleware.CheckRoles("ADMIN"))
			{
				adminGroup.PUT("/:submission_id/status", group.SubmissionHandler.UpdateStatus)
				adminGroup.POST("/:submission_id/sync", group.SubmissionHandler.Sync)
			}
		}

		apiGroup.GET("/leaderboard", group.LeaderboardHandler.GetGlobal)
	}

	return r
}
