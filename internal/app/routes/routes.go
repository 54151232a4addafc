package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/bureauchain/diplomachain/internal/app/controllers"
	"github.com/bureauchain/diplomachain/internal/app/models/dto"
)

// SetupRouter configures all application routes. Read-only verification
// endpoints live apart from the issuing endpoints so a public deployment
// can expose only the former.
func SetupRouter(router *gin.Engine, diplomaController *controllers.DiplomaController) {
	v1 := router.Group("/api/v1")

	// --- Verification routes (read-only) ---
	diplomas := v1.Group("/diplomas")
	{
		diplomas.GET("", diplomaController.GetAllDiplomas)
		diplomas.GET("/:diplomaID", diplomaController.GetDiplomaByID)
	}

	queries := v1.Group("/queries")
	{
		queries.GET("/primkey", diplomaController.QueryByPrimKey)
		queries.GET("/name", diplomaController.QueryByName)
		queries.GET("/national-id", diplomaController.QueryByNationalID)
	}

	// --- Issuing routes (state-changing) ---
	issuance := v1.Group("/issuance")
	{
		issuance.POST("/students/:studentID", diplomaController.IssueForStudent)
		issuance.POST("/defence-dates", diplomaController.IssueForDefenceDate)
		issuance.PUT("/diplomas/:diplomaID", diplomaController.UpdateDiploma)
		issuance.DELETE("/diplomas/:diplomaID", diplomaController.DeleteDiploma)
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.NewDataResponse(gin.H{"status": "ok"}))
	})
}
