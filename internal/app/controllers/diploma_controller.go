package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bureauchain/diplomachain/internal/app/models"
	"github.com/bureauchain/diplomachain/internal/app/models/dto"
	"github.com/bureauchain/diplomachain/internal/app/services"
	"github.com/bureauchain/diplomachain/internal/ledger"
	"github.com/bureauchain/diplomachain/internal/middleware"
)

// DiplomaController exposes the diploma ledger over HTTP: the read-only
// queries go straight to the ledger client, the issuing operations go
// through the diploma service.
type DiplomaController struct {
	diplomaService *services.DiplomaService
	ledgerClient   *ledger.DiplomaClient
}

// NewDiplomaController creates a new DiplomaController
func NewDiplomaController(diplomaService *services.DiplomaService, ledgerClient *ledger.DiplomaClient) *DiplomaController {
	return &DiplomaController{
		diplomaService: diplomaService,
		ledgerClient:   ledgerClient,
	}
}

// GetAllDiplomas lists every diploma on the ledger.
func (c *DiplomaController) GetAllDiplomas(ctx *gin.Context) {
	diplomas, err := c.ledgerClient.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(diplomas))
}

// GetDiplomaByID retrieves a single diploma by its ledger key.
func (c *DiplomaController) GetDiplomaByID(ctx *gin.Context) {
	diploma, err := c.ledgerClient.Read(ctx, ctx.Param("diplomaID"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(diploma))
}

// QueryByPrimKey finds diplomas by the business key. All four components
// must be supplied; a partial key would silently widen the match.
func (c *DiplomaController) QueryByPrimKey(ctx *gin.Context) {
	key := models.BusinessKey{
		NationalID:  ctx.Query("nationalID"),
		Institution: ctx.Query("institution"),
		Course:      ctx.Query("course"),
		Level:       ctx.Query("level"),
	}
	if key.NationalID == "" || key.Institution == "" || key.Course == "" || key.Level == "" {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed,
			"nationalID, institution, course and level are all required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	diplomas, err := c.ledgerClient.QueryByPrimKey(ctx, key)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(diplomas))
}

// QueryByName finds diplomas issued to the given first and last name.
func (c *DiplomaController) QueryByName(ctx *gin.Context) {
	firstName := ctx.Query("firstName")
	lastName := ctx.Query("lastName")
	if firstName == "" || lastName == "" {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed,
			"firstName and lastName are required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	diplomas, err := c.ledgerClient.QueryByName(ctx, firstName, lastName)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(diplomas))
}

// QueryByNationalID finds every diploma held by one person.
func (c *DiplomaController) QueryByNationalID(ctx *gin.Context) {
	nationalID := ctx.Query("nationalID")
	if nationalID == "" {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "nationalID is required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	diplomas, err := c.ledgerClient.QueryByNationalID(ctx, nationalID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(diplomas))
}

// IssueForStudent assembles and submits a diploma for one student.
func (c *DiplomaController) IssueForStudent(ctx *gin.Context) {
	diploma, err := c.diplomaService.CreateFromStudent(ctx, ctx.Param("studentID"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewDataResponse(diploma))
}

// IssueForDefenceDate runs the batch flow for every graded defence on the
// requested date. Per-row failures come back in the response body; only a
// whole-batch failure produces an error status.
func (c *DiplomaController) IssueForDefenceDate(ctx *gin.Context) {
	var req dto.BatchIssueRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid batch request").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	result, err := c.diplomaService.CreateAllForDefenceDate(ctx, req.DateOfDefence)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	response := dto.BatchIssueResponse{
		Created:  result.Created,
		Failures: make([]dto.BatchFailureResponse, 0, len(result.Failures)),
	}
	for _, failure := range result.Failures {
		response.Failures = append(response.Failures, dto.BatchFailureResponse{
			StudentID: failure.StudentID,
			Reason:    failure.Reason,
		})
	}

	ctx.JSON(http.StatusCreated, dto.NewDataResponse(response))
}

// UpdateDiploma replaces the stored record wholesale.
func (c *DiplomaController) UpdateDiploma(ctx *gin.Context) {
	var req dto.UpdateDiplomaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid diploma data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	diploma := req.ToModel(ctx.Param("diplomaID"))
	if err := c.ledgerClient.Update(ctx, diploma); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(diploma))
}

// DeleteDiploma removes a diploma record from the ledger.
func (c *DiplomaController) DeleteDiploma(ctx *gin.Context) {
	if err := c.ledgerClient.Delete(ctx, ctx.Param("diplomaID")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(nil))
}
