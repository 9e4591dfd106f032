package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"policyedge/analysis"
	"policyedge/db"
	"policyedge/utils"
)

// AnalysisRequest selects the policy to analyse and labels the run.
// Both fields must be present; an empty analysis_type is recorded as is.
type AnalysisRequest struct {
	PolicyID     *int    `json:"policy_id" binding:"required" example:"1"`
	AnalysisType *string `json:"analysis_type" binding:"required" example:"standard"`
}

// AnalyzePolicyHandler runs an analysis on one of the caller's policies.
// @Summary      Analyse a policy
// @Description  Produces a compliance report chosen by the policy's type:
// @Description  *   `Privacy Policy`: GDPR, CCPA and HIPAA.
// @Description  *   `Terms of Service`: Consumer Protection and E-Commerce Regulations.
// @Description  *   anything else: a single General entry.
// @Description
// @Description  `analysis_type` is recorded as given. Every call stores a new result.
// @Tags         Analysis
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      AnalysisRequest  true  "Policy id and analysis label"
// @Success      200      {object}  models.AnalysisResult
// @Failure      401      {object}  utils.APIError
// @Failure      404      {object}  utils.APIError "No such policy among yours."
// @Failure      422      {object}  utils.APIError "Missing or malformed fields."
// @Router       /analysis [post]
func AnalyzePolicyHandler(c *gin.Context, engine *analysis.Engine) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	var req AnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.GinValidationError(c, fmt.Sprintf("Invalid analysis request: %v", err))
		return
	}

	result, err := engine.Analyze(user.ID, *req.PolicyID, *req.AnalysisType)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			utils.GinNotFound(c, "Policy not found")
			return
		}
		utils.GinInternalServerError(c, fmt.Sprintf("Failed to analyse policy: %v", err))
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetAnalysisHandler returns a stored analysis result.
// @Summary      Get an analysis result
// @Description  Results of policies owned by someone else are reported as not found.
// @Tags         Analysis
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Analysis id"
// @Success      200  {object}  models.AnalysisResult
// @Failure      401  {object}  utils.APIError
// @Failure      404  {object}  utils.APIError
// @Failure      422  {object}  utils.APIError "The id is not an integer."
// @Router       /analysis/{id} [get]
func GetAnalysisHandler(c *gin.Context, engine *analysis.Engine) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	analysisID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := engine.Result(user.ID, analysisID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			utils.GinNotFound(c, "Analysis result not found")
			return
		}
		utils.GinInternalServerError(c, fmt.Sprintf("Failed to load analysis: %v", err))
		return
	}

	c.JSON(http.StatusOK, result)
}
