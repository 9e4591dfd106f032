package api

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"policyedge/db"
	"policyedge/utils"
)

// --- Upload Policy ---

// UploadPolicyForm is the multipart upload of a policy document.
type UploadPolicyForm struct {
	PolicyName string                `form:"policy_name" binding:"required"`
	PolicyType string                `form:"policy_type" binding:"required"`
	File       *multipart.FileHeader `form:"file" binding:"required"`
	Notes      *string               `form:"notes"`
}

// UploadPolicyResponse acknowledges an upload.
type UploadPolicyResponse struct {
	Message  string `json:"message" example:"Policy uploaded successfully"`
	PolicyID int    `json:"policy_id" example:"1"`
}

// UploadPolicyHandler stores an uploaded policy document for the caller.
// @Summary      Upload a policy
// @Description  Stores a policy owned by the caller. Only a preview is kept: the first 500 bytes of the file, decoded as UTF-8 with invalid bytes replaced. The file format is not inspected.
// @Description
// @Description  Policies get sequential ids and the status `Uploaded`.
// @Tags         Policies
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        policy_name  formData  string  true   "Display name"
// @Param        policy_type  formData  string  true   "Category, e.g. Privacy Policy or Terms of Service"
// @Param        file         formData  file    true   "Policy document"
// @Param        notes        formData  string  false  "Free-text notes"
// @Success      200  {object}  UploadPolicyResponse
// @Failure      401  {object}  utils.APIError
// @Failure      422  {object}  utils.APIError "Missing form fields or file."
// @Router       /policies [post]
func UploadPolicyHandler(c *gin.Context, database *db.Database) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	var form UploadPolicyForm
	if err := c.ShouldBindWith(&form, binding.FormMultipart); err != nil {
		utils.GinValidationError(c, fmt.Sprintf("Invalid upload form: %v", err))
		return
	}

	content, err := readUpload(form.File)
	if err != nil {
		utils.GinValidationError(c, fmt.Sprintf("Failed to read uploaded file: %v", err))
		return
	}

	policy := database.Policies.Create(db.NewPolicy{
		OwnerID: user.ID,
		Name:    form.PolicyName,
		Type:    form.PolicyType,
		Content: content,
		Notes:   form.Notes,
	})

	c.JSON(http.StatusOK, UploadPolicyResponse{Message: "Policy uploaded successfully", PolicyID: policy.ID})
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// --- List Policies ---

// ListPoliciesHandler lists the caller's policies.
// @Summary      List your policies
// @Description  Returns every policy you uploaded, in upload order. `content_preview` is cut to 100 characters and is null for empty uploads.
// @Tags         Policies
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   models.PolicySummary
// @Failure      401  {object}  utils.APIError
// @Router       /policies [get]
func ListPoliciesHandler(c *gin.Context, database *db.Database) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, database.Policies.SummariesForOwner(user.ID))
}

// --- Get Policy ---

// GetPolicyHandler returns one of the caller's policies.
// @Summary      Get a policy
// @Description  Returns the full policy including the 500-byte preview. Policies owned by someone else are reported as not found.
// @Tags         Policies
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Policy id"
// @Success      200  {object}  models.Policy
// @Failure      401  {object}  utils.APIError
// @Failure      404  {object}  utils.APIError "No such policy among yours."
// @Failure      422  {object}  utils.APIError "The id is not an integer."
// @Router       /policies/{id} [get]
func GetPolicyHandler(c *gin.Context, database *db.Database) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	policyID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	policy, err := database.Policies.GetOwned(user.ID, policyID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			utils.GinNotFound(c, "Policy not found")
			return
		}
		utils.GinInternalServerError(c, fmt.Sprintf("Failed to load policy: %v", err))
		return
	}

	c.JSON(http.StatusOK, policy)
}
