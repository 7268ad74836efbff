package workspace_member

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/razelos/appsmith/internal/domain/usecase"
	"github.com/razelos/appsmith/internal/presentation/helpers"
	presentationProtocols "github.com/razelos/appsmith/internal/presentation/protocols"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UpdatePermissionGroupController moves a user or user group of a workspace
// to another role, or removes its role when no new one is given.
type UpdatePermissionGroupController struct {
	Validate                       *validator.Validate
	UpdatePermissionGroupForMember usecase.UpdatePermissionGroupForMember
	Log                            *logrus.Logger
}

func NewUpdatePermissionGroupController(updatePermissionGroupForMember usecase.UpdatePermissionGroupForMember, log *logrus.Logger) *UpdatePermissionGroupController {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return &UpdatePermissionGroupController{
		Validate:                       validate,
		UpdatePermissionGroupForMember: updatePermissionGroupForMember,
		Log:                            log,
	}
}

type UpdatePermissionGroupControllerBody struct {
	Username             string `json:"username" validate:"omitempty,max=255"`
	UserGroupId          string `json:"userGroupId" validate:"omitempty,mongodb"`
	NewPermissionGroupId string `json:"newPermissionGroupId" validate:"omitempty,mongodb"`
}

func (c *UpdatePermissionGroupController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	session, workspaceId, httpResponse := helpers.RequestScope(r)
	if httpResponse != nil {
		return httpResponse
	}

	var body UpdatePermissionGroupControllerBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid body request",
		}, http.StatusBadRequest)
	}

	if err := c.Validate.Struct(body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: helpers.GetErrorMessages(c.Validate, err),
		}, http.StatusUnprocessableEntity)
	}

	input := &usecase.UpdatePermissionGroupInput{
		Username: body.Username,
		Origin:   r.Header.Get("Origin"),
	}
	if body.UserGroupId != "" {
		id, _ := primitive.ObjectIDFromHex(body.UserGroupId)
		input.UserGroupId = &id
	}
	if body.NewPermissionGroupId != "" {
		id, _ := primitive.ObjectIDFromHex(body.NewPermissionGroupId)
		input.NewPermissionGroupId = &id
	}

	member, err := c.UpdatePermissionGroupForMember.Update(r.Req.Context(), workspaceId, input, session)
	if err != nil {
		return helpers.CreateErrorResponse(err, "an error occurred when changing the member role", c.Log)
	}

	return helpers.CreateResponse(member, http.StatusOK)
}
