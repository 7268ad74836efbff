package workspace_member

import (
	"net/http"

	"github.com/razelos/appsmith/internal/domain/usecase"
	"github.com/razelos/appsmith/internal/presentation/helpers"
	presentationProtocols "github.com/razelos/appsmith/internal/presentation/protocols"
	"github.com/sirupsen/logrus"
)

type GetMembersController struct {
	GetWorkspaceMembers usecase.GetWorkspaceMembers
	Log                 *logrus.Logger
}

func NewGetMembersController(getWorkspaceMembers usecase.GetWorkspaceMembers, log *logrus.Logger) *GetMembersController {
	return &GetMembersController{GetWorkspaceMembers: getWorkspaceMembers, Log: log}
}

func (c *GetMembersController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	session, workspaceId, httpResponse := helpers.RequestScope(r)
	if httpResponse != nil {
		return httpResponse
	}

	members, err := c.GetWorkspaceMembers.Get(r.Req.Context(), workspaceId, session)
	if err != nil {
		return helpers.CreateErrorResponse(err, "an error occurred when retrieving workspace members", c.Log)
	}

	return helpers.CreateResponse(members, http.StatusOK)
}
