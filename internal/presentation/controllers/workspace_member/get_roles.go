package workspace_member

import (
	"net/http"

	"github.com/razelos/appsmith/internal/domain/usecase"
	"github.com/razelos/appsmith/internal/presentation/helpers"
	presentationProtocols "github.com/razelos/appsmith/internal/presentation/protocols"
	"github.com/sirupsen/logrus"
)

type GetRolesController struct {
	GetWorkspaceRoles usecase.GetWorkspaceRoles
	Log               *logrus.Logger
}

func NewGetRolesController(getWorkspaceRoles usecase.GetWorkspaceRoles, log *logrus.Logger) *GetRolesController {
	return &GetRolesController{GetWorkspaceRoles: getWorkspaceRoles, Log: log}
}

func (c *GetRolesController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	session, workspaceId, httpResponse := helpers.RequestScope(r)
	if httpResponse != nil {
		return httpResponse
	}

	roles, err := c.GetWorkspaceRoles.Get(r.Req.Context(), workspaceId, session)
	if err != nil {
		return helpers.CreateErrorResponse(err, "an error occurred when retrieving workspace roles", c.Log)
	}

	return helpers.CreateResponse(roles, http.StatusOK)
}
