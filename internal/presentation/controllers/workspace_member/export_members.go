package workspace_member

import (
	"bytes"

	"github.com/razelos/appsmith/internal/domain/usecase"
	"github.com/razelos/appsmith/internal/presentation/helpers"
	presentationProtocols "github.com/razelos/appsmith/internal/presentation/protocols"
	"github.com/sirupsen/logrus"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportMembersController struct {
	ExportWorkspaceMembers usecase.ExportWorkspaceMembers
	Log                    *logrus.Logger
}

func NewExportMembersController(exportWorkspaceMembers usecase.ExportWorkspaceMembers, log *logrus.Logger) *ExportMembersController {
	return &ExportMembersController{ExportWorkspaceMembers: exportWorkspaceMembers, Log: log}
}

func (c *ExportMembersController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	session, workspaceId, httpResponse := helpers.RequestScope(r)
	if httpResponse != nil {
		return httpResponse
	}

	file, err := c.ExportWorkspaceMembers.Export(r.Req.Context(), workspaceId, session)
	if err != nil {
		return helpers.CreateErrorResponse(err, "an error occurred when exporting workspace members", c.Log)
	}
	defer file.Close()

	buf := new(bytes.Buffer)
	if err := file.Write(buf); err != nil {
		return helpers.CreateErrorResponse(err, "an error occurred when exporting workspace members", c.Log)
	}

	return helpers.CreateFileResponse(buf.Bytes(), xlsxContentType, "members-"+workspaceId.Hex()+".xlsx")
}
