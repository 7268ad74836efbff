package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/razelos/appsmith/internal/domain/models"
	"github.com/razelos/appsmith/internal/domain/usecase"
	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const MembersSheet = "Members"

var memberExportHeader = []interface{}{"Type", "Name", "Username", "Roles"}

type DbExportWorkspaceMembers struct {
	GetWorkspaceMembers usecase.GetWorkspaceMembers
}

func NewDbExportWorkspaceMembers(getWorkspaceMembers usecase.GetWorkspaceMembers) *DbExportWorkspaceMembers {
	return &DbExportWorkspaceMembers{
		GetWorkspaceMembers: getWorkspaceMembers,
	}
}

func (u *DbExportWorkspaceMembers) Export(ctx context.Context, workspaceId primitive.ObjectID, session *models.SessionUser) (*excelize.File, error) {
	members, err := u.GetWorkspaceMembers.Get(ctx, workspaceId, session)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", MembersSheet); err != nil {
		f.Close()
		return nil, err
	}

	if err := f.SetSheetRow(MembersSheet, "A1", &memberExportHeader); err != nil {
		f.Close()
		return nil, err
	}

	for i := range members {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			f.Close()
			return nil, err
		}

		row := memberRow(&members[i])
		if err := f.SetSheetRow(MembersSheet, cell, &row); err != nil {
			f.Close()
			return nil, fmt.Errorf("write member row %d: %w", i+2, err)
		}
	}

	return f, nil
}

func memberRow(member *models.MemberInfo) []interface{} {
	kind := "User"
	if member.IsGroup() {
		kind = "Group"
	}

	roleNames := make([]string, 0, len(member.Roles))
	for _, role := range member.Roles {
		roleNames = append(roleNames, role.Name)
	}

	return []interface{}{kind, member.Name, member.Username, strings.Join(roleNames, ", ")}
}
