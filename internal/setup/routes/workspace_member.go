package routes

import (
	"net/http"

	"github.com/razelos/appsmith/internal/setup/adapters"
	"github.com/razelos/appsmith/internal/setup/factory"
	"github.com/razelos/appsmith/internal/setup/middlewares"
)

// WorkspaceMemberRoutes registers HTTP routes for workspace membership
func WorkspaceMemberRoutes(server *http.ServeMux, deps *factory.Dependencies) {
	loadSessionUser := factory.MakeLoadSessionUser(deps)

	authenticated := func(next http.Handler) http.Handler {
		return middlewares.VerifyAccessToken(
			middlewares.LoadSession(
				middlewares.NoStoreHeader(next),
				loadSessionUser,
				deps.Log,
			),
			deps.Tokens,
		)
	}

	// Change the role of a user or user group
	server.Handle("PUT /workspaces/{workspaceId}/permission-group", authenticated(
		adapters.AdaptRoute(factory.MakeUpdatePermissionGroupController(deps)),
	))

	// List members with their roles
	server.Handle("GET /workspaces/{workspaceId}/members", authenticated(
		adapters.AdaptRoute(factory.MakeGetMembersController(deps)),
	))

	server.Handle("GET /workspaces/{workspaceId}/members/export", authenticated(
		adapters.AdaptRoute(factory.MakeExportMembersController(deps)),
	))

	// Default roles of the workspace
	server.Handle("GET /workspaces/{workspaceId}/roles", authenticated(
		adapters.AdaptRoute(factory.MakeGetRolesController(deps)),
	))
}
