package helpers

import (
	"sort"
	"strings"

	"github.com/razelos/appsmith/internal/domain/models"
)

// SortWorkspaceMembers orders members by their highest role (administrators
// first), then by display name ignoring case, then by principal id.
func SortWorkspaceMembers(members []models.MemberInfo) {
	sort.SliceStable(members, func(i, j int) bool {
		return compareMembers(&members[i], &members[j]) < 0
	})
}

// SortRoles orders role summaries by rank, then by name.
func SortRoles(roles []models.PermissionGroupInfo) {
	sort.SliceStable(roles, func(i, j int) bool {
		ri, rj := models.RoleRank(roles[i].Name), models.RoleRank(roles[j].Name)
		if ri != rj {
			return ri < rj
		}
		return roles[i].Name < roles[j].Name
	})
}

func compareMembers(a, b *models.MemberInfo) int {
	if ra, rb := memberRank(a), memberRank(b); ra != rb {
		return ra - rb
	}

	if c := strings.Compare(strings.ToLower(a.DisplayName()), strings.ToLower(b.DisplayName())); c != 0 {
		return c
	}

	return strings.Compare(a.PrincipalId().Hex(), b.PrincipalId().Hex())
}

func memberRank(m *models.MemberInfo) int {
	rank := models.RoleRank("")
	for _, role := range m.Roles {
		if r := models.RoleRank(role.Name); r < rank {
			rank = r
		}
	}
	return rank
}
