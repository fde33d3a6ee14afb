package domain

import (
	"cmp"
	"slices"
	"time"

	"github.com/google/uuid"
)

// OrgMember is a node of an owner's organization chart.
type OrgMember struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	ParentID  *uuid.UUID
	Name      string
	Role      string
	Level     OrgLevel
	AvatarURL *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OrgMemberUpdateParams is a partial update. Nil fields are left unchanged.
// ClearParent detaches the member to the top level and wins over ParentID.
type OrgMemberUpdateParams struct {
	ParentID    *uuid.UUID
	ClearParent bool
	Name        *string
	Role        *string
	Level       *OrgLevel
	AvatarURL   *string
}

// OrgNode is an OrgMember with its direct reports.
type OrgNode struct {
	OrgMember
	Children []*OrgNode
}

// BuildOrgTree links flat members into a forest via ParentID. Members whose
// parent is missing from the list become roots. Siblings keep creation order.
func BuildOrgTree(members []OrgMember) []*OrgNode {
	sorted := slices.Clone(members)
	slices.SortStableFunc(sorted, func(a, b OrgMember) int {
		return cmp.Compare(a.CreatedAt.UnixNano(), b.CreatedAt.UnixNano())
	})

	nodes := make(map[uuid.UUID]*OrgNode, len(sorted))
	for _, m := range sorted {
		nodes[m.ID] = &OrgNode{OrgMember: m, Children: []*OrgNode{}}
	}

	roots := []*OrgNode{}
	for _, m := range sorted {
		node := nodes[m.ID]
		if m.ParentID != nil {
			if parent, ok := nodes[*m.ParentID]; ok && parent != node {
				parent.Children = append(parent.Children, node)
				continue
			}
		}
		roots = append(roots, node)
	}
	return roots
}

// IsDescendant reports whether candidate sits in the subtree rooted at
// ancestor, following ParentID links through members.
func IsDescendant(members []OrgMember, ancestor, candidate uuid.UUID) bool {
	parents := make(map[uuid.UUID]uuid.UUID, len(members))
	for _, m := range members {
		if m.ParentID != nil {
			parents[m.ID] = *m.ParentID
		}
	}

	seen := make(map[uuid.UUID]bool)
	for cur := candidate; !seen[cur]; {
		seen[cur] = true
		if cur == ancestor {
			return true
		}
		p, ok := parents[cur]
		if !ok {
			return false
		}
		cur = p
	}
	return false
}
