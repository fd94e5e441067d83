// Package category contains category-related use cases.
package category

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/finance-tracker/bookkeeping/internal/domain/entity"
	domainerror "github.com/finance-tracker/bookkeeping/internal/domain/error"
)

const (
	// MaxCategoryNameLength is the maximum allowed length for category names.
	MaxCategoryNameLength = 255
	// MaxCategoryDepth bounds every walk up a category's ancestor chain.
	MaxCategoryDepth = 64
)

// Tree is an arena of one user's categories keyed by id. Parent links are
// followed by lookup, so a corrupted chain can never be walked forever.
type Tree struct {
	nodes    map[uuid.UUID]*entity.Category
	children map[uuid.UUID][]*entity.Category
}

// NewTree indexes categories by id and by parent.
func NewTree(categories []*entity.Category) *Tree {
	t := &Tree{
		nodes:    make(map[uuid.UUID]*entity.Category, len(categories)),
		children: make(map[uuid.UUID][]*entity.Category),
	}
	for _, c := range categories {
		t.nodes[c.ID] = c
		if c.ParentID != nil {
			t.children[*c.ParentID] = append(t.children[*c.ParentID], c)
		}
	}
	return t
}

// Node returns the category with its parent and children resolved.
func (t *Tree) Node(id uuid.UUID) (*entity.CategoryNode, bool) {
	c, ok := t.nodes[id]
	if !ok {
		return nil, false
	}
	node := &entity.CategoryNode{
		Category: c,
		Children: t.children[id],
	}
	if c.ParentID != nil {
		node.Parent = t.nodes[*c.ParentID]
	}
	return node, true
}

// WouldCycle reports whether making proposedParentID the parent of categoryID
// would put categoryID on its own ancestor chain. Exceeding MaxCategoryDepth or
// meeting an already visited node also counts as a cycle.
func (t *Tree) WouldCycle(categoryID, proposedParentID uuid.UUID) bool {
	visited := make(map[uuid.UUID]struct{})
	current := proposedParentID

	for steps := 0; ; steps++ {
		if current == categoryID || steps >= MaxCategoryDepth {
			return true
		}
		if _, seen := visited[current]; seen {
			return true
		}
		visited[current] = struct{}{}

		node, ok := t.nodes[current]
		if !ok || node.ParentID == nil {
			return false
		}
		current = *node.ParentID
	}
}

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > MaxCategoryNameLength {
		return "", domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameInvalid,
			"name",
			fmt.Sprintf("category name must be between 1 and %d characters", MaxCategoryNameLength),
			domainerror.ErrCategoryNameInvalid,
		)
	}
	return name, nil
}

func validateType(categoryType entity.EntryType) error {
	if !categoryType.IsValid() {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidCategoryType,
			"type",
			"category type must be 'income' or 'expense'",
			domainerror.ErrInvalidCategoryType,
		)
	}
	return nil
}

func typeMismatch(field, message string) error {
	return domainerror.NewCategoryError(
		domainerror.ErrCodeCategoryTypeMismatch,
		field,
		message,
		domainerror.ErrCategoryTypeMismatch,
	)
}

func nameTaken() error {
	return domainerror.NewCategoryError(
		domainerror.ErrCodeCategoryNameExists,
		"name",
		"a category with this name and type already exists",
		domainerror.ErrCategoryNameExists,
	)
}
