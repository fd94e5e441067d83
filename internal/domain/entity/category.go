package entity

import (
	"time"

	"github.com/google/uuid"
)

// TransferCategoryName is the reserved category name used for both legs of a transfer.
const TransferCategoryName = "Transfer"

// Category groups transactions of one type. Categories form a forest per user
// through ParentID; a child always shares its parent's type.
type Category struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Type      EntryType
	ParentID  *uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory creates a new Category entity.
func NewCategory(userID uuid.UUID, name string, categoryType EntryType, parentID *uuid.UUID) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Type:      categoryType,
		ParentID:  parentID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsRoot reports whether the category has no parent.
func (c *Category) IsRoot() bool {
	return c.ParentID == nil
}

// CategoryNode is a category together with its derived tree relations.
type CategoryNode struct {
	Category *Category
	Parent   *Category
	Children []*Category
}

// IsParent reports whether the category has at least one child.
func (n *CategoryNode) IsParent() bool {
	return len(n.Children) > 0
}
