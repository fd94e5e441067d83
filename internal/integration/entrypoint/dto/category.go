package dto

import (
	"time"

	"github.com/finance-tracker/bookkeeping/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	ParentID *string `json:"parent_id,omitempty"`
}

// UpdateCategoryRequest represents the request body for category update.
// Sending "parent_id": null turns the category into a root.
type UpdateCategoryRequest struct {
	Name     *string          `json:"name,omitempty"`
	Type     *string          `json:"type,omitempty"`
	ParentID Nullable[string] `json:"parent_id"`
}

// CategoryRefResponse is a compact category used for parents and children.
type CategoryRefResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// CategoryResponse represents a single category in API responses.
type CategoryResponse struct {
	ID        string                `json:"id"`
	Name      string                `json:"name"`
	Type      string                `json:"type"`
	ParentID  *string               `json:"parent_id"`
	IsParent  bool                  `json:"is_parent"`
	Parent    *CategoryRefResponse  `json:"parent,omitempty"`
	Children  []CategoryRefResponse `json:"children,omitempty"`
	CreatedAt time.Time             `json:"created_at"`
	UpdatedAt time.Time             `json:"updated_at"`
}

func toCategoryRef(category *entity.Category) CategoryRefResponse {
	return CategoryRefResponse{
		ID:   category.ID.String(),
		Name: category.Name,
		Type: string(category.Type),
	}
}

// ToCategoryResponse converts a category without its tree context.
func ToCategoryResponse(category *entity.Category) CategoryResponse {
	var parentID *string
	if category.ParentID != nil {
		id := category.ParentID.String()
		parentID = &id
	}

	return CategoryResponse{
		ID:        category.ID.String(),
		Name:      category.Name,
		Type:      string(category.Type),
		ParentID:  parentID,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}

// ToCategoryNodeResponse converts a category with its parent and children.
func ToCategoryNodeResponse(node *entity.CategoryNode) CategoryResponse {
	response := ToCategoryResponse(node.Category)
	response.IsParent = node.IsParent()
	if node.Parent != nil {
		parent := toCategoryRef(node.Parent)
		response.Parent = &parent
	}
	for _, child := range node.Children {
		response.Children = append(response.Children, toCategoryRef(child))
	}
	return response
}

// ToCategoryListResponse converts a list of category nodes.
func ToCategoryListResponse(nodes []*entity.CategoryNode) []CategoryResponse {
	responses := make([]CategoryResponse, 0, len(nodes))
	for _, node := range nodes {
		responses = append(responses, ToCategoryNodeResponse(node))
	}
	return responses
}
