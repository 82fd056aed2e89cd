package dto

import (
	"palmera/internal/domains/menu/model"
	"palmera/shared"
	gDto "palmera/shared/dto"
	gModel "palmera/shared/model"
	"palmera/shared/timezone"

	"github.com/google/uuid"
)

type CreateMenuItemRequest struct {
	Name        string  `json:"name"        validate:"required,notblank,max=100"`
	Description string  `json:"description" validate:"omitempty,max=1000"`
	Price       float64 `json:"price"       validate:"required,gt=0"`
	Category    string  `json:"category"    validate:"required,oneof=starter main dessert drink"`
	Available   bool    `json:"available"`
	ImageURL    string  `json:"image_url"   validate:"omitempty,url,max=500"`
}

func (c *CreateMenuItemRequest) ToModel(user string) model.MenuItem {
	return model.MenuItem{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Description: c.Description,
		Price:       c.Price,
		Category:    c.Category,
		Available:   c.Available,
		ImageURL:    c.ImageURL,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateMenuItemRequest struct {
	Name        string  `db:"name"        json:"name"        validate:"omitempty,notblank,max=100"`
	Description string  `db:"description" json:"description" validate:"omitempty,max=1000"`
	Price       float64 `db:"price"       json:"price"       validate:"omitempty,gt=0"`
	Category    string  `db:"category"    json:"category"    validate:"omitempty,oneof=starter main dessert drink"`
	Available   *bool   `db:"available"   json:"available"   validate:"omitempty"`
	ImageURL    string  `db:"image_url"   json:"image_url"   validate:"omitempty,url,max=500"`
}

type MenuItemResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Available   bool    `json:"available"`
	ImageURL    string  `json:"image_url"`
	gDto.Metadata
}

func (r *MenuItemResponse) FromModel(mod model.MenuItem) {
	r.ID = mod.ID
	r.Name = mod.Name
	r.Description = mod.Description
	r.Price = mod.Price
	r.Category = mod.Category
	r.Available = mod.Available
	r.ImageURL = mod.ImageURL
	r.Metadata.FromModel(mod.Metadata)
}

type GetMenuItemsResponse struct {
	MenuItems []MenuItemResponse `json:"menu_items"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetMenuItemsResponse) FromModels(models []model.MenuItem, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.MenuItems = make([]MenuItemResponse, len(models))
	for i, mod := range models {
		r.MenuItems[i].FromModel(mod)
	}
}
