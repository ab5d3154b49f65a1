package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/moness/staff-portal/internal/domain/model"
)

// MenuItems lists the dishes in one category of the Flemmyng menu.
func (c *Client) MenuItems(ctx context.Context, category model.MenuCategory) ([]model.MenuItem, error) {
	env, err := c.call(ctx, http.MethodGet, "/flemmyng/"+string(category), "", nil)
	if err != nil {
		return nil, err
	}
	var items []model.MenuItem
	if err := env.extract("payload", &items); err != nil {
		return nil, fmt.Errorf("extract menu items: %w", err)
	}
	return items, nil
}

// MenuItemByID fetches one dish.
func (c *Client) MenuItemByID(ctx context.Context, category model.MenuCategory, id string) (model.MenuItem, error) {
	env, err := c.call(ctx, http.MethodGet, "/flemmyng/"+string(category)+"/"+id, "", nil)
	if err != nil {
		return model.MenuItem{}, err
	}
	var item model.MenuItem
	if err := env.extract("payload", &item); err != nil {
		return model.MenuItem{}, fmt.Errorf("extract menu item: %w", err)
	}
	return item, nil
}

// CreateMenuItem adds a dish to a category. Fields already filtered to
// the category's visible set by the caller.
func (c *Client) CreateMenuItem(ctx context.Context, category model.MenuCategory, item model.MenuItem) error {
	item.Category = category
	_, err := c.call(ctx, http.MethodPost, "/flemmyng/"+string(category), "", item)
	return err
}

// UpdateMenuItem re-submits a dish.
func (c *Client) UpdateMenuItem(ctx context.Context, category model.MenuCategory, id string, item model.MenuItem) error {
	_, err := c.call(ctx, http.MethodPatch, "/flemmyng/"+string(category)+"/"+id, "", item)
	return err
}

// DeleteMenuItem removes a dish.
func (c *Client) DeleteMenuItem(ctx context.Context, category model.MenuCategory, id string) error {
	_, err := c.call(ctx, http.MethodDelete, "/flemmyng/"+string(category)+"/"+id, "", nil)
	return err
}
