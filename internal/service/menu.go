package service

import (
	"context"
	"log/slog"

	"github.com/moness/staff-portal/internal/domain/model"
	"github.com/moness/staff-portal/internal/ports"
)

// MenuAPI is the slice of the remote client the menu editor needs.
type MenuAPI interface {
	MenuItems(ctx context.Context, category model.MenuCategory) ([]model.MenuItem, error)
	MenuItemByID(ctx context.Context, category model.MenuCategory, id string) (model.MenuItem, error)
	CreateMenuItem(ctx context.Context, category model.MenuCategory, item model.MenuItem) error
	UpdateMenuItem(ctx context.Context, category model.MenuCategory, id string, item model.MenuItem) error
	DeleteMenuItem(ctx context.Context, category model.MenuCategory, id string) error
}

// MenuServiceOptions groups dependencies for MenuService.
type MenuServiceOptions struct {
	API    MenuAPI // Required: remote API client
	Audit  ports.AuditRecorder
	Logger *slog.Logger
}

// MenuService drives the Flemmyng menu editor.
type MenuService struct {
	api    MenuAPI
	audit  ports.AuditRecorder
	logger *slog.Logger
}

// NewMenuService constructs a new MenuService.
func NewMenuService(opts MenuServiceOptions) *MenuService {
	return &MenuService{api: opts.API, audit: opts.Audit, logger: opts.Logger}
}

// MenuSection is one category with its items, for the overview page.
type MenuSection struct {
	Category model.MenuCategory
	Items    []model.MenuItem
}

// Sections loads every category for the menu overview. A failing
// category fails the whole load; the overview has no partial state.
func (s *MenuService) Sections(ctx context.Context) ([]MenuSection, error) {
	sections := make([]MenuSection, 0, len(model.MenuCategories))
	for _, cat := range model.MenuCategories {
		items, err := s.api.MenuItems(ctx, cat)
		if err != nil {
			return nil, err
		}
		sections = append(sections, MenuSection{Category: cat, Items: items})
	}
	return sections, nil
}

// ItemByID loads one dish.
func (s *MenuService) ItemByID(ctx context.Context, category model.MenuCategory, id string) (model.MenuItem, error) {
	return s.api.MenuItemByID(ctx, category, id)
}

// applyCategoryFields clears the optional fields the category's forms
// never expose, so stray submitted values cannot reach the server.
func applyCategoryFields(category model.MenuCategory, item model.MenuItem) model.MenuItem {
	fields := category.Fields()
	if !fields.Description {
		item.Description = ""
	}
	if !fields.Options {
		item.Options = nil
	}
	if !fields.Allergens {
		item.Allergens = nil
	}
	return item
}

// Create adds a dish to a category.
func (s *MenuService) Create(ctx context.Context, actor string, category model.MenuCategory, item model.MenuItem) error {
	err := s.api.CreateMenuItem(ctx, category, applyCategoryFields(category, item))
	recordAudit(ctx, s.audit, s.logger, ports.AuditEntry{
		Actor: actor, Action: "create", EntityKind: "menu-item", EntityID: item.Name, Outcome: outcomeOf(err),
	})
	return err
}

// Update re-submits a dish.
func (s *MenuService) Update(ctx context.Context, actor string, category model.MenuCategory, id string, item model.MenuItem) error {
	err := s.api.UpdateMenuItem(ctx, category, id, applyCategoryFields(category, item))
	recordAudit(ctx, s.audit, s.logger, ports.AuditEntry{
		Actor: actor, Action: "update", EntityKind: "menu-item", EntityID: id, Outcome: outcomeOf(err),
	})
	return err
}

// Delete removes a dish.
func (s *MenuService) Delete(ctx context.Context, actor string, category model.MenuCategory, id string) error {
	err := s.api.DeleteMenuItem(ctx, category, id)
	recordAudit(ctx, s.audit, s.logger, ports.AuditEntry{
		Actor: actor, Action: "delete", EntityKind: "menu-item", EntityID: id, Outcome: outcomeOf(err),
	})
	return err
}
