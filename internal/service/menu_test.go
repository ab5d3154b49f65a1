package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moness/staff-portal/internal/api"
	"github.com/moness/staff-portal/internal/domain/model"
	"github.com/moness/staff-portal/internal/mocks/remote"
	"github.com/moness/staff-portal/internal/service"
)

func TestSectionsLoadsEveryCategoryInOrder(t *testing.T) {
	var requested []model.MenuCategory
	mock := &remote.MockAPI{
		MenuItemsFunc: func(_ context.Context, category model.MenuCategory) ([]model.MenuItem, error) {
			requested = append(requested, category)
			return []model.MenuItem{{Name: "dish for " + string(category)}}, nil
		},
	}
	svc := service.NewMenuService(service.MenuServiceOptions{API: mock})

	sections, err := svc.Sections(context.Background())
	require.NoError(t, err)
	require.Len(t, sections, len(model.MenuCategories))
	assert.Equal(t, model.MenuCategories, requested)
	for i, section := range sections {
		assert.Equal(t, model.MenuCategories[i], section.Category)
		require.Len(t, section.Items, 1)
	}
}

func TestSectionsFailsWholeLoadOnOneCategory(t *testing.T) {
	mock := &remote.MockAPI{
		MenuItemsFunc: func(_ context.Context, category model.MenuCategory) ([]model.MenuItem, error) {
			if category == model.CategoryMains {
				return nil, &api.Error{Code: "500", Message: "boom"}
			}
			return nil, nil
		},
	}
	svc := service.NewMenuService(service.MenuServiceOptions{API: mock})

	sections, err := svc.Sections(context.Background())
	require.Error(t, err)
	assert.Nil(t, sections)
}

func TestCreateClearsFieldsTheCategoryNeverShows(t *testing.T) {
	var sent model.MenuItem
	mock := &remote.MockAPI{
		CreateMenuItemFunc: func(_ context.Context, _ model.MenuCategory, item model.MenuItem) error {
			sent = item
			return nil
		},
	}
	svc := service.NewMenuService(service.MenuServiceOptions{API: mock, Audit: &remote.RecordingAudit{}})

	// Sides carry options and allergens but never a description.
	err := svc.Create(context.Background(), "ada@moness.com", model.CategorySides, model.MenuItem{
		Name:        "Triple cooked chips",
		Description: "should be dropped",
		Price:       4.5,
		Options:     []string{"GF"},
		Allergens:   []string{"G"},
	})
	require.NoError(t, err)

	assert.Empty(t, sent.Description)
	assert.Equal(t, []string{"GF"}, sent.Options)
	assert.Equal(t, []string{"G"}, sent.Allergens)
}

func TestUpdateClearsEverythingButAllergensForWhileYouWait(t *testing.T) {
	var sent model.MenuItem
	mock := &remote.MockAPI{
		UpdateMenuItemFunc: func(_ context.Context, _ model.MenuCategory, _ string, item model.MenuItem) error {
			sent = item
			return nil
		},
	}
	audit := &remote.RecordingAudit{}
	svc := service.NewMenuService(service.MenuServiceOptions{API: mock, Audit: audit})

	err := svc.Update(context.Background(), "ada@moness.com", model.CategoryWhileYouWait, "dish1", model.MenuItem{
		Name:        "Olives",
		Description: "stray",
		Options:     []string{"Vg"},
		Allergens:   []string{"Sd"},
	})
	require.NoError(t, err)

	assert.Empty(t, sent.Description)
	assert.Nil(t, sent.Options)
	assert.Equal(t, []string{"Sd"}, sent.Allergens)

	require.Len(t, audit.Entries, 1)
	assert.Equal(t, "menu-item", audit.Entries[0].EntityKind)
	assert.Equal(t, "dish1", audit.Entries[0].EntityID)
}

func TestDeleteMenuItemAuditsFailure(t *testing.T) {
	mock := &remote.MockAPI{
		DeleteMenuItemFunc: func(context.Context, model.MenuCategory, string) error {
			return &api.Error{Code: "502", Message: "delete failed"}
		},
	}
	audit := &remote.RecordingAudit{}
	svc := service.NewMenuService(service.MenuServiceOptions{API: mock, Audit: audit})

	err := svc.Delete(context.Background(), "ada@moness.com", model.CategoryDesserts, "dish9")
	require.Error(t, err)
	require.Len(t, audit.Entries, 1)
	assert.Equal(t, "failure", audit.Entries[0].Outcome)
}
