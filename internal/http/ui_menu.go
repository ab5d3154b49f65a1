package httpx

import (
	"fmt"
	"net/http"

	"github.com/moness/staff-portal/internal/domain/model"
)

const menuPath = "/flemmyng-menu-overview"

// MenuOverview renders every section of the Flemmyng menu.
func (h *UIHandlers) MenuOverview(w http.ResponseWriter, r *http.Request) {
	sections, err := h.Menu.Sections(r.Context())
	if err != nil {
		h.redirectWithAlert(w, r, model.AlertPayload{
			Heading:        "Load Failed",
			Message:        "Could not load item data. Please try again.",
			ButtonLabel:    "Back to Flemmyng Menu",
			TargetLocation: menuPath,
		})
		return
	}

	h.render(w, NewTemplateData(r, PageMeta{Title: "Flemmyng Menu", CurrentPage: PageMenuOverview}).
		With("Sections", sections).
		Build())
}

// CreateMenuItemForm renders the blank item form for one category.
func (h *UIHandlers) CreateMenuItemForm(w http.ResponseWriter, r *http.Request) {
	category := model.MenuCategory(r.PathValue("category"))
	if !category.Valid() {
		h.NotFound(w, r)
		return
	}

	h.render(w, h.menuItemFormData(r, category, model.MenuItem{}, FormModeCreate).Build())
}

// CreateMenuItemSubmit creates the dish in its category.
func (h *UIHandlers) CreateMenuItemSubmit(w http.ResponseWriter, r *http.Request) {
	category := model.MenuCategory(r.PathValue("category"))
	if !category.Valid() {
		h.NotFound(w, r)
		return
	}
	item := menuItemFromForm(r)

	if item.Name == "" || item.Price <= 0 {
		h.render(w, h.menuItemFormData(r, category, item, FormModeCreate).
			WithError("Please provide a name and a price.").
			Build())
		return
	}

	if err := h.Menu.Create(r.Context(), actor(r), category, item); err != nil {
		h.redirectWithAlert(w, r, model.AlertPayload{
			Heading:        "Create Failed",
			Message:        "There was an error creating this item. Please try again.",
			ButtonLabel:    "Back to Flemmyng Menu",
			TargetLocation: menuPath,
		})
		return
	}

	h.redirectWithAlert(w, r, model.AlertPayload{
		Heading:        "Menu Item Created",
		Message:        "New menu item successfully created.",
		ButtonLabel:    "Back to Flemmyng Menu",
		TargetLocation: menuPath,
	})
}

// EditMenuItemForm loads the dish into the item form.
func (h *UIHandlers) EditMenuItemForm(w http.ResponseWriter, r *http.Request) {
	category := model.MenuCategory(r.PathValue("category"))
	if !category.Valid() {
		h.NotFound(w, r)
		return
	}

	item, err := h.Menu.ItemByID(r.Context(), category, r.PathValue("id"))
	if err != nil {
		h.redirectWithAlert(w, r, model.AlertPayload{
			Heading:        "Load Failed",
			Message:        "Could not load item data. Please try again.",
			ButtonLabel:    "Back to Flemmyng Menu",
			TargetLocation: menuPath,
		})
		return
	}

	h.render(w, h.menuItemFormData(r, category, item, FormModeEdit).Build())
}

// EditMenuItemSubmit re-submits the dish.
func (h *UIHandlers) EditMenuItemSubmit(w http.ResponseWriter, r *http.Request) {
	category := model.MenuCategory(r.PathValue("category"))
	if !category.Valid() {
		h.NotFound(w, r)
		return
	}
	item := menuItemFromForm(r)

	if err := h.Menu.Update(r.Context(), actor(r), category, r.PathValue("id"), item); err != nil {
		h.redirectWithAlert(w, r, model.AlertPayload{
			Heading:        "Update Failed",
			Message:        "There was an error updating this item. Please try again.",
			ButtonLabel:    "Back to Flemmyng Menu",
			TargetLocation: menuPath,
		})
		return
	}

	h.redirectWithAlert(w, r, model.AlertPayload{
		Heading:        "Menu Item Updated",
		Message:        "Menu item successfully updated.",
		ButtonLabel:    "Back to Flemmyng Menu",
		TargetLocation: menuPath,
	})
}

// DeleteMenuItem removes the dish and reports the outcome as an alert.
func (h *UIHandlers) DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	category := model.MenuCategory(r.PathValue("category"))
	if !category.Valid() {
		h.NotFound(w, r)
		return
	}

	if err := h.Menu.Delete(r.Context(), actor(r), category, r.PathValue("id")); err != nil {
		h.redirectWithAlert(w, r, model.AlertPayload{
			Heading:        "Delete Failed",
			Message:        "There was an error deleting this item. Please try again.",
			ButtonLabel:    "Back to Flemmyng Menu",
			TargetLocation: menuPath,
		})
		return
	}

	h.redirectWithAlert(w, r, model.AlertPayload{
		Heading:        "Menu Item Deleted",
		Message:        "The item was successfully deleted.",
		ButtonLabel:    "Back to Flemmyng Menu",
		TargetLocation: menuPath,
	})
}

// menuItemFormData seeds the shared create/edit item form. Field
// visibility and the option/allergen choices come from the category.
func (h *UIHandlers) menuItemFormData(r *http.Request, category model.MenuCategory, item model.MenuItem, mode FormMode) *TemplateDataBuilder {
	title := "New Menu Item"
	if mode == FormModeEdit {
		title = "Edit Menu Item"
	}
	return NewTemplateData(r, PageMeta{Title: title, CurrentPage: PageMenuItemForm}).
		With("Category", category).
		With("Fields", category.Fields()).
		With("Item", item).
		With("FormMode", mode).
		With("DietaryOptions", model.DietaryOptions).
		With("AllergenCodes", model.AllergenCodes)
}

func menuItemFromForm(r *http.Request) model.MenuItem {
	_ = r.ParseForm()
	price := 0.0
	if _, err := fmt.Sscanf(r.FormValue("price"), "%g", &price); err != nil {
		price = 0
	}
	return model.MenuItem{
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
		Price:       price,
		Options:     r.Form["options"],
		Allergens:   r.Form["allergens"],
	}
}
