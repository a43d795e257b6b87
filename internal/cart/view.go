package cart

import (
	"sort"

	"platra/internal/model"

	"github.com/shopspring/decimal"
)

// SelectionView is a read-only snapshot of an open item dialog.
type SelectionView struct {
	Item       model.MenuItem  `json:"item"`
	Variations []VariationView `json:"variations"`
	Total      decimal.Decimal `json:"total"`
}

// VariationView is one variation of the open item with its selection state.
type VariationView struct {
	model.MenuItemVariation
	Selected bool `json:"selected"`
}

func viewOf(s *Selection) SelectionView {
	vars := make([]VariationView, 0, len(s.item.Variations))
	for _, v := range s.item.Variations {
		vars = append(vars, VariationView{MenuItemVariation: v, Selected: s.IsSelected(v.ID)})
	}
	return SelectionView{
		Item:       s.item,
		Variations: vars,
		Total:      s.Total(),
	}
}

// SelectedIDs returns the ids of the selected variations in ascending order.
func (v SelectionView) SelectedIDs() []string {
	ids := make([]string, 0, len(v.Variations))
	for _, vv := range v.Variations {
		if vv.Selected {
			ids = append(ids, vv.ID)
		}
	}
	sort.Strings(ids)
	return ids
}
