package grid

import "github.com/heartmarshall/sampletracker-backend/internal/domain"

// Select returns the samples whose id is in ids, in the order of samples.
// Ids that match no sample are dropped.
func Select(samples []domain.Sample, ids []string) []domain.Sample {
	if len(ids) == 0 {
		return []domain.Sample{}
	}
	want := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}

	selected := make([]domain.Sample, 0, len(ids))
	for _, s := range samples {
		if _, ok := want[s.ID]; ok {
			selected = append(selected, s)
		}
	}
	return selected
}

// Tracker holds the current row selection of a table view. The selection is
// advisory: it is not cleared when the sample list is refreshed, so callers
// acting on it should Revalidate first.
type Tracker struct {
	selected []domain.Sample
}

// OnSelectionChange replaces the selection with the samples matching ids.
func (t *Tracker) OnSelectionChange(samples []domain.Sample, ids []string) {
	t.selected = Select(samples, ids)
}

// Selected returns the selected samples.
func (t *Tracker) Selected() []domain.Sample {
	return t.selected
}

// IDs returns the ids of the selected samples in selection order.
func (t *Tracker) IDs() []string {
	ids := make([]string, len(t.selected))
	for i, s := range t.selected {
		ids[i] = s.ID
	}
	return ids
}

// Len returns the number of selected samples.
func (t *Tracker) Len() int { return len(t.selected) }

// Single returns the selected sample when exactly one is selected. Actions
// addressed by a single sample (audit view) are only enabled in that case.
func (t *Tracker) Single() (domain.Sample, bool) {
	if len(t.selected) != 1 {
		return domain.Sample{}, false
	}
	return t.selected[0], true
}

// Revalidate re-resolves the selection against a freshly loaded sample list,
// dropping samples that are no longer present and picking up their current
// state. The tracker is updated and the new selection returned.
func (t *Tracker) Revalidate(current []domain.Sample) []domain.Sample {
	t.selected = Select(current, t.IDs())
	return t.selected
}
