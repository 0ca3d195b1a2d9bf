package compliance

import (
	"strings"

	"github.com/platewatch/platewatch/internal/model"
)

// KeySeparator joins resolved field values into a group key.
const KeySeparator = " | "

// Tally holds per-status counts for a set of records.
type Tally struct {
	ByStatus map[model.Status]int
	Total    int
}

// NewTally returns a tally with a counter for every status.
func NewTally() Tally {
	byStatus := make(map[model.Status]int, len(model.AllStatuses()))
	for _, s := range model.AllStatuses() {
		byStatus[s] = 0
	}
	return Tally{ByStatus: byStatus}
}

// Add counts one record classified as s.
func (t *Tally) Add(s model.Status) {
	t.Total++
	t.ByStatus[s]++
}

// Percent returns the share of the tally held by status s, as a percentage
// of the total. Zero totals yield zero.
func (t Tally) Percent(s model.Status) float64 {
	if t.Total == 0 {
		return 0
	}
	return 100 * float64(t.ByStatus[s]) / float64(t.Total)
}

// Group is one partition of the dataset: the records whose grouping fields
// all resolved to the same values, in input order, with a status tally.
type Group struct {
	Key   string
	Items []model.Record
	Tally Tally
}

// Grouping is an order-preserving mapping from group key to group. Key
// order is the first-occurrence order of each key in the input, which keeps
// rendering deterministic.
type Grouping struct {
	byKey map[string]*Group
	keys  []string
}

// Keys returns the group keys in first-occurrence order.
func (g *Grouping) Keys() []string { return g.keys }

// Group returns the group for key, if present.
func (g *Grouping) Group(key string) (*Group, bool) {
	grp, ok := g.byKey[key]
	return grp, ok
}

// Groups returns all groups in key order.
func (g *Grouping) Groups() []*Group {
	groups := make([]*Group, 0, len(g.keys))
	for _, key := range g.keys {
		groups = append(groups, g.byKey[key])
	}
	return groups
}

// Len returns the number of groups.
func (g *Grouping) Len() int { return len(g.keys) }

// GroupBy partitions records by the ordered concatenation of the named
// fields' values. A field that is absent or empty on a record resolves to
// model.GroupPlaceholder, so every record lands in exactly one group; an
// empty field list collapses everything into a single group keyed by the
// empty string.
func GroupBy(records []model.Record, fields []string) *Grouping {
	grouping := &Grouping{byKey: make(map[string]*Group)}

	for _, record := range records {
		values := make([]string, len(fields))
		for i, field := range fields {
			values[i] = record.FieldValue(field)
		}
		key := strings.Join(values, KeySeparator)

		group, ok := grouping.byKey[key]
		if !ok {
			group = &Group{Key: key, Tally: NewTally()}
			grouping.byKey[key] = group
			grouping.keys = append(grouping.keys, key)
		}

		group.Items = append(group.Items, record)
		group.Tally.Add(Classify(record))
	}

	return grouping
}
