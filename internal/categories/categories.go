// Package categories holds the fixed Spliit category table and lookups over it.
package categories

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cleared-dev/spliit/internal/model"
)

var (
	byID   = make(map[int]model.Category, len(defaultTable))
	byName = make(map[string]map[string]int)
)

func init() {
	for _, c := range defaultTable {
		byID[c.ID] = c
		if byName[c.Grouping] == nil {
			byName[c.Grouping] = make(map[string]int)
		}
		byName[c.Grouping][c.Name] = c.ID
	}
}

// Table returns grouping -> name -> ID. The result is a fresh copy.
func Table() map[string]map[string]int {
	out := make(map[string]map[string]int, len(byName))
	for g, names := range byName {
		inner := make(map[string]int, len(names))
		for n, id := range names {
			inner[n] = id
		}
		out[g] = inner
	}
	return out
}

// ID returns the numeric ID of a category leaf.
func ID(grouping, name string) (int, bool) {
	id, ok := byName[grouping][name]
	return id, ok
}

// Get returns a category by ID.
func Get(id int) (model.Category, bool) {
	c, ok := byID[id]
	return c, ok
}

// Exists reports whether a category ID is known.
func Exists(id int) bool {
	_, ok := byID[id]
	return ok
}

// All returns every category in ID order.
func All() []model.Category {
	out := make([]model.Category, len(defaultTable))
	copy(out, defaultTable)
	return out
}

// Groupings returns the grouping names in table order.
func Groupings() []string {
	var out []string
	seen := make(map[string]bool)
	for _, c := range defaultTable {
		if !seen[c.Grouping] {
			seen[c.Grouping] = true
			out = append(out, c.Grouping)
		}
	}
	return out
}

// Parse resolves user input to a category. Accepted forms are a numeric ID
// ("8"), "Grouping/Name" ("Food and Drink/Dining Out") or a bare leaf name
// ("Dining Out"), all matched case-insensitively. Leaf names containing a slash ("Bus/Train") are matched
// whole before the input is split.
func Parse(s string) (model.Category, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return byID[DefaultID], nil
	}

	if n, err := strconv.Atoi(s); err == nil {
		c, ok := byID[n]
		if !ok {
			return model.Category{}, fmt.Errorf("unknown category ID %d", n)
		}
		return c, nil
	}

	if c, ok := leafByName(s); ok {
		return c, nil
	}

	if grouping, name, ok := strings.Cut(s, "/"); ok {
		if c, ok := leafByPath(strings.TrimSpace(grouping), strings.TrimSpace(name)); ok {
			return c, nil
		}
	}

	return model.Category{}, fmt.Errorf("unknown category %q", s)
}

func leafByName(name string) (model.Category, bool) {
	for _, c := range defaultTable {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return model.Category{}, false
}

func leafByPath(grouping, name string) (model.Category, bool) {
	for _, c := range defaultTable {
		if strings.EqualFold(c.Grouping, grouping) && strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return model.Category{}, false
}
