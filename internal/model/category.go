package model

import "fmt"

// Category is a leaf of the two-level expense taxonomy.
type Category struct {
	ID       int    `json:"id"`
	Grouping string `json:"grouping"`
	Name     string `json:"name"`
}

// String returns "Grouping/Name".
func (c Category) String() string {
	return fmt.Sprintf("%s/%s", c.Grouping, c.Name)
}
