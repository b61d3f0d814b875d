package categories

import "github.com/cleared-dev/spliit/internal/model"

// DefaultID is the "Uncategorized/General" leaf used when no category is given.
const DefaultID = 0

// defaultTable mirrors Spliit's own category enumeration. IDs are fixed by
// the server and must not be renumbered.
var defaultTable = []model.Category{
	{ID: 0, Grouping: "Uncategorized", Name: "General"},
	{ID: 1, Grouping: "Uncategorized", Name: "Payment"},
	{ID: 2, Grouping: "Entertainment", Name: "Entertainment"},
	{ID: 3, Grouping: "Entertainment", Name: "Games"},
	{ID: 4, Grouping: "Entertainment", Name: "Movies"},
	{ID: 5, Grouping: "Entertainment", Name: "Music"},
	{ID: 6, Grouping: "Entertainment", Name: "Sports"},
	{ID: 7, Grouping: "Food and Drink", Name: "Food and Drink"},
	{ID: 8, Grouping: "Food and Drink", Name: "Dining Out"},
	{ID: 9, Grouping: "Food and Drink", Name: "Groceries"},
	{ID: 10, Grouping: "Food and Drink", Name: "Liquor"},
	{ID: 11, Grouping: "Home", Name: "Home"},
	{ID: 12, Grouping: "Home", Name: "Electronics"},
	{ID: 13, Grouping: "Home", Name: "Furniture"},
	{ID: 14, Grouping: "Home", Name: "Household Supplies"},
	{ID: 15, Grouping: "Home", Name: "Maintenance"},
	{ID: 16, Grouping: "Home", Name: "Mortgage"},
	{ID: 17, Grouping: "Home", Name: "Pets"},
	{ID: 18, Grouping: "Home", Name: "Rent"},
	{ID: 19, Grouping: "Home", Name: "Services"},
	{ID: 20, Grouping: "Life", Name: "Childcare"},
	{ID: 21, Grouping: "Life", Name: "Clothing"},
	{ID: 22, Grouping: "Life", Name: "Education"},
	{ID: 23, Grouping: "Life", Name: "Gifts"},
	{ID: 24, Grouping: "Life", Name: "Insurance"},
	{ID: 25, Grouping: "Life", Name: "Medical Expenses"},
	{ID: 26, Grouping: "Life", Name: "Taxes"},
	{ID: 27, Grouping: "Transportation", Name: "Transportation"},
	{ID: 28, Grouping: "Transportation", Name: "Bicycle"},
	{ID: 29, Grouping: "Transportation", Name: "Bus/Train"},
	{ID: 30, Grouping: "Transportation", Name: "Car"},
	{ID: 31, Grouping: "Transportation", Name: "Gas/Fuel"},
	{ID: 32, Grouping: "Transportation", Name: "Hotel"},
	{ID: 33, Grouping: "Transportation", Name: "Parking"},
	{ID: 34, Grouping: "Transportation", Name: "Plane"},
	{ID: 35, Grouping: "Transportation", Name: "Taxi"},
	{ID: 36, Grouping: "Utilities", Name: "Utilities"},
	{ID: 37, Grouping: "Utilities", Name: "Cleaning"},
	{ID: 38, Grouping: "Utilities", Name: "Electricity"},
	{ID: 39, Grouping: "Utilities", Name: "Heat/Gas"},
	{ID: 40, Grouping: "Utilities", Name: "Trash"},
	{ID: 41, Grouping: "Utilities", Name: "TV/Phone/Internet"},
	{ID: 42, Grouping: "Utilities", Name: "Water"},
}
