package models

// CategoryAll is the filter value that matches every category.
const CategoryAll = "All"

// DefaultCategoryColor is used for categories without a configured colour.
const DefaultCategoryColor = "bg-zinc-500"

// Categories is the fixed set of transaction categories, in picker order.
var Categories = []string{
	"Salary", "Freelance", "Investment", "Housing", "Utilities",
	"Shopping", "Food & Dining", "Entertainment", "Transport", "Groceries", "Health",
}

var categoryColors = map[string]string{
	"Salary":        "bg-cyan-500",
	"Freelance":     "bg-cyan-500",
	"Investment":    "bg-blue-500",
	"Housing":       "bg-violet-500",
	"Utilities":     "bg-amber-500",
	"Shopping":      "bg-pink-500",
	"Food & Dining": "bg-orange-500",
	"Entertainment": "bg-purple-500",
	"Transport":     "bg-cyan-500",
	"Groceries":     "bg-lime-500",
	"Health":        "bg-red-500",
}

// IsCategory reports whether name belongs to the fixed category set.
func IsCategory(name string) bool {
	_, ok := categoryColors[name]
	return ok
}

// CategoryColor returns the display colour for a category.
func CategoryColor(name string) string {
	if c, ok := categoryColors[name]; ok {
		return c
	}
	return DefaultCategoryColor
}
