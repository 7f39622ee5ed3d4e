// Package catalog holds the curated seed data the master generator builds
// on: fixed territory and distributor catalogs (embedded YAML), the product
// taxonomy, and the word pools used for synthetic names.
package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed territories.yaml
var territoriesYAML []byte

//go:embed distributors.yaml
var distributorsYAML []byte

// TerritorySeed is one curated territory record.
type TerritorySeed struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Region   string `yaml:"region"`
	State    string `yaml:"state"`
	Timezone string `yaml:"timezone"`
}

// DistributorSeed is one curated distributor record. Ids and territory
// assignment are derived at generation time.
type DistributorSeed struct {
	Name    string `yaml:"name"`
	Type    string `yaml:"type"`
	HQState string `yaml:"hq_state"`
}

// Territories parses the embedded territory catalog.
func Territories() ([]TerritorySeed, error) {
	var out []TerritorySeed
	if err := yaml.Unmarshal(territoriesYAML, &out); err != nil {
		return nil, fmt.Errorf("failed to parse territory catalog: %w", err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("territory catalog is empty")
	}
	return out, nil
}

// Distributors parses the embedded distributor catalog.
func Distributors() ([]DistributorSeed, error) {
	var out []DistributorSeed
	if err := yaml.Unmarshal(distributorsYAML, &out); err != nil {
		return nil, fmt.Errorf("failed to parse distributor catalog: %w", err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("distributor catalog is empty")
	}
	return out, nil
}

// ProductItem is one leaf of the product taxonomy.
type ProductItem struct {
	Category    string
	Subcategory string
	Name        string
}

// ProductTaxonomy flattens the category → subcategory → item taxonomy into
// generation order. The order is fixed so product ids are stable.
func ProductTaxonomy() []ProductItem {
	var items []ProductItem
	for _, cat := range productCategories {
		for _, sub := range cat.subs {
			for _, name := range sub.items {
				items = append(items, ProductItem{Category: cat.name, Subcategory: sub.name, Name: name})
			}
		}
	}
	return items
}

// Categories returns the distinct product category names in taxonomy order.
func Categories() []string {
	names := make([]string, 0, len(productCategories))
	for _, cat := range productCategories {
		names = append(names, cat.name)
	}
	return names
}

type subcategory struct {
	name  string
	items []string
}

type category struct {
	name string
	subs []subcategory
}

var productCategories = []category{
	{"Proteins", []subcategory{
		{"Beef", []string{"Ground Beef 80/20", "Prime Rib", "Ribeye Steak", "Beef Tenderloin", "Brisket"}},
		{"Poultry", []string{"Chicken Breast", "Chicken Wings", "Turkey Breast", "Duck Breast", "Whole Chicken"}},
		{"Pork", []string{"Pork Chops", "Bacon", "Ham", "Pork Belly", "Pulled Pork"}},
		{"Seafood", []string{"Salmon Fillet", "Shrimp 16/20", "Lobster Tail", "Crab Meat", "Cod Fillet"}},
	}},
	{"Dairy", []subcategory{
		{"Cheese", []string{"Cheddar Block", "Mozzarella Shredded", "Parmesan Wheel", "Blue Cheese", "Brie"}},
		{"Milk", []string{"Whole Milk", "2% Milk", "Heavy Cream", "Half & Half", "Buttermilk"}},
		{"Butter", []string{"Unsalted Butter", "Clarified Butter", "Whipped Butter", "Cultured Butter"}},
	}},
	{"Produce", []subcategory{
		{"Vegetables", []string{"Romaine Lettuce", "Tomatoes", "Onions", "Bell Peppers", "Carrots"}},
		{"Fruits", []string{"Lemons", "Limes", "Berries Mix", "Apples", "Oranges"}},
		{"Herbs", []string{"Fresh Basil", "Cilantro", "Parsley", "Thyme", "Rosemary"}},
	}},
	{"Beverages", []subcategory{
		{"Soft Drinks", []string{"Cola Syrup", "Lemon-Lime Syrup", "Orange Soda Syrup", "Root Beer Syrup"}},
		{"Coffee", []string{"Espresso Beans", "House Blend", "Decaf Coffee", "Cold Brew Concentrate"}},
		{"Juice", []string{"Orange Juice", "Apple Juice", "Cranberry Juice", "Tomato Juice"}},
	}},
	{"Dry Goods", []subcategory{
		{"Grains", []string{"Long Grain Rice", "Pasta Spaghetti", "Flour All Purpose", "Quinoa", "Oats"}},
		{"Canned", []string{"Diced Tomatoes", "Black Beans", "Corn", "Coconut Milk", "Tomato Paste"}},
		{"Oils", []string{"Olive Oil Extra Virgin", "Canola Oil", "Vegetable Oil", "Sesame Oil"}},
	}},
	{"Frozen", []subcategory{
		{"Appetizers", []string{"Mozzarella Sticks", "Jalapeno Poppers", "Egg Rolls", "Onion Rings"}},
		{"Desserts", []string{"Cheesecake", "Chocolate Cake", "Ice Cream Vanilla", "Sorbet Mixed"}},
		{"Prepared", []string{"French Fries", "Onion Rings", "Hash Browns", "Frozen Vegetables Mix"}},
	}},
}

// Brands carried across the catalog.
var Brands = []string{
	"Sysco Classic", "Sysco Imperial", "US Foods Chef's Line",
	"Gordon Choice", "Performance Select", "Restaurant Pride",
	"Kitchen Essentials", "Premium Reserve", "Value Line",
}

// UnitsOfMeasure used on product records.
var UnitsOfMeasure = []string{"LB", "CS", "EA", "GAL", "OZ"}
