package catalog

// Item is one orderable product. The catalog is fixed configuration,
// not a database table; prices are centavos.
type Item struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Category string `json:"category"`
	Image    string `json:"image"`
	Badge    string `json:"badge,omitempty"`
}

var Items = []Item{
	{ID: 1, Name: "Biscoff® Cookie", Price: 35000, Category: "Box of 4 - Single Flavor Bundles", Image: "/cookies/biscoff.jpg", Badge: "New flavor"},
	{ID: 2, Name: "Matcha Cookie", Price: 35000, Category: "Box of 4 - Single Flavor Bundles", Image: "/cookies/matcha.jpg", Badge: "New flavor"},
	{ID: 3, Name: "Chocolate Chunk Cookie", Price: 30000, Category: "Box of 4 - Single Flavor Bundles", Image: "/cookies/chocolate-chunk.jpg", Badge: "All time favorite"},
	{ID: 4, Name: "Double Chocolate Cookie", Price: 32000, Category: "Box of 4 - Single Flavor Bundles", Image: "/cookies/double-chocolate.jpg"},
	{ID: 5, Name: "S'mores Cookie", Price: 32000, Category: "Box of 4 - Single Flavor Bundles", Image: "/cookies/smores.jpg"},
	{ID: 6, Name: "Red Velvet Cookie", Price: 38000, Category: "Box of 4 - Single Flavor Bundles", Image: "/cookies/red-velvet.jpg", Badge: "Best seller"},
	{ID: 7, Name: "Classic Assorted Bundle", Price: 35000, Category: "Box of 4 - Assorted Bundles", Image: "/cookies/classic-assorted.jpg", Badge: "Best seller"},
	{ID: 8, Name: "Premium Assorted Bundle", Price: 38000, Category: "Box of 4 - Assorted Bundles", Image: "/cookies/premium-assorted.jpg"},
}

// FindByName returns the catalog item with the given name, nil if unknown.
func FindByName(name string) *Item {
	for i := range Items {
		if Items[i].Name == name {
			return &Items[i]
		}
	}
	return nil
}

func FindByID(id int) *Item {
	for i := range Items {
		if Items[i].ID == id {
			return &Items[i]
		}
	}
	return nil
}
