package catalog

import "testing"

func TestFindByID(t *testing.T) {
	if item := FindByID(3); item == nil || item.Name != "Chocolate Chunk Cookie" || item.Price != 30000 {
		t.Fatalf("FindByID(3) = %+v", item)
	}
	if FindByID(0) != nil || FindByID(99) != nil {
		t.Fatal("unknown id resolved")
	}
}

func TestFindByName(t *testing.T) {
	if item := FindByName("Premium Assorted Bundle"); item == nil || item.ID != 8 {
		t.Fatalf("FindByName = %+v", item)
	}
	if FindByName("Oatmeal Cookie") != nil {
		t.Fatal("unknown name resolved")
	}
}

func TestCatalogIntegrity(t *testing.T) {
	ids := map[int]bool{}
	for _, item := range Items {
		if ids[item.ID] {
			t.Errorf("duplicate id %d", item.ID)
		}
		ids[item.ID] = true
		if item.Price <= 0 {
			t.Errorf("%s has price %d", item.Name, item.Price)
		}
		if item.Category == "" || item.Image == "" {
			t.Errorf("%s missing category or image", item.Name)
		}
	}
}
