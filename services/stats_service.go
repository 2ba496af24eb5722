package services

import (
	"sort"
	"time"

	"crumella-backend/entity"
)

type MonthBucket struct {
	Label   string `json:"label"` // e.g. "Sep 26"
	Count   int    `json:"count"`
	Revenue int64  `json:"revenue"`
}

type BestSeller struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type Stats struct {
	Monthly    []MonthBucket `json:"monthly"`
	BestSeller BestSeller    `json:"bestSeller"`
	TotalBoxes int           `json:"totalBoxes"`
}

// BuildStats folds an order list into month buckets and a best-selling
// product. Pure; recomputed on every dashboard load.
func BuildStats(orders []entity.Order) Stats {
	if len(orders) == 0 {
		return Stats{Monthly: []MonthBucket{}, BestSeller: BestSeller{Name: "No sales yet"}}
	}

	type monthAgg struct {
		count   int
		revenue int64
	}
	monthly := map[string]*monthAgg{}
	productCounts := map[string]int{}
	productOrder := []string{} // first-encountered order, decides ties
	totalBoxes := 0

	for i := range orders {
		o := &orders[i]
		key := o.CreatedAt.Format("2006-01")
		agg := monthly[key]
		if agg == nil {
			agg = &monthAgg{}
			monthly[key] = agg
		}
		agg.count++
		agg.revenue += o.Total

		for _, it := range o.Items {
			if _, seen := productCounts[it.Name]; !seen {
				productOrder = append(productOrder, it.Name)
			}
			productCounts[it.Name] += it.Qty
			totalBoxes += it.Qty
		}
	}

	keys := make([]string, 0, len(monthly))
	for k := range monthly {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	buckets := make([]MonthBucket, 0, len(keys))
	for _, k := range keys {
		t, _ := time.Parse("2006-01", k)
		buckets = append(buckets, MonthBucket{
			Label:   t.Format("Jan 06"),
			Count:   monthly[k].count,
			Revenue: monthly[k].revenue,
		})
	}

	best := BestSeller{Name: "No sales yet"}
	for _, name := range productOrder {
		if productCounts[name] > best.Count {
			best = BestSeller{Name: name, Count: productCounts[name]}
		}
	}

	return Stats{Monthly: buckets, BestSeller: best, TotalBoxes: totalBoxes}
}
