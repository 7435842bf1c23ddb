package recommend

import "github.com/gemacjr/product-recommender-engine/internal/domain"

// categoryQueue is one category's candidates in their original relevance
// order.
type categoryQueue struct {
	category domain.Category
	items    []domain.Product
}

// diversify picks up to limit products so that the output spans as many
// distinct categories as the candidate pool supports. Candidates are grouped
// by category in first-seen order, then drained one item per category per
// pass until the limit is reached or every queue is empty. Fewer than limit
// results is a valid outcome when the pool is small.
func diversify(candidates []domain.Product, limit int) []domain.Product {
	if limit <= 0 || len(candidates) == 0 {
		return nil
	}

	var queues []*categoryQueue
	index := make(map[domain.Category]*categoryQueue)
	for _, p := range candidates {
		q, ok := index[p.Category]
		if !ok {
			q = &categoryQueue{category: p.Category}
			index[p.Category] = q
			queues = append(queues, q)
		}
		q.items = append(q.items, p)
	}

	picked := make([]domain.Product, 0, limit)
	for {
		took := false
		for _, q := range queues {
			if len(q.items) == 0 {
				continue
			}
			picked = append(picked, q.items[0])
			q.items = q.items[1:]
			took = true
			if len(picked) == limit {
				return picked
			}
		}
		if !took {
			return picked
		}
	}
}
