package catalog

// FeaturedDiscountThreshold is the policy constant for the featured shelf: a product is
// featured when its discount is strictly greater than this percentage.
const FeaturedDiscountThreshold = 15

const (
	// RelatedLimit caps the "you may also like" list on a product page.
	RelatedLimit = 4
	// PreviewLimit caps the products shown under each category on the categories page.
	PreviewLimit = 4
)

// Store is the read-only catalog. It is immutable after construction and safe for
// concurrent use; every query returns copies.
type Store struct {
	categories []Category
	products   []Product
	byID       map[string]int
}

// NewStore validates the seed and derives category product counts from it.
func NewStore(seed Seed) (*Store, error) {
	categories, products, err := seed.build()
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(categories))
	byID := make(map[string]int, len(products))
	for i, p := range products {
		byID[p.ID] = i
		counts[p.Category]++
	}
	for i := range categories {
		categories[i].ProductCount = counts[categories[i].ID]
	}

	return &Store{
		categories: categories,
		products:   products,
		byID:       byID,
	}, nil
}

// Products returns the whole catalog in seed order.
func (s *Store) Products() []Product {
	return cloneProducts(s.products)
}

// Categories returns every category with its derived product count.
func (s *Store) Categories() []Category {
	out := make([]Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// CategoryByID looks up a single category.
func (s *Store) CategoryByID(id string) (Category, bool) {
	for _, c := range s.categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// ProductByID returns the product with the given id. A missing id is reported through the
// boolean, never as an error.
func (s *Store) ProductByID(id string) (Product, bool) {
	idx, ok := s.byID[id]
	if !ok {
		return Product{}, false
	}
	return s.products[idx].clone(), true
}

// ProductsByCategory returns all products in the category, possibly none.
func (s *Store) ProductsByCategory(categoryID string) []Product {
	return s.collect(func(p Product) bool { return p.Category == categoryID })
}

// FeaturedProducts returns products discounted by more than FeaturedDiscountThreshold.
func (s *Store) FeaturedProducts() []Product {
	return s.collect(func(p Product) bool { return p.DiscountPercent() > FeaturedDiscountThreshold })
}

// RelatedProducts returns up to limit products sharing the category of id, excluding id itself.
func (s *Store) RelatedProducts(id string, limit int) []Product {
	product, ok := s.ProductByID(id)
	if !ok {
		return []Product{}
	}
	related := s.collect(func(p Product) bool { return p.Category == product.Category && p.ID != product.ID })
	return truncate(related, limit)
}

// CategoryPreview returns the first limit products of a category.
func (s *Store) CategoryPreview(categoryID string, limit int) []Product {
	return truncate(s.ProductsByCategory(categoryID), limit)
}

// Filter evaluates opts against the whole catalog.
func (s *Store) Filter(opts FilterOptions) []Product {
	return Filter(s.products, opts)
}

func (s *Store) collect(keep func(Product) bool) []Product {
	out := []Product{}
	for _, p := range s.products {
		if keep(p) {
			out = append(out, p.clone())
		}
	}
	return out
}

func cloneProducts(in []Product) []Product {
	out := make([]Product, len(in))
	for i, p := range in {
		out[i] = p.clone()
	}
	return out
}

func truncate(products []Product, limit int) []Product {
	if limit > 0 && len(products) > limit {
		return products[:limit]
	}
	return products
}
