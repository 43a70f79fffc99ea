package inventory

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Store persists the whole content of a Registry.
type Store interface {
	// Load returns the persisted products in their persisted order.
	// A store that was never saved returns no products and no error.
	Load() ([]Product, error)
	// Save replaces the persisted products.
	Save(products []Product) error
}

// Registry is the collection of all the products of the inventory, keyed by
// code.
//
// Products are kept in insertion order, which is also the persisted order.
// Every successful mutation is saved to the registry's Store before it becomes
// visible: if the save fails the registry is left unchanged.
type Registry struct {
	products []Product
	index    map[int]int // code to position in products
	store    Store
}

// NewRegistry creates an empty registry saved into store. A nil store makes
// an in-memory registry.
func NewRegistry(store Store) *Registry {
	return &Registry{
		products: make([]Product, 0),
		index:    make(map[int]int),
		store:    store,
	}
}

// Open creates a registry hydrated from the store content.
//
// On error, the registry is still returned, empty, so that the caller can
// decide to carry on.
func Open(store Store) (*Registry, error) {
	r := NewRegistry(store)
	if store == nil {
		return r, nil
	}
	products, err := store.Load()
	if err != nil {
		return r, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	if err := checkAll(products); err != nil {
		return r, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	r.products = products
	r.reindex()
	return r, nil
}

// checkAll verifies every product and the uniqueness rules of a collection.
func checkAll(products []Product) error {
	codes := make(map[int]struct{}, len(products))
	for i, p := range products {
		if err := p.Validate(); err != nil {
			return err
		}
		if _, exists := codes[p.Code]; exists {
			return fmt.Errorf("%w: %d", ErrDuplicateCode, p.Code)
		}
		codes[p.Code] = struct{}{}
		if err := nameAvailable(products[:i], p.Name, 0); err != nil {
			return err
		}
	}
	return nil
}

func (r *Registry) reindex() {
	r.index = make(map[int]int, len(r.products))
	for i, p := range r.products {
		r.index[p.Code] = i
	}
}

// commit saves next and makes it the registry content.
func (r *Registry) commit(next []Product) error {
	if r.store != nil {
		if err := r.store.Save(next); err != nil {
			return fmt.Errorf("%w: %w", ErrPersistence, err)
		}
	}
	r.products = next
	r.reindex()
	return nil
}

// Len returns the number of products.
func (r *Registry) Len() int { return len(r.products) }

// Get returns the product with this code.
func (r *Registry) Get(code int) (Product, bool) {
	i, exists := r.index[code]
	if !exists {
		return Product{}, false
	}
	return r.products[i], true
}

// Products returns a copy of all the products in registry order.
func (r *Registry) Products() []Product { return slices.Clone(r.products) }

// Add registers a new product, it has not been sold yet.
func (r *Registry) Add(code int, name string, price decimal.Decimal, quantity, minStock int) error {
	return r.Import(NewProduct(code, name, price, quantity, minStock))
}

// Import registers a complete product, including its units sold. It follows
// the same rules as Add.
func (r *Registry) Import(p Product) error {
	if _, exists := r.index[p.Code]; exists {
		return fmt.Errorf("%w: %d", ErrDuplicateCode, p.Code)
	}
	if err := nameAvailable(r.products, p.Name, 0); err != nil {
		return err
	}
	if err := p.Validate(); err != nil {
		return err
	}
	return r.commit(append(slices.Clone(r.products), p))
}

// Changes lists the optional modifications of an update. Nil fields are left
// unchanged.
type Changes struct {
	Name  *string
	Price *decimal.Decimal
	// QuantityDelta is a number of units received, it is added to the current
	// quantity.
	QuantityDelta *int
}

// Update modifies the product with this code. Either all the changes are
// applied and saved or none is.
func (r *Registry) Update(code int, c Changes) error {
	i, exists := r.index[code]
	if !exists {
		return fmt.Errorf("%w: %d", ErrNotFound, code)
	}
	next := slices.Clone(r.products)
	p := &next[i]
	if c.Name != nil {
		if err := nameAvailable(r.products, *c.Name, code); err != nil {
			return err
		}
		p.Name = *c.Name
	}
	if c.Price != nil {
		p.Price = *c.Price
	}
	if c.QuantityDelta != nil {
		p.Quantity += *c.QuantityDelta
	}
	if err := p.Validate(); err != nil {
		return err
	}
	return r.commit(next)
}

// Remove deletes the product with this code.
func (r *Registry) Remove(code int) error {
	i, exists := r.index[code]
	if !exists {
		return fmt.Errorf("%w: %d", ErrNotFound, code)
	}
	return r.commit(slices.Delete(slices.Clone(r.products), i, i+1))
}

// Search returns the products whose code is exactly term, or whose name
// contains term, ignoring case.
func (r *Registry) Search(term string) []Product {
	lower := strings.ToLower(term)
	found := make([]Product, 0)
	for _, p := range r.products {
		if strconv.Itoa(p.Code) == term || strings.Contains(strings.ToLower(p.Name), lower) {
			found = append(found, p)
		}
	}
	return found
}

// RecordSale takes quantity units out of the stock of the product and adds
// them to its units sold.
func (r *Registry) RecordSale(code int, quantity int) error {
	i, exists := r.index[code]
	if !exists {
		return fmt.Errorf("%w: %d", ErrNotFound, code)
	}
	if quantity <= 0 {
		return fmt.Errorf("%w: the quantity sold must be greater than 0, got %d", ErrInvalidInput, quantity)
	}
	if quantity > r.products[i].Quantity {
		return fmt.Errorf("%w: %d units of product %d requested, %d available", ErrInsufficientStock, quantity, code, r.products[i].Quantity)
	}
	next := slices.Clone(r.products)
	next[i].Quantity -= quantity
	next[i].UnitsSold += quantity
	return r.commit(next)
}

// LowStock returns the products whose quantity is at or below their minimum
// stock, in registry order.
func (r *Registry) LowStock() []Product { return lowStock(r.products) }

func lowStock(products []Product) []Product {
	low := make([]Product, 0)
	for _, p := range products {
		if p.IsLowStock() {
			low = append(low, p)
		}
	}
	return low
}
