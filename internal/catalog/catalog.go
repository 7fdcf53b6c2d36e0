package catalog

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrUnknownCountry  = errors.New("unknown country")
	ErrUnknownCategory = errors.New("unknown category")
	ErrUnknownPackage  = errors.New("unknown package")
	ErrInvalidOrderID  = errors.New("invalid order id")
)

type Country string

const (
	CountryNigeria Country = "NG"
	CountryGhana   Country = "GH"
)

// Order ids carry the country in their prefix, e.g. RAD-123456-ABC.
var orderPrefixes = map[string]Country{
	"RAD-": CountryNigeria,
	"RGH-": CountryGhana,
}

// CountryFromOrderID resolves the country encoded in an order id prefix.
func CountryFromOrderID(orderID string) (Country, error) {
	id := strings.ToUpper(strings.TrimSpace(orderID))
	for prefix, country := range orderPrefixes {
		if strings.HasPrefix(id, prefix) {
			return country, nil
		}
	}
	return "", fmt.Errorf("%w: order id %q", ErrUnknownCountry, orderID)
}

var orderIDPattern = regexp.MustCompile(`^[A-Z]{3}-[0-9]{6}-[A-Z0-9]{3}$`)

// ParseOrderID normalises an order id and checks it has the form
// <PREFIX><6 digits>-<3 alphanumerics> with a known country prefix.
func ParseOrderID(orderID string) (string, Country, error) {
	id := strings.ToUpper(strings.TrimSpace(orderID))
	if !orderIDPattern.MatchString(id) {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidOrderID, orderID)
	}
	country, err := CountryFromOrderID(id)
	if err != nil {
		return "", "", err
	}
	return id, country, nil
}

// OrderPrefix returns the order id prefix used for a country.
func OrderPrefix(c Country) string {
	for prefix, country := range orderPrefixes {
		if country == c {
			return prefix
		}
	}
	return ""
}

func ParseCountry(s string) (Country, error) {
	switch Country(strings.ToUpper(strings.TrimSpace(s))) {
	case CountryNigeria:
		return CountryNigeria, nil
	case CountryGhana:
		return CountryGhana, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCountry, s)
}

type Package struct {
	ID           string          `json:"id"`
	Category     string          `json:"category"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	Outfits      int             `json:"outfits"`
	EditedImages int             `json:"editedImages"`
	Description  string          `json:"description,omitempty"`
}

type AddOn struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type Category struct {
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	Group GroupPricing `json:"-"`
}

// IsGroup reports whether packages in the category are priced by group size.
func (c Category) IsGroup() bool { return c.Group != nil }

// Table is the immutable price list of one country.
type Table struct {
	Country    Country
	Currency   string
	categories map[string]Category
	packages   map[string]map[string]Package
	addOns     map[string]AddOn
	addOnOrder []string
}

// NewTable builds a country price list. It panics when a package names a
// category that is not in cats.
func NewTable(country Country, currency string, cats []Category, pkgs []Package, addOns []AddOn) *Table {
	t := &Table{
		Country:    country,
		Currency:   currency,
		categories: make(map[string]Category, len(cats)),
		packages:   make(map[string]map[string]Package, len(cats)),
		addOns:     make(map[string]AddOn, len(addOns)),
	}
	for _, c := range cats {
		t.categories[c.ID] = c
		t.packages[c.ID] = make(map[string]Package)
	}
	for _, p := range pkgs {
		if _, ok := t.packages[p.Category]; !ok {
			panic(fmt.Sprintf("catalog %s: package %s references unknown category %s", country, p.ID, p.Category))
		}
		t.packages[p.Category][p.ID] = p
	}
	for _, a := range addOns {
		t.addOns[a.ID] = a
		t.addOnOrder = append(t.addOnOrder, a.ID)
	}
	return t
}

func (t *Table) Category(id string) (Category, error) {
	c, ok := t.categories[id]
	if !ok {
		return Category{}, fmt.Errorf("%w: %q", ErrUnknownCategory, id)
	}
	return c, nil
}

func (t *Table) Package(category, id string) (Package, error) {
	pkgs, ok := t.packages[category]
	if !ok {
		return Package{}, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	p, ok := pkgs[id]
	if !ok {
		return Package{}, fmt.Errorf("%w: %q in category %q", ErrUnknownPackage, id, category)
	}
	return p, nil
}

func (t *Table) AddOn(id string) (AddOn, bool) {
	a, ok := t.addOns[id]
	return a, ok
}

// Packages lists the packages of a category sorted by price, or every
// package when category is empty.
func (t *Table) Packages(category string) ([]Package, error) {
	var out []Package
	if category == "" {
		for _, pkgs := range t.packages {
			for _, p := range pkgs {
				out = append(out, p)
			}
		}
	} else {
		pkgs, ok := t.packages[category]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
		}
		for _, p := range pkgs {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		if !out[i].Price.Equal(out[j].Price) {
			return out[i].Price.LessThan(out[j].Price)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (t *Table) AddOns() []AddOn {
	out := make([]AddOn, 0, len(t.addOnOrder))
	for _, id := range t.addOnOrder {
		out = append(out, t.addOns[id])
	}
	return out
}

func (t *Table) Categories() []Category {
	out := make([]Category, 0, len(t.categories))
	for _, c := range t.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// GroupPrice is the package price for a party of groupSize people. Non-group
// categories and groups of two or fewer pay the base price.
func (t *Table) GroupPrice(category string, pkg Package, groupSize int) (decimal.Decimal, error) {
	c, err := t.Category(category)
	if err != nil {
		return decimal.Zero, err
	}
	if !c.IsGroup() || groupSize <= 2 {
		return pkg.Price, nil
	}
	return pkg.Price.Add(c.Group.Surcharge(groupSize)), nil
}

// Catalog holds one Table per country.
type Catalog struct {
	tables map[Country]*Table
}

func New(tables ...*Table) *Catalog {
	c := &Catalog{tables: make(map[Country]*Table, len(tables))}
	for _, t := range tables {
		c.tables[t.Country] = t
	}
	return c
}

// Default returns the built-in Nigeria and Ghana price lists.
func Default() *Catalog {
	return New(nigeriaTable(), ghanaTable())
}

func (c *Catalog) Lookup(country Country) (*Table, error) {
	t, ok := c.tables[country]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCountry, country)
	}
	return t, nil
}
