package cases

import (
	"github.com/abhisek/casetrack/internal/random"
)

// Catalog is an immutable, indexed set of templates.
type Catalog struct {
	templates []Template
	byID      map[string]int
	byDiff    map[Difficulty][]int
}

var standard = NewCatalog(concat(quickTemplates, fullTemplates, mcqTemplates))

// Standard returns the built-in catalog.
func Standard() *Catalog { return standard }

// NewCatalog indexes templates in the given order. Templates without a
// decision kind are numeric.
func NewCatalog(templates []Template) *Catalog {
	c := &Catalog{
		templates: make([]Template, len(templates)),
		byID:      make(map[string]int, len(templates)),
		byDiff:    make(map[Difficulty][]int),
	}
	copy(c.templates, templates)
	for i := range c.templates {
		t := &c.templates[i]
		if t.Decision.Kind == "" {
			t.Decision = Numeric()
		}
		if _, dup := c.byID[t.ID]; !dup {
			c.byID[t.ID] = i
		}
		c.byDiff[t.Difficulty] = append(c.byDiff[t.Difficulty], i)
	}
	return c
}

func concat(groups ...[]Template) []Template {
	var out []Template
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// Len returns the number of templates.
func (c *Catalog) Len() int { return len(c.templates) }

// All returns every template in declaration order.
func (c *Catalog) All() []*Template {
	out := make([]*Template, len(c.templates))
	for i := range c.templates {
		out[i] = &c.templates[i]
	}
	return out
}

// Get looks a template up by ID.
func (c *Catalog) Get(id string) (*Template, bool) {
	i, ok := c.byID[id]
	if !ok {
		return nil, false
	}
	return &c.templates[i], true
}

// ByDifficulty returns the templates of one difficulty in declaration order.
func (c *Catalog) ByDifficulty(d Difficulty) []*Template {
	idx := c.byDiff[d]
	out := make([]*Template, len(idx))
	for i, j := range idx {
		out[i] = &c.templates[j]
	}
	return out
}

// Pick draws one template of difficulty d uniformly.
func (c *Catalog) Pick(src *random.Source, d Difficulty) (*Template, bool) {
	return random.Choice(src, c.ByDifficulty(d))
}

// Validate checks the catalog's structure. See validate.go.
func (c *Catalog) Validate() error {
	return validateTemplates(c.templates)
}
