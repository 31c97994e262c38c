package engine

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Catalog is the per-subject topic reference list. Subject order and topic order are
// preserved; they decide ties when scores are equal.
type Catalog struct {
	order    []string
	subjects map[string][]Topic
}

type catalogFile struct {
	Subjects []struct {
		Name   string  `yaml:"name"`
		Topics []Topic `yaml:"topics"`
	} `yaml:"subjects"`
}

func DefaultCatalog() *Catalog {
	c := &Catalog{subjects: make(map[string][]Topic)}
	c.add("Physics", []Topic{
		{Name: "Mechanics", Weight: 1.0, Difficulty: Medium},
		{Name: "Electromagnetism", Weight: 1.2, Difficulty: Hard},
		{Name: "Thermodynamics", Weight: 0.9, Difficulty: Medium},
		{Name: "Optics", Weight: 0.8, Difficulty: Easy},
	})
	c.add("Math", []Topic{
		{Name: "Calculus", Weight: 1.2, Difficulty: Hard},
		{Name: "Algebra", Weight: 1.0, Difficulty: Medium},
		{Name: "Trigonometry", Weight: 0.8, Difficulty: Medium},
		{Name: "Statistics", Weight: 0.7, Difficulty: Easy},
	})
	c.add("Chemistry", []Topic{
		{Name: "Organic Chemistry", Weight: 1.1, Difficulty: Hard},
		{Name: "Inorganic Chemistry", Weight: 0.9, Difficulty: Medium},
		{Name: "Physical Chemistry", Weight: 1.0, Difficulty: Hard},
	})
	return c
}

// LoadCatalogFile reads a YAML catalog from disk.
func LoadCatalogFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadCatalog(f)
}

// LoadCatalog decodes
//
//	subjects:
//	  - name: Math
//	    topics:
//	      - {name: Calculus, weight: 1.2, difficulty: hard}
func LoadCatalog(r io.Reader) (*Catalog, error) {
	var file catalogFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	c := &Catalog{subjects: make(map[string][]Topic)}
	for _, s := range file.Subjects {
		if s.Name == "" {
			return nil, fmt.Errorf("catalog: subject without name")
		}
		if _, dup := c.subjects[s.Name]; dup {
			return nil, fmt.Errorf("catalog: duplicate subject %q", s.Name)
		}
		for _, t := range s.Topics {
			if t.Name == "" {
				return nil, fmt.Errorf("catalog: subject %q has a topic without name", s.Name)
			}
			if t.Weight <= 0 {
				return nil, fmt.Errorf("catalog: topic %q weight must be positive", t.Name)
			}
		}
		c.add(s.Name, s.Topics)
	}
	return c, nil
}

func (c *Catalog) add(subject string, topics []Topic) {
	owned := make([]Topic, len(topics))
	for i, t := range topics {
		t.Subject = subject
		if t.Difficulty == "" {
			t.Difficulty = Medium
		}
		owned[i] = t
	}
	c.order = append(c.order, subject)
	c.subjects[subject] = owned
}

// Topics returns a copy of the subject's topics, or nil for an unknown subject.
func (c *Catalog) Topics(subject string) []Topic {
	topics, ok := c.subjects[subject]
	if !ok {
		return nil
	}
	return append([]Topic(nil), topics...)
}

func (c *Catalog) Subjects() []string {
	return append([]string(nil), c.order...)
}

func (c *Catalog) Has(subject string) bool {
	_, ok := c.subjects[subject]
	return ok
}
