package spotlight

// DataSource is anything that can answer a spotlight query.
type DataSource interface {
	Find(q string) []Item
}

type Spotlight interface {
	Register(ds DataSource)
	Find(q string) []Item
}

func New() Spotlight {
	return &spotlight{}
}

type spotlight struct {
	sources []DataSource
}

func (s *spotlight) Register(ds DataSource) {
	s.sources = append(s.sources, ds)
}

func (s *spotlight) Find(q string) []Item {
	if q == "" {
		return nil
	}
	var out []Item
	for _, ds := range s.sources {
		out = append(out, ds.Find(q)...)
	}
	return out
}
