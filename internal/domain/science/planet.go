package science

type Planet struct {
	ID                uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name              string    `gorm:"column:name;type:text" json:"name"`
	DistanceFromEarth int       `gorm:"column:distance_from_earth" json:"distance_from_earth"`
	NearestStar       string    `gorm:"column:nearest_star;type:text" json:"nearest_star"`
	Missions          []Mission `gorm:"foreignKey:PlanetID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Planet) TableName() string { return "planets" }

type PlanetView struct {
	ID                uint   `json:"id"`
	Name              string `json:"name"`
	DistanceFromEarth int    `json:"distance_from_earth"`
	NearestStar       string `json:"nearest_star"`
}

func (p *Planet) View() PlanetView {
	return PlanetView{
		ID:                p.ID,
		Name:              p.Name,
		DistanceFromEarth: p.DistanceFromEarth,
		NearestStar:       p.NearestStar,
	}
}

func PlanetViews(rows []*Planet) []PlanetView {
	out := make([]PlanetView, 0, len(rows))
	for _, p := range rows {
		if p != nil {
			out = append(out, p.View())
		}
	}
	return out
}

// PlanetInput is the POST /planets body. Planets carry no field validation.
type PlanetInput struct {
	Name              *string `json:"name"`
	DistanceFromEarth *int    `json:"distance_from_earth"`
	NearestStar       *string `json:"nearest_star"`
}

func (in PlanetInput) Build() (*Planet, error) {
	p := &Planet{}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.DistanceFromEarth != nil {
		p.DistanceFromEarth = *in.DistanceFromEarth
	}
	if in.NearestStar != nil {
		p.NearestStar = *in.NearestStar
	}
	return p, nil
}
