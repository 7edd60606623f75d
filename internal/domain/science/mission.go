package science

// Mission joins one scientist to one planet. It is the only holder of both foreign keys.
type Mission struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"column:name;type:text;not null" json:"name"`
	ScientistID uint   `gorm:"column:scientist_id;not null;index" json:"scientist_id"`
	PlanetID    uint   `gorm:"column:planet_id;not null;index" json:"planet_id"`
}

func (Mission) TableName() string { return "missions" }

func (m *Mission) Validate() error {
	return requireText("name", m.Name)
}

// MissionView leaves out the parent scientist and planet to keep the shape acyclic.
type MissionView struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	ScientistID uint   `json:"scientist_id"`
	PlanetID    uint   `json:"planet_id"`
}

func (m *Mission) View() MissionView {
	return MissionView{ID: m.ID, Name: m.Name, ScientistID: m.ScientistID, PlanetID: m.PlanetID}
}

func MissionViews(rows []*Mission) []MissionView {
	out := make([]MissionView, 0, len(rows))
	for _, m := range rows {
		if m != nil {
			out = append(out, m.View())
		}
	}
	return out
}

// MissionInput is the POST /missions body. Whether the ids exist is left to the foreign keys.
type MissionInput struct {
	Name        *string `json:"name"`
	ScientistID *uint   `json:"scientist_id"`
	PlanetID    *uint   `json:"planet_id"`
}

func (in MissionInput) Build() (*Mission, error) {
	if err := requireTextPtr("name", in.Name); err != nil {
		return nil, err
	}
	if in.ScientistID == nil {
		return nil, Invalid("scientist_id", "must not be null")
	}
	if in.PlanetID == nil {
		return nil, Invalid("planet_id", "must not be null")
	}
	return &Mission{Name: *in.Name, ScientistID: *in.ScientistID, PlanetID: *in.PlanetID}, nil
}
