package science

// Scientist owns zero or more missions; deleting it removes them.
type Scientist struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"column:name;type:text;not null" json:"name"`
	FieldOfStudy string    `gorm:"column:field_of_study;type:text;not null" json:"field_of_study"`
	Missions     []Mission `gorm:"foreignKey:ScientistID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Scientist) TableName() string { return "scientists" }

func (s *Scientist) Validate() error {
	if err := requireText("name", s.Name); err != nil {
		return err
	}
	return requireText("field_of_study", s.FieldOfStudy)
}

type ScientistSummary struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	FieldOfStudy string `json:"field_of_study"`
}

type ScientistDetail struct {
	ID           uint          `json:"id"`
	Name         string        `json:"name"`
	FieldOfStudy string        `json:"field_of_study"`
	Missions     []MissionView `json:"missions"`
}

func (s *Scientist) Summary() ScientistSummary {
	return ScientistSummary{ID: s.ID, Name: s.Name, FieldOfStudy: s.FieldOfStudy}
}

// Detail embeds the scientist's missions; it is always a JSON array, never null.
func (s *Scientist) Detail() ScientistDetail {
	missions := make([]MissionView, 0, len(s.Missions))
	for i := range s.Missions {
		missions = append(missions, s.Missions[i].View())
	}
	return ScientistDetail{
		ID:           s.ID,
		Name:         s.Name,
		FieldOfStudy: s.FieldOfStudy,
		Missions:     missions,
	}
}

func Summaries(rows []*Scientist) []ScientistSummary {
	out := make([]ScientistSummary, 0, len(rows))
	for _, s := range rows {
		if s != nil {
			out = append(out, s.Summary())
		}
	}
	return out
}

// ScientistInput is the POST /scientists body.
type ScientistInput struct {
	Name         *string `json:"name"`
	FieldOfStudy *string `json:"field_of_study"`
}

func (in ScientistInput) Build() (*Scientist, error) {
	if err := requireTextPtr("name", in.Name); err != nil {
		return nil, err
	}
	if err := requireTextPtr("field_of_study", in.FieldOfStudy); err != nil {
		return nil, err
	}
	return &Scientist{Name: *in.Name, FieldOfStudy: *in.FieldOfStudy}, nil
}

// ScientistPatch lists the only fields PATCH /scientists/{id} may change.
type ScientistPatch struct {
	Name         Optional[string] `json:"name"`
	FieldOfStudy Optional[string] `json:"field_of_study"`
}

func (p ScientistPatch) IsEmpty() bool {
	return !p.Name.Set && !p.FieldOfStudy.Set
}

// Apply validates every present field first and only then overwrites, so a rejected
// patch leaves s untouched.
func (p ScientistPatch) Apply(s *Scientist) error {
	if p.Name.Set {
		if err := requireTextPtr("name", p.Name.Value); err != nil {
			return err
		}
	}
	if p.FieldOfStudy.Set {
		if err := requireTextPtr("field_of_study", p.FieldOfStudy.Value); err != nil {
			return err
		}
	}
	if p.Name.Set {
		s.Name = *p.Name.Value
	}
	if p.FieldOfStudy.Set {
		s.FieldOfStudy = *p.FieldOfStudy.Value
	}
	return nil
}
