package science

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/yungbote/missions-backend/internal/platform/pointers"
)

func TestScientistInputBuild(t *testing.T) {
	cases := []struct {
		name      string
		in        ScientistInput
		wantField string
	}{
		{name: "valid", in: ScientistInput{Name: pointers.String("Ada"), FieldOfStudy: pointers.String("Math")}},
		{name: "null name", in: ScientistInput{FieldOfStudy: pointers.String("Math")}, wantField: "name"},
		{name: "blank name", in: ScientistInput{Name: pointers.String("   "), FieldOfStudy: pointers.String("Math")}, wantField: "name"},
		{name: "empty field", in: ScientistInput{Name: pointers.String("Ada"), FieldOfStudy: pointers.String("")}, wantField: "field_of_study"},
		{name: "null field", in: ScientistInput{Name: pointers.String("Ada")}, wantField: "field_of_study"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.in.Build()
			if tc.wantField == "" {
				if err != nil {
					t.Fatalf("Build: %v", err)
				}
				if got.Name != *tc.in.Name || got.FieldOfStudy != *tc.in.FieldOfStudy {
					t.Fatalf("Build: unexpected scientist %+v", got)
				}
				return
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("Build: want ValidationError got=%v", err)
			}
			if ve.Field != tc.wantField {
				t.Fatalf("Build field: want=%q got=%q", tc.wantField, ve.Field)
			}
		})
	}
}

func TestScientistPatchApplyIsAllOrNothing(t *testing.T) {
	s := &Scientist{ID: 1, Name: "Ada", FieldOfStudy: "Math"}
	patch := ScientistPatch{Name: Some("Grace"), FieldOfStudy: Some(" ")}
	if err := patch.Apply(s); !IsValidation(err) {
		t.Fatalf("Apply: want validation error got=%v", err)
	}
	if s.Name != "Ada" || s.FieldOfStudy != "Math" {
		t.Fatalf("Apply: scientist mutated on failure: %+v", s)
	}

	if err := (ScientistPatch{Name: Some("Grace")}).Apply(s); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if s.Name != "Grace" || s.FieldOfStudy != "Math" {
		t.Fatalf("Apply: unexpected scientist %+v", s)
	}
}

func TestScientistPatchDecodeDistinguishesNullFromAbsent(t *testing.T) {
	var absent ScientistPatch
	if err := json.Unmarshal([]byte(`{}`), &absent); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !absent.IsEmpty() {
		t.Fatalf("absent: want empty patch got %+v", absent)
	}

	var null ScientistPatch
	if err := json.Unmarshal([]byte(`{"name": null}`), &null); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !null.Name.Set || null.Name.Value != nil {
		t.Fatalf("null: want Set with nil value got %+v", null.Name)
	}
	s := &Scientist{Name: "Ada", FieldOfStudy: "Math"}
	if err := null.Apply(s); !IsValidation(err) {
		t.Fatalf("Apply null name: want validation error got=%v", err)
	}
}

func TestMissionInputBuild(t *testing.T) {
	ok := MissionInput{Name: pointers.String("Mars Probe"), ScientistID: pointers.Uint(1), PlanetID: pointers.Uint(2)}
	m, err := ok.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if m.Name != "Mars Probe" || m.ScientistID != 1 || m.PlanetID != 2 {
		t.Fatalf("Build: unexpected mission %+v", m)
	}

	bad := []MissionInput{
		{ScientistID: pointers.Uint(1), PlanetID: pointers.Uint(2)},
		{Name: pointers.String(""), ScientistID: pointers.Uint(1), PlanetID: pointers.Uint(2)},
		{Name: pointers.String("x"), PlanetID: pointers.Uint(2)},
		{Name: pointers.String("x"), ScientistID: pointers.Uint(1)},
	}
	for i, in := range bad {
		if _, err := in.Build(); !IsValidation(err) {
			t.Fatalf("case %d: want validation error got=%v", i, err)
		}
	}
}

func TestScientistDetailSerialization(t *testing.T) {
	s := &Scientist{ID: 3, Name: "Ada", FieldOfStudy: "Math"}
	raw, err := json.Marshal(s.Detail())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"id":3,"name":"Ada","field_of_study":"Math","missions":[]}`
	if string(raw) != want {
		t.Fatalf("Detail JSON: want=%s got=%s", want, raw)
	}

	s.Missions = []Mission{{ID: 9, Name: "Mars Probe", ScientistID: 3, PlanetID: 1}}
	raw, err = json.Marshal(s.Detail())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want = `{"id":3,"name":"Ada","field_of_study":"Math","missions":[{"id":9,"name":"Mars Probe","scientist_id":3,"planet_id":1}]}`
	if string(raw) != want {
		t.Fatalf("Detail JSON: want=%s got=%s", want, raw)
	}
}

func TestPlanetViewIsFlat(t *testing.T) {
	p := &Planet{ID: 1, Name: "Mars", DistanceFromEarth: 225, NearestStar: "Sun", Missions: []Mission{{ID: 1}}}
	raw, err := json.Marshal(p.View())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"id":1,"name":"Mars","distance_from_earth":225,"nearest_star":"Sun"}`
	if string(raw) != want {
		t.Fatalf("Planet JSON: want=%s got=%s", want, raw)
	}
}

func TestErrorTaxonomy(t *testing.T) {
	nf := fmt.Errorf("scientist 4: %w", ErrNotFound)
	if !errors.Is(nf, ErrNotFound) {
		t.Fatalf("wrapped not found should match ErrNotFound")
	}
	cv := fmt.Errorf("create mission: %w", &ConstraintViolation{Constraint: "fk", Err: errors.New("boom")})
	if !IsConstraint(cv) || IsValidation(cv) {
		t.Fatalf("constraint classification wrong for %v", cv)
	}
	if got := Invalid("name", "cannot be empty").Error(); got != "name cannot be empty" {
		t.Fatalf("ValidationError.Error: got=%q", got)
	}
}
