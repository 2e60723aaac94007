package catalog

import (
	"encoding/json"
	"time"

	"github.com/lvroom/living-room-api/internal/validate"
)

// Field length bounds shared by the device kinds.
const (
	maxNameLength  = 60
	maxBrandLength = 60
	maxModelLength = 100
)

// Person is a household member that can own devices.
type Person struct {
	ID                   string     `json:"id"`
	LastName             string     `json:"last_name"`
	FirstName            string     `json:"first_name"`
	BirthDate            *time.Time `json:"birth_date,omitempty"`
	CountryBirthLocation string     `json:"country_birth_location"`
	Email                string     `json:"email"`
}

// FullName is derived from the name fields on every read; it is never stored.
func (p Person) FullName() string {
	return p.LastName + ", " + p.FirstName
}

// MarshalJSON adds the computed full_name field to the wire representation.
func (p Person) MarshalJSON() ([]byte, error) {
	type alias Person
	return json.Marshal(struct {
		alias
		FullName string `json:"full_name"`
	}{alias(p), p.FullName()})
}

// Validate checks Person field constraints.
func (p *Person) Validate() error {
	if err := validate.ID("id", p.ID); err != nil {
		return err
	}
	return validate.Strings([]validate.StringRule{
		{Name: "last_name", Value: p.LastName, Required: true, MaxLen: maxNameLength},
		{Name: "first_name", Value: p.FirstName, Required: true, MaxLen: maxNameLength},
		{Name: "country_birth_location", Value: p.CountryBirthLocation, Required: true, MaxLen: maxNameLength},
		{Name: "email", Value: p.Email, Required: true, Email: true},
	})
}

// Television is a TV set in the inventory.
type Television struct {
	ID           string     `json:"id"`
	Brand        string     `json:"brand"`
	Model        string     `json:"model"`
	CreationDate *time.Time `json:"creation_date,omitempty"`
	Value        float64    `json:"value"`
	Is3D         bool       `json:"is_3d"`
	IsBeingSold  bool       `json:"is_being_sold"`
}

// Validate checks Television field constraints.
func (t *Television) Validate() error {
	if err := validate.ID("id", t.ID); err != nil {
		return err
	}
	if err := validate.Strings([]validate.StringRule{
		{Name: "brand", Value: t.Brand, Required: true, MaxLen: maxBrandLength},
		{Name: "model", Value: t.Model, Required: true, MaxLen: maxModelLength},
	}); err != nil {
		return err
	}
	return validate.NonNegative("value", t.Value)
}

// Computer is a computer in the inventory. Unlike the other device kinds it
// carries no monetary value, only an activity flag.
type Computer struct {
	ID           string     `json:"id"`
	Brand        string     `json:"brand"`
	Model        string     `json:"model"`
	CreationDate *time.Time `json:"creation_date,omitempty"`
	IsActive     bool       `json:"is_active"`
}

// Validate checks Computer field constraints.
func (c *Computer) Validate() error {
	if err := validate.ID("id", c.ID); err != nil {
		return err
	}
	return validate.Strings([]validate.StringRule{
		{Name: "brand", Value: c.Brand, Required: true, MaxLen: maxBrandLength},
		{Name: "model", Value: c.Model, Required: true, MaxLen: maxModelLength},
	})
}

// HomeTheater is a home theater system in the inventory.
type HomeTheater struct {
	ID           string     `json:"id"`
	Brand        string     `json:"brand"`
	Model        string     `json:"model"`
	CreationDate *time.Time `json:"creation_date,omitempty"`
	Value        float64    `json:"value"`
	ReadsBluRay  bool       `json:"reads_blu_ray"`
	IsBeingSold  bool       `json:"is_being_sold"`
}

// Validate checks HomeTheater field constraints.
func (h *HomeTheater) Validate() error {
	if err := validate.ID("id", h.ID); err != nil {
		return err
	}
	if err := validate.Strings([]validate.StringRule{
		{Name: "brand", Value: h.Brand, Required: true, MaxLen: maxBrandLength},
		{Name: "model", Value: h.Model, Required: true, MaxLen: maxModelLength},
	}); err != nil {
		return err
	}
	return validate.NonNegative("value", h.Value)
}

// PersonTelevision links a person to a television. The foreign-key fields
// are shape-checked only; referential integrity is not enforced.
type PersonTelevision struct {
	ID           string `json:"id"`
	PersonID     string `json:"person_id"`
	TelevisionID string `json:"television_id"`
}

// Validate checks PersonTelevision field constraints.
func (a *PersonTelevision) Validate() error {
	if err := validate.ID("id", a.ID); err != nil {
		return err
	}
	if err := validate.ID("person_id", a.PersonID); err != nil {
		return err
	}
	return validate.ID("television_id", a.TelevisionID)
}

// PersonComputer links a person to a computer.
type PersonComputer struct {
	ID         string `json:"id"`
	PersonID   string `json:"person_id"`
	ComputerID string `json:"computer_id"`
}

// Validate checks PersonComputer field constraints.
func (a *PersonComputer) Validate() error {
	if err := validate.ID("id", a.ID); err != nil {
		return err
	}
	if err := validate.ID("person_id", a.PersonID); err != nil {
		return err
	}
	return validate.ID("computer_id", a.ComputerID)
}

// PersonHomeTheater links a person to a home theater.
type PersonHomeTheater struct {
	ID            string `json:"id"`
	PersonID      string `json:"person_id"`
	HomeTheaterID string `json:"home_theater_id"`
}

// Validate checks PersonHomeTheater field constraints.
func (a *PersonHomeTheater) Validate() error {
	if err := validate.ID("id", a.ID); err != nil {
		return err
	}
	if err := validate.ID("person_id", a.PersonID); err != nil {
		return err
	}
	return validate.ID("home_theater_id", a.HomeTheaterID)
}
