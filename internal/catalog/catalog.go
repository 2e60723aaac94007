package catalog

import (
	"database/sql"
)

// Catalog bundles the stores for every record kind served by the API.
type Catalog struct {
	People             *Store[Person]
	Televisions        *Store[Television]
	Computers          *Store[Computer]
	HomeTheaters       *Store[HomeTheater]
	PersonTelevisions  *Store[PersonTelevision]
	PersonComputers    *Store[PersonComputer]
	PersonHomeTheaters *Store[PersonHomeTheater]
}

// New wires a Catalog over the given database handle.
func New(db *sql.DB) *Catalog {
	return &Catalog{
		People:             NewStore(db, personDescriptor),
		Televisions:        NewStore(db, televisionDescriptor),
		Computers:          NewStore(db, computerDescriptor),
		HomeTheaters:       NewStore(db, homeTheaterDescriptor),
		PersonTelevisions:  NewStore(db, personTelevisionDescriptor),
		PersonComputers:    NewStore(db, personComputerDescriptor),
		PersonHomeTheaters: NewStore(db, personHomeTheaterDescriptor),
	}
}

var personDescriptor = Descriptor[Person]{
	Table:   "people",
	Columns: []string{"id", "last_name", "first_name", "birth_date", "country_birth_location", "email"},
	Key:     func(p *Person) string { return p.ID },
	Args: func(p *Person) []any {
		return []any{p.ID, p.LastName, p.FirstName, nullTime(p.BirthDate), p.CountryBirthLocation, p.Email}
	},
	Scan: func(s scanner) (Person, error) {
		var p Person
		var birthDate sql.NullString
		err := s.Scan(&p.ID, &p.LastName, &p.FirstName, &birthDate, &p.CountryBirthLocation, &p.Email)
		if err != nil {
			return Person{}, err
		}
		p.BirthDate = parseNullTime(birthDate)
		return p, nil
	},
	Unique: []UniqueField[Person]{
		{Column: "email", Value: func(p *Person) string { return p.Email }},
	},
	Validate: func(p *Person) error { return p.Validate() },
}

var televisionDescriptor = Descriptor[Television]{
	Table:   "televisions",
	Columns: []string{"id", "brand", "model", "creation_date", "value", "is_3d", "is_being_sold"},
	Key:     func(t *Television) string { return t.ID },
	Args: func(t *Television) []any {
		return []any{t.ID, t.Brand, t.Model, nullTime(t.CreationDate), t.Value,
			boolToInt(t.Is3D), boolToInt(t.IsBeingSold)}
	},
	Scan: func(s scanner) (Television, error) {
		var t Television
		var creationDate sql.NullString
		err := s.Scan(&t.ID, &t.Brand, &t.Model, &creationDate, &t.Value, &t.Is3D, &t.IsBeingSold)
		if err != nil {
			return Television{}, err
		}
		t.CreationDate = parseNullTime(creationDate)
		return t, nil
	},
	Validate: func(t *Television) error { return t.Validate() },
}

var computerDescriptor = Descriptor[Computer]{
	Table:   "computers",
	Columns: []string{"id", "brand", "model", "creation_date", "is_active"},
	Key:     func(c *Computer) string { return c.ID },
	Args: func(c *Computer) []any {
		return []any{c.ID, c.Brand, c.Model, nullTime(c.CreationDate), boolToInt(c.IsActive)}
	},
	Scan: func(s scanner) (Computer, error) {
		var c Computer
		var creationDate sql.NullString
		err := s.Scan(&c.ID, &c.Brand, &c.Model, &creationDate, &c.IsActive)
		if err != nil {
			return Computer{}, err
		}
		c.CreationDate = parseNullTime(creationDate)
		return c, nil
	},
	Validate: func(c *Computer) error { return c.Validate() },
}

var homeTheaterDescriptor = Descriptor[HomeTheater]{
	Table:   "home_theaters",
	Columns: []string{"id", "brand", "model", "creation_date", "value", "reads_blu_ray", "is_being_sold"},
	Key:     func(h *HomeTheater) string { return h.ID },
	Args: func(h *HomeTheater) []any {
		return []any{h.ID, h.Brand, h.Model, nullTime(h.CreationDate), h.Value,
			boolToInt(h.ReadsBluRay), boolToInt(h.IsBeingSold)}
	},
	Scan: func(s scanner) (HomeTheater, error) {
		var h HomeTheater
		var creationDate sql.NullString
		err := s.Scan(&h.ID, &h.Brand, &h.Model, &creationDate, &h.Value, &h.ReadsBluRay, &h.IsBeingSold)
		if err != nil {
			return HomeTheater{}, err
		}
		h.CreationDate = parseNullTime(creationDate)
		return h, nil
	},
	Validate: func(h *HomeTheater) error { return h.Validate() },
}

var personTelevisionDescriptor = Descriptor[PersonTelevision]{
	Table:   "people_televisions",
	Columns: []string{"id", "person_id", "television_id"},
	Key:     func(a *PersonTelevision) string { return a.ID },
	Args: func(a *PersonTelevision) []any {
		return []any{a.ID, a.PersonID, a.TelevisionID}
	},
	Scan: func(s scanner) (PersonTelevision, error) {
		var a PersonTelevision
		err := s.Scan(&a.ID, &a.PersonID, &a.TelevisionID)
		return a, err
	},
	Validate: func(a *PersonTelevision) error { return a.Validate() },
}

var personComputerDescriptor = Descriptor[PersonComputer]{
	Table:   "people_computers",
	Columns: []string{"id", "person_id", "computer_id"},
	Key:     func(a *PersonComputer) string { return a.ID },
	Args: func(a *PersonComputer) []any {
		return []any{a.ID, a.PersonID, a.ComputerID}
	},
	Scan: func(s scanner) (PersonComputer, error) {
		var a PersonComputer
		err := s.Scan(&a.ID, &a.PersonID, &a.ComputerID)
		return a, err
	},
	Validate: func(a *PersonComputer) error { return a.Validate() },
}

var personHomeTheaterDescriptor = Descriptor[PersonHomeTheater]{
	Table:   "people_home_theaters",
	Columns: []string{"id", "person_id", "home_theater_id"},
	Key:     func(a *PersonHomeTheater) string { return a.ID },
	Args: func(a *PersonHomeTheater) []any {
		return []any{a.ID, a.PersonID, a.HomeTheaterID}
	},
	Scan: func(s scanner) (PersonHomeTheater, error) {
		var a PersonHomeTheater
		err := s.Scan(&a.ID, &a.PersonID, &a.HomeTheaterID)
		return a, err
	},
	Validate: func(a *PersonHomeTheater) error { return a.Validate() },
}
