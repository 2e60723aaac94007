package catalog

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/lvroom/living-room-api/internal/validate"
)

func TestStore_InsertAndGetByID(t *testing.T) {
	c := New(testDB(t))
	ctx := context.Background()

	birthDate := time.Date(1990, 3, 14, 0, 0, 0, 0, time.UTC)
	person := testPerson("pers-00001", "ana@example.com")
	person.BirthDate = &birthDate

	if err := c.People.Insert(ctx, person); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	got, err := c.People.GetByID(ctx, "pers-00001")
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}

	if got.LastName != "Silva" {
		t.Errorf("LastName = %q, want %q", got.LastName, "Silva")
	}
	if got.Email != "ana@example.com" {
		t.Errorf("Email = %q, want %q", got.Email, "ana@example.com")
	}
	if got.BirthDate == nil || !got.BirthDate.Equal(birthDate) {
		t.Errorf("BirthDate = %v, want %v", got.BirthDate, birthDate)
	}
}

func TestStore_GetByID_NotFound(t *testing.T) {
	c := New(testDB(t))

	_, err := c.People.GetByID(context.Background(), "missing-01")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID() error = %v, want ErrNotFound", err)
	}
}

func TestStore_Insert_DuplicateID(t *testing.T) {
	c := New(testDB(t))
	ctx := context.Background()

	if err := c.Televisions.Insert(ctx, testTelevision("tv-0000001")); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	err := c.Televisions.Insert(ctx, testTelevision("tv-0000001"))
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("Insert() duplicate error = %v, want ErrConflict", err)
	}
	if !strings.Contains(err.Error(), "id") {
		t.Errorf("conflict error %q should name the id field", err)
	}
}

func TestStore_Insert_DuplicateUniqueField(t *testing.T) {
	c := New(testDB(t))
	ctx := context.Background()

	if err := c.People.Insert(ctx, testPerson("pers-00001", "ana@example.com")); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	err := c.People.Insert(ctx, testPerson("pers-00002", "ana@example.com"))
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("Insert() duplicate email error = %v, want ErrConflict", err)
	}
	if !strings.Contains(err.Error(), "email") {
		t.Errorf("conflict error %q should name the email field", err)
	}
}

func TestStore_Insert_InvalidRecord(t *testing.T) {
	c := New(testDB(t))
	ctx := context.Background()

	tv := testTelevision("tv-0000001")
	tv.Value = -1

	err := c.Televisions.Insert(ctx, tv)
	if !errors.Is(err, validate.ErrInvalid) {
		t.Fatalf("Insert() negative value error = %v, want ErrInvalid", err)
	}

	// Zero is a legitimate value.
	tv.Value = 0
	if err := c.Televisions.Insert(ctx, tv); err != nil {
		t.Fatalf("Insert() zero value error = %v", err)
	}
}

func TestStore_Replace(t *testing.T) {
	c := New(testDB(t))
	ctx := context.Background()

	if err := c.Televisions.Insert(ctx, testTelevision("tv-0000001")); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	updated := testTelevision("tv-0000001")
	updated.Model = "X950H"
	updated.Value = 999.50
	updated.IsBeingSold = true

	if err := c.Televisions.Replace(ctx, "tv-0000001", updated); err != nil {
		t.Fatalf("Replace() error = %v", err)
	}

	got, err := c.Televisions.GetByID(ctx, "tv-0000001")
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Model != "X950H" {
		t.Errorf("Model = %q, want %q", got.Model, "X950H")
	}
	if got.Value != 999.50 {
		t.Errorf("Value = %v, want %v", got.Value, 999.50)
	}
	if !got.IsBeingSold {
		t.Error("IsBeingSold should be true after replace")
	}
}

func TestStore_Replace_NotFound(t *testing.T) {
	c := New(testDB(t))

	err := c.Televisions.Replace(context.Background(), "tv-0000009", testTelevision("tv-0000009"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Replace() error = %v, want ErrNotFound", err)
	}
}

func TestStore_Replace_UniqueConflict(t *testing.T) {
	c := New(testDB(t))
	ctx := context.Background()

	if err := c.People.Insert(ctx, testPerson("pers-00001", "ana@example.com")); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	if err := c.People.Insert(ctx, testPerson("pers-00002", "bia@example.com")); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	// Steal the first person's email.
	updated := testPerson("pers-00002", "ana@example.com")
	err := c.People.Replace(ctx, "pers-00002", updated)
	if !errors.Is(err, ErrConflict) {
		t.Errorf("Replace() error = %v, want ErrConflict", err)
	}
}

func TestStore_Delete(t *testing.T) {
	c := New(testDB(t))
	ctx := context.Background()

	if err := c.Televisions.Insert(ctx, testTelevision("tv-0000001")); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	if err := c.Televisions.Delete(ctx, "tv-0000001"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if _, err := c.Televisions.GetByID(ctx, "tv-0000001"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID() after delete error = %v, want ErrNotFound", err)
	}

	if err := c.Televisions.Delete(ctx, "tv-0000001"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete() twice error = %v, want ErrNotFound", err)
	}
}

func TestStore_List(t *testing.T) {
	c := New(testDB(t))
	ctx := context.Background()

	records, err := c.Computers.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if records == nil {
		t.Fatal("List() on empty table should return an empty slice, not nil")
	}
	if len(records) != 0 {
		t.Fatalf("List() on empty table returned %d records", len(records))
	}

	for _, id := range []string{"comp-00001", "comp-00002"} {
		err := c.Computers.Insert(ctx, &Computer{ID: id, Brand: "Lenovo", Model: "T14", IsActive: true})
		if err != nil {
			t.Fatalf("Insert(%s) error = %v", id, err)
		}
	}

	records, err = c.Computers.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(records) != 2 {
		t.Errorf("List() returned %d records, want 2", len(records))
	}
}

func TestStore_FindBy(t *testing.T) {
	c := New(testDB(t))
	ctx := context.Background()

	links := []*PersonTelevision{
		{ID: "link-00001", PersonID: "pers-00001", TelevisionID: "tv-0000001"},
		{ID: "link-00002", PersonID: "pers-00001", TelevisionID: "tv-0000002"},
		{ID: "link-00003", PersonID: "pers-00002", TelevisionID: "tv-0000001"},
	}
	for _, link := range links {
		if err := c.PersonTelevisions.Insert(ctx, link); err != nil {
			t.Fatalf("Insert(%s) error = %v", link.ID, err)
		}
	}

	byPerson, err := c.PersonTelevisions.FindBy(ctx, "person_id", "pers-00001")
	if err != nil {
		t.Fatalf("FindBy(person_id) error = %v", err)
	}
	if len(byPerson) != 2 {
		t.Errorf("FindBy(person_id) returned %d links, want 2", len(byPerson))
	}

	byTelevision, err := c.PersonTelevisions.FindBy(ctx, "television_id", "tv-0000001")
	if err != nil {
		t.Fatalf("FindBy(television_id) error = %v", err)
	}
	if len(byTelevision) != 2 {
		t.Errorf("FindBy(television_id) returned %d links, want 2", len(byTelevision))
	}

	// No matches is an empty slice, never an error.
	none, err := c.PersonTelevisions.FindBy(ctx, "person_id", "pers-00009")
	if err != nil {
		t.Fatalf("FindBy() no matches error = %v", err)
	}
	if none == nil || len(none) != 0 {
		t.Errorf("FindBy() no matches = %v, want empty slice", none)
	}
}

func TestStore_FindBy_UnknownColumn(t *testing.T) {
	c := New(testDB(t))

	_, err := c.PersonTelevisions.FindBy(context.Background(), "owner_id", "pers-00001")
	if err == nil {
		t.Fatal("FindBy() with unknown column should fail")
	}
}

func TestStore_IDTaken(t *testing.T) {
	c := New(testDB(t))
	ctx := context.Background()

	taken, err := c.Televisions.IDTaken(ctx, "tv-0000001")
	if err != nil {
		t.Fatalf("IDTaken() error = %v", err)
	}
	if taken {
		t.Error("IDTaken() = true for absent record")
	}

	if err := c.Televisions.Insert(ctx, testTelevision("tv-0000001")); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	taken, err = c.Televisions.IDTaken(ctx, "tv-0000001")
	if err != nil {
		t.Fatalf("IDTaken() error = %v", err)
	}
	if !taken {
		t.Error("IDTaken() = false for existing record")
	}
}
