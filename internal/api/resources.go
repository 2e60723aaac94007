package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lvroom/living-room-api/internal/catalog"
)

// resource wires a catalog store to a standard set of CRUD handlers.
// All kinds share the same request shapes, so the handlers are generic
// over the record type.
type resource[T any] struct {
	s     *Server
	store *catalog.Store[T]
	name  string // singular, used in error messages
	path  string // base URL path, used for Location headers
	key   func(*T) string
}

// mount registers the standard CRUD routes on the given router.
func (rs *resource[T]) mount(r chi.Router) {
	r.Get("/", rs.handleList)
	r.Post("/", rs.handleCreate)
	r.Get("/{id}", rs.handleGet)
	r.Put("/{id}", rs.handleReplace)
	r.Delete("/{id}", rs.handleDelete)
}

func (rs *resource[T]) handleList(w http.ResponseWriter, r *http.Request) {
	records, err := rs.store.List(r.Context())
	if err != nil {
		rs.s.writeStoreError(w, err, rs.name)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (rs *resource[T]) handleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	record, err := rs.store.GetByID(r.Context(), id)
	if err != nil {
		rs.s.writeStoreError(w, err, rs.name)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (rs *resource[T]) handleCreate(w http.ResponseWriter, r *http.Request) {
	var record T
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	if err := rs.store.Insert(r.Context(), &record); err != nil {
		rs.s.writeStoreError(w, err, rs.name)
		return
	}

	w.Header().Set("Location", rs.path+"/"+rs.key(&record))
	writeJSON(w, http.StatusCreated, record)
}

func (rs *resource[T]) handleReplace(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var record T
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	if rs.key(&record) != id {
		writeBadRequest(w, "identifier in body does not match URL")
		return
	}

	if err := rs.store.Replace(r.Context(), id, &record); err != nil {
		rs.s.writeStoreError(w, err, rs.name)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (rs *resource[T]) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := rs.store.Delete(r.Context(), id); err != nil {
		rs.s.writeStoreError(w, err, rs.name)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleListBy returns a handler that lists records matching a foreign
// key column. A value with no matches yields an empty list, not 404.
func (rs *resource[T]) handleListBy(column, param string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		value := chi.URLParam(r, param)

		records, err := rs.store.FindBy(r.Context(), column, value)
		if err != nil {
			rs.s.writeStoreError(w, err, rs.name)
			return
		}
		writeJSON(w, http.StatusOK, records)
	}
}

// mountCatalogRoutes registers all catalog resource and association routes.
func (s *Server) mountCatalogRoutes(r chi.Router) {
	people := &resource[catalog.Person]{
		s: s, store: s.catalog.People,
		name: "person", path: "/api/v1/people",
		key: func(p *catalog.Person) string { return p.ID },
	}
	televisions := &resource[catalog.Television]{
		s: s, store: s.catalog.Televisions,
		name: "television", path: "/api/v1/televisions",
		key: func(t *catalog.Television) string { return t.ID },
	}
	computers := &resource[catalog.Computer]{
		s: s, store: s.catalog.Computers,
		name: "computer", path: "/api/v1/computers",
		key: func(c *catalog.Computer) string { return c.ID },
	}
	homeTheaters := &resource[catalog.HomeTheater]{
		s: s, store: s.catalog.HomeTheaters,
		name: "home theater", path: "/api/v1/hometheaters",
		key: func(h *catalog.HomeTheater) string { return h.ID },
	}

	r.Route("/people", people.mount)
	r.Route("/televisions", televisions.mount)
	r.Route("/computers", computers.mount)
	r.Route("/hometheaters", homeTheaters.mount)

	personTelevisions := &resource[catalog.PersonTelevision]{
		s: s, store: s.catalog.PersonTelevisions,
		name: "person-television link", path: "/api/v1/people-televisions",
		key: func(l *catalog.PersonTelevision) string { return l.ID },
	}
	personComputers := &resource[catalog.PersonComputer]{
		s: s, store: s.catalog.PersonComputers,
		name: "person-computer link", path: "/api/v1/people-computers",
		key: func(l *catalog.PersonComputer) string { return l.ID },
	}
	personHomeTheaters := &resource[catalog.PersonHomeTheater]{
		s: s, store: s.catalog.PersonHomeTheaters,
		name: "person-home theater link", path: "/api/v1/people-hometheaters",
		key: func(l *catalog.PersonHomeTheater) string { return l.ID },
	}

	r.Route("/people-televisions", func(r chi.Router) {
		r.Get("/people/{personID}", personTelevisions.handleListBy("person_id", "personID"))
		r.Get("/televisions/{televisionID}", personTelevisions.handleListBy("television_id", "televisionID"))
		personTelevisions.mount(r)
	})
	r.Route("/people-computers", func(r chi.Router) {
		r.Get("/people/{personID}", personComputers.handleListBy("person_id", "personID"))
		r.Get("/computers/{computerID}", personComputers.handleListBy("computer_id", "computerID"))
		personComputers.mount(r)
	})
	r.Route("/people-hometheaters", func(r chi.Router) {
		r.Get("/people/{personID}", personHomeTheaters.handleListBy("person_id", "personID"))
		r.Get("/hometheaters/{homeTheaterID}", personHomeTheaters.handleListBy("home_theater_id", "homeTheaterID"))
		personHomeTheaters.mount(r)
	})
}
