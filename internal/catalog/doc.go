// Package catalog manages the living-room inventory records: people, the
// devices they own (televisions, computers, home theaters), and the junction
// records linking them.
//
// Every record kind shares the same persistence contract. A Descriptor maps a
// record type onto its SQLite table (columns, key, unique fields, validator)
// and a single generic Store implements list/get/insert/replace/delete plus
// the foreign-key filters used by the junction kinds. Uniqueness is enforced
// by the schema's unique indexes; the store only classifies driver errors
// into the package's sentinel errors after a failed write.
package catalog
