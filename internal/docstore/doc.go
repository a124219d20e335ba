// Package docstore is the persistence core: a small document-store contract
// (find / create / update / delete over named collections of JSON records),
// a single-file emulation of that contract, and a factory that picks either
// the emulation or a real database driver for the lifetime of the process.
//
// Collections are flat sequences of records kept in insertion order. Every
// record carries a string "id" unique within its collection plus
// "createdAt"/"updatedAt" ISO-8601 timestamps stamped by the store.
//
// Compatibility notes:
//
//   - ids are generated as <unix millis><9 random base36 chars>, matching the
//     data already on disk. Collisions are checked on create.
//   - a filter on role "USER" selects records stored with role "CLIENT"
//     (see ByRole). Stored data relies on it, so it is kept.
//   - UpdateOptions.ReturnUpdated=false on the emulated store returns the
//     record as it was and writes nothing.
package docstore
