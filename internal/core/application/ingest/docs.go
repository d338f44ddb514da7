// Package ingest turns raw records into domain entities.
//
// One generic pipeline serves all four entity kinds. A Schema value describes
// a kind: its required keys, the rules a record must pass and how an accepted
// record is built into an entity. Validator applies the keys and rules,
// Converter applies the builder, and DataRepository runs both over a
// ports.RecordSource and caches the result.
//
// Rejections never fail a refresh. They are logged with the offending record
// and the record is dropped. Only a conversion error, such as a date in an
// unsupported representation, aborts a refresh.
package ingest
