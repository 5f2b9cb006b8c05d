// Package schema turns physical storage metadata into rules.
//
// A Provider describes the columns of a table: declared length, nullability,
// numeric precision and scale, and how many physical columns back the mapped
// property. Derive converts one Column plus the Go type of the field it maps
// to into zero or more rules:
//
//   - string fields get a LengthRule when the column length is positive;
//   - time fields get a required mark when the column is not nullable;
//   - numeric fields get a required mark when the column is not nullable and
//     a DecimalRule when precision exceeds a non-negative scale. Integral
//     types cap precision to the digits their width can hold (64-bit 20,
//     32-bit 11, 16-bit 5, 8-bit 3) and force scale to zero.
//
// Properties backed by zero or several columns, booleans and all other types
// produce nothing.
//
// Providers for Postgres and MongoDB live in the pg and mongo packages.
// MemoryProvider serves fixed column lists and CachedProvider memoizes any
// provider in process and, optionally, in a shared Store such as Redis.
package schema
