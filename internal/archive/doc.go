// Package archive builds the downloadable zip of gallery originals.
//
// The builder is append-only with a single writer and a one-shot Finalize.
// Violations of that contract (duplicate entry names, appending after
// finalize, finalizing twice) indicate logic bugs and panic loudly instead
// of producing a partial or corrupt archive.
package archive
