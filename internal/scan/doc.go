// Package scan lists the JPEG sources of a gallery directory.
//
// The order in which the directory iterates its entries is preserved as the
// canonical presentation order; each source carries its ordinal so later
// pipeline stages can restore that order after concurrent processing.
package scan
