// Package normalize implements lexical cleanup of raw record fields.
//
// Cleanup order is significant: currency symbols and surrounding
// whitespace/quotes are stripped before any numeric parsing.
package normalize
