// Package format names the text formats documents are read from and
// written to.
package format
