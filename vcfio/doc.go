// Package vcfio reads and writes configuration files on disk.
//
// WriteFile is all-or-nothing: data goes to a temporary file next to the
// destination, which is synced and then renamed over it, so readers see
// either the previous file or the complete new one.
package vcfio
