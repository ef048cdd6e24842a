// Package catalog indexes a folder of vehicle configuration files.
//
// A scan walks the folder tree, lists every XML file by its slash
// separated path relative to the folder, and detects the schema version
// of each file on a bounded pool of workers. Detection results are kept
// in an LRU cache keyed by path, size and modification time, so that
// rescanning a folder only reads the files that changed.
package catalog
