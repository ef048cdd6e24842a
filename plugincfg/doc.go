// Package plugincfg reads the DLS plugin configuration file, DLS.ini,
// and infers from its contents which plugin generation is installed.
//
// DLS.ini uses "//" comment lines alongside the usual "#" and ";". Keys
// are case insensitive; section names are not.
package plugincfg
