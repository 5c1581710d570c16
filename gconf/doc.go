/*
Package gconf keeps per extension configuration in the database.

A configuration is a single record stored under "_c:<package>". It is
written once from the genesis file and read by handlers on every
transaction. A missing or broken configuration is reported as an error,
never silently replaced by defaults.
*/
package gconf
