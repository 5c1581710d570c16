/*
Package utils contains the decorators every transaction passes through:
panic recovery, logging, savepoints that make a transaction one unit of
execution, and the action tag.
*/
package utils
