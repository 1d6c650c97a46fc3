// Package latest implements the latest command, which prints the first
// released version heading of the changelog.
package latest
