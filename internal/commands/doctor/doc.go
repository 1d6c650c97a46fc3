// Package doctor implements the doctor command, which reports every
// configuration problem at once instead of failing on the first.
package doctor
