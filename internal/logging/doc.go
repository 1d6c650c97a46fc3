// Package logging configures the slog logger used by revcheck and defines the
// canonical attribute keys shared by every package that logs.
package logging
