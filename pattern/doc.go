// Package pattern provides ready-made types.ShiftPattern implementations.
//
// The scheduling engine only depends on the ShiftPattern interface; this
// package supplies the common case of a weekly recurring pattern with
// per-weekday working-hour windows, a vacation interval list, and an
// optional replace-global-vacations flag.
package pattern
