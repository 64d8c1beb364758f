// Package xmr implements exact conversions between the denominations of
// monero used across the application:
//
// - XMR, the human-facing decimal denomination.
//
// - atomic units, the smallest indivisible denomination,
// with 1 XMR = 10^12 atomic units.
//
// - centineros, a legacy coarser denomination used by older
// call sites, with 1 centinero = 10^4 atomic units.
//
// It also implements an AtomicUnits type that is used to store,
// persist and represent atomic-unit amounts in their integer form.
package xmr
