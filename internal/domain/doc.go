// Package domain defines core data models shared across the app.
// It contains plain types (symbols, constraints, routes, results) only;
// all arithmetic lives in the packages that consume them.
package domain
