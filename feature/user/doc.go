// Package user exposes the user CRUD surface and drives the reconciliation
// engine for the company membership collection, including the atomic
// single-primary guarantee.
package user
