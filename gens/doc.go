// Package gens builds standard generator sets — cyclic, symmetric,
// minimal symmetric, and alternating — over a domain.Domain.
package gens
