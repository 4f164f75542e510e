// Package stock keeps menu stock quantities consistent under concurrent sales.
package stock
