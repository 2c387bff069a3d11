// Package util provides small shared helpers for swapkit packages.
package util
