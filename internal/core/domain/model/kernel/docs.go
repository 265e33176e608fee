// Package kernel contains shared value objects used across the domain model.
//
// The kernel holds the building blocks that more than one aggregate depends
// on: identifiers (UUID), currency amounts (Money), and postal addresses
// (Address). All types here are immutable value objects created through
// validating constructors; the zero value of each type is invalid and fails
// Validate.
package kernel
