// Package kernel provides the shared domain primitives of the printshop
// system. It currently contains the UUID value object used as the identity
// of order aggregates and designer references.
//
// Kernel types are immutable value objects: the zero value is invalid and
// instances must be created through the provided constructor functions.
package kernel
