// Package lattice provides integer points on the face-centered-cubic
// lattice and the 24-element proper-rotation symmetry group shared by
// the cube and the FCC lattice.
//
// The rotation group is a fixed mathematical constant. It is generated
// once at first use by closing the identity under the three quarter-turn
// generators and filtering to determinant +1, rather than transcribed as
// a literal table, so its correctness is checkable by tests independent
// of any specific listing.
package lattice
