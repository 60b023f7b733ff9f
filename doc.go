/*
Package bary projects points in 3D space onto simplices and onto the
boundary of an octahedron, expressing the result as barycentric coordinates
over the reference vertices.

The simplex projectors are Line (2 vertices), Triangle and ClippingTriangle
(3 vertices) and Tetrahedron (4 vertices). Octahedron composes them to find
the closest point of a convex octahedron to an arbitrary point. A typical
consumer is a color quantizer which maps each pixel color to weights over a
6 color palette, see package gamut.

All projectors are generic over the precision of the coordinates, are
immutable after construction and safe for concurrent use.
*/
package bary
