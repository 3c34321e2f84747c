// Package mergeop applies JSON patches to field trees.
//
// A tree is encoded as a nested JSON object (see encode), the patch is
// applied to that document and the result is decoded and built into a new
// tree. The input tree is never modified.
//
// A tree in which some node has a field and a child node with the same name,
// or repeated field keys, has no faithful JSON object form and is rejected
// with ErrCollision. The members of each object in the patched document come
// back in sorted order, and so do the fields and children of the resulting
// nodes.
package mergeop
