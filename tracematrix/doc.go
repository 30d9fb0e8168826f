// doc.go intentionally left without additional package documentation;
// see the package comment in matrix.go.
package tracematrix
