// doc.go: see the package comment in engine.go.
package gotoh
