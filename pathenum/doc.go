// doc.go: see the package comment in enumerator.go.
package pathenum
